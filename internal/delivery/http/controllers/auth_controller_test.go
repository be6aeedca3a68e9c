package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campuseventhub/internal/delivery/http/middleware"
	"campuseventhub/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestAuthController_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{name: "success", body: `{"email":"admin@university.edu","password":"admin123"}`, wantStatus: http.StatusOK},
		{name: "wrong password", body: `{"email":"admin@university.edu","password":"nope"}`, svcErr: domain.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "bad email format", body: `{"email":"not-an-email","password":"x"}`, wantStatus: http.StatusBadRequest},
		{name: "missing password", body: `{"email":"admin@university.edu"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAuthService{
				token:    "signed-token",
				user:     &domain.User{ID: "u-1", Email: "admin@university.edu", Role: domain.RoleAdmin},
				loginErr: tt.svcErr,
			}
			c := NewAuthController(testLogger, svc)

			r := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			c.Login(w, r)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var resp struct {
					Data LoginResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.Equal(t, "signed-token", resp.Data.Token)
				require.Equal(t, domain.RoleAdmin, resp.Data.User.Role)
			}
		})
	}
}

func TestAuthController_Me(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		svc := &fakeAuthService{
			user: &domain.User{ID: "u-1", Email: "student@university.edu", Role: domain.RoleStudent},
		}
		c := NewAuthController(testLogger, svc)

		r := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		r = r.WithContext(middleware.SetIdentity(r.Context(), "u-1", []string{"student"}))
		w := httptest.NewRecorder()
		c.Me(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "u-1", svc.lastGetID)
	})

	t.Run("no identity", func(t *testing.T) {
		c := NewAuthController(testLogger, &fakeAuthService{})

		r := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		c.Me(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
