package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campuseventhub/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestParticipantController_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{name: "success", body: `{"name":"John Smith"}`, wantStatus: http.StatusCreated},
		{name: "blank name", body: `{"name":"  "}`, wantStatus: http.StatusBadRequest},
		{name: "event missing", body: `{"name":"John Smith"}`, svcErr: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "already registered", body: `{"name":"John Smith"}`, svcErr: domain.ErrAlreadyRegistered, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeParticipantService{
				registerResult: &domain.Participant{
					ID:      "p-1",
					Name:    "John Smith",
					Email:   "john.smith@university.edu",
					EventID: "ev-1",
				},
				registerErr: tt.svcErr,
			}
			c := NewParticipantController(testLogger, svc, &fakeEventService{})

			r := httptest.NewRequest(http.MethodPost, "/events/ev-1/participants", bytes.NewBufferString(tt.body))
			r.SetPathValue("eventID", "ev-1")
			w := httptest.NewRecorder()
			c.Register(w, r)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				require.Equal(t, "John Smith", svc.lastRegisterName)
				require.Equal(t, "ev-1", svc.lastRegisterEventID)
				var resp struct {
					Data *domain.Participant `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.Equal(t, "john.smith@university.edu", resp.Data.Email)
			}
		})
	}
}

func TestParticipantController_Unregister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeParticipantService{}
		c := NewParticipantController(testLogger, svc, &fakeEventService{})

		r := httptest.NewRequest(http.MethodDelete, "/events/ev-1/participants", bytes.NewBufferString(`{"name":"John Smith"}`))
		r.SetPathValue("eventID", "ev-1")
		w := httptest.NewRecorder()
		c.Unregister(w, r)

		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, "John Smith", svc.lastUnregisterName)
	})

	t.Run("not registered", func(t *testing.T) {
		svc := &fakeParticipantService{unregisterErr: domain.ErrNotRegistered}
		c := NewParticipantController(testLogger, svc, &fakeEventService{})

		r := httptest.NewRequest(http.MethodDelete, "/events/ev-1/participants", bytes.NewBufferString(`{"name":"Nobody"}`))
		r.SetPathValue("eventID", "ev-1")
		w := httptest.NewRecorder()
		c.Unregister(w, r)

		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestParticipantController_ListParticipants(t *testing.T) {
	svc := &fakeParticipantService{
		listResult: []*domain.Participant{
			{ID: "p-1", Name: "John Smith", Email: "john.smith@university.edu", EventID: "ev-1", RegistrationDate: p0Time()},
		},
	}
	c := NewParticipantController(testLogger, svc, &fakeEventService{})

	r := httptest.NewRequest(http.MethodGet, "/events/ev-1/participants", nil)
	r.SetPathValue("eventID", "ev-1")
	w := httptest.NewRecorder()
	c.ListParticipants(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ev-1", svc.lastListEventID)
	var resp struct {
		Data []*domain.Participant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
}

func TestParticipantController_ExportCSV(t *testing.T) {
	events := &fakeEventService{
		byID: map[string]*domain.EventView{
			"ev-1": eventView("ev-1", "Programming  Contest", "Computer Science", 2),
		},
	}
	svc := &fakeParticipantService{
		csvResult: []domain.ParticipantCSVRow{
			{Name: "John Smith", Email: "john.smith@university.edu", RegistrationDate: "2025-05-01"},
			{Name: `Emma "Em" Johnson`, Email: "emma.johnson@university.edu", RegistrationDate: "2025-05-02"},
		},
	}
	c := NewParticipantController(testLogger, svc, events)

	r := httptest.NewRequest(http.MethodGet, "/events/ev-1/participants/csv", nil)
	r.SetPathValue("eventID", "ev-1")
	w := httptest.NewRecorder()
	c.ExportCSV(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename="Programming_Contest_participants.csv"`, w.Header().Get("Content-Disposition"))

	want := "Name,Email,Registration Date\n" +
		"\"John Smith\",\"john.smith@university.edu\",\"2025-05-01\"\n" +
		"\"Emma \"\"Em\"\" Johnson\",\"emma.johnson@university.edu\",\"2025-05-02\""
	require.Equal(t, want, w.Body.String())
}

func TestParticipantController_ExportCSV_EmptyRoster(t *testing.T) {
	events := &fakeEventService{
		byID: map[string]*domain.EventView{
			"ev-1": eventView("ev-1", "Expo", "Engineering", 0),
		},
	}
	svc := &fakeParticipantService{csvResult: []domain.ParticipantCSVRow{}}
	c := NewParticipantController(testLogger, svc, events)

	r := httptest.NewRequest(http.MethodGet, "/events/ev-1/participants/csv", nil)
	r.SetPathValue("eventID", "ev-1")
	w := httptest.NewRecorder()
	c.ExportCSV(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Name,Email,Registration Date", w.Body.String())
}

func TestParticipantController_ExportCSV_EventNotFound(t *testing.T) {
	c := NewParticipantController(testLogger, &fakeParticipantService{}, &fakeEventService{})

	r := httptest.NewRequest(http.MethodGet, "/events/missing/participants/csv", nil)
	r.SetPathValue("eventID", "missing")
	w := httptest.NewRecorder()
	c.ExportCSV(w, r)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestParticipantController_Registrations(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeParticipantService{eventIDsResult: []string{"ev-1", "ev-3"}}
		c := NewParticipantController(testLogger, svc, &fakeEventService{})

		r := httptest.NewRequest(http.MethodGet, "/registrations?name=John+Smith", nil)
		w := httptest.NewRecorder()
		c.Registrations(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "John Smith", svc.lastEventIDsName)
		var resp struct {
			Data RegistrationsResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, []string{"ev-1", "ev-3"}, resp.Data.EventIDs)
	})

	t.Run("missing name", func(t *testing.T) {
		c := NewParticipantController(testLogger, &fakeParticipantService{}, &fakeEventService{})

		r := httptest.NewRequest(http.MethodGet, "/registrations", nil)
		w := httptest.NewRecorder()
		c.Registrations(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCSVFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Programming Contest", "Programming_Contest_participants.csv"},
		{"Expo", "Expo_participants.csv"},
		{"A  B\tC", "A_B_C_participants.csv"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, csvFilename(tt.title))
	}
}
