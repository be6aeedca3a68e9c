package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuseventhub/internal/domain"
)

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	email := strings.ToLower(u.Email)
	if _, ok := f.byEmail[email]; ok {
		return domain.ErrInvalidInput
	}
	f.nextID++
	u.ID = "u" + string(rune('0'+f.nextID))
	u.Email = email
	u.CreatedAt = time.Now()
	f.byEmail[email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[strings.ToLower(email)]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

// fakeHasher implements domain.PasswordHasher for tests.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }
func (fakeHasher) Hash(salt, password string) (string, error) {
	return "hash-" + salt + "-" + password, nil
}
func (fakeHasher) Compare(hash, salt, password string) error {
	if hash == "hash-"+salt+"-"+password {
		return nil
	}
	return domain.ErrInvalidCredentials
}

// fakeIssuer implements domain.TokenIssuer for tests.
type fakeIssuer struct {
	lastRoles []string
}

func (f *fakeIssuer) Issue(userID, email string, roles []string, expiry time.Duration) (string, error) {
	f.lastRoles = roles
	return "token-" + userID, nil
}

func TestAuthService_CreateUserAndLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	issuer := &fakeIssuer{}
	svc := NewAuthService(repo, fakeHasher{}, issuer, time.Hour)

	user, err := svc.CreateUser(ctx, "Admin@University.edu", "Admin", domain.RoleAdmin, "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin@university.edu", user.Email)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.NotEmpty(t, user.PasswordHash)

	token, got, err := svc.Login(ctx, "admin@university.edu", "secret")
	require.NoError(t, err)
	assert.Equal(t, "token-"+user.ID, token)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, []string{"admin"}, issuer.lastRoles)
}

func TestAuthService_Login_Failures(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, fakeHasher{}, &fakeIssuer{}, time.Hour)

	_, err := svc.CreateUser(ctx, "student@university.edu", "Student", domain.RoleStudent, "secret")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "student@university.edu", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@university.edu", "secret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_CreateUser_InvalidRole(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo(), fakeHasher{}, &fakeIssuer{}, time.Hour)

	_, err := svc.CreateUser(ctx, "x@university.edu", "X", domain.Role("superuser"), "secret")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuthService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, fakeHasher{}, &fakeIssuer{}, time.Hour)

	user, err := svc.CreateUser(ctx, "student@university.edu", "Student", domain.RoleStudent, "secret")
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
