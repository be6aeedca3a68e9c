package memory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"campuseventhub/internal/domain"
)

type userRepository struct {
	store *Store
}

// NewUserRepository returns a UserRepository over the given store.
func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(u.Email))
	if _, exists := r.store.usersByEmail[email]; exists {
		return domain.ErrInvalidInput
	}
	u.ID = uuid.NewString()
	u.Email = email
	u.CreatedAt = time.Now()
	r.store.users[u.ID] = cloneUser(u)
	r.store.usersByEmail[email] = u.ID
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.usersByEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(r.store.users[id]), nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(u), nil
}
