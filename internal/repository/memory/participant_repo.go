package memory

import (
	"context"

	"github.com/google/uuid"

	"campuseventhub/internal/domain"
)

type participantRepository struct {
	store *Store
}

// NewParticipantRepository returns a ParticipantRepository over the given
// store.
func NewParticipantRepository(store *Store) domain.ParticipantRepository {
	return &participantRepository{store: store}
}

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Reject dangling registrations at the store level rather than trusting
	// every caller to have checked first.
	if _, ok := r.store.events[p.EventID]; !ok {
		return domain.ErrNotFound
	}
	p.ID = uuid.NewString()
	r.store.participants[p.ID] = cloneParticipant(p)
	r.store.participantOrder = append(r.store.participantOrder, p.ID)
	return nil
}

func (r *participantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.participants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneParticipant(p), nil
}

func (r *participantRepository) List(ctx context.Context) ([]*domain.Participant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Participant, 0, len(r.store.participantOrder))
	for _, id := range r.store.participantOrder {
		out = append(out, cloneParticipant(r.store.participants[id]))
	}
	return out, nil
}

func (r *participantRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Participant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []*domain.Participant{}
	for _, id := range r.store.participantOrder {
		if p := r.store.participants[id]; p.EventID == eventID {
			out = append(out, cloneParticipant(p))
		}
	}
	return out, nil
}

func (r *participantRepository) ListByName(ctx context.Context, name string) ([]*domain.Participant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []*domain.Participant{}
	for _, id := range r.store.participantOrder {
		if p := r.store.participants[id]; p.Name == name {
			out = append(out, cloneParticipant(p))
		}
	}
	return out, nil
}

func (r *participantRepository) Update(ctx context.Context, id string, upd domain.ParticipantUpdate) (*domain.Participant, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.participants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Email != nil {
		p.Email = *upd.Email
	}
	return cloneParticipant(p), nil
}

func (r *participantRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.participants[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.participants, id)
	r.store.participantOrder = removeID(r.store.participantOrder, id)
	return nil
}

func (r *participantRepository) CountByEventID(ctx context.Context, eventID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	n := 0
	for _, p := range r.store.participants {
		if p.EventID == eventID {
			n++
		}
	}
	return n, nil
}

func (r *participantRepository) IsRegistered(ctx context.Context, name, eventID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.participants {
		if p.Name == name && p.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}
