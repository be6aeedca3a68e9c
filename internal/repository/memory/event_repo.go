package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campuseventhub/internal/domain"
)

type eventRepository struct {
	store *Store
}

// NewEventRepository returns an EventRepository over the given store.
func NewEventRepository(store *Store) domain.EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	r.store.events[e.ID] = cloneEvent(e)
	r.store.eventOrder = append(r.store.eventOrder, e.ID)
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneEvent(e), nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Event, 0, len(r.store.eventOrder))
	for _, id := range r.store.eventOrder {
		out = append(out, cloneEvent(r.store.events[id]))
	}
	return out, nil
}

func (r *eventRepository) ListByDepartment(ctx context.Context, department string) ([]*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []*domain.Event{}
	for _, id := range r.store.eventOrder {
		if e := r.store.events[id]; e.Department == department {
			out = append(out, cloneEvent(e))
		}
	}
	return out, nil
}

func (r *eventRepository) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.Department != nil {
		e.Department = *upd.Department
	}
	if upd.Date != nil {
		e.Date = *upd.Date
	}
	if upd.Location != nil {
		e.Location = *upd.Location
	}
	if upd.Image != nil {
		e.Image = *upd.Image
	}
	return cloneEvent(e), nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.events, id)
	r.store.eventOrder = removeID(r.store.eventOrder, id)

	// Cascade: drop every participant registered for this event under the
	// same lock, so no reader can observe the event gone but its
	// registrations still present.
	kept := r.store.participantOrder[:0]
	for _, pid := range r.store.participantOrder {
		if r.store.participants[pid].EventID == id {
			delete(r.store.participants, pid)
			continue
		}
		kept = append(kept, pid)
	}
	r.store.participantOrder = kept
	return nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
