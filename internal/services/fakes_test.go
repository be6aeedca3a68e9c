package services

import (
	"context"
	"fmt"
	"time"

	"campuseventhub/internal/domain"
)

func p0Time() time.Time {
	return time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
}

// fakeEventRepo implements domain.EventRepository for tests.
type fakeEventRepo struct {
	events map[string]*domain.Event
	order  []string
	nextID int
	err    error
	// participants lets Delete cascade like the real store when the two
	// fakes share a record set.
	participants *fakeParticipantRepo
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*domain.Event)}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	e.ID = fmt.Sprintf("e%d", f.nextID)
	e.CreatedAt = time.Now()
	f.events[e.ID] = e
	f.order = append(f.order, e.ID)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Event, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.events[id])
	}
	return out, nil
}

func (f *fakeEventRepo) ListByDepartment(ctx context.Context, department string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, id := range f.order {
		if f.events[id].Department == department {
			out = append(out, f.events[id])
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	e, ok := f.events[id]
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
	return e, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.events, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	if f.participants != nil {
		var kept []*domain.Participant
		for _, p := range f.participants.items {
			if p.EventID != id {
				kept = append(kept, p)
			}
		}
		f.participants.items = kept
	}
	return nil
}

// fakeParticipantRepo implements domain.ParticipantRepository for tests.
type fakeParticipantRepo struct {
	items     []*domain.Participant
	nextID    int
	createErr error
	listErr   error
}

func (f *fakeParticipantRepo) Create(ctx context.Context, p *domain.Participant) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	p.ID = fmt.Sprintf("p%d", f.nextID)
	f.items = append(f.items, p)
	return nil
}

func (f *fakeParticipantRepo) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeParticipantRepo) List(ctx context.Context) ([]*domain.Participant, error) {
	return f.items, nil
}

func (f *fakeParticipantRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Participant, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Participant
	for _, p := range f.items {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) ListByName(ctx context.Context, name string) ([]*domain.Participant, error) {
	var out []*domain.Participant
	for _, p := range f.items {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) Update(ctx context.Context, id string, upd domain.ParticipantUpdate) (*domain.Participant, error) {
	for _, p := range f.items {
		if p.ID == id {
			if upd.Name != nil {
				p.Name = *upd.Name
			}
			if upd.Email != nil {
				p.Email = *upd.Email
			}
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeParticipantRepo) Delete(ctx context.Context, id string) error {
	for i, p := range f.items {
		if p.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeParticipantRepo) CountByEventID(ctx context.Context, eventID string) (int, error) {
	n := 0
	for _, p := range f.items {
		if p.EventID == eventID {
			n++
		}
	}
	return n, nil
}

func (f *fakeParticipantRepo) IsRegistered(ctx context.Context, name, eventID string) (bool, error) {
	for _, p := range f.items {
		if p.Name == name && p.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}

// recordingNotifier captures notifications so tests can assert exactly one
// per outcome.
type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(ctx context.Context, message string) {
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(ctx context.Context, message string) {
	n.errors = append(n.errors, message)
}

// fakeEmailService records confirmation emails.
type fakeEmailService struct {
	sent []*domain.RegistrationEmailData
	err  error
}

func (f *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}
