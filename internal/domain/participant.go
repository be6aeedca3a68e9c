package domain

import (
	"context"
	"time"
)

// Participant is a registration record linking a display name to an event.
// Records are immutable once created; changing a registration is modeled as
// unregister followed by register.
// swagger:model Participant
type Participant struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registration_date"`
	EventID          string    `json:"event_id"`
}

// NewParticipant returns a new Participant. ID is set by the repository on
// create.
func NewParticipant(name, email, eventID string, registrationDate time.Time) *Participant {
	return &Participant{
		Name:             name,
		Email:            email,
		EventID:          eventID,
		RegistrationDate: registrationDate,
	}
}

// ParticipantUpdate holds the optional fields of a participant update.
// Nil fields are unchanged. ID is never updated.
type ParticipantUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// ParticipantCSVRow is one row of the participant roster export, with the
// registration date reduced to its calendar-date portion (YYYY-MM-DD).
// swagger:model ParticipantCSVRow
type ParticipantCSVRow struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	RegistrationDate string `json:"registration_date"`
}

// ParticipantRepository defines storage operations for participants.
// Create fails with ErrNotFound when the referenced event does not exist;
// dangling registrations are never allowed to persist.
type ParticipantRepository interface {
	Create(ctx context.Context, p *Participant) error
	GetByID(ctx context.Context, id string) (*Participant, error)
	List(ctx context.Context) ([]*Participant, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Participant, error)
	ListByName(ctx context.Context, name string) ([]*Participant, error)
	Update(ctx context.Context, id string, upd ParticipantUpdate) (*Participant, error)
	Delete(ctx context.Context, id string) error
	CountByEventID(ctx context.Context, eventID string) (int, error)
	// IsRegistered reports whether a participant with this exact name
	// (case-sensitive) is registered for the event.
	IsRegistered(ctx context.Context, name, eventID string) (bool, error)
}

// ParticipantService defines the registration workflow and roster queries.
type ParticipantService interface {
	// Register registers name for the event. Fails with ErrNotFound when the
	// event does not exist and ErrAlreadyRegistered when a registration for
	// the same (name, event) pair exists.
	Register(ctx context.Context, name, eventID string) (*Participant, error)
	// Unregister removes the registration for (name, event). Fails with
	// ErrNotRegistered when there is none.
	Unregister(ctx context.Context, name, eventID string) error
	ListEventParticipants(ctx context.Context, eventID string) ([]*Participant, error)
	ParticipantsForCSV(ctx context.Context, eventID string) ([]ParticipantCSVRow, error)
	IsRegistered(ctx context.Context, name, eventID string) (bool, error)
	// ListUserEventIDs returns the event IDs of every registration held by
	// name, across all events.
	ListUserEventIDs(ctx context.Context, name string) ([]string, error)
}
