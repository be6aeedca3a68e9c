package domain

import (
	"context"
	"time"
)

// Event represents a campus event as stored. Date is the display calendar
// date (YYYY-MM-DD); CreatedAt is set once by the store and never changes.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Department  string    `json:"department"`
	Date        string    `json:"date"`
	Location    string    `json:"location"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEvent returns a new Event with the given fields. ID and CreatedAt are
// set by the repository on create.
func NewEvent(title, description, department, date, location, image string) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Department:  department,
		Date:        date,
		Location:    location,
		Image:       image,
	}
}

// EventView is the event shape exposed to clients: the stored record
// annotated with the live participant count.
// swagger:model EventView
type EventView struct {
	Event
	Participants int `json:"participants"`
}

// EventUpdate holds the optional fields of an event update. Nil fields are
// unchanged. ID and CreatedAt cannot be updated.
type EventUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Department  *string `json:"department"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Image       *string `json:"image"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	ListByDepartment(ctx context.Context, department string) ([]*Event, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	// Delete removes the event and every participant registered for it as
	// one logical step. Returns ErrNotFound if the event does not exist.
	Delete(ctx context.Context, id string) error
}

// EventService defines the client-facing event operations. Every returned
// event carries a participant count recomputed from live store state.
type EventService interface {
	ListEvents(ctx context.Context) ([]*EventView, error)
	GetEventByID(ctx context.Context, id string) (*EventView, error)
	CreateEvent(ctx context.Context, event *Event) (*EventView, error)
	UpdateEvent(ctx context.Context, id string, upd EventUpdate) (*EventView, error)
	DeleteEvent(ctx context.Context, id string) error
	ListEventsByDepartment(ctx context.Context, department string) ([]*EventView, error)
}
