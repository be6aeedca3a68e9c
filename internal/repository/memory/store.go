// Package memory implements the canonical in-memory record store behind the
// repository ports. A Store instance owns its collections outright; nothing
// reads or mutates them except through the repositories constructed over it,
// and tests get isolation by constructing a fresh Store.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"campuseventhub/internal/domain"
)

// Store holds the authoritative Event, Participant, and User collections.
// Insertion order is preserved for listings. All access goes through the
// repositories, each of which takes the store lock for the whole operation,
// so every repository call is atomic (including the event delete cascade).
type Store struct {
	mu sync.RWMutex

	events     map[string]*domain.Event
	eventOrder []string

	participants     map[string]*domain.Participant
	participantOrder []string

	users        map[string]*domain.User
	usersByEmail map[string]string
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		events:       make(map[string]*domain.Event),
		participants: make(map[string]*domain.Participant),
		users:        make(map[string]*domain.User),
		usersByEmail: make(map[string]string),
	}
}

// Seed loads the demo fixture data: three events across departments and
// three registrations.
func (s *Store) Seed() {
	now := time.Now()

	events := []*domain.Event{
		{
			Title:       "Programming Contest",
			Description: "Annual coding competition for all CS students",
			Department:  "Computer Science",
			Date:        "2025-05-15",
			Location:    "CS Building, Room 101",
			Image:       "https://images.unsplash.com/photo-1605810230434-7631ac76ec81",
		},
		{
			Title:       "Business Ethics Seminar",
			Description: "A discussion on ethical practices in business",
			Department:  "Business",
			Date:        "2025-05-20",
			Location:    "Business School Auditorium",
			Image:       "https://images.unsplash.com/photo-1519389950473-47ba0277781c",
		},
		{
			Title:       "Engineering Expo",
			Description: "Showcase of student engineering projects",
			Department:  "Engineering",
			Date:        "2025-06-10",
			Location:    "Engineering Building",
			Image:       "https://images.unsplash.com/photo-1498050108023-c5249f4df085",
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ev := range events {
		ev.ID = uuid.NewString()
		ev.CreatedAt = now
		s.events[ev.ID] = ev
		s.eventOrder = append(s.eventOrder, ev.ID)
	}

	seedParticipants := []struct {
		name    string
		email   string
		eventIx int
	}{
		{"John Smith", "john.smith@university.edu", 0},
		{"Emma Johnson", "emma.johnson@university.edu", 0},
		{"Michael Brown", "michael.brown@university.edu", 1},
	}
	for _, sp := range seedParticipants {
		p := &domain.Participant{
			ID:               uuid.NewString(),
			Name:             sp.name,
			Email:            sp.email,
			RegistrationDate: now,
			EventID:          events[sp.eventIx].ID,
		}
		s.participants[p.ID] = p
		s.participantOrder = append(s.participantOrder, p.ID)
	}
}

func cloneEvent(e *domain.Event) *domain.Event {
	c := *e
	return &c
}

func cloneParticipant(p *domain.Participant) *domain.Participant {
	c := *p
	return &c
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}
