package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"campuseventhub/internal/domain"
)

// whitespaceRegex matches runs of whitespace, collapsed to a single "." when
// deriving an email from a display name.
var whitespaceRegex = regexp.MustCompile(`\s+`)

// DeriveEmail builds the deterministic address for a display name:
// lowercased, whitespace replaced with ".", suffixed with "@" + emailDomain.
func DeriveEmail(name, emailDomain string) string {
	local := whitespaceRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), ".")
	return local + "@" + emailDomain
}

type participantService struct {
	eventRepo       domain.EventRepository
	participantRepo domain.ParticipantRepository
	notifier        domain.Notifier
	emailService    domain.EmailService
	emailDomain     string
}

// NewParticipantService creates a ParticipantService. emailService may be
// nil, in which case no confirmation emails are sent.
func NewParticipantService(
	eventRepo domain.EventRepository,
	participantRepo domain.ParticipantRepository,
	notifier domain.Notifier,
	emailService domain.EmailService,
	emailDomain string,
) domain.ParticipantService {
	return &participantService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		notifier:        notifier,
		emailService:    emailService,
		emailDomain:     emailDomain,
	}
}

func (s *participantService) Register(ctx context.Context, name, eventID string) (*domain.Participant, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.notifier.Error(ctx, "Event not found")
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	registered, err := s.participantRepo.IsRegistered(ctx, name, eventID)
	if err != nil {
		return nil, fmt.Errorf("check registration: %w", err)
	}
	if registered {
		s.notifier.Error(ctx, "You are already registered for this event")
		return nil, domain.ErrAlreadyRegistered
	}

	p := domain.NewParticipant(name, DeriveEmail(name, s.emailDomain), eventID, time.Now())
	if err := s.participantRepo.Create(ctx, p); err != nil {
		s.notifier.Error(ctx, "Failed to register for event")
		return nil, fmt.Errorf("create participant: %w", err)
	}
	s.notifier.Success(ctx, "Successfully registered for the event")

	if s.emailService != nil {
		// Confirmation is best effort; the mailer logs its own failures.
		_ = s.emailService.SendRegistrationConfirmation(ctx, &domain.RegistrationEmailData{
			Email:      p.Email,
			Name:       p.Name,
			EventTitle: event.Title,
			EventDate:  event.Date,
			Location:   event.Location,
		})
	}
	return p, nil
}

func (s *participantService) Unregister(ctx context.Context, name, eventID string) error {
	participants, err := s.participantRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("list participants: %w", err)
	}

	var match *domain.Participant
	for _, p := range participants {
		if p.Name == name {
			match = p
			break
		}
	}
	if match == nil {
		s.notifier.Error(ctx, "You are not registered for this event")
		return domain.ErrNotRegistered
	}

	if err := s.participantRepo.Delete(ctx, match.ID); err != nil {
		s.notifier.Error(ctx, "Failed to unregister from event")
		return fmt.Errorf("delete participant: %w", err)
	}
	s.notifier.Success(ctx, "Successfully unregistered from the event")
	return nil
}

func (s *participantService) ListEventParticipants(ctx context.Context, eventID string) ([]*domain.Participant, error) {
	participants, err := s.participantRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	if participants == nil {
		participants = []*domain.Participant{}
	}
	return participants, nil
}

func (s *participantService) ParticipantsForCSV(ctx context.Context, eventID string) ([]domain.ParticipantCSVRow, error) {
	participants, err := s.participantRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	rows := make([]domain.ParticipantCSVRow, 0, len(participants))
	for _, p := range participants {
		rows = append(rows, domain.ParticipantCSVRow{
			Name:  p.Name,
			Email: p.Email,
			// Date portion only, in UTC, matching the exported artifact.
			RegistrationDate: p.RegistrationDate.UTC().Format("2006-01-02"),
		})
	}
	return rows, nil
}

func (s *participantService) IsRegistered(ctx context.Context, name, eventID string) (bool, error) {
	return s.participantRepo.IsRegistered(ctx, name, eventID)
}

func (s *participantService) ListUserEventIDs(ctx context.Context, name string) ([]string, error) {
	registrations, err := s.participantRepo.ListByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	out := make([]string, 0, len(registrations))
	for _, p := range registrations {
		out = append(out, p.EventID)
	}
	return out, nil
}
