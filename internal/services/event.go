package services

import (
	"context"
	"errors"
	"fmt"

	"campuseventhub/internal/domain"
)

type eventService struct {
	eventRepo       domain.EventRepository
	participantRepo domain.ParticipantRepository
	notifier        domain.Notifier
}

// NewEventService creates an EventService with the given repositories and
// outcome notifier.
func NewEventService(
	eventRepo domain.EventRepository,
	participantRepo domain.ParticipantRepository,
	notifier domain.Notifier,
) domain.EventService {
	return &eventService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		notifier:        notifier,
	}
}

// annotate builds the client-facing view: the stored event plus the live
// participant count. The count is recomputed on every call, never cached,
// so it can never be observed stale relative to the participant set.
func (s *eventService) annotate(ctx context.Context, e *domain.Event) (*domain.EventView, error) {
	count, err := s.participantRepo.CountByEventID(ctx, e.ID)
	if err != nil {
		return nil, fmt.Errorf("count participants: %w", err)
	}
	return &domain.EventView{Event: *e, Participants: count}, nil
}

func (s *eventService) annotateAll(ctx context.Context, events []*domain.Event) ([]*domain.EventView, error) {
	out := make([]*domain.EventView, 0, len(events))
	for _, e := range events {
		view, err := s.annotate(ctx, e)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.EventView, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return s.annotateAll(ctx, events)
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.EventView, error) {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return s.annotate(ctx, e)
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.EventView, error) {
	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.notifier.Error(ctx, "Failed to create event")
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.notifier.Success(ctx, "Event created successfully")
	return s.annotate(ctx, event)
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, upd domain.EventUpdate) (*domain.EventView, error) {
	updated, err := s.eventRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.notifier.Error(ctx, "Event not found")
			return nil, domain.ErrNotFound
		}
		s.notifier.Error(ctx, "Failed to update event")
		return nil, fmt.Errorf("update event: %w", err)
	}
	s.notifier.Success(ctx, "Event updated successfully")
	return s.annotate(ctx, updated)
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.notifier.Error(ctx, "Event not found")
			return domain.ErrNotFound
		}
		s.notifier.Error(ctx, "Failed to delete event")
		return fmt.Errorf("delete event: %w", err)
	}
	s.notifier.Success(ctx, "Event deleted successfully")
	return nil
}

func (s *eventService) ListEventsByDepartment(ctx context.Context, department string) ([]*domain.EventView, error) {
	events, err := s.eventRepo.ListByDepartment(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("list events by department: %w", err)
	}
	return s.annotateAll(ctx, events)
}
