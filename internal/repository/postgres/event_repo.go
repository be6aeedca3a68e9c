package postgres

import (
	"context"
	"database/sql"
	"errors"

	"campuseventhub/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns an EventRepository backed by the given database.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, department, date, location, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Department, e.Date, e.Location, e.Image,
	).Scan(&e.ID, &e.CreatedAt)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, title, description, department, date, location, image, created_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Department, &e.Date, &e.Location, &e.Image, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, title, description, department, date, location, image, created_at
		FROM events
		ORDER BY created_at, id
	`
	return r.queryEvents(ctx, query)
}

func (r *eventRepository) ListByDepartment(ctx context.Context, department string) ([]*domain.Event, error) {
	query := `
		SELECT id, title, description, department, date, location, image, created_at
		FROM events
		WHERE department = $1
		ORDER BY created_at, id
	`
	return r.queryEvents(ctx, query, department)
}

func (r *eventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*domain.Event{}
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Department, &e.Date, &e.Location, &e.Image, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	query := `
		UPDATE events
		SET title       = COALESCE($2, title),
		    description = COALESCE($3, description),
		    department  = COALESCE($4, department),
		    date        = COALESCE($5, date),
		    location    = COALESCE($6, location),
		    image       = COALESCE($7, image)
		WHERE id = $1
		RETURNING id, title, description, department, date, location, image, created_at
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id,
		nullString(upd.Title), nullString(upd.Description), nullString(upd.Department),
		nullString(upd.Date), nullString(upd.Location), nullString(upd.Image),
	).Scan(
		&e.ID, &e.Title, &e.Description, &e.Department, &e.Date, &e.Location, &e.Image, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	// Participants go with the event via ON DELETE CASCADE.
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
