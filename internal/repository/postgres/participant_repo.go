package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"campuseventhub/internal/domain"
)

type participantRepository struct {
	DB *sql.DB
}

// NewParticipantRepository returns a ParticipantRepository backed by the
// given database.
func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{DB: db}
}

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `
		INSERT INTO participants (name, email, registration_date, event_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		p.Name, p.Email, p.RegistrationDate, p.EventID,
	).Scan(&p.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *participantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	query := `
		SELECT id, name, email, registration_date, event_id
		FROM participants
		WHERE id = $1
	`
	p := &domain.Participant{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Email, &p.RegistrationDate, &p.EventID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) List(ctx context.Context) ([]*domain.Participant, error) {
	query := `
		SELECT id, name, email, registration_date, event_id
		FROM participants
		ORDER BY registration_date, id
	`
	return r.queryParticipants(ctx, query)
}

func (r *participantRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Participant, error) {
	query := `
		SELECT id, name, email, registration_date, event_id
		FROM participants
		WHERE event_id = $1
		ORDER BY registration_date, id
	`
	return r.queryParticipants(ctx, query, eventID)
}

func (r *participantRepository) ListByName(ctx context.Context, name string) ([]*domain.Participant, error) {
	query := `
		SELECT id, name, email, registration_date, event_id
		FROM participants
		WHERE name = $1
		ORDER BY registration_date, id
	`
	return r.queryParticipants(ctx, query, name)
}

func (r *participantRepository) queryParticipants(ctx context.Context, query string, args ...any) ([]*domain.Participant, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := []*domain.Participant{}
	for rows.Next() {
		p := &domain.Participant{}
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Email, &p.RegistrationDate, &p.EventID,
		); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *participantRepository) Update(ctx context.Context, id string, upd domain.ParticipantUpdate) (*domain.Participant, error) {
	query := `
		UPDATE participants
		SET name  = COALESCE($2, name),
		    email = COALESCE($3, email)
		WHERE id = $1
		RETURNING id, name, email, registration_date, event_id
	`
	p := &domain.Participant{}
	err := r.DB.QueryRowContext(ctx, query, id,
		nullString(upd.Name), nullString(upd.Email),
	).Scan(
		&p.ID, &p.Name, &p.Email, &p.RegistrationDate, &p.EventID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, id)
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

func (r *participantRepository) CountByEventID(ctx context.Context, eventID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM participants WHERE event_id = $1`, eventID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *participantRepository) IsRegistered(ctx context.Context, name, eventID string) (bool, error) {
	var registered bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM participants WHERE name = $1 AND event_id = $2)`,
		name, eventID,
	).Scan(&registered)
	if err != nil {
		return false, err
	}
	return registered, nil
}
