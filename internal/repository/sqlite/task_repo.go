// Package sqlite implements the task repository over an embedded SQLite
// database so the task list survives restarts without external services.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"campuseventhub/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    color TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    completed INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL,
    category_id TEXT REFERENCES categories(id),
    priority TEXT NOT NULL DEFAULT 'medium'
);
`

// defaultCategories seeds a fresh database with the stock categories.
var defaultCategories = []domain.Category{
	{ID: "1", Name: "Work", Color: "#9b87f5"},
	{ID: "2", Name: "Personal", Color: "#1EAEDB"},
	{ID: "3", Name: "Study", Color: "#7E69AB"},
}

type taskRepository struct {
	DB *sql.DB
}

// Open opens (creating if necessary) the task database at path, applies the
// schema and seeds the default categories on first run.
func Open(path string) (domain.TaskRepository, *sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open task db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("apply task schema: %w", err)
	}
	repo := &taskRepository{DB: db}
	if err := repo.seedCategories(context.Background()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("seed categories: %w", err)
	}
	return repo, db, nil
}

// NewTaskRepository wraps an already-opened database. The schema must have
// been applied.
func NewTaskRepository(db *sql.DB) domain.TaskRepository {
	return &taskRepository{DB: db}
}

func (r *taskRepository) seedCategories(ctx context.Context) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, c := range defaultCategories {
		if _, err := r.DB.ExecContext(ctx,
			`INSERT INTO categories (id, name, color) VALUES (?, ?, ?)`,
			c.ID, c.Name, c.Color,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *taskRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	task.ID = uuid.NewString()
	task.CreatedAt = time.Now().UTC()
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO tasks (id, title, description, completed, created_at, category_id, priority)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Description, task.Completed, task.CreatedAt,
		nullString(task.CategoryID), string(task.Priority),
	)
	return err
}

func (r *taskRepository) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, title, description, completed, created_at, category_id, priority
		FROM tasks
		WHERE id = ?`, id)
	return scanTask(row)
}

func (r *taskRepository) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, description, completed, created_at, category_id, priority
		FROM tasks
		ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) UpdateTask(ctx context.Context, id string, upd domain.TaskUpdate) (*domain.Task, error) {
	task, err := r.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.Completed != nil {
		task.Completed = *upd.Completed
	}
	if upd.Priority != nil {
		task.Priority = *upd.Priority
	}
	if upd.SetCategory {
		task.CategoryID = upd.CategoryID
	}
	_, err = r.DB.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, completed = ?, category_id = ?, priority = ?
		WHERE id = ?`,
		task.Title, task.Description, task.Completed,
		nullString(task.CategoryID), string(task.Priority), id,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) DeleteTask(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
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

func (r *taskRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	category.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO categories (id, name, color) VALUES (?, ?, ?)`,
		category.ID, category.Name, category.Color,
	)
	return err
}

func (r *taskRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, color FROM categories ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		c := &domain.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *taskRepository) DeleteCategory(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
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
	if _, err := tx.ExecContext(ctx,
		`UPDATE tasks SET category_id = NULL WHERE category_id = ?`, id,
	); err != nil {
		return err
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	t := &domain.Task{}
	var categoryID sql.NullString
	var priority string
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &categoryID, &priority)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if categoryID.Valid {
		t.CategoryID = &categoryID.String
	}
	t.Priority = domain.Priority(priority)
	return t, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
