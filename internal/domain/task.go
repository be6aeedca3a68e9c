package domain

import (
	"context"
	"time"
)

// Priority is a task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a personal todo item. Tasks persist across restarts.
// swagger:model Task
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	CategoryID  *string   `json:"category_id"`
	Priority    Priority  `json:"priority"`
}

// NewTask returns a new Task. ID and CreatedAt are set by the repository on
// create.
func NewTask(title, description string, categoryID *string, priority Priority) *Task {
	return &Task{
		Title:       title,
		Description: description,
		CategoryID:  categoryID,
		Priority:    priority,
	}
}

// Category groups tasks and carries a display color.
// swagger:model Category
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TaskUpdate holds the optional fields of a task update. Nil fields are
// unchanged. SetCategory distinguishes "leave category alone" from
// "clear/replace it".
type TaskUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Completed   *bool     `json:"completed"`
	Priority    *Priority `json:"priority"`
	SetCategory bool      `json:"-"`
	CategoryID  *string   `json:"category_id"`
}

// TaskRepository defines durable storage for tasks and categories.
type TaskRepository interface {
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id string) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	UpdateTask(ctx context.Context, id string, upd TaskUpdate) (*Task, error)
	DeleteTask(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, category *Category) error
	ListCategories(ctx context.Context) ([]*Category, error)
	// DeleteCategory removes the category and clears CategoryID on every
	// task that referenced it.
	DeleteCategory(ctx context.Context, id string) error
}

// TaskService defines the task-list operations.
type TaskService interface {
	AddTask(ctx context.Context, title, description string, categoryID *string, priority Priority) (*Task, error)
	UpdateTask(ctx context.Context, id string, upd TaskUpdate) (*Task, error)
	DeleteTask(ctx context.Context, id string) error
	ToggleTask(ctx context.Context, id string) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	AddCategory(ctx context.Context, name, color string) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]*Category, error)
}
