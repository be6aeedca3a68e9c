package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campuseventhub/internal/domain"
)

type taskService struct {
	taskRepo domain.TaskRepository
	notifier domain.Notifier
}

// NewTaskService creates a TaskService over the given repository.
func NewTaskService(taskRepo domain.TaskRepository, notifier domain.Notifier) domain.TaskService {
	return &taskService{taskRepo: taskRepo, notifier: notifier}
}

func (s *taskService) AddTask(ctx context.Context, title, description string, categoryID *string, priority domain.Priority) (*domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrInvalidInput
	}
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, domain.ErrInvalidInput
	}

	task := domain.NewTask(title, description, categoryID, priority)
	if err := s.taskRepo.CreateTask(ctx, task); err != nil {
		s.notifier.Error(ctx, "Failed to add task")
		return nil, fmt.Errorf("create task: %w", err)
	}
	s.notifier.Success(ctx, "Task added successfully!")
	return task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, id string, upd domain.TaskUpdate) (*domain.Task, error) {
	if upd.Priority != nil && !upd.Priority.Valid() {
		return nil, domain.ErrInvalidInput
	}
	task, err := s.taskRepo.UpdateTask(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.notifier.Error(ctx, "Task not found")
			return nil, domain.ErrNotFound
		}
		s.notifier.Error(ctx, "Failed to update task")
		return nil, fmt.Errorf("update task: %w", err)
	}
	s.notifier.Success(ctx, "Task updated successfully!")
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.taskRepo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.notifier.Error(ctx, "Task not found")
			return domain.ErrNotFound
		}
		s.notifier.Error(ctx, "Failed to delete task")
		return fmt.Errorf("delete task: %w", err)
	}
	s.notifier.Success(ctx, "Task deleted successfully!")
	return nil
}

// ToggleTask flips the completed flag. It reports no notification; toggling
// is too frequent an action to toast.
func (s *taskService) ToggleTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.taskRepo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	completed := !task.Completed
	updated, err := s.taskRepo.UpdateTask(ctx, id, domain.TaskUpdate{Completed: &completed})
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return updated, nil
}

func (s *taskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

func (s *taskService) AddCategory(ctx context.Context, name, color string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &domain.Category{Name: name, Color: color}
	if err := s.taskRepo.CreateCategory(ctx, category); err != nil {
		s.notifier.Error(ctx, "Failed to add category")
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.notifier.Success(ctx, "Category added successfully!")
	return category, nil
}

func (s *taskService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.taskRepo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.notifier.Error(ctx, "Category not found")
			return domain.ErrNotFound
		}
		s.notifier.Error(ctx, "Failed to delete category")
		return fmt.Errorf("delete category: %w", err)
	}
	s.notifier.Success(ctx, "Category deleted successfully!")
	return nil
}

func (s *taskService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.taskRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []*domain.Category{}
	}
	return categories, nil
}
