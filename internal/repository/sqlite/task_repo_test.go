package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"campuseventhub/internal/domain"

	"github.com/stretchr/testify/require"
)

func openTestRepo(t *testing.T) domain.TaskRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.db")
	repo, db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return repo
}

func TestOpen_SeedsDefaultCategories(t *testing.T) {
	repo := openTestRepo(t)

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	require.Equal(t, "Work", categories[0].Name)
	require.Equal(t, "#9b87f5", categories[0].Color)
	require.Equal(t, "Personal", categories[1].Name)
	require.Equal(t, "Study", categories[2].Name)
}

func TestTaskRepository_CreateAndGet(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	categoryID := "1"
	task := domain.NewTask("Submit report", "Due Friday", &categoryID, domain.PriorityHigh)
	require.NoError(t, repo.CreateTask(ctx, task))
	require.NotEmpty(t, task.ID)
	require.False(t, task.CreatedAt.IsZero())

	got, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, "Submit report", got.Title)
	require.Equal(t, "Due Friday", got.Description)
	require.False(t, got.Completed)
	require.NotNil(t, got.CategoryID)
	require.Equal(t, "1", *got.CategoryID)
	require.Equal(t, domain.PriorityHigh, got.Priority)
}

func TestTaskRepository_GetMissing(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.GetTask(context.Background(), "missing")
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestTaskRepository_UpdateMergesFields(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	task := domain.NewTask("Draft", "", nil, domain.PriorityLow)
	require.NoError(t, repo.CreateTask(ctx, task))

	completed := true
	priority := domain.PriorityHigh
	got, err := repo.UpdateTask(ctx, task.ID, domain.TaskUpdate{
		Completed: &completed,
		Priority:  &priority,
	})
	require.NoError(t, err)
	require.Equal(t, "Draft", got.Title)
	require.True(t, got.Completed)
	require.Equal(t, domain.PriorityHigh, got.Priority)

	// SetCategory false leaves the category untouched, true replaces it.
	categoryID := "2"
	got, err = repo.UpdateTask(ctx, task.ID, domain.TaskUpdate{SetCategory: true, CategoryID: &categoryID})
	require.NoError(t, err)
	require.NotNil(t, got.CategoryID)
	require.Equal(t, "2", *got.CategoryID)

	got, err = repo.UpdateTask(ctx, task.ID, domain.TaskUpdate{})
	require.NoError(t, err)
	require.NotNil(t, got.CategoryID)

	got, err = repo.UpdateTask(ctx, task.ID, domain.TaskUpdate{SetCategory: true, CategoryID: nil})
	require.NoError(t, err)
	require.Nil(t, got.CategoryID)
}

func TestTaskRepository_Delete(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	task := domain.NewTask("Throwaway", "", nil, domain.PriorityMedium)
	require.NoError(t, repo.CreateTask(ctx, task))
	require.NoError(t, repo.DeleteTask(ctx, task.ID))

	_, err := repo.GetTask(ctx, task.ID)
	require.True(t, errors.Is(err, domain.ErrNotFound))
	require.True(t, errors.Is(repo.DeleteTask(ctx, task.ID), domain.ErrNotFound))
}

func TestTaskRepository_ListOrdersByCreation(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	first := domain.NewTask("First", "", nil, domain.PriorityMedium)
	second := domain.NewTask("Second", "", nil, domain.PriorityMedium)
	require.NoError(t, repo.CreateTask(ctx, first))
	require.NoError(t, repo.CreateTask(ctx, second))

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "First", tasks[0].Title)
	require.Equal(t, "Second", tasks[1].Title)
}

func TestTaskRepository_DeleteCategoryClearsTasks(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	category := &domain.Category{Name: "Clubs", Color: "#ff0000"}
	require.NoError(t, repo.CreateCategory(ctx, category))

	task := domain.NewTask("Book room", "", &category.ID, domain.PriorityMedium)
	require.NoError(t, repo.CreateTask(ctx, task))

	require.NoError(t, repo.DeleteCategory(ctx, category.ID))

	got, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.Nil(t, got.CategoryID)

	require.True(t, errors.Is(repo.DeleteCategory(ctx, category.ID), domain.ErrNotFound))
}

func TestTaskRepository_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	ctx := context.Background()

	repo, db, err := Open(path)
	require.NoError(t, err)
	task := domain.NewTask("Survive restart", "", nil, domain.PriorityMedium)
	require.NoError(t, repo.CreateTask(ctx, task))
	require.NoError(t, db.Close())

	repo, db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Survive restart", tasks[0].Title)

	// Reopen must not duplicate the seeded categories.
	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
}
