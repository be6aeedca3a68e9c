package controllers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"campuseventhub/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on
// log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

func p0Time() time.Time {
	return time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	listResult   []*domain.EventView
	listErr      error
	byDepartment map[string][]*domain.EventView
	byID         map[string]*domain.EventView
	getErr       error
	createResult *domain.EventView
	createErr    error
	updateResult *domain.EventView
	updateErr    error
	deleteErr    error

	lastCreated    *domain.Event
	lastUpdateID   string
	lastUpdate     domain.EventUpdate
	lastDeleteID   string
	lastDepartment string
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.EventView, error) {
	return f.listResult, f.listErr
}

func (f *fakeEventService) GetEventByID(ctx context.Context, id string) (*domain.EventView, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if v, ok := f.byID[id]; ok {
		return v, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.EventView, error) {
	f.lastCreated = event
	return f.createResult, f.createErr
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, id string, upd domain.EventUpdate) (*domain.EventView, error) {
	f.lastUpdateID = id
	f.lastUpdate = upd
	return f.updateResult, f.updateErr
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteErr
}

func (f *fakeEventService) ListEventsByDepartment(ctx context.Context, department string) ([]*domain.EventView, error) {
	f.lastDepartment = department
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byDepartment[department], nil
}

// fakeParticipantService implements domain.ParticipantService for handler
// tests.
type fakeParticipantService struct {
	registerResult *domain.Participant
	registerErr    error
	unregisterErr  error
	listResult     []*domain.Participant
	listErr        error
	csvResult      []domain.ParticipantCSVRow
	csvErr         error
	eventIDsResult []string
	eventIDsErr    error

	lastRegisterName    string
	lastRegisterEventID string
	lastUnregisterName  string
	lastListEventID     string
	lastCSVEventID      string
	lastEventIDsName    string
}

func (f *fakeParticipantService) Register(ctx context.Context, name, eventID string) (*domain.Participant, error) {
	f.lastRegisterName = name
	f.lastRegisterEventID = eventID
	return f.registerResult, f.registerErr
}

func (f *fakeParticipantService) Unregister(ctx context.Context, name, eventID string) error {
	f.lastUnregisterName = name
	return f.unregisterErr
}

func (f *fakeParticipantService) ListEventParticipants(ctx context.Context, eventID string) ([]*domain.Participant, error) {
	f.lastListEventID = eventID
	return f.listResult, f.listErr
}

func (f *fakeParticipantService) ParticipantsForCSV(ctx context.Context, eventID string) ([]domain.ParticipantCSVRow, error) {
	f.lastCSVEventID = eventID
	return f.csvResult, f.csvErr
}

func (f *fakeParticipantService) IsRegistered(ctx context.Context, name, eventID string) (bool, error) {
	return false, nil
}

func (f *fakeParticipantService) ListUserEventIDs(ctx context.Context, name string) ([]string, error) {
	f.lastEventIDsName = name
	return f.eventIDsResult, f.eventIDsErr
}

// fakeTaskService implements domain.TaskService for handler tests.
type fakeTaskService struct {
	addResult        *domain.Task
	addErr           error
	updateResult     *domain.Task
	updateErr        error
	deleteErr        error
	toggleResult     *domain.Task
	toggleErr        error
	listResult       []*domain.Task
	listErr          error
	addCatResult     *domain.Category
	addCatErr        error
	deleteCatErr     error
	categoriesResult []*domain.Category
	categoriesErr    error

	lastAddTitle    string
	lastAddPriority domain.Priority
	lastUpdateID    string
	lastUpdate      domain.TaskUpdate
	lastToggleID    string
	lastDeleteID    string
	lastDeleteCatID string
}

func (f *fakeTaskService) AddTask(ctx context.Context, title, description string, categoryID *string, priority domain.Priority) (*domain.Task, error) {
	f.lastAddTitle = title
	f.lastAddPriority = priority
	return f.addResult, f.addErr
}

func (f *fakeTaskService) UpdateTask(ctx context.Context, id string, upd domain.TaskUpdate) (*domain.Task, error) {
	f.lastUpdateID = id
	f.lastUpdate = upd
	return f.updateResult, f.updateErr
}

func (f *fakeTaskService) DeleteTask(ctx context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteErr
}

func (f *fakeTaskService) ToggleTask(ctx context.Context, id string) (*domain.Task, error) {
	f.lastToggleID = id
	return f.toggleResult, f.toggleErr
}

func (f *fakeTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return f.listResult, f.listErr
}

func (f *fakeTaskService) AddCategory(ctx context.Context, name, color string) (*domain.Category, error) {
	return f.addCatResult, f.addCatErr
}

func (f *fakeTaskService) DeleteCategory(ctx context.Context, id string) error {
	f.lastDeleteCatID = id
	return f.deleteCatErr
}

func (f *fakeTaskService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return f.categoriesResult, f.categoriesErr
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token    string
	user     *domain.User
	loginErr error
	getErr   error

	lastLoginEmail string
	lastGetID      string
}

func (f *fakeAuthService) CreateUser(ctx context.Context, email, name string, role domain.Role, password string) (*domain.User, error) {
	return f.user, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	f.lastLoginEmail = email
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.token, f.user, nil
}

func (f *fakeAuthService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	f.lastGetID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.user, nil
}
