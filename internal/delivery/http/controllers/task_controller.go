package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"campuseventhub/internal/delivery/http/helpers"
	"campuseventhub/internal/domain"
)

// CreateTaskRequest is the request body for POST /tasks.
type CreateTaskRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	CategoryID  *string         `json:"category_id"`
	Priority    domain.Priority `json:"priority"`
}

// Validate implements Validator.
func (c CreateTaskRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if c.Priority != "" && !c.Priority.Valid() {
		errs = append(errs, "priority must be low, medium or high")
	}
	return errs
}

// UpdateTaskRequest is the request body for PATCH /tasks/{taskID}. Absent
// fields are unchanged; category_id must be sent (possibly null) to change
// the category.
type UpdateTaskRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Completed   *bool            `json:"completed"`
	Priority    *domain.Priority `json:"priority"`
	CategoryID  *string          `json:"category_id"`
	SetCategory bool             `json:"set_category"`
}

// Validate implements Validator.
func (u UpdateTaskRequest) Validate() []string {
	var errs []string
	if u.Priority != nil && !u.Priority.Valid() {
		errs = append(errs, "priority must be low, medium or high")
	}
	return errs
}

// CreateCategoryRequest is the request body for POST /categories.
type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Validate implements Validator.
func (c CreateCategoryRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.Color == "" {
		errs = append(errs, "color is required")
	}
	return errs
}

// TaskSuccessResponse is the success envelope for single-task endpoints.
type TaskSuccessResponse struct {
	Data  *domain.Task      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TaskListSuccessResponse is the success envelope for GET /tasks.
type TaskListSuccessResponse struct {
	Data  []*domain.Task    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CategorySuccessResponse is the success envelope for POST /categories.
type CategorySuccessResponse struct {
	Data  *domain.Category  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CategoryListSuccessResponse is the success envelope for GET /categories.
type CategoryListSuccessResponse struct {
	Data  []*domain.Category `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type TaskController struct {
	Logger  *slog.Logger
	Service domain.TaskService
}

func NewTaskController(logger *slog.Logger, svc domain.TaskService) *TaskController {
	return &TaskController{
		Logger:  logger,
		Service: svc,
	}
}

// ListTasks godoc
// @Summary List all tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.TaskListSuccessResponse "data contains the tasks"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tasks [get]
func (c *TaskController) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := c.Service.ListTasks(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tasks)
}

// CreateTask godoc
// @Summary Add a task
// @Description Add a task to the shared list. Priority defaults to medium when omitted.
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param task body CreateTaskRequest true "Task data"
// @Success 201 {object} controllers.TaskSuccessResponse "data contains the created task"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tasks [post]
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	task, err := c.Service.AddTask(r.Context(), req.Title, req.Description, req.CategoryID, req.Priority)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, task)
}

// UpdateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Task ID"
// @Param task body UpdateTaskRequest true "Fields to update"
// @Success 200 {object} controllers.TaskSuccessResponse "data contains the updated task"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tasks/{taskID} [patch]
func (c *TaskController) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("taskID")
	if taskID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing taskID")
		return
	}
	var req UpdateTaskRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	upd := domain.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
		SetCategory: req.SetCategory,
		CategoryID:  req.CategoryID,
	}
	task, err := c.Service.UpdateTask(r.Context(), taskID, upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, task)
}

// ToggleTask godoc
// @Summary Toggle a task's completed flag
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Task ID"
// @Success 200 {object} controllers.TaskSuccessResponse "data contains the toggled task"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tasks/{taskID}/toggle [post]
func (c *TaskController) ToggleTask(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("taskID")
	if taskID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing taskID")
		return
	}
	task, err := c.Service.ToggleTask(r.Context(), taskID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, task)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Task ID"
// @Success 204 "task deleted"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tasks/{taskID} [delete]
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("taskID")
	if taskID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing taskID")
		return
	}
	if err := c.Service.DeleteTask(r.Context(), taskID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCategories godoc
// @Summary List task categories
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.CategoryListSuccessResponse "data contains the categories"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /categories [get]
func (c *TaskController) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.Service.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary Add a task category
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body CreateCategoryRequest true "Category data"
// @Success 201 {object} controllers.CategorySuccessResponse "data contains the created category"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /categories [post]
func (c *TaskController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	category, err := c.Service.AddCategory(r.Context(), req.Name, req.Color)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, category)
}

// DeleteCategory godoc
// @Summary Delete a task category
// @Description Delete the category and clear it from every task that referenced it.
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param categoryID path string true "Category ID"
// @Success 204 "category deleted"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /categories/{categoryID} [delete]
func (c *TaskController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := r.PathValue("categoryID")
	if categoryID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing categoryID")
		return
	}
	if err := c.Service.DeleteCategory(r.Context(), categoryID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
