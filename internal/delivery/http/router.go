// Package http wires controllers and middleware into the HTTP router.
package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campuseventhub/internal/delivery/http/controllers"
	"campuseventhub/internal/delivery/http/middleware"
	"campuseventhub/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes. Event
// and roster reads are open; registration and the task list require a login;
// event mutations and the CSV export require the admin role.
func NewRouter(
	verifier domain.TokenVerifier,
	eventController *controllers.EventController,
	participantController *controllers.ParticipantController,
	taskController *controllers.TaskController,
	authController *controllers.AuthController,
) *http.ServeMux {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(verifier)
	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.RequireRole(domain.RoleAdmin)(next))
	}

	// Events
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEventByID)
	mux.HandleFunc("POST /events", admin(eventController.CreateEvent))
	mux.HandleFunc("PATCH /events/{eventID}", admin(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", admin(eventController.DeleteEvent))

	// Participants
	mux.HandleFunc("GET /events/{eventID}/participants", participantController.ListParticipants)
	mux.HandleFunc("POST /events/{eventID}/participants", auth(participantController.Register))
	mux.HandleFunc("DELETE /events/{eventID}/participants", auth(participantController.Unregister))
	mux.HandleFunc("GET /events/{eventID}/participants/csv", admin(participantController.ExportCSV))
	mux.HandleFunc("GET /registrations", auth(participantController.Registrations))

	// Tasks
	mux.HandleFunc("GET /tasks", auth(taskController.ListTasks))
	mux.HandleFunc("POST /tasks", auth(taskController.CreateTask))
	mux.HandleFunc("PATCH /tasks/{taskID}", auth(taskController.UpdateTask))
	mux.HandleFunc("POST /tasks/{taskID}/toggle", auth(taskController.ToggleTask))
	mux.HandleFunc("DELETE /tasks/{taskID}", auth(taskController.DeleteTask))
	mux.HandleFunc("GET /categories", auth(taskController.ListCategories))
	mux.HandleFunc("POST /categories", auth(taskController.CreateCategory))
	mux.HandleFunc("DELETE /categories/{categoryID}", auth(taskController.DeleteCategory))

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("GET /auth/me", auth(authController.Me))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
