package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"campuseventhub/internal/delivery/http/helpers"
	"campuseventhub/internal/domain"
)

// filenameWhitespace collapses runs of whitespace in event titles when
// building the CSV download filename.
var filenameWhitespace = regexp.MustCompile(`\s+`)

// RegisterRequest is the request body for POST /events/{eventID}/participants.
type RegisterRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// UnregisterRequest is the request body for DELETE /events/{eventID}/participants.
type UnregisterRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (r UnregisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// ParticipantSuccessResponse is the success envelope for registration.
type ParticipantSuccessResponse struct {
	Data  *domain.Participant `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ParticipantListSuccessResponse is the success envelope for roster reads.
type ParticipantListSuccessResponse struct {
	Data  []*domain.Participant `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// RegistrationsResponse is the body of GET /registrations: the event IDs the
// named participant is registered for.
type RegistrationsResponse struct {
	Name     string   `json:"name"`
	EventIDs []string `json:"event_ids"`
}

type ParticipantController struct {
	Logger       *slog.Logger
	Participants domain.ParticipantService
	Events       domain.EventService
}

func NewParticipantController(logger *slog.Logger, participants domain.ParticipantService, events domain.EventService) *ParticipantController {
	return &ParticipantController{
		Logger:       logger,
		Participants: participants,
		Events:       events,
	}
}

// Register godoc
// @Summary Register for an event
// @Description Register the named participant for the event. The email is derived from the name. A second registration for the same name and event is rejected.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param registration body RegisterRequest true "Participant name"
// @Success 201 {object} controllers.ParticipantSuccessResponse "data contains the registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants [post]
func (c *ParticipantController) Register(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	participant, err := c.Participants.Register(r.Context(), req.Name, eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, participant)
}

// Unregister godoc
// @Summary Unregister from an event
// @Description Remove the named participant's registration for the event.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param registration body UnregisterRequest true "Participant name"
// @Success 204 "registration removed"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants [delete]
func (c *ParticipantController) Unregister(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UnregisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Participants.Unregister(r.Context(), req.Name, eventID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListParticipants godoc
// @Summary List an event's participants
// @Description Returns the roster for the event in registration order.
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.ParticipantListSuccessResponse "data contains the roster"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants [get]
func (c *ParticipantController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	participants, err := c.Participants.ListEventParticipants(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participants)
}

// ExportCSV godoc
// @Summary Download an event's roster as CSV
// @Description Streams the roster as a CSV attachment. Registration dates are reduced to their UTC calendar date. Requires the admin role.
// @Tags participants
// @Produce text/csv
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {string} string "CSV roster"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants/csv [get]
func (c *ParticipantController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Events.GetEventByID(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rows, err := c.Participants.ParticipantsForCSV(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", csvFilename(event.Title)))
	_, _ = w.Write([]byte(encodeRosterCSV(rows)))
}

// Registrations godoc
// @Summary List a participant's registrations
// @Description Returns the IDs of every event the named participant is registered for.
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param name query string true "Participant name (exact match)"
// @Success 200 {object} controllers.RegistrationsResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations [get]
func (c *ParticipantController) Registrations(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing name")
		return
	}
	eventIDs, err := c.Participants.ListUserEventIDs(r.Context(), name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationsResponse{Name: name, EventIDs: eventIDs})
}

// encodeRosterCSV renders the roster export. The header row is unquoted;
// every data field is quoted, with embedded quotes doubled. Lines are joined
// with bare newlines and there is no trailing newline.
func encodeRosterCSV(rows []domain.ParticipantCSVRow) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "Name,Email,Registration Date")
	for _, row := range rows {
		lines = append(lines, strings.Join([]string{
			csvQuote(row.Name), csvQuote(row.Email), csvQuote(row.RegistrationDate),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

func csvQuote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// csvFilename derives the download filename from the event title, replacing
// whitespace runs with underscores.
func csvFilename(title string) string {
	return filenameWhitespace.ReplaceAllString(title, "_") + "_participants.csv"
}
