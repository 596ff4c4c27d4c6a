package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/saiydurnetcom/nexuspm/errors"
	dto "github.com/saiydurnetcom/nexuspm/internal/adapter/dto/suggestion"
	"github.com/saiydurnetcom/nexuspm/internal/domain/entities"
	"github.com/saiydurnetcom/nexuspm/internal/usecase/suggestion"
)

// Suggestion handles the suggestion lifecycle endpoints
type Suggestion struct {
	service suggestion.Service
	logger  *zap.Logger
}

// NewSuggestion creates a new suggestion handler
func NewSuggestion(service suggestion.Service, logger *zap.Logger) *Suggestion {
	return &Suggestion{service: service, logger: logger}
}

// Process generates task suggestions from a meeting's notes
// POST /v1/suggestions/meetings/:meetingId/process
func (h *Suggestion) Process(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	meetingID, err := parseUUIDParam(c, "meetingId")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	suggestions, err := h.service.Generate(c.Request().Context(), meetingID, userID)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return handleSuccess(c, h.logger, http.StatusCreated, dto.FromEntities(suggestions))
}

// ListForMeeting returns every suggestion generated for a meeting
// GET /v1/suggestions/meetings/:meetingId
func (h *Suggestion) ListForMeeting(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	meetingID, err := parseUUIDParam(c, "meetingId")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	suggestions, err := h.service.ListForMeeting(c.Request().Context(), meetingID, userID)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return handleSuccess(c, h.logger, http.StatusOK, dto.FromEntities(suggestions))
}

// ListPending returns the caller's review inbox of pending suggestions
// GET /v1/suggestions?owner=self
func (h *Suggestion) ListPending(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	// Only self-scoped listing is supported; listing another user's inbox
	// is not a thing.
	if owner := c.QueryParam("owner"); owner != "" && owner != "self" {
		return handleError(c, h.logger, errors.ErrInvalidArgument("owner must be \"self\""))
	}

	suggestions, err := h.service.ListPendingForOwner(c.Request().Context(), userID)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return handleSuccess(c, h.logger, http.StatusOK, dto.FromEntities(suggestions))
}

// Approve converts a pending suggestion into a task
// POST /v1/suggestions/:id/approve
func (h *Suggestion) Approve(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	suggestionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req dto.ApproveSuggestionRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, h.logger, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return handleError(c, h.logger, err)
	}

	overrides := suggestion.ApproveOverrides{
		ProjectID:      req.ProjectID,
		Title:          req.Title,
		Description:    req.Description,
		EstimatedHours: req.EstimatedHours,
		AssignedTo:     req.AssignedTo,
		DueDate:        req.DueDate,
	}
	if req.Priority != nil {
		p := entities.TaskPriority(*req.Priority)
		overrides.Priority = &p
	}

	task, err := h.service.Approve(c.Request().Context(), suggestionID, userID, overrides)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return handleSuccess(c, h.logger, http.StatusCreated, dto.TaskFromEntity(task))
}

// Reject marks a pending suggestion as rejected
// POST /v1/suggestions/:id/reject
func (h *Suggestion) Reject(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	suggestionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req dto.RejectSuggestionRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, h.logger, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return handleError(c, h.logger, err)
	}

	sg, err := h.service.Reject(c.Request().Context(), suggestionID, userID, req.Reason)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return handleSuccess(c, h.logger, http.StatusOK, dto.FromEntity(sg))
}
