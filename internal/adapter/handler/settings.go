package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/saiydurnetcom/nexuspm/errors"
	dto "github.com/saiydurnetcom/nexuspm/internal/adapter/dto/suggestion"
	"github.com/saiydurnetcom/nexuspm/internal/usecase/aisettings"
)

// Settings handles the admin AI-settings endpoint
type Settings struct {
	service *aisettings.Service
	logger  *zap.Logger
}

// NewSettings creates a new settings handler
func NewSettings(service *aisettings.Service, logger *zap.Logger) *Settings {
	return &Settings{service: service, logger: logger}
}

// Update replaces the deployment's reasoning-service configuration
// PUT /v1/admin/ai-settings
func (h *Settings) Update(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req dto.UpdateAISettingsRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, h.logger, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return handleError(c, h.logger, err)
	}

	record, err := h.service.Update(c.Request().Context(), userID, aisettings.UpdateInput{
		APIURL:      req.APIURL,
		APIKey:      req.APIKey,
		Model:       req.Model,
		Temperature: req.Temperature,
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return handleSuccess(c, h.logger, http.StatusOK, dto.SettingsFromEntity(record))
}
