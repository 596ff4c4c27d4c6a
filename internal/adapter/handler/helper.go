package handler

import (
	stdErrors "errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/saiydurnetcom/nexuspm/errors"
	"github.com/saiydurnetcom/nexuspm/internal/infrastructure/http/middleware"
	uerrors "github.com/saiydurnetcom/nexuspm/internal/usecase/errors"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// handleSuccess writes a standardized success response
func handleSuccess(c echo.Context, logger *zap.Logger, status int, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// handleError centralizes error mapping and logging. Usecase sentinels are
// translated to AppErrors first; anything unrecognized becomes a 500.
func handleError(c echo.Context, logger *zap.Logger, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = toAppError(err)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError maps usecase sentinel errors to transport-level AppErrors
func toAppError(err error) errors.AppError {
	switch {
	case stdErrors.Is(err, uerrors.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound("")
	case stdErrors.Is(err, uerrors.ErrSuggestionNotFound):
		return errors.ErrSuggestionNotFound("")
	case stdErrors.Is(err, uerrors.ErrNotMeetingOwner):
		return errors.ErrNotMeetingOwner()
	case stdErrors.Is(err, uerrors.ErrSuggestionAlreadyReviewed):
		return errors.ErrSuggestionAlreadyReviewed("", "")
	case stdErrors.Is(err, uerrors.ErrRejectionReasonRequired):
		return errors.ErrRejectionReasonRequired()
	case stdErrors.Is(err, uerrors.ErrSettingsNotFound):
		return errors.ErrNotFound("ai settings")
	case stdErrors.Is(err, uerrors.ErrForbidden):
		return errors.ErrForbidden("forbidden")
	case stdErrors.Is(err, uerrors.ErrUnauthorized):
		return errors.ErrUnauthenticated()
	case stdErrors.Is(err, uerrors.ErrNotFound):
		return errors.ErrNotFound("resource")
	case stdErrors.Is(err, uerrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error())
	default:
		return errors.ErrInternal(err)
	}
}

// requireUserID extracts the authenticated user set by the auth middleware
func requireUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return uuid.Nil, errors.ErrUnauthenticated()
	}
	return userID, nil
}

// parseUUIDParam parses a path parameter as a UUID
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument(name + " must be a valid UUID")
	}
	return id, nil
}
