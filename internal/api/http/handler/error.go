package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/myflix-server/internal/apierrors"
	"github.com/dtroode/myflix-server/internal/logger"
)

type errorResponse struct {
	Message string            `json:"Message"`
	Errors  map[string]string `json:"Errors,omitempty"`
}

// NewErrorHandler renders every error returned by handlers and middleware as
// a fixed JSON body. Causes of server errors are logged, never returned.
func NewErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		apiErr := toAPIError(err)
		if apiErr.Status >= http.StatusInternalServerError {
			logger.Error("HTTP handler: request failed",
				"method", c.Request().Method,
				"route", c.Path(),
				"error", err.Error())
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(apiErr.Status)
		} else {
			writeErr = c.JSON(apiErr.Status, errorResponse{Message: apiErr.Message, Errors: apiErr.Details})
		}
		if writeErr != nil {
			logger.Warn("HTTP handler: failed to write error response",
				"error", writeErr.Error())
		}
	}
}

func toAPIError(err error) *apierrors.APIError {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok && httpErr.Code < http.StatusInternalServerError && httpErr.Internal == nil {
			message = m
		}
		return &apierrors.APIError{Status: httpErr.Code, Message: message}
	}
	return apierrors.FromError(err)
}
