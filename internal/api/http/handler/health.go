package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/myflix-server/internal/logger"
	"github.com/dtroode/myflix-server/internal/model"
)

const pingTimeout = 2 * time.Second

// Health serves the welcome page and the readiness probe.
type Health struct {
	pinger model.Pinger
	logger *logger.Logger
}

func NewHealth(pinger model.Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

func (h *Health) Welcome(c echo.Context) error {
	return c.String(http.StatusOK, "Welcome to myFlix!")
}

type healthResponse struct {
	Status string `json:"Status"`
}

// Ready reports whether the database answers a ping.
func (h *Health) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn("HTTP health: database ping failed",
			"error", err.Error())
		return c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
	}

	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
