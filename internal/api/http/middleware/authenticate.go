package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/myflix-server/internal/logger"
	"github.com/dtroode/myflix-server/internal/model"
)

// TokenService resolves users from raw Authorization header values.
type TokenService interface {
	Authenticate(ctx context.Context, header string) (model.User, error)
}

// Authenticate validates bearer tokens and injects the user into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle rejects the request unless it carries a valid bearer token.
func (m *Authenticate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		user, err := m.tokenService.Authenticate(req.Context(), req.Header.Get(echo.HeaderAuthorization))
		if err != nil {
			m.logger.Debug("HTTP authenticate: request rejected",
				"path", c.Path(),
				"error", err.Error())
			return err
		}

		c.SetRequest(req.WithContext(m.contextManager.SetUserToContext(req.Context(), user)))

		return next(c)
	}
}
