package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/myflix-server/internal/apierrors"
	"github.com/dtroode/myflix-server/internal/logger"
	"github.com/dtroode/myflix-server/internal/model"
)

// AuthService registers users and logs them in.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.User, error)
	Login(ctx context.Context, username, password string) (model.LoginResult, error)
}

// Auth serves registration and login.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates new Auth handler instance.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

// Register handles POST /users.
func (h *Auth) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.NewErrBadRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	params, err := req.params()
	if err != nil {
		return apierrors.NewErrBadRequest("invalid birthday")
	}

	user, err := h.authService.Register(c.Request().Context(), params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userMessageResponse{
		Message: "user created",
		User:    newUserResponse(user),
	})
}

// Login handles POST /login. Malformed bodies fail the same way as wrong
// credentials.
func (h *Auth) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return model.ErrInvalidCredentials
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return model.ErrInvalidCredentials
	}

	res, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		User:  newUserResponse(res.User),
		Token: res.Token,
	})
}
