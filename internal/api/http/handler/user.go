package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dtroode/myflix-server/internal/apierrors"
	"github.com/dtroode/myflix-server/internal/logger"
	"github.com/dtroode/myflix-server/internal/model"
)

// UserService manages profiles and movie lists on behalf of a caller.
type UserService interface {
	GetProfile(ctx context.Context, caller model.User, owner string) (model.User, error)
	UpdateProfile(ctx context.Context, caller model.User, owner string, params model.UpdateProfileParams) (model.User, error)
	DeleteAccount(ctx context.Context, caller model.User, owner string) error
	AddToList(ctx context.Context, caller model.User, owner string, list model.ListKind, movieID uuid.UUID) (model.User, error)
	RemoveFromList(ctx context.Context, caller model.User, owner string, list model.ListKind, movieID uuid.UUID) (model.User, error)
}

// User serves the /users/:username routes.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates new User handler instance.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{userService: userService, contextManager: contextManager, logger: logger}
}

func (h *User) caller(c echo.Context) (model.User, error) {
	user, ok := h.contextManager.GetUserFromContext(c.Request().Context())
	if !ok {
		return model.User{}, model.ErrMissingToken
	}
	return user, nil
}

// Get handles GET /users/:username.
func (h *User) Get(c echo.Context) error {
	caller, err := h.caller(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetProfile(c.Request().Context(), caller, c.Param("username"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}

// Update handles PUT /users/:username.
func (h *User) Update(c echo.Context) error {
	caller, err := h.caller(c)
	if err != nil {
		return err
	}

	var req updateRequest
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

	user, err := h.userService.UpdateProfile(c.Request().Context(), caller, c.Param("username"), params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userMessageResponse{
		Message: "profile updated",
		User:    newUserResponse(user),
	})
}

// Delete handles DELETE /users/:username.
func (h *User) Delete(c echo.Context) error {
	caller, err := h.caller(c)
	if err != nil {
		return err
	}

	owner := c.Param("username")
	if err := h.userService.DeleteAccount(c.Request().Context(), caller, owner); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("%s was deleted", owner)})
}

// AddToList returns a handler for POST /users/:username/<list>/:movie_id.
func (h *User) AddToList(list model.ListKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, err := h.caller(c)
		if err != nil {
			return err
		}

		user, err := h.userService.AddToList(c.Request().Context(), caller, c.Param("username"), list, movieID(c))
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, listResponse{
			Message: fmt.Sprintf("movie added to %s", list),
			Data:    newUserResponse(user),
		})
	}
}

// RemoveFromList returns a handler for DELETE /users/:username/<list>/:movie_id.
func (h *User) RemoveFromList(list model.ListKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, err := h.caller(c)
		if err != nil {
			return err
		}

		user, err := h.userService.RemoveFromList(c.Request().Context(), caller, c.Param("username"), list, movieID(c))
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, listResponse{
			Message: fmt.Sprintf("movie removed from %s", list),
			Data:    newUserResponse(user),
		})
	}
}

// movieID parses the :movie_id param. A malformed id cannot match any movie,
// so it becomes uuid.Nil and is reported as not found after authorization.
func movieID(c echo.Context) uuid.UUID {
	id, err := uuid.Parse(c.Param("movie_id"))
	if err != nil {
		return uuid.Nil
	}
	return id
}
