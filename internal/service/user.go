package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/dtroode/myflix-server/internal/logger"
	"github.com/dtroode/myflix-server/internal/model"
)

// User manages profiles and movie lists. Every operation authorizes the
// caller against the path owner before touching storage.
type User struct {
	userStore  model.UserStore
	movieStore model.MovieStore
	hasher     model.PasswordHasher
	logger     *logger.Logger
}

func NewUser(
	userStore model.UserStore,
	movieStore model.MovieStore,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *User {
	return &User{
		userStore:  userStore,
		movieStore: movieStore,
		hasher:     hasher,
		logger:     logger,
	}
}

func (s *User) GetProfile(ctx context.Context, caller model.User, owner string) (model.User, error) {
	if err := s.authorize(caller, owner); err != nil {
		return model.User{}, err
	}

	user, err := s.lookup(ctx, owner)
	if err != nil {
		return model.User{}, err
	}

	return user.WithoutPassword(), nil
}

// UpdateProfile applies a partial update. The password is re-hashed only when
// a new one is supplied.
func (s *User) UpdateProfile(ctx context.Context, caller model.User, owner string, params model.UpdateProfileParams) (model.User, error) {
	if err := s.authorize(caller, owner); err != nil {
		return model.User{}, err
	}

	current, err := s.lookup(ctx, owner)
	if err != nil {
		return model.User{}, err
	}

	update := model.UserUpdate{
		Username: params.Username,
		Email:    params.Email,
		Birthday: params.Birthday,
		City:     params.City,
	}
	if params.Password != nil {
		hash, err := s.hasher.Hash(*params.Password)
		if err != nil {
			s.logger.Error("User service: failed to hash password",
				"username", owner,
				"error", err.Error())
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		update.PasswordHash = &hash
	}

	if update.Empty() {
		return current.WithoutPassword(), nil
	}

	updated, err := s.userStore.Update(ctx, current.ID, update)
	if err != nil {
		var dupErr *model.DuplicateIdentityError
		if errors.As(err, &dupErr) {
			return model.User{}, dupErr
		}
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.NewNotFoundError("user")
		}
		s.logger.Error("User service: failed to update user",
			"username", owner,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: profile updated",
		"user_id", updated.ID,
		"username", updated.Username)

	return updated.WithoutPassword(), nil
}

func (s *User) DeleteAccount(ctx context.Context, caller model.User, owner string) error {
	if err := s.authorize(caller, owner); err != nil {
		return err
	}

	err := s.userStore.Delete(ctx, owner)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewNotFoundError("user")
	}
	if err != nil {
		s.logger.Error("User service: failed to delete user",
			"username", owner,
			"error", err.Error())
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: account deleted",
		"username", owner)

	return nil
}

func (s *User) AddToList(ctx context.Context, caller model.User, owner string, list model.ListKind, movieID uuid.UUID) (model.User, error) {
	return s.changeList(ctx, caller, owner, list, movieID, true)
}

func (s *User) RemoveFromList(ctx context.Context, caller model.User, owner string, list model.ListKind, movieID uuid.UUID) (model.User, error) {
	return s.changeList(ctx, caller, owner, list, movieID, false)
}

func (s *User) changeList(ctx context.Context, caller model.User, owner string, list model.ListKind, movieID uuid.UUID, add bool) (model.User, error) {
	if err := s.authorize(caller, owner); err != nil {
		return model.User{}, err
	}

	user, err := s.lookup(ctx, owner)
	if err != nil {
		return model.User{}, err
	}

	if _, err := s.movieStore.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.NewNotFoundError("movie")
		}
		return model.User{}, fmt.Errorf("failed to get movie by id: %w", err)
	}

	listed := slices.Contains(user.List(list), movieID)
	switch {
	case add && listed:
		return model.User{}, model.ErrAlreadyInList
	case !add && !listed:
		return model.User{}, model.ErrNotInList
	}

	if add {
		err = s.userStore.AddToList(ctx, user.ID, list, movieID)
	} else {
		err = s.userStore.RemoveFromList(ctx, user.ID, list, movieID)
	}
	if err != nil {
		if errors.Is(err, model.ErrAlreadyInList) || errors.Is(err, model.ErrNotInList) {
			return model.User{}, err
		}
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.NewNotFoundError("movie")
		}
		s.logger.Error("User service: failed to change list",
			"username", owner,
			"list", string(list),
			"movie_id", movieID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to change %s: %w", list, err)
	}

	s.logger.Debug("User service: list changed",
		"username", owner,
		"list", string(list),
		"movie_id", movieID,
		"added", add)

	updated, err := s.lookup(ctx, owner)
	if err != nil {
		return model.User{}, err
	}

	return updated.WithoutPassword(), nil
}

func (s *User) authorize(caller model.User, owner string) error {
	if err := Authorize(caller.Username, owner); err != nil {
		s.logger.Warn("User service: access denied",
			"caller", caller.Username,
			"owner", owner)
		return err
	}
	return nil
}

func (s *User) lookup(ctx context.Context, username string) (model.User, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.NewNotFoundError("user")
	}
	if err != nil {
		s.logger.Error("User service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}
