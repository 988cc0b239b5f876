package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
//
// Usernames are matched case-insensitively, emails exactly. Implementations
// must enforce both uniqueness rules at the storage layer and report a
// violation as *DuplicateIdentityError.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) (User, error)
	Delete(ctx context.Context, username string) error
	AddToList(ctx context.Context, userID uuid.UUID, list ListKind, movieID uuid.UUID) error
	RemoveFromList(ctx context.Context, userID uuid.UUID, list ListKind, movieID uuid.UUID) error
}

// User represents a stored identity with its authentication material.
type User struct {
	ID             uuid.UUID
	Username       string
	PasswordHash   string
	Email          string
	Birthday       time.Time
	City           string
	FavoriteMovies []uuid.UUID
	ToWatch        []uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// WithoutPassword returns a copy of the user with the password hash removed.
func (u User) WithoutPassword() User {
	u.PasswordHash = ""
	return u
}

// List returns the movie IDs of the given list.
func (u User) List(list ListKind) []uuid.UUID {
	switch list {
	case ListFavorites:
		return u.FavoriteMovies
	case ListToWatch:
		return u.ToWatch
	default:
		return nil
	}
}

// UserUpdate carries the fields of a partial profile update. Nil fields are
// left untouched.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
	Email        *string
	Birthday     *time.Time
	City         *string
}

// Empty reports whether the update changes nothing.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.PasswordHash == nil && u.Email == nil && u.Birthday == nil && u.City == nil
}

// RegisterParams contains the fields accepted at registration.
type RegisterParams struct {
	Username string
	Password string
	Email    string
	Birthday time.Time
	City     string
}

// UpdateProfileParams contains the fields accepted on a profile update.
type UpdateProfileParams struct {
	Username *string
	Password *string
	Email    *string
	Birthday *time.Time
	City     *string
}

// LoginResult is returned after successful credential verification.
type LoginResult struct {
	User  User
	Token string
}

// ListKind names one of the per-user movie lists.
type ListKind string

const (
	// ListFavorites is the favorite movies list.
	ListFavorites ListKind = "favorites"
	// ListToWatch is the watch list.
	ListToWatch ListKind = "towatch"
)
