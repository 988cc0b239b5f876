package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/myflix-server/internal/model"
	"github.com/dtroode/myflix-server/internal/password"
	"github.com/dtroode/myflix-server/internal/token"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestHasher() *password.Argon2 {
	return password.NewArgon2(1, 64, 1)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestJWT(clock *fakeClock) *token.JWT {
	return token.NewJWT(testSecret, token.WithClock(clock.Now))
}

// memUserStore is an in-memory model.UserStore with the same uniqueness rules
// as the postgres schema.
type memUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

var _ model.UserStore = (*memUserStore)(nil)

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]model.User)}
}

func (s *memUserStore) find(match func(model.User) bool) (model.User, bool) {
	for _, u := range s.users {
		if match(u) {
			return u, true
		}
	}
	return model.User{}, false
}

func (s *memUserStore) GetByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.find(func(u model.User) bool { return strings.EqualFold(u.Username, username) })
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.find(func(u model.User) bool { return u.Email == email })
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *memUserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.find(func(u model.User) bool { return strings.EqualFold(u.Username, user.Username) }); ok {
		return model.User{}, model.NewDuplicateIdentityError(model.FieldUsername)
	}
	if _, ok := s.find(func(u model.User) bool { return u.Email == user.Email }); ok {
		return model.User{}, model.NewDuplicateIdentityError(model.FieldEmail)
	}
	user.FavoriteMovies = []uuid.UUID{}
	user.ToWatch = []uuid.UUID{}
	s.users[user.ID] = user
	return user, nil
}

func (s *memUserStore) Update(_ context.Context, id uuid.UUID, update model.UserUpdate) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	if update.Username != nil {
		if _, taken := s.find(func(o model.User) bool {
			return o.ID != id && strings.EqualFold(o.Username, *update.Username)
		}); taken {
			return model.User{}, model.NewDuplicateIdentityError(model.FieldUsername)
		}
		u.Username = *update.Username
	}
	if update.Email != nil {
		if _, taken := s.find(func(o model.User) bool { return o.ID != id && o.Email == *update.Email }); taken {
			return model.User{}, model.NewDuplicateIdentityError(model.FieldEmail)
		}
		u.Email = *update.Email
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	if update.Birthday != nil {
		u.Birthday = *update.Birthday
	}
	if update.City != nil {
		u.City = *update.City
	}
	s.users[id] = u
	return u, nil
}

func (s *memUserStore) Delete(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.find(func(u model.User) bool { return strings.EqualFold(u.Username, username) })
	if !ok {
		return model.ErrNotFound
	}
	delete(s.users, u.ID)
	return nil
}

func (s *memUserStore) AddToList(_ context.Context, userID uuid.UUID, list model.ListKind, movieID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return model.ErrNotFound
	}
	switch list {
	case model.ListFavorites:
		u.FavoriteMovies = append(u.FavoriteMovies, movieID)
	case model.ListToWatch:
		u.ToWatch = append(u.ToWatch, movieID)
	}
	s.users[userID] = u
	return nil
}

func (s *memUserStore) RemoveFromList(_ context.Context, userID uuid.UUID, list model.ListKind, movieID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return model.ErrNotFound
	}
	remove := func(ids []uuid.UUID) []uuid.UUID {
		out := ids[:0:0]
		for _, id := range ids {
			if id != movieID {
				out = append(out, id)
			}
		}
		return out
	}
	switch list {
	case model.ListFavorites:
		u.FavoriteMovies = remove(u.FavoriteMovies)
	case model.ListToWatch:
		u.ToWatch = remove(u.ToWatch)
	}
	s.users[userID] = u
	return nil
}
