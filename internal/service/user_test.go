package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/myflix-server/internal/mocks"
	"github.com/dtroode/myflix-server/internal/model"
	"github.com/dtroode/myflix-server/internal/testutil"
)

func newTestUserService(t *testing.T) (*User, *servermocks.UserStore, *servermocks.MovieStore) {
	t.Helper()
	userStore := servermocks.NewUserStore(t)
	movieStore := servermocks.NewMovieStore(t)
	return NewUser(userStore, movieStore, newTestHasher(), testutil.MakeNoopLogger()), userStore, movieStore
}

func TestUser_ForbiddenBeforeAnyLookup(t *testing.T) {
	ctx := context.Background()
	caller := model.User{Username: "alice"}
	movieID := uuid.New()

	// The mocks have no expectations, so any storage access fails the test.
	svc, _, _ := newTestUserService(t)

	_, err := svc.GetProfile(ctx, caller, "bob")
	require.ErrorIs(t, err, model.ErrForbidden)

	name := "mallory"
	_, err = svc.UpdateProfile(ctx, caller, "bob", model.UpdateProfileParams{Username: &name})
	require.ErrorIs(t, err, model.ErrForbidden)

	require.ErrorIs(t, svc.DeleteAccount(ctx, caller, "bob"), model.ErrForbidden)

	_, err = svc.AddToList(ctx, caller, "bob", model.ListFavorites, movieID)
	require.ErrorIs(t, err, model.ErrForbidden)

	_, err = svc.RemoveFromList(ctx, caller, "bob", model.ListToWatch, movieID)
	require.ErrorIs(t, err, model.ErrForbidden)
}

func TestUser_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("owner in different case", func(t *testing.T) {
		svc, userStore, _ := newTestUserService(t)
		userStore.On("GetByUsername", mock.Anything, "Alice").
			Return(model.User{Username: "alice", PasswordHash: "digest"}, nil).Once()

		user, err := svc.GetProfile(ctx, model.User{Username: "alice"}, "Alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("missing", func(t *testing.T) {
		svc, userStore, _ := newTestUserService(t)
		userStore.On("GetByUsername", mock.Anything, "alice").Return(model.User{}, model.ErrNotFound).Once()

		_, err := svc.GetProfile(ctx, model.User{Username: "alice"}, "alice")
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestUser_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	caller := model.User{Username: "alice"}
	current := model.User{ID: uuid.New(), Username: "alice", PasswordHash: "old"}

	t.Run("password re-hashed", func(t *testing.T) {
		svc, userStore, _ := newTestUserService(t)
		newPassword := "newSecret1"
		hasher := newTestHasher()

		userStore.On("GetByUsername", mock.Anything, "alice").Return(current, nil).Once()
		userStore.On("Update", mock.Anything, current.ID, mock.MatchedBy(func(u model.UserUpdate) bool {
			return u.PasswordHash != nil && hasher.Verify(newPassword, *u.PasswordHash) && u.Username == nil
		})).Return(model.User{ID: current.ID, Username: "alice", PasswordHash: "new"}, nil).Once()

		user, err := svc.UpdateProfile(ctx, caller, "alice", model.UpdateProfileParams{Password: &newPassword})
		require.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("password untouched when absent", func(t *testing.T) {
		svc, userStore, _ := newTestUserService(t)
		city := "Rome"

		userStore.On("GetByUsername", mock.Anything, "alice").Return(current, nil).Once()
		userStore.On("Update", mock.Anything, current.ID, model.UserUpdate{City: &city}).
			Return(model.User{ID: current.ID, Username: "alice", City: city}, nil).Once()

		user, err := svc.UpdateProfile(ctx, caller, "alice", model.UpdateProfileParams{City: &city})
		require.NoError(t, err)
		assert.Equal(t, "Rome", user.City)
	})

	t.Run("empty update", func(t *testing.T) {
		svc, userStore, _ := newTestUserService(t)
		userStore.On("GetByUsername", mock.Anything, "alice").Return(current, nil).Once()

		user, err := svc.UpdateProfile(ctx, caller, "alice", model.UpdateProfileParams{})
		require.NoError(t, err)
		assert.Equal(t, current.ID, user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("taken username", func(t *testing.T) {
		svc, userStore, _ := newTestUserService(t)
		name := "bob"

		userStore.On("GetByUsername", mock.Anything, "alice").Return(current, nil).Once()
		userStore.On("Update", mock.Anything, current.ID, mock.Anything).
			Return(model.User{}, model.NewDuplicateIdentityError(model.FieldUsername)).Once()

		_, err := svc.UpdateProfile(ctx, caller, "alice", model.UpdateProfileParams{Username: &name})

		var dupErr *model.DuplicateIdentityError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, model.FieldUsername, dupErr.Field)
	})
}

func TestUser_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("case-insensitive owner", func(t *testing.T) {
		svc, userStore, _ := newTestUserService(t)
		userStore.On("Delete", mock.Anything, "ALICE").Return(nil).Once()

		require.NoError(t, svc.DeleteAccount(ctx, model.User{Username: "alice"}, "ALICE"))
	})

	t.Run("missing", func(t *testing.T) {
		svc, userStore, _ := newTestUserService(t)
		userStore.On("Delete", mock.Anything, "alice").Return(model.ErrNotFound).Once()

		require.ErrorIs(t, svc.DeleteAccount(ctx, model.User{Username: "alice"}, "alice"), model.ErrNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, userStore, _ := newTestUserService(t)
		userStore.On("Delete", mock.Anything, "alice").Return(assert.AnError).Once()

		require.ErrorIs(t, svc.DeleteAccount(ctx, model.User{Username: "alice"}, "alice"), assert.AnError)
	})
}

func TestUser_Lists(t *testing.T) {
	ctx := context.Background()
	caller := model.User{Username: "alice"}
	movieID := uuid.New()
	userID := uuid.New()
	empty := model.User{ID: userID, Username: "alice", FavoriteMovies: []uuid.UUID{}, ToWatch: []uuid.UUID{}}
	withFavorite := model.User{ID: userID, Username: "alice", FavoriteMovies: []uuid.UUID{movieID}, ToWatch: []uuid.UUID{}}

	t.Run("add", func(t *testing.T) {
		svc, userStore, movieStore := newTestUserService(t)

		userStore.On("GetByUsername", mock.Anything, "alice").Return(empty, nil).Once()
		movieStore.On("GetByID", mock.Anything, movieID).Return(model.Movie{ID: movieID}, nil).Once()
		userStore.On("AddToList", mock.Anything, userID, model.ListFavorites, movieID).Return(nil).Once()
		userStore.On("GetByUsername", mock.Anything, "alice").Return(withFavorite, nil).Once()

		user, err := svc.AddToList(ctx, caller, "alice", model.ListFavorites, movieID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{movieID}, user.FavoriteMovies)
	})

	t.Run("add existing member", func(t *testing.T) {
		svc, userStore, movieStore := newTestUserService(t)

		userStore.On("GetByUsername", mock.Anything, "alice").Return(withFavorite, nil).Once()
		movieStore.On("GetByID", mock.Anything, movieID).Return(model.Movie{ID: movieID}, nil).Once()

		_, err := svc.AddToList(ctx, caller, "alice", model.ListFavorites, movieID)
		require.ErrorIs(t, err, model.ErrAlreadyInList)
	})

	t.Run("unknown movie", func(t *testing.T) {
		svc, userStore, movieStore := newTestUserService(t)

		userStore.On("GetByUsername", mock.Anything, "alice").Return(empty, nil).Once()
		movieStore.On("GetByID", mock.Anything, movieID).Return(model.Movie{}, model.ErrNotFound).Once()

		_, err := svc.AddToList(ctx, caller, "alice", model.ListToWatch, movieID)
		require.ErrorIs(t, err, model.ErrNotFound)

		var nf *model.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "movie", nf.Resource)
	})

	t.Run("remove", func(t *testing.T) {
		svc, userStore, movieStore := newTestUserService(t)

		userStore.On("GetByUsername", mock.Anything, "alice").Return(withFavorite, nil).Once()
		movieStore.On("GetByID", mock.Anything, movieID).Return(model.Movie{ID: movieID}, nil).Once()
		userStore.On("RemoveFromList", mock.Anything, userID, model.ListFavorites, movieID).Return(nil).Once()
		userStore.On("GetByUsername", mock.Anything, "alice").Return(empty, nil).Once()

		user, err := svc.RemoveFromList(ctx, caller, "alice", model.ListFavorites, movieID)
		require.NoError(t, err)
		assert.Empty(t, user.FavoriteMovies)
	})

	t.Run("remove non-member", func(t *testing.T) {
		svc, userStore, movieStore := newTestUserService(t)

		userStore.On("GetByUsername", mock.Anything, "alice").Return(withFavorite, nil).Once()
		movieStore.On("GetByID", mock.Anything, movieID).Return(model.Movie{ID: movieID}, nil).Once()

		_, err := svc.RemoveFromList(ctx, caller, "alice", model.ListToWatch, movieID)
		require.ErrorIs(t, err, model.ErrNotInList)
	})

	t.Run("concurrent add reported by store", func(t *testing.T) {
		svc, userStore, movieStore := newTestUserService(t)

		userStore.On("GetByUsername", mock.Anything, "alice").Return(empty, nil).Once()
		movieStore.On("GetByID", mock.Anything, movieID).Return(model.Movie{ID: movieID}, nil).Once()
		userStore.On("AddToList", mock.Anything, userID, model.ListToWatch, movieID).Return(model.ErrAlreadyInList).Once()

		_, err := svc.AddToList(ctx, caller, "alice", model.ListToWatch, movieID)
		require.ErrorIs(t, err, model.ErrAlreadyInList)
	})
}
