//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/myflix-server/internal/model"
	repo "github.com/dtroode/myflix-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "myflix_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/myflix_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newUser(username, email string) model.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return model.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: "$argon2id$v=19$m=8,t=1,p=1$c2FsdA$a2V5",
		Email:        email,
		Birthday:     time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC),
		City:         "Berlin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.Ping(ctx))

	ur := repo.NewUserRepository(conn)
	mr := repo.NewMovieRepository(conn)

	movie, err := mr.Create(ctx, model.Movie{
		ID:          uuid.New(),
		Title:       "Inception",
		Genre:       model.Genre{Name: "Thriller"},
		Director:    model.Director{Name: "Christopher Nolan"},
		Actors:      []model.Actor{{Name: "Leonardo DiCaprio"}},
		ReleaseYear: 2010,
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)

	t.Run("movie lookups", func(t *testing.T) {
		got, err := mr.GetByTitle(ctx, "INCEPTION")
		require.NoError(t, err)
		require.Equal(t, movie.ID, got.ID)

		byActor, err := mr.ListByActor(ctx, "leonardo dicaprio")
		require.NoError(t, err)
		require.Len(t, byActor, 1)

		byGenre, err := mr.ListByGenre(ctx, "thriller")
		require.NoError(t, err)
		require.Len(t, byGenre, 1)
	})

	t.Run("user uniqueness is case-insensitive for usernames", func(t *testing.T) {
		_, err := ur.Create(ctx, newUser("alice", "alice@example.com"))
		require.NoError(t, err)

		_, err = ur.Create(ctx, newUser("ALICE", "other@example.com"))
		require.ErrorIs(t, err, model.ErrDuplicateIdentity)

		_, err = ur.Create(ctx, newUser("alice2", "alice@example.com"))
		var dupErr *model.DuplicateIdentityError
		require.ErrorAs(t, err, &dupErr)
		require.Equal(t, model.FieldEmail, dupErr.Field)
	})

	t.Run("lists and cascade delete", func(t *testing.T) {
		u, err := ur.Create(ctx, newUser("carol", "carol@example.com"))
		require.NoError(t, err)

		require.NoError(t, ur.AddToList(ctx, u.ID, model.ListFavorites, movie.ID))
		require.ErrorIs(t, ur.AddToList(ctx, u.ID, model.ListFavorites, movie.ID), model.ErrAlreadyInList)
		require.ErrorIs(t, ur.AddToList(ctx, u.ID, model.ListToWatch, uuid.New()), model.ErrNotFound)

		got, err := ur.GetByUsername(ctx, "Carol")
		require.NoError(t, err)
		require.Equal(t, []uuid.UUID{movie.ID}, got.FavoriteMovies)
		require.Empty(t, got.ToWatch)

		city := "Rome"
		updated, err := ur.Update(ctx, u.ID, model.UserUpdate{City: &city})
		require.NoError(t, err)
		require.Equal(t, "Rome", updated.City)
		require.Len(t, updated.FavoriteMovies, 1)

		require.NoError(t, ur.RemoveFromList(ctx, u.ID, model.ListFavorites, movie.ID))
		require.ErrorIs(t, ur.RemoveFromList(ctx, u.ID, model.ListFavorites, movie.ID), model.ErrNotInList)

		require.NoError(t, ur.Delete(ctx, "CAROL"))
		_, err = ur.GetByUsername(ctx, "carol")
		require.ErrorIs(t, err, model.ErrNotFound)
		require.ErrorIs(t, ur.Delete(ctx, "carol"), model.ErrNotFound)
	})
}
