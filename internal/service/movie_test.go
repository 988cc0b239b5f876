package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/myflix-server/internal/mocks"
	"github.com/dtroode/myflix-server/internal/model"
	"github.com/dtroode/myflix-server/internal/testutil"
)

func newTestMovieService(t *testing.T) (*Movie, *servermocks.MovieStore, *servermocks.Storage) {
	t.Helper()
	movieStore := servermocks.NewMovieStore(t)
	storage := servermocks.NewStorage(t)
	return NewMovie(movieStore, storage, testutil.MakeNoopLogger()), movieStore, storage
}

var catalog = []model.Movie{
	{
		Title:       "Inception",
		Genre:       model.Genre{Name: "Thriller", Description: "Suspense"},
		Director:    model.Director{Name: "Christopher Nolan", Bio: "Filmmaker", Birth: "1970"},
		Actors:      []model.Actor{{Name: "Leonardo DiCaprio", Bio: "Actor"}},
		ReleaseYear: 2010,
		ImagePath:   "/posters/inception.jpg",
	},
	{
		Title:       "Memento",
		Genre:       model.Genre{Name: "Thriller", Description: "Suspense"},
		Director:    model.Director{Name: "Christopher Nolan", Bio: "Filmmaker", Birth: "1970"},
		Actors:      []model.Actor{{Name: "Guy Pearce", Bio: "Actor"}},
		ReleaseYear: 2000,
	},
}

func TestMovie_GetByTitle(t *testing.T) {
	ctx := context.Background()
	svc, movieStore, _ := newTestMovieService(t)

	movieStore.On("GetByTitle", mock.Anything, "inception").Return(catalog[0], nil).Once()
	movieStore.On("GetByTitle", mock.Anything, "nope").Return(model.Movie{}, model.ErrNotFound).Once()

	m, err := svc.GetByTitle(ctx, "inception")
	require.NoError(t, err)
	assert.Equal(t, "Inception", m.Title)

	_, err = svc.GetByTitle(ctx, "nope")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestMovie_List(t *testing.T) {
	svc, movieStore, _ := newTestMovieService(t)
	movieStore.On("List", mock.Anything).Return(catalog, nil).Once()

	movies, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, movies, 2)
}

func TestMovie_Aggregates(t *testing.T) {
	ctx := context.Background()

	t.Run("genre", func(t *testing.T) {
		svc, movieStore, _ := newTestMovieService(t)
		movieStore.On("ListByGenre", mock.Anything, "thriller").Return(catalog, nil).Once()

		details, err := svc.GetGenre(ctx, "thriller")
		require.NoError(t, err)
		assert.Equal(t, "Thriller", details.Genre.Name)
		assert.Equal(t, []model.MovieRef{{Title: "Inception", ReleaseYear: 2010}, {Title: "Memento", ReleaseYear: 2000}}, details.Movies)
	})

	t.Run("director", func(t *testing.T) {
		svc, movieStore, _ := newTestMovieService(t)
		movieStore.On("ListByDirector", mock.Anything, "christopher nolan").Return(catalog, nil).Once()

		details, err := svc.GetDirector(ctx, "christopher nolan")
		require.NoError(t, err)
		assert.Equal(t, "1970", details.Director.Birth)
		assert.Len(t, details.Movies, 2)
	})

	t.Run("actor", func(t *testing.T) {
		svc, movieStore, _ := newTestMovieService(t)
		movieStore.On("ListByActor", mock.Anything, "guy pearce").Return(catalog[1:], nil).Once()

		details, err := svc.GetActor(ctx, "guy pearce")
		require.NoError(t, err)
		assert.Equal(t, "Guy Pearce", details.Actor.Name)
		assert.Equal(t, []model.MovieRef{{Title: "Memento", ReleaseYear: 2000}}, details.Movies)
	})

	t.Run("empty results are not found", func(t *testing.T) {
		svc, movieStore, _ := newTestMovieService(t)
		movieStore.On("ListByGenre", mock.Anything, "x").Return([]model.Movie{}, nil).Once()
		movieStore.On("ListByDirector", mock.Anything, "x").Return([]model.Movie{}, nil).Once()
		movieStore.On("ListByActor", mock.Anything, "x").Return([]model.Movie{}, nil).Once()

		_, err := svc.GetGenre(ctx, "x")
		require.ErrorIs(t, err, model.ErrNotFound)
		_, err = svc.GetDirector(ctx, "x")
		require.ErrorIs(t, err, model.ErrNotFound)
		_, err = svc.GetActor(ctx, "x")
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestMovie_GetPoster(t *testing.T) {
	ctx := context.Background()

	t.Run("streams object", func(t *testing.T) {
		svc, movieStore, storage := newTestMovieService(t)
		movieStore.On("GetByTitle", mock.Anything, "Inception").Return(catalog[0], nil).Once()
		storage.On("Download", mock.Anything, "posters/inception.jpg").Return(model.Object{
			ReadCloser:  io.NopCloser(strings.NewReader("jpeg")),
			Size:        4,
			ContentType: "image/jpeg",
		}, nil).Once()

		obj, err := svc.GetPoster(ctx, "Inception")
		require.NoError(t, err)
		defer obj.Close()

		data, err := io.ReadAll(obj)
		require.NoError(t, err)
		assert.Equal(t, "jpeg", string(data))
		assert.Equal(t, "image/jpeg", obj.ContentType)
	})

	t.Run("no image path", func(t *testing.T) {
		svc, movieStore, _ := newTestMovieService(t)
		movieStore.On("GetByTitle", mock.Anything, "Memento").Return(catalog[1], nil).Once()

		_, err := svc.GetPoster(ctx, "Memento")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("missing object", func(t *testing.T) {
		svc, movieStore, storage := newTestMovieService(t)
		movieStore.On("GetByTitle", mock.Anything, "Inception").Return(catalog[0], nil).Once()
		storage.On("Download", mock.Anything, "posters/inception.jpg").Return(model.Object{}, model.ErrNotFound).Once()

		_, err := svc.GetPoster(ctx, "Inception")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, movieStore, storage := newTestMovieService(t)
		movieStore.On("GetByTitle", mock.Anything, "Inception").Return(catalog[0], nil).Once()
		storage.On("Download", mock.Anything, "posters/inception.jpg").Return(model.Object{}, assert.AnError).Once()

		_, err := svc.GetPoster(ctx, "Inception")
		require.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, model.ErrNotFound)
	})
}

func TestPosterKey(t *testing.T) {
	assert.Equal(t, "posters/a.jpg", PosterKey("/posters/a.jpg"))
	assert.Equal(t, "a.jpg", PosterKey(" a.jpg "))
	assert.Empty(t, PosterKey(""))
}
