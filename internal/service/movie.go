package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dtroode/myflix-server/internal/logger"
	"github.com/dtroode/myflix-server/internal/model"
)

// Movie serves catalog lookups and poster downloads.
type Movie struct {
	movieStore model.MovieStore
	storage    model.Storage
	logger     *logger.Logger
}

func NewMovie(movieStore model.MovieStore, storage model.Storage, logger *logger.Logger) *Movie {
	return &Movie{
		movieStore: movieStore,
		storage:    storage,
		logger:     logger,
	}
}

func (s *Movie) List(ctx context.Context) ([]model.Movie, error) {
	movies, err := s.movieStore.List(ctx)
	if err != nil {
		s.logger.Error("Movie service: failed to list movies",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (s *Movie) GetByTitle(ctx context.Context, title string) (model.Movie, error) {
	movie, err := s.movieStore.GetByTitle(ctx, title)
	if errors.Is(err, model.ErrNotFound) {
		return model.Movie{}, model.NewNotFoundError("movie")
	}
	if err != nil {
		s.logger.Error("Movie service: failed to get movie by title",
			"title", title,
			"error", err.Error())
		return model.Movie{}, fmt.Errorf("failed to get movie by title: %w", err)
	}
	return movie, nil
}

func (s *Movie) GetGenre(ctx context.Context, name string) (model.GenreDetails, error) {
	movies, err := s.movieStore.ListByGenre(ctx, name)
	if err != nil {
		return model.GenreDetails{}, fmt.Errorf("failed to list movies by genre: %w", err)
	}
	if len(movies) == 0 {
		return model.GenreDetails{}, model.NewNotFoundError("genre")
	}

	return model.GenreDetails{
		Genre:  movies[0].Genre,
		Movies: refs(movies),
	}, nil
}

func (s *Movie) GetDirector(ctx context.Context, name string) (model.DirectorDetails, error) {
	movies, err := s.movieStore.ListByDirector(ctx, name)
	if err != nil {
		return model.DirectorDetails{}, fmt.Errorf("failed to list movies by director: %w", err)
	}
	if len(movies) == 0 {
		return model.DirectorDetails{}, model.NewNotFoundError("director")
	}

	return model.DirectorDetails{
		Director: movies[0].Director,
		Movies:   refs(movies),
	}, nil
}

func (s *Movie) GetActor(ctx context.Context, name string) (model.ActorDetails, error) {
	movies, err := s.movieStore.ListByActor(ctx, name)
	if err != nil {
		return model.ActorDetails{}, fmt.Errorf("failed to list movies by actor: %w", err)
	}

	for _, actor := range actorsOf(movies) {
		if strings.EqualFold(actor.Name, name) {
			return model.ActorDetails{
				Actor:  actor,
				Movies: refs(movies),
			}, nil
		}
	}

	return model.ActorDetails{}, model.NewNotFoundError("actor")
}

// GetPoster opens the poster object of the movie with the given title.
// The caller must close the returned object.
func (s *Movie) GetPoster(ctx context.Context, title string) (model.Object, error) {
	movie, err := s.GetByTitle(ctx, title)
	if err != nil {
		return model.Object{}, err
	}

	key := PosterKey(movie.ImagePath)
	if key == "" {
		return model.Object{}, model.NewNotFoundError("poster")
	}

	obj, err := s.storage.Download(ctx, key)
	if errors.Is(err, model.ErrNotFound) {
		return model.Object{}, model.NewNotFoundError("poster")
	}
	if err != nil {
		s.logger.Error("Movie service: failed to download poster",
			"title", movie.Title,
			"key", key,
			"error", err.Error())
		return model.Object{}, fmt.Errorf("failed to download poster: %w", err)
	}

	return obj, nil
}

// PosterKey turns a stored image path into an object storage key.
func PosterKey(imagePath string) string {
	return strings.TrimLeft(strings.TrimSpace(imagePath), "/")
}

func refs(movies []model.Movie) []model.MovieRef {
	out := make([]model.MovieRef, 0, len(movies))
	for _, m := range movies {
		out = append(out, model.MovieRef{Title: m.Title, ReleaseYear: m.ReleaseYear})
	}
	return out
}

func actorsOf(movies []model.Movie) []model.Actor {
	var out []model.Actor
	for _, m := range movies {
		out = append(out, m.Actors...)
	}
	return out
}
