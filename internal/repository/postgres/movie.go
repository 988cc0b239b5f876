package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/myflix-server/internal/model"
)

var _ model.MovieStore = (*MovieRepository)(nil)

const movieColumns = `id, title, description, genre_name, genre_description,
	director_name, director_bio, director_birth, director_death,
	actors, release_year, rating, image_path, created_at`

type MovieRepository struct {
	db DB
}

func NewMovieRepository(db DB) *MovieRepository {
	return &MovieRepository{
		db: db,
	}
}

func (r *MovieRepository) List(ctx context.Context) ([]model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY title`

	return r.queryMovies(ctx, query)
}

func (r *MovieRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Movie{}, model.ErrNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to get movie by id: %w", err)
	}

	return movie, nil
}

func (r *MovieRepository) GetByTitle(ctx context.Context, title string) (model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE lower(title) = lower($1)`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Movie{}, model.ErrNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to get movie by title: %w", err)
	}

	return movie, nil
}

func (r *MovieRepository) ListByGenre(ctx context.Context, name string) ([]model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE lower(genre_name) = lower($1) ORDER BY title`

	return r.queryMovies(ctx, query, name)
}

func (r *MovieRepository) ListByDirector(ctx context.Context, name string) ([]model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE lower(director_name) = lower($1) ORDER BY title`

	return r.queryMovies(ctx, query, name)
}

func (r *MovieRepository) ListByActor(ctx context.Context, name string) ([]model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies
			  WHERE EXISTS (SELECT 1 FROM jsonb_array_elements(actors) AS a WHERE lower(a->>'name') = lower($1))
			  ORDER BY title`

	return r.queryMovies(ctx, query, name)
}

func (r *MovieRepository) Create(ctx context.Context, movie model.Movie) (model.Movie, error) {
	actors, err := json.Marshal(nonNilActors(movie.Actors))
	if err != nil {
		return model.Movie{}, fmt.Errorf("failed to marshal actors: %w", err)
	}

	query := `INSERT INTO movies (id, title, description, genre_name, genre_description,
				director_name, director_bio, director_birth, director_death,
				actors, release_year, rating, image_path, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			  RETURNING ` + movieColumns

	saved, err := scanMovie(r.db.QueryRow(ctx, query,
		movie.ID, movie.Title, movie.Description, movie.Genre.Name, movie.Genre.Description,
		movie.Director.Name, movie.Director.Bio, movie.Director.Birth, movie.Director.Death,
		actors, movie.ReleaseYear, movie.Rating, movie.ImagePath, movie.CreatedAt,
	))
	if err != nil {
		return model.Movie{}, fmt.Errorf("failed to create movie: %w", err)
	}

	return saved, nil
}

func (r *MovieRepository) queryMovies(ctx context.Context, query string, args ...any) ([]model.Movie, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}

	movies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Movie, error) {
		return scanMovie(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read movies: %w", err)
	}

	return movies, nil
}

func scanMovie(row pgx.Row) (model.Movie, error) {
	var (
		movie  model.Movie
		actors []byte
	)
	err := row.Scan(
		&movie.ID, &movie.Title, &movie.Description, &movie.Genre.Name, &movie.Genre.Description,
		&movie.Director.Name, &movie.Director.Bio, &movie.Director.Birth, &movie.Director.Death,
		&actors, &movie.ReleaseYear, &movie.Rating, &movie.ImagePath, &movie.CreatedAt,
	)
	if err != nil {
		return model.Movie{}, err
	}

	if len(actors) > 0 {
		if err := json.Unmarshal(actors, &movie.Actors); err != nil {
			return model.Movie{}, fmt.Errorf("failed to unmarshal actors: %w", err)
		}
	}
	movie.Actors = nonNilActors(movie.Actors)

	return movie, nil
}

func nonNilActors(actors []model.Actor) []model.Actor {
	if actors == nil {
		return []model.Actor{}
	}
	return actors
}
