package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MovieStore defines read and import operations for the movie catalog.
// Name and title lookups are case-insensitive exact matches.
type MovieStore interface {
	List(ctx context.Context) ([]Movie, error)
	GetByID(ctx context.Context, id uuid.UUID) (Movie, error)
	GetByTitle(ctx context.Context, title string) (Movie, error)
	ListByGenre(ctx context.Context, name string) ([]Movie, error)
	ListByDirector(ctx context.Context, name string) ([]Movie, error)
	ListByActor(ctx context.Context, name string) ([]Movie, error)
	Create(ctx context.Context, movie Movie) (Movie, error)
}

// Movie represents a catalog entry.
type Movie struct {
	ID          uuid.UUID
	Title       string
	Description string
	Genre       Genre
	Director    Director
	Actors      []Actor
	ReleaseYear int
	Rating      float64
	ImagePath   string
	CreatedAt   time.Time
}

// Genre describes a movie genre.
type Genre struct {
	Name        string
	Description string
}

// Director describes a movie director.
type Director struct {
	Name  string
	Bio   string
	Birth string
	Death string
}

// Actor describes a cast member.
type Actor struct {
	Name string `json:"name" yaml:"name"`
	Bio  string `json:"bio" yaml:"bio"`
}

// MovieRef is a short movie reference used in genre, director and actor views.
type MovieRef struct {
	Title       string
	ReleaseYear int
}

// GenreDetails aggregates a genre and its movies.
type GenreDetails struct {
	Genre  Genre
	Movies []MovieRef
}

// DirectorDetails aggregates a director and their movies.
type DirectorDetails struct {
	Director Director
	Movies   []MovieRef
}

// ActorDetails aggregates an actor and their movies.
type ActorDetails struct {
	Actor  Actor
	Movies []MovieRef
}
