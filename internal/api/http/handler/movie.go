package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/myflix-server/internal/logger"
	"github.com/dtroode/myflix-server/internal/model"
)

// MovieService serves catalog lookups.
type MovieService interface {
	List(ctx context.Context) ([]model.Movie, error)
	GetByTitle(ctx context.Context, title string) (model.Movie, error)
	GetGenre(ctx context.Context, name string) (model.GenreDetails, error)
	GetDirector(ctx context.Context, name string) (model.DirectorDetails, error)
	GetActor(ctx context.Context, name string) (model.ActorDetails, error)
	GetPoster(ctx context.Context, title string) (model.Object, error)
}

// Movie serves the catalog routes.
type Movie struct {
	movieService MovieService
	logger       *logger.Logger
}

// NewMovie creates new Movie handler instance.
func NewMovie(movieService MovieService, logger *logger.Logger) *Movie {
	return &Movie{movieService: movieService, logger: logger}
}

func (h *Movie) List(c echo.Context) error {
	movies, err := h.movieService.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]movieResponse, 0, len(movies))
	for _, m := range movies {
		resp = append(resp, newMovieResponse(m))
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Movie) Get(c echo.Context) error {
	movie, err := h.movieService.GetByTitle(c.Request().Context(), c.Param("title"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newMovieResponse(movie))
}

func (h *Movie) Genre(c echo.Context) error {
	details, err := h.movieService.GetGenre(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, genreDetailsResponse{
		genreResponse: genreResponse{Name: details.Genre.Name, Description: details.Genre.Description},
		Movies:        newMovieRefs(details.Movies),
	})
}

func (h *Movie) Director(c echo.Context) error {
	details, err := h.movieService.GetDirector(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, directorDetailsResponse{
		directorResponse: newDirectorResponse(details.Director),
		Movies:           newMovieRefs(details.Movies),
	})
}

func (h *Movie) Actor(c echo.Context) error {
	details, err := h.movieService.GetActor(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, actorDetailsResponse{
		actorResponse: actorResponse{Name: details.Actor.Name, Bio: details.Actor.Bio},
		Movies:        newMovieRefs(details.Movies),
	})
}

// Poster streams the poster image of a movie.
func (h *Movie) Poster(c echo.Context) error {
	obj, err := h.movieService.GetPoster(c.Request().Context(), c.Param("title"))
	if err != nil {
		return err
	}
	defer obj.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	if obj.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	}

	return c.Stream(http.StatusOK, contentType, obj)
}
