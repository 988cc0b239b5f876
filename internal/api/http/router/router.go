package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/dtroode/myflix-server/internal/api/http/handler"
	"github.com/dtroode/myflix-server/internal/api/http/middleware"
	"github.com/dtroode/myflix-server/internal/logger"
	"github.com/dtroode/myflix-server/internal/model"
	"github.com/dtroode/myflix-server/internal/validator"
)

// Router wires handlers and middleware into an echo instance.
type Router struct {
	authService    handler.AuthService
	userService    handler.UserService
	movieService   handler.MovieService
	tokenService   middleware.TokenService
	contextManager model.ContextManager
	pinger         model.Pinger
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	authService handler.AuthService,
	userService handler.UserService,
	movieService handler.MovieService,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	pinger model.Pinger,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		userService:    userService,
		movieService:   movieService,
		tokenService:   tokenService,
		contextManager: contextManager,
		pinger:         pinger,
		logger:         logger,
	}
}

// Register builds the echo instance. Every route except the welcome page,
// the health probe, registration and login requires a bearer token.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = handler.NewErrorHandler(r.logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.NewLogging(r.logger).Handle)

	health := handler.NewHealth(r.pinger, r.logger)
	auth := handler.NewAuth(r.authService, r.logger)
	users := handler.NewUser(r.userService, r.contextManager, r.logger)
	movies := handler.NewMovie(r.movieService, r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger).Handle

	e.GET("/", health.Welcome)
	e.GET("/healthz", health.Ready)

	e.POST("/users", auth.Register)
	e.POST("/login", auth.Login)

	e.GET("/movies", movies.List, authenticate)
	e.GET("/movies/:title", movies.Get, authenticate)
	e.GET("/movies/:title/poster", movies.Poster, authenticate)
	e.GET("/genres/:name", movies.Genre, authenticate)
	e.GET("/directors/:name", movies.Director, authenticate)
	e.GET("/actors/:name", movies.Actor, authenticate)

	e.GET("/users/:username", users.Get, authenticate)
	e.PUT("/users/:username", users.Update, authenticate)
	e.DELETE("/users/:username", users.Delete, authenticate)

	for _, list := range []model.ListKind{model.ListFavorites, model.ListToWatch} {
		path := "/users/:username/" + string(list) + "/:movie_id"
		e.POST(path, users.AddToList(list), authenticate)
		e.DELETE(path, users.RemoveFromList(list), authenticate)
	}

	return e
}
