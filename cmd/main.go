package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc/health"
	"google.golang.org/grpc/reflection"

	grpchealth "github.com/dtroode/myflix-server/internal/api/grpc/health"
	grpcrouter "github.com/dtroode/myflix-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/myflix-server/internal/api/grpc/server"
	httpctx "github.com/dtroode/myflix-server/internal/api/http/context"
	httprouter "github.com/dtroode/myflix-server/internal/api/http/router"
	httpserver "github.com/dtroode/myflix-server/internal/api/http/server"
	"github.com/dtroode/myflix-server/internal/config"
	"github.com/dtroode/myflix-server/internal/logger"
	"github.com/dtroode/myflix-server/internal/model"
	"github.com/dtroode/myflix-server/internal/password"
	"github.com/dtroode/myflix-server/internal/repository/postgres"
	"github.com/dtroode/myflix-server/internal/server"
	"github.com/dtroode/myflix-server/internal/service"
	storage "github.com/dtroode/myflix-server/internal/storage/minio"
	"github.com/dtroode/myflix-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	posters, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize poster storage", "error", err)
	}

	userRepo := postgres.NewUserRepository(db)
	movieRepo := postgres.NewMovieRepository(db)
	hasher := password.NewArgon2(cfg.KDF.Time, cfg.KDF.MemKiB, cfg.KDF.Par)
	tokenManager := token.NewJWT(cfg.JWT.Secret, token.WithTTL(cfg.JWT.TTL))

	tokenService := service.NewTokenService(tokenManager, userRepo, logger)
	authService := service.NewAuth(userRepo, hasher, tokenService, logger)
	userService := service.NewUser(userRepo, movieRepo, hasher, logger)
	movieService := service.NewMovie(movieRepo, posters, logger)

	httpRouter := httprouter.New(authService, userService, movieService, tokenService, httpctx.NewManager(), db, logger)
	restServer := httpserver.NewHTTPServer(httpRouter.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	healthServer := health.NewServer()
	grpcSrv := registerGRPCServer(logger, healthServer, fmt.Sprintf(":%s", cfg.GRPC.Port))
	checker := grpchealth.NewChecker(db, healthServer, cfg.Health.Interval, logger)

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	servers := []model.Server{restServer, grpcSrv}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		checker.Run(ctx)
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerGRPCServer(
	logger *logger.Logger,
	healthServer *health.Server,
	addr string,
) *grpcserver.GRPCServer {
	r := grpcrouter.New(healthServer, logger)
	s := r.Register()

	reflection.Register(s)

	return grpcserver.NewGRPCServer(s, addr)
}
