package router

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/myflix-server/internal/api/grpc/middleware"
	"github.com/dtroode/myflix-server/internal/logger"
)

// Router represents the gRPC router. It serves the standard health
// service used by orchestrators to probe the catalog.
type Router struct {
	healthServer healthpb.HealthServer
	logger       *logger.Logger
}

// New creates new gRPC Router instance.
func New(healthServer healthpb.HealthServer, logger *logger.Logger) *Router {
	return &Router{
		healthServer: healthServer,
		logger:       logger,
	}
}

// Register registers all gRPC services and interceptors.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoveryOpt := recovery.WithRecoveryHandlerContext(logging.Recover)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryInterceptor(),
			recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			logging.StreamInterceptor(),
			recovery.StreamServerInterceptor(recoveryOpt),
		),
	)
	healthpb.RegisterHealthServer(s, r.healthServer)

	return s
}
