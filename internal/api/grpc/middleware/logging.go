package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/myflix-server/internal/logger"
)

// Logging adapts the application logger to the go-grpc-middleware
// logging and recovery interceptors.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Logger returns the interceptor logger.
func (l *Logging) Logger() logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.logger.Log(ctx, slog.Level(lvl), "gRPC "+msg, fields...)
	})
}

// UnaryInterceptor logs the outcome of each unary call.
func (l *Logging) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return logging.UnaryServerInterceptor(l.Logger(),
		logging.WithLogOnEvents(logging.FinishCall),
		logging.WithLevels(codeToLevel))
}

// StreamInterceptor logs the outcome of each streaming call.
func (l *Logging) StreamInterceptor() grpc.StreamServerInterceptor {
	return logging.StreamServerInterceptor(l.Logger(),
		logging.WithLogOnEvents(logging.FinishCall),
		logging.WithLevels(codeToLevel))
}

// Recover turns a handler panic into codes.Internal and logs the stack.
func (l *Logging) Recover(ctx context.Context, p any) error {
	l.logger.ErrorContext(ctx, "gRPC handler panicked",
		"panic", fmt.Sprint(p),
		"stack", string(debug.Stack()))
	return status.Error(codes.Internal, "internal server error")
}

// Health probes are frequent; successful calls stay at debug.
func codeToLevel(code codes.Code) logging.Level {
	switch code {
	case codes.OK, codes.NotFound, codes.Canceled:
		return logging.LevelDebug
	case codes.Unavailable, codes.DeadlineExceeded:
		return logging.LevelWarn
	case codes.Internal, codes.Unknown, codes.DataLoss:
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}
