// Package health keeps the gRPC health status in line with the database.
package health

import (
	"context"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/myflix-server/internal/logger"
	"github.com/dtroode/myflix-server/internal/model"
)

// ServiceName is the health service name reported for the catalog API.
const ServiceName = "myflix.Catalog"

const pingTimeout = 2 * time.Second

// StatusSetter is implemented by *health.Server from grpc-go.
type StatusSetter interface {
	SetServingStatus(service string, servingStatus healthpb.HealthCheckResponse_ServingStatus)
}

// Checker pings the database and publishes the result as serving status.
type Checker struct {
	pinger   model.Pinger
	status   StatusSetter
	interval time.Duration
	logger   *logger.Logger
	checked  bool
	serving  bool
}

// NewChecker creates new Checker instance.
func NewChecker(pinger model.Pinger, status StatusSetter, interval time.Duration, logger *logger.Logger) *Checker {
	return &Checker{pinger: pinger, status: status, interval: interval, logger: logger}
}

// Check pings once and updates the status of both the overall server and
// ServiceName. It reports whether the database answered.
func (c *Checker) Check(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := c.pinger.Ping(pingCtx)
	serving := err == nil

	status := healthpb.HealthCheckResponse_SERVING
	if !serving {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	c.status.SetServingStatus("", status)
	c.status.SetServingStatus(ServiceName, status)

	if !c.checked || serving != c.serving {
		if serving {
			c.logger.Info("Health checker: database is reachable")
		} else {
			c.logger.Warn("Health checker: database is unreachable", "error", err.Error())
		}
	}
	c.checked = true
	c.serving = serving

	return serving
}

// Run checks immediately and then every interval until ctx is done.
func (c *Checker) Run(ctx context.Context) {
	c.Check(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}
