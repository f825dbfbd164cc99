package server

import (
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported for the chat gateway.
const ServiceName = "newswatch.Bot"

// HealthServer reports SERVING while the chat session is connected.
type HealthServer struct {
	log    *slog.Logger
	health *health.Server
}

func NewHealthServer(log *slog.Logger) *HealthServer {
	h := health.NewServer()
	h.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthServer{log: log, health: h}
}

func (s *HealthServer) Register(registrar grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(registrar, s.health)
}

// SetConnected is called on gateway connect and disconnect.
func (s *HealthServer) SetConnected(connected bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if connected {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	s.log.Debug("Health status changed", "status", status.String())
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (s *HealthServer) Shutdown() {
	s.health.Shutdown()
}
