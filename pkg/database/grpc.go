package database

import (
	"context"
	"fmt"
	"net"
	"time"

	"gamerflow_service/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthServer grpc health check server
type HealthServer struct {
	Server *grpc.Server
	Health *health.Server
	lis    net.Listener
}

// NewHealthServer listen addr and register grpc health service
func NewHealthServer(addr string) (*HealthServer, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen %s: %w", addr, err)
	}

	s := grpc.NewServer()
	h := health.NewServer()
	healthpb.RegisterHealthServer(s, h)

	return &HealthServer{Server: s, Health: h, lis: lis}, nil
}

// Addr listening address
func (h *HealthServer) Addr() string {
	return h.lis.Addr().String()
}

// SetServing mark service status
func (h *HealthServer) SetServing(service string, serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.Health.SetServingStatus(service, status)
}

// Serve blocking serve
func (h *HealthServer) Serve() error {
	logger.Log.Info("gRPC health server listening", zap.String("addr", h.Addr()))
	return h.Server.Serve(h.lis)
}

// Stop graceful stop
func (h *HealthServer) Stop() {
	h.Health.Shutdown()
	h.Server.GracefulStop()
}

// CheckHealth dial addr and query service status
func CheckHealth(ctx context.Context, addr, service string) (bool, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return false, err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return false, err
	}
	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}
