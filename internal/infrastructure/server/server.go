package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"connectrpc.com/connect"
	connectcors "connectrpc.com/cors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/eslsoft/toeicprep/internal/adapter/connectrpc"
	"github.com/eslsoft/toeicprep/internal/infrastructure/config"
)

// Server represents the application server
type Server struct {
	config     *config.Config
	grpcServer *grpc.Server
	health     *health.Server
	httpServer *http.Server
	logger     logrus.FieldLogger
}

// NewServer mounts the connect services on the HTTP server and a health service on
// the gRPC server.
func NewServer(cfg *config.Config, logger *logrus.Logger, services *connectrpc.Services, validator *connectrpc.Validator) *Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(logging.UnaryServerInterceptor(InterceptorLogger(logger.WithField("component", "grpc")))),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	mux := http.NewServeMux()
	names := services.Mount(mux, connect.WithInterceptors(
		Logger(logger.WithField("component", "connect")),
		validator.UnaryInterceptor(),
	))
	for _, name := range names {
		healthServer.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: connectcors.AllowedMethods(),
		AllowedHeaders: append(connectcors.AllowedHeaders(), RequestIDHeader),
		ExposedHeaders: append(connectcors.ExposedHeaders(), RequestIDHeader),
		MaxAge:         7200,
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:           h2c.NewHandler(corsHandler.Handler(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		config:     cfg,
		grpcServer: grpcServer,
		health:     healthServer,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Handler returns the HTTP handler serving the connect services.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// StartGRPC starts the gRPC server
func (s *Server) StartGRPC() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.logger.Infof("gRPC server starting on %s", addr)

	if err := s.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve gRPC: %w", err)
	}

	return nil
}

// StartHTTP starts the connect HTTP server
func (s *Server) StartHTTP() error {
	s.logger.Infof("HTTP server starting on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	s.health.Shutdown()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("Failed to shutdown HTTP server: %v", err)
	}

	s.grpcServer.GracefulStop()

	s.logger.Info("Server shutdown complete")
	return nil
}
