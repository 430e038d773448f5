package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/gin-gonic/gin"
	"github.com/zkairdrop/claim-service/ratelimit"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const (
	// MerklePath is the route of the claim endpoint
	MerklePath = "/api/merkle"
	// HealthPath is the route of the liveness probe
	HealthPath = "/healthz"
)

// NewRouter builds the HTTP handler of the claim service.
func NewRouter(svc *ClaimService, limiter ratelimit.Limiter, rlCfg ratelimit.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), NewRequestLogMiddleware(), NewRequestMetricsMiddleware())
	router.GET(HealthPath, svc.Health)
	router.POST(MerklePath, NewRateLimitMiddleware(limiter, rlCfg), svc.Merkle)
	return router
}

// RunServer runs gRPC health server and HTTP server. Both ports are bound before it returns.
func RunServer(cfg Config, handler http.Handler) error {
	ctx := context.Background()

	if len(cfg.GRPCPort) == 0 {
		return fmt.Errorf("invalid TCP port for gRPC server: '%s'", cfg.GRPCPort)
	}

	if len(cfg.HTTPPort) == 0 {
		return fmt.Errorf("invalid TCP port for HTTP server: '%s'", cfg.HTTPPort)
	}

	restListener, err := net.Listen("tcp", ":"+cfg.HTTPPort)
	if err != nil {
		return fmt.Errorf("listen HTTP port %s: %w", cfg.HTTPPort, err)
	}
	grpcListener, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		_ = restListener.Close()
		return fmt.Errorf("listen gRPC port %s: %w", cfg.GRPCPort, err)
	}

	go func() {
		if err := runRestServer(ctx, cfg, restListener, handler); err != nil {
			log.Errorf("rest server error: %v", err)
		}
	}()

	go func() {
		if err := runGRPCServer(ctx, grpcListener); err != nil {
			log.Errorf("gRPC server error: %v", err)
		}
	}()

	return nil
}

// HealthChecker will provide an implementation of the HealthCheck interface.
type healthChecker struct{}

// NewHealthChecker returns a health checker according to standard package
// grpc.health.v1.
func newHealthChecker() *healthChecker {
	return &healthChecker{}
}

// HealthCheck interface implementation.

// Check returns the current status of the server for unary gRPC health requests,
// for now if the server is up and able to respond we will always return SERVING.
func (s *healthChecker) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	return &grpc_health_v1.HealthCheckResponse{
		Status: grpc_health_v1.HealthCheckResponse_SERVING,
	}, nil
}

// Watch returns the current status of the server for stream gRPC health requests,
// for now if the server is up and able to respond we will always return SERVING.
func (s *healthChecker) Watch(req *grpc_health_v1.HealthCheckRequest, server grpc_health_v1.Health_WatchServer) error {
	return server.Send(&grpc_health_v1.HealthCheckResponse{
		Status: grpc_health_v1.HealthCheckResponse_SERVING,
	})
}

func runGRPCServer(ctx context.Context, listen net.Listener) error {
	server := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(server, newHealthChecker())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		server.GracefulStop()
	}()

	log.Info("gRPC Server is serving at ", listen.Addr().String())
	return server.Serve(listen)
}

func preflightHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Headers", "*")
	w.Header().Set("Access-Control-Allow-Methods", "*")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// allowCORS allows Cross Origin Resource Sharing from any origin.
func allowCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				preflightHandler(w, r)
				return
			}
		}
		h.ServeHTTP(w, r)
	})
}

func runRestServer(ctx context.Context, cfg Config, listen net.Listener, handler http.Handler) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		ReadTimeout:  cfg.ReadTimeout.Duration,
		WriteTimeout: cfg.WriteTimeout.Duration,
		Handler:      allowCORS(handler),
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second) //nolint:gomnd
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("Restful Server is serving at ", listen.Addr().String())
	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
