package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpchandler "github.com/ogurasousui/codex-timeoff/internal/adapters/grpc/handler"
	timeoffpb "github.com/ogurasousui/codex-timeoff/internal/adapters/grpc/gen/timeoff/v1"
	"github.com/ogurasousui/codex-timeoff/internal/core/session"
	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
	"github.com/ogurasousui/codex-timeoff/internal/core/user"
	"github.com/ogurasousui/codex-timeoff/internal/platform/config"
)

// Services はサーバーが公開するユースケースです。
type Services struct {
	Requests timeoff.UseCase
	Users    user.UseCase
	Sessions session.UseCase
}

// Server は gRPC サーバーと HTTP サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr      string
	httpAddr        string
	shutdownTimeout time.Duration
	grpcServer      *grpc.Server
	httpServer      *http.Server
	health          *health.Server
	logger          *zap.Logger
}

// New は gRPC サービスを登録したサーバーを構築します。httpHandler が nil または
// http_addr が空の場合、HTTP サーバーは起動しません。
func New(cfg config.ServerConfig, svcs Services, httpHandler http.Handler, logger *zap.Logger, opts ...grpc.ServerOption) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpchandler.LoggingInterceptor(logger.Named("grpc")),
			grpchandler.SessionInterceptor(),
		),
	}, opts...)
	srv := grpc.NewServer(opts...)

	timeoffpb.RegisterTimeOffServiceServer(srv, grpchandler.NewTimeOffGrpcHandler(svcs.Requests))
	timeoffpb.RegisterUserServiceServer(srv, grpchandler.NewUserGrpcHandler(svcs.Users, svcs.Sessions))

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	for _, name := range []string{timeoffpb.TimeOffService_ServiceDesc.ServiceName, timeoffpb.UserService_ServiceDesc.ServiceName} {
		healthSrv.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	reflection.Register(srv)

	s := &Server{
		listenAddr:      cfg.ListenAddr,
		httpAddr:        cfg.HTTPAddr,
		shutdownTimeout: cfg.ShutdownTimeout,
		grpcServer:      srv,
		health:          healthSrv,
		logger:          logger,
	}
	if httpHandler != nil && cfg.HTTPAddr != "" {
		s.httpServer = &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           httpHandler,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	return s
}

// Run はサーバーを起動し、コンテキストがキャンセルされると停止します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は lis で gRPC を待ち受けます。テストで任意のリスナーを渡すために公開しています。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
		if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}
		return nil
	})

	if s.httpServer != nil {
		g.Go(func() error {
			s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
			if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve HTTP: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		return s.shutdown()
	})

	return g.Wait()
}

func (s *Server) shutdown() error {
	s.health.Shutdown()

	timeout := s.shutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var httpErr error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			httpErr = fmt.Errorf("shutdown HTTP: %w", err)
		}
	}

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		s.logger.Warn("graceful stop timed out; forcing stop")
		s.grpcServer.Stop()
	}

	s.logger.Info("servers stopped")
	return httpErr
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}
