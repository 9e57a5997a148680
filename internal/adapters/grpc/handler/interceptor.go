package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/ogurasousui/codex-timeoff/internal/core/session"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// SessionMetadataKey はセッション ID を運ぶメタデータのキーです。
const SessionMetadataKey = "x-session-id"

// SessionInterceptor はメタデータのセッション ID をコンテキストへ格納します。
func SessionInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(SessionMetadataKey); len(values) > 0 && values[0] != "" {
				ctx = session.WithID(ctx, values[0])
			}
		}
		return handler(ctx, req)
	}
}

// LoggingInterceptor は呼び出し結果を記録し、panic を Internal に変換します。
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		start := time.Now()
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recovered panic",
					zap.String("method", info.FullMethod),
					zap.String("panic", fmt.Sprint(rec)),
					zap.Stack("stack"),
				)
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}

			logger.Info("handled rpc",
				zap.String("method", info.FullMethod),
				zap.String("code", status.Code(err).String()),
				zap.Duration("duration", time.Since(start)),
			)
		}()
		return handler(ctx, req)
	}
}
