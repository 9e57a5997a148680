package redis

import (
	"context"
	"fmt"

	redislib "github.com/redis/go-redis/v9"

	"github.com/ogurasousui/codex-timeoff/internal/platform/config"
)

// NewOptions は redis 設定から接続オプションを構築します。
func NewOptions(cfg config.RedisConfig) *redislib.Options {
	return &redislib.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewClient は Redis クライアントを生成し疎通確認を行います。
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redislib.Client, error) {
	client := redislib.NewClient(NewOptions(cfg))
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
