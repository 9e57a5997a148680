package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/ogurasousui/codex-timeoff/internal/adapters/apiservice"
	httphandler "github.com/ogurasousui/codex-timeoff/internal/adapters/http/handler"
	"github.com/ogurasousui/codex-timeoff/internal/adapters/notify"
	"github.com/ogurasousui/codex-timeoff/internal/adapters/repository/memory"
	"github.com/ogurasousui/codex-timeoff/internal/adapters/repository/postgres"
	redisrepo "github.com/ogurasousui/codex-timeoff/internal/adapters/repository/redis"
	"github.com/ogurasousui/codex-timeoff/internal/core/session"
	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
	"github.com/ogurasousui/codex-timeoff/internal/core/user"
	redisclient "github.com/ogurasousui/codex-timeoff/internal/platform/cache/redis"
	"github.com/ogurasousui/codex-timeoff/internal/platform/config"
	pg "github.com/ogurasousui/codex-timeoff/internal/platform/db/postgres"
	"github.com/ogurasousui/codex-timeoff/internal/platform/logger"
	"github.com/ogurasousui/codex-timeoff/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env は任意
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(ctx, cfg, zl); err != nil {
		zl.Fatal("server stopped with error", zap.Error(err))
	}
}

// closers は終了時に逆順で解放するリソースです。
type closers []func()

func (c closers) close() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

func run(ctx context.Context, cfg *config.Config, zl *zap.Logger) error {
	var cleanup closers
	defer cleanup.close()

	repos, err := buildStore(ctx, cfg, zl, &cleanup)
	if err != nil {
		return err
	}

	sessionStore, err := buildSessionStore(ctx, cfg, &cleanup)
	if err != nil {
		return err
	}

	notifier, err := buildNotifier(cfg, zl, &cleanup)
	if err != nil {
		return err
	}

	sessions := session.NewService(sessionStore, cfg.Session.DefaultUserID, nil)
	users := user.NewService(repos.users, sessions, repos.tx, user.WithDefaultUserID(cfg.Session.DefaultUserID))
	requests := timeoff.NewService(repos.requests, repos.users, nil, repos.tx,
		timeoff.WithNotifier(notifier),
		timeoff.WithLogger(zl.Named("timeoff")),
		timeoff.WithStrictTransitions(cfg.Workflow.StrictTransitions),
		timeoff.WithRequireManager(cfg.Workflow.RequireManager),
	)

	httpHandler, err := httphandler.New(apiservice.New(users, requests, sessions, zl), zl)
	if err != nil {
		return err
	}

	srv := server.New(cfg.Server, server.Services{Requests: requests, Users: users, Sessions: sessions}, httpHandler, zl)
	zl.Info("starting servers",
		zap.String("grpc_addr", cfg.Server.ListenAddr),
		zap.String("http_addr", cfg.Server.HTTPAddr),
		zap.String("store", cfg.Store.Driver),
		zap.String("session_store", cfg.Session.Driver),
		zap.String("notifier", cfg.Notifier.Driver),
	)
	return srv.Run(ctx)
}

type repositories struct {
	users    user.Repository
	requests timeoff.Repository
	tx       interface {
		timeoff.TransactionManager
		user.TransactionManager
	}
}

func buildStore(ctx context.Context, cfg *config.Config, zl *zap.Logger, cleanup *closers) (repositories, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		if cfg.Database.AutoMigrate {
			result, err := pg.RunMigration(pg.MigrateUp, cfg.Database.MigrationsDir, cfg.Database.DSN())
			if err != nil {
				return repositories{}, fmt.Errorf("auto migrate: %w", err)
			}
			zl.Info("database migrated", zap.Uint("version", result.Version), zap.Bool("applied", result.Applied))
		}

		pool, err := pg.NewPool(ctx, cfg.Database)
		if err != nil {
			return repositories{}, fmt.Errorf("initialize database pool: %w", err)
		}
		*cleanup = append(*cleanup, pool.Close)

		return repositories{
			users:    postgres.NewUserRepository(pool),
			requests: postgres.NewRequestRepository(pool),
			tx:       pg.NewTransactionManager(pool),
		}, nil
	default:
		store, err := memory.NewStore(memory.DefaultSeed(), memory.WithLatency(cfg.Store.SimulatedLatency))
		if err != nil {
			return repositories{}, fmt.Errorf("initialize memory store: %w", err)
		}
		return repositories{
			users:    memory.NewUserRepository(store),
			requests: memory.NewRequestRepository(store),
			tx:       store,
		}, nil
	}
}

func buildSessionStore(ctx context.Context, cfg *config.Config, cleanup *closers) (session.Store, error) {
	if cfg.Session.Driver != config.SessionDriverRedis {
		return memory.NewSessionStore(), nil
	}

	client, err := redisclient.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	*cleanup = append(*cleanup, func() { _ = client.Close() })
	return redisrepo.NewSessionRepository(client, cfg.Session.TTL), nil
}

func buildNotifier(cfg *config.Config, zl *zap.Logger, cleanup *closers) (timeoff.Notifier, error) {
	if cfg.Notifier.Driver != config.NotifierDriverAMQP {
		return notify.NewLogNotifier(zl), nil
	}

	conn, err := amqp.Dial(cfg.Notifier.URL)
	if err != nil {
		return nil, fmt.Errorf("amqp: dial: %w", err)
	}
	*cleanup = append(*cleanup, func() { _ = conn.Close() })

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("amqp: open channel: %w", err)
	}
	*cleanup = append(*cleanup, func() { _ = ch.Close() })

	if err := notify.DeclareQueue(ch, cfg.Notifier.Queue); err != nil {
		return nil, err
	}
	return notify.NewAMQPNotifier(ch, cfg.Notifier.Queue, cfg.Notifier.PublishTimeout), nil
}
