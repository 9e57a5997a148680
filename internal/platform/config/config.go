package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix は設定を上書きする環境変数の接頭辞です。
const EnvPrefix = "TIMEOFF_"

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"

	SessionDriverMemory = "memory"
	SessionDriverRedis  = "redis"

	NotifierDriverLog  = "log"
	NotifierDriverAMQP = "amqp"
)

const (
	defaultSimulatedLatency = 500 * time.Millisecond
	defaultShutdownTimeout  = 10 * time.Second
	defaultSessionTTL       = 24 * time.Hour
	defaultPublishTimeout   = 5 * time.Second
	defaultDefaultUserID    = "user-1"
	defaultNotifierQueue    = "timeoff.notifications"
	defaultMigrationsDir    = "assets/migrations"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server   ServerConfig   `yaml:"server" envPrefix:"SERVER_"`
	Store    StoreConfig    `yaml:"store" envPrefix:"STORE_"`
	Database DatabaseConfig `yaml:"database" envPrefix:"DATABASE_"`
	Redis    RedisConfig    `yaml:"redis" envPrefix:"REDIS_"`
	Session  SessionConfig  `yaml:"session" envPrefix:"SESSION_"`
	Notifier NotifierConfig `yaml:"notifier" envPrefix:"NOTIFIER_"`
	Workflow WorkflowConfig `yaml:"workflow" envPrefix:"WORKFLOW_"`
	Log      LogConfig      `yaml:"log" envPrefix:"LOG_"`
}

// ServerConfig は gRPC / HTTP サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr         string        `yaml:"listen_addr" env:"LISTEN_ADDR"`
	HTTPAddr           string        `yaml:"http_addr" env:"HTTP_ADDR"`
	ShutdownTimeout    time.Duration `yaml:"-"`
	ShutdownTimeoutRaw string        `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// StoreConfig はエンティティストアの設定です。
type StoreConfig struct {
	Driver              string        `yaml:"driver" env:"DRIVER"`
	SimulatedLatency    time.Duration `yaml:"-"`
	SimulatedLatencyRaw string        `yaml:"simulated_latency" env:"SIMULATED_LATENCY"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。store.driver が postgres の場合のみ必須です。
type DatabaseConfig struct {
	Host               string        `yaml:"host" env:"HOST"`
	Port               int           `yaml:"port" env:"PORT"`
	User               string        `yaml:"user" env:"USER"`
	Password           string        `yaml:"password" env:"PASSWORD"`
	Name               string        `yaml:"name" env:"NAME"`
	SSLMode            string        `yaml:"ssl_mode" env:"SSL_MODE"`
	MaxOpenConns       int           `yaml:"max_open_conns" env:"MAX_OPEN_CONNS"`
	MaxIdleConns       int           `yaml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime" env:"CONN_MAX_LIFETIME"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time" env:"CONN_MAX_IDLE_TIME"`
	// AutoMigrate が true の場合、サーバー起動時に MigrationsDir のマイグレーションを適用します。
	AutoMigrate   bool   `yaml:"auto_migrate" env:"AUTO_MIGRATE"`
	MigrationsDir string `yaml:"migrations_dir" env:"MIGRATIONS_DIR"`
}

// RedisConfig は Redis 接続に関する設定です。
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"ADDR"`
	Password string `yaml:"password" env:"PASSWORD"`
	DB       int    `yaml:"db" env:"DB"`
}

// SessionConfig は操作ユーザーのセッション保存先の設定です。
type SessionConfig struct {
	Driver        string        `yaml:"driver" env:"DRIVER"`
	DefaultUserID string        `yaml:"default_user_id" env:"DEFAULT_USER_ID"`
	TTL           time.Duration `yaml:"-"`
	TTLRaw        string        `yaml:"ttl" env:"TTL"`
}

// NotifierConfig は申請通知の送出先の設定です。
type NotifierConfig struct {
	Driver            string        `yaml:"driver" env:"DRIVER"`
	URL               string        `yaml:"url" env:"URL"`
	Queue             string        `yaml:"queue" env:"QUEUE"`
	PublishTimeout    time.Duration `yaml:"-"`
	PublishTimeoutRaw string        `yaml:"publish_timeout" env:"PUBLISH_TIMEOUT"`
}

// WorkflowConfig は申請ワークフローの挙動を切り替えます。
type WorkflowConfig struct {
	StrictTransitions bool `yaml:"strict_transitions" env:"STRICT_TRANSITIONS"`
	RequireManager    bool `yaml:"require_manager" env:"REQUIRE_MANAGER"`
}

// LogConfig はロガーの設定です。
type LogConfig struct {
	Level    string `yaml:"level" env:"LEVEL"`
	Encoding string `yaml:"encoding" env:"ENCODING"`
}

// Load は指定されたパスから設定ファイルを読み込み、TIMEOFF_ で始まる環境変数で上書きします。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	return Parse(b)
}

// Parse は YAML と環境変数から設定を構築します。
func Parse(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if err := c.Server.validateAndNormalize(); err != nil {
		return err
	}
	if err := c.Store.validateAndNormalize(); err != nil {
		return err
	}
	if c.Store.Driver == StoreDriverPostgres {
		if err := c.Database.validateAndNormalize(); err != nil {
			return err
		}
	}
	if err := c.Session.validateAndNormalize(); err != nil {
		return err
	}
	if c.Session.Driver == SessionDriverRedis && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr must be set when session.driver is redis")
	}
	if err := c.Notifier.validateAndNormalize(); err != nil {
		return err
	}
	c.Log.normalize()
	return nil
}

func (s *ServerConfig) validateAndNormalize() error {
	if s.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	timeout, err := parseDurationWithDefault(s.ShutdownTimeoutRaw, defaultShutdownTimeout)
	if err != nil {
		return fmt.Errorf("config: server.shutdown_timeout: %w", err)
	}
	s.ShutdownTimeout = timeout
	return nil
}

func (s *StoreConfig) validateAndNormalize() error {
	switch s.Driver {
	case "":
		s.Driver = StoreDriverMemory
	case StoreDriverMemory, StoreDriverPostgres:
	default:
		return fmt.Errorf("config: store.driver %q is not supported", s.Driver)
	}

	latency, err := parseDurationWithDefault(s.SimulatedLatencyRaw, defaultSimulatedLatency)
	if err != nil {
		return fmt.Errorf("config: store.simulated_latency: %w", err)
	}
	if latency < 0 {
		return fmt.Errorf("config: store.simulated_latency must not be negative")
	}
	s.SimulatedLatency = latency
	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.MigrationsDir == "" {
		d.MigrationsDir = defaultMigrationsDir
	}

	lifetime, err := parseDurationWithDefault(d.ConnMaxLifetimeRaw, 0)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationWithDefault(d.ConnMaxIdleTimeRaw, 0)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func (s *SessionConfig) validateAndNormalize() error {
	switch s.Driver {
	case "":
		s.Driver = SessionDriverMemory
	case SessionDriverMemory, SessionDriverRedis:
	default:
		return fmt.Errorf("config: session.driver %q is not supported", s.Driver)
	}

	if strings.TrimSpace(s.DefaultUserID) == "" {
		s.DefaultUserID = defaultDefaultUserID
	}

	ttl, err := parseDurationWithDefault(s.TTLRaw, defaultSessionTTL)
	if err != nil {
		return fmt.Errorf("config: session.ttl: %w", err)
	}
	s.TTL = ttl
	return nil
}

func (n *NotifierConfig) validateAndNormalize() error {
	switch n.Driver {
	case "":
		n.Driver = NotifierDriverLog
	case NotifierDriverLog:
	case NotifierDriverAMQP:
		if n.URL == "" {
			return fmt.Errorf("config: notifier.url must be set when notifier.driver is amqp")
		}
	default:
		return fmt.Errorf("config: notifier.driver %q is not supported", n.Driver)
	}

	if n.Queue == "" {
		n.Queue = defaultNotifierQueue
	}

	timeout, err := parseDurationWithDefault(n.PublishTimeoutRaw, defaultPublishTimeout)
	if err != nil {
		return fmt.Errorf("config: notifier.publish_timeout: %w", err)
	}
	n.PublishTimeout = timeout
	return nil
}

func (l *LogConfig) normalize() {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Encoding == "" {
		l.Encoding = "json"
	}
}

func parseDurationWithDefault(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx / golang-migrate 用の接続文字列を返します。認証情報はエスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + strconv.Itoa(d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}
