package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Log      LogConfig
	API      APIConfig
	Upload   UploadConfig
	Poll     PollConfig
	Search   SearchConfig
	Minio    MinioConfig
	NATS     NATSConfig
	Database DatabaseConfig
	Server   ServerConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

// APIConfig points at the video platform REST API
type APIConfig struct {
	BaseURL string        `envconfig:"API_BASE_URL" required:"true"`
	Token   string        `envconfig:"API_TOKEN"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"30s"`
}

type UploadConfig struct {
	ChunkSize      int64         `envconfig:"UPLOAD_CHUNK_SIZE" default:"5242880"`  // 5MiB
	MaxSize        int64         `envconfig:"UPLOAD_MAX_SIZE" default:"5368709120"` // 5GB
	SessionTTL     time.Duration `envconfig:"UPLOAD_SESSION_TTL" default:"30m"`
	ReconcileEvery time.Duration `envconfig:"UPLOAD_RECONCILE_EVERY" default:"15m"`
}

type PollConfig struct {
	InitialDelay time.Duration `envconfig:"POLL_INITIAL_DELAY" default:"1s"`
	MaxDelay     time.Duration `envconfig:"POLL_MAX_DELAY" default:"10s"`
	MaxJitter    time.Duration `envconfig:"POLL_MAX_JITTER" default:"1s"`
	Factor       float64       `envconfig:"POLL_FACTOR" default:"1.5"`
	MaxAttempts  int           `envconfig:"POLL_MAX_ATTEMPTS" default:"30"`
}

type SearchConfig struct {
	StorePath string `envconfig:"SEARCH_STORE_PATH"`
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName string `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY" required:"true"`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type NATSConfig struct {
	URL           string `envconfig:"NATS_URL" required:"true"`
	StreamName    string `envconfig:"NATS_STREAM_NAME" required:"true"`
	ConsumerName  string `envconfig:"NATS_CONSUMER_NAME" required:"true"`
	Subject       string `envconfig:"NATS_SUBJECT" required:"true"`
	DeliverGroup  string `envconfig:"NATS_DELIVER_GROUP"`
	StatusSubject string `envconfig:"NATS_STATUS_SUBJECT" default:"reels.ingest.status"`
	StatusStream  string `envconfig:"NATS_STATUS_STREAM" default:"INGEST_STATUS"`

	MaxDeliver     int           `envconfig:"NATS_MAX_DELIVER" default:"5"`
	AckWait        time.Duration `envconfig:"NATS_ACK_WAIT" default:"30s"`
	RedeliverDelay time.Duration `envconfig:"NATS_REDELIVER_DELAY" default:"2s"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

// Load reads an optional .env file then the whole config from the environment
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadClient only needs the API, upload, poll and search sections, reelctl has no daemon dependencies
func LoadClient() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var cfg Config
	sections := []any{&cfg.Env, &cfg.Log, &cfg.API, &cfg.Upload, &cfg.Poll, &cfg.Search}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
