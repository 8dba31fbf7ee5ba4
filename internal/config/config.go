package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Log      LogConfig
	Storage  StorageConfig
	Upload   FileUploadConfig
	Trash    TrashConfig
	NATS     NATSConfig
	Database DatabaseConfig
	Server   ServerConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8000"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Format     string `envconfig:"LOG_FORMAT" default:"text"` // text | json
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"3"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"28"`
	Compress   bool   `envconfig:"LOG_COMPRESS" default:"false"`
}

// StorageConfig selects the storage backend once at process start
type StorageConfig struct {
	Backend   string `envconfig:"STORAGE_BACKEND" default:"local"` // local | s3
	LocalPath string `envconfig:"LOCAL_STORAGE_PATH" default:"./storage"`
	S3        S3Config
}

// S3Config configures any S3-compatible object store (MinIO, R2, AWS)
type S3Config struct {
	Endpoint      string `envconfig:"S3_ENDPOINT"`
	BucketName    string `envconfig:"S3_BUCKET_NAME"`
	AccessKey     string `envconfig:"S3_ACCESS_KEY"`
	SecretKey     string `envconfig:"S3_SECRET_KEY"`
	Region        string `envconfig:"S3_REGION"`
	UseSSL        bool   `envconfig:"S3_USE_SSL" default:"true"`
	PublicBaseURL string `envconfig:"S3_PUBLIC_BASE_URL"`
}

type FileUploadConfig struct {
	MaxFileSize    int64 `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"524288000"`     // 500MB
	MaxRequestSize int64 `envconfig:"UPLOAD_MAX_REQUEST_SIZE" default:"2147483648"` // 2GB
	MaxMemory      int64 `envconfig:"UPLOAD_MAX_MEMORY" default:"33554432"`         // 32MB
}

// TrashConfig drives the periodic settlement of staged deletions left behind by a crash
type TrashConfig struct {
	SweepEvery time.Duration `envconfig:"TRASH_SWEEP_EVERY" default:"15m"`
	Grace      time.Duration `envconfig:"TRASH_SWEEP_GRACE" default:"30m"`
}

// NATSConfig is optional: without URL, media events are handled in-process
type NATSConfig struct {
	URL          string `envconfig:"NATS_URL"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" default:"MEDIA"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" default:"mediaprobe"`
	Subject      string `envconfig:"NATS_SUBJECT" default:"media.uploaded"`
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

// DSN returns the lib/pq connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
		d.SSLMode,
	)
}

// Load reads an optional .env file, then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Trash.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects a sweep period a ticker cannot run with and a negative grace
func (t TrashConfig) Validate() error {
	if t.SweepEvery <= 0 {
		return fmt.Errorf("TRASH_SWEEP_EVERY must be positive, got %s", t.SweepEvery)
	}
	if t.Grace < 0 {
		return fmt.Errorf("TRASH_SWEEP_GRACE must not be negative, got %s", t.Grace)
	}
	return nil
}
