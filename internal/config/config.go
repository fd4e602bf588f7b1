package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key int

const (
	KeyUUID key = iota
	KeyNickname
	KeyLogger
	KeyMetrics
)

type Config struct {
	Service  Service
	Postgres Postgres
	Feed     Feed
	Gemini   Gemini
	Storage  Storage
	Kafka    Kafka
	Logger   Logger
	Metrics  Metrics
	Platform Platform
	Session  Session
}

type Service struct {
	Name      string `env:"CHAT_GATEWAY_NAME" env-default:"chat-gateway"`
	Port      string `env:"CHAT_GATEWAY_PORT" env-default:"8080"`
	Version   string `env:"CHAT_GATEWAY_VERSION" env-default:"dev"`
	JWTSecret string `env:"CHAT_GATEWAY_JWT_SECRET" env-required:"true"`
}

type Postgres struct {
	User     string `env:"CHAT_GATEWAY_POSTGRES_USER" env-required:"true"`
	Password string `env:"CHAT_GATEWAY_POSTGRES_PASSWORD" env-required:"true"`
	Database string `env:"CHAT_GATEWAY_POSTGRES_DB" env-required:"true"`
	Host     string `env:"CHAT_GATEWAY_POSTGRES_HOST" env-required:"true"`
	Port     string `env:"CHAT_GATEWAY_POSTGRES_PORT" env-default:"5432"`
}

// Feed configures the row-level change feed (LISTEN/NOTIFY on the hosted store).
type Feed struct {
	MinReconnect time.Duration `env:"CHAT_GATEWAY_FEED_MIN_RECONNECT" env-default:"1s"`
	MaxReconnect time.Duration `env:"CHAT_GATEWAY_FEED_MAX_RECONNECT" env-default:"30s"`
	QueueSize    int           `env:"CHAT_GATEWAY_FEED_QUEUE_SIZE" env-default:"256"`
}

type Gemini struct {
	APIKey   string        `env:"CHAT_GATEWAY_GEMINI_API_KEY"`
	BaseURL  string        `env:"CHAT_GATEWAY_GEMINI_BASE_URL" env-default:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout  time.Duration `env:"CHAT_GATEWAY_GEMINI_TIMEOUT" env-default:"30s"`
	Cooldown time.Duration `env:"CHAT_GATEWAY_GEMINI_COOLDOWN" env-default:"5s"`
}

type Storage struct {
	BaseURL string        `env:"CHAT_GATEWAY_STORAGE_BASE_URL" env-required:"true"`
	APIKey  string        `env:"CHAT_GATEWAY_STORAGE_API_KEY"`
	Bucket  string        `env:"CHAT_GATEWAY_STORAGE_BUCKET" env-default:"chat-files"`
	Timeout time.Duration `env:"CHAT_GATEWAY_STORAGE_TIMEOUT" env-default:"60s"`
}

type Kafka struct {
	Host      string `env:"CHAT_GATEWAY_KAFKA_HOST"`
	Port      string `env:"CHAT_GATEWAY_KAFKA_PORT"`
	UserTopic string `env:"CHAT_GATEWAY_KAFKA_USER_TOPIC" env-default:"user.profile.updated"`
}

type Logger struct {
	Host string `env:"CHAT_GATEWAY_LOGGER_HOST"`
	Port string `env:"CHAT_GATEWAY_LOGGER_PORT"`
}

type Metrics struct {
	Host string `env:"CHAT_GATEWAY_METRICS_HOST"`
	Port int    `env:"CHAT_GATEWAY_METRICS_PORT" env-default:"8125"`
}

type Platform struct {
	Env string `env:"CHAT_GATEWAY_ENV" env-default:"dev"`
}

// Session configures the persisted local session state.
type Session struct {
	FilePath string `env:"CHAT_GATEWAY_SESSION_FILE" env-default:"session.json"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	return cfg
}
