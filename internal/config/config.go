package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type (
	Config struct {
		App        App
		Log        Log
		HTTP       HTTP
		PG         PG
		Redis      Redis
		Kafka      Kafka
		Prometheus Prometheus
		Archive    Archive
		Search     Search
	}

	App struct {
		Name    string `env:"APP_NAME" env-default:"logstream"`
		Version string `env:"APP_VERSION" env-default:"1.0.0"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL" env-default:"info"`
	}

	HTTP struct {
		Port string `env:"HTTP_PORT" env-default:"8080"`
	}

	PG struct {
		URL         string `env:"PG_URL" env-required:"true"`
		MaxPoolSize int    `env:"PG_MAX_POOL_SIZE" env-default:"10"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD" env-default:""`
		DB       int    `env:"REDIS_DB" env-default:"0"`
	}

	Kafka struct {
		Brokers     []string `env:"KAFKA_BROKERS" env-default:"localhost:9092"`
		AlertsTopic string   `env:"KAFKA_ALERTS_TOPIC" env-default:"logstream.alerts"`
		EventsTopic string   `env:"KAFKA_EVENTS_TOPIC" env-default:"logstream.events"`
	}

	Prometheus struct {
		Port string `env:"PROMETHEUS_PORT" env-default:"9090"`
	}

	Archive struct {
		Dir             string `env:"ARCHIVE_DIR" env-default:"/var/lib/logstream/archive"`
		BatchSize       int    `env:"ARCHIVE_BATCH_SIZE" env-default:"1000"`
		DeleteAfterDays int    `env:"ARCHIVE_DELETE_AFTER_DAYS" env-default:"365"`
	}

	Search struct {
		IndexPrefix string `env:"SEARCH_INDEX_PREFIX" env-default:"logstream-logs"`
	}
)

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}
