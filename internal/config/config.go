package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string `envconfig:"PESAGEM_PORT" default:"8080"`
	DatabaseDSN   string `envconfig:"PESAGEM_DB_DSN" default:"host=localhost user=pesagem password=pesagem dbname=pesagem port=5432 sslmode=disable"`
	RedisAddr     string `envconfig:"PESAGEM_REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"PESAGEM_REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"PESAGEM_REDIS_DB" default:"0"`
	JWTSecret     string `envconfig:"PESAGEM_JWT_SECRET" default:"change-me"`
	UploadDir     string `envconfig:"PESAGEM_UPLOAD_DIR" default:"uploads"`
	LogLevel      string `envconfig:"PESAGEM_LOG_LEVEL" default:"info"`
}

// Load reads an optional .env file and builds Config from the environment.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
