package config

import (
	"time"

	"auction-bidding/utils"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    uint16 `env:"PORT"     envDefault:"8080"    validate:"min=1,max=65535"`
	GinMode string `env:"GIN_MODE" envDefault:"release" validate:"oneof=debug release test"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev-only-secret-change-me" validate:"required,min=16"`
	TokenTTL  time.Duration `env:"TOKEN_TTL"  envDefault:"24h"                       validate:"gt=0"`

	SeedAuctions bool `env:"SEED_AUCTIONS" envDefault:"true"`
}

// LoadConfig reads an optional .env file, then the environment, and validates the result.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		utils.Debug(".env file not found", map[string]any{"error": err.Error()})
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		utils.Error("config_load_failed", map[string]any{"error": err.Error()})
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		utils.Error("config_validation_failed", map[string]any{"error": err.Error()})
		return nil, err
	}
	return cfg, nil
}
