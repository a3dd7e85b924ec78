package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Port           string   `env:"PORT" env-default:"8080"`
	Environment    string   `env:"ENVIRONMENT" env-default:"development"`
	FrontendURL    string   `env:"FRONTEND_URL" env-default:"http://localhost:5173"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-separator:","`
	StaticDir      string   `env:"STATIC_DIR" env-default:"./static"`

	JWTSecret         string `env:"JWT_SECRET" env-default:"your-secret-key-change-this-in-production"`
	GameTokenTTLHours int    `env:"GAME_TOKEN_TTL_HOURS" env-default:"24"`

	BoardRows    int `env:"BOARD_ROWS" env-default:"6"`
	BoardColumns int `env:"BOARD_COLUMNS" env-default:"7"`

	FinishedGameTTLMinutes int `env:"FINISHED_GAME_TTL_MINUTES" env-default:"60"`
	StaleGameTTLHours      int `env:"STALE_GAME_TTL_HOURS" env-default:"24"`
	CleanupIntervalMinutes int `env:"CLEANUP_INTERVAL_MINUTES" env-default:"10"`
}

// LoadConfig reads the environment (after godotenv has filled it from .env) into a Config.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.AllowedOrigins = buildAllowedOrigins(cfg.FrontendURL, cfg.AllowedOrigins)

	if cfg.JWTSecret == "your-secret-key-change-this-in-production" && cfg.IsProduction() {
		log.Println("[CONFIG] Warning: JWT_SECRET is the default value in production")
	}

	return cfg, nil
}

func (c *Config) validate() error {
	positive := []struct {
		key   string
		value int
	}{
		{"GAME_TOKEN_TTL_HOURS", c.GameTokenTTLHours},
		{"FINISHED_GAME_TTL_MINUTES", c.FinishedGameTTLMinutes},
		{"STALE_GAME_TTL_HOURS", c.StaleGameTTLHours},
		{"CLEANUP_INTERVAL_MINUTES", c.CleanupIntervalMinutes},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", p.key, p.value)
		}
	}

	if c.BoardRows < domain.MinDimension || c.BoardRows > domain.MaxDimension {
		return fmt.Errorf("BOARD_ROWS must be between %d and %d, got %d", domain.MinDimension, domain.MaxDimension, c.BoardRows)
	}
	if c.BoardColumns < domain.MinDimension || c.BoardColumns > domain.MaxDimension {
		return fmt.Errorf("BOARD_COLUMNS must be between %d and %d, got %d", domain.MinDimension, domain.MaxDimension, c.BoardColumns)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) GameTokenTTL() time.Duration {
	return time.Duration(c.GameTokenTTLHours) * time.Hour
}

func (c *Config) FinishedGameTTL() time.Duration {
	return time.Duration(c.FinishedGameTTLMinutes) * time.Minute
}

func (c *Config) StaleGameTTL() time.Duration {
	return time.Duration(c.StaleGameTTLHours) * time.Hour
}

func (c *Config) CleanupInterval() time.Duration {
	return time.Duration(c.CleanupIntervalMinutes) * time.Minute
}

// Frontend URL first, then the local dev server, then whatever ALLOWED_ORIGINS adds
func buildAllowedOrigins(frontendURL string, extras []string) []string {
	origins := []string{frontendURL}
	if frontendURL != "http://localhost:5173" {
		origins = append(origins, "http://localhost:5173")
	}

	for _, origin := range extras {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
