package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"API_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// Submission Configuration
	Endpoint    string        `env:"CONTACT_ENDPOINT" envDefault:"http://localhost:8080/api/send-email"`
	HTTPTimeout time.Duration `env:"CONTACT_HTTP_TIMEOUT" envDefault:"10s"`
	StatusTTL   time.Duration `env:"CONTACT_STATUS_TTL" envDefault:"5s"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists
	envLocations := []string{".env"}

	// If ENV is set, try to load that specific file first
	envName := os.Getenv("ENV")
	if envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			// godotenv.Load doesn't overwrite existing env vars, so the
			// first file found wins.
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the loaded configuration is usable
func (c *Config) Validate() error {
	if _, err := url.ParseRequestURI(c.Endpoint); err != nil {
		return fmt.Errorf("invalid contact endpoint %q: %w", c.Endpoint, err)
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be positive, got %s", c.HTTPTimeout)
	}

	if c.StatusTTL <= 0 {
		return fmt.Errorf("status ttl must be positive, got %s", c.StatusTTL)
	}

	return nil
}
