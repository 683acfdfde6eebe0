package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the application configuration, read from the environment.
type Config struct {
	Env           string `envconfig:"APP_ENV" default:"development"`
	Port          string `envconfig:"APP_PORT" default:"8080"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	DatabaseDSN   string `envconfig:"DB_DSN" required:"true"`
	SessionSecret string `envconfig:"SESSION_SECRET" default:"dev_fallback_secret"`
	UploadDir     string `envconfig:"UPLOAD_DIR" default:"uploads"`
	TemplateGlob  string `envconfig:"TEMPLATE_GLOB" default:"internal/views/**/*.tmpl"`
}

// Load reads .env files (cwd and parents, so the binary can run from
// cmd/server too) and then the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
