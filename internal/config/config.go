package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration. It is loaded once at startup
// and passed explicitly into the components that need it — there are no
// ambient globals for thresholds or tables.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// Database
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"storygen_user"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"storygen_password"`
	DBName     string `envconfig:"DB_NAME" default:"storygen"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// Generator backend: "anthropic", "openai", or "mock"
	GeneratorBackend string `envconfig:"GENERATOR_BACKEND" default:"mock"`
	AnthropicModel   string `envconfig:"ANTHROPIC_MODEL" default:"claude-sonnet-4-5-20250929"`
	OpenAIAPIKey     string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL    string `envconfig:"OPENAI_BASE_URL"`
	OpenAIModel      string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`

	// Sampling parameters sent with every generation call
	Temperature float64 `envconfig:"GEN_TEMPERATURE" default:"0.8"`
	TopP        float64 `envconfig:"GEN_TOP_P" default:"1"`
	TopK        int     `envconfig:"GEN_TOP_K" default:"40"`

	// Readability-gated retry loop
	MaxAttempts int `envconfig:"MAX_ATTEMPTS" default:"3"`

	// Drift thresholds
	SpeedThreshold float64 `envconfig:"SPEED_THRESHOLD" default:"15"`
	LengthMin      int     `envconfig:"LENGTH_MIN" default:"300"`
	LengthMax      int     `envconfig:"LENGTH_MAX" default:"1500"`
	PSIThreshold   float64 `envconfig:"PSI_THRESHOLD" default:"50"`
}

// Load populates a Config from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.MaxAttempts < 1 {
		return nil, fmt.Errorf("MAX_ATTEMPTS must be at least 1, got %d", cfg.MaxAttempts)
	}
	return &cfg, nil
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
