package config

import (
	"fmt"
	"os"
	"strings"

	apperrors "charnet/backend/pkg/errors"

	"github.com/joho/godotenv"
)

// Data sources for the character table
const (
	DataSourceCSV   = "csv"
	DataSourceNeo4j = "neo4j"
)

// Config holds all application configuration
type Config struct {
	// App
	Port     string
	Env      string
	LogLevel string

	// Character table
	DataSource        string
	CharacterFiles    []string
	LoaderConcurrency int

	// Neo4j
	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string
}

// Option overrides a loaded value before validation
type Option func(*Config)

// WithDataSource forces the character table source
func WithDataSource(source string) Option {
	return func(c *Config) {
		c.DataSource = strings.ToLower(source)
	}
}

// WithCharacterFiles replaces CHARACTER_FILES with a comma-separated list.
// An empty list leaves the environment value in place.
func WithCharacterFiles(list string) Option {
	return func(c *Config) {
		if files := splitList(list); len(files) > 0 {
			c.CharacterFiles = files
		}
	}
}

// Load reads configuration from environment variables, then applies opts
func Load(opts ...Option) (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", ""),
		DataSource:        strings.ToLower(getEnv("DATA_SOURCE", DataSourceCSV)),
		CharacterFiles:    getEnvList("CHARACTER_FILES", []string{"data/characters.csv"}),
		LoaderConcurrency: getEnvInt("LOADER_CONCURRENCY", 4),
		Neo4jURI:          getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:         getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword:     getEnv("NEO4J_PASSWORD", "password"),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.Port == "" {
		return apperrors.NewConfigMissingRequired("PORT")
	}
	if c.LoaderConcurrency < 1 {
		return apperrors.NewConfigValidationFailed("LOADER_CONCURRENCY", "must be at least 1")
	}

	switch c.DataSource {
	case DataSourceCSV:
		if len(c.CharacterFiles) == 0 {
			return apperrors.NewConfigMissingRequired("CHARACTER_FILES")
		}
	case DataSourceNeo4j:
		if c.Neo4jURI == "" {
			return apperrors.NewConfigMissingRequired("NEO4J_URI")
		}
		if c.Neo4jUser == "" {
			return apperrors.NewConfigMissingRequired("NEO4J_USER")
		}
		if c.Neo4jPassword == "" {
			return apperrors.NewConfigMissingRequired("NEO4J_PASSWORD")
		}
	default:
		return apperrors.NewConfigValidationFailed("DATA_SOURCE", fmt.Sprintf("unknown source %q", c.DataSource))
	}
	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	if result := splitList(os.Getenv(key)); len(result) > 0 {
		return result
	}
	return defaultValue
}

// splitList splits a comma-separated value, dropping blank entries
func splitList(value string) []string {
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
