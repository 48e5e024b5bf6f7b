package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ArticleWritePolicy controls which callers may mutate articles.
// Deployments differ on whether the catalog is curated or open, so the
// guard is configuration rather than a hard-coded route group.
type ArticleWritePolicy string

const (
	ArticleWritePublic        ArticleWritePolicy = "public"
	ArticleWriteAuthenticated ArticleWritePolicy = "authenticated"
)

// Config holds all configuration for the NextPath API
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`

	// Database
	DatabaseHost     string `yaml:"db_host"`
	DatabasePort     string `yaml:"db_port"`
	DatabaseName     string `yaml:"db_name"`
	DatabaseUser     string `yaml:"db_user"`
	DatabasePassword string `yaml:"-"`
	DatabaseSSLMode  string `yaml:"db_ssl_mode"`

	// JWT
	JWTSecret string        `yaml:"-"`
	JWTIssuer string        `yaml:"jwt_issuer"`
	JWTTTL    time.Duration `yaml:"jwt_ttl"`

	// Articles
	ArticleWritePolicy ArticleWritePolicy `yaml:"article_write_policy"`

	// Chat proxy
	ChatAPIURL string `yaml:"chat_api_url"`

	// CORS
	CORSAllowOrigins []string `yaml:"cors_allow_origins"`
}

// Load reads configuration from environment variables, with an optional
// YAML overlay (CONFIG_FILE) applied first so env vars always win.
func Load() (*Config, error) {
	config := &Config{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := config.loadYAML(path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Server configuration
	config.Port = getEnvOrKeep("PORT", config.Port, "8000")
	config.Host = getEnvOrKeep("HOST", config.Host, "0.0.0.0")
	config.LogLevel = getEnvOrKeep("LOG_LEVEL", config.LogLevel, "info")

	// Database configuration
	config.DatabaseHost = getEnvOrKeep("DB_HOST", config.DatabaseHost, "localhost")
	config.DatabasePort = getEnvOrKeep("DB_PORT", config.DatabasePort, "5432")
	config.DatabaseName = getEnvOrKeep("DB_NAME", config.DatabaseName, "nextpath")
	config.DatabaseUser = getEnvOrKeep("DB_USER", config.DatabaseUser, "nextpath")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrKeep("DB_SSL_MODE", config.DatabaseSSLMode, "disable")

	// JWT configuration
	config.JWTSecret = os.Getenv("JWT_SECRET")
	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	config.JWTIssuer = getEnvOrKeep("JWT_ISSUER", config.JWTIssuer, "nextpath")

	ttlStr := os.Getenv("JWT_TTL")
	if ttlStr != "" {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
		}
		config.JWTTTL = ttl
	}
	if config.JWTTTL == 0 {
		config.JWTTTL = time.Hour
	}

	// Article write policy
	policy := getEnvOrKeep("ARTICLE_WRITE_POLICY", string(config.ArticleWritePolicy), string(ArticleWriteAuthenticated))
	config.ArticleWritePolicy = ArticleWritePolicy(policy)

	// Chat proxy
	config.ChatAPIURL = getEnvOrKeep("CHAT_API_URL", config.ChatAPIURL, "http://localhost:5001")

	// CORS
	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		config.CORSAllowOrigins = splitAndTrim(origins)
	}
	if len(config.CORSAllowOrigins) == 0 {
		config.CORSAllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	switch c.ArticleWritePolicy {
	case ArticleWritePublic, ArticleWriteAuthenticated:
	default:
		return fmt.Errorf("invalid article write policy: %s (must be public or authenticated)", c.ArticleWritePolicy)
	}

	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT secret must be at least 16 characters")
	}

	if c.JWTTTL < time.Minute {
		return fmt.Errorf("JWT TTL must be at least 1 minute, got: %v", c.JWTTTL)
	}

	return nil
}

// loadYAML applies values from a YAML config file
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Helper functions

func getEnvOrKeep(key, current, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if current != "" {
		return current
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
