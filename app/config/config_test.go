package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "test-password")
	t.Setenv("JWT_SECRET", "a-secret-long-enough")

	// Keep host environment from leaking into default assertions
	for _, key := range []string{"PORT", "HOST", "LOG_LEVEL", "JWT_TTL", "JWT_ISSUER",
		"ARTICLE_WRITE_POLICY", "CHAT_API_URL", "CORS_ALLOW_ORIGINS", "CONFIG_FILE"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "nextpath", cfg.JWTIssuer)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, ArticleWriteAuthenticated, cfg.ArticleWritePolicy)
	assert.NotEmpty(t, cfg.CORSAllowOrigins)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET", "a-secret-long-enough")
	_, err := Load()
	assert.ErrorContains(t, err, "DB_PASSWORD")

	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("ARTICLE_WRITE_POLICY", "public")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.Equal(t, ArticleWritePublic, cfg.ArticleWritePolicy)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORSAllowOrigins)
}

func TestLoadYAMLOverlay(t *testing.T) {
	setRequiredEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlBody := "port: \"9100\"\nlog_level: debug\narticle_write_policy: public\ncors_allow_origins:\n  - https://yaml.example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ArticleWritePublic, cfg.ArticleWritePolicy)
	assert.Equal(t, []string{"https://yaml.example.com"}, cfg.CORSAllowOrigins)
}

func TestEnvWinsOverYAML(t *testing.T) {
	setRequiredEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9100\"\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9200")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9200", cfg.Port)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:               "8000",
			LogLevel:           "info",
			JWTSecret:          "a-secret-long-enough",
			JWTTTL:             time.Hour,
			ArticleWritePolicy: ArticleWriteAuthenticated,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.Port = "abc" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "between 1 and 65535"},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "invalid log level"},
		{"bad policy", func(c *Config) { c.ArticleWritePolicy = "admin-only" }, "article write policy"},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }, "JWT secret"},
		{"tiny ttl", func(c *Config) { c.JWTTTL = time.Second }, "JWT TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.errMsg)
			}
		})
	}
}
