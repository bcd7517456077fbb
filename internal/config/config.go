package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the client application
type Config struct {
	Gateway GatewayConfig
	Client  ClientConfig
	Logging LoggingConfig
}

// GatewayConfig holds the remote gateway connection configuration
type GatewayConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	LoginURL       string
	LogoutURL      string
	UserAgent      string
}

// ClientConfig holds client-side behavior configuration
type ClientConfig struct {
	Environment string
	// Upper bound on the per-entity comment fetches issued when a list
	// page mounts. Entities past the bound load comments on first expand.
	CommentFanoutLimit int
	MaxUploadBytes     int64
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
	Output string
}

// Load loads configuration from environment variables with validation
func Load() (*Config, error) {
	env := getEnv("GO_ENV", "development")
	if env != "production" {
		envFile := fmt.Sprintf(".env.%s", env)
		if _, err := os.Stat(envFile); err == nil {
			_ = godotenv.Load(envFile)
		} else {
			_ = godotenv.Load() // fallback to .env
		}
	}

	config := &Config{
		Gateway: loadGatewayConfig(),
		Client:  loadClientConfig(env),
		Logging: loadLoggingConfig(env),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadGatewayConfig() GatewayConfig {
	base := getEnv("GATEWAY_BASE_URL", "http://localhost:8081/api")
	return GatewayConfig{
		BaseURL:        base,
		RequestTimeout: getDurationEnv("GATEWAY_REQUEST_TIMEOUT", 15*time.Second),
		LoginURL:       getEnv("GATEWAY_LOGIN_URL", "http://localhost:8081/oauth2/authorization/google"),
		LogoutURL:      getEnv("GATEWAY_LOGOUT_URL", "http://localhost:8081/logout"),
		UserAgent:      getEnv("GATEWAY_USER_AGENT", "skillhub-client"),
	}
}

func loadClientConfig(env string) ClientConfig {
	return ClientConfig{
		Environment:        env,
		CommentFanoutLimit: getIntEnv("CLIENT_COMMENT_FANOUT_LIMIT", 50),
		MaxUploadBytes:     getInt64Env("CLIENT_MAX_UPLOAD_BYTES", 10*1024*1024), // 10MB
	}
}

func loadLoggingConfig(env string) LoggingConfig {
	return LoggingConfig{
		Level:  getEnv("LOG_LEVEL", getDefaultLogLevel(env)),
		Format: getEnv("LOG_FORMAT", getDefaultLogFormat(env)),
		Output: getEnv("LOG_OUTPUT", "stdout"),
	}
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if err := c.Gateway.Validate(); err != nil {
		return fmt.Errorf("gateway config: %w", err)
	}

	if err := c.Client.Validate(); err != nil {
		return fmt.Errorf("client config: %w", err)
	}

	return nil
}

// Validate validates gateway configuration
func (g *GatewayConfig) Validate() error {
	if g.BaseURL == "" {
		return fmt.Errorf("GATEWAY_BASE_URL is required")
	}

	u, err := url.Parse(g.BaseURL)
	if err != nil {
		return fmt.Errorf("GATEWAY_BASE_URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("GATEWAY_BASE_URL must be http or https, got %q", u.Scheme)
	}

	if g.RequestTimeout <= 0 {
		return fmt.Errorf("RequestTimeout must be positive")
	}

	return nil
}

// Validate validates client configuration
func (c *ClientConfig) Validate() error {
	if c.CommentFanoutLimit <= 0 {
		return fmt.Errorf("CommentFanoutLimit must be positive")
	}

	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MaxUploadBytes must be positive")
	}

	return nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Client.Environment == "production"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Client.Environment == "development"
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDefaultLogLevel(env string) string {
	switch env {
	case "production":
		return "info"
	default:
		return "debug"
	}
}

func getDefaultLogFormat(env string) string {
	switch env {
	case "production":
		return "json"
	default:
		return "console"
	}
}
