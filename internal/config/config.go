package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Code generation strategies for transaction codes
const (
	CodeStrategyRandom    = "random"
	CodeStrategySnowflake = "snowflake"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Database  DatabaseConfig
	Gateway   GatewayConfig
	App       AppConfig
	Simulator SimulatorConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	ConnMaxLifetime time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
}

// GatewayConfig holds the outbound payment gateway settings
type GatewayConfig struct {
	URL     string
	Country string
	Timeout time.Duration
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	CodeStrategy       string
	CORSAllowedOrigins []string
	SnowflakeNode      int64
}

// SimulatorConfig holds settings for the local gateway simulator
type SimulatorConfig struct {
	Port          string
	ApprovalLimit string
	FailureRate   float64
	MinLatencyMS  int
	MaxLatencyMS  int
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level string // debug, info, warn, error
}

// Load loads configuration from an optional .env file and environment
// variables with sensible defaults
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8081"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", "45s"),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "pos"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "5m"),
		},
		Gateway: GatewayConfig{
			URL:     getEnv("GATEWAY_URL", "http://localhost:8090"),
			Country: getEnv("GATEWAY_COUNTRY", "EC"),
			Timeout: getEnvAsDuration("GATEWAY_TIMEOUT", "30s"),
		},
		App: AppConfig{
			CodeStrategy:  strings.ToLower(getEnv("TXN_CODE_STRATEGY", CodeStrategyRandom)),
			SnowflakeNode: int64(getEnvAsInt("SNOWFLAKE_NODE", 1)),
			CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3003",
				"http://127.0.0.1:3003",
				"http://localhost:4200",
				"http://127.0.0.1:4200",
			}),
		},
		Simulator: SimulatorConfig{
			Port:          getEnv("SIM_PORT", "8090"),
			ApprovalLimit: getEnv("SIM_APPROVAL_LIMIT", "5000.00"),
			FailureRate:   getEnvAsFloat("FAILURE_RATE", 0.05),
			MinLatencyMS:  getEnvAsInt("MIN_LATENCY_MS", 100),
			MaxLatencyMS:  getEnvAsInt("MAX_LATENCY_MS", 800),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	if c.Gateway.URL == "" {
		return fmt.Errorf("gateway url cannot be empty")
	}
	if _, err := url.ParseRequestURI(c.Gateway.URL); err != nil {
		return fmt.Errorf("invalid gateway url %q: %w", c.Gateway.URL, err)
	}
	if c.Gateway.Timeout <= 0 {
		return fmt.Errorf("gateway timeout must be positive")
	}
	if len(c.Gateway.Country) != 2 {
		return fmt.Errorf("gateway country must be a 2-letter code, got %q", c.Gateway.Country)
	}

	switch c.App.CodeStrategy {
	case CodeStrategyRandom:
	case CodeStrategySnowflake:
		if c.App.SnowflakeNode < 0 || c.App.SnowflakeNode > 1023 {
			return fmt.Errorf("snowflake node must be between 0 and 1023, got %d", c.App.SnowflakeNode)
		}
	default:
		return fmt.Errorf("invalid transaction code strategy: %s (must be random or snowflake)", c.App.CodeStrategy)
	}

	if c.Simulator.FailureRate < 0 || c.Simulator.FailureRate > 1 {
		return fmt.Errorf("failure rate must be between 0 and 1, got %f", c.Simulator.FailureRate)
	}
	if c.Simulator.MinLatencyMS < 0 {
		return fmt.Errorf("min latency cannot be negative")
	}
	if c.Simulator.MaxLatencyMS < c.Simulator.MinLatencyMS {
		return fmt.Errorf("max latency (%d) must be >= min latency (%d)", c.Simulator.MaxLatencyMS, c.Simulator.MinLatencyMS)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	return nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to parsing the default if provided value is invalid
		duration, err = time.ParseDuration(defaultValue)
		if err != nil {
			return 0
		}
	}
	return duration
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
