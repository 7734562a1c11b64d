// Package config provides configuration management for the newsletter server.
//
// Settings are layered: built-in defaults, then an optional YAML file, then a .env file
// in the working directory, then process environment variables. The result is validated
// before it is returned.
//
// The defaults target postgres and carry no password, so a bare start fails validation
// until DB_PASSWORD is supplied (file, .env or environment). For a zero-setup local run
// use DB_DRIVER=sqlite3 with DB_NAME pointing at a database file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the newsletter server.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `yaml:"host" env:"SERVER_HOST"`
	Port            int           `yaml:"port" env:"SERVER_PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS" envSeparator:","`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DatabaseConfig holds database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver" env:"DB_DRIVER"` // postgres, mysql, sqlite3
	Host                   string `yaml:"host" env:"DB_HOST"`
	Port                   int    `yaml:"port" env:"DB_PORT"`
	User                   string `yaml:"user" env:"DB_USER"`
	Password               string `yaml:"password" env:"DB_PASSWORD"`
	Name                   string `yaml:"name" env:"DB_NAME"` // database name, or file path for sqlite3
	SSLMode                string `yaml:"ssl_mode" env:"DB_SSL_MODE"`
	MaxOpenConns           int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns           int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetimeSeconds int    `yaml:"conn_max_lifetime_seconds" env:"DB_CONN_MAX_LIFETIME_SECONDS"`
	QueryTimeoutSeconds    int    `yaml:"query_timeout_seconds" env:"DB_QUERY_TIMEOUT_SECONDS"`
	AutoMigrate            bool   `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE"`
}

// ConnMaxLifetime returns the pool connection lifetime. Zero means unlimited.
func (c DatabaseConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(c.ConnMaxLifetimeSeconds) * time.Second
}

// QueryTimeout returns the per-request persistence timeout. Zero disables it.
func (c DatabaseConfig) QueryTimeout() time.Duration {
	return time.Duration(c.QueryTimeoutSeconds) * time.Second
}

// LogConfig selects the logger flavour.
type LogConfig struct {
	Mode  string `yaml:"mode" env:"LOG_MODE"`   // production or development
	Level string `yaml:"level" env:"LOG_LEVEL"` // debug, info, warn, error
}

// TelemetryConfig controls trace export.
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled" env:"OTEL_ENABLED"`
	Endpoint    string  `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"` // empty exports to stdout
	ServiceName string  `yaml:"service_name" env:"OTEL_SERVICE_NAME"`
	SampleRatio float64 `yaml:"sample_ratio" env:"OTEL_SAMPLE_RATIO"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:                 "postgres",
			Host:                   "localhost",
			Port:                   5432,
			User:                   "postgres",
			Name:                   "newsletter",
			SSLMode:                "disable",
			MaxOpenConns:           10,
			MaxIdleConns:           5,
			ConnMaxLifetimeSeconds: 300,
			QueryTimeoutSeconds:    10,
		},
		Log: LogConfig{
			Mode:  "production",
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "email-newsletter",
			SampleRatio: 1.0,
		},
	}
}

// Load builds the configuration. An empty path skips the YAML layer.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	// Variables already present in the environment win over .env entries.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server shutdown_timeout must not be negative")
	}

	switch strings.ToLower(c.Database.Driver) {
	case "postgres", "mysql":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the %s driver", c.Database.Driver)
		}
	case "sqlite3":
		if c.Database.Name == "" {
			return fmt.Errorf("database name (file path) is required for sqlite3")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	c.Database.Driver = strings.ToLower(c.Database.Driver)

	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database pool sizes must not be negative")
	}
	if c.Database.ConnMaxLifetimeSeconds < 0 || c.Database.QueryTimeoutSeconds < 0 {
		return fmt.Errorf("database timeouts must not be negative")
	}

	switch c.Log.Mode {
	case "production", "development":
	default:
		return fmt.Errorf("unsupported log mode %q", c.Log.Mode)
	}

	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("telemetry sample_ratio must be within [0, 1]")
	}
	return nil
}

// GetDSN returns the database connection string based on driver.
func (c *DatabaseConfig) GetDSN() string {
	switch strings.ToLower(c.Driver) {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC",
			c.User, c.Password, c.Host, c.Port, c.Name)
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
	case "sqlite3":
		return c.Name // SQLite uses file path as DSN
	default:
		return ""
	}
}
