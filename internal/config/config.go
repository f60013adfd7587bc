package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration of the service
type Config struct {
	Database  DBConfig        `yaml:"database"`
	Server    ServerConfig    `yaml:"server"`
	JWT       JWTConfig       `yaml:"jwt"`
	Scheduler SchedulerConfig `yaml:"scheduler"`

	// Registering with this email grants the admin role
	InitialAdminEmail string `yaml:"initial_admin_email"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Port      string `yaml:"port"`
	StaticDir string `yaml:"static_dir"` // storefront files, served for unmatched routes
}

// JWTConfig holds bearer token settings for the admin endpoints
type JWTConfig struct {
	Secret          string `yaml:"secret"`
	ExpirationHours int64  `yaml:"expiration_hours"`
}

// SchedulerConfig controls the rental status reconciliation job
type SchedulerConfig struct {
	Enabled       bool   `yaml:"enabled"`
	ReconcileSpec string `yaml:"reconcile_cron"`
}

func defaults() Config {
	return Config{
		Database: DBConfig{Port: "5432", SSLMode: "disable"},
		Server:   ServerConfig{Port: "8080"},
		JWT:      JWTConfig{ExpirationHours: 24},
		Scheduler: SchedulerConfig{
			ReconcileSpec: "5 0 * * *", // shortly after midnight UTC
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file at
// path and environment variables, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.overrideWithEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) overrideWithEnv() error {
	setString := func(key string, dst *string) {
		if val := os.Getenv(key); val != "" {
			*dst = val
		}
	}

	setString("DB_HOST", &c.Database.Host)
	setString("DB_PORT", &c.Database.Port)
	setString("DB_USER", &c.Database.User)
	setString("DB_PASSWORD", &c.Database.Password)
	setString("DB_NAME", &c.Database.Name)
	setString("DB_SSLMODE", &c.Database.SSLMode)
	setString("SERVER_PORT", &c.Server.Port)
	setString("STATIC_DIR", &c.Server.StaticDir)
	setString("JWT_SECRET_KEY", &c.JWT.Secret)
	setString("INITIAL_ADMIN_EMAIL", &c.InitialAdminEmail)
	setString("RECONCILE_CRON", &c.Scheduler.ReconcileSpec)

	if val := os.Getenv("JWT_EXPIRATION_HOURS"); val != "" {
		hours, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %w", err)
		}
		c.JWT.ExpirationHours = hours
	}
	if val := os.Getenv("SCHEDULER_ENABLED"); val != "" {
		enabled, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid SCHEDULER_ENABLED: %w", err)
		}
		c.Scheduler.Enabled = enabled
	}
	return nil
}

// Validate checks required settings
func (c *Config) Validate() error {
	var errs []error
	if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
		errs = append(errs, errors.New("database settings not set (DB_HOST, DB_USER, DB_NAME)"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY not set"))
	}
	if c.JWT.ExpirationHours <= 0 {
		errs = append(errs, errors.New("jwt expiration must be positive"))
	}
	if _, err := cron.ParseStandard(c.Scheduler.ReconcileSpec); err != nil {
		errs = append(errs, fmt.Errorf("invalid reconcile cron spec %q: %w", c.Scheduler.ReconcileSpec, err))
	}
	return errors.Join(errs...)
}
