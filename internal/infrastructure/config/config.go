package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	RemoteStats RemoteStatsConfig `mapstructure:"remote_stats"`
	Journey     JourneyConfig     `mapstructure:"journey"`
	Log         LogConfig         `mapstructure:"log"`
}

// DatabaseConfig holds the primary database configuration. The driver is
// either sqlite3 (default, single-user local file) or postgres.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	DSN      string `mapstructure:"dsn"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
	LogSQL   bool   `mapstructure:"log_sql"`
}

// RemoteStatsConfig holds the optional remote Postgres endpoint that mirrors
// per-term learning stats across devices.
type RemoteStatsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// JourneyConfig holds session-level defaults for the activity scheduler.
type JourneyConfig struct {
	AudioEnabled bool     `mapstructure:"audio_enabled"`
	Corpora      []string `mapstructure:"corpora"`
	Seed         uint64   `mapstructure:"seed"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Enable reading from environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read configuration file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Database defaults: a local SQLite file next to the binary.
	viper.SetDefault("database.driver", "sqlite3")
	viper.SetDefault("database.dsn", "file:journey.db?cache=shared&_fk=1")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.name", "journey")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.log_sql", false)

	// Remote stats defaults
	viper.SetDefault("remote_stats.enabled", false)
	viper.SetDefault("remote_stats.url", "")

	// Journey defaults
	viper.SetDefault("journey.audio_enabled", true)
	viper.SetDefault("journey.corpora", []string{})
	viper.SetDefault("journey.seed", 0)

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}

// DatabaseDriver returns the configured SQL driver name.
func (c *Config) DatabaseDriver() (string, error) {
	driver := strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch driver {
	case "", "sqlite", "sqlite3":
		return "sqlite3", nil
	case "postgres", "postgresql", "pgx":
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
}

// DatabaseURL returns the connection string for the configured driver.
func (c *Config) DatabaseURL() (string, error) {
	driver, err := c.DatabaseDriver()
	if err != nil {
		return "", err
	}
	if c.Database.DSN != "" {
		return c.Database.DSN, nil
	}
	if driver == "sqlite3" {
		return "file:journey.db?cache=shared&_fk=1", nil
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	), nil
}
