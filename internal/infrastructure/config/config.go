package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values of database.driver.
const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite3  = "sqlite3"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	Blueprint BlueprintConfig `mapstructure:"blueprint"`
	Review    ReviewConfig    `mapstructure:"review"`
	Scoring   ScoringConfig   `mapstructure:"scoring"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	GRPCPort       int      `mapstructure:"grpc_port"`
	HTTPPort       int      `mapstructure:"http_port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
	Path     string `mapstructure:"path"`
	LogSQL   bool   `mapstructure:"log_sql"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BlueprintConfig controls the assembled-blueprint cache.
type BlueprintConfig struct {
	CacheTTL           time.Duration `mapstructure:"cache_ttl"`
	CacheSweepInterval time.Duration `mapstructure:"cache_sweep_interval"`
}

// ReviewConfig overrides the spaced-repetition policy.
type ReviewConfig struct {
	IntervalDays      []int         `mapstructure:"interval_days"`
	ReviewThreshold   int           `mapstructure:"review_threshold"`
	MasteredThreshold int           `mapstructure:"mastered_threshold"`
	RelearnDelay      time.Duration `mapstructure:"relearn_delay"`
}

// ScoringConfig selects where the score conversion table comes from.
type ScoringConfig struct {
	Source string `mapstructure:"source"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Variables already present in the environment win over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

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
	// Server defaults
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.grpc_port", 9090)
	viper.SetDefault("server.http_port", 8080)
	viper.SetDefault("server.allowed_origins", []string{"*"})

	// Database defaults
	viper.SetDefault("database.driver", DriverPostgres)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.name", "toeicprep")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.path", "toeicprep.db")
	viper.SetDefault("database.log_sql", false)
	viper.SetDefault("database.max_conns", 10)

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")

	viper.SetDefault("blueprint.cache_ttl", 30*time.Minute)
	viper.SetDefault("blueprint.cache_sweep_interval", 5*time.Minute)

	viper.SetDefault("review.interval_days", []int{1, 3, 7, 14, 30, 60})
	viper.SetDefault("review.review_threshold", 3)
	viper.SetDefault("review.mastered_threshold", 5)
	viper.SetDefault("review.relearn_delay", 10*time.Minute)

	viper.SetDefault("scoring.source", "builtin")
}

// DatabaseDriver returns the normalized driver name.
func (c *Config) DatabaseDriver() (string, error) {
	driver := strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch driver {
	case "", "postgresql":
		return DriverPostgres, nil
	case DriverPostgres, DriverPgx, DriverSQLite3, DriverSQLite:
		return driver, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
}

// DatabaseURL returns the DSN for the configured driver.
func (c *Config) DatabaseURL() (string, error) {
	driver, err := c.DatabaseDriver()
	if err != nil {
		return "", err
	}

	switch driver {
	case DriverSQLite3:
		if c.Database.Path == "" {
			return "", errors.New("database.path is required for sqlite3")
		}
		return fmt.Sprintf("file:%s?cache=shared&_fk=1", c.Database.Path), nil
	case DriverSQLite:
		if c.Database.Path == "" {
			return "", errors.New("database.path is required for sqlite")
		}
		return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", c.Database.Path), nil
	default:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.Database.User, c.Database.Password),
			Host:     fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port),
			Path:     "/" + c.Database.Name,
			RawQuery: url.Values{"sslmode": []string{c.Database.SSLMode}}.Encode(),
		}
		return u.String(), nil
	}
}
