package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Environment variables override config file values
	v.SetEnvPrefix("RS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	// Database defaults for non-sensitive settings
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 2) // seconds

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")

	// Catalog client defaults
	v.SetDefault("catalog.requestTimeout", 5) // seconds
	v.SetDefault("catalog.breakerMaxFails", 3)
	v.SetDefault("catalog.breakerTimeout", 10) // seconds

	// Identity client defaults
	v.SetDefault("identity.requestTimeout", 5) // seconds

	// Notifier defaults
	v.SetDefault("notifier.enabled", false)
	v.SetDefault("notifier.topic", "item-reserved")

	// Reservation defaults. The hold TTL mirrors the original product
	// setting of a 72 hour hold window.
	v.SetDefault("reservation.holdTtl", 72*60) // minutes
	v.SetDefault("reservation.sweepWorkers", 4)
	v.SetDefault("reservation.sweepInterval", 0)     // seconds, disabled unless configured
	v.SetDefault("reservation.sweepCallTimeout", 10) // seconds
}

// getEnvironment determines the environment based on RS_ENV
func getEnvironment() string {
	env := os.Getenv("RS_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
// for sensitive settings that should never live in a checked-in YAML file
func processEnvOverrides(v *viper.Viper) {
	if dbHost := os.Getenv("RS_DB_HOST"); dbHost != "" {
		v.Set("database.host", dbHost)
	}
	if dbPort := os.Getenv("RS_DB_PORT"); dbPort != "" {
		v.Set("database.port", dbPort)
	}
	if dbUser := os.Getenv("RS_DB_USERNAME"); dbUser != "" {
		v.Set("database.username", dbUser)
	}
	if dbPass := os.Getenv("RS_DB_PASSWORD"); dbPass != "" {
		v.Set("database.password", dbPass)
	}
	if dbName := os.Getenv("RS_DB_NAME"); dbName != "" {
		v.Set("database.database", dbName)
	}
	if sslMode := os.Getenv("RS_DB_SSL_MODE"); sslMode != "" {
		v.Set("database.sslMode", sslMode)
	}
	if jwtSecret := os.Getenv("RS_JWT_SECRET"); jwtSecret != "" {
		v.Set("identity.jwtSecret", jwtSecret)
	}
	if catalogURL := os.Getenv("RS_CATALOG_URL"); catalogURL != "" {
		v.Set("catalog.baseUrl", catalogURL)
	}
	if identityURL := os.Getenv("RS_IDENTITY_URL"); identityURL != "" {
		v.Set("identity.baseUrl", identityURL)
	}
	if brokers := os.Getenv("RS_KAFKA_BROKERS"); brokers != "" {
		v.Set("notifier.brokers", strings.Split(brokers, ","))
		v.Set("notifier.enabled", true)
	}
}

// processDurations converts raw config numbers into time.Duration values.
// The YAML file stores plain numbers in the unit noted on each field.
func processDurations(config *Config) {
	config.Server.ReadTimeout = toDuration(config.Server.ReadTimeout, time.Second)
	config.Server.WriteTimeout = toDuration(config.Server.WriteTimeout, time.Second)
	config.Server.IdleTimeout = toDuration(config.Server.IdleTimeout, time.Second)
	config.Server.ReadHeaderTimeout = toDuration(config.Server.ReadHeaderTimeout, time.Second)
	config.Server.ShutdownTimeout = toDuration(config.Server.ShutdownTimeout, time.Second)

	config.Database.ConnMaxLifetime = toDuration(config.Database.ConnMaxLifetime, time.Minute)
	config.Database.ConnMaxIdleTime = toDuration(config.Database.ConnMaxIdleTime, time.Minute)
	config.Database.QueryTimeout = toDuration(config.Database.QueryTimeout, time.Second)
	config.Database.RetryDelay = toDuration(config.Database.RetryDelay, time.Second)

	config.Catalog.RequestTimeout = toDuration(config.Catalog.RequestTimeout, time.Second)
	config.Catalog.BreakerTimeout = toDuration(config.Catalog.BreakerTimeout, time.Second)
	config.Identity.RequestTimeout = toDuration(config.Identity.RequestTimeout, time.Second)

	config.Reservation.HoldTTL = toDuration(config.Reservation.HoldTTL, time.Minute)
	config.Reservation.SweepInterval = toDuration(config.Reservation.SweepInterval, time.Second)
	config.Reservation.SweepCallTimeout = toDuration(config.Reservation.SweepCallTimeout, time.Second)
}

// toDuration interprets a raw numeric value as a count of `unit`. Values that
// already look like durations (>= 1ms) are passed through unchanged.
func toDuration(raw time.Duration, unit time.Duration) time.Duration {
	if raw >= time.Millisecond {
		return raw
	}
	return raw * unit
}
