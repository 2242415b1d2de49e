package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
	Identity    IdentityConfig    `mapstructure:"identity"`
	Notifier    NotifierConfig    `mapstructure:"notifier"`
	Reservation ReservationConfig `mapstructure:"reservation"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// CatalogConfig contains settings for the external catalog service client
type CatalogConfig struct {
	BaseURL         string        `mapstructure:"baseUrl"`
	RequestTimeout  time.Duration `mapstructure:"requestTimeout"` // seconds
	BreakerMaxFails uint32        `mapstructure:"breakerMaxFails"`
	BreakerTimeout  time.Duration `mapstructure:"breakerTimeout"` // seconds
}

// IdentityConfig contains settings for the external identity service client
// and for verifying bearer tokens it issues
type IdentityConfig struct {
	BaseURL        string        `mapstructure:"baseUrl"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"` // seconds
	JWTSecret      string        `mapstructure:"jwtSecret"`
}

// NotifierConfig contains settings for the reservation event publisher
type NotifierConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// ReservationConfig contains the hold and expiration sweep settings
type ReservationConfig struct {
	HoldTTL          time.Duration `mapstructure:"holdTtl"`          // minutes
	SweepWorkers     int           `mapstructure:"sweepWorkers"`
	SweepInterval    time.Duration `mapstructure:"sweepInterval"`    // seconds, 0 disables the periodic trigger
	SweepCallTimeout time.Duration `mapstructure:"sweepCallTimeout"` // seconds
}
