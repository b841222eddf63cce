// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types, applies defaults and
// validates the result so the values can be reused across the application
// runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate the values the process cannot start without.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it is loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read from two sources, in this order:

	- The short database variables the portfolio has always used:
	  DB_HOST, DB_USER, DB_PASSWORD, DB_NAME (and DB_PORT, DB_DRIVER, ...).
	  They map onto the "database" block.
	- Variables with the PORTFOLIO_ prefix. A double underscore separates
	  nesting levels, e.g.
	  PORTFOLIO_SERVER__PORT                  -> server.port
	  PORTFOLIO_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level

	Later sources win, so PORTFOLIO_DATABASE__HOST overrides DB_HOST.
*/

const (
	envPrefix   = "PORTFOLIO_"
	dbEnvPrefix = "DB_"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database"`
	Contact       ContactConfig        `koanf:"contact"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development staging production"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port            string `koanf:"port" validate:"required,numeric"`
	ReadTimeout     int    `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout    int    `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout     int    `koanf:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int    `koanf:"shutdown_timeout" validate:"min=1"`
}

// DatabaseConfig holds the connection parameters of the backing store.
//
// Host, User, Password and Name are deliberately not required: a missing
// value shows up as a connection failure on the first request that needs
// the database, not as a startup error.
type DatabaseConfig struct {
	Driver   string `koanf:"driver" validate:"oneof=postgres sqlite"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port" validate:"min=0,max=65535"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"ssl_mode"`

	// Path is the database file used by the sqlite driver.
	Path string `koanf:"path"`

	// ConnectTimeout bounds a single connection attempt.
	ConnectTimeout time.Duration `koanf:"connect_timeout" validate:"min=0"`

	// Pooled keeps released connections open for reuse. Off by default:
	// every request dials its own connection and closes it when done.
	Pooled       bool `koanf:"pooled"`
	MaxOpenConns int  `koanf:"max_open_conns" validate:"min=0"`

	// BootstrapSchema creates missing tables at startup.
	BootstrapSchema bool `koanf:"bootstrap_schema"`
}

// ContactConfig configures the public contact form.
type ContactConfig struct {
	// RateLimit is the number of submissions per second allowed per client
	// IP. Zero disables limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
	RateBurst int     `koanf:"rate_burst" validate:"min=0"`

	// Notification e-mail. Both ResendAPIKey and NotifyEmail must be set
	// for a notification to be sent.
	ResendAPIKey string `koanf:"resend_api_key"`
	NotifyEmail  string `koanf:"notify_email" validate:"omitempty,email"`
	FromAddress  string `koanf:"from_address"`
}

// NotificationsEnabled reports whether contact submissions are mailed out.
func (c ContactConfig) NotificationsEnabled() bool {
	return c.ResendAPIKey != "" && c.NotifyEmail != ""
}

// DSN builds the driver specific data source name.
//
// For postgres the password is URL-escaped so characters like ':' or '@'
// cannot break the URL structure.
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverSQLite {
		return d.Path
	}

	hostPort := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(d.User),
		url.QueryEscape(d.Password),
		hostPort,
		url.PathEscape(d.Name),
		d.SSLMode,
	)
	if d.ConnectTimeout > 0 {
		// libpq style connect_timeout is whole seconds, minimum 1.
		secs := int(d.ConnectTimeout.Round(time.Second) / time.Second)
		if secs < 1 {
			secs = 1
		}
		dsn += "&connect_timeout=" + strconv.Itoa(secs)
	}
	return dsn
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, applies defaults and validates the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(dbEnvPrefix, ".", func(s string) string {
		return "database." + strings.ToLower(strings.TrimPrefix(s, dbEnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load database env variables: %w", err)
	}

	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	mainConfig.applyDefaults()

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// Validate runs the struct tag rules plus the observability checks that
// cannot be expressed as tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("invalid observability config: %w", err)
	}

	return nil
}

// applyDefaults fills every optional value left empty by the environment.
func (c *Config) applyDefaults() {
	if c.Primary.Env == "" {
		c.Primary.Env = "development"
	}

	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 30
	}

	if c.Database.Driver == "" {
		c.Database.Driver = DriverPostgres
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.Path == "" {
		c.Database.Path = "data/portfolio.db"
	}
	if c.Database.ConnectTimeout == 0 {
		c.Database.ConnectTimeout = 5 * time.Second
	}

	if c.Contact.RateBurst == 0 && c.Contact.RateLimit > 0 {
		c.Contact.RateBurst = 3
	}
	if c.Contact.FromAddress == "" {
		c.Contact.FromAddress = "Portfolio <onboarding@resend.dev>"
	}

	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	} else {
		c.Observability.fillDefaults(DefaultObservabilityConfig())
	}

	// Service name is fixed and the environment always follows Primary so
	// logs and traces agree on both.
	c.Observability.ServiceName = "portfolio"
	c.Observability.Environment = c.Primary.Env
}
