package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"restaurant/internal/adapters/out/events"
	"restaurant/internal/adapters/out/session"
	"restaurant/internal/jobs"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/joho/godotenv"
)

// Config holds the application configuration, read from ORDERS_ environment
// variables and an optional config.yaml.
type Config struct {
	HTTP     HTTPConfig
	DB       DBConfig
	LogLevel string `default:"info" usage:"debug, info, warn or error"`
	AMQP     AMQPConfig
	Session  SessionConfig
	Jobs     JobsConfig
}

type HTTPConfig struct {
	Port            string        `default:"8080"`
	ReadTimeout     time.Duration `default:"10s"`
	WriteTimeout    time.Duration `default:"15s"`
	ShutdownTimeout time.Duration `default:"15s"`
}

type DBConfig struct {
	DSN             string        `usage:"PostgreSQL connection string (ORDERS_DB_DSN)"`
	MaxOpenConns    int           `default:"20"`
	MaxIdleConns    int           `default:"5"`
	ConnMaxLifetime time.Duration `default:"30m"`
	DebugSQL        bool          `default:"false" usage:"log every SQL statement"`
}

// AMQPConfig points at the broker receiving order events. An empty URL
// disables publishing.
type AMQPConfig struct {
	URL      string
	Exchange string `default:"orders_topic"`
}

type SessionConfig struct {
	Secret       string        `usage:"HMAC key for session tokens (ORDERS_SESSION_SECRET)"`
	TTL          time.Duration `default:"24h"`
	SecureCookie bool          `default:"false" usage:"send the session cookie over HTTPS only"`
}

type JobsConfig struct {
	IntegritySpec string `default:"0 */5 * * * *" usage:"cron spec with seconds for the order total check"`
}

// LoadConfig reads .env when present, then environment variables and config.yaml.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix:        "ORDERS",
		SkipFlags:        true,
		AllowUnknownEnvs: true,
		Files:            []string{"config.yaml", "/etc/restaurant/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DB.DSN == "" {
		c.DB.DSN = os.Getenv("DATABASE_URL")
	}
	if c.AMQP.Exchange == "" {
		c.AMQP.Exchange = events.DefaultExchange
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = session.DefaultTTL
	}
	if c.Jobs.IntegritySpec == "" {
		c.Jobs.IntegritySpec = jobs.DefaultIntegritySpec
	}
}

// Validate reports the settings a running server cannot do without.
func (c Config) Validate() error {
	var errs []error
	if c.DB.DSN == "" {
		errs = append(errs, errors.New("database DSN is required: set ORDERS_DB_DSN or DATABASE_URL"))
	}
	if c.Session.Secret == "" {
		errs = append(errs, errors.New("session secret is required: set ORDERS_SESSION_SECRET"))
	}
	return errors.Join(errs...)
}
