package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const envPrefix = "LEDGER_"

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Postgres PostgresConfig `koanf:"postgres"`
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
	Security SecurityConfig `koanf:"security"`
}

type ServerConfig struct {
	Port              string        `koanf:"port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
}

type PostgresConfig struct {
	Address         string        `koanf:"address"`
	Port            string        `koanf:"port"`
	DB              string        `koanf:"db"`
	Username        string        `koanf:"username"`
	Password        string        `koanf:"password"`
	SSLMode         string        `koanf:"sslmode"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

type DatabaseConfig struct {
	AutoMigrate  bool `koanf:"auto_migrate"`
	WriteWorkers int  `koanf:"write_workers"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type SecurityConfig struct {
	BcryptCost int `koanf:"bcrypt_cost"`
}

// In all cases the default behavior should be for the docker compose setup
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"server.port":                "9446",
		"server.read_timeout":        "30s",
		"server.write_timeout":       "30s",
		"server.idle_timeout":        "10s",
		"server.read_header_timeout": "10s",
		"server.shutdown_timeout":    "15s",

		"postgres.address":           "localhost",
		"postgres.port":              "5433",
		"postgres.db":                "postgres",
		"postgres.username":          "postgres",
		"postgres.password":          "testpassword",
		"postgres.sslmode":           "disable",
		"postgres.max_open_conns":    10,
		"postgres.max_idle_conns":    5,
		"postgres.conn_max_lifetime": "1h",

		"database.auto_migrate":  false,
		"database.write_workers": 4,
		"log.level":              "info",
		"security.bcrypt_cost":   bcrypt.DefaultCost,
	}
}

// Load builds the configuration from defaults, an optional YAML file, a local
// .env file and finally the environment. Later sources win.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Warn("config.Load.dotenv unreadable")
	}

	// POSTGRES_ADDRESS, POSTGRES_PORT, ... as used by the docker compose setup.
	if err := k.Load(env.Provider("POSTGRES_", ".", func(s string) string {
		return "postgres." + strings.ToLower(strings.TrimPrefix(s, "POSTGRES_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("load postgres env: %w", err)
	}

	// LEDGER_SERVER_READ_TIMEOUT -> server.read_timeout
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid server port '%s': must be a number", c.Server.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid server port %d: must be between 1 and 65535", port))
	}

	if c.Postgres.Address == "" {
		problems = append(problems, "postgres address cannot be empty")
	}
	if c.Postgres.DB == "" {
		problems = append(problems, "postgres db cannot be empty")
	}
	if c.Postgres.Username == "" {
		problems = append(problems, "postgres username cannot be empty")
	}
	if _, err := strconv.Atoi(c.Postgres.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid postgres port '%s': must be a number", c.Postgres.Port))
	}
	if c.Postgres.MaxOpenConns < 1 {
		problems = append(problems, fmt.Sprintf("invalid postgres max_open_conns %d: must be at least 1", c.Postgres.MaxOpenConns))
	}

	if c.Database.WriteWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid database write_workers %d: must be at least 1", c.Database.WriteWorkers))
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.Log.Level))
	}

	if c.Security.BcryptCost < bcrypt.MinCost || c.Security.BcryptCost > bcrypt.MaxCost {
		problems = append(problems, fmt.Sprintf("invalid bcrypt cost %d: must be between %d and %d",
			c.Security.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost))
	}

	if c.Server.ShutdownTimeout <= 0 {
		problems = append(problems, "server shutdown_timeout must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// DSN returns the lib/pq connection URL for the configured database.
func (p PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.Username, p.Password),
		Host:     net.JoinHostPort(p.Address, p.Port),
		Path:     "/" + p.DB,
		RawQuery: url.Values{"sslmode": []string{p.SSLMode}}.Encode(),
	}
	return u.String()
}
