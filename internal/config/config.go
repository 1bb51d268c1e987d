// Package config carga la configuración desde variables de entorno.
package config

import (
	"fmt"
	"strings"
	"time"

	"horse-registry/internal/platform/logger"

	"github.com/caarlos0/env/v11"
)

type StorageDriver string

const (
	DriverMemory   StorageDriver = "memory"
	DriverPostgres StorageDriver = "postgres"
	DriverSQLite   StorageDriver = "sqlite"
)

type Config struct {
	Port    int    `env:"PORT" envDefault:"8080"`
	AppName string `env:"APP_NAME" envDefault:"horse-registry"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Server   ServerConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	// Vacío: postgres si hay DB_DSN, si no memory.
	Driver       StorageDriver `env:"STORAGE_DRIVER"`
	DSN          string        `env:"DB_DSN"`
	SQLitePath   string        `env:"SQLITE_PATH" envDefault:"horses.db"`
	AutoMigrate  bool          `env:"AUTO_MIGRATE" envDefault:"true"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
}

// Load parsea el entorno; el .env opcional ya lo cargó cmd/api.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	driver, err := cfg.Database.ResolveDriver()
	if err != nil {
		return Config{}, err
	}
	cfg.Database.Driver = driver
	return cfg, nil
}

func (d DatabaseConfig) ResolveDriver() (StorageDriver, error) {
	switch StorageDriver(strings.ToLower(strings.TrimSpace(string(d.Driver)))) {
	case "":
		if strings.TrimSpace(d.DSN) != "" {
			return DriverPostgres, nil
		}
		return DriverMemory, nil
	case DriverMemory:
		return DriverMemory, nil
	case DriverPostgres:
		if strings.TrimSpace(d.DSN) == "" {
			return "", fmt.Errorf("STORAGE_DRIVER=postgres requires DB_DSN")
		}
		return DriverPostgres, nil
	case DriverSQLite:
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("unknown STORAGE_DRIVER %q (memory|postgres|sqlite)", d.Driver)
	}
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.LogLevel),
		Format: logger.ParseFormat(c.LogFormat),
		App:    c.AppName,
	}
}
