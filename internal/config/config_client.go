package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Supported database drivers, as registered with database/sql.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// ClientApp holds process settings of the client.
type ClientApp struct {
	// LogLevel is the parsed minimum level.
	LogLevel zerolog.Level
	// LogFile is where logs are written.
	LogFile string
}

// ClientDB contains preferences database connection settings.
type ClientDB struct {
	// Driver is [DriverSQLite] or [DriverPostgres], derived from DSN.
	Driver string
	// DSN is the SQLite file path or PostgreSQL URL.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the client configuration assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
}

// GetClientConfig builds and validates the client config view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel: level,
			LogFile:  cfg.App.LogFile,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Driver: driverForDSN(cfg.Storage.DB.DSN),
				DSN:    cfg.Storage.DB.DSN,
			},
		},
	}

	return clientCfg, clientCfg.validate()
}

func driverForDSN(dsn string) string {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}
