package config

import (
	"flag"
	"fmt"
)

// parseFlags parses the client command line.
//
// Flags:
//
//	-d database DSN (SQLite file path or postgres:// URL)
//	-c/-config config file path (.json, .yaml or .yml)
//	-log-level zerolog level name
//	-log-file log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("cookbook", flag.ContinueOnError)

	var databaseDSN string
	var configPath string
	var logLevel string
	var logFile string

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		FilePath: configPath,
	}, nil
}
