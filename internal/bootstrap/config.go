package bootstrap

import (
	"flag"
	"fmt"

	"github.com/jonesrussell/linkmeta/internal/config"
	"github.com/jonesrussell/linkmeta/internal/logger"
)

// LoadConfig loads configuration from the path given by the -config flag.
func LoadConfig() (*config.Config, error) {
	configPath := flag.String("config", "config.yml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// CreateLogger creates the service logger from configuration.
func CreateLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.NewLogger(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(
		logger.String("service", "linkmeta"),
		logger.String("version", version),
	), nil
}
