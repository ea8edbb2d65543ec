package internal

import (
	"github.com/atlasdoors/backoffice/internal/config"
	"github.com/atlasdoors/backoffice/internal/logger"
)

// bootstrap loads config and a logger for standalone scripts.
func bootstrap() (*config.Configuration, *logger.Logger, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, log, nil
}
