package cmd

import (
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/config"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/logger"
)

// AppConfig holds the shared configuration and dependencies every
// subcommand reads from its context.
type AppConfig struct {
	Engine *config.EngineConfig
	Logger logger.Logger
}

// NewAppConfig creates a new configuration instance.
func NewAppConfig(engine *config.EngineConfig, log logger.Logger) *AppConfig {
	return &AppConfig{
		Engine: engine,
		Logger: log,
	}
}
