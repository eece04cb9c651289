package config

import (
	"fmt"
)

// LoggingConfig defines the logger's verbosity and output encoding.
type LoggingConfig struct {
	// Level sets the minimum level: trace, debug, info, warn or error.
	Level string `json:"level"`
	// Format selects the output encoding: "console" or "json".
	Format string `json:"format"`
}

// SetDefaults fills unset fields with the standard values.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
}

// Validate rejects unknown levels and formats.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return fmt.Errorf("unknown level %s", c.Level)
	}
	if c.Format != "console" && c.Format != "json" {
		return fmt.Errorf("unknown format %s", c.Format)
	}
	return nil
}
