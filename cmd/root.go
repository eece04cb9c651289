package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quentinlc/teambalance/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "teambalance",
	Short: "Tier-based team balancing tool",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configuration file. When the flag was left at
// its default and no such file exists, built-in defaults apply.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) && !rootCmd.PersistentFlags().Changed("config") {
		cfg := &config.Config{}
		cfg.Engine.SetDefaults()
		cfg.Logging.SetDefaults()
		return cfg, nil
	}
	return config.Load(cfgPath)
}
