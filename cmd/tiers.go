package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quentinlc/teambalance/core/model"
	"github.com/quentinlc/teambalance/roster"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the active tier score table",
	RunE:  runTiers,
}

var tiersWeights string

func init() {
	tiersCmd.Flags().StringVarP(&tiersWeights, "weights", "w", "", `tier weight overrides, e.g. "S+:15,B:4"`)
	rootCmd.AddCommand(tiersCmd)
}

func runTiers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	table := cfg.Tiers.Table()
	if tiersWeights != "" {
		if table, err = roster.ParseWeights(tiersWeights); err != nil {
			return err
		}
	}
	for _, tier := range model.Tiers() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-3s %d\n", tier, table.Score(tier))
	}
	return nil
}
