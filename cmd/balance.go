package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quentinlc/teambalance/core/balance"
	coremetrics "github.com/quentinlc/teambalance/core/metrics"
	"github.com/quentinlc/teambalance/infra/logger"
	_ "github.com/quentinlc/teambalance/infra/metrics"
	"github.com/quentinlc/teambalance/pkg/export"
	"github.com/quentinlc/teambalance/roster"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <roster.csv>",
	Short: "Build balanced team distributions from a roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runBalance,
}

var (
	numTeams   int
	strategies string
	weights    string
	seed       int64
	format     string
	outPath    string
)

func init() {
	balanceCmd.Flags().IntVarP(&numTeams, "num-teams", "n", 0, "number of teams to create")
	_ = balanceCmd.MarkFlagRequired("num-teams")
	balanceCmd.Flags().StringVarP(&strategies, "strategies", "s", "", "comma-separated strategies to run (default: all)")
	balanceCmd.Flags().StringVarP(&weights, "weights", "w", "", `tier weight overrides, e.g. "S+:15,B:4"`)
	balanceCmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 draws from the clock")
	balanceCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, csv or json")
	balanceCmd.Flags().StringVarP(&outPath, "output", "o", "", "write the report to a file instead of stdout")
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}
	log := logger.NewZerologLoggerWithFormat("balance-command", cfg.Logging.Format)

	var render func(io.Writer, []*balance.Distribution) error
	switch strings.ToLower(format) {
	case "text":
		render = export.WriteText
	case "csv":
		render = export.WriteCSV
	case "json":
		render = export.WriteJSON
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	table := cfg.Tiers.Table()
	if weights != "" {
		if table, err = roster.ParseWeights(weights); err != nil {
			return err
		}
	}

	players, warns, err := roster.LoadFile(args[0], table)
	if err != nil {
		return err
	}
	for _, w := range warns {
		log.Warnf("%s: %s", args[0], w)
	}

	strats, err := balance.ParseStrategies(strategies)
	if err != nil {
		return err
	}

	if seed != 0 {
		cfg.Engine.Seed = seed
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}
	if rec, ok := sink.(coremetrics.RosterRecorder); ok {
		captains := 0
		for _, p := range players {
			if p.Captain {
				captains++
			}
		}
		ev := coremetrics.RosterEvent{Players: len(players), Captains: captains, Warnings: len(warns), Time: time.Now()}
		if err := rec.RecordRoster(ev); err != nil {
			log.Errorf("roster metrics error: %v", err)
		}
	}

	engine := balance.NewEngine(cfg.Engine, log, sink)
	dists, err := engine.CreateDistributions(strats, players, numTeams)
	if err != nil {
		return err
	}

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		if err := render(f, dists); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}
	return render(cmd.OutOrStdout(), dists)
}
