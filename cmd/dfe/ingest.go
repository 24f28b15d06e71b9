package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hliangzhao/dfe-sched/internal/config"
	"github.com/hliangzhao/dfe-sched/internal/dag"
	"github.com/hliangzhao/dfe-sched/internal/pathcat"
	"github.com/hliangzhao/dfe-sched/internal/schedule"
	"github.com/hliangzhao/dfe-sched/internal/synth"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Schedule a workload read from a tabular record stream instead of a synthesized one",
	Args:  cobra.ExactArgs(1),
	RunE:  runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	verbose, _ := cmd.Flags().GetBool("verbose")

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening workload stream: %w", err)
	}
	defer f.Close()

	records, err := dag.ReadRecords(f)
	if err != nil {
		return fmt.Errorf("reading workload stream: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	demand, dataSize := synth.GenerateDemand(cfg, cfg.MaxFuncNum, rng)

	dags, err := dag.Ingest(records, demand, dataSize)
	if err != nil {
		return fmt.Errorf("ingesting records: %w", err)
	}
	logger.Info("workload ingested", zap.Int("dag_count", len(dags)), zap.String("source", args[0]))

	scenario, err := synth.GenerateScenario(cfg, rng)
	if err != nil {
		return fmt.Errorf("generating scenario: %w", err)
	}

	catalog := pathcat.Build(scenario)
	// FixDoc and HEFT each redraw their own fixed routing at the start of
	// every DAG, from independent random streams, rather than sharing one
	// routing for the whole batch.
	fixDocStream := rand.New(rand.NewSource(cfg.FixedPathSeed))
	heftStream := rand.New(rand.NewSource(cfg.HEFTPathSeed))

	runAlgorithm(logger, "DPE", dags, verbose, func(d *dag.DAG) (*schedule.Report, float64, error) {
		r, err := schedule.DPE(d, scenario, catalog)
		if err != nil {
			return nil, 0, err
		}
		return schedule.ReportForward(scenario.N, r), r.Makespan, nil
	})
	runAlgorithm(logger, "FixDoc", dags, verbose, func(d *dag.DAG) (*schedule.Report, float64, error) {
		routing := schedule.FixPaths(catalog, fixDocStream)
		r, err := schedule.FixDoc(d, scenario, routing)
		if err != nil {
			return nil, 0, err
		}
		return schedule.ReportForward(scenario.N, r), r.Makespan, nil
	})
	runAlgorithm(logger, "HEFT", dags, verbose, func(d *dag.DAG) (*schedule.Report, float64, error) {
		routing := schedule.FixPaths(catalog, heftStream)
		r, err := schedule.HEFT(d, scenario, routing)
		if err != nil {
			return nil, 0, err
		}
		return schedule.ReportHEFT(scenario.N, r), r.Makespan, nil
	})

	return nil
}
