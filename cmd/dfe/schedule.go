package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hliangzhao/dfe-sched/internal/config"
	"github.com/hliangzhao/dfe-sched/internal/dag"
	"github.com/hliangzhao/dfe-sched/internal/pathcat"
	"github.com/hliangzhao/dfe-sched/internal/progress"
	"github.com/hliangzhao/dfe-sched/internal/schedule"
	"github.com/hliangzhao/dfe-sched/internal/synth"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Synthesize a scenario and workload, then compare DPE, FixDoc, and HEFT",
	RunE:  runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	verbose, _ := cmd.Flags().GetBool("verbose")

	rng := rand.New(rand.NewSource(cfg.Seed))

	scenario, err := synth.GenerateScenario(cfg, rng)
	if err != nil {
		return fmt.Errorf("generating scenario: %w", err)
	}
	logger.Info("scenario generated", zap.Int("server_num", scenario.N))

	var obs progress.Observer = progress.Noop{}
	if verbose {
		obs = progress.NewBar()
	}
	dags, err := synth.SampleWorkload(cfg, rng, obs)
	if err != nil {
		return fmt.Errorf("sampling workload: %w", err)
	}
	logger.Info("workload sampled", zap.Int("dag_count", len(dags)))

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

// runAlgorithm runs algo over every DAG, logging a total/average makespan
// summary and, when verbose, the per-server finish-time Report for each DAG.
func runAlgorithm(logger *zap.Logger, algo string, dags []*dag.DAG, verbose bool, run func(*dag.DAG) (*schedule.Report, float64, error)) {
	var total float64
	for _, d := range dags {
		rep, makespan, err := run(d)
		if err != nil {
			logger.Warn("scheduling failed", zap.String("algorithm", algo), zap.String("dag", d.Name), zap.Error(err))
			continue
		}
		total += makespan
		if verbose {
			fmt.Print(rep.String())
		}
	}
	avg := 0.0
	if len(dags) > 0 {
		avg = total / float64(len(dags))
	}
	logger.Info("algorithm summary",
		zap.String("algorithm", algo),
		zap.Float64("total_makespan", total),
		zap.Float64("avg_makespan", avg),
	)
}
