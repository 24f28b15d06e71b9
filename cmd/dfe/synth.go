package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hliangzhao/dfe-sched/internal/config"
	"github.com/hliangzhao/dfe-sched/internal/progress"
	"github.com/hliangzhao/dfe-sched/internal/synth"
)

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Synthesize a scenario and workload batch and report their shape",
	RunE:  runSynth,
}

func init() {
	rootCmd.AddCommand(synthCmd)
}

func runSynth(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	rng := rand.New(rand.NewSource(cfg.Seed))

	scenario, err := synth.GenerateScenario(cfg, rng)
	if err != nil {
		return fmt.Errorf("generating scenario: %w", err)
	}

	dags, err := synth.SampleWorkload(cfg, rng, progress.NewBar())
	if err != nil {
		return fmt.Errorf("sampling workload: %w", err)
	}

	lengths := make([]int, 0, len(dags))
	for _, d := range dags {
		lengths = append(lengths, d.Len())
	}

	logger.Info("synthesis complete",
		zap.Int("server_num", scenario.N),
		zap.Int("dag_count", len(dags)),
		zap.Ints("dag_lengths", lengths),
	)
	return nil
}
