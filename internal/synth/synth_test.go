package synth

import (
	"math/rand"
	"testing"

	"github.com/hliangzhao/dfe-sched/internal/config"
	"github.com/hliangzhao/dfe-sched/internal/progress"
)

func testConfig() config.Config {
	return config.Config{
		ServerNum:   4,
		Density:     3,
		BWRange:     config.Range{Lower: 30, Upper: 70},
		PPRange:     config.Range{Lower: 7, Upper: 14},
		DemandRange: config.Range{Lower: 1, Upper: 2},
		DataRange:   config.Range{Lower: 1, Upper: 10},
		RequiredNum: []int{2, 2, 0, 0, 0},
		MaxFuncNum:  20,
		Seed:        1,
	}
}

func TestGenerateScenarioIsConnectedAndValid(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(cfg.Seed))

	s, err := GenerateScenario(cfg, rng)
	if err != nil {
		t.Fatalf("GenerateScenario() error: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("generated scenario failed Validate(): %v", err)
	}
	if s.N != cfg.ServerNum {
		t.Errorf("N = %d, want %d", s.N, cfg.ServerNum)
	}
}

func TestSampleWorkloadProducesValidDAGs(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(cfg.Seed))

	dags, err := SampleWorkload(cfg, rng, progress.Noop{})
	if err != nil {
		t.Fatalf("SampleWorkload() error: %v", err)
	}
	if len(dags) != 4 {
		t.Fatalf("len(dags) = %d, want 4", len(dags))
	}
	for _, d := range dags {
		if err := d.Validate(); err != nil {
			t.Errorf("DAG %q failed Validate(): %v", d.Name, err)
		}
	}
}

func TestSampleWorkloadRejectsWrongBucketCount(t *testing.T) {
	cfg := testConfig()
	cfg.RequiredNum = []int{1}
	rng := rand.New(rand.NewSource(cfg.Seed))

	if _, err := SampleWorkload(cfg, rng, progress.Noop{}); err == nil {
		t.Error("expected an error for a mismatched required_num length")
	}
}
