package schedule

import (
	"testing"

	"github.com/hliangzhao/dfe-sched/internal/dag"
	"github.com/hliangzhao/dfe-sched/internal/pathcat"
	"github.com/hliangzhao/dfe-sched/internal/topology"
)

func TestHEFTDiamondSatisfiesInvariants(t *testing.T) {
	scenario := topology.New(
		[][]bool{{true, true, true}, {true, true, true}, {true, true, true}},
		[][]float64{{0, 10, 10}, {10, 0, 10}, {10, 10, 0}},
		[]float64{1, 2, 3},
	)
	catalog := pathcat.Build(scenario)
	routing := FixPaths(catalog, deterministicRNG(7))

	d := &dag.DAG{
		Name: "diamond",
		Functions: []dag.Function{
			{Num: 1},
			{Num: 2, Preds: []int{1}},
			{Num: 3, Preds: []int{1}},
			{Num: 4, Preds: []int{2, 3}},
		},
		Demand:   []float64{0, 6, 9, 4, 5},
		DataSize: []float64{0, 3, 3, 3, 3},
	}

	r, err := HEFT(d, scenario, routing)
	if err != nil {
		t.Fatalf("HEFT() error: %v", err)
	}
	if err := VerifyHEFT(d, scenario.N, r); err != nil {
		t.Errorf("VerifyHEFT failed: %v", err)
	}
	// The exit function must finish at or after everything it depends on.
	if r.FinishTime[4] < r.FinishTime[2] || r.FinishTime[4] < r.FinishTime[3] {
		t.Errorf("exit function finishes before its predecessors: finish(4)=%v finish(2)=%v finish(3)=%v",
			r.FinishTime[4], r.FinishTime[2], r.FinishTime[3])
	}
	if len(r.ProcessSequence) != 4 {
		t.Errorf("len(ProcessSequence) = %d, want 4", len(r.ProcessSequence))
	}
}

func TestHEFTFillsEarlierGap(t *testing.T) {
	// Functions 1 and 2 run in parallel on different nodes and both feed
	// function 3. Waiting for function 1's transfer leaves node 0 idle
	// between function 2's finish (2) and function 3's start (4), so the
	// lower-ranked independent function 4 is slotted into that gap, ahead of
	// the already-placed function 3, rather than queued behind it.
	scenario := topology.New(
		[][]bool{{true, true}, {true, true}},
		[][]float64{{0, 5}, {5, 0}},
		[]float64{1, 1},
	)
	catalog := pathcat.Build(scenario)
	routing := FixPaths(catalog, deterministicRNG(3))

	d := &dag.DAG{
		Name: "gap",
		Functions: []dag.Function{
			{Num: 1},
			{Num: 2},
			{Num: 3, Preds: []int{1, 2}},
			{Num: 4},
		},
		Demand:   []float64{0, 3, 2, 2, 1},
		DataSize: []float64{0, 5, 15, 0, 0},
	}

	r, err := HEFT(d, scenario, routing)
	if err != nil {
		t.Fatalf("HEFT() error: %v", err)
	}
	if err := VerifyHEFT(d, scenario.N, r); err != nil {
		t.Errorf("VerifyHEFT failed: %v", err)
	}
	if r.NodeOf[4] != r.NodeOf[3] || r.StartTime[4] >= r.StartTime[3] {
		t.Errorf("function 4 not placed in the gap before function 3: node(4)=%d start(4)=%v node(3)=%d start(3)=%v",
			r.NodeOf[4], r.StartTime[4], r.NodeOf[3], r.StartTime[3])
	}
}
