package pathcat

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hliangzhao/dfe-sched/internal/topology"
)

func twoNodeScenario() *topology.Scenario {
	return topology.New(
		[][]bool{{true, true}, {true, true}},
		[][]float64{{0, 10}, {10, 0}},
		[]float64{1, 1},
	)
}

func TestBuildTwoNodes(t *testing.T) {
	c := Build(twoNodeScenario())

	if got := c.PathCount(0, 1); got != 1 {
		t.Fatalf("PathCount(0,1) = %d, want 1", got)
	}
	want := [][]int{{0, 1}}
	if diff := cmp.Diff(want, c.Paths(0, 1)); diff != "" {
		t.Errorf("Paths(0,1) mismatch (-want +got):\n%s", diff)
	}
	if got := c.Proportion(0, 1); got != 1 {
		t.Errorf("Proportion(0,1) = %v, want 1", got)
	}
	if got := c.FirstPathReciprocal(0, 1); got != 0.1 {
		t.Errorf("FirstPathReciprocal(0,1) = %v, want 0.1", got)
	}
}

func TestDPETransmissionCost(t *testing.T) {
	c := Build(twoNodeScenario())

	if got := c.DPETransmissionCost(0, 0, 5); got != 0 {
		t.Errorf("DPETransmissionCost(0,0,5) = %v, want 0", got)
	}
	// one path, full bandwidth reciprocal: 1 * 5 * (1/10) = 0.5
	if got := c.DPETransmissionCost(0, 1, 5); got != 0.5 {
		t.Errorf("DPETransmissionCost(0,1,5) = %v, want 0.5", got)
	}
}

func TestBuildMultiplePaths(t *testing.T) {
	// Triangle: every node directly connected, plus a path through node 2.
	s := topology.New(
		[][]bool{{true, true, true}, {true, true, true}, {true, true, true}},
		[][]float64{{0, 10, 10}, {10, 0, 10}, {10, 10, 0}},
		[]float64{1, 1, 1},
	)
	c := Build(s)

	// 0->1, 0->2->1 are both simple paths from 0 to 1.
	if got := c.PathCount(0, 1); got != 2 {
		t.Fatalf("PathCount(0,1) = %d, want 2", got)
	}
	recips := c.Reciprocals(0, 1)
	if len(recips) != 2 {
		t.Fatalf("Reciprocals(0,1) has %d entries, want 2", len(recips))
	}
	// direct path: 1/10; via node 2: 1/10 + 1/10 = 0.2
	if recips[0] != 0.1 {
		t.Errorf("recips[0] = %v, want 0.1", recips[0])
	}
	wantProp := 0.1 / (0.1 + recips[1])
	if got := c.Proportion(0, 1); got != wantProp {
		t.Errorf("Proportion(0,1) = %v, want %v", got, wantProp)
	}
}
