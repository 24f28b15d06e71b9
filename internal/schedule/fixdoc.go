package schedule

import (
	"math/rand"

	"github.com/hliangzhao/dfe-sched/internal/dag"
	"github.com/hliangzhao/dfe-sched/internal/pathcat"
	"github.com/hliangzhao/dfe-sched/internal/topology"
)

// FixedRouting picks, once, a single path for every ordered node pair and
// charges its full reciprocal-bandwidth cost for every transfer on that
// pair — the "fixed path, no splitting" routing FixDoc evaluates against, in
// contrast to DPE's proportional multi-path split.
type FixedRouting struct {
	recip [][]float64
}

// FixPaths draws one path per (i, j) pair uniformly at random from catalog's
// enumerated paths, using rng. Call it fresh for every DAG — the reference
// implementation redraws its fixed routing at the start of each DAG rather
// than holding one routing for an entire batch.
func FixPaths(catalog *pathcat.Catalog, rng *rand.Rand) *FixedRouting {
	n := catalog.N()
	r := &FixedRouting{recip: make([][]float64, n)}
	for i := 0; i < n; i++ {
		r.recip[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			recips := catalog.Reciprocals(i, j)
			if len(recips) == 0 {
				continue
			}
			r.recip[i][j] = recips[rng.Intn(len(recips))]
		}
	}
	return r
}

// TransmissionCost returns the fixed-path cost of sending size bytes from a
// to b. Zero when a == b.
func (r *FixedRouting) TransmissionCost(a, b int, size float64) float64 {
	if a == b {
		return 0
	}
	return size * r.recip[a][b]
}

// FixDoc schedules d with the same forward-pass control flow as DPE, but
// charging every transfer against a single fixed path per node pair instead
// of DPE's proportional split.
func FixDoc(d *dag.DAG, scenario *topology.Scenario, routing *FixedRouting) (*ForwardResult, error) {
	return forwardSchedule(d, scenario, routing.TransmissionCost)
}
