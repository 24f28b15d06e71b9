// Package topology models the edge-computing substrate: a weighted,
// symmetric compute graph of nodes connected by bandwidth-limited links,
// each node carrying a scalar processing power.
package topology

import (
	"github.com/hliangzhao/dfe-sched/internal/dfeerr"
)

// Scenario is the immutable compute substrate a workload is scheduled onto.
// It is built once per run (see internal/synth) and never mutated
// afterwards; every derived structure (path catalog, schedulers) borrows it
// read-only.
type Scenario struct {
	N int // number of compute nodes, indexed 0..N-1

	// adjacency[i][j] is true iff i and j are directly connected by a link,
	// or i == j (self-loops are always present).
	adjacency [][]bool

	// bandwidth[i][j] is the positive bandwidth of the link between i and j.
	// Symmetric; zero off-edge.
	bandwidth [][]float64

	// pp[n] is the processing power of node n.
	pp []float64
}

// New builds a Scenario from a symmetric adjacency matrix, a symmetric
// bandwidth matrix (only consulted where adjacency is true and i != j), and
// per-node processing power. It does not validate; call Validate
// afterwards.
func New(adjacency [][]bool, bandwidth [][]float64, pp []float64) *Scenario {
	n := len(pp)
	s := &Scenario{
		N:         n,
		adjacency: make([][]bool, n),
		bandwidth: make([][]float64, n),
		pp:        append([]float64(nil), pp...),
	}
	for i := 0; i < n; i++ {
		s.adjacency[i] = append([]bool(nil), adjacency[i]...)
		s.bandwidth[i] = append([]float64(nil), bandwidth[i]...)
	}
	return s
}

// Adjacent reports whether i and j are directly connected (or i == j).
func (s *Scenario) Adjacent(i, j int) bool {
	return s.adjacency[i][j]
}

// Bandwidth returns the bandwidth of the direct link between i and j. The
// result is meaningless when Adjacent(i, j) is false or i == j.
func (s *Scenario) Bandwidth(i, j int) float64 {
	return s.bandwidth[i][j]
}

// ProcessingPower returns the scalar processing rate of node n.
func (s *Scenario) ProcessingPower(n int) float64 {
	return s.pp[n]
}

// Validate checks the invariants a Scenario must hold:
// every node has positive processing power, every edge has positive
// bandwidth, and the graph (ignoring self-loops) is connected.
func (s *Scenario) Validate() error {
	for n := 0; n < s.N; n++ {
		if s.pp[n] <= 0 {
			return dfeerr.New(dfeerr.GraphInvalid, "", 0, "node %d has non-positive processing power %g", n, s.pp[n])
		}
	}
	for i := 0; i < s.N; i++ {
		for j := i + 1; j < s.N; j++ {
			if !s.adjacency[i][j] {
				continue
			}
			if s.bandwidth[i][j] <= 0 {
				return dfeerr.New(dfeerr.GraphInvalid, "", 0, "edge (%d,%d) has non-positive bandwidth %g", i, j, s.bandwidth[i][j])
			}
			if s.bandwidth[i][j] != s.bandwidth[j][i] {
				return dfeerr.New(dfeerr.GraphInvalid, "", 0, "edge (%d,%d) bandwidth is not symmetric", i, j)
			}
		}
	}
	if !s.connected() {
		return dfeerr.New(dfeerr.GraphInvalid, "", 0, "scenario graph is not connected")
	}
	return nil
}

// connected reports whether every node is reachable from node 0 (and hence
// from every other node, since adjacency is symmetric).
func (s *Scenario) connected() bool {
	if s.N == 0 {
		return true
	}
	seen := make([]bool, s.N)
	queue := []int{0}
	seen[0] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := 0; v < s.N; v++ {
			if v != u && s.adjacency[u][v] && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	for _, ok := range seen {
		if !ok {
			return false
		}
	}
	return true
}
