// Package pathcat builds the path catalog: every simple path between every
// ordered pair of scenario nodes, plus the per-path reciprocal-bandwidth sum
// and the first-path traffic-split proportion used by the DPE cost model.
package pathcat

import (
	"github.com/rhartert/sparsesets"

	"github.com/hliangzhao/dfe-sched/internal/topology"
)

// Catalog is immutable once built and shared (read-only) by every DAG's
// scheduling pass.
type Catalog struct {
	n int

	// paths[i][j] holds every simple path from i to j as a node sequence,
	// in DFS enumeration order. paths[i][i] is always empty.
	paths [][][][]int

	// recip[i][j][k] is the reciprocal-bandwidth sum (Σ 1/bw) of the k-th
	// path from i to j.
	recip [][][]float64

	// prop[i][j] is recip[i][j][0] / Σ_k recip[i][j][k], the fraction of
	// traffic the DPE cost model assigns to the first enumerated path.
	// Undefined (0) when i == j.
	prop [][]float64
}

// Build enumerates the full path catalog for s. Complexity is worst-case
// exponential in s.N; the scenario graphs this system targets are
// single-digit in N, so a plain DFS suffices.
func Build(s *topology.Scenario) *Catalog {
	c := &Catalog{
		n:     s.N,
		paths: make([][][][]int, s.N),
		recip: make([][][]float64, s.N),
		prop:  make([][]float64, s.N),
	}
	for i := 0; i < s.N; i++ {
		c.paths[i] = make([][][]int, s.N)
		for j := 0; j < s.N; j++ {
			if i == j {
				continue
			}
			c.paths[i][j] = collectPaths(s, i, j)
		}
		c.recip[i] = make([][]float64, s.N)
		c.prop[i] = make([]float64, s.N)
		for j := 0; j < s.N; j++ {
			if i == j {
				continue
			}
			c.recip[i][j] = reciprocalSums(s, c.paths[i][j])
			c.prop[i][j] = firstPathProportion(c.recip[i][j])
		}
	}
	return c
}

// collectPaths performs a DFS from src to dst, using a sparse set to track
// the nodes on the current partial path (rejecting revisits in O(1), the
// same role the "changed edges" set plays in the teacher's NetworkState).
// This mirrors the original reference's `path_nodes_ij` set in
// embedding/scenario.py:go_forward. It snapshots the current path whenever
// dst is reached and backtracks otherwise.
func collectPaths(s *topology.Scenario, src, dst int) [][]int {
	var found [][]int
	onPath := sparsesets.New(s.N)
	current := make([]int, 0, s.N)

	var walk func(node int)
	walk = func(node int) {
		current = append(current, node)
		if node == dst {
			found = append(found, append([]int(nil), current...))
			current = current[:len(current)-1]
			return
		}

		onPath.Insert(node)
		for next := 0; next < s.N; next++ {
			if next == node || !s.Adjacent(node, next) || onPath.Contains(next) {
				continue
			}
			walk(next)
		}
		onPath.Remove(node)
		current = current[:len(current)-1]
	}

	walk(src)
	return found
}

func reciprocalSums(s *topology.Scenario, paths [][]int) []float64 {
	sums := make([]float64, len(paths))
	for k, p := range paths {
		var sum float64
		for e := 0; e < len(p)-1; e++ {
			sum += 1.0 / s.Bandwidth(p[e], p[e+1])
		}
		sums[k] = sum
	}
	return sums
}

func firstPathProportion(recip []float64) float64 {
	if len(recip) == 0 {
		return 0
	}
	var total float64
	for _, r := range recip {
		total += r
	}
	if total == 0 {
		return 0
	}
	return recip[0] / total
}

// Paths returns all simple paths from i to j in enumeration order.
func (c *Catalog) Paths(i, j int) [][]int {
	return c.paths[i][j]
}

// Reciprocals returns the per-path reciprocal-bandwidth sums from i to j,
// aligned index-for-index with Paths(i, j).
func (c *Catalog) Reciprocals(i, j int) []float64 {
	return c.recip[i][j]
}

// FirstPathReciprocal returns recip[i][j][0], the reciprocal-bandwidth sum
// of the first enumerated path from i to j. Returns 0 when i == j or no
// path exists.
func (c *Catalog) FirstPathReciprocal(i, j int) float64 {
	r := c.recip[i][j]
	if len(r) == 0 {
		return 0
	}
	return r[0]
}

// Proportion returns prop[i][j], the fraction of traffic the DPE cost model
// routes on the first enumerated path between i and j.
func (c *Catalog) Proportion(i, j int) float64 {
	return c.prop[i][j]
}

// PathCount returns the number of simple paths between i and j.
func (c *Catalog) PathCount(i, j int) int {
	return len(c.paths[i][j])
}

// N returns the number of nodes the catalog was built over.
func (c *Catalog) N() int {
	return c.n
}

// DPETransmissionCost computes the DPE multi-path-split transmission cost
// of sending s bytes from a to b. Zero when a == b.
func (c *Catalog) DPETransmissionCost(a, b int, size float64) float64 {
	if a == b {
		return 0
	}
	return c.Proportion(a, b) * size * c.FirstPathReciprocal(a, b)
}
