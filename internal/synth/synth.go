// Package synth generates edge-computing scenarios and dependent-function
// workloads for experimentation, in place of replaying a fixed trace file.
package synth

import (
	"fmt"
	"math/rand"

	"github.com/hliangzhao/dfe-sched/internal/config"
	"github.com/hliangzhao/dfe-sched/internal/dag"
	"github.com/hliangzhao/dfe-sched/internal/progress"
	"github.com/hliangzhao/dfe-sched/internal/topology"
)

// bucket is one of the DAG-size buckets a workload batch draws from: at
// least minLen functions, at most maxLen (0 meaning unbounded, clamped to
// cfg.MaxFuncNum).
type bucket struct {
	minLen, maxLen int
}

// buckets mirrors the five DAG-size classes used to stratify a sampled
// workload batch: exactly 2 functions, 3-10, 11-50, 51-100, and 100+.
var buckets = []bucket{
	{2, 2},
	{3, 10},
	{11, 50},
	{51, 100},
	{101, 0},
}

// GenerateScenario builds a random connected edge-computing substrate: each
// node independently links to a random number of peers (up to cfg.Density),
// repeating until the graph is connected, then draws per-edge bandwidth and
// per-node processing power uniformly from cfg's ranges.
func GenerateScenario(cfg config.Config, rng *rand.Rand) (*topology.Scenario, error) {
	n := cfg.ServerNum
	if n < 2 {
		return nil, fmt.Errorf("server_num must be at least 2, got %d", n)
	}

	var adjacency [][]bool
	for {
		adjacency = make([][]bool, n)
		for i := range adjacency {
			adjacency[i] = make([]bool, n)
			adjacency[i][i] = true
		}
		for i := 0; i < n; i++ {
			connCount := rng.Intn(cfg.Density + 1)
			for c := 0; c < connCount; c++ {
				k := rng.Intn(n)
				adjacency[i][k], adjacency[k][i] = true, true
			}
		}
		if isConnected(adjacency) {
			break
		}
	}

	bandwidth := make([][]float64, n)
	for i := range bandwidth {
		bandwidth[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if !adjacency[i][j] {
				continue
			}
			b := uniform(rng, cfg.BWRange)
			bandwidth[i][j], bandwidth[j][i] = b, b
		}
	}

	pp := make([]float64, n)
	for i := range pp {
		pp[i] = uniform(rng, cfg.PPRange)
	}

	s := topology.New(adjacency, bandwidth, pp)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func isConnected(adjacency [][]bool) bool {
	n := len(adjacency)
	seen := make([]bool, n)
	queue := []int{0}
	seen[0] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := 0; v < n; v++ {
			if v != u && adjacency[u][v] && !seen[v] {
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

func uniform(rng *rand.Rand, r config.Range) float64 {
	if r.Upper <= r.Lower {
		return r.Lower
	}
	return r.Lower + rng.Float64()*(r.Upper-r.Lower)
}

// GenerateDemand draws the per-function processing-power requirement and
// outbound data-stream size tables, indexed 1..maxFuncNum (index 0 unused,
// matching dag.DAG's 1-based Function.Num indexing).
func GenerateDemand(cfg config.Config, maxFuncNum int, rng *rand.Rand) (demand, dataSize []float64) {
	demand = make([]float64, maxFuncNum+1)
	dataSize = make([]float64, maxFuncNum+1)
	for i := 1; i <= maxFuncNum; i++ {
		demand[i] = uniform(rng, cfg.DemandRange)
		dataSize[i] = uniform(rng, cfg.DataRange)
	}
	return demand, dataSize
}

// SampleWorkload synthesizes cfg.RequiredNum[i] DAGs from each size bucket
// (mirroring the size-stratified sampling a trace-derived batch would use),
// reporting progress to obs as each DAG is generated.
func SampleWorkload(cfg config.Config, rng *rand.Rand, obs progress.Observer) ([]*dag.DAG, error) {
	required := cfg.RequiredNum
	if len(required) != len(buckets) {
		return nil, fmt.Errorf("required_num must have %d entries, got %d", len(buckets), len(required))
	}

	total := 0
	for _, n := range required {
		total += n
	}
	obs.Start(total)
	defer obs.Done()

	demand, dataSize := GenerateDemand(cfg, cfg.MaxFuncNum, rng)

	var dags []*dag.DAG
	generated := 0
	for bi, b := range buckets {
		for i := 0; i < required[bi]; i++ {
			length := b.minLen
			maxLen := b.maxLen
			if maxLen == 0 {
				maxLen = cfg.MaxFuncNum
			}
			if maxLen > b.minLen {
				length = b.minLen + rng.Intn(maxLen-b.minLen+1)
			}
			if length > cfg.MaxFuncNum {
				length = cfg.MaxFuncNum
			}
			d, err := randomDAG(fmt.Sprintf("bucket%d_dag%d", bi, i), length, demand, dataSize, rng)
			if err != nil {
				return nil, err
			}
			dags = append(dags, d)
			generated++
			obs.Advance(1)
		}
	}

	return dags, nil
}

// randomDAG builds a single DAG of the given length: function k (for k >= 2)
// draws a non-empty random subset of {1,...,k-1} as predecessors, guaranteeing
// a valid topological order by construction.
func randomDAG(name string, length int, demand, dataSize []float64, rng *rand.Rand) (*dag.DAG, error) {
	functions := make([]dag.Function, 0, length)
	for k := 1; k <= length; k++ {
		if k == 1 {
			functions = append(functions, dag.Function{Num: k})
			continue
		}
		var preds []int
		for p := 1; p < k; p++ {
			if rng.Float64() < 2.0/float64(k-1) {
				preds = append(preds, p)
			}
		}
		if len(preds) == 0 {
			preds = []int{1 + rng.Intn(k-1)}
		}
		functions = append(functions, dag.Function{Num: k, Preds: preds})
	}

	d := &dag.DAG{Name: name, Functions: functions, Demand: demand, DataSize: dataSize}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
