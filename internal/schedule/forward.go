// Package schedule implements the three list-scheduling heuristics (DPE,
// FixDoc, HEFT) over the shared cost model built from internal/topology and
// internal/pathcat.
package schedule

import (
	"math"

	"github.com/rhartert/sparsesets"

	"github.com/hliangzhao/dfe-sched/internal/dag"
	"github.com/hliangzhao/dfe-sched/internal/dfeerr"
	"github.com/hliangzhao/dfe-sched/internal/topology"
)

// TransCost computes the cost of transmitting size bytes from node a to
// node b. Implementations must return 0 when a == b.
type TransCost func(a, b int, size float64) float64

// ForwardResult is the outcome of a DPE or FixDoc forward pass over one DAG
// the computed EFT matrix, the committed
// function-to-node assignment, the order placements were committed in, and
// each function's start time.
type ForwardResult struct {
	DAGName         string
	Makespan        float64
	NodeOf          map[int]int
	EFT             map[int][]float64
	ProcessSequence []int
	StartTime       map[int]float64
}

// forwardSchedule runs the control flow shared by DPE and FixDoc (identical
// except for how inter-node transfers are costed) over d, using transCost
// for every inter-node data transfer. DPE and FixDoc differ only in how
// transCost is built: DPE splits traffic across every simple path
// (pathcat.Catalog.DPETransmissionCost), FixDoc charges a single,
// per-DAG-fixed path.
func forwardSchedule(d *dag.DAG, scenario *topology.Scenario, transCost TransCost) (*ForwardResult, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	n := scenario.N
	byNum := make(map[int]dag.Function, len(d.Functions))
	for _, f := range d.Functions {
		byNum[f.Num] = f
	}

	// committed tracks, via an O(1)-clearable sparse set, which functions
	// have already had a node locked in — mirroring the teacher's use of
	// sparsesets for cheap membership bookkeeping over a small dense
	// integer domain (srte.go's edgesBefore/edgesAfter).
	maxNum := 0
	for num := range byNum {
		if num > maxNum {
			maxNum = num
		}
	}
	committed := sparsesets.New(maxNum + 1)

	nodeOf := make(map[int]int, len(d.Functions))
	eft := make(map[int][]float64, len(d.Functions))
	runtime := make([]float64, n)
	startTime := make(map[int]float64, len(d.Functions))
	var processSequence []int

	// recompute fills (and caches) p's EFT vector across every candidate
	// node, reflecting the current backlog and p's own (already committed)
	// predecessors' EFTs. This must be recomputed on every
	// reference rather than trusted from a prior computation, since runtime
	// may have changed since p's vector was last built.
	recompute := func(p dag.Function) ([]float64, error) {
		vec := make([]float64, n)
		if p.IsEntry() {
			for k := 0; k < n; k++ {
				vec[k] = d.Demand[p.Num]/scenario.ProcessingPower(k) + runtime[k]
			}
		} else {
			for k := 0; k < n; k++ {
				begin := runtime[k]
				for _, qNum := range p.Preds {
					qNode, ok := nodeOf[qNum]
					if !ok {
						return nil, dfeerr.New(dfeerr.PrecedenceViolation, d.Name, p.Num,
							"predecessor %d not yet placed when computing EFT", qNum)
					}
					var trans float64
					if qNode != k {
						trans = transCost(qNode, k, d.DataSize[qNum])
					}
					if cand := eft[qNum][qNode] + trans; cand > begin {
						begin = cand
					}
				}
				vec[k] = begin + d.Demand[p.Num]/scenario.ProcessingPower(k)
			}
		}
		eft[p.Num] = vec
		return vec, nil
	}

	for _, f := range d.Functions {
		if f.IsEntry() {
			continue
		}

		row := make([]float64, n)
		eft[f.Num] = row

		for cand := 0; cand < n; cand++ {
			processCost := d.Demand[f.Num] / scenario.ProcessingPower(cand)

			var maxPhi float64
			havePhi := false

			for _, pNum := range f.Preds {
				if committed.Contains(pNum) {
					where := nodeOf[pNum]
					var trans float64
					if where != cand {
						trans = transCost(where, cand, d.DataSize[pNum])
					}
					phi := eft[pNum][where] + trans + processCost
					if !havePhi || phi > maxPhi {
						maxPhi, havePhi = phi, true
					}
					continue
				}

				p := byNum[pNum]
				vec, err := recompute(p)
				if err != nil {
					return nil, err
				}

				bestPhi := math.Inf(1)
				bestNode := -1
				for m := 0; m < n; m++ {
					var trans float64
					if m != cand {
						trans = transCost(m, cand, d.DataSize[pNum])
					}
					phi := vec[m] + trans + processCost
					if phi < bestPhi {
						bestPhi, bestNode = phi, m
					}
				}

				nodeOf[pNum] = bestNode
				committed.Insert(pNum)
				processSequence = append(processSequence, pNum)
				runtime[bestNode] = eft[pNum][bestNode]
				startTime[pNum] = runtime[bestNode] - d.Demand[pNum]/scenario.ProcessingPower(bestNode)

				if !havePhi || bestPhi > maxPhi {
					maxPhi, havePhi = bestPhi, true
				}
			}

			row[cand] = maxPhi
		}
	}

	makespan := 0.0
	for _, f := range d.Functions {
		if committed.Contains(f.Num) {
			continue
		}

		vec := eft[f.Num]
		updateBacklog := false
		if vec == nil {
			// An entry function that nobody ever consumed as a predecessor
			// (e.g. a single-function DAG, or an all-entries DAG): its EFT
			// was never populated by the main pass, so compute it now
			// against the current backlog and fold it into that backlog —
			// this is what makes the "all entries" boundary case accumulate
			// backlog once L exceeds the node count.
			var err error
			vec, err = recompute(f)
			if err != nil {
				return nil, err
			}
			updateBacklog = true
		}

		bestNode, bestVal := argmin(vec)
		nodeOf[f.Num] = bestNode
		committed.Insert(f.Num)
		processSequence = append(processSequence, f.Num)
		startTime[f.Num] = bestVal - d.Demand[f.Num]/scenario.ProcessingPower(bestNode)
		if updateBacklog {
			runtime[bestNode] = bestVal
		}
		if bestVal > makespan {
			makespan = bestVal
		}
	}

	return &ForwardResult{
		DAGName:         d.Name,
		Makespan:        makespan,
		NodeOf:          nodeOf,
		EFT:             eft,
		ProcessSequence: processSequence,
		StartTime:       startTime,
	}, nil
}

func argmin(vec []float64) (int, float64) {
	best := 0
	for k := 1; k < len(vec); k++ {
		if vec[k] < vec[best] {
			best = k
		}
	}
	return best, vec[best]
}
