package schedule

import (
	"sort"

	"github.com/rhartert/yagh"

	"github.com/hliangzhao/dfe-sched/internal/dag"
	"github.com/hliangzhao/dfe-sched/internal/topology"
)

// interval is a busy period already committed on a node's timeline.
type interval struct {
	start, finish float64
}

// HEFTResult is the outcome of running HEFT over one DAG: the
// function-to-node assignment, each function's window, and the
// priority order functions were placed in (by descending upward rank).
type HEFTResult struct {
	DAGName         string
	Makespan        float64
	NodeOf          map[int]int
	StartTime       map[int]float64
	FinishTime      map[int]float64
	ProcessSequence []int
}

// HEFT schedules d with Heterogeneous-Earliest-Finish-Time: functions are
// ranked by upward rank (expected remaining path cost, averaged over nodes
// and the fixed routing's per-pair cost) and placed, in descending-rank
// order, into the earliest idle slot of whichever node minimizes finish
// time — including slots opened up earlier in a node's timeline, not only
// its tail.
func HEFT(d *dag.DAG, scenario *topology.Scenario, routing *FixedRouting) (*HEFTResult, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	n := scenario.N
	byNum := make(map[int]dag.Function, len(d.Functions))
	for _, f := range d.Functions {
		byNum[f.Num] = f
	}
	succ := d.Successors()

	avgCompute := func(f dag.Function) float64 {
		var sum float64
		for k := 0; k < n; k++ {
			sum += d.Demand[f.Num] / scenario.ProcessingPower(k)
		}
		return sum / float64(n)
	}
	avgTrans := func(fNum int) float64 {
		if n < 2 {
			return 0
		}
		var sum float64
		pairs := 0
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				sum += routing.TransmissionCost(i, j, d.DataSize[fNum])
				pairs++
			}
		}
		return sum / float64(pairs)
	}

	rankU := make(map[int]float64, len(d.Functions))
	var rank func(f dag.Function) float64
	rank = func(f dag.Function) float64 {
		if r, ok := rankU[f.Num]; ok {
			return r
		}
		best := 0.0
		for _, sNum := range succ[f.Num] {
			s := byNum[sNum]
			if r := avgTrans(f.Num) + rank(s); r > best {
				best = r
			}
		}
		r := avgCompute(f) + best
		rankU[f.Num] = r
		return r
	}
	for _, f := range d.Functions {
		rank(f)
	}

	// Priority queue over upward rank, descending: negate so yagh's min-heap
	// (the same structure the teacher uses for Dijkstra's frontier in
	// fgraphs.go) pops the highest-rank function first.
	h := yagh.New[float64](len(d.Functions))
	for _, f := range d.Functions {
		h.Put(f.Num, -rankU[f.Num])
	}
	order := make([]int, 0, len(d.Functions))
	for h.Size() > 0 {
		order = append(order, h.Pop().Elem)
	}
	// Break rank ties deterministically by ascending function number.
	sort.SliceStable(order, func(i, j int) bool {
		if rankU[order[i]] != rankU[order[j]] {
			return rankU[order[i]] > rankU[order[j]]
		}
		return order[i] < order[j]
	})

	timelines := make([][]interval, n)
	nodeOf := make(map[int]int, len(d.Functions))
	startTime := make(map[int]float64, len(d.Functions))
	finishTime := make(map[int]float64, len(d.Functions))

	for _, fNum := range order {
		f := byNum[fNum]

		bestNode := -1
		bestStart, bestFinish := 0.0, 0.0
		for k := 0; k < n; k++ {
			ready := 0.0
			for _, pNum := range f.Preds {
				pNode := nodeOf[pNum]
				pf := finishTime[pNum]
				if pNode != k {
					pf += routing.TransmissionCost(pNode, k, d.DataSize[pNum])
				}
				if pf > ready {
					ready = pf
				}
			}
			duration := d.Demand[f.Num] / scenario.ProcessingPower(k)
			start := earliestSlot(timelines[k], ready, duration)
			finish := start + duration
			if bestNode == -1 || finish < bestFinish {
				bestNode, bestStart, bestFinish = k, start, finish
			}
		}

		nodeOf[f.Num] = bestNode
		startTime[f.Num] = bestStart
		finishTime[f.Num] = bestFinish
		timelines[bestNode] = insertSorted(timelines[bestNode], interval{bestStart, bestFinish})
	}

	makespan := 0.0
	for _, f := range d.ExitFunctions() {
		if finishTime[f.Num] > makespan {
			makespan = finishTime[f.Num]
		}
	}

	return &HEFTResult{
		DAGName:         d.Name,
		Makespan:        makespan,
		NodeOf:          nodeOf,
		StartTime:       startTime,
		FinishTime:      finishTime,
		ProcessSequence: order,
	}, nil
}

// earliestSlot finds the earliest time at or after ready when a task of the
// given duration fits into busy's idle gaps, inserting before later tasks
// when a gap opens up rather than only ever appending at the tail.
func earliestSlot(busy []interval, ready, duration float64) float64 {
	if len(busy) == 0 {
		return ready
	}
	if ready+duration <= busy[0].start {
		return ready
	}
	for i := 0; i < len(busy)-1; i++ {
		gapStart := busy[i].finish
		if ready > gapStart {
			gapStart = ready
		}
		if busy[i+1].start-gapStart >= duration {
			return gapStart
		}
	}
	last := busy[len(busy)-1].finish
	if ready > last {
		return ready
	}
	return last
}

func insertSorted(busy []interval, iv interval) []interval {
	i := sort.Search(len(busy), func(i int) bool { return busy[i].start >= iv.start })
	busy = append(busy, interval{})
	copy(busy[i+1:], busy[i:])
	busy[i] = iv
	return busy
}
