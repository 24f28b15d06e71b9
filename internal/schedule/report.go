package schedule

import (
	"fmt"
	"sort"
	"strings"
)

// FunctionFinish pairs a function number with its finish time on whichever
// node it was placed on.
type FunctionFinish struct {
	Func   int
	Finish float64
}

// Report is a per-server, per-function finish-time summary of a scheduling
// result for one DAG — the Go analogue of the original's
// print_scheduling_results: for each server, the functions placed there and
// their finish times, in the order they were committed. NodeOrder additionally
// records, per node, the event order by start time (function numbers only); it is
// populated for HEFT results and left nil for DPE/FixDoc ones, since only
// HEFT's insertion-based placement can reorder events within a node's
// timeline relative to commit order.
type Report struct {
	DAGName   string
	PerServer [][]FunctionFinish
	NodeOrder [][]int
}

// ReportForward builds a Report from a DPE or FixDoc ForwardResult.
func ReportForward(numNodes int, r *ForwardResult) *Report {
	perServer := make([][]FunctionFinish, numNodes)
	for _, fn := range r.ProcessSequence {
		node := r.NodeOf[fn]
		perServer[node] = append(perServer[node], FunctionFinish{Func: fn, Finish: r.EFT[fn][node]})
	}
	return &Report{DAGName: r.DAGName, PerServer: perServer}
}

// ReportHEFT builds a Report from a HEFT result, additionally populating
// NodeOrder with each node's functions sorted by start time.
func ReportHEFT(numNodes int, r *HEFTResult) *Report {
	perServer := make([][]FunctionFinish, numNodes)
	nodeOrder := make([][]int, numNodes)
	for _, fn := range r.ProcessSequence {
		node := r.NodeOf[fn]
		perServer[node] = append(perServer[node], FunctionFinish{Func: fn, Finish: r.FinishTime[fn]})
		nodeOrder[node] = append(nodeOrder[node], fn)
	}
	for _, order := range nodeOrder {
		sort.SliceStable(order, func(i, j int) bool {
			return r.StartTime[order[i]] < r.StartTime[order[j]]
		})
	}
	return &Report{DAGName: r.DAGName, PerServer: perServer, NodeOrder: nodeOrder}
}

// String renders the per-server finish-time listing, and the per-node event
// order when present.
func (rep *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "finish times for %s:\n", rep.DAGName)
	for node, fns := range rep.PerServer {
		fmt.Fprintf(&b, "  server %d:\n", node)
		for _, ff := range fns {
			fmt.Fprintf(&b, "    f%d: %g\n", ff.Func, ff.Finish)
		}
	}
	if rep.NodeOrder != nil {
		fmt.Fprintf(&b, "  event order:\n")
		for node, order := range rep.NodeOrder {
			fmt.Fprintf(&b, "    server %d: %v\n", node, order)
		}
	}
	return b.String()
}
