// Package dag models a single dependent-function DAG: functions in
// topological order, their predecessors, and the compute/data demand tables
// shared across DAGs.
package dag

import (
	"fmt"

	"github.com/hliangzhao/dfe-sched/internal/dfeerr"
)

// Function is one node of a DAG.
type Function struct {
	Num   int   // stable 1-based identifier
	Preds []int // predecessor Nums, in the order they appeared in the name
}

// IsEntry reports whether f has no predecessors.
func (f Function) IsEntry() bool {
	return len(f.Preds) == 0
}

// DAG is a single workload graph: functions in a valid topological order
// (predecessors appear earlier), plus the demand tables needed to cost it.
type DAG struct {
	Name      string
	Functions []Function // topologically ordered, f_1..f_L

	// Demand and DataSize are indexed by Function.Num (1-based; index 0 is
	// unused). They may be shared across DAGs.
	Demand   []float64
	DataSize []float64
}

// Len returns the number of functions in the DAG.
func (d *DAG) Len() int {
	return len(d.Functions)
}

// Successors computes succs[u] = {v : u in preds(v)} for every function in
// the DAG, keyed by Num.
func (d *DAG) Successors() map[int][]int {
	succ := make(map[int][]int, len(d.Functions))
	for _, f := range d.Functions {
		for _, p := range f.Preds {
			succ[p] = append(succ[p], f.Num)
		}
	}
	return succ
}

// EntryFunctions returns the functions with no predecessors.
func (d *DAG) EntryFunctions() []Function {
	var entries []Function
	for _, f := range d.Functions {
		if f.IsEntry() {
			entries = append(entries, f)
		}
	}
	return entries
}

// ExitFunctions returns the functions that are nobody's predecessor.
func (d *DAG) ExitFunctions() []Function {
	hasSucc := make(map[int]bool, len(d.Functions))
	for _, f := range d.Functions {
		for _, p := range f.Preds {
			hasSucc[p] = true
		}
	}
	var exits []Function
	for _, f := range d.Functions {
		if !hasSucc[f.Num] {
			exits = append(exits, f)
		}
	}
	return exits
}

// Validate checks the invariants a DAG must hold: at least one
// function, predecessors reference only earlier functions in topological
// order, and the demand/data tables cover every function referenced.
func (d *DAG) Validate() error {
	if len(d.Functions) == 0 {
		return dfeerr.New(dfeerr.EmptyDAG, d.Name, 0, "DAG has no functions")
	}

	seen := make(map[int]bool, len(d.Functions))
	for _, f := range d.Functions {
		for _, p := range f.Preds {
			if !seen[p] {
				return dfeerr.New(dfeerr.PrecedenceViolation, d.Name, f.Num,
					"predecessor %d referenced before it appears in topological order", p)
			}
		}
		if f.Num <= 0 {
			return dfeerr.New(dfeerr.InputMalformed, d.Name, f.Num, "function number must be positive")
		}
		if seen[f.Num] {
			return dfeerr.New(dfeerr.InputMalformed, d.Name, f.Num, "duplicate function number")
		}
		if f.Num >= len(d.Demand) || f.Num >= len(d.DataSize) {
			return dfeerr.New(dfeerr.IndexOutOfRange, d.Name, f.Num,
				"function number %d exceeds demand/data table bounds (len %d/%d)", f.Num, len(d.Demand), len(d.DataSize))
		}
		seen[f.Num] = true
	}

	if len(d.EntryFunctions()) == 0 {
		return dfeerr.New(dfeerr.GraphInvalid, d.Name, 0, "DAG has no entry function")
	}
	if len(d.ExitFunctions()) == 0 {
		return dfeerr.New(dfeerr.GraphInvalid, d.Name, 0, "DAG has no exit function")
	}
	return nil
}

// FormatName renders the inverse of ParseName: head, num, then the sorted
// predecessor numbers joined by underscores. It is used by the round-trip
// tests; the synthesizer builds Function values directly and emits no names.
func FormatName(head string, num int, preds []int) string {
	s := fmt.Sprintf("%s%d", head, num)
	sorted := append([]int(nil), preds...)
	insertionSort(sorted)
	for _, p := range sorted {
		s += fmt.Sprintf("_%d", p)
	}
	return s
}

func insertionSort(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
