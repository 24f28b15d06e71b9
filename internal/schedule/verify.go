package schedule

import (
	"fmt"

	"github.com/hliangzhao/dfe-sched/internal/dag"
)

// VerifyForward checks the key properties any DPE or FixDoc result must
// satisfy: every function placed on a valid node, every predecessor's finish
// time at or before its successor's start time, and a makespan matching the
// maximum finish time among the DAG's exit functions.
func VerifyForward(d *dag.DAG, scenario interface{ ProcessingPower(int) float64 }, numNodes int, r *ForwardResult) error {
	for _, f := range d.Functions {
		node, ok := r.NodeOf[f.Num]
		if !ok {
			return fmt.Errorf("function %d: no node assigned", f.Num)
		}
		if node < 0 || node >= numNodes {
			return fmt.Errorf("function %d: node %d out of range [0,%d)", f.Num, node, numNodes)
		}

		for _, pNum := range f.Preds {
			pFinish := r.StartTime[pNum] + d.Demand[pNum]/scenario.ProcessingPower(r.NodeOf[pNum])
			if pFinish > r.StartTime[f.Num]+1e-6 {
				return fmt.Errorf("function %d starts at %g before predecessor %d finishes at %g",
					f.Num, r.StartTime[f.Num], pNum, pFinish)
			}
		}
	}

	var want float64
	for _, f := range d.ExitFunctions() {
		node := r.NodeOf[f.Num]
		finish := r.StartTime[f.Num] + d.Demand[f.Num]/scenario.ProcessingPower(node)
		if finish > want {
			want = finish
		}
	}
	if diff := want - r.Makespan; diff > 1e-6 || diff < -1e-6 {
		return fmt.Errorf("makespan %g does not match max exit finish time %g", r.Makespan, want)
	}
	return nil
}

// VerifyHEFT checks the same precedence and makespan properties for a HEFT
// result, additionally requiring that no two functions assigned to the same
// node overlap in time (HEFT's non-preemption invariant).
func VerifyHEFT(d *dag.DAG, numNodes int, r *HEFTResult) error {
	for _, f := range d.Functions {
		node, ok := r.NodeOf[f.Num]
		if !ok {
			return fmt.Errorf("function %d: no node assigned", f.Num)
		}
		if node < 0 || node >= numNodes {
			return fmt.Errorf("function %d: node %d out of range [0,%d)", f.Num, node, numNodes)
		}
		for _, pNum := range f.Preds {
			if r.FinishTime[pNum] > r.StartTime[f.Num]+1e-6 {
				return fmt.Errorf("function %d starts at %g before predecessor %d finishes at %g",
					f.Num, r.StartTime[f.Num], pNum, r.FinishTime[pNum])
			}
		}
	}

	perNode := make(map[int][]int, numNodes)
	for _, f := range d.Functions {
		perNode[r.NodeOf[f.Num]] = append(perNode[r.NodeOf[f.Num]], f.Num)
	}
	for node, nums := range perNode {
		for i := 0; i < len(nums); i++ {
			for j := i + 1; j < len(nums); j++ {
				a, b := nums[i], nums[j]
				if r.StartTime[a] < r.FinishTime[b]-1e-6 && r.StartTime[b] < r.FinishTime[a]-1e-6 {
					return fmt.Errorf("node %d: functions %d and %d overlap", node, a, b)
				}
			}
		}
	}

	var want float64
	for _, f := range d.ExitFunctions() {
		if r.FinishTime[f.Num] > want {
			want = r.FinishTime[f.Num]
		}
	}
	if diff := want - r.Makespan; diff > 1e-6 || diff < -1e-6 {
		return fmt.Errorf("makespan %g does not match max exit finish time %g", r.Makespan, want)
	}
	return nil
}
