package dag

import (
	"errors"
	"testing"

	"github.com/hliangzhao/dfe-sched/internal/dfeerr"
)

func TestDAGValidate(t *testing.T) {
	demand := []float64{0, 1, 1, 1}
	dataSize := []float64{0, 1, 1, 1}

	testCases := []struct {
		desc      string
		functions []Function
		wantKind  dfeerr.Kind // zero means no error
	}{
		{
			desc:      "empty",
			functions: nil,
			wantKind:  dfeerr.EmptyDAG,
		},
		{
			desc: "valid chain",
			functions: []Function{
				{Num: 1},
				{Num: 2, Preds: []int{1}},
				{Num: 3, Preds: []int{2}},
			},
		},
		{
			desc: "predecessor out of order",
			functions: []Function{
				{Num: 1, Preds: []int{2}},
				{Num: 2},
			},
			wantKind: dfeerr.PrecedenceViolation,
		},
		{
			desc: "sole function references an unseen predecessor",
			functions: []Function{
				{Num: 1, Preds: []int{2}},
			},
			wantKind: dfeerr.PrecedenceViolation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			d := &DAG{Name: "d", Functions: tc.functions, Demand: demand, DataSize: dataSize}
			err := d.Validate()
			if tc.wantKind == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error")
			}
			if !errors.Is(err, &dfeerr.Error{Kind: tc.wantKind}) {
				t.Errorf("Validate() = %v, want kind %v", err, tc.wantKind)
			}
		})
	}
}

func TestSuccessorsAndEntryExit(t *testing.T) {
	d := &DAG{
		Name: "d",
		Functions: []Function{
			{Num: 1},
			{Num: 2},
			{Num: 3, Preds: []int{1, 2}},
		},
		Demand:   []float64{0, 1, 1, 1},
		DataSize: []float64{0, 1, 1, 1},
	}

	succ := d.Successors()
	if len(succ[1]) != 1 || succ[1][0] != 3 {
		t.Errorf("Successors()[1] = %v, want [3]", succ[1])
	}

	entries := d.EntryFunctions()
	if len(entries) != 2 {
		t.Errorf("len(EntryFunctions()) = %d, want 2", len(entries))
	}
	exits := d.ExitFunctions()
	if len(exits) != 1 || exits[0].Num != 3 {
		t.Errorf("ExitFunctions() = %v, want [{3 ...}]", exits)
	}
}

func TestFormatNameRoundTrip(t *testing.T) {
	name := FormatName("M", 5, []int{3, 1, 2})
	tag, num, preds, err := ParseName(name)
	if err != nil {
		t.Fatalf("ParseName(%q) error: %v", name, err)
	}
	if tag != "M" || num != 5 {
		t.Errorf("ParseName(%q) = (%q, %d, ...), want (M, 5, ...)", name, tag, num)
	}
	wantPreds := []int{1, 2, 3}
	if len(preds) != len(wantPreds) {
		t.Fatalf("preds = %v, want %v", preds, wantPreds)
	}
	for i, p := range wantPreds {
		if preds[i] != p {
			t.Errorf("preds[%d] = %d, want %d", i, preds[i], p)
		}
	}
}
