package topology

import "testing"

func TestScenarioValidate(t *testing.T) {
	testCases := []struct {
		desc      string
		adjacency [][]bool
		bandwidth [][]float64
		pp        []float64
		wantErr   bool
	}{
		{
			desc:      "connected, valid",
			adjacency: [][]bool{{true, true}, {true, true}},
			bandwidth: [][]float64{{0, 10}, {10, 0}},
			pp:        []float64{1, 1},
		},
		{
			desc:      "disconnected",
			adjacency: [][]bool{{true, false, false}, {false, true, false}, {false, false, true}},
			bandwidth: [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
			pp:        []float64{1, 1, 1},
			wantErr:   true,
		},
		{
			desc:      "non-positive processing power",
			adjacency: [][]bool{{true, true}, {true, true}},
			bandwidth: [][]float64{{0, 10}, {10, 0}},
			pp:        []float64{1, 0},
			wantErr:   true,
		},
		{
			desc:      "asymmetric bandwidth",
			adjacency: [][]bool{{true, true}, {true, true}},
			bandwidth: [][]float64{{0, 10}, {5, 0}},
			pp:        []float64{1, 1},
			wantErr:   true,
		},
		{
			desc:      "non-positive bandwidth on an edge",
			adjacency: [][]bool{{true, true}, {true, true}},
			bandwidth: [][]float64{{0, 0}, {0, 0}},
			pp:        []float64{1, 1},
			wantErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			s := New(tc.adjacency, tc.bandwidth, tc.pp)
			err := s.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestScenarioAccessors(t *testing.T) {
	s := New(
		[][]bool{{true, true, false}, {true, true, true}, {false, true, true}},
		[][]float64{{0, 5, 0}, {5, 0, 8}, {0, 8, 0}},
		[]float64{2, 4, 6},
	)

	if !s.Adjacent(0, 1) || s.Adjacent(0, 2) {
		t.Fatalf("Adjacent gave unexpected results")
	}
	if got := s.Bandwidth(1, 2); got != 8 {
		t.Errorf("Bandwidth(1,2) = %v, want 8", got)
	}
	if got := s.ProcessingPower(2); got != 6 {
		t.Errorf("ProcessingPower(2) = %v, want 6", got)
	}
}
