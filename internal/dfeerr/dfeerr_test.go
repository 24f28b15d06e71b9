package dfeerr

import (
	"errors"
	"testing"
)

func TestErrorIs(t *testing.T) {
	err := New(GraphInvalid, "jobA", 3, "node %d missing", 3)
	if !errors.Is(err, &Error{Kind: GraphInvalid}) {
		t.Errorf("errors.Is should match on Kind")
	}
	if errors.Is(err, &Error{Kind: EmptyDAG}) {
		t.Errorf("errors.Is should not match a different Kind")
	}
}

func TestErrorMessage(t *testing.T) {
	err := New(PrecedenceViolation, "jobA", 3, "predecessor %d unseen", 2)
	want := `PrecedenceViolation: dag "jobA", function 3: predecessor 2 unseen`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
