package dag

import (
	"strconv"
	"strings"

	"github.com/hliangzhao/dfe-sched/internal/dfeerr"
)

// Record is one row of the workload stream: a function name
// encoding dependencies, and the DAG it belongs to. Records for the same
// DAG must be contiguous and already topologically ordered.
type Record struct {
	Name string
	DAG  string
}

// ParseName splits a function name into its type tag, number, and
// predecessor numbers. Segments are
// split on '_'; the head segment begins with a non-digit type tag followed
// by the function number; every other non-empty numeric segment is a
// predecessor's number; non-numeric or empty segments (e.g. a trailing '_')
// are silently skipped.
func ParseName(name string) (tag string, num int, preds []int, err error) {
	segments := strings.Split(strings.TrimSpace(name), "_")
	if len(segments) == 0 || segments[0] == "" {
		return "", 0, nil, dfeerr.New(dfeerr.InputMalformed, "", 0, "empty function name")
	}

	head := segments[0]
	i := 0
	for i < len(head) && !isDigit(head[i]) {
		i++
	}
	if i == 0 || i == len(head) {
		return "", 0, nil, dfeerr.New(dfeerr.InputMalformed, "", 0, "function name %q has no type tag or number", name)
	}
	tag = head[:i]
	num, convErr := strconv.Atoi(head[i:])
	if convErr != nil {
		return "", 0, nil, dfeerr.New(dfeerr.InputMalformed, "", 0, "function name %q has an invalid number: %s", name, convErr)
	}

	for _, seg := range segments[1:] {
		if seg == "" {
			continue
		}
		p, convErr := strconv.Atoi(seg)
		if convErr != nil {
			continue // non-numeric segments are tolerated and skipped
		}
		preds = append(preds, p)
	}

	return tag, num, preds, nil
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// Ingest groups a contiguous stream of Records by DAG identifier and parses
// each name, returning one *DAG per group in the order DAGs first appear.
// The Demand and DataSize tables are shared across the returned DAGs.
func Ingest(records []Record, demand, dataSize []float64) ([]*DAG, error) {
	var dags []*DAG
	var cur *DAG

	for _, rec := range records {
		if cur == nil || cur.Name != rec.DAG {
			cur = &DAG{Name: rec.DAG, Demand: demand, DataSize: dataSize}
			dags = append(dags, cur)
		}

		_, num, preds, err := ParseName(rec.Name)
		if err != nil {
			return nil, err
		}
		cur.Functions = append(cur.Functions, Function{Num: num, Preds: preds})
	}

	for _, d := range dags {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}

	return dags, nil
}
