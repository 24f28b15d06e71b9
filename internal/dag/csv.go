package dag

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hliangzhao/dfe-sched/internal/dfeerr"
)

// ReadRecords scans a two-column, comma-separated workload stream (function
// name, DAG identifier) line by line, one Record per line. Blank lines are
// skipped.
func ReadRecords(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)

	var records []Record
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			return nil, dfeerr.New(dfeerr.InputMalformed, "", 0,
				"line %d: expected 2 comma-separated fields, got %d", lineNum, len(parts))
		}
		records = append(records, Record{
			Name: strings.TrimSpace(parts[0]),
			DAG:  strings.TrimSpace(parts[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading workload stream: %w", err)
	}
	return records, nil
}
