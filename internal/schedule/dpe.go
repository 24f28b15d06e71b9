package schedule

import (
	"github.com/hliangzhao/dfe-sched/internal/dag"
	"github.com/hliangzhao/dfe-sched/internal/pathcat"
	"github.com/hliangzhao/dfe-sched/internal/topology"
)

// DPE schedules d by forward-pass list scheduling, splitting every
// predecessor-to-successor transfer proportionally across the full simple
// path catalog.
func DPE(d *dag.DAG, scenario *topology.Scenario, catalog *pathcat.Catalog) (*ForwardResult, error) {
	return forwardSchedule(d, scenario, catalog.DPETransmissionCost)
}
