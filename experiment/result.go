package experiment

import "encoding/json"

// TreeDepthStats is the max/avg-over-leaves triple of metrics computed
// per routing tree once it has converged for one sink: wire distance,
// node count and jumper count, each as a (max, avg) pair over the tree's
// leaf vertices.
type TreeDepthStats struct {
	MaxLength  float64
	AvgLength  float64
	MaxNodes   float64
	AvgNodes   float64
	MaxJumpers float64
	AvgJumpers float64
}

func (d TreeDepthStats) row() [6]float64 {
	return [6]float64{d.MaxLength, d.AvgLength, d.MaxNodes, d.AvgNodes, d.MaxJumpers, d.AvgJumpers}
}

// SinkRecord is the per-sink accounting row: computed once both routing
// trees have converged for one sampled sink, plus the visited-fraction
// statistics accumulated across that sink's destination samples.
type SinkRecord struct {
	SourceID int

	ReachableNodes   int
	UnreachableNodes int

	ReachableWireLength   float64
	UnreachableWireLength float64

	ReachableJumperLength   float64
	UnreachableJumperLength float64

	ReachableJumperCount   int
	UnreachableJumperCount int

	ShortestDepth     TreeDepthStats
	LeastJumpersDepth TreeDepthStats

	FractionNodesVisitedShortest     float64
	FractionNodesVisitedLeastJumpers float64

	// FractionMultiRoute* is the share of visited nodes that fanned out
	// into two or more downstream routes; -1 when nothing was visited.
	FractionMultiRouteShortest     float64
	FractionMultiRouteLeastJumpers float64

	// FractionJumpers*/FractionJumperLength* are -1 on a jumperless graph.
	FractionJumpersVisitedShortest     float64
	FractionJumpersVisitedLeastJumpers float64

	FractionJumperLengthVisitedShortest     float64
	FractionJumperLengthVisitedLeastJumpers float64

	// NodeBranches* are the raw max/avg branch counts over the visited
	// nodes with two or more downstream routes (the numerator population
	// of FractionMultiRoute*); -1 when that population is empty. They
	// back the path_router_node_branches_* result fields and are not part
	// of the 29-column row itself.
	NodeBranchesMaxShortest     float64
	NodeBranchesAvgShortest     float64
	NodeBranchesMaxLeastJumpers float64
	NodeBranchesAvgLeastJumpers float64
}

// Row returns the 29 per-sink columns for this sample: source id,
// reachable/unreachable node counts, the wire/jumper length and jumper
// count splits, both trees' depth statistics, and the visited-fraction
// family.
func (r SinkRecord) Row() [29]float64 {
	var row [29]float64
	row[0] = float64(r.SourceID)
	row[1] = float64(r.ReachableNodes)
	row[2] = float64(r.UnreachableNodes)
	row[3] = r.ReachableWireLength
	row[4] = r.UnreachableWireLength
	row[5] = r.ReachableJumperLength
	row[6] = r.UnreachableJumperLength
	row[7] = float64(r.ReachableJumperCount)
	row[8] = float64(r.UnreachableJumperCount)
	shortestDepthRow := r.ShortestDepth.row()
	leastJumpersDepthRow := r.LeastJumpersDepth.row()
	copy(row[9:15], shortestDepthRow[:])
	copy(row[15:21], leastJumpersDepthRow[:])
	row[21] = r.FractionNodesVisitedShortest
	row[22] = r.FractionNodesVisitedLeastJumpers
	row[23] = r.FractionMultiRouteShortest
	row[24] = r.FractionMultiRouteLeastJumpers
	row[25] = r.FractionJumpersVisitedShortest
	row[26] = r.FractionJumpersVisitedLeastJumpers
	row[27] = r.FractionJumperLengthVisitedShortest
	row[28] = r.FractionJumperLengthVisitedLeastJumpers
	return row
}

// SensorRecord is the per-sensor row: the outcome of evaluating one
// sampled sensor location against both routing trees for one sink.
type SensorRecord struct {
	SourceID      int
	DestinationID int

	ReachableShortest     bool
	ReachableLeastJumpers bool

	// UnreachableShortJumper* marks a sensor whose closest interior edge
	// lies farther away than the joint radius, so no stitched contact
	// could bridge it onto the grid.
	UnreachableShortJumperShortest     bool
	UnreachableShortJumperLeastJumpers bool

	TotalLengthShortest     float64
	TotalLengthLeastJumpers float64

	StubLengthShortest     float64
	StubLengthLeastJumpers float64

	JumperCountShortest     int
	JumperCountLeastJumpers int

	NodeCountShortest     int
	NodeCountLeastJumpers int

	NovelLengthShortest     float64
	NovelLengthLeastJumpers float64
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Row returns the 16 per-sensor columns for this sample, shortest-wire
// and fewest-jumpers values interleaved.
func (r SensorRecord) Row() [16]float64 {
	return [16]float64{
		float64(r.SourceID), float64(r.DestinationID),
		boolToFloat(r.ReachableShortest), boolToFloat(r.ReachableLeastJumpers),
		boolToFloat(r.UnreachableShortJumperShortest), boolToFloat(r.UnreachableShortJumperLeastJumpers),
		r.TotalLengthShortest, r.TotalLengthLeastJumpers,
		r.StubLengthShortest, r.StubLengthLeastJumpers,
		float64(r.JumperCountShortest), float64(r.JumperCountLeastJumpers),
		float64(r.NodeCountShortest), float64(r.NodeCountLeastJumpers),
		r.NovelLengthShortest, r.NovelLengthLeastJumpers,
	}
}

// StatRecord is one bootstrapped statistic: the chosen center, its 95%
// bootstrap confidence interval, and, when HasPercentiles is set, the
// sample's raw 5/10/25/75/90/95 percentiles and mean. An all--1 record
// is the sentinel for a statistic computed over an empty sample.
type StatRecord struct {
	Center         float64
	Low            float64
	High           float64
	HasPercentiles bool
	Percentiles    [6]float64
	Mean           float64
}

// MarshalJSON emits the record as either the scalar triple
// [center, lo, hi] or the heptuple-shaped
// [center, lo, hi, [p5,p10,p25,p75,p90,p95], mean] array, depending on
// whether the percentile set was requested for this statistic.
func (r StatRecord) MarshalJSON() ([]byte, error) {
	if !r.HasPercentiles {
		return json.Marshal([]interface{}{r.Center, r.Low, r.High})
	}
	return json.Marshal([]interface{}{r.Center, r.Low, r.High, r.Percentiles, r.Mean})
}

// PathStatistics is the per-tree statistic record reported under the
// shortest_path / least_jumper_path result keys. Statistics derived from
// per-sensor rows cover only sensors the tree actually reached; the
// graph_* family is bootstrapped across per-sink depth rows; the
// percent_* family measures how much of the installed network the sensor
// population actually used.
type PathStatistics struct {
	PercentUsefulNodeCount        StatRecord
	PercentUsefulWireLength       float64
	PercentReachableSensors       float64
	PercentUsefulJumperCount      StatRecord
	PercentUsefulJumperLength     StatRecord
	PercentUnreachableShortJumper float64
	PercentMultirouteReachedNodes StatRecord

	PathLengthMax StatRecord
	PathLengthAvg StatRecord

	PathNodeCountMax StatRecord
	PathNodeCountAvg StatRecord

	PathJumperCountMax StatRecord
	PathJumperCountAvg StatRecord

	PathSensorJumperLengthMax StatRecord
	PathSensorJumperLengthAvg StatRecord

	PathRouterNodeBranchesMax StatRecord
	PathRouterNodeBranchesAvg StatRecord

	GraphMaxWireLength  StatRecord
	GraphAvgWireLength  StatRecord
	GraphMaxNodeCount   StatRecord
	GraphAvgNodeCount   StatRecord
	GraphMaxJumperCount StatRecord
	GraphAvgJumperCount StatRecord
}

// Result is the complete output of one experiment run.
type Result struct {
	TotalWireLength   float64
	TotalJumperLength float64
	TotalJumperCount  int
	CenterNodeCount   int
	EdgeNodeCount     int
	TotalNodeCount    int

	ReachableNodes   StatRecord
	UnreachableNodes StatRecord

	ReachableWireLength   StatRecord
	UnreachableWireLength StatRecord

	ReachableJumperLength   StatRecord
	UnreachableJumperLength StatRecord

	ReachableJumperCount   StatRecord
	UnreachableJumperCount StatRecord

	ShortestPath    PathStatistics
	LeastJumperPath PathStatistics

	// SinkTrials and SensorTrials retain the raw per-trial rows this
	// Result was bootstrapped from, for callers (tests, external
	// plotting tooling) that need per-trial detail rather than the
	// aggregate statistic records.
	SinkTrials   []SinkRecord
	SensorTrials []SensorRecord
}

// resultJSON is the wire shape of Result's MarshalJSON.
type resultJSON struct {
	TotalWireLength   float64 `json:"total_wire_length"`
	TotalJumperLength float64 `json:"total_jumper_length"`
	TotalJumperCount  int     `json:"total_jumper_count"`
	CenterNodeCount   int     `json:"center_node_count"`
	EdgeNodeCount     int     `json:"edge_node_count"`
	TotalNodeCount    int     `json:"total_node_count"`

	ReachableNodes   StatRecord `json:"reachable_node_count"`
	UnreachableNodes StatRecord `json:"unreachable_node_count"`

	ReachableWireLength   StatRecord `json:"reachable_wire_length"`
	UnreachableWireLength StatRecord `json:"unreachable_wire_length"`

	ReachableJumperLength   StatRecord `json:"reachable_jumper_length"`
	UnreachableJumperLength StatRecord `json:"unreachable_jumper_length"`

	ReachableJumperCount   StatRecord `json:"reachable_jumper_count"`
	UnreachableJumperCount StatRecord `json:"unreachable_jumper_count"`

	ShortestPath    pathStatisticsJSON `json:"shortest_path"`
	LeastJumperPath pathStatisticsJSON `json:"least_jumper_path"`
}

type pathStatisticsJSON struct {
	PercentUsefulNodeCount        StatRecord `json:"percent_useful_node_count"`
	PercentUsefulWireLength       float64    `json:"percent_useful_wire_length"`
	PercentReachableSensors       float64    `json:"percent_reachable_sensors"`
	PercentUsefulJumperCount      StatRecord `json:"percent_useful_jumper_count"`
	PercentUsefulJumperLength     StatRecord `json:"percent_useful_jumper_length"`
	PercentUnreachableShortJumper float64    `json:"percent_unreachable_bc_short_jumper"`
	PercentMultirouteReachedNodes StatRecord `json:"percent_multiroute_reached_nodes"`

	PathLengthMax StatRecord `json:"path_length_max"`
	PathLengthAvg StatRecord `json:"path_length_avg"`

	PathNodeCountMax StatRecord `json:"path_node_count_max"`
	PathNodeCountAvg StatRecord `json:"path_node_count_avg"`

	PathJumperCountMax StatRecord `json:"path_jumper_count_max"`
	PathJumperCountAvg StatRecord `json:"path_jumper_count_avg"`

	PathSensorJumperLengthMax StatRecord `json:"path_sensor_jumper_length_max"`
	PathSensorJumperLengthAvg StatRecord `json:"path_sensor_jumper_length_avg"`

	PathRouterNodeBranchesMax StatRecord `json:"path_router_node_branches_max"`
	PathRouterNodeBranchesAvg StatRecord `json:"path_router_node_branches_avg"`

	GraphMaxWireLength  StatRecord `json:"graph_max_wire_length"`
	GraphAvgWireLength  StatRecord `json:"graph_avg_wire_length"`
	GraphMaxNodeCount   StatRecord `json:"graph_max_node_count"`
	GraphAvgNodeCount   StatRecord `json:"graph_avg_node_count"`
	GraphMaxJumperCount StatRecord `json:"graph_max_jumper_count"`
	GraphAvgJumperCount StatRecord `json:"graph_avg_jumper_count"`
}

func (p PathStatistics) toJSON() pathStatisticsJSON {
	return pathStatisticsJSON{
		PercentUsefulNodeCount:        p.PercentUsefulNodeCount,
		PercentUsefulWireLength:       p.PercentUsefulWireLength,
		PercentReachableSensors:       p.PercentReachableSensors,
		PercentUsefulJumperCount:      p.PercentUsefulJumperCount,
		PercentUsefulJumperLength:     p.PercentUsefulJumperLength,
		PercentUnreachableShortJumper: p.PercentUnreachableShortJumper,
		PercentMultirouteReachedNodes: p.PercentMultirouteReachedNodes,

		PathLengthMax: p.PathLengthMax, PathLengthAvg: p.PathLengthAvg,
		PathNodeCountMax: p.PathNodeCountMax, PathNodeCountAvg: p.PathNodeCountAvg,
		PathJumperCountMax: p.PathJumperCountMax, PathJumperCountAvg: p.PathJumperCountAvg,
		PathSensorJumperLengthMax: p.PathSensorJumperLengthMax, PathSensorJumperLengthAvg: p.PathSensorJumperLengthAvg,
		PathRouterNodeBranchesMax: p.PathRouterNodeBranchesMax, PathRouterNodeBranchesAvg: p.PathRouterNodeBranchesAvg,

		GraphMaxWireLength: p.GraphMaxWireLength, GraphAvgWireLength: p.GraphAvgWireLength,
		GraphMaxNodeCount: p.GraphMaxNodeCount, GraphAvgNodeCount: p.GraphAvgNodeCount,
		GraphMaxJumperCount: p.GraphMaxJumperCount, GraphAvgJumperCount: p.GraphAvgJumperCount,
	}
}

// MarshalJSON emits the full result record as one flat JSON object with
// the two per-tree records nested under shortest_path/least_jumper_path.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		TotalWireLength: r.TotalWireLength, TotalJumperLength: r.TotalJumperLength,
		TotalJumperCount: r.TotalJumperCount, CenterNodeCount: r.CenterNodeCount,
		EdgeNodeCount: r.EdgeNodeCount, TotalNodeCount: r.TotalNodeCount,
		ReachableNodes: r.ReachableNodes, UnreachableNodes: r.UnreachableNodes,
		ReachableWireLength: r.ReachableWireLength, UnreachableWireLength: r.UnreachableWireLength,
		ReachableJumperLength: r.ReachableJumperLength, UnreachableJumperLength: r.UnreachableJumperLength,
		ReachableJumperCount: r.ReachableJumperCount, UnreachableJumperCount: r.UnreachableJumperCount,
		ShortestPath:    r.ShortestPath.toJSON(),
		LeastJumperPath: r.LeastJumperPath.toJSON(),
	})
}
