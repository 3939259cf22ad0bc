package experiment

import (
	"errors"
	"log"
	"math"

	"github.com/krisjanis-nesenbergs/garmentwire/garment"
	"github.com/krisjanis-nesenbergs/garmentwire/routing"
	"github.com/krisjanis-nesenbergs/garmentwire/stats"
)

// maxRebuildAttempts bounds the graph-inconsistency retry loop so a
// systematic tessellation bug surfaces as an error instead of an
// infinite resample loop.
const maxRebuildAttempts = 10

// progressPercents names the checkpoints progress lines are logged at,
// gated behind Config.Verbose.
var progressPercents = []int{10, 25, 50, 75, 90}

// Run executes one complete Monte-Carlo evaluation of gar under cfg:
// tessellate and wire every part, synthesize jumpers for the configured
// joint radius, then repeatedly sample a sink location and a population
// of sensor locations, routing each through the shortest-wire and
// fewest-jumpers trees and bootstrapping the accumulated per-sink and
// per-sensor records into a Result.
func Run(gar *garment.Garment, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()

	b, jumperLength, jumperCount, err := buildWithRetry(gar, cfg)
	if err != nil {
		return Result{}, err
	}
	tolerance := math.Pow(10, -float64(cfg.PrecisionDecimals))

	sinkRecords := make([]SinkRecord, 0, cfg.SourcePoints)
	sensorRecords := make([]SensorRecord, 0, cfg.SourcePoints*cfg.DestinationPoints)

	marks := progressMarks(cfg.SourcePoints)

	for sourceID := 0; sourceID < cfg.SourcePoints; sourceID++ {
		gar.GenerateSinkLocation()
		sink := gar.Sink()

		if _, err := routing.Run(b.graph, sink.PartID, sink.Point); err != nil {
			return Result{}, err
		}

		shortestTracker := newVisitedTracker()
		leastJumpersTracker := newVisitedTracker()

		for destinationID := 0; destinationID < cfg.DestinationPoints; destinationID++ {
			sensorRecords = append(sensorRecords,
				sampleSensor(b.graph, gar, sourceID, destinationID, cfg.JointRadius, shortestTracker, leastJumpersTracker))
		}

		rec := computeSinkRecord(b.graph, sourceID, shortestTracker, leastJumpersTracker)
		if math.Abs(b.gridLength-rec.ReachableWireLength-rec.UnreachableWireLength) > tolerance {
			log.Printf("experiment: reachable+unreachable wire length %f does not add up to the total %f",
				rec.ReachableWireLength+rec.UnreachableWireLength, b.gridLength)
		}
		if math.Abs(jumperLength-rec.ReachableJumperLength-rec.UnreachableJumperLength) > tolerance {
			log.Printf("experiment: reachable+unreachable jumper length %f does not add up to the total %f",
				rec.ReachableJumperLength+rec.UnreachableJumperLength, jumperLength)
		}
		sinkRecords = append(sinkRecords, rec)

		if cfg.Verbose && marks[sourceID+1] {
			log.Printf("experiment: %d%% of source samples processed", (sourceID+1)*100/cfg.SourcePoints)
		}
	}

	return assembleResult(b, jumperLength, jumperCount, sinkRecords, sensorRecords), nil
}

// buildWithRetry builds the graph and synthesizes its jumpers, resampling
// every part's tessellation seed and the garment's sink whenever the
// vertex-count cross-check trips ErrGraphInconsistency.
func buildWithRetry(gar *garment.Garment, cfg Config) (*built, float64, int, error) {
	for attempt := 0; ; attempt++ {
		b, err := buildGraph(gar, cfg)
		if err == nil {
			jres := synthesizeJumpers(b, gar, cfg)
			return b, jres.TotalLength, jres.Count, nil
		}
		if !errors.Is(err, ErrGraphInconsistency) || attempt >= maxRebuildAttempts {
			return nil, 0, 0, err
		}
		log.Printf("experiment: %v, resampling seeds (attempt %d)", err, attempt+1)
		gar.RegenerateSinkAndSeeds()
	}
}

// progressMarks converts progressPercents into the set of sourcePoints
// indices (1-based, i.e. "samples processed so far") at which a progress
// line should be logged.
func progressMarks(sourcePoints int) map[int]bool {
	marks := make(map[int]bool, len(progressPercents))
	for _, pct := range progressPercents {
		marks[pct*sourcePoints/100] = true
	}
	return marks
}

// toStat converts one bootstrap run into a StatRecord, tagging whether
// the percentile set is part of this statistic's reported shape.
func toStat(xs []float64, percentiles bool, opts ...stats.Option) StatRecord {
	r := stats.BootstrapOrSentinel(xs, opts...)
	return StatRecord{
		Center: r.Center, Low: r.LowCI, High: r.HighCI,
		HasPercentiles: percentiles, Percentiles: r.Percentiles, Mean: r.Mean,
	}
}

func pickSink(sinkRecords []SinkRecord, f func(SinkRecord) float64) []float64 {
	out := make([]float64, len(sinkRecords))
	for i, r := range sinkRecords {
		out[i] = f(r)
	}
	return out
}

// pickSinkNonSentinel is pickSink restricted to rows whose value is not
// the -1 empty-population sentinel.
func pickSinkNonSentinel(sinkRecords []SinkRecord, f func(SinkRecord) float64) []float64 {
	out := make([]float64, 0, len(sinkRecords))
	for _, r := range sinkRecords {
		if v := f(r); v >= 0 {
			out = append(out, v)
		}
	}
	return out
}

// assembleResult bootstraps every accumulated per-sink and per-sensor
// column into the final Result, retaining the raw trial records for
// callers that need per-trial detail.
func assembleResult(b *built, jumperLength float64, jumperCount int, sinkRecords []SinkRecord, sensorRecords []SensorRecord) Result {
	result := Result{
		TotalWireLength:   b.gridLength,
		TotalJumperLength: jumperLength,
		TotalJumperCount:  jumperCount,
		CenterNodeCount:   b.centerNodeCount,
		EdgeNodeCount:     b.edgeNodeCount,
		TotalNodeCount:    b.centerNodeCount + b.edgeNodeCount,

		ReachableNodes:   toStat(pickSink(sinkRecords, func(r SinkRecord) float64 { return float64(r.ReachableNodes) }), true),
		UnreachableNodes: toStat(pickSink(sinkRecords, func(r SinkRecord) float64 { return float64(r.UnreachableNodes) }), true),

		ReachableWireLength:   toStat(pickSink(sinkRecords, func(r SinkRecord) float64 { return r.ReachableWireLength }), true),
		UnreachableWireLength: toStat(pickSink(sinkRecords, func(r SinkRecord) float64 { return r.UnreachableWireLength }), true),

		ReachableJumperLength:   toStat(pickSink(sinkRecords, func(r SinkRecord) float64 { return r.ReachableJumperLength }), true),
		UnreachableJumperLength: toStat(pickSink(sinkRecords, func(r SinkRecord) float64 { return r.UnreachableJumperLength }), true),

		ReachableJumperCount:   toStat(pickSink(sinkRecords, func(r SinkRecord) float64 { return float64(r.ReachableJumperCount) }), true),
		UnreachableJumperCount: toStat(pickSink(sinkRecords, func(r SinkRecord) float64 { return float64(r.UnreachableJumperCount) }), true),

		SinkTrials:   sinkRecords,
		SensorTrials: sensorRecords,
	}

	result.ShortestPath = pathStatisticsOf(sinkRecords, sensorRecords, b.gridLength, false)
	result.LeastJumperPath = pathStatisticsOf(sinkRecords, sensorRecords, b.gridLength, true)

	return result
}

// sensorColumns is the per-tree slice of one tree's reachable sensor
// rows, plus the whole population's short-jumper flag sum.
type sensorColumns struct {
	totalLengths     []float64
	stubLengths      []float64
	jumperCounts     []float64
	nodeCounts       []float64
	novelLengthSum   float64
	reachableCount   int
	shortJumperCount int
}

func collectSensorColumns(sensorRecords []SensorRecord, least bool) sensorColumns {
	var c sensorColumns
	for _, r := range sensorRecords {
		reachable := r.ReachableShortest
		shortJumper := r.UnreachableShortJumperShortest
		totalLength, stub := r.TotalLengthShortest, r.StubLengthShortest
		jumpers, nodes := r.JumperCountShortest, r.NodeCountShortest
		novel := r.NovelLengthShortest
		if least {
			reachable = r.ReachableLeastJumpers
			shortJumper = r.UnreachableShortJumperLeastJumpers
			totalLength, stub = r.TotalLengthLeastJumpers, r.StubLengthLeastJumpers
			jumpers, nodes = r.JumperCountLeastJumpers, r.NodeCountLeastJumpers
			novel = r.NovelLengthLeastJumpers
		}
		if shortJumper {
			c.shortJumperCount++
		}
		if !reachable {
			continue
		}
		c.reachableCount++
		c.totalLengths = append(c.totalLengths, totalLength)
		c.stubLengths = append(c.stubLengths, stub)
		c.jumperCounts = append(c.jumperCounts, float64(jumpers))
		c.nodeCounts = append(c.nodeCounts, float64(nodes))
		c.novelLengthSum += novel
	}
	return c
}

// pathStatisticsOf bootstraps one tree's family of per-sink and
// per-sensor metrics into a PathStatistics.
func pathStatisticsOf(sinkRecords []SinkRecord, sensorRecords []SensorRecord, totalWireLength float64, least bool) PathStatistics {
	depth := func(r SinkRecord) TreeDepthStats {
		if least {
			return r.LeastJumpersDepth
		}
		return r.ShortestDepth
	}
	sinkCol := func(short, lj func(SinkRecord) float64) func(SinkRecord) float64 {
		if least {
			return lj
		}
		return short
	}

	fracNodes := sinkCol(
		func(r SinkRecord) float64 { return r.FractionNodesVisitedShortest },
		func(r SinkRecord) float64 { return r.FractionNodesVisitedLeastJumpers })
	fracMulti := sinkCol(
		func(r SinkRecord) float64 { return r.FractionMultiRouteShortest },
		func(r SinkRecord) float64 { return r.FractionMultiRouteLeastJumpers })
	fracJumpers := sinkCol(
		func(r SinkRecord) float64 { return r.FractionJumpersVisitedShortest },
		func(r SinkRecord) float64 { return r.FractionJumpersVisitedLeastJumpers })
	fracJumperLen := sinkCol(
		func(r SinkRecord) float64 { return r.FractionJumperLengthVisitedShortest },
		func(r SinkRecord) float64 { return r.FractionJumperLengthVisitedLeastJumpers })
	branchesMax := sinkCol(
		func(r SinkRecord) float64 { return r.NodeBranchesMaxShortest },
		func(r SinkRecord) float64 { return r.NodeBranchesMaxLeastJumpers })
	branchesAvg := sinkCol(
		func(r SinkRecord) float64 { return r.NodeBranchesAvgShortest },
		func(r SinkRecord) float64 { return r.NodeBranchesAvgLeastJumpers })

	sensors := collectSensorColumns(sensorRecords, least)

	p := PathStatistics{
		PercentUsefulNodeCount:    toStat(pickSink(sinkRecords, fracNodes), true),
		PercentUsefulJumperCount:  toStat(pickSink(sinkRecords, fracJumpers), true),
		PercentUsefulJumperLength: toStat(pickSink(sinkRecords, fracJumperLen), true),

		PercentMultirouteReachedNodes: toStat(pickSinkNonSentinel(sinkRecords, fracMulti), true),

		PathLengthMax: toStat(sensors.totalLengths, false, stats.WithMode(stats.CenterMax)),
		PathLengthAvg: toStat(sensors.totalLengths, true),

		PathNodeCountMax: toStat(sensors.nodeCounts, false, stats.WithMode(stats.CenterMax)),
		PathNodeCountAvg: toStat(sensors.nodeCounts, true),

		PathJumperCountMax: toStat(sensors.jumperCounts, false, stats.WithMode(stats.CenterMax)),
		PathJumperCountAvg: toStat(sensors.jumperCounts, true),

		PathSensorJumperLengthMax: toStat(sensors.stubLengths, false, stats.WithMode(stats.CenterMax)),
		PathSensorJumperLengthAvg: toStat(sensors.stubLengths, true),

		PathRouterNodeBranchesMax: toStat(pickSinkNonSentinel(sinkRecords, branchesMax), false, stats.WithMode(stats.CenterMax)),
		PathRouterNodeBranchesAvg: toStat(pickSinkNonSentinel(sinkRecords, branchesAvg), true),

		GraphMaxWireLength:  toStat(pickSink(sinkRecords, func(r SinkRecord) float64 { return depth(r).MaxLength }), true),
		GraphAvgWireLength:  toStat(pickSink(sinkRecords, func(r SinkRecord) float64 { return depth(r).AvgLength }), true),
		GraphMaxNodeCount:   toStat(pickSink(sinkRecords, func(r SinkRecord) float64 { return depth(r).MaxNodes }), true),
		GraphAvgNodeCount:   toStat(pickSink(sinkRecords, func(r SinkRecord) float64 { return depth(r).AvgNodes }), true),
		GraphMaxJumperCount: toStat(pickSink(sinkRecords, func(r SinkRecord) float64 { return depth(r).MaxJumpers }), true),
		GraphAvgJumperCount: toStat(pickSink(sinkRecords, func(r SinkRecord) float64 { return depth(r).AvgJumpers }), true),
	}

	if totalSensors := len(sensorRecords); totalSensors > 0 {
		p.PercentReachableSensors = float64(sensors.reachableCount) / float64(totalSensors)
		p.PercentUnreachableShortJumper = float64(sensors.shortJumperCount) / float64(totalSensors)
	}
	if totalWireLength > 0 {
		p.PercentUsefulWireLength = sensors.novelLengthSum / totalWireLength
	}

	return p
}
