package experiment

import (
	"github.com/krisjanis-nesenbergs/garmentwire/config"
	"github.com/krisjanis-nesenbergs/garmentwire/garment"
	"github.com/krisjanis-nesenbergs/garmentwire/geom"
)

// serializedSink is the wire shape of a garment.Sink.
type serializedSink struct {
	PartID int     `json:"part_id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// serializedSeed is the wire shape of a garment.Seed.
type serializedSeed struct {
	PartID int     `json:"part_id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Angle  float64 `json:"angle"`
}

// SerializedConfig is the one-line-per-experiment JSON record: enough to
// reproduce a single experiment's sink and seeds exactly, without
// re-deriving them from a fresh random draw.
type SerializedConfig struct {
	ExperimentID          string           `json:"experiment_id"`
	ClothingID            string           `json:"clothing_id"`
	Sex                   config.Sex       `json:"sex"`
	Size                  string           `json:"size"`
	TessellationAlgorithm string           `json:"tesselation_algorithm"`
	NodeDistance          float64          `json:"node_distance"`
	JointRadius           float64          `json:"joint_radius"`
	Sink                  serializedSink   `json:"sink"`
	Seeds                 []serializedSeed `json:"seeds"`
}

// Serialize captures gar's current sink and seeds alongside cfg's
// tessellation parameters into a SerializedConfig. Deserialize restores
// the seeds, so a later run rebuilds the same tessellation without
// redrawing them. Run still draws a fresh sink for every source sample
// from the garment's random generator, so the captured sink is not reused
// by Run.
func Serialize(experimentID string, gar *garment.Garment, cfg Config) SerializedConfig {
	sink := gar.Sink()
	seeds := gar.Seeds()

	serialized := SerializedConfig{
		ExperimentID:          experimentID,
		ClothingID:            gar.ClothingID,
		Sex:                   gar.Sex,
		Size:                  gar.Size,
		TessellationAlgorithm: cfg.TessellationAlgorithm,
		NodeDistance:          cfg.NodeDistance,
		JointRadius:           cfg.JointRadius,
		Sink:                  serializedSink{PartID: sink.PartID, X: sink.Point.X, Y: sink.Point.Y},
		Seeds:                 make([]serializedSeed, len(seeds)),
	}
	for i, s := range seeds {
		serialized.Seeds[i] = serializedSeed{PartID: s.PartID, X: s.Point.X, Y: s.Point.Y, Angle: s.Angle}
	}
	return serialized
}

// Deserialize rebuilds the Config and the fixed sink/seeds this
// SerializedConfig captured, for use with garment.WithSink/WithSeeds. A
// subsequent garment.New + Run reproduces the captured experiment when
// the new garment's random generator is seeded the same way, since Run
// draws its sink samples from that generator.
func Deserialize(s SerializedConfig) (cfg Config, sink garment.Sink, seeds []garment.Seed) {
	cfg = Config{
		TessellationAlgorithm: s.TessellationAlgorithm,
		NodeDistance:          s.NodeDistance,
		JointRadius:           s.JointRadius,
	}
	sink = garment.Sink{PartID: s.Sink.PartID, Point: geom.Point{X: s.Sink.X, Y: s.Sink.Y}}
	seeds = make([]garment.Seed, len(s.Seeds))
	for i, sd := range s.Seeds {
		seeds[i] = garment.Seed{PartID: sd.PartID, Point: geom.Point{X: sd.X, Y: sd.Y}, Angle: sd.Angle}
	}
	return cfg, sink, seeds
}
