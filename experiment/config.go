package experiment

import cfgconst "github.com/krisjanis-nesenbergs/garmentwire/config"

const (
	defaultSourcePoints      = cfgconst.SourcePoints
	defaultDestinationPoints = cfgconst.DestinationPoints
)

// Config names the tessellation and jumper parameters for one experiment
// run. A garment.Garment supplies the sizing/sex/geometry side; Config
// supplies the tessellation/jumper parameters and the Monte-Carlo sample
// counts.
type Config struct {
	// TessellationAlgorithm names one of the thirteen known tiling
	// algorithms (see package tessellate).
	TessellationAlgorithm string

	// NodeDistance is the tessellator's edge length, in millimetres.
	// config.NodeDistances lists the domain typically swept.
	NodeDistance float64

	// JointRadius is the jumper synthesiser's search radius, in
	// millimetres. config.JointRadiuses lists the domain typically swept.
	JointRadius float64

	// SourcePoints is the number of sink samples (default
	// config.SourcePoints).
	SourcePoints int

	// DestinationPoints is the number of sensor samples per sink
	// (default config.DestinationPoints).
	DestinationPoints int

	// PrecisionDecimals controls vertex-key rounding and the jumper
	// opposing-segment tolerance (default 6).
	PrecisionDecimals int

	// MaxTessellationIterations caps each part's tessellation recursion
	// (default 10000).
	MaxTessellationIterations int

	// Verbose enables progress logging at 10/25/50/75/90% of source
	// samples processed.
	Verbose bool
}

func (c Config) withDefaults() Config {
	if c.SourcePoints == 0 {
		c.SourcePoints = defaultSourcePoints
	}
	if c.DestinationPoints == 0 {
		c.DestinationPoints = defaultDestinationPoints
	}
	if c.PrecisionDecimals == 0 {
		c.PrecisionDecimals = 6
	}
	if c.MaxTessellationIterations == 0 {
		c.MaxTessellationIterations = 10000
	}
	return c
}
