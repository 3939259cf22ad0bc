package config

import "fmt"

// Sex is the garment sex the size factor table is indexed by.
type Sex string

const (
	Male   Sex = "M"
	Female Sex = "F"
)

// SizeFactor holds the Male/Female scaling ratio for one named size.
type SizeFactor struct {
	Male, Female float64
}

// sizeFactors is the fixed size/sex ratio table.
var sizeFactors = map[string]SizeFactor{
	"XXS": {Male: 0.70, Female: 0.68},
	"XS":  {Male: 0.77, Female: 0.76},
	"S":   {Male: 0.85, Female: 0.84},
	"M":   {Male: 0.92, Female: 0.92},
	"L":   {Male: 1.00, Female: 1.00},
	"XL":  {Male: 1.08, Female: 1.10},
	"XXL": {Male: 1.17, Female: 1.22},
	"3XL": {Male: 1.27, Female: 1.34},
	"4XL": {Male: 1.39, Female: 1.45},
	"5XL": {Male: 1.51, Female: 1.57},
}

// MMPerUnit converts a garment's authored coordinate units into
// millimetres.
const MMPerUnit = 16.259

// NodeDistances is the allowed domain for the tessellator's edge_length
// parameter, in millimetres.
var NodeDistances = []float64{20.0, 40.0, 80.0, 160.0}

// JointRadiuses is the allowed domain for the jumper synthesiser's radius
// parameter, in millimetres.
var JointRadiuses = []float64{10.0, 20.0, 40.0, 80.0, 160.0}

// SourcePoints is the number of sink samples per experiment.
const SourcePoints = 100

// DestinationPoints is the number of sensor samples per sink.
const DestinationPoints = 1000

// SizeRatio returns the named size/sex factor times MMPerUnit: the
// uniform scale applied to every outline coordinate of an adjusted
// garment.
func SizeRatio(size string, sex Sex) (float64, error) {
	f, ok := sizeFactors[size]
	if !ok {
		return 0, fmt.Errorf("config: unknown size %q", size)
	}
	switch sex {
	case Male:
		return f.Male * MMPerUnit, nil
	case Female:
		return f.Female * MMPerUnit, nil
	default:
		return 0, fmt.Errorf("config: unknown sex %q", sex)
	}
}
