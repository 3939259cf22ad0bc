package tessellate

// tilingConfig defines the static vertex configuration for one named
// tiling: the ordered interior angles around a vertex (summing to 360
// degrees) and, for each outgoing edge index, which angle-index to start
// from when recursing at the neighbouring vertex. Mirror, when non-nil,
// replaces angles whenever the recursion is currently travelling
// counter-clockwise, reflecting the tiling across the traversal edge.
type tilingConfig struct {
	angles         []float64
	nextAngleIndex []int
	mirror         []float64
}

// tilings is the fixed catalogue of the 11 Archimedean / semi-Archimedean
// tilings plus the two non-Archimedean "4.6.12" variants. "3.3.3.3.6"
// admits a second mirrored index order; only this one is supported.
var tilings = map[string]tilingConfig{
	"3.3.3.3.3.3": {
		angles:         []float64{60, 60, 60, 60, 60, 60},
		nextAngleIndex: []int{1, 2, 3, 4, 5, 0},
	},
	"3.3.3.3.6": {
		angles:         []float64{60, 60, 60, 60, 120},
		nextAngleIndex: []int{1, 3, 2, 0, 4},
	},
	"3.3.3.4.4": {
		angles:         []float64{60, 60, 60, 90, 90},
		nextAngleIndex: []int{1, 2, 0, 4, 3},
	},
	"3.3.4.3.4": {
		angles:         []float64{60, 60, 90, 60, 90},
		nextAngleIndex: []int{1, 3, 2, 0, 4},
	},
	"3.4.6.4": {
		angles:         []float64{60, 90, 120, 90},
		nextAngleIndex: []int{0, 3, 2, 1},
	},
	"3.6.3.6": {
		angles:         []float64{60, 120, 60, 120},
		nextAngleIndex: []int{0, 3, 2, 1},
	},
	"3.12.12": {
		angles:         []float64{60, 150, 150},
		nextAngleIndex: []int{0, 2, 1},
	},
	"4.4.4.4": {
		angles:         []float64{90, 90, 90, 90},
		nextAngleIndex: []int{1, 2, 3, 0},
	},
	"4.6.12": {
		angles:         []float64{90, 120, 150},
		nextAngleIndex: []int{0, 2, 1},
		mirror:         []float64{90, 150, 120},
	},
	"4.8.8": {
		angles:         []float64{90, 135, 135},
		nextAngleIndex: []int{0, 2, 1},
	},
	"6.6.6": {
		angles:         []float64{120, 120, 120},
		nextAngleIndex: []int{1, 2, 0},
	},
	// Non-Archimedean variants: same angle multiset as "4.6.12" but a
	// different recursion index order, and no mirror list.
	"4.6.12.a": {
		angles:         []float64{90, 120, 150},
		nextAngleIndex: []int{2, 1, 0},
	},
	"4.6.12.b": {
		angles:         []float64{90, 120, 150},
		nextAngleIndex: []int{0, 2, 1},
	},
}

// KnownAlgorithm reports whether name is one of the tessellator's
// supported tiling names.
func KnownAlgorithm(name string) bool {
	_, ok := tilings[name]
	return ok
}
