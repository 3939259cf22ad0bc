package experiment

import "errors"

// ErrGraphInconsistency means the graph's total vertex count disagrees
// with the tessellator's own interior-node-count plus edge-point-count
// accounting: a rare key collision collapsed two intended vertices. Run
// rebuilds with freshly randomized seeds whenever this occurs, and returns
// it to the caller only once maxRebuildAttempts rebuilds have all failed.
var ErrGraphInconsistency = errors.New("experiment: vertex count does not match interior+edge node accounting")
