package routing

// Option customizes a Run call.
type Option func(*settings)

type settings struct {
	strictFewestJumpers bool
}

func defaultSettings() settings {
	return settings{}
}

// WithStrictFewestJumpers replaces the default FIFO Bellman-Ford-style
// relaxation for the fewest-jumpers tree with a Dijkstra pass ordered by
// the lexicographic key (jumper count, distance). The FIFO pass can
// commit a vertex to a sub-optimal exclusion list before a better route
// arrives, after which the better route can no longer improve it; the
// strict ordering settles every vertex at its lexicographic optimum. The
// shortest-wire tree is unaffected either way. See CompareStrategies for
// a side-by-side check of when the two disagree.
func WithStrictFewestJumpers(enabled bool) Option {
	return func(s *settings) { s.strictFewestJumpers = enabled }
}
