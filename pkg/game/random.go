package game

// Random returns a uniform draw: over [1, n] for positive n, over [n, -1]
// for negative n (the negation of a positive draw), and 0 for n == 0.
func (g *Game) Random(n int) int {
	g.metrics.incDraws()
	switch {
	case n > 0:
		return g.rng.Intn(n) + 1
	case n < 0:
		return -(g.rng.Intn(-n) + 1)
	default:
		return 0
	}
}

// Prob reports true with probability percent/100, using a uniform draw over
// [0, 100).
func (g *Game) Prob(percent int) bool {
	g.metrics.incDraws()
	return g.rng.Intn(100) < percent
}

// PickOne returns a uniformly chosen element of seq, or ok=false for an
// empty sequence.
func PickOne[T any](g *Game, seq []T) (T, bool) {
	var zero T
	if len(seq) == 0 {
		return zero, false
	}
	g.metrics.incDraws()
	return seq[g.rng.Intn(len(seq))], true
}
