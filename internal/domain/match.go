package domain

import "math/rand/v2"

// PlayMatch runs one iterated game between two kinds and returns the
// normalized score from a's perspective, in [-1, 1]: +1 means a opened the
// maximum possible payoff gap on every turn, 0 a perfectly even match.
//
// Preconditions, guaranteed by pool construction rather than checked here:
// turns >= 1 and w.MaxDiff() > 0.
func PlayMatch(a, b StrategyKind, w Weights, turns int, rng *rand.Rand) float64 {
	histA := make([]Choice, 0, turns)
	histB := make([]Choice, 0, turns)

	agentA := a.Instantiate(w, rng)
	agentB := b.Instantiate(w, rng)

	var points int64
	for turn := 0; turn < turns; turn++ {
		moveA := agentA.Decide(histA, histB, rng)
		moveB := agentB.Decide(histB, histA, rng)
		histA = append(histA, moveA)
		histB = append(histB, moveB)

		payoffA, payoffB := w.Outcome(moveA, moveB)
		points += int64(payoffA) - int64(payoffB)
	}

	return float64(points) / float64(int64(w.MaxDiff())*int64(turns))
}
