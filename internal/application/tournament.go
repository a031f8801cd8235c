package application

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"dilemma/internal/domain"
	"dilemma/internal/ports"
)

// Standing is one leaderboard row.
type Standing struct {
	Name        string
	Description string
	Rating      int
}

// Tournament drives an EloPool: it advances the pairing loop in batches and
// exposes sorted standings. Single-threaded by design; one batch at a time.
type Tournament struct {
	pool    *domain.EloPool
	rng     *rand.Rand
	clock   ports.Clock
	matches uint64
}

func NewTournament(pool *domain.EloPool, rng *rand.Rand, clock ports.Clock) *Tournament {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Tournament{
		pool:  pool,
		rng:   rng,
		clock: clock,
	}
}

// RunFor steps the pool until the wall-clock budget elapses and returns the
// number of matches played in this batch.
func (t *Tournament) RunFor(budget time.Duration) uint64 {
	deadline := t.clock.Now().Add(budget)

	var played uint64
	for t.clock.Now().Before(deadline) {
		t.pool.Step(t.rng)
		played++
	}

	t.matches += played
	return played
}

// RunSteps advances the pool by exactly n matches.
func (t *Tournament) RunSteps(n int) {
	for i := 0; i < n; i++ {
		t.pool.Step(t.rng)
	}
	t.matches += uint64(n)
}

func (t *Tournament) MatchesPlayed() uint64 {
	return t.matches
}

// Standings returns the leaderboard sorted by rating, best first. Ties keep
// catalog order.
func (t *Tournament) Standings() []Standing {
	entries := t.pool.Ratings()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rating > entries[j].Rating
	})

	standings := make([]Standing, 0, len(entries))
	for _, entry := range entries {
		standings = append(standings, Standing{
			Name:        entry.Kind.Name(),
			Description: entry.Kind.Description(),
			Rating:      entry.Rating,
		})
	}

	return standings
}

// Exhibition plays a single match between two kinds and returns the
// normalized score from a's perspective. Unlike the pool loop, inputs come
// straight from the user here, so the preconditions are checked.
func Exhibition(a, b domain.StrategyKind, w domain.Weights, turns int, rng *rand.Rand) (float64, error) {
	if err := w.Validate(); err != nil {
		return 0, fmt.Errorf("exhibition weights: %w", err)
	}
	if turns < 1 {
		return 0, fmt.Errorf("exhibition turns %d: must be at least 1", turns)
	}

	return domain.PlayMatch(a, b, w, turns, rng), nil
}
