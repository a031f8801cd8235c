package domain

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// PoolConfig configures an EloPool. Start from DefaultPoolConfig; the zero
// value fails validation.
type PoolConfig struct {
	Weights        Weights
	StartingPoints int
	// Scale is roughly the rating gap at which the higher-rated side is
	// expected to dominate outright.
	Scale   float64
	KFactor float64
	// Turn counts are sampled uniformly from [MinTurns, MaxTurns], both
	// inclusive.
	MinTurns int
	MaxTurns int
}

// DefaultPoolConfig returns the library defaults. The dilemma CLI exposes a
// different default k-factor (32); both defaults are deliberate.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		Weights:        DefaultWeights(),
		StartingPoints: 700,
		Scale:          100,
		KFactor:        16,
		MinTurns:       100,
		MaxTurns:       200,
	}
}

// RatingEntry pairs a catalog kind with its current rating.
type RatingEntry struct {
	Kind   StrategyKind
	Rating int
}

// EloPool owns the rated catalog and runs the pairing loop. Not safe for
// concurrent use: Step and Ratings must be called from a single goroutine.
type EloPool struct {
	entries  []RatingEntry
	weights  Weights
	minTurns int
	maxTurns int
	scale    float64
	kFactor  float64
}

// NewEloPool builds a pool over the default catalog.
func NewEloPool(cfg PoolConfig) (*EloPool, error) {
	return NewEloPoolWithCatalog(cfg, DefaultCatalog())
}

func NewEloPoolWithCatalog(cfg PoolConfig, catalog []StrategyKind) (*EloPool, error) {
	if err := cfg.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("pool weights: %w", err)
	}
	if cfg.MinTurns < 1 {
		return nil, fmt.Errorf("pool turn range: min turns %d, must be at least 1", cfg.MinTurns)
	}
	if cfg.MaxTurns < cfg.MinTurns {
		return nil, fmt.Errorf("pool turn range: max turns %d below min turns %d", cfg.MaxTurns, cfg.MinTurns)
	}

	entries := make([]RatingEntry, 0, len(catalog))
	for _, kind := range catalog {
		entries = append(entries, RatingEntry{Kind: kind, Rating: cfg.StartingPoints})
	}

	return &EloPool{
		entries:  entries,
		weights:  cfg.Weights,
		minTurns: cfg.MinTurns,
		maxTurns: cfg.MaxTurns,
		scale:    cfg.Scale,
		kFactor:  cfg.KFactor,
	}, nil
}

// Step plays one randomized-length match between two distinct entries and
// applies the Elo correction to both. It is a no-op when the pool holds
// fewer than two entries, and keeps no state between calls beyond the
// ratings themselves.
func (p *EloPool) Step(rng *rand.Rand) {
	if len(p.entries) < 2 {
		return
	}

	// Rejection sampling for the second index. Fine for a small fixed
	// catalog; the <2 guard above keeps it from spinning.
	i := rng.IntN(len(p.entries))
	j := rng.IntN(len(p.entries))
	for j == i {
		j = rng.IntN(len(p.entries))
	}

	turns := p.minTurns + rng.IntN(p.maxTurns-p.minTurns+1)
	score := PlayMatch(p.entries[i].Kind, p.entries[j].Kind, p.weights, turns, rng)

	ratingDiff := float64(p.entries[i].Rating) - float64(p.entries[j].Rating)
	expected := math.Tanh(ratingDiff / p.scale)
	correction := int(math.Round(p.kFactor * (score - expected)))

	p.entries[i].Rating = saturatingAdd(p.entries[i].Rating, correction)
	p.entries[j].Rating = saturatingAdd(p.entries[j].Rating, -correction)
}

// Ratings returns a snapshot of the entries in catalog order. Callers sort
// and format it themselves.
func (p *EloPool) Ratings() []RatingEntry {
	out := make([]RatingEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// saturatingAdd clamps the result to [0, math.MaxInt] instead of wrapping.
func saturatingAdd(rating, delta int) int {
	sum := rating + delta
	if delta > 0 && sum < rating {
		return math.MaxInt
	}
	if sum < 0 {
		return 0
	}
	return sum
}
