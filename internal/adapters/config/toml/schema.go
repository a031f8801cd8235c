package toml

import (
	"fmt"

	"dilemma/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int        `toml:"version"`
	Pool    poolSchema `toml:"pool"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported pool schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// poolSchema mirrors domain.PoolConfig in file form. Zero values mean "not
// set"; overlay leaves the base config's field alone for those.
type poolSchema struct {
	Weights     string  `toml:"weights"`
	StartingPts int     `toml:"starting_pts"`
	Scale       float64 `toml:"scale"`
	KFactor     float64 `toml:"k_factor"`
	MinTurns    int     `toml:"min_turns"`
	MaxTurns    int     `toml:"max_turns"`
}

func (s poolSchema) overlay(base domain.PoolConfig) (domain.PoolConfig, error) {
	cfg := base

	if s.Weights != "" {
		w, err := domain.ParseWeights(s.Weights)
		if err != nil {
			return domain.PoolConfig{}, fmt.Errorf("pool config: %w", err)
		}
		cfg.Weights = w
	}
	if s.StartingPts != 0 {
		cfg.StartingPoints = s.StartingPts
	}
	if s.Scale != 0 {
		cfg.Scale = s.Scale
	}
	if s.KFactor != 0 {
		cfg.KFactor = s.KFactor
	}
	if s.MinTurns != 0 {
		cfg.MinTurns = s.MinTurns
	}
	if s.MaxTurns != 0 {
		cfg.MaxTurns = s.MaxTurns
	}

	return cfg, nil
}
