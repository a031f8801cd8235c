package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultCatalog returns the standard tournament lineup: every archetype,
// with the random variants at 50%, 90% and 10% cooperation.
func DefaultCatalog() []StrategyKind {
	return []StrategyKind{
		{Archetype: ArchetypeDefector},
		{Archetype: ArchetypeCollaborator},
		{Archetype: ArchetypeRandom, Prob: 0.5},
		{Archetype: ArchetypeRandom, Prob: 0.9},
		{Archetype: ArchetypeRandom, Prob: 0.1},
		{Archetype: ArchetypeRandomFixed, Prob: 0.5},
		{Archetype: ArchetypeRandomFixed, Prob: 0.9},
		{Archetype: ArchetypeRandomFixed, Prob: 0.1},
		{Archetype: ArchetypeTitForTat},
		{Archetype: ArchetypeTitForTatS},
		{Archetype: ArchetypeMean},
		{Archetype: ArchetypePavlov},
		{Archetype: ArchetypeGrim},
	}
}

// ParseStrategyKind resolves a user-supplied name like "titfortat" or
// "random:0.9" into a StrategyKind.
func ParseStrategyKind(s string) (StrategyKind, error) {
	name, probPart, hasProb := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")

	var prob float64
	if hasProb {
		p, err := strconv.ParseFloat(probPart, 64)
		if err != nil {
			return StrategyKind{}, fmt.Errorf("strategy %q: parse probability: %w", s, err)
		}
		if p < 0 || p > 1 {
			return StrategyKind{}, fmt.Errorf("strategy %q: probability must be in [0, 1]", s)
		}
		prob = p
	}

	var archetype Archetype
	switch name {
	case "defector":
		archetype = ArchetypeDefector
	case "collaborator":
		archetype = ArchetypeCollaborator
	case "random":
		archetype = ArchetypeRandom
	case "randomfixed":
		archetype = ArchetypeRandomFixed
	case "titfortat":
		archetype = ArchetypeTitForTat
	case "titfortats":
		archetype = ArchetypeTitForTatS
	case "mean":
		archetype = ArchetypeMean
	case "pavlov":
		archetype = ArchetypePavlov
	case "grim":
		archetype = ArchetypeGrim
	default:
		return StrategyKind{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}

	random := archetype == ArchetypeRandom || archetype == ArchetypeRandomFixed
	if random && !hasProb {
		return StrategyKind{}, fmt.Errorf("strategy %q: needs a probability, e.g. %s:0.5", s, name)
	}
	if !random && hasProb {
		return StrategyKind{}, fmt.Errorf("strategy %q: %s does not take a probability", s, name)
	}

	return StrategyKind{Archetype: archetype, Prob: prob}, nil
}
