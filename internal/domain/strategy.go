package domain

import (
	"fmt"
	"math/rand/v2"
)

// Archetype identifies a decision policy. The set is closed; switches over
// it are exhaustive.
type Archetype uint8

const (
	ArchetypeDefector Archetype = iota
	ArchetypeCollaborator
	ArchetypeRandom
	ArchetypeRandomFixed
	ArchetypeTitForTat
	ArchetypeTitForTatS
	ArchetypeMean
	ArchetypePavlov
	ArchetypeGrim
)

// StrategyKind is an immutable strategy descriptor: an archetype plus the
// fixed cooperation probability used by the random variants.
type StrategyKind struct {
	Archetype Archetype
	Prob      float64
}

func (k StrategyKind) Name() string {
	switch k.Archetype {
	case ArchetypeDefector:
		return "Defector"
	case ArchetypeCollaborator:
		return "Collaborator"
	case ArchetypeRandom:
		return fmt.Sprintf("Random %.0f%%", 100*k.Prob)
	case ArchetypeRandomFixed:
		return fmt.Sprintf("RandomFixed %.0f%%", 100*k.Prob)
	case ArchetypeTitForTat:
		return "TitForTat"
	case ArchetypeTitForTatS:
		return "TitForTatS"
	case ArchetypeMean:
		return "Mean"
	case ArchetypePavlov:
		return "Pavlov"
	case ArchetypeGrim:
		return "Grim"
	default:
		return fmt.Sprintf("Archetype(%d)", k.Archetype)
	}
}

func (k StrategyKind) Description() string {
	switch k.Archetype {
	case ArchetypeDefector:
		return "Always defect"
	case ArchetypeCollaborator:
		return "Always collaborate"
	case ArchetypeRandom:
		return fmt.Sprintf("Collaborate %.0f%% of turns", 100*k.Prob)
	case ArchetypeRandomFixed:
		return fmt.Sprintf("Pick a move at the start (collaborate %.0f%%), then stick with it", 100*k.Prob)
	case ArchetypeTitForTat:
		return "Collaborate, then answer with the opponent's last move"
	case ArchetypeTitForTatS:
		return "Defect, then answer with the opponent's last move"
	case ArchetypeMean:
		return "Collaborate with the opponent's collaboration rate so far"
	case ArchetypePavlov:
		return "Collaborate if the opponent moved alike last turn"
	case ArchetypeGrim:
		return "Collaborate until defected against, then defect forever"
	default:
		return ""
	}
}

// Instantiate creates the match-scoped agent for this kind. RandomFixed
// consumes randomness here: it draws its single move for the whole match.
func (k StrategyKind) Instantiate(_ Weights, rng *rand.Rand) *Agent {
	a := &Agent{kind: k.Archetype, prob: k.Prob}
	if k.Archetype == ArchetypeRandomFixed {
		a.fixed = choiceFromBool(rng.Float64() < k.Prob)
	}
	return a
}

// Agent is the mutable per-match instantiation of a StrategyKind. It lives
// for exactly one match and carries only the state its archetype needs.
type Agent struct {
	kind      Archetype
	prob      float64
	fixed     Choice
	triggered bool // Grim: the opponent has defected at least once
}

// Decide returns the agent's next move given both full move histories so
// far. Histories exclude the current turn; neither side sees the other's
// in-flight choice.
func (a *Agent) Decide(own, opp []Choice, rng *rand.Rand) Choice {
	switch a.kind {
	case ArchetypeDefector:
		return Defect
	case ArchetypeCollaborator:
		return Collaborate
	case ArchetypeRandom:
		return choiceFromBool(rng.Float64() < a.prob)
	case ArchetypeRandomFixed:
		return a.fixed
	case ArchetypeTitForTat:
		if len(opp) == 0 {
			return Collaborate
		}
		return opp[len(opp)-1]
	case ArchetypeTitForTatS:
		if len(opp) == 0 {
			return Defect
		}
		return opp[len(opp)-1]
	case ArchetypeMean:
		p := 0.5
		if len(opp) > 0 {
			collabs := 0
			for _, c := range opp {
				if c == Collaborate {
					collabs++
				}
			}
			p = float64(collabs) / float64(len(opp))
		}
		return choiceFromBool(rng.Float64() < p)
	case ArchetypePavlov:
		// Turn 1: both histories are empty, which counts as moving alike.
		if len(own) == 0 || len(opp) == 0 {
			return Collaborate
		}
		return choiceFromBool(own[len(own)-1] == opp[len(opp)-1])
	case ArchetypeGrim:
		if len(opp) > 0 && opp[len(opp)-1] == Defect {
			a.triggered = true
		}
		if a.triggered {
			return Defect
		}
		return Collaborate
	default:
		return Defect
	}
}
