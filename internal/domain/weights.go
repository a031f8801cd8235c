package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// PayoffPair holds the per-turn payoffs when the two moves differ.
type PayoffPair struct {
	Defector     int
	Collaborator int
}

// Weights configures the payoff matrix for one turn of the game.
type Weights struct {
	DefectDefect int
	DefectCollab PayoffPair
	CollabCollab int
}

func DefaultWeights() Weights {
	return Weights{
		DefectDefect: 2,
		DefectCollab: PayoffPair{Defector: 3, Collaborator: 0},
		CollabCollab: 1,
	}
}

// Outcome maps a pair of simultaneous moves to the pair of payoffs, in the
// same order as the arguments.
func (w Weights) Outcome(a, b Choice) (int, int) {
	switch {
	case a == Defect && b == Defect:
		return w.DefectDefect, w.DefectDefect
	case a == Defect && b == Collaborate:
		return w.DefectCollab.Defector, w.DefectCollab.Collaborator
	case a == Collaborate && b == Defect:
		return w.DefectCollab.Collaborator, w.DefectCollab.Defector
	default:
		return w.CollabCollab, w.CollabCollab
	}
}

// MaxDiff is the largest payoff gap one side can open over the other on a
// single turn. Match scores are normalized by it, so it must be nonzero
// before a match is played; Validate enforces that.
func (w Weights) MaxDiff() int {
	d := w.DefectCollab.Defector - w.DefectCollab.Collaborator
	if d < 0 {
		d = -d
	}
	return d
}

func (w Weights) Validate() error {
	if w.DefectDefect < 0 || w.DefectCollab.Defector < 0 || w.DefectCollab.Collaborator < 0 || w.CollabCollab < 0 {
		return fmt.Errorf("payoffs must be non-negative")
	}
	if w.MaxDiff() == 0 {
		return ErrDegenerateWeights
	}
	return nil
}

var weightsPattern = regexp.MustCompile(`^(\d+),(\d+)-(\d+),(\d+)$`)

// ParseWeights decodes the flag format "dd,dcWin-dcLose,cc", four
// non-negative integers. The default weights encode as "2,3-0,1".
func ParseWeights(s string) (Weights, error) {
	m := weightsPattern.FindStringSubmatch(s)
	if m == nil {
		return Weights{}, fmt.Errorf("weights %q: must be in the format \"dd,dcWin-dcLose,cc\"", s)
	}

	var w Weights
	fields := []struct {
		name string
		raw  string
		dst  *int
	}{
		{"dd", m[1], &w.DefectDefect},
		{"dcWin", m[2], &w.DefectCollab.Defector},
		{"dcLose", m[3], &w.DefectCollab.Collaborator},
		{"cc", m[4], &w.CollabCollab},
	}
	for _, f := range fields {
		v, err := strconv.Atoi(f.raw)
		if err != nil {
			return Weights{}, fmt.Errorf("weights field %s: %w", f.name, err)
		}
		*f.dst = v
	}

	return w, nil
}
