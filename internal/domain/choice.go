package domain

import "fmt"

// Choice is one side's move on a single turn.
type Choice uint8

const (
	Defect Choice = iota
	Collaborate
)

func (c Choice) String() string {
	switch c {
	case Defect:
		return "defect"
	case Collaborate:
		return "collaborate"
	default:
		return fmt.Sprintf("Choice(%d)", uint8(c))
	}
}

func choiceFromBool(collaborate bool) Choice {
	if collaborate {
		return Collaborate
	}
	return Defect
}
