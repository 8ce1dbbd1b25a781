package input

import "github.com/ItsNotGoodName/x-howm/internal/wm"

// Phase is the position of the operator/count/motion parser.
type Phase int

const (
	PhaseOperator Phase = iota
	PhaseCount
	PhaseMotion
)

var phaseNames = [...]string{"operator", "count", "motion"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// State is the parser state carried between key presses.
type State struct {
	Phase    Phase
	Operator wm.Operator
	Count    int
}

// Initial is the state the parser starts in and returns to after every
// completed invocation.
func Initial() State {
	return State{Phase: PhaseOperator, Count: 1}
}

// Invocation is a completed operator, count, motion sequence.
type Invocation struct {
	Operator wm.Operator
	Motion   wm.Motion
	Count    int
}

// Step advances the parser by one key press. It returns the next state and,
// when a sequence completes, the invocation to execute.
//
// Keys that match nothing leave the state unchanged. A key in the count phase
// that is not a count digit is treated as a motion with a count of 1.
func Step(s State, ev KeyEvent, b *Bindings, mode wm.Mode) (State, *Invocation) {
	switch s.Phase {
	case PhaseOperator:
		for _, o := range b.Operators {
			if o.Mod == ev.Mod && o.Sym == ev.Sym && o.Mode == mode {
				return State{Phase: PhaseCount, Operator: o.Operator, Count: 1}, nil
			}
		}
		return s, nil
	case PhaseCount:
		if ev.Mod == b.CountMod {
			if n, ok := digit(ev.Sym); ok {
				return State{Phase: PhaseMotion, Operator: s.Operator, Count: n}, nil
			}
		}
		return stepMotion(s, ev, b)
	case PhaseMotion:
		return stepMotion(s, ev, b)
	default:
		return Initial(), nil
	}
}

func stepMotion(s State, ev KeyEvent, b *Bindings) (State, *Invocation) {
	for _, m := range b.Motions {
		if m.Mod != ev.Mod || m.Sym != ev.Sym || !s.Operator.Accepts(m.Motion) {
			continue
		}
		return Initial(), &Invocation{Operator: s.Operator, Motion: m.Motion, Count: s.Count}
	}
	return s, nil
}
