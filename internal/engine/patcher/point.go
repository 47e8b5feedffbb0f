package patcher

import (
	"strings"

	"go.trai.ch/pbxpatch/internal/core/domain"
)

// State is the state of an injection point during one pass.
type State int

const (
	// StateIdle means the point has not seen its arming or trigger marker.
	StateIdle State = iota
	// StateArmed means the enclosing block was entered and the trigger is awaited.
	StateArmed
	// StateDone is terminal: the point fired and never fires again in this pass.
	StateDone
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Point is one injection point. A point with an arm marker waits for that marker before
// looking for its trigger; a point without one fires on the first trigger line.
// An armed point may carry a fallback trigger with its own lines: whichever trigger is
// seen first after arming fires, and the other is dropped.
type Point struct {
	name    domain.Point
	arm     string
	trigger string
	lines   []string

	fallback      string
	fallbackLines []string

	state State
	line  int
	fired []string
}

// NewPoint creates an immediate point that fires on the first line containing trigger.
func NewPoint(name domain.Point, trigger string, lines []string) *Point {
	return &Point{name: name, trigger: trigger, lines: lines}
}

// NewArmedPoint creates a point that fires on the first trigger line at or after the arm line.
func NewArmedPoint(name domain.Point, arm, trigger string, lines []string) *Point {
	return &Point{name: name, arm: arm, trigger: trigger, lines: lines}
}

// WithFallback makes the point also fire on trigger, inserting lines instead, when the
// fallback is seen before the primary trigger.
func (p *Point) WithFallback(trigger string, lines []string) *Point {
	p.fallback = trigger
	p.fallbackLines = lines
	return p
}

// State returns the current state.
func (p *Point) State() State {
	return p.state
}

// Observe advances the state machine with the n-th (1-based) line and reports whether
// the point fired on it. The arm line may also be the trigger line.
func (p *Point) Observe(line string, n int) bool {
	if p.state == StateIdle {
		if p.arm == "" {
			if !strings.Contains(line, p.trigger) {
				return false
			}
			p.fire(n, p.lines)
			return true
		}
		if !strings.Contains(line, p.arm) {
			return false
		}
		p.state = StateArmed
	}

	if p.state != StateArmed {
		return false
	}
	switch {
	case strings.Contains(line, p.trigger):
		p.fire(n, p.lines)
		return true
	case p.fallback != "" && strings.Contains(line, p.fallback):
		p.fire(n, p.fallbackLines)
		return true
	}
	return false
}

// Lines returns the lines inserted by the branch that fired, or the primary lines
// while the point has not fired.
func (p *Point) Lines() []string {
	if p.state == StateDone {
		return p.fired
	}
	return p.lines
}

// Report returns the injection report for the pass.
func (p *Point) Report() domain.Injection {
	inj := domain.Injection{Point: p.name, Applied: p.state == StateDone}
	if inj.Applied {
		inj.Line = p.line
		inj.Added = len(p.fired)
	}
	return inj
}

func (p *Point) fire(n int, lines []string) {
	p.state = StateDone
	p.line = n
	p.fired = lines
}
