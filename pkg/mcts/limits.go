package mcts

import (
	"encoding/json"
	"math"
	"strings"
)

// Search budget. The zero value allows no iteration at all (a cycle limit
// of 0); DefaultLimits is unbounded, use the setters on it to bound the
// search by iteration count, wall-clock time, or both.
type Limits struct {
	Cycles   uint32
	Movetime int
	Infinite bool
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultMovetimeLimit int    = -1
	DefaultCyclesLimit   uint32 = math.MaxUint32
)

func DefaultLimits() *Limits {
	return &Limits{
		Cycles:   DefaultCyclesLimit,
		Movetime: DefaultMovetimeLimit,
		Infinite: true,
	}
}

// Set the number of select/expand/simulate/backpropagate iterations
func (l *Limits) SetCycles(cycles uint32) *Limits {
	l.Cycles = cycles
	l.Infinite = false
	return l
}

// Set the maximum time for the engine to think, in milliseconds.
// The clock is checked between iterations, an iteration is never cut short.
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	l.Infinite = false
	return l
}

func (l *Limits) SetInfinite(infinite bool) *Limits {
	l.Infinite = infinite
	return l
}
