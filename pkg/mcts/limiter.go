package mcts

import (
	"context"
	"sync/atomic"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1 // stopped by user, by calling .SetStop(true) or context cancellation
	StopMovetime  StopReason = 2 // time limit reached
	StopCycles    StopReason = 4 // cycle limit reached
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopCycles, "Cycles"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

// Limiter enforces the search budget. The stop flag is atomic so a caller
// may interrupt a running search from another goroutine, the search itself
// is single-threaded.
type Limiter struct {
	limits *Limits
	Timer  *timer
	stop   atomic.Bool
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		Timer:  newTimer(),
		ctx:    context.Background(),
	}
}

// Reset the limiter's flags, called on search setup
func (l *Limiter) Reset() {
	l.Timer.Movetime(l.limits.Movetime)
	l.Timer.Reset()
	l.stop.Store(false)
	l.reason = StopNone
}

// Adds custom context to the limiter, enabling cancellation through it
func (l *Limiter) SetContext(ctx context.Context) {
	l.ctx = ctx
}

func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

// Get elapsed time in ms (from the last 'Reset' call)
func (l *Limiter) Elapsed() uint32 {
	return uint32(l.Timer.Deltatime())
}

// Whether the search may run another iteration
func (l *Limiter) Ok(cycles uint32) bool {
	if l.Stop() {
		return false
	}
	if l.limits.Infinite {
		return true
	}
	return !l.Timer.IsEnd() && cycles < l.limits.Cycles
}

// Evaluate stop reason based on current state, and set it internally,
// called once after the search loop exits
func (l *Limiter) EvaluateStopReason(cycles uint32) {
	reason := StopNone

	if l.stop.Load() {
		reason |= StopInterrupt
	}
	if !l.limits.Infinite {
		if l.Timer.IsEnd() {
			reason |= StopMovetime
		}
		if cycles >= l.limits.Cycles {
			reason |= StopCycles
		}
	}

	l.reason = reason
}

// Get the reason why the search was stopped, valid after search ends
func (l *Limiter) StopReason() StopReason {
	return l.reason
}
