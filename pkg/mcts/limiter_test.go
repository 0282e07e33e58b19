package mcts

import (
	"testing"
	"time"
)

func TestLimiterInfiniteByDefault(t *testing.T) {
	l := NewLimiter()
	l.Reset()

	if !l.Ok(1 << 30) {
		t.Fatal("default limiter stopped the search")
	}
}

func TestLimiterCycles(t *testing.T) {
	l := NewLimiter()
	l.SetLimits(DefaultLimits().SetCycles(100))
	l.Reset()

	if !l.Ok(99) {
		t.Fatal("stopped below the cycle limit")
	}
	if l.Ok(100) {
		t.Fatal("kept running at the cycle limit")
	}

	l.EvaluateStopReason(100)
	if l.StopReason() != StopCycles {
		t.Fatalf("stop reason %s, want Cycles", l.StopReason())
	}
}

func TestLimiterMovetime(t *testing.T) {
	l := NewLimiter()
	l.SetLimits(DefaultLimits().SetMovetime(10))
	l.Reset()

	if !l.Ok(0) {
		t.Fatal("stopped before the movetime elapsed")
	}

	time.Sleep(15 * time.Millisecond)
	if l.Ok(0) {
		t.Fatal("kept running after the movetime elapsed")
	}

	l.EvaluateStopReason(0)
	if l.StopReason() != StopMovetime {
		t.Fatalf("stop reason %s, want Movetime", l.StopReason())
	}
}

func TestLimiterSetStop(t *testing.T) {
	l := NewLimiter()
	l.Reset()

	l.SetStop(true)
	if l.Ok(0) {
		t.Fatal("kept running after SetStop(true)")
	}

	l.EvaluateStopReason(0)
	if l.StopReason() != StopInterrupt {
		t.Fatalf("stop reason %s, want Interrupt", l.StopReason())
	}
}

func TestStopReasonString(t *testing.T) {
	cases := []struct {
		reason StopReason
		want   string
	}{
		{StopNone, "None"},
		{StopInterrupt, "Interrupt"},
		{StopMovetime | StopCycles, "Movetime|Cycles"},
	}

	for _, tc := range cases {
		if got := tc.reason.String(); got != tc.want {
			t.Errorf("StopReason(%d).String() = %q, want %q", tc.reason, got, tc.want)
		}
	}
}
