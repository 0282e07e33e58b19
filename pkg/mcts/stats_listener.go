package mcts

type ListenerTreeStats[T MoveLike] struct {
	Cycles     int
	TimeMs     int
	Cps        uint32
	MaxDepth   int
	BestMove   T
	HasBest    bool
	Eval       float64
	StopReason StopReason
}

// Convert the engine's counters to a 'ListenerTreeStats' struct
func toListenerStats[T MoveLike, S GameState[T, S]](m *MCTS[T, S]) ListenerTreeStats[T] {
	best, ok := m.BestMove()
	return ListenerTreeStats[T]{
		Cycles:     m.Cycles(),
		TimeMs:     int(m.Limiter.Elapsed()),
		Cps:        m.Cps(),
		MaxDepth:   m.MaxDepth(),
		BestMove:   best,
		HasBest:    ok,
		Eval:       m.RootScore(),
		StopReason: m.Limiter.StopReason(),
	}
}

// Listener function callback, will recieve current tree statistics
type ListenerFunc[T MoveLike] func(ListenerTreeStats[T])

type StatsListener[T MoveLike] struct {
	// called every 'nCycles' full iterations
	onCycle ListenerFunc[T]

	// called when the search stops (either by limiter or 'stop' signal)
	onStop ListenerFunc[T]

	nCycles int
}

func NewStatsListener[T MoveLike]() StatsListener[T] {
	return StatsListener[T]{nCycles: 1}
}

// Attach new on iteration increase callback, this will slow down the search
// because of best-move evaluation, so use it only for debugging
func (listener *StatsListener[T]) OnCycle(onCycle ListenerFunc[T]) *StatsListener[T] {
	listener.onCycle = onCycle
	return listener
}

// Attach 'on search end' callback, makes 'StopReason' available in the stats
func (listener *StatsListener[T]) OnStop(onStop ListenerFunc[T]) *StatsListener[T] {
	listener.onStop = onStop
	return listener
}

// Call the 'onCycle' callback once every n iterations
func (listener *StatsListener[T]) SetCycleInterval(n int) *StatsListener[T] {
	listener.nCycles = max(1, n)
	return listener
}
