package mcts

import (
	"fmt"
	"math"
	"math/rand/v2"
)

type TreeStats struct {
	maxdepth int
	cps      uint32
	cycles   uint32
}

// MCTS grows an asymmetric search tree over the generic game state S with
// actions T. One instance serves one decision: construct it from the current
// position, Search(), read BestMove(), discard.
//
// The search is single-threaded, the hot loop mutates the arena without any
// locking. The rng is the only shared mutable resource between the engine
// and the game's playouts.
type MCTS[T MoveLike, S GameState[T, S]] struct {
	TreeStats
	Limiter  *Limiter
	listener *StatsListener[T]
	tree     *Tree[T, S]
	rng      *rand.Rand

	explorationParam float64
	playouts         int
	maxDepth         int
}

// Create a new engine rooted at 'rootState', with the package defaults
// for exploration, playouts and playout depth
func NewMCTS[T MoveLike, S GameState[T, S]](rootState S) *MCTS[T, S] {
	m := &MCTS[T, S]{
		Limiter:          NewLimiter(),
		listener:         &StatsListener[T]{},
		tree:             NewTree[T](rootState),
		explorationParam: ExplorationParam,
		playouts:         DefaultPlayouts,
		maxDepth:         DefaultMaxDepthPerPlayout,
	}
	m.SetSeed(SeedGeneratorFn())
	return m
}

// Seed the engine's PCG generator, same seed means same search
func (m *MCTS[T, S]) SetSeed(seed uint64) {
	m.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (m *MCTS[T, S]) SetExplorationParam(c float64) {
	m.explorationParam = max(0, c)
}

// Number of playouts ran from a leaf per iteration, at least 1
func (m *MCTS[T, S]) SetPlayouts(playouts int) {
	m.playouts = max(1, playouts)
}

// Maximum number of plies in a single playout
func (m *MCTS[T, S]) SetMaxDepthPerPlayout(maxDepth int) {
	m.maxDepth = max(1, maxDepth)
}

func (m *MCTS[T, S]) SetLimits(limits *Limits) {
	m.Limiter.SetLimits(limits)
}

func (m *MCTS[T, S]) Limits() *Limits {
	return m.Limiter.Limits()
}

// The search tree, read-only for callers
func (m *MCTS[T, S]) Tree() *Tree[T, S] {
	return m.tree
}

// Total number of select/expand/simulate/backpropagate iterations ran
func (m *MCTS[T, S]) Cycles() int {
	return int(m.cycles)
}

// Get cycles per second statistic
func (m *MCTS[T, S]) Cps() uint32 {
	return m.cps
}

// Maximum selection depth reached during the search
func (m *MCTS[T, S]) MaxDepth() int {
	return m.maxdepth
}

// Get the reason why the search was stopped, valid after search ends
func (m *MCTS[T, S]) StopReason() StopReason {
	return m.Limiter.StopReason()
}

func (m *MCTS[T, S]) ResetListener() {
	m.listener.OnCycle(nil).OnStop(nil)
}

func (m *MCTS[T, S]) StatsListener() *StatsListener[T] {
	return m.listener
}

func (m *MCTS[T, S]) SetListener(listener StatsListener[T]) {
	*m.listener = listener
}

// The most visited child of the root, the robust-child criterion. Visit
// count beats raw win rate here, a single lucky simulation cannot win.
// Returns false if the root has no children (the root was terminal).
func (m *MCTS[T, S]) BestMove() (T, bool) {
	var (
		best      T
		found     bool
		maxVisits = 0
	)

	root := m.tree.Node(m.tree.Root())
	for _, action := range root.ChildActions() {
		h, _ := root.Child(action)
		if v := m.tree.Node(h).Visits; v > maxVisits || !found {
			maxVisits = v
			best = action
			found = true
		}
	}

	return best, found
}

// Win rate of the best root child, NaN before the first backpropagation
func (m *MCTS[T, S]) RootScore() float64 {
	best, ok := m.BestMove()
	if !ok {
		return math.NaN()
	}

	root := m.tree.Node(m.tree.Root())
	h, _ := root.Child(best)
	child := m.tree.Node(h)
	if child.Visits == 0 {
		return math.NaN()
	}
	return float64(child.Wins) / float64(child.Visits)
}

func (m *MCTS[T, S]) String() string {
	root := m.tree.Node(m.tree.Root())
	return fmt.Sprintf("MCTS={Size=%d, Root=%d/%d, Stats:{maxdepth=%d, cps=%d, cycles=%d}}",
		m.tree.Size(), root.Wins, root.Visits, m.maxdepth, m.cps, m.cycles)
}
