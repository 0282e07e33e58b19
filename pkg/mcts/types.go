package mcts

import "math/rand/v2"

// Other types, which didn't fit to MCTS or Node files

// Any move/action type usable as a child map key, must be cheap to copy
type MoveLike comparable

// Result of a single playout, seen from the searching player's perspective.
// Losses, draws and depth-truncated playouts all collapse into NotWin,
// the engine maximizes win frequency only.
type PlayoutResult uint8

const (
	PlayoutWin PlayoutResult = iota
	PlayoutNotWin
)

func (r PlayoutResult) String() string {
	if r == PlayoutWin {
		return "Win"
	}
	return "NotWin"
}

// GameState is the capability set the engine needs from a game position.
// Implementations own their position data, Successor must be pure
// (never mutate the receiver).
type GameState[T MoveLike, S any] interface {
	// All legal actions in this position, in a stable order
	LegalActions() []T
	// The position after playing 'action', side to move toggled
	Successor(action T) S
	// Whether the game is over in this position
	IsTerminal() bool
	// Run 'playouts' independent bounded playouts and report each outcome.
	// Must be reproducible given the same rng state.
	Simulate(playouts, maxDepth int, rng *rand.Rand) []PlayoutResult
}

// Selection is the result of a single UCT descent step
type Selection[T MoveLike] struct {
	Node   NodeHandle
	Action T
	// Finished means 'Node' has no children, so the descent is over
	// and Action is meaningless
	Finished bool
}
