package connectfour

import (
	"fmt"
	"math/rand/v2"

	pkgerrors "github.com/pkg/errors"

	"github.com/asimihsan/mcts-connect-four/pkg/mcts"
)

// State is a full game position: the board, the player to move and the
// perspective player whose win probability the search maximizes. The
// perspective stays fixed for the whole decision.
type State struct {
	Board       Board
	Turn        Player
	Perspective Player
}

// Create a game state with an empty width x height board
func NewState(width, height int, turn, perspective Player) State {
	return State{
		Board:       NewBoard(width, height),
		Turn:        turn,
		Perspective: perspective,
	}
}

// Standard 7x6 game, 'turn' to move, searching for the player to move
func NewStandardState(turn Player) State {
	return NewState(DefaultWidth, DefaultHeight, turn, turn)
}

// Apply plays a move for the side to move and toggles the turn. Pure, the
// receiver is never modified. Fails with the game model's error when the
// move is illegal.
func (s State) Apply(m Move) (State, error) {
	next := s
	next.Board = s.Board.Clone()
	if err := apply(&next.Board, m, s.Turn); err != nil {
		return State{}, pkgerrors.Wrapf(err, "apply %s for %s", m, s.Turn)
	}
	next.Turn = s.Turn.Other()
	return next, nil
}

// Successor is the engine-facing Apply. The engine only plays moves from
// LegalActions, an error here is an implementation bug and is fatal.
func (s State) Successor(m Move) State {
	next, err := s.Apply(m)
	if err != nil {
		panic(err)
	}
	return next
}

// All legal moves of the side to move, stable order
func (s State) LegalActions() []Move {
	return LegalMoves(s.Board, s.Turn)
}

func (s State) IsTerminal() bool {
	return IsTerminalPosition(s.Board) != NotTerminal
}

// Simulate runs 'playouts' independent bounded playouts from this position.
// On a terminal position every playout reports the terminal outcome
// immediately.
func (s State) Simulate(playouts, maxDepth int, rng *rand.Rand) []mcts.PlayoutResult {
	results := make([]mcts.PlayoutResult, playouts)
	for i := range results {
		board := s.Board.Clone()
		results[i] = playout(&board, s.Turn, s.Perspective, maxDepth, rng)
	}
	return results
}

func (s State) String() string {
	return fmt.Sprintf("%s\n%s's turn", s.Board, s.Turn)
}
