package connectfour

import (
	"math/rand/v2"

	"github.com/asimihsan/mcts-connect-four/pkg/mcts"
)

// playout plays at most maxDepth plies from the given position with a fast
// heuristic policy: take an immediate winning move when one exists, play
// uniformly at random otherwise. The one-ply win capture markedly raises
// playout quality for connect four.
//
// The board is mutated, callers pass a copy. Returns Win iff the final
// position is a win for 'perspective', everything else (loss, draw, depth
// cutoff) is NotWin.
func playout(board *Board, turn, perspective Player, maxDepth int, rng *rand.Rand) mcts.PlayoutResult {
	current := turn

	for depth := 0; depth < maxDepth; depth++ {
		if IsTerminalPosition(*board) != NotTerminal {
			break
		}

		moves := LegalMoves(*board, current)
		if len(moves) == 0 {
			break
		}

		winning := false
		for _, m := range moves {
			copied := board.Clone()
			if err := apply(&copied, m, current); err != nil {
				panic(err)
			}
			if IsTerminalPosition(copied) == TerminalWin(current) {
				*board = copied
				current = current.Other()
				winning = true
				break
			}
		}
		if winning {
			break
		}

		m := moves[rng.IntN(len(moves))]
		if err := apply(board, m, current); err != nil {
			panic(err)
		}
		current = current.Other()
	}

	if IsTerminalPosition(*board) == TerminalWin(perspective) {
		return mcts.PlayoutWin
	}
	return mcts.PlayoutNotWin
}
