package connectfour

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bothPlayers = []Player{Player1, Player2}

func allCellsEmpty(t *testing.T, board Board) bool {
	t.Helper()
	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			cell, err := board.Get(col, row)
			require.NoError(t, err)
			if cell != CellEmpty {
				return false
			}
		}
	}
	return true
}

func TestBoardStartsEmpty(t *testing.T) {
	board := NewBoard(7, 6)
	assert.True(t, allCellsEmpty(t, board))
}

func TestAtStartAllInsertsNoPopsLegal(t *testing.T) {
	board := NewBoard(7, 6)
	for col := 0; col < 7; col++ {
		_, err := board.CanInsert(col)
		assert.NoError(t, err)
		for _, player := range bothPlayers {
			assert.Error(t, board.CanPop(col, player))
		}
	}
}

func TestInsertLandsOnBottomRow(t *testing.T) {
	board := NewBoard(7, 6)
	require.NoError(t, board.Insert(0, Player1))

	for row := 0; row < 6; row++ {
		for col := 0; col < 7; col++ {
			cell, err := board.Get(col, row)
			require.NoError(t, err)
			if col == 0 && row == 5 {
				assert.Equal(t, CellPlayer1, cell, "col %d row %d", col, row)
			} else {
				assert.Equal(t, CellEmpty, cell, "col %d row %d", col, row)
			}
		}
	}
}

func TestInsertThenPopLeavesBoardEmpty(t *testing.T) {
	for col := 0; col < 7; col++ {
		for _, player := range bothPlayers {
			board := NewBoard(7, 6)
			require.NoError(t, board.Insert(col, player))
			require.NoError(t, board.Pop(col, player))
			assert.True(t, allCellsEmpty(t, board), "col %d player %s", col, player)
		}
	}
}

func TestPopShiftsColumnDown(t *testing.T) {
	board := NewBoard(7, 6)
	require.NoError(t, board.Insert(0, Player2))
	require.NoError(t, board.Insert(0, Player1))

	col0, err := board.Column(0)
	require.NoError(t, err)
	assert.Equal(t, []Cell{
		CellEmpty, CellEmpty, CellEmpty, CellEmpty, CellPlayer1, CellPlayer2,
	}, col0)

	require.NoError(t, board.Pop(0, Player2))

	col0, err = board.Column(0)
	require.NoError(t, err)
	assert.Equal(t, []Cell{
		CellEmpty, CellEmpty, CellEmpty, CellEmpty, CellEmpty, CellPlayer1,
	}, col0)
}

func TestColumnFullAfterHeightInserts(t *testing.T) {
	for col := 0; col < 7; col++ {
		for _, player := range bothPlayers {
			board := NewBoard(7, 6)
			for i := 0; i < 6; i++ {
				require.NoError(t, board.Insert(col, player))
			}

			_, err := board.CanInsert(col)
			assert.Equal(t, ColumnFullError{Column: col}, err)
		}
	}
}

func TestColumnFullThenPopMeansNotFull(t *testing.T) {
	board := NewBoard(7, 6)
	for i := 0; i < 6; i++ {
		require.NoError(t, board.Insert(0, Player1))
	}
	_, err := board.CanInsert(0)
	require.Equal(t, ColumnFullError{Column: 0}, err)

	require.NoError(t, board.Pop(0, Player1))

	top, err := board.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, CellEmpty, top)
	row, err := board.CanInsert(0)
	require.NoError(t, err)
	assert.Equal(t, 0, row)
}

// Randomized rendition of the original property: any insert sequence into a
// column, then popping the bottom piece, removes exactly that piece and
// shifts everything above down one row.
func TestManyInsertsThenOnePop(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))

	for trial := 0; trial < 200; trial++ {
		col := rng.IntN(7)
		players := make([]Player, 1+rng.IntN(6))
		for i := range players {
			players[i] = bothPlayers[rng.IntN(2)]
		}

		board := NewBoard(7, 6)
		for _, p := range players {
			require.NoError(t, board.Insert(col, p))
		}

		before, err := board.Column(col)
		require.NoError(t, err)

		require.NoError(t, board.Pop(col, players[0]))
		after, err := board.Column(col)
		require.NoError(t, err)

		nonEmpty := func(cells []Cell) []Cell {
			kept := []Cell{}
			for _, c := range cells {
				if c != CellEmpty {
					kept = append(kept, c)
				}
			}
			return kept
		}

		beforePieces := nonEmpty(before)
		afterPieces := nonEmpty(after)
		require.Len(t, afterPieces, len(beforePieces)-1)
		assert.Equal(t, beforePieces[:len(beforePieces)-1], afterPieces)
	}
}

func TestCanPopErrors(t *testing.T) {
	board := NewBoard(7, 6)

	for col := 0; col < 7; col++ {
		for _, player := range bothPlayers {
			assert.Equal(t, ColumnEmptyError{Column: col}, board.CanPop(col, player))
		}
	}

	require.NoError(t, board.Insert(0, Player1))
	assert.Equal(t, ColumnNotYoursError{Column: 0}, board.CanPop(0, Player2))
	assert.NoError(t, board.CanPop(0, Player1))
}

func TestGetOutOfRange(t *testing.T) {
	board := NewBoard(7, 6)

	_, err := board.Get(7, 0)
	assert.Equal(t, InvalidColumnError{Column: 7}, err)
	_, err = board.Get(-1, 0)
	assert.Equal(t, InvalidColumnError{Column: -1}, err)
	_, err = board.Get(0, 6)
	assert.Equal(t, InvalidRowError{Row: 6}, err)
	_, err = board.Get(0, -1)
	assert.Equal(t, InvalidRowError{Row: -1}, err)

	_, err = board.CanInsert(7)
	assert.Equal(t, InvalidColumnError{Column: 7}, err)
	assert.Equal(t, InvalidColumnError{Column: 7}, board.CanPop(7, Player1))
}

func TestCloneSharesNothing(t *testing.T) {
	board := NewBoard(7, 6)
	require.NoError(t, board.Insert(3, Player1))

	clone := board.Clone()
	require.NoError(t, clone.Insert(3, Player2))

	cell, err := board.Get(3, 4)
	require.NoError(t, err)
	assert.Equal(t, CellEmpty, cell, "insert into the clone leaked into the original")
}

func TestBoardString(t *testing.T) {
	board := NewBoard(4, 3)
	require.NoError(t, board.Insert(1, Player1))
	require.NoError(t, board.Insert(1, Player2))
	require.NoError(t, board.Insert(3, Player2))

	want := "" +
		"  0 1 2 3\n" +
		"0 . . . .\n" +
		"1 . 2 . .\n" +
		"2 . 1 . 2"
	assert.Equal(t, want, board.String())
}
