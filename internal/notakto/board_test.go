package notakto

import (
	"testing"

	"github.com/notaktolabs/notakto-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardWith builds a size*size board with the given cells marked.
func boardWith(size int, marked ...int) []string {
	board := make([]string, size*size)
	for _, idx := range marked {
		board[idx] = entity.MarkedCell
	}
	return board
}

func TestIsDead(t *testing.T) {
	t.Run("Board with a complete row is dead", func(t *testing.T) {
		board := boardWith(3, 3, 4, 5)

		assert.True(t, IsDead(board, 3))
	})

	t.Run("Board with a complete column is dead", func(t *testing.T) {
		board := boardWith(3, 1, 4, 7)

		assert.True(t, IsDead(board, 3))
	})

	t.Run("Board with a complete diagonal is dead", func(t *testing.T) {
		assert.True(t, IsDead(boardWith(3, 0, 4, 8), 3))
		assert.True(t, IsDead(boardWith(3, 2, 4, 6), 3))
	})

	t.Run("Board with no complete line is alive", func(t *testing.T) {
		// Given: six marks leaving 2, 4 and 6 empty - no line is complete
		board := boardWith(3, 0, 1, 3, 5, 7, 8)

		assert.False(t, IsDead(board, 3))
	})

	t.Run("Empty board is alive", func(t *testing.T) {
		assert.False(t, IsDead(boardWith(4), 4))
	})

	t.Run("Dead board stays dead as further cells are marked", func(t *testing.T) {
		// Given: a board that just died
		board := boardWith(3, 0, 1, 2)
		require.True(t, IsDead(board, 3))

		// When: marking every remaining cell one by one
		for idx, cell := range board {
			if cell != entity.EmptyCell {
				continue
			}
			board[idx] = entity.MarkedCell

			// Then: dead-ness is never revoked
			assert.True(t, IsDead(board, 3))
		}
	})
}

func TestAllDead(t *testing.T) {
	t.Run("True only when every board is dead", func(t *testing.T) {
		dead := boardWith(3, 0, 1, 2)
		alive := boardWith(3, 0, 1)

		assert.True(t, AllDead([][]string{dead, dead}, 3))
		assert.False(t, AllDead([][]string{dead, alive}, 3))
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("Lists every empty cell of every live board", func(t *testing.T) {
		// Given: one live board with two marks and one dead board
		live := boardWith(3, 0, 8)
		dead := boardWith(3, 0, 1, 2)

		// When: listing legal moves
		moves := LegalMoves([][]string{live, dead}, 3)

		// Then: only the live board's empty cells are candidates
		require.Len(t, moves, 7)
		for _, move := range moves {
			assert.Equal(t, 0, move.Board)
			assert.Equal(t, entity.EmptyCell, live[move.Cell])
		}
	})

	t.Run("Orders moves center-first", func(t *testing.T) {
		// Given: a single empty 3x3 board
		boards := [][]string{boardWith(3)}

		// When: listing legal moves
		moves := LegalMoves(boards, 3)

		// Then: the center leads and the corners trail
		require.Len(t, moves, 9)
		assert.Equal(t, Move{Board: 0, Cell: 4}, moves[0])

		corners := map[int]bool{0: true, 2: true, 6: true, 8: true}
		for _, move := range moves[5:] {
			assert.True(t, corners[move.Cell], "expected corner, got cell %d", move.Cell)
		}
	})

	t.Run("Ordering is deterministic across calls", func(t *testing.T) {
		boards := [][]string{boardWith(3, 4), boardWith(3, 0)}

		first := LegalMoves(boards, 3)
		second := LegalMoves(boards, 3)

		assert.Equal(t, first, second)
	})

	t.Run("No moves when every board is dead", func(t *testing.T) {
		dead := boardWith(3, 0, 4, 8)

		assert.Empty(t, LegalMoves([][]string{dead, dead}, 3))
	})
}
