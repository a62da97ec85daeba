package notakto

import (
	"math"
	"sort"
	"sync"

	"github.com/notaktolabs/notakto-backend/internal/entity"
)

// Move identifies a target cell on one board of the set.
type Move struct {
	Board int `json:"board"`
	Cell  int `json:"cell"`
}

var (
	positionMu     sync.RWMutex
	positionBySize = make(map[int][]float64)
)

// positionValuesFor returns the positional value of every cell for the given
// edge length: minus the Manhattan distance to the board center, so central
// cells rate highest. Cached per size, same idempotency rules as PatternsFor.
func positionValuesFor(size int) []float64 {
	positionMu.RLock()
	values, ok := positionBySize[size]
	positionMu.RUnlock()

	if ok {
		return values
	}

	center := float64(size-1) / 2
	values = make([]float64, size*size)
	for i := range values {
		row := float64(i / size)
		col := float64(i % size)
		values[i] = -(math.Abs(row-center) + math.Abs(col-center))
	}

	positionMu.Lock()
	positionBySize[size] = values
	positionMu.Unlock()

	return values
}

// IsDead reports whether some line on the board is fully marked. A dead board
// accepts no further moves and stays dead for the rest of the match.
func IsDead(board []string, size int) bool {
	for _, pattern := range PatternsFor(size) {
		marked := true
		for _, idx := range pattern {
			if board[idx] == entity.EmptyCell {
				marked = false
				break
			}
		}
		if marked {
			return true
		}
	}

	return false
}

// AllDead reports whether every board in the set is dead.
func AllDead(boards [][]string, size int) bool {
	for _, board := range boards {
		if !IsDead(board, size) {
			return false
		}
	}

	return true
}

// LegalMoves lists every empty cell of every live board, center-first. The
// ordering is a search heuristic: trying central cells first makes alpha-beta
// cut off sooner. Sorting is stable, so moves of equal value keep their
// board-then-cell order and the result is deterministic.
func LegalMoves(boards [][]string, size int) []Move {
	values := positionValuesFor(size)

	var moves []Move
	for b, board := range boards {
		if IsDead(board, size) {
			continue
		}
		for c, cell := range board {
			if cell == entity.EmptyCell {
				moves = append(moves, Move{Board: b, Cell: c})
			}
		}
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return values[moves[i].Cell] > values[moves[j].Cell]
	})

	return moves
}
