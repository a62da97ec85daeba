package notakto

import "github.com/notaktolabs/notakto-backend/internal/entity"

const (
	// one move away from killing the board
	deathThreatPenalty = 10
	// two moves away
	nearThreatPenalty = 1
)

// Score rates a non-terminal position for the search cutoff. Every live board
// is scanned pattern by pattern: a line one mark short of completion costs 10
// and ends the scan for that board (the worst threat dominates), a line two
// marks short costs 1. Dead boards contribute nothing. The heuristic is not
// sign-adjusted per side; the search keeps its polarity consistent.
func Score(boards [][]string, size int) int {
	total := 0

	for _, board := range boards {
		if IsDead(board, size) {
			continue
		}

		for _, pattern := range PatternsFor(size) {
			marked := 0
			for _, idx := range pattern {
				if board[idx] != entity.EmptyCell {
					marked++
				}
			}

			if marked == size-1 {
				total -= deathThreatPenalty
				break
			}
			if marked == size-2 {
				total -= nearThreatPenalty
			}
		}
	}

	return total
}
