package notakto

import (
	"math"
	"math/rand"

	"github.com/notaktolabs/notakto-backend/internal/entity"
)

// SearchDepth converts a difficulty level into a depth budget. Larger
// positions branch harder, so depth shrinks as size*boardCount grows.
func SearchDepth(size, boardCount, difficulty int) int {
	complexity := size * boardCount

	switch {
	case complexity <= 9:
		return min(5, difficulty+2)
	case complexity <= 16:
		return min(4, difficulty+1)
	default:
		return min(3, difficulty)
	}
}

// FindBestMove picks the computer opponent's move: every legal move is scored
// by an alpha-beta search at the depth budget for the given difficulty, and
// one of the best-scoring moves is returned uniformly at random. The random
// tie-break is deliberate, it keeps the opponent from being predictable when
// several moves are equally good. Returns false when no legal move exists.
func FindBestMove(boards [][]string, size, difficulty int, rng *rand.Rand) (Move, bool) {
	moves := LegalMoves(boards, size)
	if len(moves) == 0 {
		return Move{}, false
	}

	depth := SearchDepth(size, len(boards), difficulty)

	best := math.Inf(-1)
	var bestMoves []Move

	for _, move := range moves {
		value := minimax(applyMove(boards, move), size, depth, false, math.Inf(-1), math.Inf(1))

		switch {
		case value > best:
			best = value
			bestMoves = append(bestMoves[:0], move)
		case value == best:
			bestMoves = append(bestMoves, move)
		}

		// a forced win needs no further candidates
		if math.IsInf(value, 1) {
			break
		}
	}

	return bestMoves[rng.Intn(len(bestMoves))], true
}

// minimax - plain recursive alpha-beta over board-set copies. A position with
// every board dead is terminal and scores -inf for the maximizing side;
// at depth zero the static heuristic takes over.
func minimax(boards [][]string, size, depth int, maximizing bool, alpha, beta float64) float64 {
	if AllDead(boards, size) {
		if maximizing {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	if depth == 0 {
		return float64(Score(boards, size))
	}

	if maximizing {
		best := math.Inf(-1)
		for _, move := range LegalMoves(boards, size) {
			value := minimax(applyMove(boards, move), size, depth-1, false, alpha, beta)
			best = math.Max(best, value)
			alpha = math.Max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, move := range LegalMoves(boards, size) {
		value := minimax(applyMove(boards, move), size, depth-1, true, alpha, beta)
		best = math.Min(best, value)
		beta = math.Min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

func applyMove(boards [][]string, move Move) [][]string {
	next := entity.CloneBoards(boards)
	next[move.Board][move.Cell] = entity.MarkedCell

	return next
}
