package notakto

import "sync"

// Pattern is the set of cell indices forming one line on a board: a row, a
// column or a diagonal. A board containing a fully marked pattern is dead.
type Pattern []int

var (
	patternsMu     sync.RWMutex
	patternsBySize = make(map[int][]Pattern)
)

// PatternsFor returns the line patterns for boards of the given edge length:
// size rows, size columns and both diagonals, 2*size+2 in total. Results are
// memoized per size; rebuilding an entry yields identical patterns, so
// concurrent first calls are safe.
func PatternsFor(size int) []Pattern {
	patternsMu.RLock()
	patterns, ok := patternsBySize[size]
	patternsMu.RUnlock()

	if ok {
		return patterns
	}

	patterns = buildPatterns(size)

	patternsMu.Lock()
	patternsBySize[size] = patterns
	patternsMu.Unlock()

	return patterns
}

func buildPatterns(size int) []Pattern {
	patterns := make([]Pattern, 0, 2*size+2)

	for i := 0; i < size; i++ {
		row := make(Pattern, size)
		column := make(Pattern, size)
		for j := 0; j < size; j++ {
			row[j] = i*size + j
			column[j] = i + j*size
		}
		patterns = append(patterns, row, column)
	}

	diagonal := make(Pattern, size)
	antiDiagonal := make(Pattern, size)
	for i := 0; i < size; i++ {
		diagonal[i] = i * (size + 1)
		antiDiagonal[i] = (i + 1) * (size - 1)
	}

	return append(patterns, diagonal, antiDiagonal)
}
