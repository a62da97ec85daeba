package notakto

import (
	"errors"
	"fmt"

	"github.com/notaktolabs/notakto-backend/internal/apperror"
	"github.com/notaktolabs/notakto-backend/internal/entity"
)

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrInvalidRollback = errors.New("invalid rollback depth")
)

// MakeTurn - applies a move for the given side. The board set is replaced by
// a marked copy and the copy is appended to the match history; the caller's
// earlier snapshots are never touched. The turn passes to the other side,
// except when the move kills the last live board: then the match finishes and
// the mover is recorded as the loser (misere rule). On any error the match is
// left unchanged.
func MakeTurn(match *entity.Match, side string, move Move) error {
	if match.IsFinished() {
		return apperror.ErrMatchFinished
	}

	if err := validateMove(match, side, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	boards := entity.CloneBoards(match.Boards)
	boards[move.Board][move.Cell] = entity.MarkedCell

	match.Boards = boards
	match.History = append(match.History, boards)

	if AllDead(boards, match.Size) {
		match.Status = entity.StatusFinished
		match.Loser = side
		return nil
	}

	match.Turn = entity.ToggleSide(side)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(match *entity.Match, side string, move Move) error {
	if move.Board < 0 || move.Board >= len(match.Boards) {
		return fmt.Errorf("%w: board %d", ErrInvalidMove, move.Board)
	}

	board := match.Boards[move.Board]
	if move.Cell < 0 || move.Cell >= len(board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidMove, move.Cell)
	}

	if match.Turn != side {
		return apperror.ErrNotYourTurn
	}

	if IsDead(board, match.Size) {
		return apperror.ErrBoardDead
	}

	if board[move.Cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// Rollback - rewinds the match by the given number of plies, dropping the
// matching history suffix. A finished match becomes ongoing again; the turn
// marker is recomputed from the remaining move count.
func Rollback(match *entity.Match, plies int) error {
	if plies <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRollback, plies)
	}

	if plies > match.Plies() {
		return fmt.Errorf("%w: %d plies requested, %d applied", ErrNothingToUndo, plies, match.Plies())
	}

	cut := len(match.History) - plies
	match.History = match.History[:cut]
	match.Boards = match.History[cut-1]
	match.Status = entity.StatusOngoing
	match.Loser = ""

	if match.Plies()%2 == 0 {
		match.Turn = entity.SideOne
	} else {
		match.Turn = entity.SideTwo
	}

	return nil
}
