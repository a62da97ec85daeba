package apperror

import "errors"

var (
	ErrMatchFinished   = errors.New("match is already finished")
	ErrMatchNotStarted = errors.New("match is not started")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrNoActiveMatches = errors.New("no active matches")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrBoardDead       = errors.New("board is already dead")
	ErrNoLegalMoves    = errors.New("no legal moves")
)
