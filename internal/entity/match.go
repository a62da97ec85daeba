package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/notaktolabs/notakto-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	SideOne = "1"
	SideTwo = "2"

	EmptyCell = ""
	// MarkedCell is the only mark in the game: both sides place the same symbol.
	MarkedCell = "X"
)

const (
	PrivateType = "private"
	WithBotType = "bot"
)

var ErrUnknownMatchStatus = errors.New("unknown match status")

// Match is the authoritative state of one multi-board misere game.
// Boards are row-major size*size cell slices; History keeps one board-set
// snapshot per applied move plus the initial state, so a match can be
// rolled back by whole plies.
type Match struct {
	ID         string       `json:"id"`
	Size       int          `json:"size"`
	Boards     [][]string   `json:"boards"`
	History    [][][]string `json:"history,omitempty"`
	Turn       string       `json:"turn"`
	Loser      string       `json:"loser,omitempty"`
	Status     string       `json:"status"`
	Difficulty int          `json:"difficulty,omitempty"`
	Players    []*Player    `json:"players,omitempty"`
	Type       string       `json:"type,omitempty"`
}

func NewMatch(id, matchType string, boardCount, size, difficulty int) *Match {
	boards := make([][]string, boardCount)
	for i := range boards {
		boards[i] = make([]string, size*size)
	}

	return &Match{
		ID:         id,
		Size:       size,
		Boards:     boards,
		History:    [][][]string{CloneBoards(boards)},
		Turn:       SideOne,
		Status:     StatusWaiting,
		Difficulty: difficulty,
		Type:       matchType,
	}
}

// CloneBoards - deep-copies a board set. Applied moves always go through a
// fresh copy, so history snapshots are never mutated after the fact.
func CloneBoards(boards [][]string) [][]string {
	cloned := make([][]string, len(boards))
	for i, board := range boards {
		cloned[i] = append([]string(nil), board...)
	}

	return cloned
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Match) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Match) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Match) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrMatchNotStarted
	case that.IsFinished():
		return apperror.ErrMatchFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMatchStatus, that.Status)
	}
}

func (that *Match) IsWithBot() bool {
	return that.Type == WithBotType
}

// Plies - the number of moves applied since the match started.
func (that *Match) Plies() int {
	return len(that.History) - 1
}

func (that *Match) GetRandomSides() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return SideOne, SideTwo
	}
	return SideTwo, SideOne
}

func ToggleSide(side string) string {
	if side == SideOne {
		return SideTwo
	}
	return SideOne
}
