package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/notaktolabs/notakto-backend/internal/entity"
)

// MatchResult is one archived row of a finished match.
type MatchResult struct {
	MatchID    string    `json:"match_id"`
	Size       int       `json:"size"`
	BoardCount int       `json:"board_count"`
	Difficulty int       `json:"difficulty"`
	Loser      string    `json:"loser"`
	Plies      int       `json:"plies"`
	FinishedAt time.Time `json:"finished_at"`
}

type ResultRepository interface {
	Save(ctx context.Context, match *entity.Match) error
	GetByMatchID(ctx context.Context, matchID string) (*MatchResult, error)
	ListRecent(ctx context.Context, limit int) ([]*MatchResult, error)
}

type dbResult struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) ResultRepository {
	return &dbResult{
		db: db,
	}
}

func (that *dbResult) Save(ctx context.Context, match *entity.Match) error {
	query := `INSERT INTO results (match_id, size, board_count, difficulty, loser, plies, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := that.db.ExecContext(ctx, query,
		match.ID, match.Size, len(match.Boards), match.Difficulty, match.Loser, match.Plies(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByMatchID(ctx context.Context, matchID string) (*MatchResult, error) {
	query := `SELECT match_id, size, board_count, difficulty, loser, plies, finished_at
		FROM results WHERE match_id = ?`

	var result MatchResult
	err := that.db.QueryRowContext(ctx, query, matchID).Scan(
		&result.MatchID, &result.Size, &result.BoardCount, &result.Difficulty,
		&result.Loser, &result.Plies, &result.FinishedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMatchNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}

	return &result, nil
}

func (that *dbResult) ListRecent(ctx context.Context, limit int) ([]*MatchResult, error) {
	query := `SELECT match_id, size, board_count, difficulty, loser, plies, finished_at
		FROM results ORDER BY finished_at DESC LIMIT ?`

	rows, err := that.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}
	defer rows.Close()

	var results []*MatchResult
	for rows.Next() {
		var result MatchResult
		if err = rows.Scan(&result.MatchID, &result.Size, &result.BoardCount, &result.Difficulty,
			&result.Loser, &result.Plies, &result.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}
		results = append(results, &result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate match results: %w", err)
	}

	return results, nil
}
