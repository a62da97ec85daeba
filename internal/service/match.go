package service

import (
	"context"
	"fmt"

	"github.com/notaktolabs/notakto-backend/internal/config"
	"github.com/notaktolabs/notakto-backend/internal/entity"
	"github.com/notaktolabs/notakto-backend/internal/pkg"
)

type MatchService interface {
	CreateMatch(ctx context.Context, player *entity.Player, matchType string) (*entity.Match, *entity.Player, error)
	UpdateMatch(ctx context.Context, match *entity.Match) error
	DeleteMatch(ctx context.Context, matchID string) error
	ArchiveMatch(ctx context.Context, match *entity.Match) error

	GetMatchByID(ctx context.Context, id string) (*entity.Match, error)
}

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

type resultRepo interface {
	Save(ctx context.Context, match *entity.Match) error
}

type matchService struct {
	settings config.Game

	matchRepo  matchRepo
	resultRepo resultRepo
}

func NewMatchService(settings config.Game, matchRepo matchRepo, resultRepo resultRepo) MatchService {
	return &matchService{
		settings: settings,

		matchRepo:  matchRepo,
		resultRepo: resultRepo,
	}
}

func (that *matchService) CreateMatch(ctx context.Context, player *entity.Player, matchType string) (*entity.Match, *entity.Player, error) {
	matchID, err := pkg.GenerateMatchID()
	if err != nil {
		return nil, nil, fmt.Errorf("error generating match ID: %w", err)
	}

	match := entity.NewMatch(matchID, matchType, that.settings.BoardCount, that.settings.BoardSize, that.settings.Difficulty)

	player.MatchID = matchID
	player.Side = entity.SideOne

	match.Players = []*entity.Player{player}
	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, nil, fmt.Errorf("failed to create match in storage: %w", err)
	}

	return match, player, nil
}

func (that *matchService) GetMatchByID(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve match from storage: %w", err)
	}

	return match, nil
}

func (that *matchService) UpdateMatch(ctx context.Context, match *entity.Match) error {
	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}

	return nil
}

func (that *matchService) DeleteMatch(ctx context.Context, matchID string) error {
	if err := that.matchRepo.DeleteByID(ctx, matchID); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}

// ArchiveMatch - writes a finished match to the results archive. The mobile
// app's economy screens read this archive; the payout logic itself lives
// outside the backend.
func (that *matchService) ArchiveMatch(ctx context.Context, match *entity.Match) error {
	if err := that.resultRepo.Save(ctx, match); err != nil {
		return fmt.Errorf("failed to archive match: %w", err)
	}

	return nil
}
