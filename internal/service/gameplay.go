package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/notaktolabs/notakto-backend/internal/apperror"
	"github.com/notaktolabs/notakto-backend/internal/entity"
	"github.com/notaktolabs/notakto-backend/internal/notakto"
)

var ErrMatchFull = errors.New("match already has two players")

// undo takes back the player's move and the bot's reply in one step
const undoPlies = 2

type GamePlayService interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)
	GetOrCreateMatch(ctx context.Context, playerID, matchType string) (*entity.Match, error)
	JoinMatchByID(ctx context.Context, matchID, playerID string) (*entity.Match, error)

	MakeTurn(ctx context.Context, playerID string, move notakto.Move) (*entity.Match, error)
	Undo(ctx context.Context, playerID string) (*entity.Match, error)

	CleanupMatch(ctx context.Context, match *entity.Match)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	matchService  MatchService
	botService    BotService
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, matchService MatchService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		matchService:  matchService,
		botService:    botService,
	}
}

func (that *gamePlayService) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	player, err := that.playerService.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player: %w", err)
	}

	return player, nil
}

func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, move notakto.Move) (*entity.Match, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.MatchID == "" {
		return nil, apperror.ErrNoActiveMatches
	}

	match, err := that.matchService.GetMatchByID(ctx, player.MatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	if err = match.ConfirmOngoingState(); err != nil {
		return match, err
	}

	if err = notakto.MakeTurn(match, player.Side, move); err != nil {
		return match, fmt.Errorf("failed to make turn: %w", err)
	}

	if match.IsOngoing() && match.IsWithBot() {
		if err = that.botService.MakeTurn(match); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if match.IsFinished() {
		if err = that.matchService.ArchiveMatch(ctx, match); err != nil {
			that.logger.Error("failed to archive match", "matchID", match.ID, "error", err)
		}
	}

	if err = that.matchService.UpdateMatch(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	return match, nil
}

// Undo - rewinds the player's last move together with the bot's reply. Only
// offered for bot matches; human opponents would hardly agree to it.
func (that *gamePlayService) Undo(ctx context.Context, playerID string) (*entity.Match, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.MatchID == "" {
		return nil, apperror.ErrNoActiveMatches
	}

	match, err := that.matchService.GetMatchByID(ctx, player.MatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	if !match.IsWithBot() {
		return match, fmt.Errorf("%w: undo is only available against the bot", notakto.ErrNothingToUndo)
	}

	// Fewer plies than a full human-plus-bot exchange means the human has not
	// moved yet; rewinding just the bot's opening would leave the bot on turn
	// with nothing to prompt its move.
	if match.Plies() < undoPlies {
		return match, notakto.ErrNothingToUndo
	}

	if err = notakto.Rollback(match, undoPlies); err != nil {
		return match, fmt.Errorf("failed to rollback match: %w", err)
	}

	if err = that.matchService.UpdateMatch(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	return match, nil
}

func (that *gamePlayService) JoinMatchByID(ctx context.Context, matchID, playerID string) (*entity.Match, error) {
	match, err := that.matchService.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.MatchID == match.ID {
		return match, nil
	}

	if len(match.Players) >= 2 {
		return nil, fmt.Errorf("%w: match id %s", ErrMatchFull, matchID)
	}

	player.MatchID = match.ID
	player.Side = entity.SideTwo
	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	match.Status = entity.StatusOngoing
	match.Players = append(match.Players, player)
	if err = that.matchService.UpdateMatch(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	return match, nil
}

func (that *gamePlayService) GetOrCreateMatch(ctx context.Context, playerID, matchType string) (*entity.Match, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.MatchID == "" {
		match, err := that.createMatch(ctx, player, matchType)
		if err != nil {
			return nil, fmt.Errorf("failed to create new match: %w", err)
		}

		return match, nil
	}

	match, err := that.matchService.GetMatchByID(ctx, player.MatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

func (that *gamePlayService) createMatch(ctx context.Context, player *entity.Player, matchType string) (*entity.Match, error) {
	match, updatedPlayer, err := that.matchService.CreateMatch(ctx, player, matchType)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, updatedPlayer); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if match.IsWithBot() {
		if err = that.addBotToMatch(ctx, match); err != nil {
			return nil, fmt.Errorf("failed to add bot to match: %w", err)
		}
	}

	return match, nil
}

func (that *gamePlayService) addBotToMatch(ctx context.Context, match *entity.Match) error {
	botPlayer := entity.NewBotPlayer(match.ID)

	match.Players = append(match.Players, botPlayer)
	match.Status = entity.StatusOngoing

	playerSide, botSide := match.GetRandomSides()
	for _, player := range match.Players {
		if !player.IsBot() {
			player.Side = playerSide
			if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
				return fmt.Errorf("failed to update player: %w", err)
			}
		}
	}
	botPlayer.Side = botSide

	if err := that.playerService.UpdatePlayer(ctx, botPlayer); err != nil {
		return fmt.Errorf("failed to update bot player: %w", err)
	}

	if botSide == entity.SideOne {
		if err := that.botService.MakeTurn(match); err != nil {
			return fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err := that.matchService.UpdateMatch(ctx, match); err != nil {
		return fmt.Errorf("failed to update match with bot: %w", err)
	}

	return nil
}

func (that *gamePlayService) CleanupMatch(ctx context.Context, match *entity.Match) {
	log := that.logger.With("method", "cleanupMatch", "matchID", match.ID)

	if err := that.matchService.DeleteMatch(ctx, match.ID); err != nil {
		log.Error("failed to delete match", "error", err)
	}

	for _, player := range match.Players {
		player.MatchID = ""
		player.Side = ""
		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("failed to update", "player", player.ID, "error", err)
		}
	}
}
