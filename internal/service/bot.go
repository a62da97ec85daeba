package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/notaktolabs/notakto-backend/internal/apperror"
	"github.com/notaktolabs/notakto-backend/internal/entity"
	"github.com/notaktolabs/notakto-backend/internal/notakto"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(match *entity.Match) error
}

type botService struct {
	rng *rand.Rand
}

// NewBotService - the rng breaks ties between equally scored moves; pass a
// seeded one in tests, nil for the default source.
func NewBotService(rng *rand.Rand) BotService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	}

	return &botService{rng: rng}
}

func (that *botService) MakeTurn(match *entity.Match) error {
	var botPlayer *entity.Player
	for _, player := range match.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	move, ok := notakto.FindBestMove(match.Boards, match.Size, match.Difficulty, that.rng)
	if !ok {
		return apperror.ErrNoLegalMoves
	}

	if err := notakto.MakeTurn(match, botPlayer.Side, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
