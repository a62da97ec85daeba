package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/notaktolabs/notakto-backend/internal/entity"
	"nhooyr.io/websocket"
)

var ErrMissingPlayerID = errors.New("player_id is required")

func (that *Server) handleConnect(ctx context.Context, conn *websocket.Conn, message *Message) error {
	payload, err := parsePayload(message)
	if err != nil {
		return err
	}

	player, err := that.gamePlay.GetOrCreatePlayer(ctx, payload.PlayerID)
	if err != nil {
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	return that.sendMessage(ctx, conn, message.Action, ResponsePayload{Player: player})
}

func (that *Server) handleNewMatch(ctx context.Context, conn *websocket.Conn, message *Message) error {
	payload, err := parsePayload(message)
	if err != nil {
		return err
	}

	matchType := payload.Type
	if matchType == "" {
		matchType = entity.WithBotType
	}

	match, err := that.gamePlay.GetOrCreateMatch(ctx, payload.PlayerID, matchType)
	if err != nil {
		return fmt.Errorf("failed to get or create match: %w", err)
	}

	return that.sendMessage(ctx, conn, message.Action, ResponsePayload{Match: match})
}

func (that *Server) handleJoinMatch(ctx context.Context, conn *websocket.Conn, message *Message) error {
	payload, err := parsePayload(message)
	if err != nil {
		return err
	}

	match, err := that.gamePlay.JoinMatchByID(ctx, payload.MatchID, payload.PlayerID)
	if err != nil {
		return fmt.Errorf("failed to join match: %w", err)
	}

	return that.sendMessage(ctx, conn, message.Action, ResponsePayload{Match: match})
}

func (that *Server) handleMatchTurn(ctx context.Context, conn *websocket.Conn, message *Message) error {
	payload, err := parsePayload(message)
	if err != nil {
		return err
	}

	if payload.Move == nil {
		return errors.New("move is required")
	}

	match, err := that.gamePlay.MakeTurn(ctx, payload.PlayerID, *payload.Move)
	if err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.sendMessage(ctx, conn, message.Action, ResponsePayload{Match: match}); err != nil {
		return err
	}

	if match.IsFinished() {
		that.gamePlay.CleanupMatch(ctx, match)
	}

	return nil
}

func (that *Server) handleMatchUndo(ctx context.Context, conn *websocket.Conn, message *Message) error {
	payload, err := parsePayload(message)
	if err != nil {
		return err
	}

	match, err := that.gamePlay.Undo(ctx, payload.PlayerID)
	if err != nil {
		return fmt.Errorf("failed to undo: %w", err)
	}

	return that.sendMessage(ctx, conn, message.Action, ResponsePayload{Match: match})
}

func parsePayload(message *Message) (*RequestPayload, error) {
	var payload RequestPayload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	if payload.PlayerID == "" {
		return nil, ErrMissingPlayerID
	}

	return &payload, nil
}
