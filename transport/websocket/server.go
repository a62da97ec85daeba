package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/notaktolabs/notakto-backend/internal/entity"
	"github.com/notaktolabs/notakto-backend/internal/notakto"
	"nhooyr.io/websocket"
)

type gamePlay interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)
	GetOrCreateMatch(ctx context.Context, playerID, matchType string) (*entity.Match, error)
	JoinMatchByID(ctx context.Context, matchID, playerID string) (*entity.Match, error)

	MakeTurn(ctx context.Context, playerID string, move notakto.Move) (*entity.Match, error)
	Undo(ctx context.Context, playerID string) (*entity.Match, error)

	CleanupMatch(ctx context.Context, match *entity.Match)
}

type Server struct {
	logger   *slog.Logger
	gamePlay gamePlay

	handlers map[string]func(ctx context.Context, conn *websocket.Conn, message *Message) error
}

func New(logger *slog.Logger, gamePlay gamePlay) *Server {
	server := &Server{
		logger:   logger,
		gamePlay: gamePlay,

		handlers: make(map[string]func(context.Context, *websocket.Conn, *Message) error),
	}

	server.handlers[ActionConnect] = server.handleConnect
	server.handlers[ActionMatchNew] = server.handleNewMatch
	server.handlers[ActionMatchJoin] = server.handleJoinMatch
	server.handlers[ActionMatchTurn] = server.handleMatchTurn
	server.handlers[ActionMatchUndo] = server.handleMatchUndo

	return server
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveConnection(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveConnection")

	conn, err := websocket.Accept(writer, req, nil)
	if err != nil {
		log.Error("failed to accept websocket connection", "error", err)
		return
	}
	defer conn.CloseNow() //nolint: errcheck // closed on every exit path

	log.Info("WebSocket connection established")

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Error("error handling messages", "error", err)
		return
	}

	conn.Close(websocket.StatusNormalClosure, "")
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			if err = that.sendError(ctx, conn, message.Action, errors.New("unknown action")); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, conn, &message); err != nil {
			log.Error("failed to handle message", "action", message.Action, "error", err)
			if err = that.sendError(ctx, conn, message.Action, err); err != nil {
				return err
			}
		}
	}
}

func (that *Server) sendMessage(ctx context.Context, conn *websocket.Conn, action string, payload ResponsePayload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: payloadBytes,
	}

	responseBytes, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err = conn.Write(ctx, websocket.MessageText, responseBytes); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(ctx context.Context, conn *websocket.Conn, action string, cause error) error {
	return that.sendMessage(ctx, conn, action, ResponsePayload{Error: cause.Error()})
}
