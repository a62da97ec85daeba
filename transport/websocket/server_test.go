package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/notaktolabs/notakto-backend/internal/apperror"
	"github.com/notaktolabs/notakto-backend/internal/entity"
	"github.com/notaktolabs/notakto-backend/internal/notakto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

// fakeGamePlay serves canned matches so the transport can be tested without
// redis or a real engine run.
type fakeGamePlay struct {
	match *entity.Match
}

func (that *fakeGamePlay) GetOrCreatePlayer(_ context.Context, playerID string) (*entity.Player, error) {
	return &entity.Player{ID: playerID}, nil
}

func (that *fakeGamePlay) GetOrCreateMatch(_ context.Context, playerID, matchType string) (*entity.Match, error) {
	that.match.Type = matchType
	return that.match, nil
}

func (that *fakeGamePlay) JoinMatchByID(_ context.Context, matchID, playerID string) (*entity.Match, error) {
	return that.match, nil
}

func (that *fakeGamePlay) MakeTurn(_ context.Context, playerID string, move notakto.Move) (*entity.Match, error) {
	if err := notakto.MakeTurn(that.match, that.match.Turn, move); err != nil {
		return that.match, err
	}
	return that.match, nil
}

func (that *fakeGamePlay) Undo(_ context.Context, playerID string) (*entity.Match, error) {
	if err := notakto.Rollback(that.match, 1); err != nil {
		return that.match, err
	}
	return that.match, nil
}

func (that *fakeGamePlay) CleanupMatch(_ context.Context, _ *entity.Match) {}

// helper to make ws:// URL from httptest server
func wsURLFromHTTP(u string) string {
	return "ws" + strings.TrimPrefix(u, "http")
}

func newTestConn(t *testing.T, gamePlay gamePlay) (context.Context, *websocket.Conn) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	server := New(logger, gamePlay)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.serveConnection(ctx, w, r)
	}))
	t.Cleanup(ts.Close)

	conn, _, err := websocket.Dial(ctx, wsURLFromHTTP(ts.URL), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close(websocket.StatusNormalClosure, "bye")
	})

	return ctx, conn
}

func roundTrip(ctx context.Context, t *testing.T, conn *websocket.Conn, action string, payload RequestPayload) ResponsePayload {
	t.Helper()

	payloadBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	request, err := json.Marshal(Message{Action: action, Payload: payloadBytes})
	require.NoError(t, err)

	require.NoError(t, conn.Write(ctx, websocket.MessageText, request))

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var message Message
	require.NoError(t, json.Unmarshal(data, &message))
	require.Equal(t, action, message.Action)

	var response ResponsePayload
	require.NoError(t, json.Unmarshal(message.Payload, &response))

	return response
}

func TestServer_ConnectAndTurn(t *testing.T) {
	match := entity.NewMatch("123", entity.WithBotType, 2, 3, 1)
	match.Status = entity.StatusOngoing

	ctx, conn := newTestConn(t, &fakeGamePlay{match: match})

	// When: connecting
	response := roundTrip(ctx, t, conn, ActionConnect, RequestPayload{PlayerID: "p1"})

	// Then: the player comes back
	require.NotNil(t, response.Player)
	assert.Equal(t, "p1", response.Player.ID)

	// When: starting a match
	response = roundTrip(ctx, t, conn, ActionMatchNew, RequestPayload{PlayerID: "p1"})

	require.NotNil(t, response.Match)
	assert.Equal(t, "123", response.Match.ID)

	// When: playing a legal move
	response = roundTrip(ctx, t, conn, ActionMatchTurn, RequestPayload{
		PlayerID: "p1",
		Move:     &notakto.Move{Board: 0, Cell: 4},
	})

	// Then: the updated match is broadcast back
	require.NotNil(t, response.Match)
	assert.Empty(t, response.Error)
	assert.Equal(t, entity.MarkedCell, response.Match.Boards[0][4])
}

func TestServer_ErrorReplies(t *testing.T) {
	match := entity.NewMatch("123", entity.WithBotType, 2, 3, 1)
	match.Status = entity.StatusOngoing
	match.Boards[0][4] = entity.MarkedCell

	ctx, conn := newTestConn(t, &fakeGamePlay{match: match})

	t.Run("Unknown action gets an error payload", func(t *testing.T) {
		response := roundTrip(ctx, t, conn, "match:teleport", RequestPayload{PlayerID: "p1"})

		assert.Contains(t, response.Error, "unknown action")
	})

	t.Run("Missing player_id gets an error payload", func(t *testing.T) {
		response := roundTrip(ctx, t, conn, ActionConnect, RequestPayload{})

		assert.Contains(t, response.Error, "player_id is required")
	})

	t.Run("Illegal move gets an error payload", func(t *testing.T) {
		response := roundTrip(ctx, t, conn, ActionMatchTurn, RequestPayload{
			PlayerID: "p1",
			Move:     &notakto.Move{Board: 0, Cell: 4},
		})

		assert.Contains(t, response.Error, apperror.ErrCellOccupied.Error())
	})
}
