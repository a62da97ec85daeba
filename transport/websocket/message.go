package websocket

import (
	"encoding/json"

	"github.com/notaktolabs/notakto-backend/internal/entity"
	"github.com/notaktolabs/notakto-backend/internal/notakto"
)

const (
	ActionConnect   = "connect"
	ActionMatchNew  = "match:new"
	ActionMatchJoin = "match:join"
	ActionMatchTurn = "match:turn"
	ActionMatchUndo = "match:undo"
)

// Message is the envelope for every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	PlayerID string        `json:"player_id,omitempty"`
	MatchID  string        `json:"match_id,omitempty"`
	Type     string        `json:"type,omitempty"`
	Move     *notakto.Move `json:"move,omitempty"`
}

type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Match  *entity.Match  `json:"match,omitempty"`
	Error  string         `json:"error,omitempty"`
}
