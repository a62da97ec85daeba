package entity

type Player struct {
	ID      string `json:"id"`
	Side    string `json:"side,omitempty"`
	MatchID string `json:"match_id,omitempty"`
	Bot     bool   `json:"bot,omitempty"`
}

func NewBotPlayer(matchID string) *Player {
	return &Player{
		ID:      "bot:" + matchID,
		MatchID: matchID,
		Bot:     true,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}
