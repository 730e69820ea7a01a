package domain

import "time"

const GameStatusLobby = "lobby"

// Game is handed to the game server when a host creates a session.
type Game struct {
	AccessCode   string         `json:"accessCode"`
	Reveals      bool           `json:"reveals"`
	Size         int            `json:"size"`
	Deck         []CardInstance `json:"deck"`
	Time         int            `json:"time"`
	Players      []PlayerInfo   `json:"players"`
	Status       string         `json:"status"`
	HasDreamWolf bool           `json:"hasDreamWolf"`
	EndTime      *time.Time     `json:"endTime"`
}

// PlayerInfo is sent with joinGame. Token proves the player is the host.
type PlayerInfo struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	ID    string `json:"id"`
	Token string `json:"token,omitempty"`
}
