package session

import "encoding/json"

// Message types exchanged with the game server.
const (
	TypeNewGame  = "newGame"
	TypeJoinGame = "joinGame"
	TypeAck      = "ack"
	TypeError    = "error"
)

// Envelope is the standard websocket message wrapper.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ErrorPayload is carried by an "error" reply.
type ErrorPayload struct {
	Message string `json:"message"`
}

// NewEnvelope creates an envelope with a JSON-encoded payload.
func NewEnvelope(typ string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Type: typ, Payload: data}, nil
}
