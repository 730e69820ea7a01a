// Package session hands a finished game setup to the game server.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/pkg/slogx"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	readWait       = 10 * time.Second
	maxMessageSize = 4096
)

var (
	// ErrRejected is returned when the game server answers with an error.
	ErrRejected = errors.New("session: rejected by game server")

	// ErrUnexpectedReply is returned for a reply that is neither ack nor error.
	ErrUnexpectedReply = errors.New("session: unexpected reply")
)

// Creator opens a game on the game server and joins the host to it.
type Creator interface {
	CreateGame(ctx context.Context, game domain.Game, host domain.PlayerInfo) error
}

// WSCreator talks to the game server over one short-lived websocket per game.
type WSCreator struct {
	URL    string
	Dialer *websocket.Dialer
}

var _ Creator = (*WSCreator)(nil)

func NewWSCreator(url string) *WSCreator {
	return &WSCreator{URL: url, Dialer: websocket.DefaultDialer}
}

// CreateGame sends newGame and waits for the server to acknowledge it before
// sending joinGame for the host, which must be acknowledged too.
func (c *WSCreator) CreateGame(ctx context.Context, game domain.Game, host domain.PlayerInfo) error {
	log := slogx.FromContext(ctx).With("access_code", game.AccessCode)

	conn, _, err := c.Dialer.DialContext(ctx, c.URL, nil)
	if err != nil {
		return fmt.Errorf("session: dial %s: %w", c.URL, err)
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	// Unblock reads and writes if the caller gives up.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	if err := exchange(conn, TypeNewGame, game); err != nil {
		return fmt.Errorf("session: %s: %w", TypeNewGame, err)
	}
	log.Debug("game registered with game server")

	if err := exchange(conn, TypeJoinGame, host); err != nil {
		return fmt.Errorf("session: %s: %w", TypeJoinGame, err)
	}
	log.Debug("host joined game", "player_id", host.ID)

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return nil
}

func exchange(conn *websocket.Conn, typ string, payload any) error {
	env, err := NewEnvelope(typ, payload)
	if err != nil {
		return err
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(env); err != nil {
		return err
	}

	_ = conn.SetReadDeadline(time.Now().Add(readWait))
	var reply Envelope
	if err := conn.ReadJSON(&reply); err != nil {
		return err
	}

	switch reply.Type {
	case TypeAck:
		return nil
	case TypeError:
		var p ErrorPayload
		if err := json.Unmarshal(reply.Payload, &p); err != nil || p.Message == "" {
			return fmt.Errorf("%w: %s", ErrRejected, reply.Payload)
		}
		return fmt.Errorf("%w: %s", ErrRejected, p.Message)
	default:
		return fmt.Errorf("%w %q", ErrUnexpectedReply, reply.Type)
	}
}
