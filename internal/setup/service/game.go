package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"maps"
	"math"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/werewolf/internal/setup/deck"
	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/internal/setup/session"
	"github.com/aussiebroadwan/werewolf/pkg/idx"
	"github.com/aussiebroadwan/werewolf/pkg/jwtx"
	"github.com/aussiebroadwan/werewolf/pkg/slogx"
)

const (
	accessCodeLength  = 6
	accessCodeCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// ErrSessionUnavailable wraps any failure to hand a game to the game server.
var ErrSessionUnavailable = errors.New("game server unavailable")

// Field-level messages shown to the host.
const (
	MsgNameRequired = "Name is required."
	MsgNoCards      = "Add at least one card"
	MsgBadTime      = "Time must not be negative."
)

// ValidationError reports every invalid field of a game creation request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "invalid game: " + strings.Join(parts, "; ")
}

// CreateGameRequest is what the host submits.
type CreateGameRequest struct {
	HostName    string
	TimeMinutes float64
	Reveals     bool
}

// CreatedGame is the game as sent to the game server plus the host's seat.
type CreatedGame struct {
	Game    domain.Game
	Host    domain.PlayerInfo
	JoinURL string
}

// GameService turns a device's setup into a live game on the game server.
type GameService struct {
	Sessions      session.Creator
	Signer        jwtx.Signer
	Issuer        string
	HostTokenTTL  time.Duration
	PublicBaseURL string

	// NewCode generates access codes. Nil uses crypto/rand.
	NewCode func() (string, error)
}

// CreateGame validates the request, assembles the deck and hands both the
// game and the host's join to the session collaborator.
func (s *GameService) CreateGame(ctx context.Context, setup *Setup, req CreateGameRequest) (CreatedGame, error) {
	l := slogx.FromContext(ctx)

	name := strings.TrimSpace(req.HostName)
	cards, size := setup.AssembleDeck()

	fields := map[string]string{}
	if name == "" {
		fields["name"] = MsgNameRequired
	}
	if size == 0 {
		fields["size"] = MsgNoCards
	}
	if req.TimeMinutes < 0 || math.IsNaN(req.TimeMinutes) || math.IsInf(req.TimeMinutes, 0) {
		fields["time"] = MsgBadTime
	}
	if len(fields) > 0 {
		return CreatedGame{}, &ValidationError{Fields: fields}
	}

	newCode := s.NewCode
	if newCode == nil {
		newCode = NewAccessCode
	}
	code, err := newCode()
	if err != nil {
		return CreatedGame{}, fmt.Errorf("generate access code: %w", err)
	}

	game := domain.Game{
		AccessCode:   code,
		Reveals:      req.Reveals,
		Size:         size,
		Deck:         cards,
		Time:         int(math.Ceil(req.TimeMinutes)),
		Players:      []domain.PlayerInfo{},
		Status:       domain.GameStatusLobby,
		HasDreamWolf: deck.HasRole(cards, domain.DreamWolf),
	}

	hostID := idx.New().String()
	token, err := s.Signer.Sign(jwtx.NewHostClaims(hostID, code, s.HostTokenTTL, s.Issuer, time.Now().UTC()))
	if err != nil {
		l.Error("failed to sign host token", "error", err)
		return CreatedGame{}, err
	}
	host := domain.PlayerInfo{Name: name, Code: code, ID: hostID, Token: token}

	if err := s.Sessions.CreateGame(ctx, game, host); err != nil {
		l.Error("game server did not accept game", "access_code", code, "error", err)
		return CreatedGame{}, fmt.Errorf("%w: %w", ErrSessionUnavailable, err)
	}

	l.Info("game created", "access_code", code, "size", size, "reveals", req.Reveals, "has_dream_wolf", game.HasDreamWolf)
	return CreatedGame{Game: game, Host: host, JoinURL: s.JoinURL(code)}, nil
}

// JoinURL is where players go to join the game with this code.
func (s *GameService) JoinURL(code string) string {
	u, err := url.JoinPath(s.PublicBaseURL, code)
	if err != nil {
		return strings.TrimSuffix(s.PublicBaseURL, "/") + "/" + code
	}
	return u
}

// NewAccessCode returns a random six character code from [a-z0-9].
func NewAccessCode() (string, error) {
	// Reject bytes past the largest multiple of the charset size to avoid bias.
	const limit = 256 - 256%len(accessCodeCharset)

	code := make([]byte, 0, accessCodeLength)
	var buf [16]byte
	for len(code) < accessCodeLength {
		if _, err := rand.Read(buf[:]); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			code = append(code, accessCodeCharset[int(b)%len(accessCodeCharset)])
			if len(code) == accessCodeLength {
				break
			}
		}
	}
	return string(code), nil
}

// ValidAccessCode reports whether code has the shape NewAccessCode produces.
func ValidAccessCode(code string) bool {
	if len(code) != accessCodeLength {
		return false
	}
	for _, c := range code {
		if !strings.ContainsRune(accessCodeCharset, c) {
			return false
		}
	}
	return true
}
