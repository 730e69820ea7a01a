package http

import (
	"net/http"
	"net/url"

	"github.com/aussiebroadwan/werewolf/internal/setup/service"
	"github.com/aussiebroadwan/werewolf/pkg/httpx"
	"github.com/aussiebroadwan/werewolf/pkg/setupsdk"
	"github.com/aussiebroadwan/werewolf/pkg/slogx"

	qr "github.com/skip2/go-qrcode"
)

const qrSize = 256

// GamesHandler previews decks, creates games and renders join links.
type GamesHandler struct {
	Registry    *service.SetupRegistry
	GameService *service.GameService
}

// HandleDeck handles POST /v1/deck
//
//	@Summary		Preview Deck
//	@Description	Assembles the current selection into cards without creating a game. Every call issues fresh card ids.
//	@Tags			Games
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	setupsdk.DeckResponse	"deck, size"
//	@Router			/v1/deck [post].
func (h *GamesHandler) HandleDeck(w http.ResponseWriter, r *http.Request) {
	s, ok := setupFor(w, r, h.Registry)
	if !ok {
		return
	}

	cards, size := s.AssembleDeck()
	httpx.WriteJSON(w, http.StatusOK, setupsdk.DeckResponse{Deck: toCards(cards), Size: size})
}

// HandleCreate handles POST /v1/games
//
//	@Summary		Create Game
//	@Description	Validates the host name and selection, then sends newGame and the host's joinGame to the game server.
//	@Tags			Games
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		setupsdk.CreateGameRequest	true	"Host name, time limit in minutes, reveals flag"
//	@Success		201		{object}	setupsdk.CreateGameResponse	"access code, deck, host token, join url"
//	@Failure		400		{object}	setupsdk.ErrorResponse		"validation_error with per-field details"
//	@Failure		502		{object}	setupsdk.ErrorResponse		"session_unavailable"
//	@Router			/v1/games [post].
func (h *GamesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req setupsdk.CreateGameRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "invalid JSON in request body")
		return
	}

	s, ok := setupFor(w, r, h.Registry)
	if !ok {
		return
	}

	created, err := h.GameService.CreateGame(r.Context(), s, service.CreateGameRequest{
		HostName:    req.Name,
		TimeMinutes: req.Time,
		Reveals:     req.Reveals,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	g := created.Game
	httpx.WriteJSON(w, http.StatusCreated, setupsdk.CreateGameResponse{
		AccessCode:   g.AccessCode,
		Size:         g.Size,
		Time:         g.Time,
		Reveals:      g.Reveals,
		HasDreamWolf: g.HasDreamWolf,
		Deck:         toCards(g.Deck),
		HostID:       created.Host.ID,
		HostToken:    created.Host.Token,
		JoinURL:      created.JoinURL,
		QRURL:        "/v1/games/" + url.PathEscape(g.AccessCode) + "/qr",
	})
}

// HandleQR handles GET /v1/games/{code}/qr
//
//	@Summary		Join Link QR Code
//	@Description	Renders the game's join link as a PNG QR code.
//	@Tags			Games
//	@Produce		png
//	@Param			code	path		string					true	"Access code"
//	@Success		200		{file}		binary					"PNG image"
//	@Failure		400		{object}	setupsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/games/{code}/qr [get].
func (h *GamesHandler) HandleQR(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if !service.ValidAccessCode(code) {
		writeBadRequest(w, "access code must be six characters from a-z and 0-9")
		return
	}

	png, err := qr.Encode(h.GameService.JoinURL(code), qr.Medium, qrSize)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to render qr code", "access_code", code, "error", err)
		writeError(w, http.StatusInternalServerError, setupsdk.ErrorCodeServerError, "failed to render qr code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
