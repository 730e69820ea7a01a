package setupsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Session is a registered device. It is safe for concurrent use; the
// service serialises operations per device.
type Session struct {
	client *SDKClient

	token     string
	deviceID  string
	expiresAt time.Time
}

// Token is the device's bearer token. Store it to resume the session later.
func (s *Session) Token() string { return s.token }

// DeviceID is only known for sessions created by RegisterDevice.
func (s *Session) DeviceID() string { return s.deviceID }

// ExpiresAt is zero for sessions resumed from a token.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

func (s *Session) do(ctx context.Context, method, path string, body, target any, expectedStatus int) error {
	resp, err := s.client.doRequest(ctx, method, path, s.token, body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, expectedStatus)
}

func rolePath(name, suffix string) string {
	return "/v1/roles/" + url.PathEscape(name) + suffix
}

// ListRoles returns the ordered catalog. Team may be "", "good" or "evil".
func (s *Session) ListRoles(ctx context.Context, team string, customOnly bool) (*ListRolesResponse, error) {
	q := url.Values{}
	if team != "" {
		q.Set("team", team)
	}
	if customOnly {
		q.Set("custom", "true")
	}
	path := "/v1/roles"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out ListRolesResponse
	if err := s.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateRole(ctx context.Context, req CreateRoleRequest) (*RoleResponse, error) {
	var out RoleResponse
	if err := s.do(ctx, http.MethodPost, "/v1/roles", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateRole(ctx context.Context, name string, req UpdateRoleRequest) (*RoleResponse, error) {
	var out RoleResponse
	if err := s.do(ctx, http.MethodPatch, rolePath(name, ""), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRole removes a custom role. The service refuses unless confirm is true.
func (s *Session) DeleteRole(ctx context.Context, name string, confirm bool) (*DeleteRoleResponse, error) {
	path := rolePath(name, "") + "?confirm=" + strconv.FormatBool(confirm)

	var out DeleteRoleResponse
	if err := s.do(ctx, http.MethodDelete, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Increment(ctx context.Context, name string) (*QuantityChangeResponse, error) {
	var out QuantityChangeResponse
	if err := s.do(ctx, http.MethodPost, rolePath(name, "/increment"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Decrement(ctx context.Context, name string) (*QuantityChangeResponse, error) {
	var out QuantityChangeResponse
	if err := s.do(ctx, http.MethodPost, rolePath(name, "/decrement"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetQuantities(ctx context.Context) (*QuantitiesResponse, error) {
	var out QuantitiesResponse
	if err := s.do(ctx, http.MethodGet, "/v1/quantities", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetQuantities sets every quantity back to zero.
func (s *Session) ResetQuantities(ctx context.Context) (*QuantitiesResponse, error) {
	var out QuantitiesResponse
	if err := s.do(ctx, http.MethodPost, "/v1/quantities/reset", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// PreviewDeck assembles the current selection without creating a game.
func (s *Session) PreviewDeck(ctx context.Context) (*DeckResponse, error) {
	var out DeckResponse
	if err := s.do(ctx, http.MethodPost, "/v1/deck", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateGame hands the current deck to the game server.
func (s *Session) CreateGame(ctx context.Context, req CreateGameRequest) (*CreateGameResponse, error) {
	var out CreateGameResponse
	if err := s.do(ctx, http.MethodPost, "/v1/games", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}
