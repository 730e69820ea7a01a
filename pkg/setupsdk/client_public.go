package setupsdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// GetJWKS retrieves the keys that verify device and host tokens.
func (c *SDKClient) GetJWKS(ctx context.Context) (*JWKSResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/.well-known/jwks.json", "", nil)
	if err != nil {
		return nil, err
	}

	var jwks JWKSResponse
	if err := decodeJSON(resp, &jwks, http.StatusOK); err != nil {
		return nil, err
	}
	return &jwks, nil
}

// RegisterDevice registers a new anonymous device and returns its session.
func (c *SDKClient) RegisterDevice(ctx context.Context) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/devices", "", nil)
	if err != nil {
		return nil, err
	}

	var reg RegisterDeviceResponse
	if err := decodeJSON(resp, &reg, http.StatusCreated); err != nil {
		return nil, err
	}
	return &Session{client: c, token: reg.Token, deviceID: reg.DeviceID, expiresAt: reg.ExpiresAt}, nil
}

// GetGameQR fetches the PNG QR code for a game's join link.
func (c *SDKClient) GetGameQR(ctx context.Context, code string) ([]byte, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/games/"+url.PathEscape(code)+"/qr", "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(resp, body)
	}
	return body, nil
}
