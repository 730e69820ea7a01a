package setupsdk

import (
	"time"

	"github.com/aussiebroadwan/werewolf/pkg/jwtx"
)

// ============================================================================
// Errors
// ============================================================================

// ErrorResponse is the body of every error the service returns.
type ErrorResponse struct {
	// Error is the machine-readable code (e.g. "duplicate_name")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`

	// Details carries per-field messages for validation errors
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Devices
// ============================================================================

// RegisterDeviceResponse is returned once from POST /v1/devices.
type RegisterDeviceResponse struct {
	DeviceID  string    `json:"device_id"`
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ============================================================================
// Roles
// ============================================================================

// Role is one catalog entry with its current quantity.
type Role struct {
	Role             string `json:"role" example:"Seer"`
	Team             string `json:"team" example:"good" enums:"good,evil"`
	Description      string `json:"description"`
	IsTypeOfWerewolf bool   `json:"isTypeOfWerewolf"`
	Custom           bool   `json:"custom"`
	Saved            bool   `json:"saved"`
	Quantity         int    `json:"quantity"`
}

// ListRolesResponse is the ordered catalog with the selection state.
type ListRolesResponse struct {
	Roles                 []Role `json:"roles"`
	Total                 int    `json:"total"`
	HasAtLeastOneSelected bool   `json:"hasAtLeastOneSelected"`
}

// CreateRoleRequest describes a new custom role.
type CreateRoleRequest struct {
	Role             string `json:"role" example:"Alpha"`
	Team             string `json:"team" example:"evil" enums:"good,evil"`
	Description      string `json:"description"`
	IsTypeOfWerewolf bool   `json:"isTypeOfWerewolf"`
	Saved            bool   `json:"saved"`
}

// UpdateRoleRequest edits a custom role. Omitted fields are left unchanged.
// The name cannot be changed.
type UpdateRoleRequest struct {
	Team             *string `json:"team,omitempty" enums:"good,evil"`
	Description      *string `json:"description,omitempty"`
	IsTypeOfWerewolf *bool   `json:"isTypeOfWerewolf,omitempty"`
	Saved            *bool   `json:"saved,omitempty"`
}

// RoleResponse is returned from role create and update.
type RoleResponse struct {
	Role Role `json:"role"`

	// Warning is set when the change applied but could not be stored
	Warning string `json:"warning,omitempty"`
}

// DeleteRoleResponse reports how many catalog entries were removed.
type DeleteRoleResponse struct {
	Removed int    `json:"removed"`
	Warning string `json:"warning,omitempty"`
}

// ============================================================================
// Quantities
// ============================================================================

// Quantity is one role's selected count.
type Quantity struct {
	Role     string `json:"role"`
	Quantity int    `json:"quantity"`
}

// QuantitiesResponse is the full ledger state.
type QuantitiesResponse struct {
	Quantities            []Quantity `json:"quantities"`
	Total                 int        `json:"total"`
	HasAtLeastOneSelected bool       `json:"hasAtLeastOneSelected"`
}

// QuantityChangeResponse is returned from increment and decrement.
type QuantityChangeResponse struct {
	Role                  string `json:"role"`
	Quantity              int    `json:"quantity"`
	Total                 int    `json:"total"`
	HasAtLeastOneSelected bool   `json:"hasAtLeastOneSelected"`
}

// ============================================================================
// Deck & Games
// ============================================================================

// Card is one dealt card.
type Card struct {
	ID               string `json:"id"`
	Role             string `json:"role"`
	Team             string `json:"team"`
	Description      string `json:"description"`
	IsTypeOfWerewolf bool   `json:"isTypeOfWerewolf"`
	Custom           bool   `json:"custom"`
	Saved            bool   `json:"saved"`
}

// DeckResponse is a deck preview. len(Deck) always equals Size.
type DeckResponse struct {
	Deck []Card `json:"deck"`
	Size int    `json:"size"`
}

// CreateGameRequest is the host's game form.
type CreateGameRequest struct {
	Name    string  `json:"name" example:"Moderator"`
	Time    float64 `json:"time" example:"5"`
	Reveals bool    `json:"reveals"`
}

// CreateGameResponse describes the game handed to the game server.
type CreateGameResponse struct {
	AccessCode   string `json:"accessCode" example:"k3x9qa"`
	Size         int    `json:"size"`
	Time         int    `json:"time"`
	Reveals      bool   `json:"reveals"`
	HasDreamWolf bool   `json:"hasDreamWolf"`
	Deck         []Card `json:"deck"`
	HostID       string `json:"host_id"`
	HostToken    string `json:"host_token"`
	JoinURL      string `json:"join_url"`
	QRURL        string `json:"qr_url"`
}

// ============================================================================
// Health & JWKS
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks is the /readyz dependency breakdown.
type HealthChecks struct {
	Database     string `json:"database"`
	Signer       string `json:"signer"`
	ActiveSetups int    `json:"active_setups"`
}

// JWKSResponse holds the public keys that verify device and host tokens.
type JWKSResponse jwtx.JWKS
