package videotoken

import "time"

// Token types reported in TokenResponse.Type.
const (
	TokenTypeUser = "user"
	TokenTypeCall = "call"
)

// Config holds the two secrets required for any token operation. It is read
// fresh from a config.Source on every request and never cached or mutated by
// the core.
type Config struct {
	APIKey    string
	APISecret string
}

// UserTokenRequest carries the inputs for GenerateUserToken.
// ExpirationSeconds nil means "use the vendor's default validity".
type UserTokenRequest struct {
	APIKey            string
	APISecret         string
	UserID            string
	ExpirationSeconds *int64
}

// CallTokenRequest carries the inputs for GenerateCallToken. CallIDs must
// contain at least one call identifier ("type:id"). Role is an open string
// set (e.g. "admin", "moderator") and is not validated beyond being echoed.
type CallTokenRequest struct {
	APIKey            string
	APISecret         string
	UserID            string
	CallIDs           []string
	Role              string
	ExpirationSeconds *int64
}

// TokenResponse is the uniform result envelope for every token operation.
// It is created fresh per call and immutable once returned; HTTP handlers
// serialize it directly into the response body.
type TokenResponse struct {
	Token     string     `json:"token"`
	UserID    string     `json:"userId"`
	APIKey    string     `json:"apiKey"`
	Type      string     `json:"type"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	CallIDs   []string   `json:"callIds,omitempty"`
	Role      string     `json:"role,omitempty"`
}

// SignUserRequest is the vendor-side request for a user token.
// Validity 0 means the vendor applies its own default.
type SignUserRequest struct {
	UserID   string
	Validity time.Duration
}

// SignCallRequest is the vendor-side request for a call token. Role is
// included in the signed claims only when non-empty; Validity 0 means the
// vendor applies its own default.
type SignCallRequest struct {
	UserID   string
	CallIDs  []string
	Role     string
	Validity time.Duration
}
