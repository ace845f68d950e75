// Package streamjwt provides a videotoken.Signer that signs HS256 JWTs in
// the video service's token format.
//
// User tokens carry user_id, iat and exp claims; call tokens additionally
// carry call_cids and, when supplied, role. The signature key is the API
// secret; the API key identifies the application and is not embedded in the
// token.
package streamjwt

import (
	"context"
	"fmt"
	"time"

	videotoken "github.com/chimerakang/videotoken-go"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultValidity is the vendor default applied when a request does not
// name a validity.
const DefaultValidity = 1 * time.Hour

// Signer signs tokens with the HMAC-SHA256 secret of one API key pair.
type Signer struct {
	apiKey string
	secret []byte
	now    func() time.Time
}

// compile-time check
var _ videotoken.Signer = (*Signer)(nil)

// Option configures the Signer.
type Option func(*Signer)

// WithClock overrides the time source used for iat/exp claims.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) { s.now = now }
}

// New creates a signer scoped to the given API key/secret pair.
func New(apiKey, apiSecret string, opts ...Option) *Signer {
	s := &Signer{
		apiKey: apiKey,
		secret: []byte(apiSecret),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Factory returns a videotoken.SignerFactory backed by New.
func Factory(opts ...Option) videotoken.SignerFactory {
	return func(apiKey, apiSecret string) videotoken.Signer {
		return New(apiKey, apiSecret, opts...)
	}
}

// SignUserToken signs a user session token.
func (s *Signer) SignUserToken(_ context.Context, req videotoken.SignUserRequest) (string, error) {
	return s.sign(s.baseClaims(req.UserID, req.Validity))
}

// SignCallToken signs a token scoped to the request's call identifiers.
func (s *Signer) SignCallToken(_ context.Context, req videotoken.SignCallRequest) (string, error) {
	claims := s.baseClaims(req.UserID, req.Validity)
	claims["call_cids"] = req.CallIDs
	if req.Role != "" {
		claims["role"] = req.Role
	}
	return s.sign(claims)
}

func (s *Signer) baseClaims(userID string, validity time.Duration) jwt.MapClaims {
	if validity <= 0 {
		validity = DefaultValidity
	}
	now := s.now()
	return jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(validity).Unix(),
	}
}

func (s *Signer) sign(claims jwt.MapClaims) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("streamjwt: sign: %w", err)
	}
	return token, nil
}
