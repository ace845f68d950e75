// Package videotoken issues signed authentication tokens for a real-time
// video service.
//
// The package contains no cryptographic logic of its own: token signing is
// delegated to a vendor Signer injected via a SignerFactory, making the core
// independent of any specific signing backend. The streamjwt package provides
// the production implementation and fake provides an in-memory one for tests.
//
// Example usage with the JWT-based signer:
//
//	svc := videotoken.NewService(streamjwt.Factory())
//	resp, err := svc.GenerateUserToken(ctx, videotoken.UserTokenRequest{
//	    APIKey:    cfg.APIKey,
//	    APISecret: cfg.APISecret,
//	    UserID:    "user123",
//	})
package videotoken

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Service builds token requests, delegates signing to the vendor signer, and
// shapes the response envelope. It is stateless: every operation is
// independent and safe for concurrent use.
type Service struct {
	newSigner SignerFactory
	logger    *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a structured logger for the service.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates a token service backed by the given signer factory.
func NewService(factory SignerFactory, opts ...Option) *Service {
	s := &Service{
		newSigner: factory,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// GenerateUserToken issues a token that authenticates a user's general
// session with the video service.
//
// Validation is fail-fast: missing credentials win over a missing user ID.
// When ExpirationSeconds is set, the response carries ExpiresAt computed
// locally as now + ExpirationSeconds. When it is omitted the vendor applies
// its own default validity (1 hour) but ExpiresAt stays absent from the
// response: the response only reports an expiry the caller asked for.
func (s *Service) GenerateUserToken(ctx context.Context, req UserTokenRequest) (*TokenResponse, error) {
	if req.APIKey == "" || req.APISecret == "" {
		return nil, ErrMissingCredentials
	}
	if req.UserID == "" {
		return nil, ErrMissingUserID
	}

	signReq := SignUserRequest{UserID: req.UserID}
	if req.ExpirationSeconds != nil {
		signReq.Validity = time.Duration(*req.ExpirationSeconds) * time.Second
	}

	token, err := s.newSigner(req.APIKey, req.APISecret).SignUserToken(ctx, signReq)
	if err != nil {
		s.logger.Warn("user token signing failed", "user_id", req.UserID)
		return nil, &TokenGenerationError{Message: err.Error()}
	}

	resp := &TokenResponse{
		Token:  token,
		UserID: req.UserID,
		APIKey: req.APIKey,
		Type:   TokenTypeUser,
	}
	if req.ExpirationSeconds != nil {
		at := time.Now().Add(signReq.Validity)
		resp.ExpiresAt = &at
	}

	s.logger.Debug("issued user token", "user_id", req.UserID)
	return resp, nil
}

// GenerateCallToken issues a token granting a user role-scoped access to
// specific call identifiers (strings formatted "type:id").
//
// CallIDs are echoed verbatim and in order; Role is echoed only if supplied.
// Expiry handling matches GenerateUserToken.
func (s *Service) GenerateCallToken(ctx context.Context, req CallTokenRequest) (*TokenResponse, error) {
	if req.APIKey == "" || req.APISecret == "" {
		return nil, ErrMissingCredentials
	}
	if req.UserID == "" {
		return nil, ErrMissingUserID
	}
	if len(req.CallIDs) == 0 {
		return nil, ErrMissingCallIDs
	}

	signReq := SignCallRequest{
		UserID:  req.UserID,
		CallIDs: req.CallIDs,
		Role:    req.Role,
	}
	if req.ExpirationSeconds != nil {
		signReq.Validity = time.Duration(*req.ExpirationSeconds) * time.Second
	}

	token, err := s.newSigner(req.APIKey, req.APISecret).SignCallToken(ctx, signReq)
	if err != nil {
		s.logger.Warn("call token signing failed", "user_id", req.UserID, "call_count", len(req.CallIDs))
		return nil, &TokenGenerationError{Message: err.Error()}
	}

	resp := &TokenResponse{
		Token:   token,
		UserID:  req.UserID,
		APIKey:  req.APIKey,
		Type:    TokenTypeCall,
		CallIDs: req.CallIDs,
		Role:    req.Role,
	}
	if req.ExpirationSeconds != nil {
		at := time.Now().Add(signReq.Validity)
		resp.ExpiresAt = &at
	}

	s.logger.Debug("issued call token", "user_id", req.UserID, "call_count", len(req.CallIDs))
	return resp, nil
}

// Generate issues a user token.
//
// Deprecated: Use GenerateUserToken. Generate backs the legacy /generate
// route and must not diverge from GenerateUserToken.
func (s *Service) Generate(ctx context.Context, req UserTokenRequest) (*TokenResponse, error) {
	return s.GenerateUserToken(ctx, req)
}
