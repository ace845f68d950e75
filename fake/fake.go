// Package fake provides an in-memory videotoken.Signer for testing.
//
// Use fake.NewSigner() (or fake.Factory()) in unit tests to avoid real
// signing and external dependencies. Each issued token embeds a counter so
// successive tokens are always value-distinct.
package fake

import (
	"context"
	"fmt"
	"sync"

	videotoken "github.com/chimerakang/videotoken-go"
)

// Signer records the requests it receives and returns synthetic tokens.
// Safe for concurrent use.
type Signer struct {
	mu      sync.Mutex
	counter int

	// Err, when non-nil, is returned by every signing call. Set it to
	// exercise vendor-failure paths.
	Err error

	// LastUser and LastCall hold the most recent request of each kind.
	LastUser *videotoken.SignUserRequest
	LastCall *videotoken.SignCallRequest
}

// compile-time check
var _ videotoken.Signer = (*Signer)(nil)

// NewSigner creates a fake signer.
func NewSigner() *Signer {
	return &Signer{}
}

// Factory returns a videotoken.SignerFactory that always hands out s,
// ignoring the credentials it is scoped to.
func Factory(s *Signer) videotoken.SignerFactory {
	return func(_, _ string) videotoken.Signer { return s }
}

// SignUserToken returns a synthetic user token.
func (s *Signer) SignUserToken(_ context.Context, req videotoken.SignUserRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}
	s.counter++
	s.LastUser = &req
	return fmt.Sprintf("fake-user-token-%d", s.counter), nil
}

// SignCallToken returns a synthetic call token.
func (s *Signer) SignCallToken(_ context.Context, req videotoken.SignCallRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}
	s.counter++
	s.LastCall = &req
	return fmt.Sprintf("fake-call-token-%d", s.counter), nil
}
