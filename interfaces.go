package videotoken

import "context"

// Signer is the vendor-side token signer, scoped to one API key/secret pair.
// Implementations: streamjwt/ (HS256 JWT), fake/ (testing).
//
// The signer is the only suspension point in a token operation; it must
// honor ctx cancellation if it does any I/O.
type Signer interface {
	// SignUserToken returns an opaque signed token for a user session.
	SignUserToken(ctx context.Context, req SignUserRequest) (string, error)

	// SignCallToken returns an opaque signed token scoped to call identifiers.
	SignCallToken(ctx context.Context, req SignCallRequest) (string, error)
}

// SignerFactory builds a Signer scoped to the given credentials. The core
// calls it once per operation, so factories must be cheap and stateless.
type SignerFactory func(apiKey, apiSecret string) Signer
