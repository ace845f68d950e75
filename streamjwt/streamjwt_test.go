package streamjwt_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	videotoken "github.com/chimerakang/videotoken-go"
	"github.com/chimerakang/videotoken-go/streamjwt"
)

const (
	testAPIKey    = "key123"
	testAPISecret = "secret456"
)

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testAPISecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		t.Fatal("invalid token claims")
	}
	return claims
}

func fixedClock(at time.Time) streamjwt.Option {
	return streamjwt.WithClock(func() time.Time { return at })
}

func TestSignUserToken_Claims(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	s := streamjwt.New(testAPIKey, testAPISecret, fixedClock(now))

	token, err := s.SignUserToken(context.Background(), videotoken.SignUserRequest{UserID: "user123"})
	if err != nil {
		t.Fatalf("SignUserToken() error: %v", err)
	}

	claims := parseClaims(t, token)
	if claims["user_id"] != "user123" {
		t.Errorf("user_id = %v, want %q", claims["user_id"], "user123")
	}
	if iat := int64(claims["iat"].(float64)); iat != now.Unix() {
		t.Errorf("iat = %d, want %d", iat, now.Unix())
	}
	if exp := int64(claims["exp"].(float64)); exp != now.Add(streamjwt.DefaultValidity).Unix() {
		t.Errorf("exp = %d, want default validity of %v", exp, streamjwt.DefaultValidity)
	}
	if _, ok := claims["call_cids"]; ok {
		t.Error("user token must not carry call_cids")
	}
}

func TestSignUserToken_CustomValidity(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	s := streamjwt.New(testAPIKey, testAPISecret, fixedClock(now))

	token, err := s.SignUserToken(context.Background(), videotoken.SignUserRequest{
		UserID:   "user123",
		Validity: 90 * time.Minute,
	})
	if err != nil {
		t.Fatalf("SignUserToken() error: %v", err)
	}

	claims := parseClaims(t, token)
	if exp := int64(claims["exp"].(float64)); exp != now.Add(90*time.Minute).Unix() {
		t.Errorf("exp = %d, want %d", exp, now.Add(90*time.Minute).Unix())
	}
}

func TestSignCallToken_Claims(t *testing.T) {
	s := streamjwt.New(testAPIKey, testAPISecret)

	token, err := s.SignCallToken(context.Background(), videotoken.SignCallRequest{
		UserID:  "user123",
		CallIDs: []string{"default:call1", "livestream:call2"},
		Role:    "admin",
	})
	if err != nil {
		t.Fatalf("SignCallToken() error: %v", err)
	}

	claims := parseClaims(t, token)
	cids, ok := claims["call_cids"].([]interface{})
	if !ok {
		t.Fatalf("call_cids = %v, want string array", claims["call_cids"])
	}
	if len(cids) != 2 || cids[0] != "default:call1" || cids[1] != "livestream:call2" {
		t.Errorf("call_cids = %v, want input order preserved", cids)
	}
	if claims["role"] != "admin" {
		t.Errorf("role = %v, want %q", claims["role"], "admin")
	}
}

func TestSignCallToken_OmitsRoleWhenEmpty(t *testing.T) {
	s := streamjwt.New(testAPIKey, testAPISecret)

	token, err := s.SignCallToken(context.Background(), videotoken.SignCallRequest{
		UserID:  "user123",
		CallIDs: []string{"default:call1"},
	})
	if err != nil {
		t.Fatalf("SignCallToken() error: %v", err)
	}

	if _, ok := parseClaims(t, token)["role"]; ok {
		t.Error("role claim should be absent when no role is supplied")
	}
}

func TestSignature_DependsOnSecret(t *testing.T) {
	s := streamjwt.New(testAPIKey, "other-secret")

	token, err := s.SignUserToken(context.Background(), videotoken.SignUserRequest{UserID: "user123"})
	if err != nil {
		t.Fatalf("SignUserToken() error: %v", err)
	}

	_, err = jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testAPISecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err == nil {
		t.Error("token signed with a different secret should not verify")
	}
}

func TestFactory(t *testing.T) {
	factory := streamjwt.Factory()
	signer := factory(testAPIKey, testAPISecret)

	token, err := signer.SignUserToken(context.Background(), videotoken.SignUserRequest{UserID: "user123"})
	if err != nil {
		t.Fatalf("SignUserToken() error: %v", err)
	}
	if claims := parseClaims(t, token); claims["user_id"] != "user123" {
		t.Errorf("user_id = %v, want %q", claims["user_id"], "user123")
	}
}
