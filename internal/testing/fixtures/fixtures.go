package fixtures

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"testing"

	jose "github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Factory mints signed test tokens
type Factory struct {
	hmacKey    []byte
	privateKey *rsa.PrivateKey
}

// New creates a fixture factory with fresh signing keys
func New(t *testing.T) *Factory {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("fixtures: failed to generate RSA key: %v", err)
	}
	return &Factory{
		hmacKey:    []byte("fixture-hmac-key-0123456789abcdef"),
		privateKey: privateKey,
	}
}

// DefaultClaims returns a fresh claim set with a unique token ID. Numeric
// claims use float64 so a minted set compares equal to its decoded form.
func DefaultClaims() map[string]any {
	return map[string]any{
		"sub":  "user-1234567890",
		"name": "Test User",
		"iss":  "jwt-decode-fixtures",
		"jti":  uuid.NewString(),
		"iat":  float64(1516239022),
	}
}

// ============================================================================
// Token Options
// ============================================================================

// TokenOpts customizes token minting
type TokenOpts struct {
	Claims map[string]any
	KeyID  string
}

// WithClaims replaces the default claim set entirely
func WithClaims(claims map[string]any) func(*TokenOpts) {
	return func(o *TokenOpts) {
		o.Claims = claims
	}
}

// WithClaim sets a single claim on top of the defaults
func WithClaim(name string, value any) func(*TokenOpts) {
	return func(o *TokenOpts) {
		o.Claims[name] = value
	}
}

// WithKeyID sets the kid header on the minted token
func WithKeyID(kid string) func(*TokenOpts) {
	return func(o *TokenOpts) {
		o.KeyID = kid
	}
}

func newTokenOpts(opts []func(*TokenOpts)) *TokenOpts {
	o := &TokenOpts{Claims: DefaultClaims()}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// ============================================================================
// Signed Token Fixtures
// ============================================================================

// SignedHS256 mints an HMAC-signed token via golang-jwt
func (f *Factory) SignedHS256(t *testing.T, opts ...func(*TokenOpts)) string {
	t.Helper()
	o := newTokenOpts(opts)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(o.Claims))
	if o.KeyID != "" {
		token.Header["kid"] = o.KeyID
	}

	raw, err := token.SignedString(f.hmacKey)
	if err != nil {
		t.Fatalf("fixtures: failed to sign HS256 token: %v", err)
	}
	return raw
}

// SignedRS256 mints an RSA-signed token via golang-jwt
func (f *Factory) SignedRS256(t *testing.T, opts ...func(*TokenOpts)) string {
	t.Helper()
	o := newTokenOpts(opts)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims(o.Claims))
	if o.KeyID != "" {
		token.Header["kid"] = o.KeyID
	}

	raw, err := token.SignedString(f.privateKey)
	if err != nil {
		t.Fatalf("fixtures: failed to sign RS256 token: %v", err)
	}
	return raw
}

// SignedJOSE mints an RSA-signed token through go-jose, a producer with its
// own serialization path
func (f *Factory) SignedJOSE(t *testing.T, opts ...func(*TokenOpts)) string {
	t.Helper()
	o := newTokenOpts(opts)

	signerOpts := (&jose.SignerOptions{}).WithType("JWT")
	if o.KeyID != "" {
		signerOpts = signerOpts.WithHeader("kid", o.KeyID)
	}

	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.RS256, Key: f.privateKey}, signerOpts)
	if err != nil {
		t.Fatalf("fixtures: failed to create signer: %v", err)
	}

	payload, err := json.Marshal(o.Claims)
	if err != nil {
		t.Fatalf("fixtures: failed to marshal claims: %v", err)
	}

	sig, err := signer.Sign(payload)
	if err != nil {
		t.Fatalf("fixtures: failed to sign token: %v", err)
	}

	raw, err := sig.CompactSerialize()
	if err != nil {
		t.Fatalf("fixtures: failed to serialize token: %v", err)
	}
	return raw
}

// ============================================================================
// Raw Assembly
// ============================================================================

// Compact assembles a token directly from its parts, bypassing any signer.
// Useful for shaping inputs no real producer would emit.
func Compact(t *testing.T, header, payload any, signature []byte) string {
	t.Helper()

	h, err := json.Marshal(header)
	if err != nil {
		t.Fatalf("fixtures: failed to marshal header: %v", err)
	}
	p, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("fixtures: failed to marshal payload: %v", err)
	}

	return base64.RawURLEncoding.EncodeToString(h) + "." +
		base64.RawURLEncoding.EncodeToString(p) + "." +
		base64.RawURLEncoding.EncodeToString(signature)
}
