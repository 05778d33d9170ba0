// Package fixtures mints real compact JWTs for decoder tests.
//
// The fixtures package produces signed tokens with sensible default claims
// and optional customization, so decoder tests run against output from real
// producers rather than hand-assembled strings.
//
// # Factory Pattern
//
// Create a factory with fresh signing keys:
//
//	f := fixtures.New(t)
//
// # Minting Tokens
//
// Factory methods sign through two independent stacks:
//
//	raw := f.SignedHS256(t)   // golang-jwt, HMAC
//	raw = f.SignedRS256(t)    // golang-jwt, RSA
//	raw = f.SignedJOSE(t)     // go-jose, RSA
//
// # Customization
//
// Use option functions to shape the claims or header:
//
//	raw := f.SignedHS256(t, fixtures.WithClaim("role", "admin"))
//	raw = f.SignedJOSE(t, fixtures.WithKeyID("key-1"))
//
// # Raw Assembly
//
// Compact builds a token directly from parts, bypassing any signer, for
// inputs no real producer would emit:
//
//	raw := fixtures.Compact(t, header, payload, signature)
//
// # Unique Claims
//
// Each default claim set carries a fresh jti, so two minted tokens never
// collide:
//
//	claims := fixtures.DefaultClaims()
package fixtures
