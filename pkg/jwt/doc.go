// Package jwt decodes JSON Web Tokens without verifying them.
//
// The jwt package splits a compact token into header, payload, and signature
// and decodes each part. It is an inspector, not a validator: signatures are
// returned as opaque bytes and claims are never checked.
//
// # Decoding
//
// Parse accepts the compact three-part form:
//
//	token, err := jwt.Parse("eyJhbGciOi...eyJzdWIiOi...SflKxwRJ")
//	if err != nil {
//	    // malformed token
//	}
//	header := token.Header     // any JSON value, usually map[string]any
//	payload := token.Payload   // any JSON value
//	sig := token.Signature     // raw bytes
//
// # Errors
//
// Every failure matches exactly one of five sentinel kinds:
//
//	ErrMissingPart  fewer than three dot-separated parts
//	ErrUnknownPart  a fourth part after three well-formed ones
//	ErrDecode       a part is not valid base64url
//	ErrEncoding     decoded bytes are not valid UTF-8
//	ErrSyntax       decoded text is not valid JSON
//
// Kinds are tested with errors.Is; the underlying base64 or JSON error is
// reachable with errors.As:
//
//	if errors.Is(err, jwt.ErrSyntax) {
//	    var syn *json.SyntaxError
//	    if errors.As(err, &syn) {
//	        // position of the JSON error
//	    }
//	}
//
// # Ordering
//
// Parts fail in positional order: header, then payload, then signature, then
// the check for trailing parts. A token with a broken header and four parts
// reports the header error.
//
// # Concurrency
//
// Parse is a pure function over its input; it is safe to call from any number
// of goroutines without coordination.
package jwt
