package jwt

import (
	"errors"
	"fmt"
)

// Decode failure kinds. Every error returned by Parse matches exactly one of
// these through errors.Is.
var (
	// ErrMissingPart means the token has fewer than three dot-separated parts.
	ErrMissingPart = errors.New("missing part")

	// ErrUnknownPart means a fourth part follows the three expected ones.
	ErrUnknownPart = errors.New("unknown part")

	// ErrDecode means a part is not valid base64url (bad character or padding).
	ErrDecode = errors.New("invalid base64url data")

	// ErrEncoding means a part's decoded bytes are not valid UTF-8.
	ErrEncoding = errors.New("invalid utf-8 data")

	// ErrSyntax means a part's decoded text is not valid JSON.
	ErrSyntax = errors.New("invalid json")
)

// SegmentError reports which part of a token failed to decode and why.
// Kind is one of the sentinel errors above. Err carries the underlying
// base64 or JSON error when one exists, reachable through errors.As.
type SegmentError struct {
	Segment string // "header", "payload" or "signature"
	Kind    error
	Err     error
}

func (e *SegmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", e.Segment, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Segment, e.Kind)
}

// Is matches against the error's kind, so errors.Is(err, ErrSyntax) holds
// without callers unwrapping to the underlying cause first.
func (e *SegmentError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying decode error, if any.
func (e *SegmentError) Unwrap() error {
	return e.Err
}
