package jwt

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// Part names used in error reporting, in positional order.
const (
	partHeader    = "header"
	partPayload   = "payload"
	partSignature = "signature"
)

// Token is a decoded JWT. Header and Payload hold whatever JSON value the
// corresponding part carried (object, array, string, number, bool or null).
// Signature holds the third part's raw bytes, never interpreted further.
type Token struct {
	Header    any
	Payload   any
	Signature []byte
}

// Parse splits a compact JWT into its three parts and decodes them without
// verifying the signature. The header and payload parts are base64url-decoded
// and parsed as JSON; the signature part is base64url-decoded only.
//
// Parts are consumed strictly in order: a malformed header is reported before
// a malformed payload, and a trailing fourth part is reported only after all
// three required parts decoded cleanly. On failure the returned error matches
// one of the Err* sentinels through errors.Is and no Token is returned.
func Parse(token string) (*Token, error) {
	parts := strings.Split(token, ".")

	header, err := structuredPart(parts, 0, partHeader)
	if err != nil {
		return nil, err
	}

	payload, err := structuredPart(parts, 1, partPayload)
	if err != nil {
		return nil, err
	}

	signature, err := rawPart(parts, 2, partSignature)
	if err != nil {
		return nil, err
	}

	if len(parts) > 3 {
		return nil, ErrUnknownPart
	}

	return &Token{
		Header:    header,
		Payload:   payload,
		Signature: signature,
	}, nil
}

// structuredPart decodes the part at position i as base64url-wrapped JSON.
func structuredPart(parts []string, i int, name string) (any, error) {
	if i >= len(parts) {
		return nil, &SegmentError{Segment: name, Kind: ErrMissingPart}
	}
	return decodeStructured(parts[i], name)
}

// rawPart decodes the part at position i as base64url bytes.
func rawPart(parts []string, i int, name string) ([]byte, error) {
	if i >= len(parts) {
		return nil, &SegmentError{Segment: name, Kind: ErrMissingPart}
	}
	return decodeRaw(parts[i], name)
}

// decodeStructured base64url-decodes a part, requires the bytes to be valid
// UTF-8, then parses them as JSON. The result keeps the shape the JSON had:
// objects become map[string]any, arrays []any, and so on.
func decodeStructured(part, name string) (any, error) {
	buf, err := decodeRaw(part, name)
	if err != nil {
		return nil, err
	}

	// encoding/json would silently replace invalid UTF-8 with U+FFFD, which
	// must surface as an encoding failure instead.
	if !utf8.Valid(buf) {
		return nil, &SegmentError{Segment: name, Kind: ErrEncoding}
	}

	var v any
	if err := json.Unmarshal(buf, &v); err != nil {
		return nil, &SegmentError{Segment: name, Kind: ErrSyntax, Err: err}
	}
	return v, nil
}

// decodeRaw base64url-decodes a part, accepting both padded and unpadded
// input. The alphabet is checked up front because Go's base64 decoder skips
// \r and \n, which the token format does not allow.
func decodeRaw(part, name string) ([]byte, error) {
	if i, ok := invalidByte(part); ok {
		return nil, &SegmentError{Segment: name, Kind: ErrDecode, Err: base64.CorruptInputError(i)}
	}

	enc := base64.RawURLEncoding
	if strings.ContainsRune(part, '=') {
		enc = base64.URLEncoding
	}

	buf, err := enc.DecodeString(part)
	if err != nil {
		return nil, &SegmentError{Segment: name, Kind: ErrDecode, Err: err}
	}
	return buf, nil
}

// invalidByte returns the index of the first byte outside the base64url
// alphabet (padding included) and whether one was found.
func invalidByte(part string) (int, bool) {
	for i := 0; i < len(part); i++ {
		switch c := part[i]; {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '=':
		default:
			return i, true
		}
	}
	return 0, false
}
