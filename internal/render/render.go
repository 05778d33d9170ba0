package render

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/forgo/jwt-decode/pkg/jwt"
)

// envelope is the JSON output shape. The signature travels as unpadded
// base64url so the output stays valid JSON regardless of the bytes.
type envelope struct {
	Header    any    `json:"header"`
	Payload   any    `json:"payload"`
	Signature string `json:"signature"`
}

// Text renders a decoded token for terminal reading: a banner, the header and
// payload pretty-printed as JSON, and the signature summarized as re-encoded
// base64url with its byte length.
func Text(token *jwt.Token) (string, error) {
	header, err := json.MarshalIndent(token.Header, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render header: %w", err)
	}
	payload, err := json.MarshalIndent(token.Payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render payload: %w", err)
	}

	var b strings.Builder
	b.WriteString("Decoded Token\n")
	b.WriteString("=============\n\n")
	b.WriteString("Header:\n")
	b.Write(header)
	b.WriteString("\n\n")
	b.WriteString("Payload:\n")
	b.Write(payload)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Signature (%d bytes, base64url):\n", len(token.Signature))
	b.WriteString(base64.RawURLEncoding.EncodeToString(token.Signature))
	b.WriteString("\n")
	return b.String(), nil
}

// JSON renders a decoded token as a single JSON document. The output is
// indented unless compact is set, and always ends with a newline.
func JSON(token *jwt.Token, compact bool) ([]byte, error) {
	env := envelope{
		Header:    token.Header,
		Payload:   token.Payload,
		Signature: base64.RawURLEncoding.EncodeToString(token.Signature),
	}

	var (
		out []byte
		err error
	)
	if compact {
		out, err = json.Marshal(env)
	} else {
		out, err = json.MarshalIndent(env, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render token: %w", err)
	}
	return append(out, '\n'), nil
}
