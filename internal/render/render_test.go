package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/forgo/jwt-decode/pkg/jwt"
)

func sampleToken() *jwt.Token {
	return &jwt.Token{
		Header:  map[string]any{"alg": "HS256", "typ": "JWT"},
		Payload: map[string]any{"sub": "1234567890", "name": "John Doe"},
		// "sig" in bytes
		Signature: []byte{0x73, 0x69, 0x67},
	}
}

func TestText_ContainsAllSections(t *testing.T) {
	t.Parallel()

	out, err := Text(sampleToken())
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}

	for _, want := range []string{
		"Decoded Token",
		"Header:",
		`"alg": "HS256"`,
		"Payload:",
		`"name": "John Doe"`,
		"Signature (3 bytes, base64url):",
		"c2ln",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestText_NonObjectParts(t *testing.T) {
	t.Parallel()

	token := &jwt.Token{
		Header:    "bare string",
		Payload:   []any{float64(1), float64(2)},
		Signature: nil,
	}

	out, err := Text(token)
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if !strings.Contains(out, `"bare string"`) {
		t.Errorf("expected quoted string header, got:\n%s", out)
	}
	if !strings.Contains(out, "Signature (0 bytes, base64url):") {
		t.Errorf("expected zero-byte signature line, got:\n%s", out)
	}
}

func TestJSON_RoundTripsThroughUnmarshal(t *testing.T) {
	t.Parallel()

	out, err := JSON(sampleToken(), false)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	want := map[string]any{
		"header":    map[string]any{"alg": "HS256", "typ": "JWT"},
		"payload":   map[string]any{"sub": "1234567890", "name": "John Doe"},
		"signature": "c2ln",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected document (-want +got):\n%s", diff)
	}
}

func TestJSON_Indented_SpansMultipleLines(t *testing.T) {
	t.Parallel()

	out, err := JSON(sampleToken(), false)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if lines := strings.Count(string(out), "\n"); lines < 3 {
		t.Errorf("expected indented output across multiple lines, got %d newlines:\n%s", lines, out)
	}
}

func TestJSON_Compact_IsSingleLine(t *testing.T) {
	t.Parallel()

	out, err := JSON(sampleToken(), true)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	trimmed := strings.TrimSuffix(string(out), "\n")
	if strings.Contains(trimmed, "\n") {
		t.Errorf("expected single-line output, got:\n%s", out)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("expected output to end with a newline")
	}
}

func TestJSON_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := JSON(sampleToken(), true)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	second, err := JSON(sampleToken(), true)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("expected identical output for identical tokens:\n%s\n%s", first, second)
	}
}
