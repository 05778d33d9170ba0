// Command jwt-decode splits a compact JWT into header, payload and signature
// and prints the decoded parts. It never verifies the signature.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/forgo/jwt-decode/internal/config"
	"github.com/forgo/jwt-decode/internal/render"
	"github.com/forgo/jwt-decode/pkg/jwt"
)

// Overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run holds the whole program so tests can drive it with their own streams.
// Exit codes: 0 on success, 1 when the token fails to decode, 2 on usage or
// configuration errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jwt-decode", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var tokenFlag string
	fs.StringVar(&tokenFlag, "token", "", "Compact JWT to decode (reads stdin when omitted)")
	fs.StringVar(&tokenFlag, "t", "", "Shorthand for -token")
	jsonOut := fs.Bool("json", false, "Output as JSON")
	compact := fs.Bool("compact", false, "Single-line JSON output (implies -json)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "jwt-decode %s\n", version)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return 2
	}

	// Flags override the environment
	if *jsonOut || *compact {
		cfg.Output.Format = config.FormatJSON
	}
	if *compact {
		cfg.Output.Compact = true
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 2
	}

	// Diagnostics go to stderr so stdout stays pipeable
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	raw := tokenFlag
	if raw == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading stdin: %v\n", err)
			return 2
		}
		raw = string(data)
	}

	raw = normalize(raw)
	if raw == "" {
		fmt.Fprintf(stderr, "No token provided (use -token or pipe one on stdin)\n")
		return 2
	}

	logger.Debug("decoding token", slog.Int("length", len(raw)))

	token, err := jwt.Parse(raw)
	if err != nil {
		logger.Debug("decode failed", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "Error decoding token: %v\n", err)
		return 1
	}

	logger.Debug("token decoded", slog.Int("signature_bytes", len(token.Signature)))

	var out []byte
	if cfg.IsJSON() {
		out, err = render.JSON(token, cfg.Output.Compact)
	} else {
		var s string
		s, err = render.Text(token)
		out = []byte(s)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error rendering token: %v\n", err)
		return 1
	}

	if _, err := stdout.Write(out); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}
	return 0
}

// normalize trims surrounding whitespace and a pasted Authorization scheme,
// so both a bare token and a full "Bearer <token>" header value decode.
func normalize(raw string) string {
	token := strings.TrimSpace(raw)
	if len(token) > 7 && strings.EqualFold(token[:7], "Bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}
