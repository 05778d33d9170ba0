// Package config manages configuration for the jwt-decode tool.
//
// The config package loads and validates configuration from environment
// variables. Command-line flags override whatever the environment provides,
// so the environment sets defaults and the flags have the last word.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Environment Variables
//
// Supported environment variables:
//
//	JWT_DECODE_OUTPUT     - output format, 'text' or 'json' (default: text)
//	JWT_DECODE_COMPACT    - render JSON on a single line (default: false)
//	JWT_DECODE_LOG_LEVEL  - diagnostic log level (default: info)
//
// # Validation
//
// Validate reports every invalid value at once rather than stopping at the
// first, so a misconfigured environment surfaces in a single run:
//
//	if err := cfg.Validate(); err != nil {
//	    fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
//	    os.Exit(2)
//	}
package config
