// Package render formats decoded tokens for output.
//
// Two formats are supported. Text produces a human-readable report with the
// header and payload pretty-printed and the signature summarized:
//
//	Decoded Token
//	=============
//
//	Header:
//	{
//	  "alg": "HS256",
//	  "typ": "JWT"
//	}
//	...
//
// JSON produces a machine-readable document with the signature re-encoded as
// unpadded base64url:
//
//	{
//	  "header": {...},
//	  "payload": {...},
//	  "signature": "SflKxwRJ..."
//	}
//
// Object keys are sorted by encoding/json, so output is deterministic for a
// given token.
package render
