// Package frame implements the response framing shared by all transports.
//
// A radare2 response is a run of bytes terminated by a single NUL. The
// framing layer strips the delimiter, rejects empty bodies, validates the
// remainder as UTF-8, and optionally re-parses it as JSON.
package frame

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"unicode/utf8"

	"github.com/meme/r2pipe/internal/errors"
)

// Delim terminates every response on the process and inherited transports.
// The TCP transport appends it synthetically after reading to EOF.
const Delim byte = 0x00

// Trim strips the trailing delimiter from a raw response and decodes the
// remainder as text.
//
// Returns ErrEmptyResponse when nothing remains after the strip (zero bytes
// read, or a response that was exactly one NUL), and DecodeError when the
// remaining bytes are not valid UTF-8.
func Trim(raw []byte) (string, error) {
	if n := len(raw); n > 0 && raw[n-1] == Delim {
		raw = raw[:n-1]
	}

	if len(raw) == 0 {
		return "", errors.ErrEmptyResponse
	}

	if !utf8.Valid(raw) {
		return "", &errors.DecodeError{Raw: bytes.Clone(raw)}
	}

	return string(raw), nil
}

// ParseJSON parses a decoded response body as JSON.
//
// An empty (or all-whitespace) body is a ParseError, matching the contract
// that structured commands must yield structured data.
func ParseJSON(body string) (any, error) {
	if len(bytes.TrimSpace([]byte(body))) == 0 {
		return nil, &errors.ParseError{Raw: body, Err: stderrors.New("empty response body")}
	}

	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return nil, &errors.ParseError{Raw: body, Err: err}
	}

	return v, nil
}
