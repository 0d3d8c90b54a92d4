package qp

import (
	"errors"
	"fmt"
)

// Errors returned by the encoder and decoder.
var (
	// ErrInvalidHexDigit is wrapped by every *FormatError. Use errors.Is to
	// detect a malformed escape without caring which byte caused it.
	ErrInvalidHexDigit = errors.New("invalid hex digit in quoted-printable escape")

	// ErrLineLength is returned by NewWriter and NewEncoder when the maximum
	// line length is negative or shorter than MinLineLength.
	ErrLineLength = errors.New("maximum line length out of range")

	// ErrBufferSize is returned by NewWriter and NewEncoder when the output
	// buffer is configured too small to hold a single encoded unit.
	ErrBufferSize = errors.New("output buffer is too small")

	// ErrClosed is returned by Writer methods called after Close.
	ErrClosed = errors.New("quoted-printable writer is closed")
)

// FormatError is returned by the decoder when the two characters following an
// "=" are neither CRLF nor a pair of hex digits. The whole decode must be
// treated as failed.
type FormatError struct {
	// Value is the offending byte.
	Value byte
}

// Error describes the bad digit.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid hex digit %q (0x%02X) in quoted-printable escape", e.Value, e.Value)
}

// Unwrap returns ErrInvalidHexDigit.
func (e *FormatError) Unwrap() error {
	return ErrInvalidHexDigit
}
