package transfer

import (
	"fmt"
	"io"
	"strings"

	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// IsUTF8Compatible reports whether text in the named charset needs no
// conversion to or from UTF-8. An empty charset counts as UTF-8.
func IsUTF8Compatible(charset string) bool {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8", "us-ascii":
		return true
	}
	return false
}

// NewCharsetEncoder returns an io.Writer that converts UTF-8 text written to it
// into the named charset and writes the result to w. The charset may be any
// MIME name known to golang.org/x/text/encoding/ianaindex. UTF-8 and US-ASCII
// are passed through untouched.
//
// When the returned io.Writer is an io.Closer, it must be closed to flush any
// partial character held back.
func NewCharsetEncoder(charset string, w io.Writer) (io.Writer, error) {
	if IsUTF8Compatible(charset) {
		return w, nil
	}

	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return nil, err
	}

	if e == nil {
		return nil, fmt.Errorf("no encoding found for charset %q", charset)
	}

	return transform.NewWriter(w, e.NewEncoder()), nil
}

// NewCharsetDecoder returns an io.Reader that reads text in the named charset
// from r and returns it as UTF-8. UTF-8 and US-ASCII are passed through
// untouched.
func NewCharsetDecoder(charset string, r io.Reader) (io.Reader, error) {
	if IsUTF8Compatible(charset) {
		return r, nil
	}

	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return nil, err
	}

	if e == nil {
		return nil, fmt.Errorf("no encoding found for charset %q", charset)
	}

	return transform.NewReader(r, e.NewDecoder()), nil
}
