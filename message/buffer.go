package message

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/zostay/go-qpstream/message/header"
	"github.com/zostay/go-qpstream/message/transfer"
)

// Constants describing the messages built by NewText.
const (
	// DefaultCharset is the charset used by NewText when none is given.
	DefaultCharset = "utf-8"

	// DefaultTransferEncoding is the Content-transfer-encoding used by
	// NewText when none is given.
	DefaultTransferEncoding = transfer.QuotedPrintable
)

var (
	// ErrModeUnset is returned by Opaque() when it is called before anything
	// has been written to the Buffer.
	ErrModeUnset = errors.New("no message has been built")

	// ErrUnknownTransferEncoding is returned by NewText when the
	// Content-transfer-encoding has no registered Transcoding.
	ErrUnknownTransferEncoding = errors.New("unknown Content-transfer-encoding")
)

// Buffer provides tools for constructing single-part email messages. Set up the
// header using the embedded header.Header, then write the body, in UTF-8 and
// without any transfer encoding, using the Buffer as an io.Writer. Call
// Opaque() to get the message when you are done.
type Buffer struct {
	header.Header
	buf *bytes.Buffer
}

// Write appends to the body of the message.
func (b *Buffer) Write(p []byte) (int, error) {
	if b.buf == nil {
		b.buf = &bytes.Buffer{}
	}
	return b.buf.Write(p)
}

// Opaque returns the message built so far. The body will be encoded as it is
// written out by WriteTo. It returns ErrModeUnset if Write was never called.
//
// The returned message has a copy of the header and the body bytes, so the
// Buffer may be reused.
func (b *Buffer) Opaque() (*Opaque, error) {
	if b.buf == nil {
		return nil, ErrModeUnset
	}

	return &Opaque{
		Header: *b.Header.Clone(),
		Reader: bytes.NewReader(bytes.Clone(b.buf.Bytes())),
	}, nil
}

// NewText returns a text/plain message that will write body in the given
// charset and Content-transfer-encoding. Empty arguments select DefaultCharset
// and DefaultTransferEncoding. The body is read as UTF-8 when the message is
// written.
//
// It returns an error if the charset or the transfer encoding is not
// supported.
func NewText(charset, cte string, body io.Reader) (*Opaque, error) {
	if charset == "" {
		charset = DefaultCharset
	}

	if cte == "" {
		cte = DefaultTransferEncoding
	}

	if _, hasCode := transfer.Lookup(cte); !hasCode {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransferEncoding, cte)
	}

	if _, err := transfer.NewCharsetEncoder(charset, io.Discard); err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
	}

	m := &Opaque{Reader: body}
	m.Set(header.MIMEVersion, "1.0")
	if err := m.SetMediaType("text/plain", map[string]string{"charset": charset}); err != nil {
		return nil, err
	}
	m.SetTransferEncoding(cte)

	return m, nil
}
