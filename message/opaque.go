package message

import (
	"errors"
	"io"
	"strings"

	"github.com/zostay/go-qpstream/message/header"
	"github.com/zostay/go-qpstream/message/transfer"
)

// Opaque is a single-part email message: a header and a body. The body is
// treated as an io.Reader and given no meaning beyond its charset and
// Content-transfer-encoding.
type Opaque struct {
	// Header will contain the header of the message.
	header.Header

	// Reader will contain the body content of the message. If the content is
	// zero bytes long, then Reader may be nil.
	io.Reader

	// encoded tracks whether the body already has the
	// Content-transfer-encoding applied.
	encoded bool

	// tc overrides the Transcoding looked up from the header.
	tc *transfer.Transcoding
}

// OpaqueAlreadyEncoded returns an Opaque whose body has already been encoded
// according to the header's charset and Content-transfer-encoding. WriteTo will
// copy it out as-is.
func OpaqueAlreadyEncoded(h *header.Header, r io.Reader) *Opaque {
	return &Opaque{
		Header:  *h.Clone(),
		Reader:  r,
		encoded: true,
	}
}

// IsEncoded returns true if the bytes returned by the io.Reader are already in
// their transfer encoded form.
func (m *Opaque) IsEncoded() bool {
	return m.encoded
}

// GetHeader returns the header for the message.
func (m *Opaque) GetHeader() *header.Header {
	return &m.Header
}

// GetReader returns the reader containing the body of the message.
func (m *Opaque) GetReader() io.Reader {
	return m.Reader
}

// SetTranscoding makes WriteTo use the given Transcoding in place of the one
// registered for the Content-transfer-encoding. Use this to apply custom
// quoted-printable options from transfer.QuotedPrintableTranscoding.
func (m *Opaque) SetTranscoding(tc transfer.Transcoding) {
	m.tc = &tc
}

// countingWriter counts the bytes that actually reach the destination.
type countingWriter struct {
	w     io.Writer
	total int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.total += int64(n)
	return n, err
}

// WriteTo writes the Opaque header and body to the destination io.Writer and
// returns the number of bytes written to it.
//
// Unless the message is already encoded, the body is converted from UTF-8 to
// the charset named in a text/* Content-type and then has the
// Content-transfer-encoding applied as it is written.
//
// This can only be safely called once as it will consume the io.Reader.
func (m *Opaque) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	if _, err := m.Header.WriteTo(cw); err != nil {
		return cw.total, err
	}

	if m.Reader == nil {
		return cw.total, nil
	}

	if m.encoded {
		_, err := io.Copy(cw, m.Reader)
		return cw.total, err
	}

	tw, cs, err := m.bodyWriter(cw)
	if err != nil {
		return cw.total, err
	}

	dst := io.Writer(tw)
	if cs != nil {
		dst = cs
	}

	_, err = io.Copy(dst, m.Reader)

	// the charset encoder must flush into the transfer encoder first
	if c, isCloser := cs.(io.Closer); isCloser {
		err = errors.Join(err, c.Close())
	}
	err = errors.Join(err, tw.Close())

	return cw.total, err
}

// bodyWriter builds the encoding chain for the body. The first writer returned
// is the transfer encoder. The second is the charset encoder feeding it, or nil
// if no charset conversion is needed.
func (m *Opaque) bodyWriter(w io.Writer) (io.WriteCloser, io.Writer, error) {
	var tw io.WriteCloser
	if m.tc != nil {
		tw = m.tc.Encoder(w)
	} else {
		cte, _ := m.GetTransferEncoding()
		tw = transfer.ApplyTransferEncoding(cte, w)
	}

	mt, params, err := m.GetMediaType()
	if err != nil || !strings.HasPrefix(mt, "text/") || transfer.IsUTF8Compatible(params["charset"]) {
		return tw, nil, nil
	}

	cs, err := transfer.NewCharsetEncoder(params["charset"], tw)
	if err != nil {
		_ = tw.Close()
		return nil, nil, err
	}

	return tw, cs, nil
}
