package qp

import (
	"errors"
	"io"
)

// Reader is an io.Reader that decodes quoted-printable data read from an
// underlying io.Reader. Decoding happens in place in the buffer handed to Read,
// so no extra buffering is involved.
type Reader struct {
	r   io.Reader
	dec Decoder
	err error
}

// NewReader returns a Reader that decodes data read from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Reset discards the Reader's state and makes it read from r.
func (qr *Reader) Reset(r io.Reader) {
	qr.r = r
	qr.dec.Reset()
	qr.err = nil
}

// Read fills p with decoded bytes. It returns io.ErrUnexpectedEOF if the input
// ends part way through an escape and a *FormatError if the input is
// malformed. Errors are sticky.
func (qr *Reader) Read(p []byte) (int, error) {
	if qr.err != nil {
		return 0, qr.err
	}

	if len(p) == 0 {
		return 0, nil
	}

	for {
		n, err := qr.r.Read(p)

		m, derr := qr.dec.DecodeBytes(p[:n])
		if derr != nil {
			qr.err = derr
			return m, derr
		}

		if errors.Is(err, io.EOF) && qr.dec.Pending() {
			err = io.ErrUnexpectedEOF
		}

		if err != nil {
			qr.err = err
			return m, err
		}

		// everything read was soft breaks or a partial escape, so go again
		if m > 0 {
			return m, nil
		}
	}
}
