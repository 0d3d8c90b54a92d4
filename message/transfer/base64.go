package transfer

import (
	"encoding/base64"
	"io"
)

const defaultBase64LineLength = 76

var defaultBase64LineBreak = []byte("\r\n")

// lineWriter inserts a line break after every so many bytes written through
// it.
type lineWriter struct {
	every int
	acc   int
	lbr   []byte
	w     io.Writer
}

func (lw *lineWriter) Write(b []byte) (int, error) {
	n := 0
	for len(b) > 0 {
		room := lw.every - lw.acc
		if room > len(b) {
			room = len(b)
		}

		wn, err := lw.w.Write(b[:room])
		n += wn
		if err != nil {
			return n, err
		}

		lw.acc += room
		b = b[room:]

		if lw.acc == lw.every {
			if _, err := lw.w.Write(lw.lbr); err != nil {
				return n, err
			}
			lw.acc = 0
		}
	}

	return n, nil
}

// finish ends a partial last line.
func (lw *lineWriter) finish() error {
	if lw.acc == 0 {
		return nil
	}
	lw.acc = 0
	_, err := lw.w.Write(lw.lbr)
	return err
}

// base64Writer pairs the standard library encoder with the lineWriter it
// writes to, so that Close can flush both.
type base64Writer struct {
	enc io.WriteCloser
	lw  *lineWriter
}

func (bw *base64Writer) Write(b []byte) (int, error) {
	return bw.enc.Write(b)
}

// Close writes any remaining partial block with padding and ends the last line.
// It does not close the destination.
func (bw *base64Writer) Close() error {
	if err := bw.enc.Close(); err != nil {
		return err
	}
	return bw.lw.finish()
}

// NewBase64Encoder will translate all bytes written to the returned
// io.WriteCloser into base64 encoding and write those to the give io.Writer.
// Output lines are 76 characters long and end with CRLF.
func NewBase64Encoder(w io.Writer) io.WriteCloser {
	lw := &lineWriter{
		every: defaultBase64LineLength,
		lbr:   defaultBase64LineBreak,
		w:     w,
	}
	return &base64Writer{base64.NewEncoder(base64.StdEncoding, lw), lw}
}

// NewBase64Decoder will translate all bytes read from the given io.Reader as
// base64 and return the binary data to the returned io.Reader. Line breaks in
// the input are ignored.
func NewBase64Decoder(r io.Reader) io.Reader {
	return base64.NewDecoder(base64.StdEncoding, r)
}
