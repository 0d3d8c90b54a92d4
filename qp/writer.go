package qp

import (
	"errors"
	"io"
)

var crOnly = []byte{'\r'}

// Writer is an io.WriteCloser that quoted-printable encodes everything written
// to it and writes the result to an underlying io.Writer. Output is buffered;
// call Flush or Close to make sure it all reaches the underlying writer.
//
// Writer does not own the underlying io.Writer, except that Close will close it
// when it is an io.Closer and LeaveOpen was not given.
type Writer struct {
	w         io.Writer
	enc       *Encoder
	leaveOpen bool

	// pendingCR is set when the last Write ended in "\r", which might be the
	// first half of a CRLF pair.
	pendingCR bool
	closed    bool

	// err is the first error from the underlying writer. Buffered output is
	// lost once it is set.
	err error
}

// NewWriter returns a Writer that encodes to w. It returns ErrLineLength or
// ErrBufferSize when the options are out of range.
func NewWriter(w io.Writer, opts ...Option) (*Writer, error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Writer{
		w:         w,
		enc:       newEncoder(&c),
		leaveOpen: c.leaveOpen,
	}, nil
}

// Reset discards the Writer's state and makes it equivalent to its original
// state from NewWriter, but writing to w instead. Unflushed output is lost.
func (qw *Writer) Reset(w io.Writer) {
	qw.w = w
	qw.enc.Reset()
	qw.pendingCR = false
	qw.closed = false
	qw.err = nil
}

// Write encodes p. It always consumes all of p unless the underlying writer
// returns an error. Errors from the underlying writer are sticky.
func (qw *Writer) Write(p []byte) (int, error) {
	if qw.closed {
		return 0, ErrClosed
	}

	if qw.err != nil {
		return 0, qw.err
	}

	n := 0
	if qw.pendingCR && len(p) > 0 {
		qw.pendingCR = false
		if p[0] == '\n' {
			if err := qw.encode(literalCRLF); err != nil {
				return 0, err
			}
			n, p = 1, p[1:]
		} else if err := qw.encode(crOnly); err != nil {
			return 0, err
		}
	}

	if len(p) > 0 && p[len(p)-1] == '\r' {
		if err := qw.encode(p[:len(p)-1]); err != nil {
			return n, err
		}
		qw.pendingCR = true
		return n + len(p), nil
	}

	if err := qw.encode(p); err != nil {
		return n, err
	}

	return n + len(p), nil
}

// encode runs p through the encoder, flushing whenever the output buffer
// fills.
func (qw *Writer) encode(p []byte) error {
	if qw.err != nil {
		return qw.err
	}

	for len(p) > 0 {
		n := qw.enc.EncodeBytes(p)
		p = p[n:]
		if len(p) == 0 {
			break
		}

		if n == 0 && len(qw.enc.Buffered()) == 0 {
			return io.ErrShortBuffer
		}

		if err := qw.flush(); err != nil {
			return err
		}
	}

	return nil
}

// Flush writes any buffered output to the underlying writer. A trailing "\r"
// from the last Write is still held back in case the next Write begins with
// "\n".
func (qw *Writer) Flush() error {
	if qw.closed {
		return ErrClosed
	}
	return qw.flush()
}

func (qw *Writer) flush() error {
	if qw.err != nil {
		return qw.err
	}

	buf := qw.enc.Buffered()
	if len(buf) == 0 {
		return nil
	}

	n, err := qw.w.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}

	qw.enc.Discard()
	qw.err = err
	return err
}

// Close encodes any held back "\r", flushes all output, and then closes the
// underlying writer if it is an io.Closer and LeaveOpen was not given. The
// underlying writer is closed even if an earlier write to it failed, in which
// case that error is returned too. Calling Close more than once returns
// ErrClosed.
func (qw *Writer) Close() error {
	if qw.closed {
		return ErrClosed
	}
	qw.closed = true

	if qw.pendingCR {
		qw.pendingCR = false
		_ = qw.encode(crOnly)
	}

	err := qw.flush()

	if c, isCloser := qw.w.(io.Closer); isCloser && !qw.leaveOpen {
		err = errors.Join(err, c.Close())
	}

	return err
}
