package qp

const upperHex = "0123456789ABCDEF"

var (
	softBreak    = []byte("=\r\n")
	literalCRLF  = []byte("\r\n")
	stuffedPoint = []byte("..")
)

// Encoder is the buffer-level quoted-printable encoder. It appends encoded
// output to an internal buffer of fixed capacity, which the caller drains with
// Buffered and Discard. Writer does this for you.
type Encoder struct {
	maxLineLength int
	encodeCRLF    bool

	lineLength int
	buf        []byte
}

// NewEncoder returns an Encoder configured by the given options. It returns
// ErrLineLength or ErrBufferSize if the options are out of range.
func NewEncoder(opts ...Option) (*Encoder, error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return newEncoder(&c), nil
}

func newEncoder(c *config) *Encoder {
	return &Encoder{
		maxLineLength: c.maxLineLength,
		encodeCRLF:    c.encodeCRLF,
		buf:           make([]byte, 0, c.bufferSize),
	}
}

// LineLength returns the length of the output line currently being built.
func (e *Encoder) LineLength() int {
	return e.lineLength
}

// Buffered returns the encoded bytes that have not yet been discarded. The
// slice is only valid until the next call to EncodeBytes or Discard.
func (e *Encoder) Buffered() []byte {
	return e.buf
}

// Discard empties the output buffer. The line length is kept, since the
// discarded bytes are assumed to have been written somewhere.
func (e *Encoder) Discard() {
	e.buf = e.buf[:0]
}

// Reset empties the output buffer and starts a new output line.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.lineLength = 0
}

// EncodeBytes encodes as much of p as will fit into the output buffer and
// returns the number of bytes of p consumed. When this is less than len(p), the
// buffer is full and must be drained before encoding the rest. Encoded units
// are never split, so a CRLF pair is consumed together or not at all. When
// CRLF is encoded, the pair becomes two separate escapes that may be folded
// between.
func (e *Encoder) EncodeBytes(p []byte) int {
	cur := 0
	for cur < len(p) {
		c := p[cur]

		crlf := !e.encodeCRLF && c == '\r' && cur+1 < len(p) && p[cur+1] == '\n'
		width := e.unitWidth(c, crlf)

		if e.shouldFold(c, width) {
			if !e.fits(len(softBreak)) {
				return cur
			}
			e.buf = append(e.buf, softBreak...)
			e.lineLength = 0
		}

		switch {
		case e.lineLength == 0 && c == '.':
			if !e.fits(len(stuffedPoint)) {
				return cur
			}
			e.buf = append(e.buf, stuffedPoint...)
			e.lineLength += len(stuffedPoint)

		case crlf:
			if !e.fits(len(literalCRLF)) {
				return cur
			}
			e.buf = append(e.buf, literalCRLF...)
			e.lineLength = 0
			cur++

		case needsEscape(c):
			if !e.fits(3) {
				return cur
			}
			e.buf = append(e.buf, '=', upperHex[c>>4], upperHex[c&0x0F])
			e.lineLength += 3

		default:
			if !e.fits(1) {
				return cur
			}
			e.buf = append(e.buf, c)
			e.lineLength++
		}

		cur++
	}

	return cur
}

// unitWidth is the number of columns the unit starting with c occupies on the
// current output line.
func (e *Encoder) unitWidth(c byte, crlf bool) int {
	switch {
	case crlf:
		return 0
	case needsEscape(c):
		return 3
	}
	return 1
}

// shouldFold decides whether a soft break goes in ahead of c. Whitespace is
// preferred once the line is within foldMargin of the limit. Anything else only
// folds when its unit plus the "=" of a later soft break would overflow.
func (e *Encoder) shouldFold(c byte, width int) bool {
	if e.maxLineLength == Unlimited || e.lineLength == 0 {
		return false
	}

	if e.lineLength+foldMargin >= e.maxLineLength && isFoldPoint(c) {
		return true
	}

	return width > 0 && e.lineLength+width+1 > e.maxLineLength
}

func (e *Encoder) fits(n int) bool {
	return cap(e.buf)-len(e.buf) >= n
}

func isFoldPoint(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func needsEscape(c byte) bool {
	return (c < 32 && c != '\t') || c == '=' || c > 126
}
