package qp

// invalidHex marks a byte that is not a hex digit in hexDecode.
const invalidHex = 0xFF

var hexDecode = func() (t [256]byte) {
	for i := range t {
		t[i] = invalidHex
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = byte(c - '0')
	}
	for c := 'A'; c <= 'F'; c++ {
		t[c] = byte(c-'A') + 10
		t[c+'a'-'A'] = byte(c-'A') + 10
	}
	return t
}()

// decodeState records how much of an escape was left over by the previous
// call to DecodeBytes.
type decodeState int

const (
	stateNone       decodeState = iota // nothing pending
	stateEquals                        // saw "=" and nothing else
	stateFirstDigit                    // saw "=" and one more byte, held in pending
)

// Decoder is the buffer-level quoted-printable decoder. The zero value is
// ready to use.
type Decoder struct {
	state   decodeState
	pending byte
}

// Pending returns true if the previous call to DecodeBytes ended part way
// through an escape sequence.
func (d *Decoder) Pending() bool {
	return d.state != stateNone
}

// Reset discards any carry-over state.
func (d *Decoder) Reset() {
	d.state = stateNone
	d.pending = 0
}

// DecodeBytes decodes p in place and returns the number of decoded bytes now
// at the front of p. The result is never larger than len(p).
//
// An escape that is cut off at the end of p is remembered and finished by the
// next call, so input may be fed in arbitrary pieces. A soft line break
// produces no output.
//
// If an escape holds anything other than CRLF or two hex digits, a
// *FormatError is returned. The contents of p are then undefined.
func (d *Decoder) DecodeBytes(p []byte) (int, error) {
	r, w := 0, 0

	switch d.state {
	case stateEquals:
		switch len(p) {
		case 0:
			return 0, nil
		case 1:
			d.state, d.pending = stateFirstDigit, p[0]
			return 0, nil
		}

		c, ok, err := d.unit(p[0], p[1])
		if err != nil {
			return 0, err
		}
		if ok {
			p[w] = c
			w++
		}
		r = 2

	case stateFirstDigit:
		if len(p) == 0 {
			return 0, nil
		}

		c, ok, err := d.unit(d.pending, p[0])
		if err != nil {
			return 0, err
		}
		if ok {
			p[w] = c
			w++
		}
		r = 1
	}

	d.state, d.pending = stateNone, 0

	// w <= r holds throughout, so writes never clobber unread input
	for r < len(p) {
		c := p[r]
		if c != '=' {
			p[w] = c
			w++
			r++
			continue
		}

		switch len(p) - r {
		case 1:
			d.state = stateEquals
			return w, nil
		case 2:
			d.state, d.pending = stateFirstDigit, p[r+1]
			return w, nil
		}

		c, ok, err := d.unit(p[r+1], p[r+2])
		if err != nil {
			return w, err
		}
		if ok {
			p[w] = c
			w++
		}
		r += 3
	}

	return w, nil
}

// unit resolves the two bytes following an "=". It returns false when they are
// a soft line break.
func (d *Decoder) unit(a, b byte) (byte, bool, error) {
	if a == '\r' && b == '\n' {
		return 0, false, nil
	}

	hi, lo := hexDecode[a], hexDecode[b]
	if hi == invalidHex {
		d.Reset()
		return 0, false, &FormatError{Value: a}
	}
	if lo == invalidHex {
		d.Reset()
		return 0, false, &FormatError{Value: b}
	}

	return hi<<4 | lo, true, nil
}
