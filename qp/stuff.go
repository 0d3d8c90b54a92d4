package qp

// Unstuff reverses the dot-stuffing applied by the Encoder, removing the first
// "." from every line of b that begins with one. This is what an SMTP receiver
// does before handing the body on, so it belongs before decoding whenever the
// encoded data did not pass through a mail server. The work is done in place
// and the shortened slice is returned.
func Unstuff(b []byte) []byte {
	w := 0
	lineStart := true
	var prev byte
	for _, c := range b {
		if lineStart && c == '.' {
			lineStart = false
			prev = c
			continue
		}

		b[w] = c
		w++
		lineStart = prev == '\r' && c == '\n'
		prev = c
	}
	return b[:w]
}
