// Package qp implements a streaming quoted-printable transcoder as described by
// RFC 2045, with the SMTP transparency rule from RFC 2821 section 4.5.2 applied
// on the way out.
//
// The package is split into two halves. The buffer-level primitives are
// Encoder.EncodeBytes and Decoder.DecodeBytes, which never perform I/O and
// keep a small amount of carry-over state between calls so that escape
// sequences and line folds may straddle buffer boundaries. The stream-level
// types, Writer and Reader, wrap those primitives around an io.Writer or
// io.Reader.
//
// Encoding rules applied by the Encoder, in order of precedence:
//
//   - When the output line is close to the maximum line length, a soft line
//     break ("=\r\n") is inserted before a space, tab, CR, or LF. A soft break
//     is forced anywhere if the next unit would not otherwise fit.
//   - A "." at the start of an output line is doubled.
//   - A CRLF pair is passed through as a line break, or escaped as "=0D=0A"
//     when WithEncodeCRLF is in effect.
//   - Control characters other than tab, "=", and bytes above 126 are escaped
//     as "=XY" using upper case hex digits.
//   - Everything else is copied as-is.
//
// Decoding is done in place, since decoded data is never longer than its
// encoded form. A "=" followed by CRLF is a soft break and decodes to nothing.
// Any other "=" must be followed by two hex digits or decoding fails with a
// *FormatError.
//
// None of the types in this package are safe for concurrent use. AsyncWriter
// provides a thin asynchronous layer over Writer for callers that want to hand
// off buffers without blocking.
package qp
