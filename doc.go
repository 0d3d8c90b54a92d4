// Package qpstream is a streaming quoted-printable transcoder with just enough
// of an email library around it to put the encoded output to work.
//
// The heart of it is the qp package. It converts bytes to and from the
// quoted-printable Content-transfer-encoding of RFC 2045 one buffer at a time,
// so neither side ever needs the whole message in memory. The encoder folds
// lines with soft line breaks to keep them under a configurable length and
// doubles any period found at the start of a line so the output can be handed
// straight to an SMTP DATA command. The decoder works in place and carries a
// partial escape sequence from one buffer into the next.
//
// Above that, the message/transfer package registers the quoted-printable
// transcoder next to base64 and the identity encodings and handles charset
// conversion. The message/header package reads and writes the handful of header
// fields a single-part text message needs. The message package ties them
// together, so a message.Opaque streams its body through a charset conversion
// and then the transfer encoding as it is written.
//
// Finally, tools/qp is a command line program for encoding, decoding, checking
// round-trips, and composing complete text messages.
package qpstream
