package transfer

import (
	"io"
	"mime"
	"strings"
)

const (
	None            = ""                 // bytes will be left as-is
	Bit7            = "7bit"             // bytes will be left as-is
	Bit8            = "8bit"             // bytes will be left as-is
	Binary          = "binary"           // bytes will be left as-is
	QuotedPrintable = "quoted-printable" // bytes will be transformed between quoted-printable and binary data
	Base64          = "base64"           // bytes will be transformed between base64 and binary data
)

// Transcoding is a pair of functions that can be used to transform to and from
// a transfer encoding.
type Transcoding struct {
	// Encoder returns an io.WriteCloser, which will encode binary data and
	// write the encoded form to the given io.Writer. You must call Close() on
	// the returned io.WriteCloser when you are finished. Closing it never
	// closes the given io.Writer.
	Encoder func(io.Writer) io.WriteCloser

	// Decoder returns an io.Reader, which will read from the given io.Reader
	// when read and decode the encoded data back into binary form the encoded
	// form.
	Decoder func(io.Reader) io.Reader
}

// AsIsTranscoder is just a shortcut to a no-op encoder/decoder.
var AsIsTranscoder = Transcoding{NewAsIsEncoder, NewAsIsDecoder}

// Transcodings defines the supported Content-transfer-encodings and how to
// handle them. It can be modified to change the global handling of transfer
// encodings. Keys must be lower case.
var Transcodings = map[string]Transcoding{
	None:            AsIsTranscoder,
	Bit7:            AsIsTranscoder,
	Bit8:            AsIsTranscoder,
	Binary:          AsIsTranscoder,
	QuotedPrintable: {NewQuotedPrintableEncoder, NewQuotedPrintableDecoder},
	Base64:          {NewBase64Encoder, NewBase64Decoder},
}

// Lookup returns the Transcoding registered for the given
// Content-transfer-encoding. The name is matched without regard to case or
// surrounding space. It returns false if no Transcoding is registered.
func Lookup(cte string) (Transcoding, bool) {
	tc, hasCode := Transcodings[strings.ToLower(strings.TrimSpace(cte))]
	return tc, hasCode
}

// ApplyTransferEncoding is a helper that returns an io.WriteCloser that will
// write the given Content-transfer-encoding (or just pass data through if no
// encoding is necessary or the encoding is unknown).
//
// You must call Close() on the returned io.WriteCloser when you are finished
// writing. It will not close w.
func ApplyTransferEncoding(cte string, w io.Writer) io.WriteCloser {
	tc, hasCode := Lookup(cte)
	if hasCode {
		return tc.Encoder(w)
	}

	return &writer{w, nil}
}

// ApplyTransferDecoding returns an io.Reader that will modify incoming bytes
// according to the given Content-transfer-encoding. (Or the io.Reader will
// leave the bytes as is if there's no transfer encoding or the transfer
// encoding is one that is interpreted as-is).
//
// The contentType is the value of the Content-type header, if any. A
// "multipart/*" body is never decoded, as RFC 2045 forbids encoding one.
func ApplyTransferDecoding(contentType, cte string, r io.Reader) io.Reader {
	// check to see if the content-type is permitted to have
	// content-transfer-encoding, it's allowed if:
	// |-> Content-type is missing or unreadable
	// |-> Content-type is not a "multipart/*" type
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		if strings.HasPrefix(mt, "multipart/") {
			return r
		}
	}

	tc, hasCode := Lookup(cte)
	if hasCode {
		return tc.Decoder(r)
	}

	return r
}
