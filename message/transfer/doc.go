// Package transfer contains utilities related to encoding and decoding transfer
// encodings, which interpret the Content-transfer-encoding header to apply
// certain 8bit to 7bit encodings. If a Content-transfer-encoding is present,
// only the values of quoted-printable and base64 will actually result in
// changes to the document being encoded or decoded. Other settings such as
// binary, 7bit, or 8bit will result in the bytes being left as-is.
//
// Quoted-printable is handled by the streaming codec in the qp package rather
// than mime/quotedprintable, so the line length and CRLF handling may be tuned
// with QuotedPrintableTranscoding.
//
// For the sake of this module, the term "decoded" means that the content has
// been transformed from the named Content-transfer-encoding to the charset
// encoded form. Meanwhile, "encoded" means that the content has been
// transformed from the charset encoding to the named Content-transfer-encoding.
// NewCharsetEncoder and NewCharsetDecoder take care of the step between the
// charset encoded form and UTF-8.
package transfer
