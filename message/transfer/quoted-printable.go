package transfer

import (
	"io"

	"github.com/zostay/go-qpstream/qp"
)

// NewQuotedPrintableEncoder will transform all bytes written to the returned
// io.WriteCloser into quoted-printable form and write them to the given
// io.Writer. Lines are folded at qp.DefaultMaxLineLength and line breaks are
// kept as line breaks. Closing the returned io.WriteCloser flushes the encoder
// but leaves w open.
func NewQuotedPrintableEncoder(w io.Writer) io.WriteCloser {
	qpw, err := qp.NewWriter(w, qp.LeaveOpen())
	if err != nil {
		// the default options always validate
		panic(err)
	}
	return qpw
}

// NewQuotedPrintableDecoder will read bytes from the given io.Reader and return
// them in the returned io.Reader after decoding them from quoted-printable
// format.
func NewQuotedPrintableDecoder(r io.Reader) io.Reader {
	return qp.NewReader(r)
}

// QuotedPrintableTranscoding returns a Transcoding for quoted-printable that
// applies the given options to every encoder it creates. It returns an error if
// the options are out of range. The qp.LeaveOpen option is always added.
//
// For example, to treat a body as binary data with short lines:
//
//	tc, err := transfer.QuotedPrintableTranscoding(
//		qp.WithEncodeCRLF(),
//		qp.WithMaxLineLength(64),
//	)
func QuotedPrintableTranscoding(opts ...qp.Option) (Transcoding, error) {
	opts = append(opts[:len(opts):len(opts)], qp.LeaveOpen())

	// validate once up front so the Encoder func cannot fail
	if _, err := qp.NewEncoder(opts...); err != nil {
		return Transcoding{}, err
	}

	return Transcoding{
		Encoder: func(w io.Writer) io.WriteCloser {
			qpw, _ := qp.NewWriter(w, opts...)
			return qpw
		},
		Decoder: NewQuotedPrintableDecoder,
	}, nil
}
