package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-qpstream/qp"
)

var (
	// ErrRoundTripMismatch is returned by the roundtrip command when the
	// decoded output differs from the input.
	ErrRoundTripMismatch = errors.New("round-trip output differs from input")

	// ErrLineTooLong is returned by the roundtrip command when an encoded line
	// is longer than the configured maximum.
	ErrLineTooLong = errors.New("encoded line exceeds the maximum line length")
)

func newRoundtripCmd() *cobra.Command {
	var (
		ef   encodeFlags
		show bool
	)

	roundtripCmd := &cobra.Command{
		Use:   "roundtrip [file]",
		Short: "Encode and decode input, showing a diff if it does not survive",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()

			orig, err := io.ReadAll(in)
			if err != nil {
				return err
			}

			enc := &bytes.Buffer{}
			qw, err := qp.NewWriter(enc, ef.options()...)
			if err != nil {
				return err
			}

			if _, err := qw.Write(orig); err != nil {
				return err
			}
			if err := qw.Close(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if show {
				_, _ = fmt.Fprintf(out, "%s\n", enc.Bytes())
			}

			longest := longestLine(enc.Bytes())

			// the dots the encoder stuffed are undone, as a mail server would
			encoded := bytes.Clone(enc.Bytes())
			decoded, err := io.ReadAll(qp.NewReader(bytes.NewReader(qp.Unstuff(encoded))))
			if err != nil {
				return fmt.Errorf("unable to decode encoded output: %w", err)
			}

			if !bytes.Equal(orig, decoded) {
				dmp := diffmatchpatch.New()
				diffs := dmp.DiffMain(string(orig), string(decoded), false)
				_, _ = fmt.Fprintln(out, dmp.DiffPrettyText(diffs))
				return ErrRoundTripMismatch
			}

			if ef.lineLength != qp.Unlimited && longest > ef.lineLength {
				return fmt.Errorf("%w: %d > %d", ErrLineTooLong, longest, ef.lineLength)
			}

			_, _ = fmt.Fprintf(out, "ok: %d bytes in, %d bytes encoded, longest line %d\n", len(orig), enc.Len(), longest)
			return nil
		},
	}

	ef.addTo(roundtripCmd.Flags())
	roundtripCmd.Flags().BoolVarP(&show, "show", "s", false, "print the encoded form too")

	return roundtripCmd
}

// longestLine returns the length of the longest CRLF terminated line in b, not
// counting the CRLF.
func longestLine(b []byte) int {
	longest := 0
	for _, line := range bytes.Split(b, []byte("\r\n")) {
		if len(line) > longest {
			longest = len(line)
		}
	}
	return longest
}
