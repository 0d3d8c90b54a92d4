package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/zostay/go-qpstream/message/transfer"
	"github.com/zostay/go-qpstream/qp"
)

func newEncodeCmd() *cobra.Command {
	var (
		ef      encodeFlags
		charset string
	)

	encodeCmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a file or standard input as quoted-printable",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()

			qw, err := qp.NewWriter(cmd.OutOrStdout(), append(ef.options(), qp.LeaveOpen())...)
			if err != nil {
				return err
			}

			cw, err := transfer.NewCharsetEncoder(charset, qw)
			if err != nil {
				return err
			}

			if _, err := io.Copy(cw, in); err != nil {
				return err
			}

			if !transfer.IsUTF8Compatible(charset) {
				if err := closeIfCloser(cw); err != nil {
					return err
				}
			}

			return qw.Close()
		},
	}

	ef.addTo(encodeCmd.Flags())
	encodeCmd.Flags().StringVar(&charset, "charset", "", "convert the UTF-8 input to this charset before encoding")

	return encodeCmd
}
