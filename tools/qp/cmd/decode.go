package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/zostay/go-qpstream/message/transfer"
	"github.com/zostay/go-qpstream/qp"
)

func newDecodeCmd() *cobra.Command {
	var charset string

	decodeCmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode quoted-printable from a file or standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()

			r, err := transfer.NewCharsetDecoder(charset, qp.NewReader(in))
			if err != nil {
				return err
			}

			_, err = io.Copy(cmd.OutOrStdout(), r)
			return err
		},
	}

	decodeCmd.Flags().StringVar(&charset, "charset", "", "convert the decoded text from this charset to UTF-8")

	return decodeCmd
}
