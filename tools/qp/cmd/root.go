package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zostay/go-qpstream/qp"
)

// NewRootCmd builds the qp command and all its subcommands. Each call returns a
// fresh command tree with its own flag values.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "qp",
		Short:         "Quoted-printable encoding tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newRoundtripCmd())
	rootCmd.AddCommand(newComposeCmd())

	return rootCmd
}

// Execute runs the qp command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// encodeFlags are the encoder settings shared by several commands.
type encodeFlags struct {
	lineLength int
	encodeCRLF bool
	bufferSize int
}

func (f *encodeFlags) addTo(fs *pflag.FlagSet) {
	fs.IntVarP(&f.lineLength, "line-length", "l", qp.DefaultMaxLineLength, "maximum output line length, 0 for unlimited")
	fs.BoolVar(&f.encodeCRLF, "encode-crlf", false, "escape line breaks as =0D=0A, for binary data")
	fs.IntVar(&f.bufferSize, "buffer-size", qp.DefaultBufferSize, "size of the encoder's output buffer")
}

func (f *encodeFlags) options() []qp.Option {
	opts := []qp.Option{
		qp.WithMaxLineLength(f.lineLength),
		qp.WithBufferSize(f.bufferSize),
	}
	if f.encodeCRLF {
		opts = append(opts, qp.WithEncodeCRLF())
	}
	return opts
}

// openInput returns the named file, or the command's standard input when no
// file or "-" is given.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(args[0])
}

// closeIfCloser closes w if it is an io.Closer.
func closeIfCloser(w io.Writer) error {
	if c, isCloser := w.(io.Closer); isCloser {
		return c.Close()
	}
	return nil
}
