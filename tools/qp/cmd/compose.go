package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zostay/go-qpstream/message"
	"github.com/zostay/go-qpstream/message/header"
	"github.com/zostay/go-qpstream/message/transfer"
)

func newComposeCmd() *cobra.Command {
	var (
		ef       encodeFlags
		from     string
		to       []string
		cc       []string
		subject  string
		date     string
		charset  string
		encoding string
	)

	composeCmd := &cobra.Command{
		Use:   "compose [file]",
		Short: "Build a complete text message with an encoded body",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()

			m, err := message.NewText(charset, encoding, in)
			if err != nil {
				return err
			}

			if from != "" {
				if err := m.SetFrom(from); err != nil {
					return err
				}
			}

			if len(to) > 0 {
				if err := m.SetTo(to...); err != nil {
					return err
				}
			}

			if len(cc) > 0 {
				if err := m.SetCc(cc...); err != nil {
					return err
				}
			}

			if subject != "" {
				m.SetSubject(subject)
			}

			when := time.Now()
			if date != "" {
				when, err = header.ParseTime(date)
				if err != nil {
					return err
				}
			}
			m.SetDate(when)

			cte, _ := m.GetTransferEncoding()
			if strings.EqualFold(strings.TrimSpace(cte), transfer.QuotedPrintable) {
				tc, err := transfer.QuotedPrintableTranscoding(ef.options()...)
				if err != nil {
					return err
				}
				m.SetTranscoding(tc)
			}

			_, err = m.WriteTo(cmd.OutOrStdout())
			return err
		},
	}

	flags := composeCmd.Flags()
	ef.addTo(flags)
	flags.StringVarP(&from, "from", "f", "", "the From address")
	flags.StringArrayVarP(&to, "to", "t", nil, "a To address list, may be repeated")
	flags.StringArrayVar(&cc, "cc", nil, "a Cc address list, may be repeated")
	flags.StringVarP(&subject, "subject", "s", "", "the Subject")
	flags.StringVarP(&date, "date", "d", "", "the Date, in nearly any format (default now)")
	flags.StringVar(&charset, "charset", message.DefaultCharset, "the charset of the body")
	flags.StringVarP(&encoding, "encoding", "e", message.DefaultTransferEncoding, "the Content-transfer-encoding of the body")

	return composeCmd
}
