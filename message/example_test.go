package message_test

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/zostay/go-qpstream/message"
	"github.com/zostay/go-qpstream/message/transfer"
)

func ExampleNewText() {
	body := strings.NewReader("Voilà, the meeting moved to 15h.\r\n.\r\n")

	m, err := message.NewText("iso-8859-1", transfer.QuotedPrintable, body)
	if err != nil {
		panic(err)
	}

	if err := m.SetTo("sterling@example.com"); err != nil {
		panic(err)
	}
	m.SetSubject("Bonjour")
	m.SetDate(time.Date(2023, time.March, 14, 15, 9, 26, 0, time.UTC))

	buf := &bytes.Buffer{}
	if _, err := m.WriteTo(buf); err != nil {
		panic(err)
	}

	fmt.Print(strings.ReplaceAll(buf.String(), "\r\n", "\n"))

	// Output:
	// MIME-Version: 1.0
	// Content-type: text/plain; charset=iso-8859-1
	// Content-transfer-encoding: quoted-printable
	// To: sterling@example.com
	// Subject: Bonjour
	// Date: Tue, 14 Mar 2023 15:09:26 +0000
	//
	// Voil=E0, the meeting moved to 15h.
	// ..
}
