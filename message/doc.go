// Package message builds single-part email messages whose bodies are streamed
// through a charset conversion and a Content-transfer-encoding on the way out.
//
// You can build a message by hand with an Opaque, through a Buffer, or with the
// NewText shortcut:
//
//	m, err := message.NewText("iso-8859-1", transfer.QuotedPrintable, body)
//	if err != nil {
//	  panic(err)
//	}
//
//	m.SetSubject("Bonjour")
//	_, err = m.WriteTo(os.Stdout)
//
// The body given is always UTF-8 text without any transfer encoding applied.
// Use OpaqueAlreadyEncoded if you have a body that is ready to go as-is.
package message
