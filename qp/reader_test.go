package qp_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-qpstream/qp"
)

const (
	qpEncoded = "J'interdis aux marchands de vanter trop leurs marchandises. Car ils se font=\r\n vite p=C3=A9dagogues et t'enseignent comme but ce qui n'est par essence qu=\r\n'un moyen, et te trompant ainsi sur la route =C3=A0 suivre les voil=C3=A0 bi=\r\nent=C3=B4t qui te d=C3=A9gradent, car si leur musique est vulgaire ils te f=\r\nabriquent pour te la vendre une =C3=A2me vulgaire."
	qpDecoded = "J'interdis aux marchands de vanter trop leurs marchandises. Car ils se font vite pédagogues et t'enseignent comme but ce qui n'est par essence qu'un moyen, et te trompant ainsi sur la route à suivre les voilà bientôt qui te dégradent, car si leur musique est vulgaire ils te fabriquent pour te la vendre une âme vulgaire."
)

func TestReader(t *testing.T) {
	t.Parallel()

	qr := qp.NewReader(strings.NewReader(qpEncoded))
	b, err := io.ReadAll(qr)
	require.NoError(t, err)
	assert.Equal(t, qpDecoded, string(b))
}

func TestReader_OneByte(t *testing.T) {
	t.Parallel()

	qr := qp.NewReader(iotest.OneByteReader(strings.NewReader(qpEncoded)))
	b, err := io.ReadAll(qr)
	require.NoError(t, err)
	assert.Equal(t, qpDecoded, string(b))
}

func TestReader_DataErr(t *testing.T) {
	t.Parallel()

	qr := qp.NewReader(iotest.DataErrReader(strings.NewReader("a=3Db")))
	b, err := io.ReadAll(qr)
	require.NoError(t, err)
	assert.Equal(t, "a=b", string(b))
}

func TestReader_Truncated(t *testing.T) {
	t.Parallel()

	qr := qp.NewReader(strings.NewReader("abc=4"))
	b, err := io.ReadAll(qr)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "abc", string(b))
}

func TestReader_Invalid(t *testing.T) {
	t.Parallel()

	qr := qp.NewReader(strings.NewReader("abc=XYdef"))
	_, err := io.ReadAll(qr)
	assert.ErrorIs(t, err, qp.ErrInvalidHexDigit)

	// sticky
	_, err = qr.Read(make([]byte, 10))
	assert.ErrorIs(t, err, qp.ErrInvalidHexDigit)

	qr.Reset(bytes.NewReader([]byte("ok")))
	b, err := io.ReadAll(qr)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(b))
}

func TestReader_OnlySoftBreaks(t *testing.T) {
	t.Parallel()

	qr := qp.NewReader(iotest.HalfReader(strings.NewReader("=\r\n=\r\n=\r\nx")))
	b, err := io.ReadAll(qr)
	require.NoError(t, err)
	assert.Equal(t, "x", string(b))
}
