package transfer_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-qpstream/message/transfer"
)

func TestNewCharsetEncoder(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	w, err := transfer.NewCharsetEncoder("ISO-8859-1", buf)
	require.NoError(t, err)

	_, err = io.WriteString(w, "café")
	require.NoError(t, err)
	if c, isCloser := w.(io.Closer); isCloser {
		require.NoError(t, c.Close())
	}

	assert.Equal(t, "caf\xe9", buf.String())
}

func TestNewCharsetEncoder_UTF8(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	w, err := transfer.NewCharsetEncoder("UTF-8", buf)
	require.NoError(t, err)
	assert.Same(t, buf, w)
}

func TestNewCharsetDecoder(t *testing.T) {
	t.Parallel()

	r, err := transfer.NewCharsetDecoder("iso-8859-1", strings.NewReader("caf\xe9"))
	require.NoError(t, err)

	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "café", string(b))
}

func TestCharset_Unknown(t *testing.T) {
	t.Parallel()

	_, err := transfer.NewCharsetEncoder("x-no-such-charset", io.Discard)
	assert.Error(t, err)

	_, err = transfer.NewCharsetDecoder("x-no-such-charset", strings.NewReader(""))
	assert.Error(t, err)
}
