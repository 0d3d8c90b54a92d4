package qp_test

import (
	"bytes"
	"io"
	"math/rand"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-qpstream/qp"
)

func roundTrip(t *testing.T, in []byte, opts ...qp.Option) []byte {
	t.Helper()

	enc := &bytes.Buffer{}
	qw, err := qp.NewWriter(enc, opts...)
	require.NoError(t, err)

	_, err = qw.Write(in)
	require.NoError(t, err)
	require.NoError(t, qw.Close())

	qr := qp.NewReader(iotest.HalfReader(bytes.NewReader(qp.Unstuff(enc.Bytes()))))
	out, err := io.ReadAll(qr)
	require.NoError(t, err)
	return out
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2045))

	optSets := [][]qp.Option{
		nil,
		{qp.WithEncodeCRLF()},
		{qp.WithMaxLineLength(20), qp.WithBufferSize(qp.MinBufferSize)},
		{qp.WithMaxLineLength(qp.Unlimited)},
	}

	for i := 0; i < 50; i++ {
		in := make([]byte, rng.Intn(2000))
		_, _ = rng.Read(in)

		for _, opts := range optSets {
			assert.Equal(t, in, roundTrip(t, in, opts...))
		}
	}
}

func TestRoundTrip_Text(t *testing.T) {
	t.Parallel()

	in := []byte(".leading dot\r\n.\r\n..\r\nfoo = bar\tbaz \r\n" + qpDecoded)
	assert.Equal(t, in, roundTrip(t, in))
	assert.Equal(t, in, roundTrip(t, in, qp.WithEncodeCRLF()))
}

func TestRoundTrip_NoDots(t *testing.T) {
	t.Parallel()

	// without any dots, the encoded data decodes as-is
	in := []byte("Dear reader,\r\nthe price is 5=6\xe2\x82\xac")

	enc := &bytes.Buffer{}
	qw, err := qp.NewWriter(enc)
	require.NoError(t, err)
	_, err = qw.Write(in)
	require.NoError(t, err)
	require.NoError(t, qw.Close())

	out, err := io.ReadAll(qp.NewReader(enc))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
