package qp_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-qpstream/qp"
)

func TestAsyncWriter(t *testing.T) {
	t.Parallel()

	chunks := []string{".start", "\r", "\n.next=", strings.Repeat("x", 100), "\r\nend"}

	want := writeAll(t, chunks)

	buf := &bytes.Buffer{}
	qw, err := qp.NewWriter(buf)
	require.NoError(t, err)

	aw := qp.NewAsyncWriter(context.Background(), qw)
	for _, c := range chunks {
		aw.WriteAsync([]byte(c))
	}
	aw.FlushAsync()
	require.NoError(t, aw.Close())

	assert.Equal(t, want, buf.String())
}

func TestAsyncWriter_Error(t *testing.T) {
	t.Parallel()

	qw, err := qp.NewWriter(brokenWriter{}, qp.WithBufferSize(qp.MinBufferSize))
	require.NoError(t, err)

	aw := qp.NewAsyncWriter(context.Background(), qw)
	aw.WriteAsync([]byte(strings.Repeat("a", 100)))
	aw.WriteAsync([]byte("more"))
	assert.ErrorIs(t, aw.Wait(), errBroken)
	assert.ErrorIs(t, aw.Close(), errBroken)
}

func TestAsyncWriter_Cancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf := &bytes.Buffer{}
	qw, err := qp.NewWriter(buf)
	require.NoError(t, err)

	aw := qp.NewAsyncWriter(ctx, qw)
	aw.WriteAsync([]byte("never"))
	assert.ErrorIs(t, aw.Wait(), context.Canceled)
	assert.Equal(t, "", buf.String())
}

type brokenCloser struct {
	brokenWriter
	closed bool
}

func (b *brokenCloser) Close() error {
	b.closed = true
	return nil
}

func TestAsyncWriter_CloseAfterError(t *testing.T) {
	t.Parallel()

	sink := &brokenCloser{}
	qw, err := qp.NewWriter(sink, qp.WithBufferSize(qp.MinBufferSize))
	require.NoError(t, err)

	aw := qp.NewAsyncWriter(context.Background(), qw)
	aw.WriteAsync([]byte(strings.Repeat("a", 100)))
	assert.ErrorIs(t, aw.Close(), errBroken)
	assert.True(t, sink.closed)
}

func TestAsyncWriter_CloseAfterCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	cr := &closeRecorder{}
	qw, err := qp.NewWriter(cr)
	require.NoError(t, err)

	aw := qp.NewAsyncWriter(ctx, qw)
	aw.WriteAsync([]byte("kept"))
	require.NoError(t, aw.Wait())

	cancel()
	aw.WriteAsync([]byte("dropped"))

	err = aw.Close()
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, cr.closed)
	assert.Equal(t, "kept", cr.String())
}
