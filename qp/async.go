package qp

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// AsyncWriter queues writes to a Writer on a background goroutine. Queued
// buffers are encoded one at a time in the order they were queued, so all the
// Writer's carry-over rules still apply. Once a write fails, the remaining
// queued writes are skipped and the first error is reported by Wait and Close.
//
// AsyncWriter is meant to be driven from a single goroutine, like Writer.
type AsyncWriter struct {
	w   *Writer
	g   *errgroup.Group
	ctx context.Context
}

// NewAsyncWriter returns an AsyncWriter feeding w. Cancelling ctx causes
// writes that have not yet started to be skipped with the context's error.
func NewAsyncWriter(ctx context.Context, w *Writer) *AsyncWriter {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(1)
	return &AsyncWriter{w: w, g: g, ctx: gctx}
}

// WriteAsync queues p to be encoded. The caller must not modify p until Wait
// or Close has returned. This blocks while an earlier write is still running.
func (a *AsyncWriter) WriteAsync(p []byte) {
	a.g.Go(func() error {
		if err := a.ctx.Err(); err != nil {
			return err
		}
		_, err := a.w.Write(p)
		return err
	})
}

// FlushAsync queues a Flush of the underlying Writer.
func (a *AsyncWriter) FlushAsync() {
	a.g.Go(func() error {
		if err := a.ctx.Err(); err != nil {
			return err
		}
		return a.w.Flush()
	})
}

// Wait blocks until every queued operation has finished and returns the first
// error encountered. Operations queued after Wait returns are skipped with
// context.Canceled, so Wait is normally followed only by Close.
func (a *AsyncWriter) Wait() error {
	return a.g.Wait()
}

// Close waits for queued operations and then closes the Writer, even if one of
// them failed. Errors from both steps are returned together.
func (a *AsyncWriter) Close() error {
	werr := a.g.Wait()
	cerr := a.w.Close()
	if werr != nil && errors.Is(cerr, werr) {
		return cerr
	}
	return errors.Join(werr, cerr)
}
