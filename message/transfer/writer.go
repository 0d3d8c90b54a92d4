package transfer

import "io"

// writer is an internal helper that turns any io.Writer into an
// io.WriteCloser. When Closer is nil, Close does nothing, which is how the
// as-is encodings avoid closing the destination.
type writer struct {
	io.Writer
	io.Closer
}

// Close will close the nested closer, if there is one.
func (w *writer) Close() error {
	if w.Closer != nil {
		return w.Closer.Close()
	}
	return nil
}
