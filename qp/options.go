package qp

// Constants related to encoder options.
const (
	// DefaultMaxLineLength is the longest output line the encoder will produce
	// by default, as required by RFC 2045.
	DefaultMaxLineLength = 76

	// Unlimited may be passed to WithMaxLineLength to disable line folding
	// altogether.
	Unlimited = 0

	// MinLineLength is the shortest maximum line length permitted, other than
	// Unlimited. It holds an escape followed by the "=" of a soft break.
	MinLineLength = 4

	// DefaultBufferSize is the initial capacity of the encoder's output
	// buffer.
	DefaultBufferSize = 1024

	// MinBufferSize is the smallest output buffer permitted. It is large
	// enough to hold the widest unit the encoder emits.
	MinBufferSize = 16

	// foldMargin is the room kept at the end of a line when looking for a
	// whitespace folding point.
	foldMargin = 5
)

type config struct {
	maxLineLength int
	encodeCRLF    bool
	bufferSize    int
	leaveOpen     bool
}

var defaultConfig = config{
	maxLineLength: DefaultMaxLineLength,
	encodeCRLF:    false,
	bufferSize:    DefaultBufferSize,
	leaveOpen:     false,
}

func (c *config) validate() error {
	if c.maxLineLength < 0 || (c.maxLineLength != Unlimited && c.maxLineLength < MinLineLength) {
		return ErrLineLength
	}
	if c.bufferSize < MinBufferSize {
		return ErrBufferSize
	}
	return nil
}

func newConfig(opts []Option) (config, error) {
	c := defaultConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c, c.validate()
}

// Option modifies how an Encoder or Writer is constructed.
type Option func(c *config)

// WithMaxLineLength sets the maximum output line length, including the "="
// of a soft line break. Pass Unlimited to disable folding. A negative length,
// or one shorter than MinLineLength, causes construction to fail with
// ErrLineLength. The default is DefaultMaxLineLength.
func WithMaxLineLength(n int) Option {
	return func(c *config) { c.maxLineLength = n }
}

// WithEncodeCRLF causes CRLF pairs in the input to be escaped as "=0D=0A"
// rather than passed through as line breaks. Use this for binary content.
func WithEncodeCRLF() Option {
	return func(c *config) { c.encodeCRLF = true }
}

// WithBufferSize sets the capacity of the output buffer. Sizes below
// MinBufferSize cause construction to fail with ErrBufferSize.
func WithBufferSize(n int) Option {
	return func(c *config) { c.bufferSize = n }
}

// LeaveOpen prevents Writer.Close from closing the underlying io.Writer.
func LeaveOpen() Option {
	return func(c *config) { c.leaveOpen = true }
}
