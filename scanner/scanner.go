package scanner

import (
	"errors"
	"io"
)

// DefaultBufferSize is the capacity of the read buffer when no
// WithBufferSize option is given. 4 MiB keeps the source's read calls rare
// even on multi-gigabyte inputs.
const DefaultBufferSize = 4 << 20

// ErrSyntax reports that the next token in the input does not start a valid
// value of the requested type. The offending byte is left unconsumed.
var ErrSyntax = errors.New("fastscan: input does not match requested type")

// ErrTooLong reports that a token did not fit in the caller-supplied
// destination. The full token has still been consumed from the input.
var ErrTooLong = errors.New("fastscan: token exceeds destination capacity")

// ErrFormat reports a malformed format string or a mismatched output slot
// passed to Scanf. It is always detected before any input is consumed.
var ErrFormat = errors.New("fastscan: malformed format string")

// Option configures a Scanner at construction time.
type Option func(*config)

type config struct {
	bufferSize int
}

// WithBufferSize sets the capacity of the internal read buffer in bytes.
// Sizes below one byte are ignored. The capacity is fixed for the lifetime
// of the Scanner.
func WithBufferSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// Scanner reads whitespace-delimited tokens from a byte stream through a
// fixed-capacity buffer. It replaces fmt.Fscan-style parsing for
// performance-sensitive batch reading of numbers and text.
//
// A Scanner is not safe for concurrent use; each scanning session needs its
// own instance. All methods are synchronous and block only inside the
// underlying source's Read.
type Scanner struct {
	src   io.Reader
	buf   []byte
	pos   int // next unread byte in buf
	limit int // number of valid bytes in buf
	eof   bool
}

// New returns a Scanner reading from src. The source is expected to be
// positioned at the data to scan; the Scanner issues bulk reads of up to the
// buffer capacity and treats a zero-byte read, with or without an error, as
// permanent exhaustion.
func New(src io.Reader, opts ...Option) *Scanner {
	cfg := &config{bufferSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Scanner{
		src: src,
		buf: make([]byte, cfg.bufferSize),
	}
}

// Reset discards any buffered data and exhaustion state and switches the
// Scanner to read from src, reusing the existing buffer.
func (s *Scanner) Reset(src io.Reader) {
	s.src = src
	s.pos = 0
	s.limit = 0
	s.eof = false
}

// refill requests the next chunk from the source. Once the source has
// returned zero bytes it is never probed again: the exhaustion flag is
// monotonic and refill degrades to leaving the buffer empty.
func (s *Scanner) refill() {
	if s.eof {
		s.limit = s.pos
		return
	}
	n, err := s.src.Read(s.buf)
	if n <= 0 {
		// An error with no data is indistinguishable from exhaustion
		// at this layer; no retry.
		_ = err
		s.eof = true
		s.limit = s.pos
		return
	}
	s.pos = 0
	s.limit = n
}

// peek returns the next byte without consuming it. ok is false at end of
// stream.
func (s *Scanner) peek() (b byte, ok bool) {
	if s.pos >= s.limit {
		s.refill()
		if s.pos >= s.limit {
			return 0, false
		}
	}
	return s.buf[s.pos], true
}

// next consumes and returns the next byte. ok is false at end of stream.
func (s *Scanner) next() (b byte, ok bool) {
	if s.pos >= s.limit {
		s.refill()
		if s.pos >= s.limit {
			return 0, false
		}
	}
	b = s.buf[s.pos]
	s.pos++
	return b, true
}

// skipSpace consumes bytes up to the first non-whitespace byte or end of
// stream.
func (s *Scanner) skipSpace() {
	for {
		c, ok := s.peek()
		if !ok || !isSpace(c) {
			return
		}
		s.pos++
	}
}

// isSpace matches the bytes the C locale's isspace accepts.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
