package scanner

import (
	"io"
	"math"

	"golang.org/x/exp/constraints"
)

// digits consumes a contiguous run of decimal digits, accumulating their
// value until it would exceed limit. Digits beyond the limit are still
// consumed so the cursor lands after the full numeral, but the accumulator
// stays pinned at limit and sat reports the overflow. The caller must have
// verified that a digit is next.
func (s *Scanner) digits(limit uint64) (x uint64, sat bool) {
	for {
		c, ok := s.peek()
		if !ok || c < '0' || c > '9' {
			return x, sat
		}
		s.pos++
		if sat {
			continue
		}
		d := uint64(c - '0')
		if x > (limit-d)/10 {
			x = limit
			sat = true
			continue
		}
		x = x*10 + d
	}
}

// readSigned parses an optionally signed decimal numeral and saturates to
// [min, max] on overflow. Failure leaves the offending byte unconsumed.
func readSigned[T constraints.Signed](s *Scanner, min, max int64) (T, error) {
	s.skipSpace()
	c, ok := s.peek()
	if !ok {
		return 0, io.EOF
	}
	neg := false
	if c == '+' || c == '-' {
		neg = c == '-'
		s.pos++
		if c, ok = s.peek(); !ok {
			return 0, io.EOF
		}
	}
	if c < '0' || c > '9' {
		return 0, ErrSyntax
	}
	limit := uint64(max)
	if neg {
		// Magnitude of min; computed via max to avoid negating min itself.
		limit = uint64(max) + 1
	}
	mag, sat := s.digits(limit)
	if neg {
		if sat {
			return T(min), nil
		}
		return T(-int64(mag)), nil
	}
	if sat {
		return T(max), nil
	}
	return T(int64(mag)), nil
}

// readUnsigned parses an unsigned decimal numeral and saturates to max on
// overflow. A leading sign of either kind is a syntax failure.
func readUnsigned[T constraints.Unsigned](s *Scanner, max uint64) (T, error) {
	s.skipSpace()
	c, ok := s.peek()
	if !ok {
		return 0, io.EOF
	}
	if c < '0' || c > '9' {
		return 0, ErrSyntax
	}
	x, _ := s.digits(max)
	return T(x), nil
}

// ReadInt32 reads the next token as a signed 32-bit integer. Out-of-range
// numerals succeed with math.MaxInt32 or math.MinInt32.
func (s *Scanner) ReadInt32() (int32, error) {
	return readSigned[int32](s, math.MinInt32, math.MaxInt32)
}

// ReadInt64 reads the next token as a signed 64-bit integer. Out-of-range
// numerals succeed with math.MaxInt64 or math.MinInt64.
func (s *Scanner) ReadInt64() (int64, error) {
	return readSigned[int64](s, math.MinInt64, math.MaxInt64)
}

// ReadUint32 reads the next token as an unsigned 32-bit integer. Out-of-range
// numerals succeed with math.MaxUint32.
func (s *Scanner) ReadUint32() (uint32, error) {
	return readUnsigned[uint32](s, math.MaxUint32)
}

// ReadUint64 reads the next token as an unsigned 64-bit integer. Out-of-range
// numerals succeed with math.MaxUint64.
func (s *Scanner) ReadUint64() (uint64, error) {
	return readUnsigned[uint64](s, math.MaxUint64)
}

// ReadFloat64 reads the next token as a floating point number with an
// optional fraction and an optional e/E exponent. The mantissa must contain
// a digit or a decimal point; the exponent, when present, is applied by
// repeated scaling with growth capped near the double range.
func (s *Scanner) ReadFloat64() (float64, error) {
	s.skipSpace()
	c, ok := s.peek()
	if !ok {
		return 0, io.EOF
	}
	neg := false
	if c == '+' || c == '-' {
		neg = c == '-'
		s.pos++
		if c, ok = s.peek(); !ok {
			return 0, io.EOF
		}
	}
	if (c < '0' || c > '9') && c != '.' {
		return 0, ErrSyntax
	}

	var x float64
	for {
		c, ok := s.peek()
		if !ok || c < '0' || c > '9' {
			break
		}
		s.pos++
		x = x*10 + float64(c-'0')
	}
	if c, ok := s.peek(); ok && c == '.' {
		s.pos++
		frac, base := 0.0, 1.0
		for {
			c, ok := s.peek()
			if !ok || c < '0' || c > '9' {
				break
			}
			s.pos++
			frac = frac*10 + float64(c-'0')
			base *= 10
		}
		x += frac / base
	}
	if neg {
		x = -x
	}

	if c, ok := s.peek(); ok && (c == 'e' || c == 'E') {
		s.pos++
		eneg := false
		if c, ok := s.peek(); ok && (c == '+' || c == '-') {
			eneg = c == '-'
			s.pos++
		}
		exp := 0
		for {
			c, ok := s.peek()
			if !ok || c < '0' || c > '9' {
				break
			}
			s.pos++
			if exp < 9999 {
				exp = exp*10 + int(c-'0')
			}
		}
		if eneg {
			for i := 0; i < exp && x != 0; i++ {
				x /= 10
			}
		} else {
			for i := 0; i < exp; i++ {
				if x > 1e300 || x < -1e300 {
					break
				}
				x *= 10
			}
		}
	}
	return x, nil
}

// ReadToken reads the next whitespace-delimited token into dst and returns
// the number of bytes written. When the token is longer than dst the whole
// token is still consumed, dst holds its prefix, and the error is ErrTooLong.
func (s *Scanner) ReadToken(dst []byte) (int, error) {
	s.skipSpace()
	if _, ok := s.peek(); !ok {
		return 0, io.EOF
	}
	n := 0
	tooLong := false
	for {
		c, ok := s.peek()
		if !ok || isSpace(c) {
			break
		}
		s.pos++
		if n < len(dst) {
			dst[n] = c
			n++
		} else {
			tooLong = true
		}
	}
	if tooLong {
		return n, ErrTooLong
	}
	return n, nil
}

// ReadTokenString reads the next whitespace-delimited token and returns it
// as a freshly allocated string.
func (s *Scanner) ReadTokenString() (string, error) {
	s.skipSpace()
	if _, ok := s.peek(); !ok {
		return "", io.EOF
	}
	var b []byte
	for {
		c, ok := s.peek()
		if !ok || isSpace(c) {
			break
		}
		s.pos++
		b = append(b, c)
	}
	return string(b), nil
}

// ReadChar consumes exactly one byte without skipping whitespace. It fails
// only at end of stream.
func (s *Scanner) ReadChar() (byte, error) {
	c, ok := s.next()
	if !ok {
		return 0, io.EOF
	}
	return c, nil
}

// ReadLine reads bytes up to a line terminator or end of stream into dst,
// returning the number of bytes written. A \n, a lone \r, or a \r\n pair
// all terminate the line and are consumed but not copied. Bytes beyond
// len(dst) are consumed and discarded so the cursor still advances past the
// full line. ReadLine fails only when the stream ends before any byte,
// terminator included, could be read.
func (s *Scanner) ReadLine(dst []byte) (int, error) {
	c, ok := s.next()
	if !ok {
		return 0, io.EOF
	}
	n := 0
	for {
		if c == '\n' {
			break
		}
		if c == '\r' {
			if p, ok := s.peek(); ok && p == '\n' {
				s.pos++
			}
			break
		}
		if n < len(dst) {
			dst[n] = c
			n++
		}
		if c, ok = s.next(); !ok {
			break
		}
	}
	return n, nil
}

// ReadLineString reads a full line, with the same terminator handling as
// ReadLine, and returns it as a freshly allocated string.
func (s *Scanner) ReadLineString() (string, error) {
	c, ok := s.next()
	if !ok {
		return "", io.EOF
	}
	var b []byte
	for {
		if c == '\n' {
			break
		}
		if c == '\r' {
			if p, ok := s.peek(); ok && p == '\n' {
				s.pos++
			}
			break
		}
		b = append(b, c)
		if c, ok = s.next(); !ok {
			break
		}
	}
	return string(b), nil
}
