// Package scanner provides a high-throughput buffered scanner for reading
// whitespace-delimited numbers and text from a byte stream.
//
// It is a focused replacement for fmt.Fscan-style parsing when a program has
// to pull millions of tokens out of a file or pipe: one fixed 4 MiB buffer,
// one pass over the bytes, no reflection on the hot path, and predictable
// behavior at every buffer boundary and at end of stream.
//
// # Basic Usage
//
// Create a Scanner from any io.Reader and read typed values directly:
//
//	sc := scanner.New(file)
//	n, err := sc.ReadInt32()
//	if err != nil {
//	    return err
//	}
//
// Every numeric and token reader skips leading whitespace; ReadChar and
// ReadLine read literally from the current position.
//
// # Formatted Scanning
//
// Scanf drives a batch of conversions from a compact format string, writing
// into typed pointers in order:
//
//	var a, b int32
//	var x float64
//	count, err := sc.Scanf("%d %d %f", &a, &b, &x)
//
// The count is the number of conversions completed before the first
// failure. Scanning stops at the first token that is missing or does not
// match; the failed token is left in the stream. Malformed format strings
// and mismatched destination types are rejected, with an error wrapping
// ErrFormat, before any input is consumed.
//
// # Overflow
//
// An out-of-range numeral is not an error. The value saturates to the
// extreme of the target type (math.MaxInt32, math.MaxUint64, and so on) and
// the cursor still advances past every digit of the token.
//
// # Errors
//
// End of stream surfaces as io.EOF and a token of the wrong shape as
// ErrSyntax; both leave the unread input untouched. ErrTooLong reports a
// token that did not fit a bounded destination after consuming it fully.
// Compare with errors.Is.
//
// # Performance Tuning
//
// The only tunable is the buffer capacity:
//
//	sc := scanner.New(file, scanner.WithBufferSize(1<<20))
//
// Reset points an existing Scanner at a new source and reuses its buffer,
// which keeps large-buffer scanners cheap across many sessions.
package scanner
