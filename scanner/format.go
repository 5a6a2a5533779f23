package scanner

import "fmt"

// op is one compiled conversion from a format string: the verb selecting a
// primitive reader, whether a whitespace run preceded it in the format, and
// the caller-supplied destination it writes to.
type op struct {
	verb      string
	skipSpace bool
	arg       any
}

// compile walks the format string once and pairs every conversion with its
// output slot, rejecting unknown or truncated verbs and mismatched slot
// types up front. No input is consumed here; a bad format therefore costs
// the caller nothing but the error.
func compile(format string, args []any) ([]op, error) {
	var ops []op
	pending := false
	next := 0
	for i := 0; i < len(format); {
		c := format[i]
		if isSpace(c) {
			pending = true
			i++
			continue
		}
		if c != '%' {
			// Literal bytes are consumed from the format only; they are
			// not matched against the input stream.
			pending = false
			i++
			continue
		}
		i++
		verb := ""
		switch {
		case i < len(format) && (format[i] == 'd' || format[i] == 'u' ||
			format[i] == 'f' || format[i] == 'e' || format[i] == 'g' ||
			format[i] == 's' || format[i] == 'c'):
			verb = format[i : i+1]
			i++
		case i+1 < len(format) && format[i] == 'l' && format[i+1] == 'f':
			verb = "lf"
			i += 2
		case i+2 < len(format) && format[i] == 'l' && format[i+1] == 'l' &&
			(format[i+2] == 'd' || format[i+2] == 'u'):
			verb = format[i : i+3]
			i += 3
		default:
			return nil, fmt.Errorf("%w: unsupported verb at byte %d", ErrFormat, i-1)
		}
		if next >= len(args) {
			return nil, fmt.Errorf("%w: no output slot for %%%s", ErrFormat, verb)
		}
		if err := checkSlot(verb, args[next]); err != nil {
			return nil, err
		}
		ops = append(ops, op{verb: verb, skipSpace: pending, arg: args[next]})
		next++
		pending = false
	}
	return ops, nil
}

// checkSlot verifies that arg has the pointer type the verb writes through.
func checkSlot(verb string, arg any) error {
	ok := false
	switch verb {
	case "d":
		_, ok = arg.(*int32)
	case "u":
		_, ok = arg.(*uint32)
	case "lld":
		_, ok = arg.(*int64)
	case "llu":
		_, ok = arg.(*uint64)
	case "f", "e", "g", "lf":
		_, ok = arg.(*float64)
	case "s":
		_, ok = arg.(*string)
	case "c":
		_, ok = arg.(*byte)
	}
	if !ok {
		return fmt.Errorf("%w: %%%s needs %s, got %T", ErrFormat, verb, slotType(verb), arg)
	}
	return nil
}

func slotType(verb string) string {
	switch verb {
	case "d":
		return "*int32"
	case "u":
		return "*uint32"
	case "lld":
		return "*int64"
	case "llu":
		return "*uint64"
	case "s":
		return "*string"
	case "c":
		return "*byte"
	}
	return "*float64"
}

// Scanf parses input according to format and stores successive values in
// args, which must be pointers of the types the verbs require. Supported
// verbs: %d (*int32), %u (*uint32), %lld (*int64), %llu (*uint64), %f %e %g
// %lf (*float64, all accepting an optional exponent), %s (*string), %c
// (*byte).
//
// Whitespace in the format requests a whitespace skip before the next
// conversion; %c ignores that request and always reads the byte under the
// cursor. Other literal format bytes are permissive: they are skipped
// without being matched against the input. The returned count is the number
// of conversions completed before the first failure. A nil error means
// every conversion succeeded; io.EOF or ErrSyntax means the scan stopped
// early on bad or missing data (count 0 with io.EOF is the end-of-input
// case); an ErrFormat error means the format itself was rejected before any
// input was consumed. A failed conversion never writes to its slot.
func (s *Scanner) Scanf(format string, args ...any) (int, error) {
	ops, err := compile(format, args)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, o := range ops {
		if o.skipSpace && o.verb != "c" {
			s.skipSpace()
		}
		if err := s.apply(o); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// apply runs the primitive reader for one compiled conversion and writes the
// value through its slot on success.
func (s *Scanner) apply(o op) error {
	switch p := o.arg.(type) {
	case *int32:
		v, err := s.ReadInt32()
		if err != nil {
			return err
		}
		*p = v
	case *uint32:
		v, err := s.ReadUint32()
		if err != nil {
			return err
		}
		*p = v
	case *int64:
		v, err := s.ReadInt64()
		if err != nil {
			return err
		}
		*p = v
	case *uint64:
		v, err := s.ReadUint64()
		if err != nil {
			return err
		}
		*p = v
	case *float64:
		v, err := s.ReadFloat64()
		if err != nil {
			return err
		}
		*p = v
	case *string:
		v, err := s.ReadTokenString()
		if err != nil {
			return err
		}
		*p = v
	case *byte:
		v, err := s.ReadChar()
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}
