package gvariant

import "fmt"

// MalformedInput is returned by decoders when a byte slice cannot be
// interpreted under the expected codec: wrong length for a fixed-size
// value, a missing string terminator, a missing variant separator,
// framing offsets inconsistent with the slice length, a duplicate
// dictionary key, or a tuple whose components run past the end of the
// slice.
type MalformedInput struct {
	// Context describes what was being decoded when the error
	// occurred, e.g. "string" or "array element 3".
	Context string
	// Reason is the underlying cause.
	Reason error
}

func (e MalformedInput) Error() string {
	return fmt.Sprintf("malformed gvariant input (%s): %s", e.Context, e.Reason)
}

func (e MalformedInput) Unwrap() error { return e.Reason }

func malformed(context string, reason string, args ...any) error {
	return MalformedInput{context, fmt.Errorf(reason, args...)}
}

// BufferUnderflow is returned when an input slice is shorter than the
// number of bytes a fixed-size codec requires.
type BufferUnderflow struct {
	// Context describes what was being decoded.
	Context string
	// Wanted is the number of bytes required.
	Wanted int
	// Got is the number of bytes available.
	Got int
}

func (e BufferUnderflow) Error() string {
	return fmt.Sprintf("buffer underflow decoding %s: wanted %d bytes, got %d", e.Context, e.Wanted, e.Got)
}

// SignatureParseError is returned by [ParseSignature] when a
// signature string is not well-formed: an unknown type byte, an
// unterminated group, a dictionary entry with a component count other
// than two, or unconsumed trailing characters.
type SignatureParseError struct {
	// Input is the full signature string that failed to parse.
	Input string
	// Pos is the byte offset within Input where the error was
	// detected.
	Pos int
	// Reason is a human-readable explanation.
	Reason error
}

func (e SignatureParseError) Error() string {
	return fmt.Sprintf("invalid gvariant signature %q at position %d: %s", e.Input, e.Pos, e.Reason)
}

func (e SignatureParseError) Unwrap() error { return e.Reason }

func sigErr(input string, pos int, reason string, args ...any) error {
	return SignatureParseError{input, pos, fmt.Errorf(reason, args...)}
}

// UsageError is returned when a caller constructs or drives a codec
// incorrectly: predicate branches with incompatible alignment or
// fixed size, a [Value] passed to [Codec.Encode] whose kind doesn't
// match what the codec expects, or a struct binding whose field count
// disagrees with the tuple it's bound to.
type UsageError struct {
	Reason error
}

func (e UsageError) Error() string {
	return fmt.Sprintf("gvariant codec usage error: %s", e.Reason)
}

func (e UsageError) Unwrap() error { return e.Reason }

func usageErr(reason string, args ...any) error {
	return UsageError{fmt.Errorf(reason, args...)}
}
