package gvariant

// A Codec knows how to decode a bounded byte slice into a value of
// type T, and how to encode a value of type T back into bytes,
// following the GVariant wire format's alignment and framing rules.
//
// Codecs are stateless and safe to share across goroutines. Decode
// must not retain or mutate the input slice; Encode returns a freshly
// allocated slice owned by the caller.
type Codec[T any] interface {
	// Alignment is the byte multiple to which a value's start must be
	// padded within an enclosing composite. Always one of 1, 2, 4, 8.
	Alignment() int
	// FixedSize returns the codec's wire size and true if it is the
	// same for every value of type T, or (0, false) if the size
	// depends on the value's content.
	FixedSize() (size int, ok bool)
	// Decode interprets data, which must be exactly the bytes
	// belonging to this value (no more, no less), as a T.
	Decode(data []byte) (T, error)
	// Encode appends the wire encoding of v to nothing and returns it.
	// The result does not include any leading alignment padding; the
	// caller (an enclosing composite codec, or the top-level caller)
	// is responsible for that.
	Encode(v T) ([]byte, error)
}

// Decode is a convenience wrapper equivalent to c.Decode(data).
func Decode[T any](c Codec[T], data []byte) (T, error) {
	return c.Decode(data)
}

// Encode is a convenience wrapper equivalent to c.Encode(v).
func Encode[T any](c Codec[T], v T) ([]byte, error) {
	return c.Encode(v)
}
