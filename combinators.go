package gvariant

// orderAware is implemented by the multi-byte primitive codecs (n, q,
// i, u, x, t, d) whose wire layout depends on byte order.
// [WithByteOrder] uses it to swap the order without disturbing
// codecs that have no such notion.
type orderAware[T any] interface {
	withOrder(ByteOrder) Codec[T]
}

// WithByteOrder returns a copy of c decoding and encoding with order
// instead of its default. It only affects the multi-byte integer and
// float primitives; applied to any other codec (bool, byte, string,
// or a composite), it returns c unchanged, since those have no
// byte-order-dependent layout.
func WithByteOrder[T any](c Codec[T], order ByteOrder) Codec[T] {
	if oa, ok := c.(orderAware[T]); ok {
		return oa.withOrder(order)
	}
	return c
}

// mapCodec adapts a Codec[T] to a Codec[U] via a pair of pure
// conversion functions, so callers can layer their own domain types
// (enums, newtypes, bound structures) over a wire-level codec without
// touching the wire format itself.
type mapCodec[T, U any] struct {
	inner  Codec[T]
	decode func(T) (U, error)
	encode func(U) T
}

// Map returns a [Codec] for U built by running inner's decoded value
// through decode, and by running encode's result through inner before
// serializing. decode may reject values inner can produce but U
// cannot represent.
func Map[T, U any](inner Codec[T], decode func(T) (U, error), encode func(U) T) Codec[U] {
	return mapCodec[T, U]{inner, decode, encode}
}

func (c mapCodec[T, U]) Alignment() int         { return c.inner.Alignment() }
func (c mapCodec[T, U]) FixedSize() (int, bool) { return c.inner.FixedSize() }

func (c mapCodec[T, U]) Decode(data []byte) (U, error) {
	t, err := c.inner.Decode(data)
	if err != nil {
		var zero U
		return zero, err
	}
	return c.decode(t)
}

func (c mapCodec[T, U]) Encode(u U) ([]byte, error) {
	return c.inner.Encode(c.encode(u))
}

// contramapCodec runs a pair of pure byte-slice transforms around an
// inner codec's wire representation, e.g. to splice in or strip a
// framing convention a caller's transport imposes outside of GVariant
// itself.
type contramapCodec[T any] struct {
	inner        Codec[T]
	beforeDecode func([]byte) []byte
	afterEncode  func([]byte) []byte
}

// Contramap returns a [Codec] that runs beforeDecode on the input
// slice before handing it to inner.Decode, and afterEncode on
// inner.Encode's result before returning it. Both transforms default
// to identity if nil.
func Contramap[T any](inner Codec[T], beforeDecode, afterEncode func([]byte) []byte) Codec[T] {
	if beforeDecode == nil {
		beforeDecode = func(b []byte) []byte { return b }
	}
	if afterEncode == nil {
		afterEncode = func(b []byte) []byte { return b }
	}
	return contramapCodec[T]{inner, beforeDecode, afterEncode}
}

func (c contramapCodec[T]) Alignment() int         { return c.inner.Alignment() }
func (c contramapCodec[T]) FixedSize() (int, bool) { return c.inner.FixedSize() }

func (c contramapCodec[T]) Decode(data []byte) (T, error) {
	return c.inner.Decode(c.beforeDecode(data))
}

func (c contramapCodec[T]) Encode(v T) ([]byte, error) {
	b, err := c.inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return c.afterEncode(b), nil
}

// branchCodec implements Branch: a codec that picks between two
// candidate codecs. Decode dispatches on selector applied to the raw
// input slice; Encode uses encodeSelect to choose, since nothing about
// a decoded Go value of type T says which wire shape produced it.
type branchCodec[T any] struct {
	selector        func([]byte) bool
	ifTrue, ifFalse Codec[T]
	encodeSelect    func(T) bool
}

// Branch returns a [Codec] that decodes by calling selector(data) and
// dispatching to ifTrue or ifFalse accordingly, and encodes by calling
// encodeSelect(v) to choose which of the two codecs to use. This
// resolves the predicate-branch open question in the encode direction:
// there is no implicit "always ifFalse" default, the caller must say
// which branch a given value belongs to.
//
// ifTrue and ifFalse must agree on alignment and fixed size; Branch
// returns a [UsageError] if they don't, since a codec whose layout
// depends on which branch decoded it cannot be embedded in an
// enclosing composite.
func Branch[T any](selector func([]byte) bool, ifTrue, ifFalse Codec[T], encodeSelect func(T) bool) (Codec[T], error) {
	if a, b := ifTrue.Alignment(), ifFalse.Alignment(); a != b {
		return nil, usageErr("incompatible alignments in predicate branches: true=%d, false=%d", a, b)
	}
	sizeTrue, okTrue := ifTrue.FixedSize()
	sizeFalse, okFalse := ifFalse.FixedSize()
	if okTrue != okFalse || (okTrue && sizeTrue != sizeFalse) {
		return nil, usageErr("incompatible fixed sizes in predicate branches: true=(%d,%v), false=(%d,%v)", sizeTrue, okTrue, sizeFalse, okFalse)
	}
	return branchCodec[T]{selector, ifTrue, ifFalse, encodeSelect}, nil
}

func (c branchCodec[T]) Alignment() int         { return c.ifTrue.Alignment() }
func (c branchCodec[T]) FixedSize() (int, bool) { return c.ifTrue.FixedSize() }

func (c branchCodec[T]) Decode(data []byte) (T, error) {
	if c.selector(data) {
		return c.ifTrue.Decode(data)
	}
	return c.ifFalse.Decode(data)
}

func (c branchCodec[T]) Encode(v T) ([]byte, error) {
	if c.encodeSelect(v) {
		return c.ifTrue.Encode(v)
	}
	return c.ifFalse.Encode(v)
}
