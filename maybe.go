package gvariant

import "github.com/creachadair/mds/value"

// maybeCodec implements Codec[value.Maybe[T]] for the GVariant "m?"
// type. [value.Maybe] is exactly GVariant's "maybe": present-or-absent,
// with no other state, so this codec uses it directly rather than a
// hand-rolled option type.
type maybeCodec[T any] struct {
	elem Codec[T]
}

// MaybeCodec returns the [Codec] for the GVariant "m?" type: an
// optional value decoded by elem when present.
func MaybeCodec[T any](elem Codec[T]) Codec[value.Maybe[T]] {
	return maybeCodec[T]{elem}
}

func (c maybeCodec[T]) Alignment() int         { return c.elem.Alignment() }
func (c maybeCodec[T]) FixedSize() (int, bool) { return 0, false }

func (c maybeCodec[T]) Decode(data []byte) (value.Maybe[T], error) {
	if len(data) == 0 {
		return value.Absent[T](), nil
	}
	if _, fixed := c.elem.FixedSize(); !fixed {
		if data[len(data)-1] != 0 {
			return value.Absent[T](), malformed("maybe", "missing trailing marker byte for variable-width element")
		}
		data = data[:len(data)-1]
	}
	v, err := c.elem.Decode(data)
	if err != nil {
		return value.Absent[T](), err
	}
	return value.Just(v), nil
}

func (c maybeCodec[T]) Encode(v value.Maybe[T]) ([]byte, error) {
	inner, present := v.GetOK()
	if !present {
		return nil, nil
	}
	out, err := c.elem.Encode(inner)
	if err != nil {
		return nil, err
	}
	if _, fixed := c.elem.FixedSize(); !fixed {
		out = append(out, 0)
	}
	return out, nil
}
