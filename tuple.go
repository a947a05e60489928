package gvariant

import "github.com/danderson/gvariant/internal/wire"

// tupleCodec implements Codec[[]Value] for the GVariant "(...)" type:
// a fixed-length, positionally heterogeneous record.
type tupleCodec struct {
	fields []Codec[Value]
}

// TupleCodec returns the [Codec] for a GVariant tuple/structure type
// with the given component codecs, in order. A zero-length fields
// list is the GVariant unit type, which encodes as a single zero
// byte.
func TupleCodec(fields ...Codec[Value]) Codec[[]Value] {
	return tupleCodec{fields}
}

func (c tupleCodec) Alignment() int {
	align := 1
	for _, f := range c.fields {
		if a := f.Alignment(); a > align {
			align = a
		}
	}
	return align
}

func (c tupleCodec) FixedSize() (int, bool) {
	if len(c.fields) == 0 {
		return 1, true
	}
	pos := 0
	for _, f := range c.fields {
		size, ok := f.FixedSize()
		if !ok {
			return 0, false
		}
		pos = wire.Align(pos, f.Alignment())
		pos += size
	}
	return wire.Align(pos, c.Alignment()), true
}

func (c tupleCodec) Decode(data []byte) ([]Value, error) {
	if len(c.fields) == 0 {
		if len(data) != 1 {
			return nil, malformed("tuple", "unit value must be exactly 1 byte, got %d", len(data))
		}
		return []Value{}, nil
	}

	offsetWidth := wire.OffsetSize(len(data))
	out := make([]Value, len(c.fields))
	pos := 0
	offsetIdx := 0 // counts variable-width components seen so far, from the front
	for i, f := range c.fields {
		pos = wire.Align(pos, f.Alignment())
		if size, ok := f.FixedSize(); ok {
			if pos+size > len(data) {
				return nil, BufferUnderflow{"tuple component", pos + size, len(data)}
			}
			v, err := f.Decode(data[pos : pos+size])
			if err != nil {
				return nil, err
			}
			out[i] = v
			pos += size
			continue
		}

		if i == len(c.fields)-1 {
			end := len(data) - offsetIdx*offsetWidth
			if end < pos || end > len(data) {
				return nil, malformed("tuple", "final component end %d out of range", end)
			}
			v, err := f.Decode(data[pos:end])
			if err != nil {
				return nil, err
			}
			out[i] = v
			pos = end
			continue
		}

		offStart := len(data) - (offsetIdx+1)*offsetWidth
		if offStart < 0 {
			return nil, malformed("tuple", "not enough room for framing offsets")
		}
		end := int(wire.ReadOffset(data[offStart:offStart+offsetWidth], offsetWidth))
		if end < pos || end > len(data) {
			return nil, malformed("tuple", "component %d framing offset %d out of range", i, end)
		}
		v, err := f.Decode(data[pos:end])
		if err != nil {
			return nil, err
		}
		out[i] = v
		pos = end
		offsetIdx++
	}
	return out, nil
}

func (c tupleCodec) Encode(v []Value) ([]byte, error) {
	if len(c.fields) != len(v) {
		return nil, usageErr("tuple has %d fields but got %d values", len(c.fields), len(v))
	}
	if len(c.fields) == 0 {
		return []byte{0}, nil
	}

	var out []byte
	var offsets []uint64
	for i, f := range c.fields {
		out = wire.Pad(out, f.Alignment())
		b, err := f.Encode(v[i])
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
		if _, ok := f.FixedSize(); !ok && i != len(c.fields)-1 {
			offsets = append(offsets, uint64(len(out)))
		}
	}

	width, err := wire.SelectOffsetWidth(len(out), len(offsets))
	if err != nil {
		return nil, err
	}
	for i := len(offsets) - 1; i >= 0; i-- {
		out = wire.AppendOffset(out, offsets[i], width)
	}

	if _, ok := c.FixedSize(); ok {
		out = wire.Pad(out, c.Alignment())
	}
	return out, nil
}

// BindStruct adapts a tuple codec's positional []Value representation
// to and from a caller's own struct type S, without reflection: the
// caller supplies the decompose/recompose functions explicitly.
func BindStruct[S any](tuple Codec[[]Value], decompose func(S) ([]Value, error), recompose func([]Value) (S, error)) Codec[S] {
	return &boundStructCodec[S]{tuple, decompose, recompose}
}

type boundStructCodec[S any] struct {
	tuple     Codec[[]Value]
	decompose func(S) ([]Value, error)
	recompose func([]Value) (S, error)
}

func (c *boundStructCodec[S]) Alignment() int         { return c.tuple.Alignment() }
func (c *boundStructCodec[S]) FixedSize() (int, bool) { return c.tuple.FixedSize() }

func (c *boundStructCodec[S]) Decode(data []byte) (S, error) {
	var zero S
	fields, err := c.tuple.Decode(data)
	if err != nil {
		return zero, err
	}
	return c.recompose(fields)
}

func (c *boundStructCodec[S]) Encode(v S) ([]byte, error) {
	fields, err := c.decompose(v)
	if err != nil {
		return nil, err
	}
	return c.tuple.Encode(fields)
}
