package gvariant

import "github.com/danderson/gvariant/internal/wire"

// arrayCodec implements Codec[[]T] for the GVariant "a?" type.
type arrayCodec[T any] struct {
	elem Codec[T]
}

// ArrayCodec returns the [Codec] for the GVariant "a?" type: an
// ordered sequence of values decoded by elem.
func ArrayCodec[T any](elem Codec[T]) Codec[[]T] {
	return arrayCodec[T]{elem}
}

func (c arrayCodec[T]) Alignment() int         { return c.elem.Alignment() }
func (c arrayCodec[T]) FixedSize() (int, bool) { return 0, false }

func (c arrayCodec[T]) Decode(data []byte) ([]T, error) {
	return decodeArray(c.elem, data)
}

func (c arrayCodec[T]) Encode(v []T) ([]byte, error) {
	return encodeArray(c.elem, v)
}

// decodeArray implements the array decoding regimes from the GVariant
// specification: fixed-width elements laid out back to back, the
// degenerate empty variable-width array, and the general
// framing-offset-trailer case.
func decodeArray[T any](elem Codec[T], data []byte) ([]T, error) {
	align := elem.Alignment()

	if size, ok := elem.FixedSize(); ok {
		if size <= 0 || len(data)%size != 0 {
			return nil, malformed("array", "length %d is not a multiple of element size %d", len(data), size)
		}
		n := len(data) / size
		out := make([]T, n)
		for i := 0; i < n; i++ {
			v, err := elem.Decode(data[i*size : (i+1)*size])
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	if len(data) == 0 {
		return []T{}, nil
	}

	width := wire.OffsetSize(len(data))
	if width > len(data) {
		return nil, malformed("array", "slice of %d bytes too short to hold a framing offset", len(data))
	}
	lastOff := int(wire.ReadOffset(data[len(data)-width:], width))
	if lastOff < 0 || lastOff > len(data) {
		return nil, malformed("array", "final framing offset %d out of range for %d-byte slice", lastOff, len(data))
	}
	count := (len(data) - lastOff) / width

	out := make([]T, count)
	pos := 0
	for i := 0; i < count; i++ {
		offStart := lastOff + i*width
		end := int(wire.ReadOffset(data[offStart:offStart+width], width))
		if end < pos || end > len(data) {
			return nil, malformed("array", "element %d framing offset %d out of range", i, end)
		}
		v, err := elem.Decode(data[pos:end])
		if err != nil {
			return nil, err
		}
		out[i] = v
		pos = wire.Align(end, align)
	}
	return out, nil
}

func encodeArray[T any](elem Codec[T], v []T) ([]byte, error) {
	align := elem.Alignment()

	if _, ok := elem.FixedSize(); ok {
		var out []byte
		for _, e := range v {
			b, err := elem.Encode(e)
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
		}
		return out, nil
	}

	var out []byte
	offsets := make([]uint64, 0, len(v))
	for _, e := range v {
		out = wire.Pad(out, align)
		b, err := elem.Encode(e)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
		offsets = append(offsets, uint64(len(out)))
	}

	width, err := wire.SelectOffsetWidth(len(out), len(offsets))
	if err != nil {
		return nil, err
	}
	for _, off := range offsets {
		out = wire.AppendOffset(out, off, width)
	}
	return out, nil
}
