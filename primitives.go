package gvariant

import "math"

// boolCodec is the codec for GVariant's "b" type: a single byte, zero
// for false and nonzero for true.
type boolCodec struct{}

// BoolCodec returns the [Codec] for the GVariant "b" (boolean) type.
func BoolCodec() Codec[bool] { return boolCodec{} }

func (boolCodec) Alignment() int          { return 1 }
func (boolCodec) FixedSize() (int, bool)  { return 1, true }
func (boolCodec) Decode(data []byte) (bool, error) {
	if len(data) < 1 {
		return false, BufferUnderflow{"bool", 1, len(data)}
	}
	if len(data) > 1 {
		return false, malformed("bool", "length %d, want 1", len(data))
	}
	return data[0] != 0, nil
}
func (boolCodec) Encode(v bool) ([]byte, error) {
	if v {
		return []byte{1}, nil
	}
	return []byte{0}, nil
}

// Uint8Codec returns the [Codec] for the GVariant "y" (byte) type.
func Uint8Codec() Codec[uint8] { return uint8Codec{} }

type uint8Codec struct{}

func (uint8Codec) Alignment() int         { return 1 }
func (uint8Codec) FixedSize() (int, bool) { return 1, true }
func (uint8Codec) Decode(data []byte) (uint8, error) {
	if len(data) < 1 {
		return 0, BufferUnderflow{"uint8", 1, len(data)}
	}
	if len(data) > 1 {
		return 0, malformed("uint8", "length %d, want 1", len(data))
	}
	return data[0], nil
}
func (uint8Codec) Encode(v uint8) ([]byte, error) { return []byte{v}, nil }

// intCodec implements the fixed-width, byte-order-sensitive integer
// and float primitives ("n", "q", "i", "u", "x", "t", "d"). size is
// 2, 4, or 8; order defaults to [LittleEndian] and can be overridden
// with [WithByteOrder].
type intCodec struct {
	name  string
	size  int
	order ByteOrder
	get   func(order ByteOrder, b []byte) uint64
	put   func(order ByteOrder, v uint64) []byte
}

func (c intCodec) Alignment() int         { return c.size }
func (c intCodec) FixedSize() (int, bool) { return c.size, true }

func (c intCodec) Decode(data []byte) (uint64, error) {
	if len(data) < c.size {
		return 0, BufferUnderflow{c.name, c.size, len(data)}
	}
	if len(data) > c.size {
		return 0, malformed(c.name, "length %d, want %d", len(data), c.size)
	}
	return c.get(c.order, data), nil
}

func (c intCodec) Encode(v uint64) ([]byte, error) {
	return c.put(c.order, v), nil
}

func (c intCodec) withOrder(order ByteOrder) intCodec {
	c.order = order
	return c
}

func newIntCodec(name string, size int) intCodec {
	switch size {
	case 2:
		return intCodec{name, 2, LittleEndian,
			func(o ByteOrder, b []byte) uint64 { return uint64(o.Uint16(b)) },
			func(o ByteOrder, v uint64) []byte { return o.AppendUint16(nil, uint16(v)) },
		}
	case 4:
		return intCodec{name, 4, LittleEndian,
			func(o ByteOrder, b []byte) uint64 { return uint64(o.Uint32(b)) },
			func(o ByteOrder, v uint64) []byte { return o.AppendUint32(nil, uint32(v)) },
		}
	case 8:
		return intCodec{name, 8, LittleEndian,
			func(o ByteOrder, b []byte) uint64 { return o.Uint64(b) },
			func(o ByteOrder, v uint64) []byte { return o.AppendUint64(nil, v) },
		}
	default:
		panic("invalid integer codec size")
	}
}

// int16Codec adapts intCodec's uint64 carrier type down to int16.
type int16Codec struct{ base intCodec }

// Int16Codec returns the [Codec] for the GVariant "n" (int16) type.
func Int16Codec() Codec[int16] { return int16Codec{newIntCodec("int16", 2)} }

func (c int16Codec) Alignment() int         { return c.base.Alignment() }
func (c int16Codec) FixedSize() (int, bool) { return c.base.FixedSize() }
func (c int16Codec) Decode(data []byte) (int16, error) {
	v, err := c.base.Decode(data)
	return int16(v), err
}
func (c int16Codec) Encode(v int16) ([]byte, error) { return c.base.Encode(uint64(uint16(v))) }
func (c int16Codec) withOrder(order ByteOrder) Codec[int16] { return int16Codec{c.base.withOrder(order)} }

type uint16Codec struct{ base intCodec }

// Uint16Codec returns the [Codec] for the GVariant "q" (uint16) type.
func Uint16Codec() Codec[uint16] { return uint16Codec{newIntCodec("uint16", 2)} }

func (c uint16Codec) Alignment() int         { return c.base.Alignment() }
func (c uint16Codec) FixedSize() (int, bool) { return c.base.FixedSize() }
func (c uint16Codec) Decode(data []byte) (uint16, error) {
	v, err := c.base.Decode(data)
	return uint16(v), err
}
func (c uint16Codec) Encode(v uint16) ([]byte, error) { return c.base.Encode(uint64(v)) }
func (c uint16Codec) withOrder(order ByteOrder) Codec[uint16] { return uint16Codec{c.base.withOrder(order)} }

type int32Codec struct{ base intCodec }

// Int32Codec returns the [Codec] for the GVariant "i" (int32) type.
func Int32Codec() Codec[int32] { return int32Codec{newIntCodec("int32", 4)} }

func (c int32Codec) Alignment() int         { return c.base.Alignment() }
func (c int32Codec) FixedSize() (int, bool) { return c.base.FixedSize() }
func (c int32Codec) Decode(data []byte) (int32, error) {
	v, err := c.base.Decode(data)
	return int32(v), err
}
func (c int32Codec) Encode(v int32) ([]byte, error) { return c.base.Encode(uint64(uint32(v))) }
func (c int32Codec) withOrder(order ByteOrder) Codec[int32] { return int32Codec{c.base.withOrder(order)} }

type uint32Codec struct{ base intCodec }

// Uint32Codec returns the [Codec] for the GVariant "u" (uint32) type.
func Uint32Codec() Codec[uint32] { return uint32Codec{newIntCodec("uint32", 4)} }

func (c uint32Codec) Alignment() int         { return c.base.Alignment() }
func (c uint32Codec) FixedSize() (int, bool) { return c.base.FixedSize() }
func (c uint32Codec) Decode(data []byte) (uint32, error) {
	v, err := c.base.Decode(data)
	return uint32(v), err
}
func (c uint32Codec) Encode(v uint32) ([]byte, error) { return c.base.Encode(uint64(v)) }
func (c uint32Codec) withOrder(order ByteOrder) Codec[uint32] { return uint32Codec{c.base.withOrder(order)} }

type int64Codec struct{ base intCodec }

// Int64Codec returns the [Codec] for the GVariant "x" (int64) type.
func Int64Codec() Codec[int64] { return int64Codec{newIntCodec("int64", 8)} }

func (c int64Codec) Alignment() int         { return c.base.Alignment() }
func (c int64Codec) FixedSize() (int, bool) { return c.base.FixedSize() }
func (c int64Codec) Decode(data []byte) (int64, error) {
	v, err := c.base.Decode(data)
	return int64(v), err
}
func (c int64Codec) Encode(v int64) ([]byte, error) { return c.base.Encode(uint64(v)) }
func (c int64Codec) withOrder(order ByteOrder) Codec[int64] { return int64Codec{c.base.withOrder(order)} }

type uint64Codec struct{ base intCodec }

// Uint64Codec returns the [Codec] for the GVariant "t" (uint64) type.
func Uint64Codec() Codec[uint64] { return uint64Codec{newIntCodec("uint64", 8)} }

func (c uint64Codec) Alignment() int         { return c.base.Alignment() }
func (c uint64Codec) FixedSize() (int, bool) { return c.base.FixedSize() }
func (c uint64Codec) Decode(data []byte) (uint64, error) { return c.base.Decode(data) }
func (c uint64Codec) Encode(v uint64) ([]byte, error)    { return c.base.Encode(v) }
func (c uint64Codec) withOrder(order ByteOrder) Codec[uint64] { return uint64Codec{c.base.withOrder(order)} }

type float64Codec struct{ base intCodec }

// Float64Codec returns the [Codec] for the GVariant "d" (double) type.
func Float64Codec() Codec[float64] { return float64Codec{newIntCodec("float64", 8)} }

func (c float64Codec) Alignment() int         { return c.base.Alignment() }
func (c float64Codec) FixedSize() (int, bool) { return c.base.FixedSize() }
func (c float64Codec) Decode(data []byte) (float64, error) {
	v, err := c.base.Decode(data)
	return math.Float64frombits(v), err
}
func (c float64Codec) Encode(v float64) ([]byte, error) {
	return c.base.Encode(math.Float64bits(v))
}
func (c float64Codec) withOrder(order ByteOrder) Codec[float64] { return float64Codec{c.base.withOrder(order)} }

// stringCodec is the codec for GVariant's "s", "o" and "g" types: the
// UTF-8 bytes of the string, followed by a single NUL terminator.
type stringCodec struct{}

// StringCodec returns the [Codec] for the GVariant "s" (string) type.
// The same codec also covers "o" (object path) and "g" (signature
// string): the wire layout is identical, only the signature letter
// differs.
func StringCodec() Codec[string] { return stringCodec{} }

func (stringCodec) Alignment() int         { return 1 }
func (stringCodec) FixedSize() (int, bool) { return 0, false }

func (stringCodec) Decode(data []byte) (string, error) {
	if len(data) == 0 || data[len(data)-1] != 0 {
		return "", malformed("string", "missing NUL terminator")
	}
	return string(data[:len(data)-1]), nil
}

func (stringCodec) Encode(v string) ([]byte, error) {
	out := make([]byte, 0, len(v)+1)
	out = append(out, v...)
	out = append(out, 0)
	return out, nil
}

// byteSliceCodec is a fast path over ArrayCodec(Uint8Codec()) that
// avoids per-element decode calls, grounded on the original
// implementation's dedicated byte-array decoder.
type byteSliceCodec struct{}

// ByteSliceCodec returns a [Codec] for the GVariant "ay" type
// (array of bytes) that decodes directly into a []byte, without going
// through the generic per-element array machinery.
func ByteSliceCodec() Codec[[]byte] { return byteSliceCodec{} }

func (byteSliceCodec) Alignment() int         { return 1 }
func (byteSliceCodec) FixedSize() (int, bool) { return 0, false }

func (byteSliceCodec) Decode(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (byteSliceCodec) Encode(v []byte) ([]byte, error) {
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}
