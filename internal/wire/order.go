// Package wire provides low-level byte-slice helpers for building and
// parsing GVariant serialized values.
//
// The helpers here do not know anything about GVariant's type system;
// they only know how to pad, align, and read/write fixed-width
// integers and little-endian framing offsets within a byte slice. It
// is the caller's responsibility to invoke them at the right points
// to produce a correct GVariant encoding.
package wire

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// A ByteOrder determines how multi-byte integers and floats are laid
// out on the wire. It does not affect framing offsets, which are
// always little-endian regardless of ByteOrder.
type ByteOrder interface {
	byteOrder
	// Native reports whether this ByteOrder matches the host's native
	// endianness.
	Native() bool
}

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

type wrapStd struct {
	byteOrder
	native bool
}

func (w wrapStd) Native() bool { return w.native }

var (
	// LittleEndian reads and writes multi-byte values least-significant
	// byte first.
	LittleEndian ByteOrder = wrapStd{binary.LittleEndian, !cpu.IsBigEndian}
	// BigEndian reads and writes multi-byte values most-significant
	// byte first.
	BigEndian ByteOrder = wrapStd{binary.BigEndian, cpu.IsBigEndian}
	// NativeEndian is whichever of LittleEndian or BigEndian matches the
	// host CPU's byte order.
	NativeEndian ByteOrder = nativeEndian()
)

func nativeEndian() ByteOrder {
	if cpu.IsBigEndian {
		return BigEndian
	}
	return LittleEndian
}
