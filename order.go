package gvariant

import "github.com/danderson/gvariant/internal/wire"

// A ByteOrder determines how multi-byte integers and floats belonging
// to a codec are laid out on the wire. It never affects the
// little-endian framing offsets used by variable-width arrays and
// tuples; those are a fixed part of the format, not a per-codec
// choice.
type ByteOrder = wire.ByteOrder

var (
	// LittleEndian lays out multi-byte values least-significant byte
	// first. It is GVariant's conventional default; every primitive
	// integer/float codec factory in this package uses it unless
	// wrapped in [WithByteOrder].
	LittleEndian = wire.LittleEndian
	// BigEndian lays out multi-byte values most-significant byte
	// first.
	BigEndian = wire.BigEndian
	// NativeEndian is whichever of LittleEndian or BigEndian matches
	// the host CPU. It's useful when building codecs for data that
	// will only ever be read back on the same machine, such as an
	// in-memory dconf-style cache.
	NativeEndian = wire.NativeEndian
)
