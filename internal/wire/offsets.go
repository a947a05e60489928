package wire

import "fmt"

// OffsetSize returns the width in bytes of a single framing offset
// within a composite whose serialized slice is length bytes long.
func OffsetSize(length int) int {
	switch {
	case length < 1<<8:
		return 1
	case length < 1<<16:
		return 2
	default:
		return 4
	}
}

// ReadOffset reads a single little-endian framing offset of the given
// width from the front of b. Framing offsets are always little-endian,
// independent of the byte order chosen for the surrounding value.
func ReadOffset(b []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(b[0]) | uint64(b[1])<<8
	case 4:
		return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24
	default:
		panic(fmt.Sprintf("invalid framing offset width %d", width))
	}
}

// AppendOffset appends a little-endian framing offset of the given
// width to buf.
func AppendOffset(buf []byte, value uint64, width int) []byte {
	switch width {
	case 0:
		return buf
	case 1:
		return append(buf, byte(value))
	case 2:
		return append(buf, byte(value), byte(value>>8))
	case 4:
		return append(buf, byte(value), byte(value>>8), byte(value>>16), byte(value>>24))
	default:
		panic(fmt.Sprintf("invalid framing offset width %d", width))
	}
}

// SelectOffsetWidth picks the smallest framing offset width w in
// {0, 1, 2, 4} such that payloadLen + w*count is representable in a
// w-byte unsigned integer, per the GVariant framing offset rules.
// Width 0 is chosen only when there are no offsets to write, so an
// empty payload with offsets still gets 1-byte offsets that a decoder
// can read back. It fails if even a 4-byte width would overflow, since
// GVariant has no wider offset representation.
func SelectOffsetWidth(payloadLen, count int) (int, error) {
	for _, w := range [...]int{0, 1, 2, 4} {
		if w == 0 && count > 0 {
			continue
		}
		limit := uint64(1) << uint(8*w)
		if uint64(payloadLen)+uint64(w)*uint64(count) < limit {
			return w, nil
		}
	}
	return 0, fmt.Errorf("too many or too large framing offsets to represent (payload %d bytes, %d offsets)", payloadLen, count)
}
