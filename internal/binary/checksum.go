package binary

import "encoding/binary"

// Accum folds the elements of buf into a running checksum using the Sphinx-3
// accumulator:
//
//	sum = (sum<<5 | sum>>27) + element
//
// buf must already be in native byte order (post-swap) and len(buf) must be a
// multiple of elSize. Elements are taken as unsigned values of their size;
// 8-byte elements fold as two 32-bit halves of the logical value, low half
// first, so the result does not depend on host byte order.
func Accum(sum uint32, buf []byte, elSize int) uint32 {
	switch elSize {
	case 1:
		for _, b := range buf {
			sum = rotl5(sum) + uint32(b)
		}
	case 2:
		for i := 0; i+2 <= len(buf); i += 2 {
			sum = rotl5(sum) + uint32(binary.NativeEndian.Uint16(buf[i:]))
		}
	case 4:
		for i := 0; i+4 <= len(buf); i += 4 {
			sum = rotl5(sum) + binary.NativeEndian.Uint32(buf[i:])
		}
	case 8:
		for i := 0; i+8 <= len(buf); i += 8 {
			sum = AccumValue(sum, binary.NativeEndian.Uint64(buf[i:]), 8)
		}
	}
	return sum
}

// AccumValue folds a single element's logical value into a running checksum.
// For element sizes below 8, v must already be masked to the element width.
func AccumValue(sum uint32, v uint64, elSize int) uint32 {
	if elSize == 8 {
		sum = rotl5(sum) + uint32(v)
		return rotl5(sum) + uint32(v>>32)
	}
	return rotl5(sum) + uint32(v)
}

func rotl5(x uint32) uint32 {
	return x<<5 | x>>27
}
