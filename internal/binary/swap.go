// Package binary provides low-level byte-swap and checksum primitives for
// s3 binary file parsing and writing.
package binary

// Swap reverses the byte order of each elSize-wide element of buf in place.
// len(buf) must be a multiple of elSize. Element sizes of 1 or less are a
// no-op since single bytes have no order.
func Swap(buf []byte, elSize int) {
	if elSize <= 1 {
		return
	}
	for i := 0; i < len(buf); i += elSize {
		for j, k := i, i+elSize-1; j < k; j, k = j+1, k-1 {
			buf[j], buf[k] = buf[k], buf[j]
		}
	}
}
