package s3file

import (
	"encoding/binary"
	"math"

	"github.com/speechbox/go-s3file/errlog"
	bin "github.com/speechbox/go-s3file/internal/binary"
)

// Element is the set of fixed-size numeric element types stored in s3 file
// payloads.
type Element interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 |
		int64 | uint64 | float32 | float64
}

// Get copies elSize*nEl bytes from the cursor into dst, byte-reversing each
// element when the file and host orders differ (1-byte elements are never
// swapped), and folds the delivered bytes into the running checksum. The
// cursor advances by the bytes consumed.
//
// Get is atomic: on any error nothing is copied and the cursor and checksum
// are unchanged. Requesting more bytes than remain yields ErrTruncated.
func (f *File) Get(dst []byte, elSize, nEl int) error {
	if !f.parsed {
		return ErrNoHeader
	}
	switch elSize {
	case 1, 2, 4, 8:
	default:
		return ErrElementSize
	}
	if nEl < 0 {
		panic("s3file: negative element count")
	}
	if nEl > 0 && elSize > math.MaxInt/nEl {
		return ErrTruncated
	}
	n := elSize * nEl
	if len(dst) < n {
		return ErrShortBuffer
	}
	if f.end-f.pos < n {
		errlog.Errorf("s3file: truncated read: want %d bytes, have %d", n, f.end-f.pos)
		return ErrTruncated
	}
	dst = dst[:n]
	copy(dst, f.buf[f.pos:f.pos+n])
	if f.swap {
		bin.Swap(dst, elSize)
	}
	f.chksum = bin.Accum(f.chksum, dst, elSize)
	f.pos += n
	return nil
}

// GetOne reads a single scalar element.
func GetOne[T Element](f *File) (T, error) {
	var zero T
	sz := elemSize[T]()
	var scratch [8]byte
	if err := f.Get(scratch[:sz], sz, 1); err != nil {
		return zero, err
	}
	var out [1]T
	decodeSlice(scratch[:sz], out[:])
	return out[0], nil
}

// Get1D reads a 4-byte element count followed by that many elements.
// Ownership of the returned slice passes to the caller. On error the cursor
// and checksum are restored to their values before the call.
func Get1D[T Element](f *File) ([]T, error) {
	pos, sum := f.pos, f.chksum
	n, err := f.getDim()
	if err != nil {
		f.pos, f.chksum = pos, sum
		return nil, err
	}
	out, err := getPayload[T](f, uint64(n))
	if err != nil {
		f.pos, f.chksum = pos, sum
		return nil, err
	}
	return out, nil
}

// Get2D reads 4-byte row and column counts followed by a row-major payload.
// Rows are subslices of a single backing array, so callers index [row][col]
// without knowing the storage layout. On error the cursor and checksum are
// restored to their values before the call.
func Get2D[T Element](f *File) ([][]T, error) {
	pos, sum := f.pos, f.chksum
	rows, err := f.getDim()
	if err != nil {
		f.pos, f.chksum = pos, sum
		return nil, err
	}
	cols, err := f.getDim()
	if err != nil {
		f.pos, f.chksum = pos, sum
		return nil, err
	}
	flat, err := getPayload[T](f, uint64(rows)*uint64(cols))
	if err != nil {
		f.pos, f.chksum = pos, sum
		return nil, err
	}
	out := make([][]T, rows)
	for i := range out {
		out[i] = flat[i*int(cols) : (i+1)*int(cols)]
	}
	return out, nil
}

// Get3D reads three 4-byte dimensions followed by the payload, returned as
// nested slices over a single backing array. On error the cursor and
// checksum are restored to their values before the call.
func Get3D[T Element](f *File) ([][][]T, error) {
	pos, sum := f.pos, f.chksum
	var dims [3]uint32
	for i := range dims {
		d, err := f.getDim()
		if err != nil {
			f.pos, f.chksum = pos, sum
			return nil, err
		}
		dims[i] = d
	}
	d1, d2, d3 := dims[0], dims[1], dims[2]

	total := uint64(d1) * uint64(d2)
	if d3 != 0 && total > math.MaxUint64/uint64(d3) {
		f.pos, f.chksum = pos, sum
		return nil, ErrTruncated
	}
	total *= uint64(d3)

	flat, err := getPayload[T](f, total)
	if err != nil {
		f.pos, f.chksum = pos, sum
		return nil, err
	}
	out := make([][][]T, d1)
	for i := range out {
		mat := make([][]T, d2)
		for j := range mat {
			base := (i*int(d2) + j) * int(d3)
			mat[j] = flat[base : base+int(d3)]
		}
		out[i] = mat
	}
	return out, nil
}

// getDim reads one 4-byte dimension through Get, so byte swapping and
// checksum accumulation apply to it like any other data. A dimension larger
// than the bytes remaining cannot be satisfied even when a sibling dimension
// is zero, so it is rejected before any row headers are allocated.
func (f *File) getDim() (uint32, error) {
	var b [4]byte
	if err := f.Get(b[:], 4, 1); err != nil {
		return 0, err
	}
	n := binary.NativeEndian.Uint32(b[:])
	if uint64(n) > uint64(f.end-f.pos) {
		errlog.Errorf("s3file: dimension %d exceeds %d bytes remaining", n, f.end-f.pos)
		return 0, ErrTruncated
	}
	return n, nil
}

// getPayload reads count elements after checking, without overflow, that
// the request fits in the bytes remaining.
func getPayload[T Element](f *File, count uint64) ([]T, error) {
	sz := elemSize[T]()
	if count > uint64(f.end-f.pos)/uint64(sz) {
		errlog.Errorf("s3file: truncated array: %d elements of %d bytes declared, %d bytes remain",
			count, sz, f.end-f.pos)
		return nil, ErrTruncated
	}
	out := make([]T, count)
	if count == 0 {
		return out, nil
	}
	raw := make([]byte, int(count)*sz)
	if err := f.Get(raw, sz, int(count)); err != nil {
		return nil, err
	}
	decodeSlice(raw, out)
	return out, nil
}

// elemSize returns the encoded size of T in bytes.
func elemSize[T Element]() int {
	var v T
	switch any(v).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	default:
		return 8
	}
}

// decodeSlice decodes native-order bytes into out. len(buf) must equal
// len(out) times the element size.
func decodeSlice[T Element](buf []byte, out []T) {
	switch out := any(out).(type) {
	case []int8:
		for i := range out {
			out[i] = int8(buf[i])
		}
	case []uint8:
		copy(out, buf)
	case []int16:
		for i := range out {
			out[i] = int16(binary.NativeEndian.Uint16(buf[2*i:]))
		}
	case []uint16:
		for i := range out {
			out[i] = binary.NativeEndian.Uint16(buf[2*i:])
		}
	case []int32:
		for i := range out {
			out[i] = int32(binary.NativeEndian.Uint32(buf[4*i:]))
		}
	case []uint32:
		for i := range out {
			out[i] = binary.NativeEndian.Uint32(buf[4*i:])
		}
	case []int64:
		for i := range out {
			out[i] = int64(binary.NativeEndian.Uint64(buf[8*i:]))
		}
	case []uint64:
		for i := range out {
			out[i] = binary.NativeEndian.Uint64(buf[8*i:])
		}
	case []float32:
		for i := range out {
			out[i] = math.Float32frombits(binary.NativeEndian.Uint32(buf[4*i:]))
		}
	case []float64:
		for i := range out {
			out[i] = math.Float64frombits(binary.NativeEndian.Uint64(buf[8*i:]))
		}
	}
}
