package s3file

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	bin "github.com/speechbox/go-s3file/internal/binary"
)

// Writer builds an s3 file image in memory, reproducing the on-disk layout
// bit for bit. The byte order is fixed at construction; the trailing
// checksum word is appended by Finish.
type Writer struct {
	buf         bytes.Buffer
	order       binary.ByteOrder
	chksum      uint32
	wroteHeader bool
	finished    bool
}

// NewWriter returns a Writer emitting the given byte order. A nil order
// selects the host's native order.
func NewWriter(order binary.ByteOrder) *Writer {
	if order == nil {
		order = binary.NativeEndian
	}
	return &Writer{order: order}
}

// WriteHeader writes the magic line, the given name/value pairs, the
// terminator line, and the byte-order marker, and resets the checksum
// accumulator. It must be called exactly once, before any payload.
func (w *Writer) WriteHeader(entries ...HeaderEntry) error {
	if w.finished {
		return ErrFinished
	}
	if w.wroteHeader {
		return ErrHeaderWritten
	}
	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return err
		}
	}
	w.buf.WriteString("s3\n")
	for _, e := range entries {
		w.buf.WriteString(e.Name)
		w.buf.WriteByte(' ')
		w.buf.WriteString(e.Value)
		w.buf.WriteByte('\n')
	}
	w.buf.WriteString("endhdr\n")
	var marker [4]byte
	w.order.PutUint32(marker[:], byteOrderMagic)
	w.buf.Write(marker[:])
	w.wroteHeader = true
	w.chksum = 0
	return nil
}

// validateEntry rejects entries that would not survive a parse round-trip.
func validateEntry(e HeaderEntry) error {
	if e.Name == "" {
		return fmt.Errorf("empty header name")
	}
	if strings.HasPrefix(e.Name, "#") {
		return fmt.Errorf("header name %q starts a comment", e.Name)
	}
	if strings.ContainsAny(e.Name, " \t\n") {
		return fmt.Errorf("header name %q contains whitespace", e.Name)
	}
	if e.Value == "" || strings.ContainsRune(e.Value, '\n') {
		return fmt.Errorf("invalid header value %q for %s", e.Value, e.Name)
	}
	if e.Value != strings.Trim(e.Value, " \t") {
		return fmt.Errorf("header value %q for %s has surrounding whitespace", e.Value, e.Name)
	}
	return nil
}

// Put appends pre-encoded native-order elements, re-encoding each in the
// writer's byte order and folding it into the checksum. len(data) must be a
// multiple of elSize.
func (w *Writer) Put(data []byte, elSize int) error {
	if err := w.ready(); err != nil {
		return err
	}
	switch elSize {
	case 1, 2, 4, 8:
	default:
		return ErrElementSize
	}
	if len(data)%elSize != 0 {
		return fmt.Errorf("data length %d is not a multiple of element size %d", len(data), elSize)
	}
	for i := 0; i < len(data); i += elSize {
		w.putValue(logicalValue(data[i:i+elSize], elSize), elSize)
	}
	return nil
}

// PutOne appends a single scalar element.
func PutOne[T Element](w *Writer, v T) error {
	if err := w.ready(); err != nil {
		return err
	}
	w.putValue(encodeValue(v), elemSize[T]())
	return nil
}

// Put1D appends a 4-byte element count followed by the elements.
func Put1D[T Element](w *Writer, data []T) error {
	if err := w.ready(); err != nil {
		return err
	}
	w.putValue(uint64(uint32(len(data))), 4)
	putSlice(w, data)
	return nil
}

// Put2D appends 4-byte row and column counts followed by the rows in order.
// All rows must have the same length.
func Put2D[T Element](w *Writer, data [][]T) error {
	if err := w.ready(); err != nil {
		return err
	}
	cols := 0
	if len(data) > 0 {
		cols = len(data[0])
	}
	for _, row := range data {
		if len(row) != cols {
			return fmt.Errorf("ragged rows: %d and %d columns", cols, len(row))
		}
	}
	w.putValue(uint64(uint32(len(data))), 4)
	w.putValue(uint64(uint32(cols)), 4)
	for _, row := range data {
		putSlice(w, row)
	}
	return nil
}

// Put3D appends three 4-byte dimensions followed by the elements in
// [d1][d2][d3] order. All inner slices must have matching lengths.
func Put3D[T Element](w *Writer, data [][][]T) error {
	if err := w.ready(); err != nil {
		return err
	}
	d2, d3 := 0, 0
	if len(data) > 0 {
		d2 = len(data[0])
		if d2 > 0 {
			d3 = len(data[0][0])
		}
	}
	for _, mat := range data {
		if len(mat) != d2 {
			return fmt.Errorf("ragged matrices: %d and %d rows", d2, len(mat))
		}
		for _, row := range mat {
			if len(row) != d3 {
				return fmt.Errorf("ragged rows: %d and %d columns", d3, len(row))
			}
		}
	}
	w.putValue(uint64(uint32(len(data))), 4)
	w.putValue(uint64(uint32(d2)), 4)
	w.putValue(uint64(uint32(d3)), 4)
	for _, mat := range data {
		for _, row := range mat {
			putSlice(w, row)
		}
	}
	return nil
}

// Finish appends the trailing checksum word, which is not itself folded,
// and returns the complete file image. The Writer cannot be used again.
func (w *Writer) Finish() ([]byte, error) {
	if err := w.ready(); err != nil {
		return nil, err
	}
	var word [4]byte
	w.order.PutUint32(word[:], w.chksum)
	w.buf.Write(word[:])
	w.finished = true
	return w.buf.Bytes(), nil
}

// Checksum returns the running checksum accumulated over the payload
// written so far.
func (w *Writer) Checksum() uint32 {
	return w.chksum
}

func (w *Writer) ready() error {
	if w.finished {
		return ErrFinished
	}
	if !w.wroteHeader {
		return ErrNoHeader
	}
	return nil
}

// putValue encodes one element's logical value in the writer's byte order
// and folds it into the checksum. v must be masked to the element width for
// sizes below 8.
func (w *Writer) putValue(v uint64, elSize int) {
	var b [8]byte
	switch elSize {
	case 1:
		b[0] = byte(v)
	case 2:
		w.order.PutUint16(b[:2], uint16(v))
	case 4:
		w.order.PutUint32(b[:4], uint32(v))
	case 8:
		w.order.PutUint64(b[:8], v)
	}
	w.buf.Write(b[:elSize])
	w.chksum = bin.AccumValue(w.chksum, v, elSize)
}

func putSlice[T Element](w *Writer, data []T) {
	sz := elemSize[T]()
	for _, v := range data {
		w.putValue(encodeValue(v), sz)
	}
}

// encodeValue returns the element's logical value zero-extended to uint64.
func encodeValue[T Element](v T) uint64 {
	switch v := any(v).(type) {
	case int8:
		return uint64(uint8(v))
	case uint8:
		return uint64(v)
	case int16:
		return uint64(uint16(v))
	case uint16:
		return uint64(v)
	case int32:
		return uint64(uint32(v))
	case uint32:
		return uint64(v)
	case int64:
		return uint64(v)
	case uint64:
		return v
	case float32:
		return uint64(math.Float32bits(v))
	case float64:
		return math.Float64bits(v)
	}
	return 0
}

// logicalValue decodes one native-order element into its logical value.
func logicalValue(b []byte, elSize int) uint64 {
	switch elSize {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.NativeEndian.Uint16(b))
	case 4:
		return uint64(binary.NativeEndian.Uint32(b))
	default:
		return binary.NativeEndian.Uint64(b)
	}
}
