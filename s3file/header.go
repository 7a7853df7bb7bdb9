package s3file

import (
	"bytes"
	"encoding/binary"
	"math/bits"

	"github.com/speechbox/go-s3file/errlog"
)

// byteOrderMagic is the 4-byte sentinel written after the header terminator.
// A file written on a machine of the opposite byte order reads back as its
// byte reversal, which is how swapped files are detected.
const byteOrderMagic = 0x11223344

var (
	magicLine  = []byte("s3")
	endHdrLine = []byte("endhdr")
)

// ParseHeader consumes the textual header block and the byte-order marker,
// leaving the cursor at the first payload byte. It records each name/value
// line as a pair of spans into the file buffer, skipping comment and blank
// lines, and seeds the checksum accumulator to zero.
//
// Parsing is all-or-nothing: on error the handle is left exactly as before
// the call and must not be used for extraction. ParseHeader may succeed at
// most once per handle.
func (f *File) ParseHeader() error {
	if f.parsed {
		return ErrHeaderParsed
	}
	pos := f.pos

	start, stop, next, ok := f.nextLine(pos)
	if !ok || !bytes.Equal(f.buf[start:stop], magicLine) {
		errlog.Errorf("s3file: missing \"s3\" magic line")
		return ErrBadMagic
	}
	pos = next

	var headers []hdr
	for {
		start, stop, next, ok = f.nextLine(pos)
		if !ok {
			errlog.Errorf("s3file: header terminator \"endhdr\" not found")
			return ErrNoEndHeader
		}
		line := f.buf[start:stop]
		pos = next
		if bytes.Equal(line, endHdrLine) {
			break
		}
		if len(line) == 0 || line[0] == '#' || len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		name, value := splitPair(line)
		if name == nil {
			errlog.Errorf("s3file: malformed header line %q", line)
			return ErrBadHeaderLine
		}
		headers = append(headers, hdr{name: name, value: value})
	}

	if f.end-pos < 4 {
		errlog.Errorf("s3file: truncated byte-order marker")
		return ErrTruncated
	}
	marker := binary.NativeEndian.Uint32(f.buf[pos : pos+4])
	var swap bool
	switch {
	case marker == byteOrderMagic:
		swap = false
	case bits.ReverseBytes32(marker) == byteOrderMagic:
		swap = true
	default:
		errlog.Errorf("s3file: bad byte-order marker 0x%08x", marker)
		return ErrBadByteOrder
	}
	pos += 4

	f.headers = headers
	f.swap = swap
	f.chksum = 0
	f.pos = pos
	f.parsed = true
	return nil
}

// nextLine returns the extent of the line starting at pos and the offset
// just past its newline. ok is false when no newline remains before end.
func (f *File) nextLine(pos int) (start, stop, next int, ok bool) {
	i := bytes.IndexByte(f.buf[pos:f.end], '\n')
	if i < 0 {
		return 0, 0, 0, false
	}
	return pos, pos + i, pos + i + 1, true
}

// splitPair splits a header line into name and value spans. The name is the
// first whitespace-delimited field; the value is the remainder of the line
// with surrounding whitespace trimmed. Both are subslices of the file
// buffer. A nil name signals a line with no value.
func splitPair(line []byte) (name, value []byte) {
	trimmed := bytes.TrimLeft(line, " \t")
	i := bytes.IndexAny(trimmed, " \t")
	if i < 0 {
		return nil, nil
	}
	name = trimmed[:i]
	value = bytes.TrimSpace(trimmed[i:])
	if len(value) == 0 {
		return nil, nil
	}
	return name, value
}

// NumHeaders returns the number of parsed header entries.
func (f *File) NumHeaders() int {
	return len(f.headers)
}

// HeaderNameIs reports whether the idx'th header entry (0-based, file order)
// has the given name. The comparison is byte-exact against the stored span;
// nothing is copied. Returns false when idx is out of range.
func (f *File) HeaderNameIs(idx int, name string) bool {
	if idx < 0 || idx >= len(f.headers) {
		return false
	}
	return string(f.headers[idx].name) == name
}

// HeaderValueIs reports whether the idx'th header entry has the given value.
// Returns false when idx is out of range.
func (f *File) HeaderValueIs(idx int, value string) bool {
	if idx < 0 || idx >= len(f.headers) {
		return false
	}
	return string(f.headers[idx].value) == value
}

// HeaderName returns an owned copy of the idx'th header entry's name.
func (f *File) HeaderName(idx int) (string, error) {
	if idx < 0 || idx >= len(f.headers) {
		return "", ErrHeaderIndex
	}
	return string(f.headers[idx].name), nil
}

// HeaderValue returns an owned copy of the idx'th header entry's value.
func (f *File) HeaderValue(idx int) (string, error) {
	if idx < 0 || idx >= len(f.headers) {
		return "", ErrHeaderIndex
	}
	return string(f.headers[idx].value), nil
}

// Headers returns materialized copies of all header entries in file order.
func (f *File) Headers() []HeaderEntry {
	out := make([]HeaderEntry, len(f.headers))
	for i, h := range f.headers {
		out[i] = HeaderEntry{Name: string(h.name), Value: string(h.value)}
	}
	return out
}
