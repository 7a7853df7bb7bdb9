package s3file

import "sync/atomic"

// File is a shared-ownership read cursor over an s3 file image.
//
// The zero value is not usable; construct with New. Cursor-mutating
// operations (ParseHeader, Get and its derivatives, VerifyChecksum) are not
// safe for concurrent use on the same handle; Retain and Release are.
type File struct {
	buf     []byte
	pos     int
	end     int
	headers []hdr
	swap    bool
	chksum  uint32
	parsed  bool
	refcnt  atomic.Int32
}

// hdr is one header name/value pair, each a span into the file buffer.
type hdr struct {
	name  []byte
	value []byte
}

// HeaderEntry is a materialized copy of a header name/value pair.
type HeaderEntry struct {
	Name  string
	Value string
}

// New wraps an in-memory file image in a handle holding a single reference.
// The contents are not validated; call ParseHeader before extracting data.
func New(buf []byte) *File {
	f := &File{buf: buf, end: len(buf)}
	f.refcnt.Store(1)
	return f
}

// Retain adds a reference to the handle and returns it. Every Retain must be
// matched by a Release.
func (f *File) Retain() *File {
	f.refcnt.Add(1)
	return f
}

// Release drops a reference. Dropping the last reference clears the handle's
// bookkeeping and reports true; the borrowed buffer itself is untouched.
// Releasing a fully released handle panics.
func (f *File) Release() bool {
	n := f.refcnt.Add(-1)
	if n < 0 {
		panic("s3file: Release of released File")
	}
	if n > 0 {
		return false
	}
	f.buf = nil
	f.headers = nil
	f.parsed = false
	f.pos, f.end = 0, 0
	return true
}

// Swapped reports whether the file's byte order differs from the host's.
// Only meaningful after a successful ParseHeader.
func (f *File) Swapped() bool {
	return f.swap
}

// Checksum returns the running checksum accumulated over all data extracted
// so far.
func (f *File) Checksum() uint32 {
	return f.chksum
}

// Remaining returns the number of unread bytes between the cursor and the
// end of the buffer.
func (f *File) Remaining() int {
	return f.end - f.pos
}
