package s3file

import "errors"

// Common errors
var (
	ErrBadMagic      = errors.New("not an s3 file")
	ErrNoEndHeader   = errors.New("header terminator not found")
	ErrBadHeaderLine = errors.New("malformed header line")
	ErrBadByteOrder  = errors.New("unrecognized byte-order marker")
	ErrHeaderParsed  = errors.New("header already parsed")
	ErrHeaderWritten = errors.New("header already written")
	ErrNoHeader      = errors.New("s3 header missing")
	ErrHeaderIndex   = errors.New("header index out of range")
	ErrTruncated     = errors.New("truncated s3 data")
	ErrElementSize   = errors.New("invalid element size: must be 1, 2, 4, or 8")
	ErrShortBuffer   = errors.New("buffer too small for requested elements")
	ErrChecksum      = errors.New("checksum mismatch")
	ErrFinished      = errors.New("writer already finished")
)
