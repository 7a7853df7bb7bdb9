package s3file

import (
	"encoding/binary"

	"github.com/speechbox/go-s3file/errlog"
	bin "github.com/speechbox/go-s3file/internal/binary"
)

// VerifyChecksum reads the trailing 4-byte checksum word, interprets it in
// the file's byte order, and compares it against the accumulator built over
// all prior extraction calls. The stored word itself is not folded.
//
// Verification is opt-in and meaningful only after all payload data has been
// extracted; calling it earlier compares against a partial accumulator.
func (f *File) VerifyChecksum() error {
	if !f.parsed {
		return ErrNoHeader
	}
	if f.end-f.pos < 4 {
		errlog.Errorf("s3file: truncated checksum word")
		return ErrTruncated
	}
	var word [4]byte
	copy(word[:], f.buf[f.pos:f.pos+4])
	if f.swap {
		bin.Swap(word[:], 4)
	}
	stored := binary.NativeEndian.Uint32(word[:])
	f.pos += 4
	if stored != f.chksum {
		errlog.Errorf("s3file: checksum mismatch: stored 0x%08x, computed 0x%08x",
			stored, f.chksum)
		return ErrChecksum
	}
	return nil
}
