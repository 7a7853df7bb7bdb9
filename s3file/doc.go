// Package s3file reads and writes Sphinx-3 binary model files held in
// memory.
//
// An s3 file is a textual prologue followed by byte-order-sensitive binary
// payload and a trailing integrity word:
//
//	s3
//	<name> <value>
//	...
//	endhdr
//	<4-byte byte-order marker>
//	<payload: scalars, 1-D/2-D/3-D arrays>
//	<4-byte trailing checksum>
//
// Lines beginning with # in the prologue are comments. The marker after
// endhdr records the writer's byte order; multi-byte payload values are
// swapped on read when it differs from the host's.
//
// A File wraps a borrowed buffer (for example an mmap'd region) with a read
// cursor. Call ParseHeader once, then walk the payload with Get, GetOne,
// Get1D, Get2D, and Get3D in the order the file was written, and optionally
// VerifyChecksum at the end. The buffer's lifetime is the caller's
// responsibility; File never copies, mutates, or frees it.
package s3file
