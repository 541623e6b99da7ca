// Package errs defines the sentinel errors returned by the listpack packages.
//
// Callers should compare with errors.Is, since most errors are wrapped with
// additional context such as offsets or sizes.
package errs

import "errors"

// Allocation and sizing errors.
var (
	// ErrAllocFailed indicates that the allocator could not provide the requested size.
	ErrAllocFailed = errors.New("listpack: allocation failed")

	// ErrSizeOverflow indicates that the resulting buffer would exceed the
	// maximum representable total size. No mutation is performed.
	ErrSizeOverflow = errors.New("listpack: total size overflow")
)

// Buffer state errors.
var (
	// ErrPoisoned indicates that a previous reallocation failed and the buffer
	// must not be used any further.
	ErrPoisoned = errors.New("listpack: buffer poisoned by failed reallocation")

	// ErrReleased indicates that the buffer was already returned to its allocator.
	ErrReleased = errors.New("listpack: buffer released")
)

// Element reference errors.
var (
	// ErrStaleRef indicates an element reference obtained before the most recent mutation.
	ErrStaleRef = errors.New("listpack: stale element reference")

	// ErrInvalidRef indicates a reference that does not point at an entry of the buffer.
	ErrInvalidRef = errors.New("listpack: invalid element reference")

	// ErrInvalidPlacement indicates an unknown insert placement.
	ErrInvalidPlacement = errors.New("listpack: invalid placement")
)

// Encoding errors.
var (
	// ErrCorruptBacklen indicates a reverse-length field longer than five bytes.
	ErrCorruptBacklen = errors.New("listpack: corrupt backlen")

	// ErrTruncated indicates that an entry extends past the end of the buffer.
	ErrTruncated = errors.New("listpack: truncated entry")

	// ErrUnknownEncoding indicates a tag byte that matches no encoding class.
	ErrUnknownEncoding = errors.New("listpack: unknown entry encoding")
)

// Layout errors reported when adopting existing bytes.
var (
	// ErrInvalidHeaderSize indicates data too short to hold the header and EOF byte.
	ErrInvalidHeaderSize = errors.New("listpack: invalid header size")

	// ErrTotalBytesMismatch indicates a header total_bytes field that differs from the data length.
	ErrTotalBytesMismatch = errors.New("listpack: total bytes mismatch")

	// ErrMissingEOF indicates that the last byte is not the EOF marker.
	ErrMissingEOF = errors.New("listpack: missing EOF marker")
)

// ErrInvalidOption indicates an invalid configuration value.
var ErrInvalidOption = errors.New("listpack: invalid option")
