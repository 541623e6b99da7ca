package section

import (
	"fmt"
	"math"

	"github.com/arloliu/listpack/endian"
	"github.com/arloliu/listpack/errs"
)

// offsets and sizes of the listpack header
const (
	HeaderSize         = 6              // fixed header size in bytes
	TotalBytesOffset   = 0              // byte offset of total_bytes (u32)
	NumElementsOffset  = 4              // byte offset of num_elements (u16)
	NumElementsUnknown = math.MaxUint16 // num_elements sentinel: count must be obtained by scanning
	EOF                = 0xFF           // terminator byte, never a valid tag
	MaxTotalBytes      = math.MaxUint32 // largest representable total_bytes
)

// EmptySize is the size of a listpack with no entries: header plus EOF byte.
const EmptySize = HeaderSize + 1

// Header represents the fixed 6-byte header at the start of a listpack.
type Header struct {
	// TotalBytes is the size of the whole allocation, including header and EOF.
	TotalBytes uint32 // byte offset 0-3
	// NumElements is the exact entry count, or NumElementsUnknown.
	NumElements uint16 // byte offset 4-5
}

// NewHeader returns the header of an empty listpack.
func NewHeader() Header {
	return Header{TotalBytes: EmptySize}
}

// CountKnown reports whether NumElements holds an exact count.
func (h Header) CountKnown() bool {
	return h.NumElements != NumElementsUnknown
}

// Parse parses the header from the first HeaderSize bytes of data.
//
// Parameters:
//   - data: Byte slice starting with the header (must be at least 6 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is shorter than the header
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	h.TotalBytes = engine.Uint32(data[TotalBytesOffset:])
	h.NumElements = engine.Uint16(data[NumElementsOffset:])

	return nil
}

// Put writes the header into the first HeaderSize bytes of data.
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is shorter than the header
func (h Header) Put(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	engine.PutUint32(data[TotalBytesOffset:], h.TotalBytes)
	engine.PutUint16(data[NumElementsOffset:], h.NumElements)

	return nil
}

// Bytes serializes the header into a new byte slice.
func (h Header) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()
	b := make([]byte, 0, HeaderSize)
	b = engine.AppendUint32(b, h.TotalBytes)
	b = engine.AppendUint16(b, h.NumElements)

	return b
}

// ParseHeader parses a Header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 6 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize if data is too short
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}

// TotalBytes reads the total_bytes field directly. Returns 0 when data is too short.
func TotalBytes(data []byte) uint32 {
	if len(data) < HeaderSize {
		return 0
	}

	return endian.GetLittleEndianEngine().Uint32(data[TotalBytesOffset:])
}

// SetTotalBytes writes the total_bytes field directly. It is a no-op when data is too short.
func SetTotalBytes(data []byte, v uint32) {
	if len(data) < HeaderSize {
		return
	}
	endian.GetLittleEndianEngine().PutUint32(data[TotalBytesOffset:], v)
}

// NumElements reads the num_elements field directly. Returns NumElementsUnknown when data is too short.
func NumElements(data []byte) uint16 {
	if len(data) < HeaderSize {
		return NumElementsUnknown
	}

	return endian.GetLittleEndianEngine().Uint16(data[NumElementsOffset:])
}

// SetNumElements writes the num_elements field directly. It is a no-op when data is too short.
func SetNumElements(data []byte, v uint16) {
	if len(data) < HeaderSize {
		return
	}
	endian.GetLittleEndianEngine().PutUint16(data[NumElementsOffset:], v)
}
