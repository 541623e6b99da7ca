// Package section defines the fixed header of a listpack buffer.
//
// # Layout
//
// A listpack is one contiguous allocation:
//
//	[ total_bytes: u32 ][ num_elements: u16 ][ entry ]* [ 0xFF ]
//
// All header fields are little-endian.
//
//   - total_bytes: size of the whole allocation, including the header and the
//     trailing EOF byte. It always equals the allocation length.
//   - num_elements: exact number of entries, or 0xFFFF (NumElementsUnknown)
//     once the count has reached 65535. An unknown count is recovered by
//     scanning the entries.
//
// The EOF byte (0xFF) terminates the entry sequence and is never a valid tag.
// Header-less buffers omit the 6-byte header entirely but keep the EOF byte.
//
// # Usage
//
//	h := section.NewHeader()   // empty listpack: 7 bytes, 0 elements
//	buf := make([]byte, section.EmptySize)
//	_ = h.Put(buf)
//	buf[section.HeaderSize] = section.EOF
//
//	parsed, err := section.ParseHeader(buf)
package section
