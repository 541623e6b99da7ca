// Package encoding implements the entry codec of the listpack format.
//
// Every entry is laid out as
//
//	[tag + payload][backlen]
//
// where the tag byte selects one of nine encoding classes and backlen stores
// the size of tag+payload so the entry can be found from its end.
//
// # Integer Classes
//
//	0xxxxxxx                 7-bit unsigned, 0..127
//	110xxxxx + 1 byte        13-bit signed, -4096..4095
//	0xF1 + 2 bytes           16-bit signed
//	0xF2 + 3 bytes           24-bit signed
//	0xF3 + 4 bytes           32-bit signed
//	0xF4 + 8 bytes           64-bit signed
//
// Multi-byte payloads are little-endian. Negative values below 64 bits are
// stored as (1<<bits)+v.
//
// # String Classes
//
//	10llllll                 length 0..63
//	1110llll + 1 byte        length 64..4095, (tag&0x0F)<<8 | next
//	0xF0 + 4 bytes           length up to 2^32-1, little-endian
//
// Integers and strings always use the smallest class that fits.
//
// # Backlen
//
// The backlen is a big-endian base-128 number. Only the first (most
// significant) byte has its high bit clear, so a reader positioned on the
// last byte scans backward until it meets that byte.
package encoding
