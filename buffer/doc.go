// Package buffer implements the listpack engine: a single growable
// allocation holding a header, a packed sequence of encoded entries and an
// EOF byte.
//
// # Layout
//
//	[total_bytes u32][num_elements u16][entry]...[0xFF]
//
// Both header fields are little-endian. num_elements is 0xFFFF once the count
// no longer fits; Length then scans and caches the count again when it drops
// back below that value. With WithoutHeader the header is omitted entirely.
//
// # References
//
// Entries are addressed by Ref, a byte offset stamped with the buffer
// generation. Every mutation bumps the generation, so a Ref obtained before a
// mutation is rejected with errs.ErrStaleRef. Mutations return a fresh Ref:
//
//	b, _ := buffer.New()
//	r, _ := b.Append(encoding.Int(20))
//	r, _ = b.Insert(encoding.String("x"), format.After, r)
//	v, _ := b.Get(r) // String("x")
//
// Traversal (First, Last, Next, Prev, Seek) never fails; it reports a
// missing element, a stale Ref or a corrupt entry as ok == false.
//
// # Failure
//
// A mutation that would exceed the maximum size fails with
// errs.ErrSizeOverflow before touching the buffer. A failed resize in the
// middle of a mutation poisons the buffer: the failure is logged and every
// later call returns errs.ErrPoisoned.
//
// A Buffer is not safe for concurrent use. Length may write the cached
// count back to the header and so counts as a mutation for that purpose.
package buffer
