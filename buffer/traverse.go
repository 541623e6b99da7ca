package buffer

import (
	"fmt"

	"github.com/arloliu/listpack/encoding"
	"github.com/arloliu/listpack/errs"
	"github.com/arloliu/listpack/section"
)

// First returns the first entry.
func (b *Buffer) First() (Ref, bool) {
	if b.state != stateActive || b.data[b.start] == section.EOF {
		return Ref{}, false
	}

	return b.ref(b.start), true
}

// Last returns the last entry.
func (b *Buffer) Last() (Ref, bool) {
	if b.state != stateActive {
		return Ref{}, false
	}

	return b.Prev(b.ref(b.eof()))
}

// End returns a Ref to the EOF byte. It has no value, but Prev(End()) is the
// last entry and inserting at End appends.
func (b *Buffer) End() Ref {
	if b.state != stateActive {
		return Ref{}
	}

	return b.ref(b.eof())
}

// Next returns the entry following r.
func (b *Buffer) Next(r Ref) (Ref, bool) {
	off, err := b.resolve(r)
	if err != nil {
		return Ref{}, false
	}

	next, err := b.nextOffset(off)
	if err != nil || next >= b.eof() {
		return Ref{}, false
	}

	return b.ref(next), true
}

// Prev returns the entry preceding r. r may be End().
func (b *Buffer) Prev(r Ref) (Ref, bool) {
	off, err := b.resolve(r)
	if err != nil || off <= b.start {
		return Ref{}, false
	}

	prev, err := b.prevOffset(off)
	if err != nil {
		return Ref{}, false
	}

	return b.ref(prev), true
}

// nextOffset returns the offset just past the entry at off.
func (b *Buffer) nextOffset(off int) (int, error) {
	if b.data[off] == section.EOF {
		return 0, fmt.Errorf("%w: offset %d is the EOF byte", errs.ErrInvalidRef, off)
	}

	size, err := encoding.EntrySize(b.data[off:])
	if err != nil {
		return 0, fmt.Errorf("entry at %d: %w", off, err)
	}

	next := off + size
	if next > b.eof() {
		return 0, fmt.Errorf("%w: entry at %d of %d bytes passes EOF at %d", errs.ErrTruncated, off, size, b.eof())
	}

	return next, nil
}

// prevOffset returns the offset of the entry ending just before off.
func (b *Buffer) prevOffset(off int) (int, error) {
	l, n, err := encoding.DecodeBacklen(b.data[:off], off-1)
	if err != nil {
		return 0, fmt.Errorf("backlen before %d: %w", off, err)
	}

	prev := off - n - int(l) //nolint:gosec // l is at most 35 bits
	if prev < b.start {
		return 0, fmt.Errorf("%w: backlen before %d points to %d", errs.ErrCorruptBacklen, off, prev)
	}

	return prev, nil
}

// Get decodes the value of the entry at r.
//
// String values alias the buffer and are only valid until the next mutation;
// see encoding.Value.Clone.
//
// Returns:
//   - encoding.Value: Decoded value; an unrecognized tag decodes to an
//     integer at encoding.UnknownEncodingBase plus the tag byte
//   - error: Stale or invalid ref, truncated entry, or unusable buffer
func (b *Buffer) Get(r Ref) (encoding.Value, error) {
	off, err := b.resolve(r)
	if err != nil {
		return encoding.Value{}, err
	}
	if b.data[off] == section.EOF {
		return encoding.Value{}, fmt.Errorf("%w: offset %d is the EOF byte", errs.ErrInvalidRef, off)
	}

	return encoding.Decode(b.data[off:b.eof()])
}

// Seek returns the entry at index. Negative indexes count from the tail, -1
// being the last entry.
//
// When the element count is known the scan starts from whichever end is
// closer. Otherwise non-negative indexes scan from the head and negative
// ones from the tail.
func (b *Buffer) Seek(index int) (Ref, bool) {
	if b.state != stateActive {
		return Ref{}, false
	}

	if n, ok := b.cachedCount(); ok {
		if index < 0 {
			index += n
		}
		if index < 0 || index >= n {
			return Ref{}, false
		}
		if index > n/2 {
			r, ok := b.Last()
			return b.walkBackward(r, ok, n-1-index)
		}
		r, ok := b.First()

		return b.walkForward(r, ok, index)
	}

	if index >= 0 {
		r, ok := b.First()
		return b.walkForward(r, ok, index)
	}
	r, ok := b.Last()

	return b.walkBackward(r, ok, -index-1)
}

func (b *Buffer) walkForward(r Ref, ok bool, steps int) (Ref, bool) {
	for ; ok && steps > 0; steps-- {
		r, ok = b.Next(r)
	}

	return r, ok
}

func (b *Buffer) walkBackward(r Ref, ok bool, steps int) (Ref, bool) {
	for ; ok && steps > 0; steps-- {
		r, ok = b.Prev(r)
	}

	return r, ok
}

// cachedCount returns the header element count when it is exact.
func (b *Buffer) cachedCount() (int, bool) {
	if !b.header {
		return 0, false
	}

	h, err := section.ParseHeader(b.data)
	if err != nil || !h.CountKnown() {
		return 0, false
	}

	return int(h.NumElements), true
}

// Length returns the number of entries.
//
// It is O(1) while the header count is exact. Otherwise it scans every entry
// and, if the count fits again, writes it back to the header.
//
// Returns:
//   - int: Number of entries
//   - error: Unusable buffer, or a corrupt entry found while scanning
func (b *Buffer) Length() (int, error) {
	if err := b.Err(); err != nil {
		return 0, err
	}
	if n, ok := b.cachedCount(); ok {
		return n, nil
	}

	count := 0
	for off := b.start; b.data[off] != section.EOF; count++ {
		next, err := b.nextOffset(off)
		if err != nil {
			return 0, err
		}
		off = next
	}

	if b.header && count < section.NumElementsUnknown {
		section.SetNumElements(b.data, uint16(count)) //nolint:gosec // checked above
		b.logger.Debug("Listpack element count cached", "count", count)
	}

	return count, nil
}
