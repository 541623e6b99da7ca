package buffer

import (
	"fmt"

	"github.com/arloliu/listpack/encoding"
	"github.com/arloliu/listpack/errs"
	"github.com/arloliu/listpack/format"
	"github.com/arloliu/listpack/section"
)

// Append adds v after the last entry.
//
// Returns:
//   - Ref: Reference to the new entry, valid until the next mutation
//   - error: errs.ErrSizeOverflow, errs.ErrPoisoned or errs.ErrReleased
func (b *Buffer) Append(v encoding.Value) (Ref, error) {
	if err := b.Err(); err != nil {
		return Ref{}, err
	}

	return b.insertAt(b.eof(), v)
}

// Insert adds v next to target.
//
// Before places v at target, pushing target back. After places v behind
// target. A zero target, End(), or After on the last entry appends.
//
// Parameters:
//   - v: Value to insert; a value borrowed from this buffer is copied first
//   - where: format.Before or format.After
//   - target: Reference from the current generation, or the zero Ref
//
// Returns:
//   - Ref: Reference to the new entry, valid until the next mutation
//   - error: Stale or invalid target, invalid placement, size overflow, or poisoning
func (b *Buffer) Insert(v encoding.Value, where format.Placement, target Ref) (Ref, error) {
	if err := b.Err(); err != nil {
		return Ref{}, err
	}
	if where != format.Before && where != format.After {
		return Ref{}, fmt.Errorf("%w: %d", errs.ErrInvalidPlacement, where)
	}
	if target.IsZero() {
		return b.insertAt(b.eof(), v)
	}

	off, err := b.resolve(target)
	if err != nil {
		return Ref{}, err
	}
	if where == format.After && b.data[off] != section.EOF {
		if off, err = b.nextOffset(off); err != nil {
			return Ref{}, err
		}
	}

	return b.insertAt(off, v)
}

// insertAt opens a gap at off, which is an entry boundary or the EOF byte,
// and encodes v into it.
func (b *Buffer) insertAt(off int, v encoding.Value) (Ref, error) {
	if v.Borrowed() {
		v = v.Clone()
	}

	size := v.EntrySize()
	oldLen := len(b.data)
	newLen := uint64(oldLen) + uint64(size) //nolint:gosec // both non-negative
	if newLen > uint64(b.maxSize) {
		return Ref{}, fmt.Errorf("%w: %d bytes exceeds max size %d", errs.ErrSizeOverflow, newLen, b.maxSize)
	}

	if err := b.resize(int(newLen)); err != nil { //nolint:gosec // bounded by maxSize
		return Ref{}, err
	}

	data := b.data
	copy(data[off+size:], data[off:oldLen])
	encoding.PutEntry(data[off:], v)
	data[len(data)-1] = section.EOF
	b.commit(1)

	return b.ref(off), nil
}

// Replace overwrites the entry at target with v. The element count is unchanged.
//
// An entry of equal size is rewritten in place. A larger one grows the
// buffer before shifting the tail right; a smaller one shifts the tail left
// before shrinking.
//
// Returns:
//   - Ref: Reference to the replaced entry at the new generation
//   - error: Stale or invalid target, size overflow, or poisoning
func (b *Buffer) Replace(target Ref, v encoding.Value) (Ref, error) {
	off, err := b.resolve(target)
	if err != nil {
		return Ref{}, err
	}

	tail, err := b.nextOffset(off)
	if err != nil {
		return Ref{}, err
	}
	if v.Borrowed() {
		v = v.Clone()
	}

	oldSize := tail - off
	newSize := v.EntrySize()
	oldLen := len(b.data)

	switch {
	case newSize > oldSize:
		delta := newSize - oldSize
		newLen := uint64(oldLen) + uint64(delta) //nolint:gosec // both non-negative
		if newLen > uint64(b.maxSize) {
			return Ref{}, fmt.Errorf("%w: %d bytes exceeds max size %d", errs.ErrSizeOverflow, newLen, b.maxSize)
		}
		if err := b.resize(int(newLen)); err != nil { //nolint:gosec // bounded by maxSize
			return Ref{}, err
		}
		copy(b.data[tail+delta:], b.data[tail:oldLen])
	case newSize < oldSize:
		delta := oldSize - newSize
		copy(b.data[off+newSize:], b.data[tail:oldLen])
		if err := b.resize(oldLen - delta); err != nil {
			return Ref{}, err
		}
	}

	encoding.PutEntry(b.data[off:], v)
	b.commit(0)

	return b.ref(off), nil
}

// Delete removes the entry at target.
//
// Returns:
//   - Ref: Reference to the entry that now occupies the position, or the
//     zero Ref if the deleted entry was the last one
//   - error: Stale or invalid target, or poisoning
func (b *Buffer) Delete(target Ref) (Ref, error) {
	off, err := b.resolve(target)
	if err != nil {
		return Ref{}, err
	}

	tail, err := b.nextOffset(off)
	if err != nil {
		return Ref{}, err
	}

	oldLen := len(b.data)
	copy(b.data[off:], b.data[tail:oldLen])
	if err := b.resize(oldLen - (tail - off)); err != nil {
		return Ref{}, err
	}
	b.commit(-1)

	if b.data[off] == section.EOF {
		return Ref{}, nil
	}

	return b.ref(off), nil
}
