package buffer

import (
	"iter"

	"github.com/arloliu/listpack/encoding"
)

// All iterates over the entries from head to tail.
//
// Iteration stops early at a corrupt entry or when the buffer is mutated by
// the loop body, since the Ref held by the iterator goes stale.
func (b *Buffer) All() iter.Seq2[Ref, encoding.Value] {
	return func(yield func(Ref, encoding.Value) bool) {
		for r, ok := b.First(); ok; r, ok = b.Next(r) {
			v, err := b.Get(r)
			if err != nil || !yield(r, v) {
				return
			}
		}
	}
}

// Backward iterates over the entries from tail to head.
func (b *Buffer) Backward() iter.Seq2[Ref, encoding.Value] {
	return func(yield func(Ref, encoding.Value) bool) {
		for r, ok := b.Last(); ok; r, ok = b.Prev(r) {
			v, err := b.Get(r)
			if err != nil || !yield(r, v) {
				return
			}
		}
	}
}

// Values iterates over the entry values from head to tail.
func (b *Buffer) Values() iter.Seq[encoding.Value] {
	return func(yield func(encoding.Value) bool) {
		for _, v := range b.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Indexed iterates over the entry values with their zero-based index.
func (b *Buffer) Indexed() iter.Seq2[int, encoding.Value] {
	return func(yield func(int, encoding.Value) bool) {
		i := 0
		for _, v := range b.All() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Find returns the first entry equal to v.
func (b *Buffer) Find(v encoding.Value) (Ref, bool) {
	for r, got := range b.All() {
		if got.Equal(v) {
			return r, true
		}
	}

	return Ref{}, false
}
