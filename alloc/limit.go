package alloc

import (
	"fmt"

	"github.com/arloliu/listpack/errs"
)

// limitAllocator refuses allocations above a fixed size.
type limitAllocator struct {
	inner Allocator
	max   int
}

// Limit wraps inner so that any Alloc or Resize above maxSize bytes fails
// with errs.ErrAllocFailed. A nil inner uses Heap.
//
// Unlike a buffer's maximum size, which is checked before a mutation starts,
// a refused resize happens mid-mutation and poisons the buffer.
func Limit(inner Allocator, maxSize int) Allocator {
	if inner == nil {
		inner = Heap()
	}

	return limitAllocator{inner: inner, max: maxSize}
}

func (l limitAllocator) Alloc(size int) ([]byte, error) {
	if size > l.max {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit %d", errs.ErrAllocFailed, size, l.max)
	}

	return l.inner.Alloc(size)
}

func (l limitAllocator) Resize(buf []byte, size int) ([]byte, error) {
	if size > l.max {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit %d", errs.ErrAllocFailed, size, l.max)
	}

	return l.inner.Resize(buf, size)
}

func (l limitAllocator) Free(buf []byte) {
	l.inner.Free(buf)
}
