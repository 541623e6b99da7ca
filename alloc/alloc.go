// Package alloc provides the resizable-memory capability a listpack buffer
// grows and shrinks through.
//
// A listpack is one contiguous allocation. Every mutation resizes it, and any
// resize may move it, so callers hold byte offsets rather than slices into
// the old memory.
package alloc

import (
	"fmt"

	"github.com/arloliu/listpack/errs"
)

// Allocator manages the single backing allocation of a listpack.
type Allocator interface {
	// Alloc returns a zeroed slice of exactly size bytes.
	Alloc(size int) ([]byte, error)

	// Resize returns a slice of exactly size bytes whose first min(len(buf), size)
	// bytes equal those of buf. The result may or may not share memory with buf;
	// buf must not be used after a successful call.
	Resize(buf []byte, size int) ([]byte, error)

	// Free releases buf. It must not be used afterwards.
	Free(buf []byte)
}

// heapAllocator reslices within capacity and grows geometrically beyond it.
type heapAllocator struct{}

// Heap returns the default allocator backed by the Go heap.
//
// Shrinking keeps the capacity, so an append after a delete does not copy.
func Heap() Allocator {
	return heapAllocator{}
}

func (heapAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", errs.ErrAllocFailed, size)
	}

	return make([]byte, size), nil
}

func (heapAllocator) Resize(buf []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", errs.ErrAllocFailed, size)
	}
	if size <= cap(buf) {
		return buf[:size], nil
	}

	newCap := max(size, 2*cap(buf))
	grown := make([]byte, size, newCap)
	copy(grown, buf)

	return grown, nil
}

func (heapAllocator) Free([]byte) {}

// exactAllocator copies on every resize, like a realloc that always moves.
type exactAllocator struct{}

// Exact returns an allocator that allocates exactly the requested size and
// moves the data on every resize. It keeps memory tight and surfaces any
// caller that holds on to a slice across a mutation.
func Exact() Allocator {
	return exactAllocator{}
}

func (exactAllocator) Alloc(size int) ([]byte, error) {
	return heapAllocator{}.Alloc(size)
}

func (exactAllocator) Resize(buf []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", errs.ErrAllocFailed, size)
	}

	moved := make([]byte, size)
	copy(moved, buf)

	return moved, nil
}

func (exactAllocator) Free([]byte) {}
