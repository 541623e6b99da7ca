//go:build unix

package alloc

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/arloliu/listpack/errs"
)

// mmapAllocator keeps listpacks in anonymous private mappings outside the Go heap.
type mmapAllocator struct{}

// Mmap returns an allocator backed by anonymous memory mappings. The memory
// is invisible to the garbage collector, so large long-lived listpacks do not
// add to GC scan time. Every allocation occupies at least one page; Free must
// be called to return it.
//
// On platforms without mmap, Mmap returns Heap().
func Mmap() Allocator {
	return mmapAllocator{}
}

func (mmapAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", errs.ErrAllocFailed, size)
	}
	if size == 0 {
		return []byte{}, nil
	}

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %w", errs.ErrAllocFailed, size, err)
	}

	return data, nil
}

// Resize reslices within the mapped length and remaps beyond it. The mapping
// is tracked by its full length, so a shrunk slice can still grow back or be
// unmapped.
func (m mmapAllocator) Resize(buf []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", errs.ErrAllocFailed, size)
	}
	if size <= cap(buf) {
		return buf[:size], nil
	}

	grown, err := m.Alloc(max(size, 2*cap(buf)))
	if err != nil {
		return nil, err
	}
	copy(grown, buf)
	m.Free(buf)

	return grown[:size], nil
}

func (mmapAllocator) Free(buf []byte) {
	if cap(buf) == 0 {
		return
	}

	_ = unix.Munmap(buf[:cap(buf)])
}
