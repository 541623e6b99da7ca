//go:build !unix

package alloc

// Mmap returns Heap() on platforms without anonymous memory mappings.
func Mmap() Allocator {
	return Heap()
}
