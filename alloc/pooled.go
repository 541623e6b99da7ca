package alloc

import (
	"fmt"

	"github.com/arloliu/listpack/errs"
	"github.com/arloliu/listpack/internal/pool"
)

// pooledAllocator recycles backing arrays through a sync.Pool.
type pooledAllocator struct {
	get func() *pool.ByteBuffer
	put func(*pool.ByteBuffer)
}

// Pooled returns an allocator that draws backing arrays from the process-wide
// pool and returns them on Free. Suited to short-lived listpacks built and
// discarded at a high rate.
func Pooled() Allocator {
	return pooledAllocator{get: pool.GetBuffer, put: pool.PutBuffer}
}

// PooledWith returns an allocator with its own pool, using the given initial
// capacity and retention threshold. Buffers larger than maxRetained are not
// kept; zero keeps all.
func PooledWith(initialSize, maxRetained int) (Allocator, error) {
	if initialSize <= 0 {
		return nil, fmt.Errorf("%w: initial pool buffer size must be positive, got %d", errs.ErrInvalidOption, initialSize)
	}
	if maxRetained < 0 {
		return nil, fmt.Errorf("%w: negative retention threshold %d", errs.ErrInvalidOption, maxRetained)
	}

	p := pool.NewByteBufferPool(initialSize, maxRetained)

	return pooledAllocator{get: p.Get, put: p.Put}, nil
}

func (p pooledAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", errs.ErrAllocFailed, size)
	}

	bb := p.get()
	bb.Resize(size)
	clear(bb.B)

	return bb.B, nil
}

func (p pooledAllocator) Resize(buf []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", errs.ErrAllocFailed, size)
	}
	if size <= cap(buf) {
		return buf[:size], nil
	}

	bb := p.get()
	bb.B = append(bb.B, buf...)
	bb.Resize(size)
	p.Free(buf)

	return bb.B, nil
}

func (p pooledAllocator) Free(buf []byte) {
	if cap(buf) == 0 {
		return
	}

	p.put(&pool.ByteBuffer{B: buf})
}
