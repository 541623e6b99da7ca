package buffer

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/listpack/alloc"
	"github.com/arloliu/listpack/errs"
	"github.com/arloliu/listpack/internal/hash"
	"github.com/arloliu/listpack/internal/options"
	"github.com/arloliu/listpack/section"
)

type bufferState uint8

const (
	stateActive bufferState = iota

	// statePoisoned indicates a failed resize in the middle of a mutation.
	// All operations are disabled.
	statePoisoned

	// stateReleased indicates the allocation was returned to the allocator.
	stateReleased
)

// Ref addresses one entry of a Buffer, or its EOF byte, at one generation.
// The zero Ref refers to nothing; as an insert target it means the tail.
type Ref struct {
	off uint32
	gen uint64
}

// IsZero reports whether r is the zero Ref.
func (r Ref) IsZero() bool {
	return r.gen == 0
}

// Offset returns the byte offset of the entry's tag from the start of the buffer.
func (r Ref) Offset() int {
	return int(r.off)
}

// Generation returns the buffer generation r was issued at.
func (r Ref) Generation() uint64 {
	return r.gen
}

// Buffer is a listpack: one contiguous allocation of encoded entries.
type Buffer struct {
	data      []byte
	allocator alloc.Allocator
	logger    *slog.Logger
	err       error // cause of poisoning
	gen       uint64
	maxSize   uint32
	start     int // offset of the first entry
	header    bool
	state     bufferState
}

func newBuffer(opts []Option) (*Buffer, *Config, error) {
	cfg := NewConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	b := &Buffer{
		allocator: cfg.allocator,
		logger:    cfg.logger,
		gen:       1,
		maxSize:   cfg.maxSize,
		start:     cfg.start(),
		header:    !cfg.noHeader,
	}

	return b, cfg, nil
}

// New creates an empty listpack: the header (unless WithoutHeader is given)
// followed by the EOF byte.
//
// Returns:
//   - *Buffer: Empty buffer
//   - error: errs.ErrInvalidOption for bad options, or the allocator error
func New(opts ...Option) (*Buffer, error) {
	b, _, err := newBuffer(opts)
	if err != nil {
		return nil, err
	}

	size := b.start + 1
	data, err := b.allocator.Alloc(size)
	if err != nil {
		return nil, fmt.Errorf("allocate empty listpack: %w", err)
	}
	data[size-1] = section.EOF
	b.data = data

	if b.header {
		if err := section.NewHeader().Put(data); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Load adopts a copy of an encoded listpack.
//
// The copy is placed in memory obtained from the configured allocator. With
// a header, total_bytes must equal len(data); in both modes the last byte
// must be EOF. A validator set with WithValidator runs afterwards.
//
// Parameters:
//   - data: Encoded listpack; it is not retained
//   - opts: Construction options; WithoutHeader must match how data was written
//
// Returns:
//   - *Buffer: Buffer owning a copy of data
//   - error: Layout or validator error
func Load(data []byte, opts ...Option) (*Buffer, error) {
	b, cfg, err := newBuffer(opts)
	if err != nil {
		return nil, err
	}

	if len(data) < b.start+1 {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", errs.ErrInvalidHeaderSize, len(data), b.start+1)
	}
	if uint64(len(data)) > uint64(b.maxSize) {
		return nil, fmt.Errorf("%w: %d bytes exceeds max size %d", errs.ErrSizeOverflow, len(data), b.maxSize)
	}
	if b.header {
		h, err := section.ParseHeader(data)
		if err != nil {
			return nil, err
		}
		if int(h.TotalBytes) != len(data) {
			return nil, fmt.Errorf("%w: header says %d, have %d", errs.ErrTotalBytesMismatch, h.TotalBytes, len(data))
		}
	}
	if data[len(data)-1] != section.EOF {
		return nil, fmt.Errorf("%w: last byte is 0x%02x", errs.ErrMissingEOF, data[len(data)-1])
	}
	if cfg.validator != nil {
		if err := cfg.validator(data); err != nil {
			return nil, fmt.Errorf("validate listpack: %w", err)
		}
	}

	owned, err := b.allocator.Alloc(len(data))
	if err != nil {
		return nil, fmt.Errorf("allocate listpack: %w", err)
	}
	copy(owned, data)
	b.data = owned

	return b, nil
}

// Release returns the allocation to the allocator. The buffer cannot be used
// afterwards. A poisoned buffer can still be released.
func (b *Buffer) Release() error {
	if b.state == stateReleased {
		return errs.ErrReleased
	}

	b.allocator.Free(b.data)
	b.data = nil
	b.state = stateReleased
	b.gen++

	return nil
}

// Err returns nil while the buffer is usable, otherwise errs.ErrPoisoned
// (wrapping the allocator failure) or errs.ErrReleased.
func (b *Buffer) Err() error {
	switch b.state {
	case statePoisoned:
		return fmt.Errorf("%w: %w", errs.ErrPoisoned, b.err)
	case stateReleased:
		return errs.ErrReleased
	default:
		return nil
	}
}

// HasHeader reports whether the buffer maintains the 6-byte header.
func (b *Buffer) HasHeader() bool {
	return b.header
}

// Bytes returns the encoded listpack. The slice aliases the buffer and is
// valid until the next mutation. It is nil once the buffer is unusable.
func (b *Buffer) Bytes() []byte {
	if b.state != stateActive {
		return nil
	}

	return b.data
}

// TotalBytes returns the size of the allocation, header and EOF included.
func (b *Buffer) TotalBytes() int {
	if b.state != stateActive {
		return 0
	}

	return len(b.data)
}

// Generation returns the current generation. It changes on every mutation.
func (b *Buffer) Generation() uint64 {
	return b.gen
}

// Digest returns the xxHash64 of the entry region and EOF byte. The header is
// excluded, so buffers holding the same entries digest equally with or
// without a header.
func (b *Buffer) Digest() (uint64, error) {
	if err := b.Err(); err != nil {
		return 0, err
	}

	return hash.Sum(b.data[b.start:]), nil
}

// eof returns the offset of the EOF byte.
func (b *Buffer) eof() int {
	return len(b.data) - 1
}

func (b *Buffer) ref(off int) Ref {
	return Ref{off: uint32(off), gen: b.gen} //nolint:gosec // offsets are bounded by maxSize
}

// resolve validates r against the current generation and returns its offset.
func (b *Buffer) resolve(r Ref) (int, error) {
	if err := b.Err(); err != nil {
		return 0, err
	}
	if r.gen != b.gen {
		return 0, fmt.Errorf("%w: ref generation %d, buffer generation %d", errs.ErrStaleRef, r.gen, b.gen)
	}

	off := int(r.off)
	if off < b.start || off > b.eof() {
		return 0, fmt.Errorf("%w: offset %d outside [%d, %d]", errs.ErrInvalidRef, off, b.start, b.eof())
	}

	return off, nil
}

// resize moves the buffer to an allocation of size bytes, poisoning it on failure.
func (b *Buffer) resize(size int) error {
	data, err := b.allocator.Resize(b.data, size)
	if err != nil {
		return b.poison(err, size)
	}
	b.data = data

	return nil
}

// poison disables the buffer after a failed resize and logs the cause.
// It returns errs.ErrPoisoned wrapping err.
func (b *Buffer) poison(err error, size int) error {
	b.state = statePoisoned
	b.err = err
	b.logger.Error(
		"Listpack reallocation failed mid-mutation. All buffer operations are disabled",
		"error", err,
		"size", size,
		"generation", b.gen,
	)

	return fmt.Errorf("%w: %w", errs.ErrPoisoned, err)
}

// commit finishes a mutation: total_bytes is rewritten, the count adjusted
// by delta when tracked, and the generation bumped.
func (b *Buffer) commit(delta int) {
	if b.header {
		section.SetTotalBytes(b.data, uint32(len(b.data))) //nolint:gosec // bounded by maxSize
		if n := section.NumElements(b.data); n != section.NumElementsUnknown {
			section.SetNumElements(b.data, uint16(int(n)+delta)) //nolint:gosec // n+1 saturates at the unknown marker
		}
	}
	b.gen++
}
