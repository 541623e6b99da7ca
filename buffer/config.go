package buffer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/arloliu/listpack/alloc"
	"github.com/arloliu/listpack/errs"
	"github.com/arloliu/listpack/internal/options"
	"github.com/arloliu/listpack/section"
)

// Validator checks the raw bytes handed to Load before they are adopted.
type Validator func(data []byte) error

// Config holds the construction settings of a Buffer.
type Config struct {
	allocator alloc.Allocator
	logger    *slog.Logger
	validator Validator
	maxSize   uint32
	noHeader  bool
}

// NewConfig returns the default configuration: heap allocator, header
// maintained, maximum size of section.MaxTotalBytes and a discarding logger.
func NewConfig() *Config {
	return &Config{
		allocator: alloc.Heap(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxSize:   section.MaxTotalBytes,
	}
}

func (c *Config) setAllocator(a alloc.Allocator) error {
	if a == nil {
		return fmt.Errorf("%w: nil allocator", errs.ErrInvalidOption)
	}
	c.allocator = a

	return nil
}

func (c *Config) setMaxSize(n uint32) error {
	if n == 0 {
		return fmt.Errorf("%w: max size must be positive", errs.ErrInvalidOption)
	}
	c.maxSize = n

	return nil
}

func (c *Config) setLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.logger = l
}

// start returns the offset of the first entry.
func (c *Config) start() int {
	if c.noHeader {
		return 0
	}

	return section.HeaderSize
}

// validate checks settings whose validity depends on each other.
func (c *Config) validate() error {
	if int64(c.maxSize) < int64(c.start()+1) {
		return fmt.Errorf("%w: max size %d cannot hold an empty listpack", errs.ErrInvalidOption, c.maxSize)
	}

	return nil
}

// Option configures a Buffer at construction.
// This is a type alias for the generic Option interface specialized for Config.
type Option = options.Option[*Config]

// WithAllocator sets the allocator backing the buffer. Default is alloc.Heap().
func WithAllocator(a alloc.Allocator) Option {
	return options.New(func(c *Config) error {
		return c.setAllocator(a)
	})
}

// WithoutHeader omits the 6-byte header. Entries start at offset 0, the EOF
// byte is still written and the element count is always obtained by scanning.
// Intended for append-only writers that frame the bytes themselves.
func WithoutHeader() Option {
	return options.NoError(func(c *Config) {
		c.noHeader = true
	})
}

// WithMaxSize lowers the largest total size the buffer may reach.
// Mutations that would exceed it fail with errs.ErrSizeOverflow and change nothing.
func WithMaxSize(n uint32) Option {
	return options.New(func(c *Config) error {
		return c.setMaxSize(n)
	})
}

// WithLogger sets the logger used to report poisoning and count recovery.
// A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		c.setLogger(l)
	})
}

// WithValidator sets a structural check run by Load on the bytes it adopts.
func WithValidator(fn Validator) Option {
	return options.NoError(func(c *Config) {
		c.validator = fn
	})
}
