// Package listpack provides a compact, single-allocation sequence container
// for small integers and byte strings.
//
// A listpack stores its elements back to back in one byte slice: a 6-byte
// header, the encoded entries and a terminating 0xFF byte. Integers take 1 to
// 9 bytes depending on magnitude, strings carry a 1, 2 or 5 byte length
// prefix, and every entry ends with a 1 to 5 byte reverse length so the
// sequence can be walked in both directions without an index.
//
// # Core Features
//
//   - Smallest-fit integer and string encodings
//   - O(1) append and cached element count
//   - Forward and backward traversal, negative index seek
//   - Generation-checked element references that cannot outlive a mutation
//   - Pluggable allocators (heap, exact, pooled, limited)
//
// # Basic Usage
//
//	lp, _ := listpack.New()
//	lp.AppendInt(20)
//	lp.AppendString("hello")
//
//	for _, v := range lp.All() {
//	    fmt.Println(v)
//	}
//
//	last, _ := lp.Seek(-1)
//	fmt.Println(lp.GetString(last)) // hello
//
// # Package Structure
//
// This package is a typed convenience layer over the buffer package, which
// implements the engine, and the encoding package, which implements the
// entry codec. Use those directly for full control over errors and values.
package listpack

import (
	"iter"

	"github.com/arloliu/listpack/buffer"
	"github.com/arloliu/listpack/encoding"
	"github.com/arloliu/listpack/format"
)

// Value is a listpack element: a signed 64-bit integer or a byte string.
type Value = encoding.Value

// Element references one entry of a Listpack. It is invalidated by the next
// mutation; every mutating method returns a fresh one.
type Element = buffer.Ref

// Placement selects where Insert puts the new element relative to its target.
type Placement = format.Placement

const (
	Before = format.Before
	After  = format.After
)

// Int returns an integer Value.
func Int(v int64) Value {
	return encoding.Int(v)
}

// String returns a string Value holding a copy of s.
func String(s string) Value {
	return encoding.String(s)
}

// Bytes returns a string Value referencing b.
func Bytes(b []byte) Value {
	return encoding.Bytes(b)
}

// Listpack is a typed wrapper over a buffer.Buffer.
type Listpack struct {
	buf *buffer.Buffer
}

// New creates an empty Listpack.
//
// Parameters:
//   - opts: Buffer options such as buffer.WithAllocator or buffer.WithMaxSize
//
// Returns:
//   - *Listpack: Empty listpack
//   - error: Option or allocation error
func New(opts ...buffer.Option) (*Listpack, error) {
	buf, err := buffer.New(opts...)
	if err != nil {
		return nil, err
	}

	return &Listpack{buf: buf}, nil
}

// Load creates a Listpack from a copy of encoded bytes, such as those
// returned by Bytes.
func Load(data []byte, opts ...buffer.Option) (*Listpack, error) {
	buf, err := buffer.Load(data, opts...)
	if err != nil {
		return nil, err
	}

	return &Listpack{buf: buf}, nil
}

// Buffer returns the underlying engine.
func (l *Listpack) Buffer() *buffer.Buffer {
	return l.buf
}

// Len returns the number of elements, or 0 if the listpack is unusable or
// corrupt; see Err.
func (l *Listpack) Len() int {
	n, err := l.buf.Length()
	if err != nil {
		return 0
	}

	return n
}

// Size returns the total encoded size in bytes.
func (l *Listpack) Size() int {
	return l.buf.TotalBytes()
}

// Bytes returns the encoded listpack, valid until the next mutation.
func (l *Listpack) Bytes() []byte {
	return l.buf.Bytes()
}

// Err reports whether the listpack was poisoned or released.
func (l *Listpack) Err() error {
	return l.buf.Err()
}

// Release frees the backing allocation.
func (l *Listpack) Release() error {
	return l.buf.Release()
}

// Digest returns the xxHash64 of the encoded elements.
func (l *Listpack) Digest() (uint64, error) {
	return l.buf.Digest()
}

// Append adds v at the tail.
func (l *Listpack) Append(v Value) (Element, error) {
	return l.buf.Append(v)
}

// Insert adds v before or after at. A zero Element appends.
func (l *Listpack) Insert(v Value, where Placement, at Element) (Element, error) {
	return l.buf.Insert(v, where, at)
}

// Replace overwrites the element at with v.
func (l *Listpack) Replace(at Element, v Value) (Element, error) {
	return l.buf.Replace(at, v)
}

// Delete removes the element at and returns its successor, or the zero
// Element if it was the last one.
func (l *Listpack) Delete(at Element) (Element, error) {
	return l.buf.Delete(at)
}

// Get returns the value at. String values are copied out of the buffer.
func (l *Listpack) Get(at Element) (Value, error) {
	v, err := l.buf.Get(at)
	if err != nil {
		return Value{}, err
	}

	return v.Clone(), nil
}

// First returns the first element.
func (l *Listpack) First() (Element, bool) {
	return l.buf.First()
}

// Last returns the last element.
func (l *Listpack) Last() (Element, bool) {
	return l.buf.Last()
}

// Next returns the element after at.
func (l *Listpack) Next(at Element) (Element, bool) {
	return l.buf.Next(at)
}

// Prev returns the element before at.
func (l *Listpack) Prev(at Element) (Element, bool) {
	return l.buf.Prev(at)
}

// FirstOrNext returns First for the zero Element and Next otherwise, so a
// cursor can start from the zero value.
func (l *Listpack) FirstOrNext(at Element) (Element, bool) {
	if at.IsZero() {
		return l.buf.First()
	}

	return l.buf.Next(at)
}

// LastOrPrev returns Last for the zero Element and Prev otherwise.
func (l *Listpack) LastOrPrev(at Element) (Element, bool) {
	if at.IsZero() {
		return l.buf.Last()
	}

	return l.buf.Prev(at)
}

// Seek returns the element at index; negative indexes count from the tail.
func (l *Listpack) Seek(index int) (Element, bool) {
	return l.buf.Seek(index)
}

// Find returns the first element equal to v.
func (l *Listpack) Find(v Value) (Element, bool) {
	return l.buf.Find(v)
}

// All iterates over elements from head to tail. String values alias the
// buffer; Clone them to keep them past the loop iteration.
func (l *Listpack) All() iter.Seq2[Element, Value] {
	return l.buf.All()
}

// Backward iterates over elements from tail to head.
func (l *Listpack) Backward() iter.Seq2[Element, Value] {
	return l.buf.Backward()
}

// Values iterates over the element values from head to tail.
func (l *Listpack) Values() iter.Seq[Value] {
	return l.buf.Values()
}
