// Package buffer provides a move-only owning handle around a
// contiguous element allocation.
//
// A Buffer is the single owner of its backing storage: ownership
// changes hands only through Move, Swap or Release. Value copies
// would create a second owner, so the struct carries a noCopy marker
// and go vet flags them.
package buffer

// noCopy triggers the copylocks vet check on value copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer exclusively owns a contiguous allocation of elements of T.
// The zero value is an empty buffer owning nothing.
type Buffer[T any] struct {
	_     noCopy
	items []T
}

// New allocates a buffer of n zero-valued elements.
// n <= 0 yields the empty state without allocating.
func New[T any](n int) Buffer[T] {
	if n <= 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{items: make([]T, n)}
}

// Adopt wraps an existing allocation, taking ownership of it.
// The caller must not retain or alias items afterwards.
func Adopt[T any](items []T) Buffer[T] {
	return Buffer[T]{items: items}
}

// At returns the element at index i. No validation beyond the
// runtime's: the caller guarantees 0 <= i < Len().
func (b *Buffer[T]) At(i int) *T {
	return &b.items[i]
}

// Slice returns the window [from, to) of the allocation, sharing its
// storage. The caller guarantees 0 <= from <= to <= Len().
func (b *Buffer[T]) Slice(from, to int) []T {
	return b.items[from:to]
}

// Release relinquishes the allocation to the caller and leaves the
// buffer empty. Safe on an empty buffer.
func (b *Buffer[T]) Release() []T {
	items := b.items
	b.items = nil
	return items
}

// Move transfers ownership into the returned buffer; the receiver
// becomes empty.
func (b *Buffer[T]) Move() Buffer[T] {
	return Buffer[T]{items: b.Release()}
}

// Swap exchanges allocations with other in constant time. No elements
// are moved.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.items, other.items = other.items, b.items
}

// Allocated reports whether the buffer owns an allocation.
func (b *Buffer[T]) Allocated() bool {
	return b.items != nil
}

// Len returns the allocated element count.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}
