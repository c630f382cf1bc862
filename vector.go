package dynvec

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hupe1980/dynvec/internal/buffer"
)

// Vector is a resizable array with amortized O(1) append.
//
// A Vector exclusively owns its backing storage and tracks a logical
// size alongside the allocated capacity. Elements at positions
// [0, Len()) are live; slots in [Len(), Cap()) are allocated but not
// part of the logical content.
//
// Use Vectors through pointers. Duplication is explicit (Clone,
// CopyFrom) and transfer is explicit (Take, Swap); implicit value
// copies are flagged by go vet via the owned buffer's copy marker.
//
// A Vector is not safe for concurrent mutation. Read-only concurrent
// access is fine as long as no mutator is in flight.
type Vector[T any] struct {
	items    buffer.Buffer[T]
	size     int
	capacity int
	stats    Stats
}

// New creates an empty vector with no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithSize creates a vector of n zero-valued elements.
// Size and capacity both equal n; n <= 0 yields an empty vector.
func NewWithSize[T any](n int) *Vector[T] {
	if n <= 0 {
		return New[T]()
	}
	return &Vector[T]{items: buffer.New[T](n), size: n, capacity: n}
}

// NewFilled creates a vector of n copies of value.
func NewFilled[T any](n int, value T) *Vector[T] {
	v := NewWithSize[T](n)
	items := v.items.Slice(0, v.size)
	for i := range items {
		items[i] = value
	}
	return v
}

// Of creates a vector holding the given elements in order.
func Of[T any](elems ...T) *Vector[T] {
	v := NewWithSize[T](len(elems))
	copy(v.items.Slice(0, v.size), elems)
	return v
}

// WithCapacity creates an empty vector with storage for c elements
// pre-allocated: size 0, capacity c.
func WithCapacity[T any](c int) *Vector[T] {
	if c <= 0 {
		return New[T]()
	}
	return &Vector[T]{items: buffer.New[T](c), capacity: c}
}

// Clone returns a deep copy of the live elements. The clone's
// capacity equals the source's size, not its capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := NewWithSize[T](v.size)
	copy(c.items.Slice(0, c.size), v.items.Slice(0, v.size))
	return c
}

// CopyFrom replaces the contents with a deep copy of other.
//
// An empty source clears the receiver in O(1), retaining its
// capacity. Otherwise the copy is built in full before a
// constant-time state swap, so the receiver is never left partially
// assigned. Self-assignment is a no-op.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	if other.IsEmpty() {
		v.Clear()
		return
	}
	v.Swap(other.Clone())
}

// Take adopts other's storage, size and capacity in constant time and
// leaves other empty (size and capacity 0). Self-move is a no-op.
func (v *Vector[T]) Take(other *Vector[T]) {
	if v == other {
		return
	}
	v.items = other.items.Move()
	v.size, v.capacity = other.size, other.capacity
	v.stats = other.stats
	other.size, other.capacity = 0, 0
	other.stats = Stats{}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.capacity
}

// IsEmpty reports whether the vector holds no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Ref returns a reference to the element at index i without
// validating i against the live range. The caller guarantees
// 0 <= i < Len(); a violation may observe a stale allocated slot, or
// panic once past the capacity. Use At or Get when the bound is not
// locally provable.
func (v *Vector[T]) Ref(i int) *T {
	return v.items.At(i)
}

// At returns a reference to the element at index i, or
// *ErrIndexOutOfRange when i lies outside the live range.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, &ErrIndexOutOfRange{Index: i, Size: v.size}
	}
	return v.items.At(i), nil
}

// Get returns the element at index i by value, or
// *ErrIndexOutOfRange when i lies outside the live range.
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, &ErrIndexOutOfRange{Index: i, Size: v.size}
	}
	return *v.items.At(i), nil
}

// Reserve grows the capacity to at least n, moving the live elements
// into the new allocation. It never shrinks; n <= Cap() is a no-op.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.capacity {
		return
	}
	v.reallocate(n)
}

// Resize sets the number of live elements to n. Growing beyond the
// current capacity follows the growth policy; slots exposed by an
// enlargement are zero-valued. Shrinking adjusts the size only.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("dynvec: Resize to negative size %d", n))
	}
	switch {
	case n > v.capacity:
		v.grow(n)
		// The fresh allocation is zero-valued past the moved prefix.
	case n > v.size:
		// Slots in [size, n) may hold stale values from earlier
		// shrinks; reset them.
		clear(v.items.Slice(v.size, n))
	}
	v.size = n
}

// PushBack appends value, growing per the growth policy when the
// storage is full.
func (v *Vector[T]) PushBack(value T) {
	if v.size+1 > v.capacity {
		v.grow(v.size + 1)
	}
	*v.items.At(v.size) = value
	v.size++
}

// PopBack removes the last element. It panics when the vector is
// empty. The vacated slot keeps its stale value until overwritten.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("dynvec: PopBack on empty vector")
	}
	v.size--
}

// Clear drops all live elements. Capacity and allocation are
// retained for reuse.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Insert places value at position i, shifting the elements at and
// after i one slot toward the end. Valid positions are [0, Len()],
// where Len() appends; any other position panics.
//
// The returned locator is the inserted element's index. Like View, it
// stays meaningful until the next capacity-changing mutation.
func (v *Vector[T]) Insert(i int, value T) int {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("dynvec: Insert position %d out of range [0,%d]", i, v.size))
	}
	if v.size+1 <= v.capacity {
		// In place: shift the suffix up, highest index first.
		window := v.items.Slice(0, v.size+1)
		copy(window[i+1:], window[i:v.size])
		window[i] = value
	} else {
		// Rebuild into a grown allocation: prefix, value, suffix.
		newCap := max(2*v.capacity, v.size+1)
		next := buffer.New[T](newCap)
		dst := next.Slice(0, v.size+1)
		copy(dst, v.items.Slice(0, i))
		dst[i] = value
		copy(dst[i+1:], v.items.Slice(i, v.size))
		v.items.Swap(&next)
		v.capacity = newCap
		v.stats.Grows++
		v.stats.Reallocs++
		v.stats.ElementsMoved += uint64(v.size)
	}
	v.size++
	return i
}

// Erase removes the element at position i, shifting the tail one
// slot toward the beginning. Valid positions are [0, Len()); any
// other position panics.
//
// The returned locator addresses the element that followed the erased
// one, or Len() when the last element was removed.
func (v *Vector[T]) Erase(i int) int {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("dynvec: Erase position %d out of range [0,%d)", i, v.size))
	}
	window := v.items.Slice(0, v.size)
	copy(window[i:], window[i+1:])
	v.size--
	return i
}

// Swap exchanges contents with other in constant time. No elements
// are moved or copied.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.stats, other.stats = other.stats, v.stats
}

// View returns the live range [0, Len()) as a slice sharing the
// vector's storage. The window is valid until the next
// capacity-changing mutation.
func (v *Vector[T]) View() []T {
	return v.items.Slice(0, v.size)
}

// All returns an iterator over index/element pairs of the live range.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.items.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.items.At(i)) {
				return
			}
		}
	}
}

// String renders the live range like a slice, e.g. [1 2 3].
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", *v.items.At(i))
	}
	sb.WriteByte(']')
	return sb.String()
}

// grow reallocates per the growth policy: the new capacity is the
// larger of twice the current capacity and minCap. The 2x factor is
// fixed; it keeps repeated single-element growth at O(1) amortized.
func (v *Vector[T]) grow(minCap int) {
	v.reallocate(max(2*v.capacity, minCap))
	v.stats.Grows++
}

// reallocate adopts a fresh allocation of exactly newCap slots
// holding the live elements. newCap >= size.
func (v *Vector[T]) reallocate(newCap int) {
	next := buffer.New[T](newCap)
	copy(next.Slice(0, v.size), v.items.Slice(0, v.size))
	v.items.Swap(&next)
	v.capacity = newCap
	v.stats.Reallocs++
	v.stats.ElementsMoved += uint64(v.size)
}
