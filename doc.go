// Package dynvec provides a generic resizable array with manual
// ownership of its backing storage.
//
// Vector[T] reimplements classic dynamic-array semantics: amortized
// doubling growth, random access in checked and unchecked forms,
// positional insert/erase with shifting, and explicit copy and move
// transfer of the backing allocation.
//
// # Ownership
//
// Every Vector exclusively owns one contiguous allocation. Storage
// changes owner only through explicit transfer (Take, Swap) or
// internal reallocation, which builds the replacement in full and
// exchanges state in constant time. Duplication is always explicit:
// Clone and CopyFrom deep-copy the live elements. Copying a Vector
// value instead of a pointer is flagged by go vet.
//
// # Access modes
//
// Checked access (At, Get) returns *ErrIndexOutOfRange for positions
// outside [0, Len()). Unchecked access (Ref) trusts the caller and
// performs no size validation; it exists for loops where the bound is
// locally provable. Positional preconditions on Insert, Erase and
// PopBack are contracts, not recoverable conditions: violating them
// panics.
//
// # Growth
//
// Whenever capacity must increase, the new capacity is
// max(2*Cap(), requiredMinimum). The factor is fixed; it is what
// keeps repeated PushBack at O(1) amortized.
//
// # Concurrency
//
// A Vector is not safe for concurrent mutation. Concurrent reads
// without a mutator in flight are safe.
package dynvec
