// Package growarray implements the growable, index-addressable sequence used
// for diagnostics lists and positional-order bookkeeping. Growth policy is
// managed by hand (doubling, zeroed new storage) rather than delegated to
// append, because the sequence is one of the from-scratch primitives the
// parser is built on.
package growarray

import "errors"

// Sentinel errors returned by array operations.
var (
	ErrOutOfBounds = errors.New("growarray: index out of bounds")
	ErrEmpty       = errors.New("growarray: array is empty")
	ErrNilInput    = errors.New("growarray: nil input")
)

const initialCapacity = 8

// Option configures an Array at creation time.
type Option[T any] func(*Array[T])

// WithRelease sets a hook invoked for every element dropped by Clear.
func WithRelease[T any](release func(T)) Option[T] {
	return func(a *Array[T]) { a.release = release }
}

// WithMatch sets the equality function used by Index.
func WithMatch[T any](match func(a, b T) bool) Option[T] {
	return func(a *Array[T]) { a.match = match }
}

// Array is a growable sequence of T. The backing storage always spans the
// full capacity; elements beyond the logical size stay zeroed.
type Array[T any] struct {
	items   []T
	size    int
	release func(T)
	match   func(a, b T) bool
}

// New creates an empty array. Backing storage is allocated lazily on the
// first push, at the initial capacity of 8.
func New[T any](opts ...Option[T]) *Array[T] {
	a := &Array[T]{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the current capacity (0 before the first push).
func (a *Array[T]) Cap() int { return len(a.items) }

// grow replaces the backing storage with a zeroed block of the new capacity,
// copying the live elements across.
func (a *Array[T]) grow(capacity int) {
	fresh := make([]T, capacity)
	copy(fresh, a.items[:a.size])
	a.items = fresh
}

// Push appends item, doubling the capacity when full.
func (a *Array[T]) Push(item T) {
	if a.items == nil {
		a.items = make([]T, initialCapacity)
	} else if a.size == len(a.items) {
		a.grow(len(a.items) * 2)
	}
	a.items[a.size] = item
	a.size++
}

// PushMany appends all items in one bulk copy, growing in doubling steps
// until the capacity suffices.
func (a *Array[T]) PushMany(items []T) error {
	if items == nil {
		return ErrNilInput
	}
	if a.items == nil {
		a.items = make([]T, initialCapacity)
	}
	for len(a.items) < a.size+len(items) {
		a.grow(len(a.items) * 2)
	}
	copy(a.items[a.size:], items)
	a.size += len(items)
	return nil
}

// Get returns a copy of the element at index.
func (a *Array[T]) Get(index int) (T, error) {
	var zero T
	if a.size == 0 {
		return zero, ErrEmpty
	}
	if index < 0 || index >= a.size {
		return zero, ErrOutOfBounds
	}
	return a.items[index], nil
}

// Ref returns a pointer into the backing storage. The pointer is invalidated
// by any subsequent growth.
func (a *Array[T]) Ref(index int) (*T, error) {
	if a.size == 0 {
		return nil, ErrEmpty
	}
	if index < 0 || index >= a.size {
		return nil, ErrOutOfBounds
	}
	return &a.items[index], nil
}

// Remove deletes the element at index, shifting the tail left by one so the
// relative order of the remaining elements is preserved. O(n).
func (a *Array[T]) Remove(index int) error {
	if a.size == 0 {
		return ErrEmpty
	}
	if index < 0 || index >= a.size {
		return ErrOutOfBounds
	}
	copy(a.items[index:], a.items[index+1:a.size])
	var zero T
	a.items[a.size-1] = zero
	a.size--
	return nil
}

// Index returns the position of the first element matching item under the
// configured match function, or -1 when absent or no match function is set.
func (a *Array[T]) Index(item T) int {
	if a.match == nil {
		return -1
	}
	for i := 0; i < a.size; i++ {
		if a.match(a.items[i], item) {
			return i
		}
	}
	return -1
}

// ShrinkToFit reallocates the backing storage to exactly the logical size.
func (a *Array[T]) ShrinkToFit() {
	if a.size == len(a.items) {
		return
	}
	fresh := make([]T, a.size)
	copy(fresh, a.items[:a.size])
	a.items = fresh
}

// Clear releases every element and resets the array to its initial state.
func (a *Array[T]) Clear() {
	if a.release != nil {
		for i := 0; i < a.size; i++ {
			a.release(a.items[i])
		}
	}
	a.items = nil
	a.size = 0
}

// Iterator walks elements in insertion order over a snapshot of the backing
// pointer and size taken at creation time.
type Iterator[T any] struct {
	items []T
	size  int
	index int
}

// Iter returns a snapshot iterator positioned before the first element.
func (a *Array[T]) Iter() *Iterator[T] {
	return &Iterator[T]{items: a.items, size: a.size}
}

// Next yields the next element in order.
func (it *Iterator[T]) Next() (T, bool) {
	if it.index >= it.size {
		var zero T
		return zero, false
	}
	item := it.items[it.index]
	it.index++
	return item, true
}

// Reset rewinds the iterator to the start of its snapshot.
func (it *Iterator[T]) Reset() { it.index = 0 }
