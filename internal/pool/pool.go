// Package pool provides object pooling for the argument matcher.
// A parse walks argv with a scratch state object and accumulates list
// values into string slices; both are reused across parses to keep
// repeated invocations allocation-free.
package pool

import "sync"

// Pool is a generic, type-safe object pool.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // Optional reset function called before reuse
}

// New creates a pool with the given factory function.
func New[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewWithReset creates a pool with a reset function called before reuse.
func NewWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := New(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// StringSlicePool pools string slices used to accumulate list values.
type StringSlicePool struct {
	*Pool[[]string]
}

// NewStringSlicePool creates a string slice pool with the given default capacity.
func NewStringSlicePool(defaultCap int) *StringSlicePool {
	return &StringSlicePool{
		Pool: NewWithReset(
			func() *[]string {
				slice := make([]string, 0, defaultCap)
				return &slice
			},
			func(slice *[]string) {
				*slice = (*slice)[:0] // Reset length but keep capacity
			},
		),
	}
}

// GlobalStringSlicePool serves list-valued argument accumulation.
var GlobalStringSlicePool = NewStringSlicePool(8)

// GetStringSlice retrieves a string slice from the global pool.
func GetStringSlice() *[]string {
	return GlobalStringSlicePool.Get()
}

// PutStringSlice returns a string slice to the global pool.
func PutStringSlice(slice *[]string) {
	GlobalStringSlicePool.Put(slice)
}
