// Package keytable implements the open-addressing hash map that backs the
// argument registry. It is deliberately built without the language map type:
// FNV-1a hashing, linear probing over a power-of-two slot array, and explicit
// tombstones so probe chains stay intact across deletions.
package keytable

import "errors"

// Sentinel errors returned by table operations.
var (
	ErrExists   = errors.New("keytable: key already exists")
	ErrNotFound = errors.New("keytable: key not found")
	ErrEmptyKey = errors.New("keytable: empty key")
	ErrEmpty    = errors.New("keytable: table is empty")
)

const (
	initialCapacity = 8
	loadFactor      = 0.75
)

// slotState tags a slot as empty, tombstoned or occupied. A tombstone marks a
// deleted entry and is distinct from empty: probing continues past it but a
// fresh insert may reclaim it.
type slotState uint8

const (
	slotEmpty slotState = iota
	slotTombstone
	slotOccupied
)

type slot[V any] struct {
	key   string
	state slotState
	value V
}

// Table is a string-keyed open-addressing hash map. Capacity is always a
// power of two so the probe index reduces to a bitmask. The zero value is not
// usable; construct with New or NewWithRelease.
type Table[V any] struct {
	slots   []slot[V]
	size    int
	release func(V)
}

// New creates an empty table. Slot storage is allocated lazily on the first
// insert, matching the initial capacity of 8.
func New[V any]() *Table[V] {
	return &Table[V]{}
}

// NewWithRelease creates a table that invokes release on every value dropped
// by Delete, a replacing InsertOrReplace, or Clear. The hook may be invoked
// more than once for a value stored under several keys and must tolerate it.
func NewWithRelease[V any](release func(V)) *Table[V] {
	return &Table[V]{release: release}
}

// Len returns the number of live entries.
func (t *Table[V]) Len() int { return t.size }

// Capacity returns the current slot count (0 before the first insert).
func (t *Table[V]) Capacity() int { return len(t.slots) }

// fnv1a hashes the key bytes with the 32-bit FNV-1a function.
func fnv1a(key string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= 16777619
	}
	return h
}

// findSlot probes for key starting at its hash index. It returns the occupied
// slot holding key, or the slot an insert of key should use: the first
// tombstone seen on the probe path if any, otherwise the terminating empty
// slot. The probe is bounded at one full pass so a table whose empty slots
// have all been churned into tombstones still terminates.
func findSlot[V any](slots []slot[V], key string) *slot[V] {
	mask := uint32(len(slots) - 1)
	idx := fnv1a(key) & mask
	var tombstone *slot[V]

	for range slots {
		s := &slots[idx]
		switch s.state {
		case slotEmpty:
			if tombstone != nil {
				return tombstone
			}
			return s
		case slotTombstone:
			if tombstone == nil {
				tombstone = s
			}
		case slotOccupied:
			if s.key == key {
				return s
			}
		}
		idx = (idx + 1) & mask
	}

	// Every slot visited without the key or an empty slot. The load factor
	// keeps live entries below capacity, so at least one tombstone exists.
	return tombstone
}

// ensureSpace allocates the slot array on first use and doubles capacity once
// the next insert would reach the load factor.
func (t *Table[V]) ensureSpace() {
	if t.slots == nil {
		t.slots = make([]slot[V], initialCapacity)
		return
	}
	if float64(t.size+1) >= float64(len(t.slots))*loadFactor {
		t.rehash(len(t.slots) * 2)
	}
}

// rehash moves every occupied slot into a fresh array of the given capacity.
// Tombstones are dropped; each live key lands in exactly one new slot.
func (t *Table[V]) rehash(capacity int) {
	fresh := make([]slot[V], capacity)
	for i := range t.slots {
		s := &t.slots[i]
		if s.state != slotOccupied {
			continue
		}
		dest := findSlot(fresh, s.key)
		*dest = *s
	}
	t.slots = fresh
}

// Resize grows the table to at least the requested capacity, rounded up to a
// power of two. Requests at or below the current capacity are no-ops.
func (t *Table[V]) Resize(capacity int) {
	target := initialCapacity
	for target < capacity {
		target *= 2
	}
	if t.slots == nil {
		t.slots = make([]slot[V], target)
		return
	}
	if target <= len(t.slots) {
		return
	}
	t.rehash(target)
}

// Insert stores value under key. It fails with ErrExists when the key is
// already present and leaves the table unchanged.
func (t *Table[V]) Insert(key string, value V) error {
	if key == "" {
		return ErrEmptyKey
	}
	t.ensureSpace()

	s := findSlot(t.slots, key)
	if s.state == slotOccupied {
		return ErrExists
	}
	s.key = key
	s.state = slotOccupied
	s.value = value
	t.size++
	return nil
}

// InsertOrReplace stores value under key, replacing any existing entry. The
// replaced value is handed to the release hook when one is set.
func (t *Table[V]) InsertOrReplace(key string, value V) error {
	if key == "" {
		return ErrEmptyKey
	}
	t.ensureSpace()

	s := findSlot(t.slots, key)
	if s.state == slotOccupied {
		if t.release != nil {
			t.release(s.value)
		}
		s.value = value
		return nil
	}
	s.key = key
	s.state = slotOccupied
	s.value = value
	t.size++
	return nil
}

// Search returns the value stored under key. Searching an empty table is
// ErrEmpty; an empty key is ErrEmptyKey, never a lookup.
func (t *Table[V]) Search(key string) (V, error) {
	var zero V
	if t.size == 0 {
		return zero, ErrEmpty
	}
	if key == "" {
		return zero, ErrEmptyKey
	}
	s := findSlot(t.slots, key)
	if s.state != slotOccupied {
		return zero, ErrNotFound
	}
	return s.value, nil
}

// Delete removes the entry stored under key, marking its slot as a tombstone
// so longer probe chains keep resolving.
func (t *Table[V]) Delete(key string) error {
	if t.size == 0 {
		return ErrEmpty
	}
	if key == "" {
		return ErrEmptyKey
	}
	s := findSlot(t.slots, key)
	if s.state != slotOccupied {
		return ErrNotFound
	}
	if t.release != nil {
		t.release(s.value)
	}
	var zero V
	s.key = ""
	s.value = zero
	s.state = slotTombstone
	t.size--
	return nil
}

// Clear releases every live value and resets the table to its initial state.
func (t *Table[V]) Clear() {
	if t.release != nil {
		for i := range t.slots {
			if t.slots[i].state == slotOccupied {
				t.release(t.slots[i].value)
			}
		}
	}
	t.slots = nil
	t.size = 0
}

// Iterator walks the live entries of a table over a snapshot of its slot
// array taken at creation time. Mutations after creation are not observed.
type Iterator[V any] struct {
	slots []slot[V]
	index int
}

// Iter returns a snapshot iterator positioned before the first entry.
func (t *Table[V]) Iter() *Iterator[V] {
	return &Iterator[V]{slots: t.slots}
}

// Next yields the next occupied entry, skipping empty and tombstoned slots.
func (it *Iterator[V]) Next() (key string, value V, ok bool) {
	for it.index < len(it.slots) {
		s := &it.slots[it.index]
		it.index++
		if s.state == slotOccupied {
			return s.key, s.value, true
		}
	}
	var zero V
	return "", zero, false
}

// Reset rewinds the iterator to the start of its snapshot.
func (it *Iterator[V]) Reset() { it.index = 0 }
