// Package set implements a hash set with coalesced chaining.
//
// All keys live in a single backing array of slots. A key whose home bucket
// is already taken is stored in the lowest empty slot and linked to the
// bucket's chain through the slot's next index, so that colliding chains
// share storage instead of using external nodes. Erased keys are tombstoned:
// the slot stays in its chain and is reused by a later insertion that walks
// the same chain.
//
// The only operation that moves keys is growth, which happens at the start
// of Insert when every slot up to the capacity has been claimed at least
// once (see WouldInvalidateOnInsert). Growth doubles the capacity and
// rehashes every key; iterators issued before it become stale.
//
package set

import (
	"iter"

	"gitlab.com/tozd/go/errors"
)

// Common errors.
//
var (
	ErrInvalidIterator = errors.New("invalid iterator")
	ErrEndOfSet        = errors.New("iterator reached the end of the set")
)

const none = -1

type state uint8

const (
	empty state = iota
	occupied
	deleted
)

type slot[K any] struct {
	key   K
	next  int // next slot in the same chain or none
	state state
}

// Set is a hash set with coalesced chaining. The zero value is not usable,
// use New, NewFunc or NewStrings.
//
type Set[K any] struct {
	slots      []slot[K]
	firstEmpty int    // lowest slot in the empty state
	size       int    // occupied slots
	gen        uint64 // bumped on every growth
	hash       func(K) uint64
	equal      func(a, b K) bool
}

type options struct {
	capacity int
}

// An Option is a configuration option for a new Set.
//
type Option func(*options)

// WithCapacity sets the initial capacity of the set. Values below 1 are
// treated as 1.
//
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// New returns an empty set of comparable keys using hash as hash function.
//
func New[K comparable](hash func(K) uint64, opts ...Option) *Set[K] {
	return NewFunc(hash, func(a, b K) bool { return a == b }, opts...)
}

// NewFunc returns an empty set using custom hash and equality functions.
// Keys that are equal must hash to the same value.
//
func NewFunc[K any](hash func(K) uint64, equal func(a, b K) bool, opts ...Option) *Set[K] {
	o := options{capacity: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity < 1 {
		o.capacity = 1
	}
	return &Set[K]{
		slots: newSlots[K](o.capacity),
		hash:  hash,
		equal: equal,
	}
}

// NewStrings returns an empty set of strings hashed with StringHash.
//
func NewStrings(opts ...Option) *Set[string] {
	return New(StringHash, opts...)
}

// StringHash returns the 64 bits FNV-1a hash of s.
//
func StringHash(s string) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	return h
}

func newSlots[K any](n int) []slot[K] {
	s := make([]slot[K], n)
	for i := range s {
		s[i].next = none
	}
	return s
}

// Len returns the number of keys in the set.
//
func (s *Set[K]) Len() int {
	return s.size
}

// Cap returns the number of slots in the backing array.
//
func (s *Set[K]) Cap() int {
	return len(s.slots)
}

// WouldInvalidateOnInsert returns true if the next call to Insert will grow
// the set, thus invalidating all iterators.
//
func (s *Set[K]) WouldInvalidateOnInsert() bool {
	return s.firstEmpty >= len(s.slots)
}

// Insert adds k to the set. It returns an iterator to the key equal to k and
// whether the key was actually inserted (false if an equal key was already
// present).
//
// Insert may grow the set before looking k up, even if k is already present.
//
func (s *Set[K]) Insert(k K) (Iterator[K], bool) {
	if s.WouldInvalidateOnInsert() {
		s.grow(2 * len(s.slots))
	}
	i, ok := s.insert(k)
	return s.iter(i), ok
}

// insert places k. Callers must make sure that firstEmpty < len(s.slots).
//
func (s *Set[K]) insert(k K) (int, bool) {
	cur := s.home(k)
	if s.slots[cur].state == empty {
		s.put(cur, k)
		return cur, true
	}

	reuse := none
	for {
		sl := &s.slots[cur]
		if sl.state == occupied && s.equal(sl.key, k) {
			return cur, false
		}
		if sl.state == deleted && reuse == none {
			reuse = cur
		}
		if sl.next == none {
			break
		}
		cur = sl.next
	}

	if reuse != none {
		// the tombstone keeps its next index: the chain is unchanged.
		sl := &s.slots[reuse]
		sl.key = k
		sl.state = occupied
		s.size++
		return reuse, true
	}

	i := s.firstEmpty
	s.slots[cur].next = i
	s.put(i, k)
	return i, true
}

func (s *Set[K]) put(i int, k K) {
	s.slots[i] = slot[K]{key: k, next: none, state: occupied}
	s.size++
	for s.firstEmpty < len(s.slots) && s.slots[s.firstEmpty].state != empty {
		s.firstEmpty++
	}
}

func (s *Set[K]) grow(n int) {
	old := s.slots
	s.slots = newSlots[K](n)
	s.size = 0
	s.firstEmpty = 0
	s.gen++
	for i := range old {
		if old[i].state == occupied {
			s.insert(old[i].key)
		}
	}
}

func (s *Set[K]) home(k K) int {
	return int(s.hash(k) % uint64(len(s.slots)))
}

// Find returns an iterator to the key equal to k or End if there is none.
//
func (s *Set[K]) Find(k K) Iterator[K] {
	for cur := s.home(k); cur != none; cur = s.slots[cur].next {
		sl := &s.slots[cur]
		if sl.state == empty {
			break
		}
		if sl.state == occupied && s.equal(sl.key, k) {
			return s.iter(cur)
		}
	}
	return s.End()
}

// Erase removes the key at it. It returns an error wrapping
// ErrInvalidIterator if it does not point to a key of this set, as is the
// case for End, iterators from another set and iterators issued before the
// last growth.
//
func (s *Set[K]) Erase(it Iterator[K]) error {
	if it.s != s || it.gen != s.gen || it.index < 0 || it.index >= len(s.slots) ||
		s.slots[it.index].state != occupied {
		return errors.Errorf("erase slot %d: %w", it.index, ErrInvalidIterator)
	}
	var zero K
	sl := &s.slots[it.index]
	sl.key = zero
	sl.state = deleted
	s.size--
	return nil
}

// At returns the key stored in slot i and true, or the zero value and false
// if the slot is out of range or not occupied.
//
func (s *Set[K]) At(i int) (K, bool) {
	if i < 0 || i >= len(s.slots) || s.slots[i].state != occupied {
		var zero K
		return zero, false
	}
	return s.slots[i].key, true
}

// Begin returns an iterator to the occupied slot with the lowest index, or
// End for an empty set.
//
func (s *Set[K]) Begin() Iterator[K] {
	return s.iter(s.nextOccupied(0))
}

// End returns the past-the-end iterator. Its index is the set capacity.
//
func (s *Set[K]) End() Iterator[K] {
	return s.iter(len(s.slots))
}

// All returns an iterator over slot indices and keys in ascending slot order.
//
func (s *Set[K]) All() iter.Seq2[int, K] {
	return func(yield func(int, K) bool) {
		for i := s.nextOccupied(0); i < len(s.slots); i = s.nextOccupied(i + 1) {
			if !yield(i, s.slots[i].key) {
				return
			}
		}
	}
}

func (s *Set[K]) nextOccupied(i int) int {
	for i < len(s.slots) && s.slots[i].state != occupied {
		i++
	}
	return i
}

func (s *Set[K]) iter(i int) Iterator[K] {
	return Iterator[K]{s: s, gen: s.gen, index: i}
}
