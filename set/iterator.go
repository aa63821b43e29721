package set

// Iterator points to a slot of a Set. Iterators are values; advancing one
// returns a new iterator. An iterator is only meaningful until the next
// growth of its set.
//
type Iterator[K any] struct {
	s     *Set[K]
	gen   uint64
	index int
}

// Index returns the slot index the iterator points to. The End iterator
// index is equal to the capacity of the set it was issued by.
//
func (it Iterator[K]) Index() int {
	return it.index
}

// IsEnd returns true if it is past the last slot of its set.
//
func (it Iterator[K]) IsEnd() bool {
	return it.s == nil || it.index >= len(it.s.slots)
}

// Key returns the key it points to, or the zero value for End.
//
func (it Iterator[K]) Key() K {
	if it.IsEnd() {
		var zero K
		return zero
	}
	k, _ := it.s.At(it.index)
	return k
}

// Next returns an iterator to the next occupied slot, or End. Calling Next on
// End returns End and ErrEndOfSet.
//
func (it Iterator[K]) Next() (Iterator[K], error) {
	if it.IsEnd() {
		return it, ErrEndOfSet
	}
	it.index = it.s.nextOccupied(it.index + 1)
	return it, nil
}

// Equal returns true if both iterators were issued by the same set, in the
// same generation, and point to the same slot.
//
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it.s == other.s && it.gen == other.gen && it.index == other.index
}
