// Package symtab implements the symbol table of the compiler front end.
//
// A Table stores unique strings in a set.Set and hands out Position handles
// to them. Unlike raw set iterators, positions stay valid when the table
// grows: the table keeps a registry of every live position and, whenever an
// insertion is about to rehash the underlying set, it records the symbol each
// position refers to, performs the insertion, then looks every symbol up
// again in the grown set. Positions that referred to End keep referring to
// End.
//
// Positions must be released with Release once they are no longer needed,
// otherwise the table keeps re-resolving them on every growth.
//
package symtab

import (
	"iter"

	"github.com/cata-b/FLCDCompiler/set"
	"github.com/rs/zerolog"
)

const released = -1

// Table is a symbol table. It is not safe for concurrent use.
//
type Table struct {
	data   *set.Set[string]
	slots  []int // handle id -> slot index; released for free ids
	free   []int // free handle ids
	live   int
	closed bool
	log    zerolog.Logger
}

type options struct {
	capacity int
	log      zerolog.Logger
}

// An Option is a configuration option for a new Table.
//
type Option func(*options)

// WithCapacity sets the initial capacity of the underlying set.
//
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger sets the logger used to trace table growth.
//
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// New returns an empty symbol table.
//
func New(opts ...Option) *Table {
	o := options{capacity: 1, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Table{
		data: set.NewStrings(set.WithCapacity(o.capacity)),
		log:  o.log,
	}
}

// Insert adds symbol to the table. It returns a position of the symbol and
// whether it was actually inserted. If the symbol was already present, the
// position refers to the existing entry.
//
// Every position issued by the table, including End positions, is still
// valid after Insert returns.
//
func (t *Table) Insert(symbol string) (*Position, bool) {
	if !t.data.WouldInvalidateOnInsert() {
		it, ok := t.data.Insert(symbol)
		return t.register(it.Index()), ok
	}

	// snapshot -> grow -> re-resolve. Nothing else may touch t.data
	// until every live handle has been repointed.
	oldEnd := t.data.Cap()
	symbols := make(map[int]string, t.live)
	for id, slot := range t.slots {
		if slot == released || slot == oldEnd {
			continue
		}
		sym, ok := t.data.At(slot)
		if !ok {
			// the entry was erased from under the handle: treat as End.
			t.slots[id] = oldEnd
			continue
		}
		symbols[id] = sym
	}

	it, ok := t.data.Insert(symbol)

	newEnd := t.data.Cap()
	for id, slot := range t.slots {
		switch {
		case slot == released:
		case slot == oldEnd:
			t.slots[id] = newEnd
		default:
			t.slots[id] = t.data.Find(symbols[id]).Index()
		}
	}

	t.log.Debug().
		Int("old_capacity", oldEnd).
		Int("new_capacity", newEnd).
		Int("live_positions", t.live).
		Int("symbols", t.data.Len()).
		Msg("symbol table grown")

	return t.register(it.Index()), ok
}

// Find returns a position of symbol, or End if it is not in the table.
//
func (t *Table) Find(symbol string) *Position {
	return t.register(t.data.Find(symbol).Index())
}

// Begin returns a position of the entry with the lowest slot index, or End
// for an empty table.
//
func (t *Table) Begin() *Position {
	return t.register(t.data.Begin().Index())
}

// End returns a position past the last entry.
//
func (t *Table) End() *Position {
	return t.register(t.data.Cap())
}

// Len returns the number of symbols in the table.
//
func (t *Table) Len() int {
	return t.data.Len()
}

// Cap returns the capacity of the underlying set.
//
func (t *Table) Cap() int {
	return t.data.Cap()
}

// Live returns the number of positions that have not been released. The
// count is frozen by Close.
//
func (t *Table) Live() int {
	return t.live
}

// All returns an iterator over slot indices and symbols in ascending slot
// order.
//
func (t *Table) All() iter.Seq2[int, string] {
	return t.data.All()
}

// Close tears the table down. Positions created or released after Close no
// longer change Live.
//
func (t *Table) Close() {
	t.closed = true
}

func (t *Table) register(slot int) *Position {
	if !t.closed {
		t.live++
	}
	if n := len(t.free); n > 0 {
		id := t.free[n-1]
		t.free = t.free[:n-1]
		t.slots[id] = slot
		return &Position{t: t, id: id}
	}
	t.slots = append(t.slots, slot)
	return &Position{t: t, id: len(t.slots) - 1}
}

func (t *Table) unregister(id int) {
	if t.closed {
		return
	}
	t.slots[id] = released
	t.free = append(t.free, id)
	t.live--
}
