package symtab

import "fmt"

// Position is a handle to an entry of a Table, or to its End. Positions are
// created by the Table; copying the pointer shares the handle, use Clone to
// get an independent one.
//
type Position struct {
	t  *Table
	id int
}

func (p *Position) slot() int {
	if p.id == released {
		panic("symtab: use of released Position")
	}
	return p.t.slots[p.id]
}

// Table returns the table p belongs to.
//
func (p *Position) Table() *Table {
	return p.t
}

// Index returns the slot index of the entry in the underlying set. For End,
// this is the set capacity. The index changes when the table grows.
//
func (p *Position) Index() int {
	return p.slot()
}

// IsEnd returns true if p does not refer to an entry.
//
func (p *Position) IsEnd() bool {
	return p.slot() >= p.t.data.Cap()
}

// Symbol returns the symbol p refers to, or "" for End.
//
func (p *Position) Symbol() string {
	s, _ := p.t.data.At(p.slot())
	return s
}

// Equal returns true if p and q belong to the same table and refer to the
// same entry (or are both End).
//
func (p *Position) Equal(q *Position) bool {
	return p.t == q.t && p.slot() == q.slot()
}

// Next moves p to the next entry in slot order, or to End, and returns p.
// Next on End leaves p unchanged.
//
func (p *Position) Next() *Position {
	if p.IsEnd() {
		return p
	}
	i := p.slot() + 1
	for ; i < p.t.data.Cap(); i++ {
		if _, ok := p.t.data.At(i); ok {
			break
		}
	}
	p.t.slots[p.id] = i
	return p
}

// Clone returns a new Position referring to the same entry as p.
//
func (p *Position) Clone() *Position {
	return p.t.register(p.slot())
}

// Release unregisters p from its table. p must not be used afterwards.
// Releasing a Position twice is a no-op.
//
func (p *Position) Release() {
	if p.id == released {
		return
	}
	p.t.unregister(p.id)
	p.id = released
}

func (p *Position) String() string {
	if p.id == released {
		return "<released>"
	}
	if p.IsEnd() {
		return "<end>"
	}
	return fmt.Sprintf("%d:%s", p.Index(), p.Symbol())
}
