package symtab_test

import (
	"strconv"
	"testing"

	"github.com/cata-b/FLCDCompiler/symtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_InsertTwice(t *testing.T) {
	st := symtab.New()

	p1, ok := st.Insert("a")
	require.True(t, ok)
	p2, ok := st.Insert("a")
	require.False(t, ok)

	assert.True(t, p1.Equal(p2))
	assert.Equal(t, "a", p2.Symbol())
	assert.Equal(t, 1, st.Len())
}

func TestTable_PositionsSurviveGrowth(t *testing.T) {
	st := symtab.New()

	type held struct {
		sym string
		pos *symtab.Position
	}
	var positions []held
	grown := 0
	for i := 0; i < 200; i++ {
		s := "sym" + strconv.Itoa(i)
		capBefore := st.Cap()
		p, ok := st.Insert(s)
		require.True(t, ok)
		if st.Cap() != capBefore {
			grown++
		}
		positions = append(positions, held{s, p})

		for _, h := range positions {
			require.Equal(t, h.sym, h.pos.Symbol())
			require.True(t, h.pos.Equal(st.Find(h.sym)))
		}
	}
	assert.Greater(t, grown, 3)
	assert.Equal(t, 200, st.Len())
}

func TestTable_EndSurvivesGrowth(t *testing.T) {
	st := symtab.New()
	end := st.End()
	missing := st.Find("nope")
	require.True(t, missing.IsEnd())

	for i := 0; i < 50; i++ {
		st.Insert(strconv.Itoa(i))
	}

	assert.True(t, end.IsEnd())
	assert.True(t, missing.IsEnd())
	assert.Equal(t, st.Cap(), end.Index())
	assert.True(t, end.Equal(st.End()))
	assert.Equal(t, "", end.Symbol())
}

func TestTable_GrowthWithoutLivePositions(t *testing.T) {
	st := symtab.New()
	for i := 0; i < 20; i++ {
		p, _ := st.Insert(strconv.Itoa(i))
		p.Release()
	}
	assert.Equal(t, 0, st.Live())
	assert.Equal(t, 20, st.Len())
	assert.Equal(t, "7", st.Find("7").Symbol())
}

func TestTable_DuplicateInsertOnGrowth(t *testing.T) {
	st := symtab.New()
	a, _ := st.Insert("a")

	// capacity 1 is full: the next insert grows even though "a" exists.
	again, ok := st.Insert("a")
	require.False(t, ok)
	assert.Equal(t, 2, st.Cap())
	assert.True(t, a.Equal(again))
	assert.Equal(t, "a", a.Symbol())
}

func TestTable_ReleaseAndLive(t *testing.T) {
	st := symtab.New()
	p, _ := st.Insert("x")
	q := p.Clone()
	e := st.End()
	assert.Equal(t, 3, st.Live())

	p.Release()
	p.Release()
	assert.Equal(t, 2, st.Live())
	assert.Panics(t, func() { p.Symbol() })

	// released ids are recycled
	r := st.Find("x")
	assert.Equal(t, 3, st.Live())
	assert.True(t, r.Equal(q))

	st.Close()
	q.Release()
	e.Release()
	assert.Equal(t, 3, st.Live(), "registry is untouched after Close")

	// positions created after Close still work but are not counted
	f := st.Find("x")
	g, _ := st.Insert("y")
	h := g.Clone()
	assert.Equal(t, "x", f.Symbol())
	assert.Equal(t, "y", h.Symbol())
	assert.Equal(t, 3, st.Live())
	f.Release()
	h.Release()
	assert.Equal(t, 3, st.Live())
}

func TestTable_Iteration(t *testing.T) {
	st := symtab.New(symtab.WithCapacity(16))
	want := map[string]bool{"x": true, "y": true, "42": true, "z": true}
	for s := range want {
		st.Insert(s)
	}

	got := make(map[string]bool)
	prev := -1
	for p := st.Begin(); !p.IsEnd(); p.Next() {
		require.Greater(t, p.Index(), prev)
		prev = p.Index()
		got[p.Symbol()] = true
	}
	assert.Equal(t, want, got)

	prev = -1
	n := 0
	for i, s := range st.All() {
		require.Greater(t, i, prev)
		prev = i
		assert.True(t, want[s])
		n++
	}
	assert.Equal(t, len(want), n)

	end := st.End()
	assert.True(t, end.Next().IsEnd())
}

func TestPosition_String(t *testing.T) {
	st := symtab.New(symtab.WithCapacity(4))
	p, _ := st.Insert("abc")
	assert.Equal(t, strconv.Itoa(p.Index())+":abc", p.String())
	assert.Equal(t, "<end>", st.End().String())
	p.Release()
	assert.Equal(t, "<released>", p.String())
}
