// Package automaton implements deterministic finite automata loaded from
// YAML descriptions. They are used as drop-in token matchers by the lexer.
//
// A description lists the states, the initial state, the final states and
// the transitions. Each transition consumes one character from a character
// class:
//
//	states: [q0, q1]
//	initial: q0
//	final: [q1]
//	transitions:
//	  - {from: q0, to: q1, on: "a-zA-Z_"}
//	  - {from: q1, to: q1, on: "a-zA-Z0-9_"}
//
// A class is a list of single characters and ranges written lo-hi. A literal
// '-' is written \- and a literal '\' is written \\.
//
package automaton

import (
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Common errors.
//
var (
	ErrInvalid = errors.New("invalid automaton")
)

type description struct {
	States      []string `yaml:"states"`
	Initial     string   `yaml:"initial"`
	Final       []string `yaml:"final"`
	Transitions []struct {
		From string `yaml:"from"`
		To   string `yaml:"to"`
		On   string `yaml:"on"`
	} `yaml:"transitions"`
}

// transition is one edge over the byte range [lo, hi].
//
type transition struct {
	lo, hi byte
	next   int
}

type state struct {
	name  string
	final bool
	trans []transition // sorted by lo, non-overlapping
}

// Automaton is a deterministic finite automaton over bytes.
//
type Automaton struct {
	states  []state
	initial int
}

// Load reads and parses the description in the named file.
//
func Load(fs afero.Fs, path string) (*Automaton, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading automaton %s: %w", path, err)
	}
	a, err := Parse(b)
	if err != nil {
		return nil, errors.Errorf("loading automaton %s: %w", path, err)
	}
	return a, nil
}

// Parse parses a YAML automaton description. All problems found in the
// description are reported at once, in a *multierror.Error whose errors each
// wrap ErrInvalid.
//
func Parse(b []byte) (*Automaton, error) {
	var d description
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, errors.Errorf("%w: %w", ErrInvalid, err)
	}

	var merr *multierror.Error
	a := &Automaton{}
	ids := make(map[string]int, len(d.States))
	for _, name := range d.States {
		if _, dup := ids[name]; dup {
			merr = multierror.Append(merr, errors.Errorf("%w: duplicate state %q", ErrInvalid, name))
			continue
		}
		ids[name] = len(a.states)
		a.states = append(a.states, state{name: name})
	}
	lookup := func(name string) (int, bool) {
		id, ok := ids[name]
		if !ok {
			merr = multierror.Append(merr, errors.Errorf("%w: unknown state %q", ErrInvalid, name))
		}
		return id, ok
	}

	a.initial, _ = lookup(d.Initial)
	for _, name := range d.Final {
		if id, ok := lookup(name); ok {
			a.states[id].final = true
		}
	}

	for _, t := range d.Transitions {
		from, okFrom := lookup(t.From)
		to, okTo := lookup(t.To)
		ranges, err := parseClass(t.On)
		if err != nil {
			merr = multierror.Append(merr, err)
		}
		if !okFrom || !okTo {
			continue
		}
		for _, r := range ranges {
			a.states[from].trans = append(a.states[from].trans, transition{r[0], r[1], to})
		}
	}

	for i := range a.states {
		s := &a.states[i]
		sort.Slice(s.trans, func(i, j int) bool { return s.trans[i].lo < s.trans[j].lo })
		for j := 1; j < len(s.trans); j++ {
			if s.trans[j].lo <= s.trans[j-1].hi {
				merr = multierror.Append(merr,
					errors.Errorf("%w: state %q is not deterministic on %q", ErrInvalid, s.name, s.trans[j].lo))
			}
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return a, nil
}

// parseClass parses a character class into inclusive byte ranges.
//
func parseClass(s string) ([][2]byte, error) {
	var (
		out  [][2]byte
		lits []byte
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' {
			if i+1 == len(s) {
				return nil, errors.Errorf("%w: trailing escape in class %q", ErrInvalid, s)
			}
			i++
			c = s[i]
		} else if c == '-' && len(lits) > 0 && i+1 < len(s) {
			lo := lits[len(lits)-1]
			lits = lits[:len(lits)-1]
			hi := s[i+1]
			i++
			if hi == '\\' && i+1 < len(s) {
				i++
				hi = s[i]
			}
			if hi < lo {
				return nil, errors.Errorf("%w: reversed range %c-%c in class %q", ErrInvalid, lo, hi, s)
			}
			out = append(out, [2]byte{lo, hi})
			continue
		}
		lits = append(lits, c)
	}
	for _, c := range lits {
		out = append(out, [2]byte{c, c})
	}
	if len(out) == 0 {
		return nil, errors.Errorf("%w: empty class", ErrInvalid)
	}
	return out, nil
}

// Accepts returns true if s belongs to the language accepted by a.
//
func (a *Automaton) Accepts(s string) bool {
	cur := a.initial
	for i := 0; i < len(s); i++ {
		next, ok := a.states[cur].step(s[i])
		if !ok {
			return false
		}
		cur = next
	}
	return a.states[cur].final
}

// Match is an alias for Accepts so that an Automaton can be used as a
// lexer matcher.
//
func (a *Automaton) Match(s string) bool {
	return a.Accepts(s)
}

func (s *state) step(c byte) (int, bool) {
	i := sort.Search(len(s.trans), func(i int) bool { return s.trans[i].hi >= c })
	if i < len(s.trans) && s.trans[i].lo <= c {
		return s.trans[i].next, true
	}
	return 0, false
}
