// Package lexer implements the lexical analyzer: it classifies the tokens
// produced by the tokenizer and builds the program internal form (PIF).
//
// Each token is checked against an ordered list of token classes and gets
// the type of the first class that accepts it. The order is significant:
// keywords and boolean literals are tried before identifiers, and unsigned
// integers before signed ones. Tokens of interned classes (identifiers and
// integer or string constants) are inserted into the symbol table and their
// PIF entry holds the resulting position. Other entries hold the table End.
// Tokens that no class accepts are returned separately and are left out of
// the PIF.
//
package lexer

import (
	"context"

	"github.com/cata-b/FLCDCompiler/symtab"
	"github.com/cata-b/FLCDCompiler/token"
	"github.com/rs/zerolog"
)

// A Class is a token class.
//
type Class struct {
	Name     string
	Matcher  Matcher
	Type     token.Type
	Interned bool // tokens of this class go to the symbol table
}

// Entry is an entry of the program internal form.
//
type Entry struct {
	token.Token
	Type     token.Type
	Position *symtab.Position
}

// Analyzer classifies tokens. It is safe for concurrent use as long as the
// matchers it was configured with are.
//
type Analyzer struct {
	classes []Class
}

// New returns a new Analyzer.
//
func New(opts ...Option) *Analyzer {
	o := options{
		identifiers: Identifiers,
		integers:    SignedIntegers,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Analyzer{
		classes: []Class{
			{"keyword", Keywords, token.Keyword, false},
			{"unsigned integer", UnsignedIntegers, token.Constant, true},
			{"signed integer", o.integers, token.Constant, true},
			{"boolean", Booleans, token.Constant, false},
			{"string", Strings, token.Constant, true},
			{"operator", Operators, token.Operator, false},
			{"separator", Separators, token.Separator, false},
			{"identifier", o.identifiers, token.Identifier, true},
		},
	}
}

// Classes returns the token classes in the order they are tried.
//
func (a *Analyzer) Classes() []Class {
	return append([]Class(nil), a.classes...)
}

// Classify returns the first class accepting s. It returns false if there is
// none.
//
func (a *Analyzer) Classify(s string) (Class, bool) {
	for _, c := range a.classes {
		if c.Matcher.Match(s) {
			return c, true
		}
	}
	return Class{Name: "error", Type: token.Error}, false
}

// Analyze classifies tokens, interning identifiers and constants into st.
// It returns the tokens that could not be classified and the internal form of
// the others, in input order.
//
func (a *Analyzer) Analyze(ctx context.Context, tokens []token.Token, st *symtab.Table) (errs []token.Token, pif []Entry) {
	log := zerolog.Ctx(ctx)
	pif = make([]Entry, 0, len(tokens))

	for _, t := range tokens {
		c, ok := a.Classify(t.Content)
		if !ok {
			log.Debug().Str("token", t.Content).Int("line", t.Line).Msg("unclassified token")
			errs = append(errs, t)
			continue
		}
		var p *symtab.Position
		if c.Interned {
			p, _ = st.Insert(t.Content)
		} else {
			p = st.End()
		}
		pif = append(pif, Entry{Token: t, Type: c.Type, Position: p})
	}

	log.Debug().
		Int("tokens", len(tokens)).
		Int("errors", len(errs)).
		Int("symbols", st.Len()).
		Msg("lexical analysis done")

	return errs, pif
}
