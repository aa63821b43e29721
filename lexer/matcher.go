package lexer

import (
	"regexp"

	"github.com/cata-b/FLCDCompiler/token"
)

// A Matcher decides whether a token belongs to a token class.
// *automaton.Automaton implements Matcher.
//
type Matcher interface {
	Match(s string) bool
}

// MatcherFunc adapts a function to the Matcher interface.
//
type MatcherFunc func(s string) bool

// Match calls f(s).
//
func (f MatcherFunc) Match(s string) bool { return f(s) }

// Pattern returns a Matcher accepting strings entirely matched by the regular
// expression expr. It panics if expr does not compile.
//
func Pattern(expr string) Matcher {
	re := regexp.MustCompile(`^(?:` + expr + `)$`)
	return MatcherFunc(re.MatchString)
}

// Built-in matchers, one per token class.
//
var (
	Keywords         = NewWords(token.Keywords...)
	UnsignedIntegers = Pattern(`[1-9][0-9]*|0`)
	SignedIntegers   = Pattern(`[+-][1-9][0-9]*`)
	Booleans         = NewWords("true", "false")
	Strings          = Pattern(`"[a-zA-Z0-9+\-*/%\\=<>\[\]{}()?!_.|&^",':; \t]*"`)
	Operators        = NewWords("==", "!=", ">=", "<=", "||", "&&", "+", "-", "*", "/", "%", "=", "<", ">", "^", "|", "&", "!")
	Separators       = NewWords("(", ")", "{", "}", "[", "]", ",", "'", ":", ";")
	Identifiers      = Pattern(`[a-zA-Z_][a-zA-Z0-9_]*`)
)
