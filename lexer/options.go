package lexer

type options struct {
	identifiers Matcher
	integers    Matcher
}

// An Option is a configuration option for a new Analyzer.
//
type Option func(*options)

// WithIdentifierMatcher replaces the matcher of the identifier class, e.g.
// with an automaton loaded from a file. The replacement must accept the same
// language as Identifiers for the output to stay the same.
//
func WithIdentifierMatcher(m Matcher) Option {
	return func(o *options) {
		if m != nil {
			o.identifiers = m
		}
	}
}

// WithIntegerMatcher replaces the matcher of the signed integer constant
// class. The replacement may also accept unsigned integers since those are
// tried first and map to the same type.
//
func WithIntegerMatcher(m Matcher) Option {
	return func(o *options) {
		if m != nil {
			o.integers = m
		}
	}
}
