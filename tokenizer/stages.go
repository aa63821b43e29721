package tokenizer

import (
	"strings"

	"github.com/cata-b/FLCDCompiler/token"
)

const (
	separators = "[]{}():;,+-*/%^|&!\\\"=<> \t\n"
	whitespace = " \t\n"
)

// wideAtoms maps the first byte of a two-byte atom to its second byte.
//
var wideAtoms = [256]byte{
	'/': '/',
	'|': '|',
	'&': '&',
	'=': '=',
	'!': '=',
	'<': '=',
	'>': '=',
}

var separatorSet = func() (s [256]bool) {
	for i := 0; i < len(separators); i++ {
		s[separators[i]] = true
	}
	return s
}()

func isSeparator(c byte) bool { return separatorSet[c] }

func isWhitespace(s string) bool {
	return len(s) == 1 && strings.IndexByte(whitespace, s[0]) >= 0
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// splitSeparators replaces every separator run with its atoms.
//
func splitSeparators(runs []token.Token) []token.Token {
	out := make([]token.Token, 0, len(runs))
	for _, t := range runs {
		if isSeparator(t.Content[0]) {
			out = atomize(out, t)
		} else {
			out = append(out, t)
		}
	}
	return out
}

// atomize appends the atoms of the separator run t to out. Two-byte atoms
// are matched greedily from left to right. An atom's line is the line of its
// first byte.
//
func atomize(out []token.Token, t token.Token) []token.Token {
	s, line := t.Content, t.Line
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i+1 < len(s) && wideAtoms[c] != 0 && wideAtoms[c] == s[i+1] {
			out = append(out, token.New(s[i:i+2], line))
			i++
			continue
		}
		out = append(out, token.New(s[i:i+1], line))
		if c == '\n' {
			line++
		}
	}
	return out
}

// removeComments drops every "//" token together with all tokens up to and
// including the next newline.
//
func removeComments(ts []token.Token) []token.Token {
	out := make([]token.Token, 0, len(ts))
	inComment := false
	for _, t := range ts {
		switch {
		case t.Content == "//":
			inComment = true
		case t.Content == "\n" && inComment:
			inComment = false
		case !inComment:
			out = append(out, t)
		}
	}
	return out
}

// combineSignedIntegers merges a sign followed by a run of digits into a
// single token when the sign is in operand position.
//
func combineSignedIntegers(ts []token.Token) []token.Token {
	out := make([]token.Token, 0, len(ts))
	for i := 0; i < len(ts); i++ {
		t := ts[i]
		if (t.Content == "+" || t.Content == "-") && i+1 < len(ts) &&
			isDigits(ts[i+1].Content) && operandPosition(out) {
			out = append(out, token.New(t.Content+ts[i+1].Content, t.Line))
			i++
			continue
		}
		out = append(out, t)
	}
	return out
}

// operandPosition reports whether a token appended to ts would start an
// operand. The start of input counts as operand position.
//
func operandPosition(ts []token.Token) bool {
	for i := len(ts) - 1; i >= 0; i-- {
		if isWhitespace(ts[i].Content) {
			continue
		}
		return !producesValue(ts[i].Content)
	}
	return true
}

// producesValue reports whether s ends an operand: an identifier, a
// constant or a closing bracket. Keywords do not.
//
func producesValue(s string) bool {
	switch s {
	case ")", "]", "}", `"`:
		return true
	}
	return !isSeparator(s[0]) && !token.IsKeyword(s)
}

// combineStringLiterals merges every token from an opening '"' up to the
// closing one into one token positioned at the opening quote. A newline or
// the end of input inside a literal is an error carrying the last token seen.
//
func combineStringLiterals(ts []token.Token) ([]token.Token, error) {
	var (
		out      = make([]token.Token, 0, len(ts))
		acc      strings.Builder
		inString bool
		start    int
		last     token.Token
	)
	for _, t := range ts {
		switch {
		case t.Content == `"`:
			acc.WriteString(t.Content)
			if inString {
				out = append(out, token.New(acc.String(), start))
				acc.Reset()
			} else {
				start = t.Line
			}
			inString = !inString
		case inString && t.Content == "\n":
			return nil, newTokenError(ErrUnterminatedString, last)
		case inString:
			acc.WriteString(t.Content)
		default:
			out = append(out, t)
		}
		last = t
	}
	if inString {
		return nil, newTokenError(ErrUnterminatedString, last)
	}
	return out, nil
}

// removeWhitespace drops single space, tab and newline tokens.
//
func removeWhitespace(ts []token.Token) []token.Token {
	out := ts[:0]
	for _, t := range ts {
		if !isWhitespace(t.Content) {
			out = append(out, t)
		}
	}
	return out
}
