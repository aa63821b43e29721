// Package token defines the tokens produced by the tokenizer and the types
// assigned to them by lexical analysis.
//
package token

import (
	"fmt"
	"strconv"
)

// Token is a piece of source text together with the 1-based line of its
// first character.
//
type Token struct {
	Content string
	Line    int
}

// New returns a Token.
//
func New(content string, line int) Token {
	return Token{Content: content, Line: line}
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%d", strconv.Quote(t.Content), t.Line)
}

// Type represents the class of a token.
//
type Type int

// Token types. Error is used for tokens that no class accepts.
//
const (
	Keyword Type = iota
	Constant
	Operator
	Separator
	Identifier
	Error
)

var typeNames = [...]string{
	Keyword:    "KEYWORD",
	Constant:   "CONSTANT",
	Operator:   "OPERATOR",
	Separator:  "SEPARATOR",
	Identifier: "IDENTIFIER",
	Error:      "ERROR",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// Keywords lists the reserved words of the language.
//
var Keywords = []string{"int", "uint", "bool", "string", "read", "print", "error",
	"rand", "exit", "for", "while", "if", "else", "break", "continue"}

var keywordSet = func() map[string]bool {
	m := make(map[string]bool, len(Keywords))
	for _, k := range Keywords {
		m[k] = true
	}
	return m
}()

// IsKeyword returns true if s is one of Keywords.
//
func IsKeyword(s string) bool {
	return keywordSet[s]
}

// Contents returns the content of every token in ts.
//
func Contents(ts []Token) []string {
	r := make([]string, len(ts))
	for i := range ts {
		r[i] = ts[i].Content
	}
	return r
}
