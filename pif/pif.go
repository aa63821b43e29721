// Package pif writes the program internal form and the symbol table to text
// files.
//
// The internal form has one line per entry: the token text, or IDENTIFIER
// and CONSTANT for tokens of those types, padded to a fixed column, then the
// index of the entry's symbol table slot or -1 for entries that were not
// interned.
//
//	x = -5 ;
//
// is written as
//
//	IDENTIFIER              3
//	=                       -1
//	CONSTANT                0
//	;                       -1
//
package pif

import (
	"bufio"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/apparentlymart/go-textseg/v13/textseg"
	"github.com/cata-b/FLCDCompiler/lexer"
	"github.com/cata-b/FLCDCompiler/symtab"
	"github.com/cata-b/FLCDCompiler/token"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/width"
)

// DefaultColumnWidth is the default width of the token column, in text cells.
//
const DefaultColumnWidth = 24

type options struct {
	column int
}

// An Option configures the internal form writer.
//
type Option func(*options)

// WithColumnWidth sets the width of the token column. Texts wider than the
// column are followed by a single space.
//
func WithColumnWidth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.column = n
		}
	}
}

// Text returns the text written for e in the token column. Boolean
// constants are not interned: they are written as CONSTANT with index -1.
//
func Text(e lexer.Entry) string {
	switch e.Type {
	case token.Identifier, token.Constant:
		return e.Type.String()
	}
	return e.Content
}

// Index returns the symbol table index written for e, or -1 if e has no
// symbol.
//
func Index(e lexer.Entry) int {
	if e.Position == nil || e.Position.IsEnd() {
		return -1
	}
	return e.Position.Index()
}

// WriteInternalForm writes entries to w.
//
func WriteInternalForm(w io.Writer, entries []lexer.Entry, opts ...Option) error {
	o := options{column: DefaultColumnWidth}
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	var buf []byte
	for _, e := range entries {
		s := Text(e)
		buf = append(buf[:0], s...)
		pad := o.column - Width(s)
		if pad < 1 {
			pad = 1
		}
		for ; pad > 0; pad-- {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(Index(e)), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Errorf("writing internal form: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Errorf("writing internal form: %w", err)
	}
	return nil
}

// WriteSymbolTable writes one "<index> <symbol>" line per symbol of t, in
// slot order.
//
func WriteSymbolTable(w io.Writer, t *symtab.Table) error {
	bw := bufio.NewWriter(w)
	for i, s := range t.All() {
		if _, err := bw.WriteString(strconv.Itoa(i) + " " + s + "\n"); err != nil {
			return errors.Errorf("writing symbol table: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Errorf("writing symbol table: %w", err)
	}
	return nil
}

// Width computes the width in text cells of s, supposing rendering with a
// UTF-8 locale and a monospaced font. Each grapheme cluster counts as wide as
// its first rune.
//
func Width(s string) int {
	w := 0
	b := []byte(s)
	for len(b) > 0 {
		n, cluster, err := textseg.ScanGraphemeClusters(b, true)
		if err != nil || n == 0 {
			break
		}
		b = b[n:]
		r, _ := utf8.DecodeRune(cluster)
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			w++
		}
	}
	return w
}
