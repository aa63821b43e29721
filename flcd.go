// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package flcd

import (
	"context"

	"github.com/cata-b/FLCDCompiler/lexer"
	"github.com/cata-b/FLCDCompiler/symtab"
	"github.com/cata-b/FLCDCompiler/token"
	"github.com/cata-b/FLCDCompiler/tokenizer"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

type options struct {
	fs          afero.Fs
	bufSize     int
	capacity    int
	identifiers lexer.Matcher
	integers    lexer.Matcher
}

// An Option is a configuration option for Compile.
//
type Option func(*options)

// WithFs sets the file system the source file is read from.
//
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithBufferSize sets the size of the tokenizer read buffer.
//
func WithBufferSize(n int) Option {
	return func(o *options) {
		o.bufSize = n
	}
}

// WithTableCapacity sets the initial capacity of the symbol table.
//
func WithTableCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithIdentifierMatcher sets the matcher for identifiers. See
// lexer.WithIdentifierMatcher.
//
func WithIdentifierMatcher(m lexer.Matcher) Option {
	return func(o *options) {
		o.identifiers = m
	}
}

// WithIntegerMatcher sets the matcher for signed integer constants. See
// lexer.WithIntegerMatcher.
//
func WithIntegerMatcher(m lexer.Matcher) Option {
	return func(o *options) {
		o.integers = m
	}
}

// Result holds the output of Compile.
//
type Result struct {
	Tokens []token.Token // tokenizer output
	PIF    []lexer.Entry // internal form of the classified tokens
	Errors []token.Token // tokens no class accepts
	Table  *symtab.Table
}

// Err returns an error listing the unclassified tokens, or nil if there are
// none.
//
func (r *Result) Err() error {
	return lexer.Errors(r.Errors)
}

// Compile tokenizes and analyzes the named file. The returned error is
// non-nil only if the file could not be tokenized, see tokenizer.Error.
// Unclassified tokens are reported in Result.Errors.
//
// The logger is taken from ctx, see zerolog.Ctx.
//
func Compile(ctx context.Context, filename string, opts ...Option) (*Result, error) {
	o := options{
		fs:       afero.NewOsFs(),
		bufSize:  tokenizer.DefaultBufferSize,
		capacity: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}

	log := zerolog.Ctx(ctx)

	tokens, err := tokenizer.New(tokenizer.WithFs(o.fs), tokenizer.WithBufferSize(o.bufSize)).Tokenize(ctx, filename)
	if err != nil {
		return nil, err
	}

	st := symtab.New(symtab.WithCapacity(o.capacity), symtab.WithLogger(log.With().Str("file", filename).Logger()))
	a := lexer.New(lexer.WithIdentifierMatcher(o.identifiers), lexer.WithIntegerMatcher(o.integers))
	errs, pif := a.Analyze(ctx, tokens, st)

	log.Info().
		Str("file", filename).
		Int("tokens", len(tokens)).
		Int("symbols", st.Len()).
		Int("errors", len(errs)).
		Msg("compiled")

	return &Result{Tokens: tokens, PIF: pif, Errors: errs, Table: st}, nil
}
