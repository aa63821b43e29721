// Package tokenizer splits source files into tokens.
//
// Tokenizing is a pipeline of stages, each consuming the full output of the
// previous one:
//
//	1. raw split: the file is read through a fixed-size buffer and split into
//	   maximal runs of separator and non-separator bytes.
//	2. separator runs are split into atoms, two-byte operators (// || && ==
//	   != <= >=) being matched greedily.
//	3. comments, from "//" through the end of the line, are removed.
//	4. a sign in operand position immediately followed by digits becomes a
//	   single signed integer token.
//	5. string literals are reassembled into single tokens.
//	6. space, tab and newline tokens are removed.
//
// Comments are removed before string literals are reassembled, so "//"
// inside a string literal starts a comment.
//
package tokenizer

import (
	"context"
	"io"

	"github.com/cata-b/FLCDCompiler/token"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

type options struct {
	fs      afero.Fs
	bufSize int
}

// An Option is a configuration option for a new Tokenizer.
//
type Option func(*options)

// WithFs sets the file system input files are opened from. The default is
// the OS file system.
//
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithBufferSize sets the size of the read buffer. The buffer still grows if
// a single run of characters does not fit.
//
func WithBufferSize(n int) Option {
	return func(o *options) {
		o.bufSize = n
	}
}

// Tokenizer splits files into tokens. A Tokenizer holds no per-file state
// and can be reused.
//
type Tokenizer struct {
	fs      afero.Fs
	bufSize int
}

// New returns a new Tokenizer.
//
func New(opts ...Option) *Tokenizer {
	o := options{
		fs:      afero.NewOsFs(),
		bufSize: DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Tokenizer{fs: o.fs, bufSize: o.bufSize}
}

// Tokenize reads the named file and returns its tokens. The file is closed
// before Tokenize returns.
//
// The returned error is an *Error wrapping ErrOpen, ErrRead or
// ErrUnterminatedString.
//
func (t *Tokenizer) Tokenize(ctx context.Context, filename string) ([]token.Token, error) {
	f, err := t.fs.Open(filename)
	if err != nil {
		return nil, newIOError(ErrOpen, filename, err)
	}
	defer f.Close()

	return t.TokenizeReader(ctx, filename, f)
}

// TokenizeReader is like Tokenize but reads from r. name is only used in
// error messages and logs.
//
func (t *Tokenizer) TokenizeReader(ctx context.Context, name string, r io.Reader) ([]token.Token, error) {
	log := zerolog.Ctx(ctx).With().Str("file", name).Logger()

	f := token.NewFile(name, r)
	runs, err := newReader(f, t.bufSize, &log).split()
	if err != nil {
		return nil, newIOError(ErrRead, f.Name(), err)
	}

	atoms := splitSeparators(runs)
	stripped := removeComments(atoms)
	signed := combineSignedIntegers(stripped)
	strs, err := combineStringLiterals(signed)
	if err != nil {
		log.Debug().Err(err).Msg("tokenizing failed")
		return nil, err
	}
	tokens := removeWhitespace(strs)

	log.Debug().
		Int("lines", f.Lines()).
		Int("runs", len(runs)).
		Int("atoms", len(atoms)).
		Int("tokens", len(tokens)).
		Msg("tokenized")

	return tokens, nil
}
