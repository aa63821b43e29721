package tokenizer

import (
	"fmt"

	"github.com/cata-b/FLCDCompiler/token"
	"gitlab.com/tozd/go/errors"
)

// Kind classifies tokenizer errors.
//
type Kind int

// Error kinds.
//
const (
	KindIO Kind = iota
	KindUnterminatedString
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "I/O error"
	case KindUnterminatedString:
		return "unterminated string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Common errors. Errors returned by the tokenizer wrap one of these.
//
var (
	ErrOpen               = errors.New("cannot open input file")
	ErrRead               = errors.New("cannot read input file")
	ErrUnterminatedString = errors.New("incomplete string literal")
)

// Error is the error type returned by Tokenize. Token holds the last token
// seen when HasToken is true.
//
type Error struct {
	Kind     Kind
	Token    token.Token
	HasToken bool
	err      error // one of the Err* sentinels
	cause    error
}

func newIOError(sentinel error, name string, cause error) *Error {
	return &Error{
		Kind:  KindIO,
		err:   sentinel,
		cause: errors.Errorf("%s: %w", name, cause),
	}
}

func newTokenError(sentinel error, t token.Token) *Error {
	return &Error{
		Kind:     KindUnterminatedString,
		Token:    t,
		HasToken: true,
		err:      sentinel,
	}
}

func (e *Error) Error() string {
	msg := e.err.Error()
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	if e.HasToken {
		msg += fmt.Sprintf(" (last token %q at line %d)", e.Token.Content, e.Token.Line)
	}
	return msg
}

// Unwrap returns the sentinel error and the underlying cause, if any.
//
func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.err}
	}
	return []error{e.err, e.cause}
}
