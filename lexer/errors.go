package lexer

import (
	"fmt"

	"github.com/cata-b/FLCDCompiler/token"
	"go.uber.org/multierr"
)

// UnknownTokenError reports a token that no token class accepts.
//
type UnknownTokenError struct {
	Token token.Token
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("line %d: unknown token %q", e.Token.Line, e.Token.Content)
}

// Errors combines an UnknownTokenError for each token into a single error.
// It returns nil if ts is empty. Use multierr.Errors to get them back.
//
func Errors(ts []token.Token) error {
	var err error
	for _, t := range ts {
		err = multierr.Append(err, &UnknownTokenError{Token: t})
	}
	return err
}
