package rop

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// FailureError is the error form of a failed Outcome.
type FailureError struct {
	Code int
	Hint string
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Hint)
}

// AsError is the default factory for OrElseRaise. The returned error carries
// the stack of the caller and unwraps to a *FailureError.
func AsError[T any](o Outcome[T]) error {
	return pkgerrors.WithStack(&FailureError{Code: o.Code(), Hint: o.hint})
}

func IsFailureError(err error) bool {
	var fe *FailureError
	return errors.As(err, &fe)
}

// CodeOf returns the code of the first *FailureError in err's chain,
// or CodeDefault if there is none.
func CodeOf(err error) int {
	var fe *FailureError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return CodeDefault
}
