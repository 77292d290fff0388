package fun

import (
	"errors"
	"fmt"
)

var (
	// ErrArity matches every *ArityError through errors.Is.
	ErrArity = errors.New("arity mismatch")

	ErrDuplicateArgument = errors.New("named argument bound twice")
	ErrArgumentType      = errors.New("argument has the wrong type")
)

// ArityError reports a call given more arguments than the callable takes.
type ArityError struct {
	Name     string
	Required int
	Given    int
}

func (e *ArityError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("exactly %d arguments are needed (%d given)", e.Required, e.Given)
	}
	return fmt.Sprintf("%s: exactly %d arguments are needed (%d given)", e.Name, e.Required, e.Given)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}
