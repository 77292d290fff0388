package combinator

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrInvalidRule is reported when a dispatch rule cannot be used.
	ErrInvalidRule = errors.New("invalid dispatch rule")

	// ErrPanicked wraps a panic captured by Nofail.
	ErrPanicked = errors.New("function panicked")
)

// appendErr collects err into reterr. Either may be nil.
func appendErr(reterr, err error) error {
	if reterr == nil {
		return err
	}
	if err == nil {
		return reterr
	}
	return multierror.Append(reterr, err)
}
