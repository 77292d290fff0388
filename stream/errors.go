package stream

import (
	"fmt"

	"github.com/on-the-ground/funcore/enum"
)

var (
	ErrEmptyInput      = enum.ErrEmptyInput
	ErrIndexOutOfRange = enum.ErrIndexOutOfRange

	// ErrNotSupported is returned by operations that have no well defined
	// index rule over infinite inputs.
	ErrNotSupported = fmt.Errorf("operation not supported on streams")
)
