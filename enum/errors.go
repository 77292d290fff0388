package enum

import "fmt"

var (
	ErrEmptyInput      = fmt.Errorf("operation needs at least one element")
	ErrIndexOutOfRange = fmt.Errorf("index out of range")
)
