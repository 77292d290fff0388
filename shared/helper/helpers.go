package helper

import (
	"fmt"
)

// GetTypedValueOf safely asserts the result of a dynamic call to the expected type T.
// Returns an error if the call failed or the type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T", ErrUnexpectedType, res)
	}

	return val, nil
}

// GetTypedValueOf2 is GetTypedValueOf for comma-ok getters.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
// Use when failure should be fatal (e.g. the call cannot fail by construction).
func MustGetTypedValue[T any](getFn func() (any, error)) T {
	res, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}

// As converts an (any, error) pair, as returned by dynamic calls, to T.
func As[T any](res any, err error) (T, error) {
	return GetTypedValueOf[T](func() (any, error) {
		return res, err
	})
}

var ErrUnexpectedType = fmt.Errorf("unexpected type")
