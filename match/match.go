// Package match destructures nested values against a template of the same
// shape.
//
//	b, _ := match.Match(
//		[]any{"a", match.Tuple{"b", "c"}},
//		[]any{1, match.Tuple{2, 3}},
//	)
//	// b == match.Bindings{"a": 1, "b": 2, "c": 3}
package match

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/funcore/internal/key"
	"github.com/on-the-ground/funcore/shared/helper"
)

var ErrNotContainer = fmt.Errorf("template and values must be slices or arrays")

// Tuple is a tuple-like container. A Tuple node in a template only matches
// a Tuple value, and a []any node only matches a []any value.
type Tuple []any

// Bindings maps template leaves to the values found at their position.
// A leaf that cannot be a map key (a Tuple or []any bound as a whole) is
// stored under a digest of its contents; use Lookup to read it back.
type Bindings map[any]any

// Match walks template and values in lock-step, stopping at the shorter of
// the two. A template element that is itself a slice or array is matched
// recursively when the value element has exactly the same type; otherwise
// the template element is bound to the whole value element. Later bindings
// of a leaf overwrite earlier ones. Strings are always leaves.
func Match(template, values any) (Bindings, error) {
	b := Bindings{}
	if err := b.match(reflect.ValueOf(template), reflect.ValueOf(values)); err != nil {
		return nil, err
	}
	return b, nil
}

// Lookup returns the value bound to leaf when it has type T.
func Lookup[T any](b Bindings, leaf any) (T, bool) {
	return helper.GetTypedValueOf2[T](func() (any, bool) {
		v, ok := b[key.Of(leaf)]
		return v, ok
	})
}

func (b Bindings) match(template, values reflect.Value) error {
	if !isContainer(template) || !isContainer(values) {
		return fmt.Errorf("%w: got %v and %v", ErrNotContainer, kindOf(template), kindOf(values))
	}

	n := min(template.Len(), values.Len())
	for i := 0; i < n; i++ {
		t := elem(template.Index(i))
		v := elem(values.Index(i))

		if isContainer(t) && v.IsValid() && t.Type() == v.Type() {
			if err := b.match(t, v); err != nil {
				return err
			}
			continue
		}
		b.bind(t, v)
	}
	return nil
}

func (b Bindings) bind(t, v reflect.Value) {
	var leaf, value any
	if t.IsValid() {
		leaf = t.Interface()
	}
	if v.IsValid() {
		value = v.Interface()
	}
	b[key.Of(leaf)] = value
}

// elem unwraps interface values so nested containers held in []any are
// seen with their concrete type.
func elem(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	return v
}

func isContainer(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

func kindOf(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}
