package fun

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Args is the argument list of a dynamic call.
type Args struct {
	Pos   []any
	Named map[string]any
}

// Func is a dynamically typed function.
type Func func(Args) (any, error)

// Positional builds Args from positional values only.
func Positional(pos ...any) Args {
	return Args{Pos: pos}
}

// Len is the total number of arguments, positional and named.
func (a Args) Len() int {
	return len(a.Pos) + len(a.Named)
}

// WithPos returns a copy of a whose positional arguments are replaced by pos.
// Named arguments are shared with a.
func (a Args) WithPos(pos []any) Args {
	return Args{Pos: pos, Named: a.Named}
}

// merge appends more to a without touching either operand.
func (a Args) merge(more Args) (Args, error) {
	out := Args{Pos: slices.Concat(a.Pos, more.Pos)}
	if len(a.Named)+len(more.Named) == 0 {
		return out, nil
	}
	out.Named = maps.Clone(a.Named)
	if out.Named == nil {
		out.Named = make(map[string]any, len(more.Named))
	}
	for k, v := range more.Named {
		if _, exists := out.Named[k]; exists {
			return Args{}, fmt.Errorf("%w: %q", ErrDuplicateArgument, k)
		}
		out.Named[k] = v
	}
	return out, nil
}

// ArgTypes returns the dynamic types of the positional arguments.
// A nil argument has a nil type.
func ArgTypes(a Args) []reflect.Type {
	types := make([]reflect.Type, len(a.Pos))
	for i, v := range a.Pos {
		types[i] = reflect.TypeOf(v)
	}
	return types
}
