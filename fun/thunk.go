package fun

import (
	"reflect"

	"github.com/on-the-ground/funcore/shared/helper"
)

// Thunk is a deferred call of a Callable with some arguments already bound.
// A Thunk is immutable: binding more arguments returns a new Thunk.
type Thunk struct {
	callable Callable
	bound    Args
}

// New binds args to c without running it. Binding more arguments than c
// takes is only reported when the Thunk is called.
func New(c Callable, args ...any) *Thunk {
	return NewNamed(c, nil, args...)
}

// NewNamed is New with named arguments.
func NewNamed(c Callable, named map[string]any, args ...any) *Thunk {
	if c.Fn == nil {
		panic("fun.New: callable without function")
	}
	bound, err := Args{}.merge(Args{Pos: args, Named: named})
	if err != nil {
		// a single map cannot hold a key twice
		panic(err)
	}
	return &Thunk{callable: c, bound: bound}
}

// Curry is New without pre-bound arguments.
func Curry(c Callable) *Thunk {
	return New(c)
}

// Call binds args and runs the function once it has all its arguments.
// The result is either the function's result or a *Thunk when arguments are
// still missing.
func (t *Thunk) Call(args ...any) (any, error) {
	return t.CallNamed(nil, args...)
}

// CallNamed is Call with named arguments.
func (t *Thunk) CallNamed(named map[string]any, args ...any) (any, error) {
	merged, err := t.bound.merge(Args{Pos: args, Named: named})
	if err != nil {
		return nil, err
	}

	switch total := merged.Len(); {
	case total == t.callable.Arity:
		return t.callable.Fn(merged)
	case total < t.callable.Arity:
		return &Thunk{callable: t.callable, bound: merged}, nil
	default:
		return nil, &ArityError{Name: t.callable.Name, Required: t.callable.Arity, Given: total}
	}
}

// Arity is the number of arguments the underlying callable requires.
func (t *Thunk) Arity() int {
	return t.callable.Arity
}

// Bound is the number of arguments already bound.
func (t *Thunk) Bound() int {
	return t.bound.Len()
}

// Func exposes the thunk as a Func, so it can be decorated by combinators.
func (t *Thunk) Func() Func {
	return func(args Args) (any, error) {
		return t.CallNamed(args.Named, args.Pos...)
	}
}

// Callable exposes the thunk as a Callable requiring the missing arguments.
// Declared types of the bound parameters are dropped.
func (t *Thunk) Callable() Callable {
	remaining := t.callable.Arity - t.bound.Len()
	if remaining < 0 {
		remaining = 0
	}
	var types []reflect.Type
	if t.callable.Typed() && len(t.bound.Named) == 0 && len(t.bound.Pos) <= len(t.callable.Types) {
		types = t.callable.Types[len(t.bound.Pos):]
	}
	return Callable{Name: t.callable.Name, Arity: remaining, Types: types, Fn: t.Func()}
}

// CallAs calls t and asserts the result to T. A result that is still a
// *Thunk fails with helper.ErrUnexpectedType unless T is *Thunk.
func CallAs[T any](t *Thunk, args ...any) (T, error) {
	return helper.As[T](t.Call(args...))
}

// MustCall is CallAs that panics on failure.
func MustCall[T any](t *Thunk, args ...any) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		return t.Call(args...)
	})
}
