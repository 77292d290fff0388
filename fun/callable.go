package fun

import (
	"fmt"
	"reflect"
)

// Callable is a Func together with its declared signature.
type Callable struct {
	Name string

	// Arity is the number of arguments, positional and named, the function
	// requires.
	Arity int

	// Types optionally declares one type per parameter. It is required by
	// type based dispatch and left empty otherwise.
	Types []reflect.Type

	Fn Func
}

// Define builds a Callable from an untyped Func.
func Define(name string, arity int, fn Func, types ...reflect.Type) Callable {
	if fn == nil {
		panic("fun.Define: nil function")
	}
	mustHaveArity(arity)
	return Callable{Name: name, Arity: arity, Types: types, Fn: fn}
}

// Call invokes the function directly, without currying.
func (c Callable) Call(args Args) (any, error) {
	if args.Len() != c.Arity {
		return nil, &ArityError{Name: c.Name, Required: c.Arity, Given: args.Len()}
	}
	return c.Fn(args)
}

// Typed reports whether the callable declares exactly one type per parameter.
func (c Callable) Typed() bool {
	return len(c.Types) == c.Arity
}

// F0 adapts a typed function without parameters.
func F0[R any](name string, f func() R) Callable {
	return Define(name, 0, func(args Args) (any, error) {
		if err := positionalOnly(name, args, 0); err != nil {
			return nil, err
		}
		return f(), nil
	})
}

// F1 adapts a typed unary function.
func F1[A, R any](name string, f func(A) R) Callable {
	return Define(name, 1, func(args Args) (any, error) {
		if err := positionalOnly(name, args, 1); err != nil {
			return nil, err
		}
		a, err := argAt[A](args.Pos, 0)
		if err != nil {
			return nil, err
		}
		return f(a), nil
	}, reflect.TypeFor[A]())
}

// F2 adapts a typed binary function.
func F2[A, B, R any](name string, f func(A, B) R) Callable {
	return Define(name, 2, func(args Args) (any, error) {
		if err := positionalOnly(name, args, 2); err != nil {
			return nil, err
		}
		a, err := argAt[A](args.Pos, 0)
		if err != nil {
			return nil, err
		}
		b, err := argAt[B](args.Pos, 1)
		if err != nil {
			return nil, err
		}
		return f(a, b), nil
	}, reflect.TypeFor[A](), reflect.TypeFor[B]())
}

// F3 adapts a typed ternary function.
func F3[A, B, C, R any](name string, f func(A, B, C) R) Callable {
	return Define(name, 3, func(args Args) (any, error) {
		if err := positionalOnly(name, args, 3); err != nil {
			return nil, err
		}
		a, err := argAt[A](args.Pos, 0)
		if err != nil {
			return nil, err
		}
		b, err := argAt[B](args.Pos, 1)
		if err != nil {
			return nil, err
		}
		c, err := argAt[C](args.Pos, 2)
		if err != nil {
			return nil, err
		}
		return f(a, b, c), nil
	}, reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]())
}

// FN adapts a variadic function taking exactly arity arguments of type A.
func FN[A, R any](name string, arity int, f func(...A) R) Callable {
	mustHaveArity(arity)
	types := make([]reflect.Type, arity)
	for i := range types {
		types[i] = reflect.TypeFor[A]()
	}
	return Define(name, arity, func(args Args) (any, error) {
		if err := positionalOnly(name, args, arity); err != nil {
			return nil, err
		}
		as := make([]A, arity)
		for i := range as {
			a, err := argAt[A](args.Pos, i)
			if err != nil {
				return nil, err
			}
			as[i] = a
		}
		return f(as...), nil
	}, types...)
}

func mustHaveArity(arity int) {
	if arity < 0 {
		panic(fmt.Sprintf("fun.Define: negative arity %d", arity))
	}
}

// typed adapters have no parameter names to bind named arguments to
func positionalOnly(name string, args Args, arity int) error {
	if len(args.Named) > 0 {
		return fmt.Errorf("%w: %s takes no named arguments", ErrArgumentType, name)
	}
	if len(args.Pos) != arity {
		return &ArityError{Name: name, Required: arity, Given: args.Len()}
	}
	return nil
}

func argAt[A any](pos []any, i int) (A, error) {
	var zero A
	v, ok := pos[i].(A)
	if ok {
		return v, nil
	}
	if pos[i] == nil && nillable(reflect.TypeFor[A]()) {
		return zero, nil
	}
	return zero, fmt.Errorf("%w: argument %d is %T, want %v", ErrArgumentType, i, pos[i], reflect.TypeFor[A]())
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
