package combinator

import (
	"github.com/on-the-ground/funcore/fun"
	"github.com/on-the-ground/funcore/shared/helper"
)

// Memoize1 is Memoize for a typed unary function. It goes through the same
// dynamic call path as Memoize, via fun.F1.
//
//	var fib func(int) int
//	fib = combinator.Memoize1(0, func(n int) int {
//		if n <= 1 {
//			return n
//		}
//		return fib(n-1) + fib(n-2)
//	})
func Memoize1[A, R any](size int, f func(A) R, opts ...MemoOption) func(A) R {
	memo := Memoize(size, opts...)(fun.F1("memoize1", f).Fn)
	return func(a A) R {
		return mustCall[R](memo, a)
	}
}

// Memoize2 is Memoize for a typed binary function.
func Memoize2[A, B, R any](size int, f func(A, B) R, opts ...MemoOption) func(A, B) R {
	memo := Memoize(size, opts...)(fun.F2("memoize2", f).Fn)
	return func(a A, b B) R {
		return mustCall[R](memo, a, b)
	}
}

// Memoize3 is Memoize for a typed ternary function.
func Memoize3[A, B, C, R any](size int, f func(A, B, C) R, opts ...MemoOption) func(A, B, C) R {
	memo := Memoize(size, opts...)(fun.F3("memoize3", f).Fn)
	return func(a A, b B, c C) R {
		return mustCall[R](memo, a, b, c)
	}
}

// the typed adapters only fail on argument types, which the signatures fix
func mustCall[R any](fn fun.Func, args ...any) R {
	res, err := fn(fun.Positional(args...))
	if err != nil {
		panic(err)
	}
	if res == nil {
		// a nil interface or pointer result
		var zero R
		return zero
	}
	v, err := helper.As[R](res, nil)
	if err != nil {
		panic(err)
	}
	return v
}
