// Package combinator builds new fun.Func values out of existing ones.
//
// Most combinators are Decorators: they take the function being decorated
// and return a replacement. Dispatching decorators (Protocol, ArgOverload)
// treat the decorated function as the fallback for calls no rule handles.
//
//	double := fun.F1("double", func(n int) int { return n * 2 })
//	shout := fun.F1("shout", func(s string) string { return s + "!" })
//	dispatch, err := combinator.Protocol(double, shout)
//	if err != nil {
//		return err
//	}
//	f := dispatch(fallback)
//	f(fun.Positional(21))   // 42
//	f(fun.Positional("hi")) // "hi!"
package combinator
