package combinator

import "github.com/on-the-ground/funcore/fun"

// Decorator wraps a function into a new one.
type Decorator func(fun.Func) fun.Func

// Compose returns f1(f2(...fn(args))). Every function but the innermost
// receives the previous result as its only positional argument. The first
// error stops the chain.
func Compose(fns ...fun.Func) fun.Func {
	if len(fns) == 0 {
		panic("combinator.Compose: no functions")
	}
	return func(args fun.Args) (any, error) {
		res, err := fns[len(fns)-1](args)
		if err != nil {
			return nil, err
		}
		for i := len(fns) - 2; i >= 0; i-- {
			if res, err = fns[i](fun.Positional(res)); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
}
