package combinator

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/on-the-ground/funcore/fun"
	"github.com/on-the-ground/funcore/log"
	"go.uber.org/zap"
)

// Protocol dispatches on the dynamic types of the positional arguments.
// Rules are tried in order; the first whose declared types equal the
// argument types exactly handles the call. Calls no rule handles go to the
// decorated function.
//
// Every rule must declare one type per parameter. All invalid rules are
// reported together.
func Protocol(rules ...fun.Callable) (Decorator, error) {
	var reterr error
	for i, rule := range rules {
		if rule.Fn == nil {
			reterr = appendErr(reterr, fmt.Errorf("%w: rule %d (%q) has no function", ErrInvalidRule, i, rule.Name))
			continue
		}
		if !rule.Typed() {
			reterr = appendErr(reterr, fmt.Errorf("%w: rule %d (%q) declares %d types for %d parameters",
				ErrInvalidRule, i, rule.Name, len(rule.Types), rule.Arity))
		}
	}
	if reterr != nil {
		return nil, reterr
	}

	rules = slices.Clone(rules)
	return func(fallback fun.Func) fun.Func {
		return func(args fun.Args) (any, error) {
			types := fun.ArgTypes(args)
			for _, rule := range rules {
				if slices.Equal(rule.Types, types) {
					return rule.Fn(args)
				}
			}
			log.Logger().Debug("no protocol rule matched, using fallback",
				zap.Stringers("types", typeStringers(types)),
			)
			return fallback(args)
		}
	}, nil
}

// ArgOverload dispatches on the number of arguments, positional and named.
// The first callable whose arity equals that number handles the call with
// all of its arguments. Other calls go to the decorated function.
func ArgOverload(fns ...fun.Callable) (Decorator, error) {
	var reterr error
	for i, fn := range fns {
		if fn.Fn == nil {
			reterr = appendErr(reterr, fmt.Errorf("%w: overload %d (%q) has no function", ErrInvalidRule, i, fn.Name))
		}
		if fn.Arity < 0 {
			reterr = appendErr(reterr, fmt.Errorf("%w: overload %d (%q) has negative arity %d", ErrInvalidRule, i, fn.Name, fn.Arity))
		}
	}
	if reterr != nil {
		return nil, reterr
	}

	fns = slices.Clone(fns)
	return func(fallback fun.Func) fun.Func {
		return func(args fun.Args) (any, error) {
			n := args.Len()
			for _, fn := range fns {
				if fn.Arity == n {
					return fn.Fn(args)
				}
			}
			log.Logger().Debug("no overload matched, using fallback", zap.Int("args", n))
			return fallback(args)
		}
	}, nil
}

// Guard calls the decorated function only when cond holds for the
// arguments, and returns def otherwise.
func Guard(cond func(fun.Args) bool, def any) Decorator {
	return func(fn fun.Func) fun.Func {
		return func(args fun.Args) (any, error) {
			if cond(args) {
				return fn(args)
			}
			return def, nil
		}
	}
}

func typeStringers(types []reflect.Type) []fmt.Stringer {
	out := make([]fmt.Stringer, len(types))
	for i, t := range types {
		if t == nil {
			out[i] = nilType{}
			continue
		}
		out[i] = t
	}
	return out
}

type nilType struct{}

func (nilType) String() string { return "nil" }
