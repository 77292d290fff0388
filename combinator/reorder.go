package combinator

import (
	"github.com/on-the-ground/funcore/enum"
	"github.com/on-the-ground/funcore/fun"
)

// RotateArgs moves the last shift positional arguments to the front before
// calling fn. Named arguments pass through.
func RotateArgs(fn fun.Func, shift int) fun.Func {
	return func(args fun.Args) (any, error) {
		pos, err := enum.Rotate(args.Pos, shift)
		if err != nil {
			return nil, err
		}
		return fn(args.WithPos(pos))
	}
}

// FlipArgs swaps positional arguments i and j before calling fn.
func FlipArgs(fn fun.Func, i, j int) fun.Func {
	return func(args fun.Args) (any, error) {
		pos, err := enum.Flip(args.Pos, i, j)
		if err != nil {
			return nil, err
		}
		return fn(args.WithPos(pos))
	}
}

// FlipArgsNext swaps positional arguments i and i+1.
func FlipArgsNext(fn fun.Func, i int) fun.Func {
	return FlipArgs(fn, i, i+1)
}
