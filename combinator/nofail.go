package combinator

import (
	"fmt"

	"github.com/on-the-ground/funcore/fun"
	"github.com/on-the-ground/funcore/log"
	"github.com/samber/mo"
	"go.uber.org/zap"
)

// Nofail captures the error or panic of every call to fn in the returned
// result instead of propagating it.
func Nofail(fn fun.Func) func(fun.Args) mo.Result[any] {
	return func(args fun.Args) (res mo.Result[any]) {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("%w: %v", ErrPanicked, r)
				log.Logger().Debug("captured panic", zap.Error(err))
				res = mo.Err[any](err)
			}
		}()
		v, err := fn(args)
		if err != nil {
			log.Logger().Debug("captured error", zap.Error(err))
			return mo.Err[any](err)
		}
		return mo.Ok(v)
	}
}
