package combinator

import (
	"github.com/on-the-ground/funcore/fun"
	"github.com/on-the-ground/funcore/log"
	"github.com/on-the-ground/funcore/pure"
	"go.uber.org/zap"
)

type memoConfig struct {
	policy pure.Policy
	name   string
}

// MemoOption configures Memoize.
type MemoOption func(*memoConfig)

// WithLRU evicts the least recently used entry instead of an arbitrary one.
func WithLRU() MemoOption {
	return func(c *memoConfig) {
		c.policy = pure.EvictLRU
	}
}

// WithName labels the memo tables in debug logs.
func WithName(name string) MemoOption {
	return func(c *memoConfig) {
		c.name = name
	}
}

// Memoize caches results keyed by the positional arguments. Named
// arguments are not part of the key: calls differing only in named
// arguments share an entry. Errors are not cached.
//
// size <= 0 leaves the cache unbounded. Otherwise the cache holds at most
// size entries and evicts one before storing a new key into a full cache.
// Each decorated function gets its own cache.
func Memoize(size int, opts ...MemoOption) Decorator {
	cfg := memoConfig{policy: pure.EvictArbitrary}
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(fn fun.Func) fun.Func {
		table := pure.NewTable[any](pure.NewConfig(size, cfg.policy))
		log.Logger().Debug("memoizing function",
			zap.String("name", cfg.name),
			zap.String("table", table.ID),
			zap.Int("size", size),
			zap.Stringer("policy", cfg.policy),
		)
		return func(args fun.Args) (any, error) {
			if v, ok := table.Load(args.Pos); ok {
				return v, nil
			}
			v, err := fn(args)
			if err != nil {
				return nil, err
			}
			table.Store(args.Pos, v)
			return v, nil
		}
	}
}
