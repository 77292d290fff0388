package combinator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/on-the-ground/funcore/combinator"
	"github.com/on-the-ground/funcore/fun"
	"github.com/on-the-ground/funcore/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counted(calls *int) fun.Func {
	return func(args fun.Args) (any, error) {
		*calls++
		return len(args.Pos), nil
	}
}

func TestMemoize_CachesByPositionalArgs(t *testing.T) {
	calls := 0
	f := combinator.Memoize(0)(counted(&calls))

	for range 3 {
		r, err := f(fun.Positional(1, "a"))
		require.NoError(t, err)
		assert.Equal(t, 2, r)
	}
	assert.Equal(t, 1, calls)

	_, _ = f(fun.Positional(1, "b"))
	assert.Equal(t, 2, calls)

	// named arguments are not part of the key
	_, _ = f(fun.Args{Pos: []any{1, "a"}, Named: map[string]any{"x": 1}})
	assert.Equal(t, 2, calls)
}

func TestMemoize_SizeOneKeepsLatest(t *testing.T) {
	defer log.WithTestLogger()()

	calls := 0
	f := combinator.Memoize(1, combinator.WithName("size-one"))(counted(&calls))

	_, _ = f(fun.Positional(1))
	_, _ = f(fun.Positional(1))
	assert.Equal(t, 1, calls)

	_, _ = f(fun.Positional(2)) // evicts (1)
	_, _ = f(fun.Positional(2))
	assert.Equal(t, 2, calls)

	_, _ = f(fun.Positional(1))
	assert.Equal(t, 3, calls)
}

func TestMemoize_LRU(t *testing.T) {
	calls := 0
	f := combinator.Memoize(2, combinator.WithLRU())(counted(&calls))

	_, _ = f(fun.Positional("a"))
	_, _ = f(fun.Positional("b"))
	_, _ = f(fun.Positional("a")) // a is now the most recent
	_, _ = f(fun.Positional("c")) // evicts b
	assert.Equal(t, 3, calls)

	_, _ = f(fun.Positional("a"))
	assert.Equal(t, 3, calls)
	_, _ = f(fun.Positional("b"))
	assert.Equal(t, 4, calls)
}

func TestMemoize_ErrorsAreNotCached(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	f := combinator.Memoize(4)(func(fun.Args) (any, error) {
		calls++
		return nil, boom
	})

	_, err := f(fun.Positional(1))
	assert.ErrorIs(t, err, boom)
	_, err = f(fun.Positional(1))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestMemoize_SeparateCachePerFunction(t *testing.T) {
	memo := combinator.Memoize(0)
	calls1, calls2 := 0, 0
	f1 := memo(counted(&calls1))
	f2 := memo(counted(&calls2))

	_, _ = f1(fun.Positional(1))
	_, _ = f2(fun.Positional(1))
	assert.Equal(t, 1, calls1)
	assert.Equal(t, 1, calls2)
}

func TestMemoize_NonComparableArgs(t *testing.T) {
	calls := 0
	f := combinator.Memoize(0)(counted(&calls))

	_, _ = f(fun.Positional([]int{1, 2}, map[string]int{"a": 1}))
	_, _ = f(fun.Positional([]int{1, 2}, map[string]int{"a": 1}))
	assert.Equal(t, 1, calls)
}

func TestMemoize_Thunk(t *testing.T) {
	calls := 0
	add := fun.F2("add", func(a, b int) int {
		calls++
		return a + b
	})
	f := combinator.Memoize(8)(fun.Curry(add).Func())

	r, err := f(fun.Positional(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 5, r)
	_, _ = f(fun.Positional(2, 3))
	assert.Equal(t, 1, calls)
}

func TestMemoize_KeyKeepsElementTypes(t *testing.T) {
	calls := 0
	f := combinator.Memoize(0)(func(args fun.Args) (any, error) {
		calls++
		return fmt.Sprintf("%T", args.Pos[0].([]any)[0]), nil
	})

	for _, tt := range []struct {
		arg  []any
		want string
	}{
		{arg: []any{1}, want: "int"},
		{arg: []any{int64(1)}, want: "int64"},
		{arg: []any{1.0}, want: "float64"},
		{arg: []any{1}, want: "int"},
	} {
		r, err := f(fun.Positional(tt.arg))
		require.NoError(t, err)
		assert.Equal(t, tt.want, r)
	}
	assert.Equal(t, 3, calls)
}
