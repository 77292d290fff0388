package stream

import (
	"github.com/on-the-ground/funcore/enum"
	"github.com/on-the-ground/funcore/log"
	"go.uber.org/zap"
)

// dedupState tracks how far a dedup stream has scanned its source.
type dedupState[T any, K comparable] struct {
	src     int // next source index to read
	emitted int // number of elements emitted so far
	last    K
	value   T
}

// DedupBy drops elements whose key equals the key of the element emitted
// just before them.
//
//	DedupBy(s, f) over 1 1 2 2 2 3 1 ... // 1 2 3 1 ...
//
// Lookups at or after the last emitted index resume the scan where it
// stopped. A lookup behind it rescans from the start. The returned stream
// must not be used from more than one goroutine, and a lookup never returns
// if the source stops producing new keys.
func DedupBy[T any, K comparable](s Stream[T], key func(T) K) Stream[T] {
	state := &dedupState[T, K]{}
	return derive(s, KindDedup, func(i int) T {
		if i < state.emitted-1 {
			log.Logger().Debug("dedup stream rescanning from start",
				zap.Int("index", i),
				zap.Int("emitted", state.emitted),
			)
			*state = dedupState[T, K]{}
		}
		for state.emitted <= i {
			v := s.rule(state.src)
			state.src++
			k := key(v)
			if state.emitted > 0 && k == state.last {
				continue
			}
			state.last = k
			state.value = v
			state.emitted++
		}
		return state.value
	})
}

// Dedup drops consecutive duplicates.
func Dedup[T comparable](s Stream[T]) Stream[T] {
	return DedupBy(s, func(v T) T { return v })
}

// ChunkBy groups consecutive elements for which fn returns the same value.
// Element i is found by grouping longer and longer prefixes of s until
// i+2 groups exist, which makes a lookup quadratic in i. A lookup never
// returns if s stops producing new groups.
func ChunkBy[T any, K comparable](s Stream[T], fn func(T) K) Stream[[]T] {
	return derive(s, KindChunk, func(i int) []T {
		for n := i + 2; ; n++ {
			chunks, err := enum.ChunkBy(Take(s, n), fn)
			if err != nil {
				// n >= 2, the prefix is never empty
				panic(err)
			}
			if len(chunks) >= i+2 {
				return chunks[i]
			}
			log.Debugf("chunk stream: %d groups in %d elements, need %d", len(chunks), n, i+2)
		}
	})
}
