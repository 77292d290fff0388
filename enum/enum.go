package enum

import (
	"fmt"
	"iter"
	"slices"

	"github.com/samber/lo"
)

// ChunkBy splits s into maximal runs of consecutive elements for which fn
// returns the same value. Order is preserved.
//
//	ChunkBy([]int{0, 1, 2, -1, -2}, func(x int) bool { return x > 0 })
//	// [[0] [1 2] [-1 -2]]
//
// An empty input has no first element to seed the first run and fails
// with ErrEmptyInput.
func ChunkBy[S ~[]T, T any, K comparable](s S, fn func(T) K) ([]S, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("chunk by: %w", ErrEmptyInput)
	}

	chunks := []S{S{s[0]}}
	last := fn(s[0])
	for _, x := range s[1:] {
		k := fn(x)
		if k != last {
			chunks = append(chunks, S{})
			last = k
		}
		chunks[len(chunks)-1] = append(chunks[len(chunks)-1], x)
	}
	return chunks, nil
}

// DedupBy keeps the first element of s for each distinct value of fn.
//
//	DedupBy([]int{1, 2, 3, 4}, func(x int) int { return x % 2 }) // [1 2]
func DedupBy[S ~[]T, T any, K comparable](s S, fn func(T) K) S {
	return lo.UniqBy(s, fn)
}

// Dedup removes duplicates, keeping first occurrences in their original order.
func Dedup[S ~[]T, T comparable](s S) S {
	return lo.Uniq(s)
}

// Rotate moves the last shift elements of s to the front. A negative shift
// rotates the other way. shift is taken modulo len(s).
//
//	Rotate([]int{1, 2, 3, 4}, 1)  // [4 1 2 3]
//	Rotate([]int{1, 2, 3, 4}, -1) // [2 3 4 1]
func Rotate[S ~[]T, T any](s S, shift int) (S, error) {
	n := len(s)
	if n == 0 {
		if shift != 0 {
			return nil, fmt.Errorf("rotate by %d: %w", shift, ErrEmptyInput)
		}
		return S{}, nil
	}

	k := ((shift % n) + n) % n
	out := make(S, 0, n)
	out = append(out, s[n-k:]...)
	return append(out, s[:n-k]...), nil
}

// Find returns the element at index by walking seq, so it works with any
// finite sequence and not only with slices.
func Find[T any](seq iter.Seq[T], index int) (T, error) {
	var zero T
	if index < 0 {
		return zero, fmt.Errorf("find %d: %w", index, ErrIndexOutOfRange)
	}

	i := 0
	for v := range seq {
		if i == index {
			return v, nil
		}
		i++
	}
	return zero, fmt.Errorf("find %d in %d elements: %w", index, i, ErrIndexOutOfRange)
}

// Flip swaps the elements at indices i and j.
//
//	Flip([]int{1, 2, 3, 4}, 1, 2) // [1 3 2 4]
func Flip[S ~[]T, T any](s S, i, j int) (S, error) {
	if i > j {
		i, j = j, i
	}
	if i < 0 || j >= len(s) {
		return nil, fmt.Errorf("flip %d and %d in %d elements: %w", i, j, len(s), ErrIndexOutOfRange)
	}

	out := slices.Clone(s)
	out[i], out[j] = out[j], out[i]
	return out, nil
}

// FlipNext swaps the element at i with its successor.
func FlipNext[S ~[]T, T any](s S, i int) (S, error) {
	return Flip(s, i, i+1)
}

// Take returns the first n elements of s, or all of them when s is shorter.
func Take[S ~[]T, T any](s S, n int) S {
	return slices.Clone(lo.Slice(s, 0, n))
}

// Pipe applies fn to s. It reads left to right in call chains.
func Pipe[S, R any](s S, fn func(S) R) R {
	return fn(s)
}
