package stream

import (
	"fmt"
	"iter"
	"slices"

	"github.com/samber/mo"
)

// Rule computes the element at a non-negative index.
type Rule[T any] func(i int) T

// Kind names how a stream was derived.
type Kind string

const (
	KindRule   Kind = "rule"
	KindFinite Kind = "finite"
	KindMap    Kind = "map"
	KindCycle  Kind = "cycle"
	KindDedup  Kind = "dedup"
	KindChunk  Kind = "chunk"
)

type Stream[T any] struct {
	rule    Rule[T]
	kind    Kind
	lineage []Kind
}

// New wraps rule as a stream.
func New[T any](rule Rule[T]) Stream[T] {
	if rule == nil {
		panic("stream.New: nil rule")
	}
	return Stream[T]{rule: rule, kind: KindRule, lineage: []Kind{KindRule}}
}

func derive[T, P any](parent Stream[P], kind Kind, rule Rule[T]) Stream[T] {
	return Stream[T]{
		rule:    rule,
		kind:    kind,
		lineage: append(slices.Clip(parent.lineage), kind),
	}
}

// Kind reports how s was built.
func (s Stream[T]) Kind() Kind {
	return s.kind
}

// Lineage lists the kinds s was derived through, starting at its source.
func (s Stream[T]) Lineage() []Kind {
	return slices.Clone(s.lineage)
}

// Find computes the element at index i.
func Find[T any](s Stream[T], i int) (T, error) {
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("find %d: %w", i, ErrIndexOutOfRange)
	}
	return s.rule(i), nil
}

// Take computes the first n elements. A non-positive n yields an empty slice.
func Take[T any](s Stream[T], n int) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = s.rule(i)
	}
	return out
}

// All iterates s from index 0. The sequence is infinite: stop it with break.
func (s Stream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; ; i++ {
			if !yield(s.rule(i)) {
				return
			}
		}
	}
}

// Cursor starts a stateful iteration over s.
func (s Stream[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{stream: s}
}

// Pipe applies fn to s.
func Pipe[T, R any](s Stream[T], fn func(Stream[T]) R) R {
	return fn(s)
}

// FromFinite backs a stream by a copy of container. Indices past the end
// yield mo.None.
func FromFinite[S ~[]T, T any](container S) Stream[mo.Option[T]] {
	items := slices.Clone(container)
	return Stream[mo.Option[T]]{
		rule: func(i int) mo.Option[T] {
			if i < len(items) {
				return mo.Some(items[i])
			}
			return mo.None[T]()
		},
		kind:    KindFinite,
		lineage: []Kind{KindFinite},
	}
}

// Map applies fn to each element on lookup. Results are not memoized.
func Map[T, R any](s Stream[T], fn func(T) R) Stream[R] {
	return derive(s, KindMap, func(i int) R {
		return fn(s.rule(i))
	})
}

// Cycle repeats container forever.
//
//	s, _ := Cycle([]int{1, 2, 3}) // 1 2 3 1 2 3 1 ...
func Cycle[S ~[]T, T any](container S) (Stream[T], error) {
	if len(container) == 0 {
		return Stream[T]{}, fmt.Errorf("cycle: %w", ErrEmptyInput)
	}
	wrapped := FromFinite(container)
	n := len(container)
	return derive(wrapped, KindCycle, func(i int) T {
		return wrapped.rule(i % n).MustGet()
	}), nil
}

// Concat has no index rule when the first stream is infinite.
func Concat[T any](streams ...Stream[T]) (Stream[T], error) {
	return Stream[T]{}, fmt.Errorf("concat: %w", ErrNotSupported)
}

// Iterate is not supported yet.
// TODO: build element i from element i-1 once streams can cache a prefix.
func Iterate[T any](start T, fn func(T) T) (Stream[T], error) {
	return Stream[T]{}, fmt.Errorf("iterate: %w", ErrNotSupported)
}
