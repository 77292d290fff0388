package enum

import (
	"reflect"

	"github.com/samber/lo"
)

// Map applies fn to every element of s.
func Map[S ~[]T, T, R any](s S, fn func(T) R) []R {
	return lo.Map(s, func(item T, _ int) R {
		return fn(item)
	})
}

// Filter keeps the elements for which predicate returns true.
func Filter[S ~[]T, T any](s S, predicate func(T) bool) S {
	return lo.Filter(s, func(item T, _ int) bool {
		return predicate(item)
	})
}

// Reject drops the elements for which predicate returns true.
func Reject[S ~[]T, T any](s S, predicate func(T) bool) S {
	return lo.Reject(s, func(item T, _ int) bool {
		return predicate(item)
	})
}

// FlatMap applies fn to every element and concatenates the results.
func FlatMap[S ~[]T, T, R any](s S, fn func(T) []R) []R {
	return lo.FlatMap(s, func(item T, _ int) []R {
		return fn(item)
	})
}

// FlatMapAny zips lists together, calls fn with one element of each list
// and flattens the results one level. A slice or array result is spliced in
// element by element, any other result (strings included) is appended as is.
//
//	FlatMapAny(func(xs ...any) any { return []any{xs[0], -xs[0].(int)} }, []any{1, 2})
//	// [1 -1 2 -2]
func FlatMapAny(fn func(...any) any, lists ...[]any) []any {
	out := []any{}
	for _, tuple := range ZipN(lists...) {
		res := fn(tuple...)
		rv := reflect.ValueOf(res)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				out = append(out, rv.Index(i).Interface())
			}
		default:
			out = append(out, res)
		}
	}
	return out
}

// Flatten concatenates the slices of ss.
func Flatten[S ~[]T, T any](ss []S) S {
	return lo.Flatten(ss)
}

// Zip pairs the elements of a and b, stopping at the shorter one.
func Zip[A, B any](a []A, b []B) []lo.Tuple2[A, B] {
	n := min(len(a), len(b))
	return lo.Zip2(a[:n], b[:n])
}

// Unzip splits pairs back into two slices.
func Unzip[A, B any](pairs []lo.Tuple2[A, B]) ([]A, []B) {
	return lo.Unzip2(pairs)
}

// ZipN groups the i-th elements of every list into a tuple, stopping at the
// shortest list.
func ZipN(lists ...[]any) [][]any {
	if len(lists) == 0 {
		return [][]any{}
	}
	n := len(lists[0])
	for _, l := range lists[1:] {
		n = min(n, len(l))
	}

	out := make([][]any, n)
	for i := range out {
		tuple := make([]any, len(lists))
		for j, l := range lists {
			tuple[j] = l[i]
		}
		out[i] = tuple
	}
	return out
}

// UnzipN is the inverse of ZipN. All tuples must have the arity of the
// first one; the result is undefined otherwise.
func UnzipN(tuples [][]any) [][]any {
	if len(tuples) == 0 {
		return [][]any{}
	}
	out := make([][]any, len(tuples[0]))
	for i := range out {
		out[i] = make([]any, 0, len(tuples))
	}
	for _, tuple := range tuples {
		for i, v := range tuple {
			out[i] = append(out[i], v)
		}
	}
	return out
}

// Foldr folds s from the right: f(s[0], f(s[1], ... f(s[n-1], acc))).
//
//	Foldr([]int{1, ..., 10}, 0, func(x, y int) int { return x - y }) // -5
func Foldr[S ~[]T, T, A any](s S, acc A, f func(T, A) A) A {
	return lo.ReduceRight(s, func(agg A, item T, _ int) A {
		return f(item, agg)
	}, acc)
}

// Foldl walks s in reverse order, accumulating left to right:
// f(f(f(acc, s[n-1]), s[n-2]) ..., s[0]).
//
//	Foldl([]int{1, ..., 10}, 0, func(x, y int) int { return x - y }) // -55
func Foldl[S ~[]T, T, A any](s S, acc A, f func(A, T) A) A {
	return lo.ReduceRight(s, func(agg A, item T, _ int) A {
		return f(agg, item)
	}, acc)
}

// Scanr returns the accumulators computed by Foldr, in evaluation order.
// The last one equals Foldr(s, acc, f).
func Scanr[S ~[]T, T, A any](s S, acc A, f func(T, A) A) []A {
	out := make([]A, 0, len(s))
	Foldr(s, acc, func(item T, agg A) A {
		next := f(item, agg)
		out = append(out, next)
		return next
	})
	return out
}

// Scanl returns the accumulators computed by Foldl, in evaluation order.
// The last one equals Foldl(s, acc, f).
func Scanl[S ~[]T, T, A any](s S, acc A, f func(A, T) A) []A {
	out := make([]A, 0, len(s))
	Foldl(s, acc, func(agg A, item T) A {
		next := f(agg, item)
		out = append(out, next)
		return next
	})
	return out
}
