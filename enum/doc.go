// Package enum provides eager operations over finite slices.
//
// Every operation returns a new slice and never mutates its input.
// Operations that only select or reorder elements (Filter, Reject, Dedup,
// Rotate, Flip, Take, ChunkBy, ...) return the concrete slice type of their
// input:
//
//	type Scores []int
//	var top Scores = enum.Filter(Scores{3, 9, 7}, func(s int) bool { return s > 5 })
//
// Operations that compute new elements (Map, FlatMap, the folds and scans)
// return plain slices of the result type, even when it equals the input's
// element type.
//
// Inputs must be finite. Use package stream for lazy, possibly infinite
// sequences.
package enum
