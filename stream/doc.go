// Package stream provides lazy, index addressed, possibly infinite
// sequences.
//
// A Stream is a rule mapping an index to a value. Nothing is computed
// until an index is looked up, and nothing is cached: looking up the same
// index twice runs the rule twice.
//
//	s, _ := stream.Cycle([]int{1, 2, 3})
//	v, _ := stream.Find(s, 5) // 3
//
// Derived streams (Map, DedupBy, ChunkBy) close over the rule of the
// stream they were derived from. Streams are values and may be shared,
// except for dedup streams, which carry scan state between lookups and
// must stay on one goroutine.
package stream
