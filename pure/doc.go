// Package pure holds the memo table behind the module's memoizers.
//
// Memoization is only sound for functions that are referentially
// transparent: same arguments, same result, no side effects. Using it on a
// function that reads the clock or does I/O silently freezes the first
// answer.
//
// Table is a trie keyed by the argument tuple, optionally bounded, and
// evicts one entry (arbitrary or least recently used) before a new tuple
// would overflow it. Arguments that are not comparable are keyed by their
// String method when they have one, and by a hash of their dynamic types
// and contents otherwise.
package pure
