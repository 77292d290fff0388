// Package fun defines the dynamic function model shared by the combinators
// of this module, and the Thunk: a partially applied call that waits for
// enough arguments before running.
//
// A Func takes its arguments as Args, positional and named. A Callable pairs
// a Func with its declared arity and, optionally, one declared type per
// parameter. Arity and types are always given explicitly; the typed adapters
// (F0 to F3) derive them from Go type parameters at compile time.
//
// Currying follows three rules, checked on every call of a Thunk:
//
//	bound + given == arity  → the function runs
//	bound + given <  arity  → a new Thunk holding all arguments is returned
//	bound + given >  arity  → *ArityError
//
// Example:
//
//	add := fun.F3("add3", func(a, b, c int) int { return a + b + c })
//	t1, _ := fun.New(add).Call(1)      // *fun.Thunk, 1 of 3 bound
//	t2, _ := t1.(*fun.Thunk).Call(2)   // *fun.Thunk, 2 of 3 bound
//	six, _ := t2.(*fun.Thunk).Call(3)  // 6
package fun
