// Package curry provides generic currying for Go functions.
//
// Currying is not just a way to pre-bind arguments.
// Currying is a tool that *forces the developer to ask*:
//
//	→ "Which arguments does this function really need up front?"
//	→ "Can the rest be supplied later, by someone else?"
//
// The centerpiece is New, which turns an N-argument callable into a
// chain of partial-argument callables. Arguments accumulate across
// calls; once the declared arity is reached the target runs. Supplying
// more arguments than the arity in one call unrolls exactly one level:
// the target runs with the first arity arguments and the surplus is
// applied to its result.
//
// Features:
//   - New: dynamic currying over variadic any-shaped callables.
//   - CurryI2O1 to CurryI4O1 (and O2 variants): typed, generic
//     curried chains for common arities, plus Uncurry inverses.
//   - LiftI1O1 to LiftI4O1: adapt typed functions to the dynamic shape.
//   - NewCached: memoized terminal invocation with a bounded table.
//   - NewTraced: structured per-application logging via zap.
//
// Continuations are immutable values: each application builds a fresh
// argument sequence, so a partially-applied function can be reused
// from any number of call sites without interference.
//
// WARNING: unrolling goes one level deep only. If an overflowed call
// produces another N-argument function, curry it yourself before
// applying further surplus arguments.
package curry
