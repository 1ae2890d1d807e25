package curry

import (
	"github.com/on-the-ground/curry_ive_go/memo"
)

// NewCached returns the curried form of target with the terminal
// target invocation memoized in a bounded table. The invocation
// protocol is identical to New; only the call that reaches the arity
// consults the table. On overflow the surplus application (the second
// hop) is never cached, since the intermediate callable may close
// over state the table cannot see.
//
// Cache keys follow memo.KeyOf: arguments must be comparable or
// implement fmt.Stringer, otherwise the call panics. Do not cache an
// impure target.
func NewCached(arity int, target Func, maxTableSize uint32) Curried {
	if arity < 0 {
		panic(InvalidArityError{Arity: arity})
	}
	if target == nil {
		panic(NotCallableError{GotType: "<nil>"})
	}
	table := memo.New[any](maxTableSize)
	cached := func(args ...any) any {
		keys := make([]memo.Key, len(args))
		for i, arg := range args {
			keys[i] = memo.KeyOf(arg)
		}
		v, ok := table.Load(keys)
		if !ok {
			v = target(args...)
			table.Store(keys, v)
		}
		return v
	}
	return newCurried(arity, cached, nil, nil)
}
