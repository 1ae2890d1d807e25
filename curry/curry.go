package curry

import (
	"reflect"
	"strconv"
)

// Func is the dynamic shape of a target callable: an ordered argument
// sequence in, a single value out. Use the Lift family to adapt typed
// functions to this shape.
type Func func(args ...any) any

// Curried is a partial-application continuation over a fixed arity and
// a target Func. Calling it with fewer arguments than remain returns a
// new Curried; reaching the arity invokes the target; exceeding it
// invokes the target with the first arity arguments and applies the
// surplus to the target's result (one level of unrolling, see apply).
//
// A Curried value is immutable: every call builds a fresh argument
// sequence, so the same continuation can be applied repeatedly with
// different arguments, each call independent of the others.
type Curried func(args ...any) any

// InvalidArityError reports a negative arity passed to a constructor.
type InvalidArityError struct{ Arity int }

func (e InvalidArityError) Error() string {
	return "curry: invalid arity " + strconv.Itoa(e.Arity)
}

// NotCallableError reports an overflow application against a value
// that is not callable.
type NotCallableError struct{ GotType string }

func (e NotCallableError) Error() string {
	return "curry: value of type " + e.GotType + " is not callable"
}

// New returns the curried form of target with an empty accumulator.
//
// New validates eagerly: a negative arity panics with
// InvalidArityError and a nil target panics with NotCallableError.
// Failures raised by target itself (or, on overflow, by its result)
// propagate to the caller unchanged.
func New(arity int, target Func) Curried {
	if arity < 0 {
		panic(InvalidArityError{Arity: arity})
	}
	if target == nil {
		panic(NotCallableError{GotType: "<nil>"})
	}
	return newCurried(arity, target, nil, nil)
}

// applyHook observes one application of a continuation.
// transition is "suspend", "invoke" or "unroll".
type applyHook func(transition string, accumulated, supplied int)

func newCurried(arity int, target Func, acc []any, hook applyHook) Curried {
	return func(args ...any) any {
		all := make([]any, 0, len(acc)+len(args))
		all = append(all, acc...)
		all = append(all, args...)

		switch total := len(all); {
		case total < arity:
			if hook != nil {
				hook("suspend", len(acc), len(args))
			}
			return newCurried(arity, target, all, hook)
		case total == arity:
			if hook != nil {
				hook("invoke", len(acc), len(args))
			}
			return target(all...)
		default:
			if hook != nil {
				hook("unroll", len(acc), len(args))
			}
			return apply(target(all[:arity]...), all[arity:])
		}
	}
}

// apply invokes an intermediate value produced by an overflowed target
// call with the surplus arguments. Unrolling goes exactly one level
// deep: v's own result is returned as-is, never re-applied.
//
// Known callable shapes dispatch directly; any other func kind goes
// through reflection. Everything else panics with NotCallableError.
func apply(v any, rest []any) any {
	switch f := v.(type) {
	case Curried:
		return f(rest...)
	case Func:
		return f(rest...)
	case func(args ...any) any:
		return f(rest...)
	}
	return applyReflect(v, rest)
}

func applyReflect(v any, rest []any) any {
	if v == nil {
		panic(NotCallableError{GotType: "<nil>"})
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func {
		panic(NotCallableError{GotType: reflect.TypeOf(v).String()})
	}
	rt := rv.Type()
	paramType := func(i int) reflect.Type {
		if rt.IsVariadic() && i >= rt.NumIn()-1 {
			return rt.In(rt.NumIn() - 1).Elem()
		}
		return rt.In(i)
	}
	in := make([]reflect.Value, len(rest))
	for i, arg := range rest {
		if arg == nil {
			// untyped nil needs the parameter's own type
			in[i] = reflect.Zero(paramType(i))
			continue
		}
		in[i] = reflect.ValueOf(arg)
	}
	out := rv.Call(in)
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		res := make([]any, len(out))
		for i, o := range out {
			res[i] = o.Interface()
		}
		return res
	}
}
