package curry

// Typed curried chains for common arities. Each CurryInO1 turns an
// n-argument function into a chain of single-argument functions; the
// Uncurry family inverts the transformation. These carry full type
// information through the chain, so no any-boxing or assertions occur.

func CurryI2O1[I1, I2, O1 any](fn func(I1, I2) O1) func(I1) func(I2) O1 {
	return func(i1 I1) func(I2) O1 {
		return func(i2 I2) O1 {
			return fn(i1, i2)
		}
	}
}

func CurryI3O1[I1, I2, I3, O1 any](fn func(I1, I2, I3) O1) func(I1) func(I2) func(I3) O1 {
	return func(i1 I1) func(I2) func(I3) O1 {
		return func(i2 I2) func(I3) O1 {
			return func(i3 I3) O1 {
				return fn(i1, i2, i3)
			}
		}
	}
}

func CurryI4O1[I1, I2, I3, I4, O1 any](fn func(I1, I2, I3, I4) O1) func(I1) func(I2) func(I3) func(I4) O1 {
	return func(i1 I1) func(I2) func(I3) func(I4) O1 {
		return func(i2 I2) func(I3) func(I4) O1 {
			return func(i3 I3) func(I4) O1 {
				return func(i4 I4) O1 {
					return fn(i1, i2, i3, i4)
				}
			}
		}
	}
}

func CurryI2O2[I1, I2, O1, O2 any](fn func(I1, I2) (O1, O2)) func(I1) func(I2) (O1, O2) {
	return func(i1 I1) func(I2) (O1, O2) {
		return func(i2 I2) (O1, O2) {
			return fn(i1, i2)
		}
	}
}

func CurryI3O2[I1, I2, I3, O1, O2 any](fn func(I1, I2, I3) (O1, O2)) func(I1) func(I2) func(I3) (O1, O2) {
	return func(i1 I1) func(I2) func(I3) (O1, O2) {
		return func(i2 I2) func(I3) (O1, O2) {
			return func(i3 I3) (O1, O2) {
				return fn(i1, i2, i3)
			}
		}
	}
}

func UncurryI2O1[I1, I2, O1 any](fn func(I1) func(I2) O1) func(I1, I2) O1 {
	return func(i1 I1, i2 I2) O1 {
		return fn(i1)(i2)
	}
}

func UncurryI3O1[I1, I2, I3, O1 any](fn func(I1) func(I2) func(I3) O1) func(I1, I2, I3) O1 {
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return fn(i1)(i2)(i3)
	}
}

func UncurryI4O1[I1, I2, I3, I4, O1 any](fn func(I1) func(I2) func(I3) func(I4) O1) func(I1, I2, I3, I4) O1 {
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return fn(i1)(i2)(i3)(i4)
	}
}

// The Lift family adapts typed functions to the dynamic Func shape
// expected by New. Arguments are recovered by type assertion, so a
// lifted function applied to mismatched argument types panics.

func LiftI1O1[I1, O1 any](fn func(I1) O1) Func {
	return func(args ...any) any {
		return fn(args[0].(I1))
	}
}

func LiftI2O1[I1, I2, O1 any](fn func(I1, I2) O1) Func {
	return func(args ...any) any {
		return fn(args[0].(I1), args[1].(I2))
	}
}

func LiftI3O1[I1, I2, I3, O1 any](fn func(I1, I2, I3) O1) Func {
	return func(args ...any) any {
		return fn(args[0].(I1), args[1].(I2), args[2].(I3))
	}
}

func LiftI4O1[I1, I2, I3, I4, O1 any](fn func(I1, I2, I3, I4) O1) Func {
	return func(args ...any) any {
		return fn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
	}
}
