package helper

// TypedValueOf asserts raw to the expected type T.
func TypedValueOf[T any](raw any) (T, bool) {
	res, ok := raw.(T)
	return res, ok
}

// TypedLookup adapts an untyped (any, bool) lookup into a typed one.
// ok is false when the lookup misses or the value is not a T.
func TypedLookup[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = TypedValueOf[T](raw)
	}
	return
}
