package skemata

// FailureAt creates a single-entry Failures for input in at path p.
// Value and Actual both hold in.
func FailureAt(in any, p Path, code, msg string) Failures {
	return Failures{{Value: in, Context: p, Message: msg, Actual: in, Code: code}}
}

// InvalidAt is shorthand for Invalid[T](FailureAt(in, p, code, msg)).
func InvalidAt[T any](in any, p Path, code, msg string) Validation[T] {
	return Invalid[T](FailureAt(in, p, code, msg))
}
