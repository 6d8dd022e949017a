package skemata

// Result is a tagged union holding either a success value of type T or a
// failure of type E. The zero Result is a success holding the zero T.
type Result[T, E any] struct {
	value  T
	err    E
	failed bool
}

// Ok builds the success variant.
func Ok[T, E any](v T) Result[T, E] { return Result[T, E]{value: v} }

// Fail builds the failure variant.
func Fail[T, E any](e E) Result[T, E] { return Result[T, E]{err: e, failed: true} }

// IsOk reports whether r is the success variant.
func (r Result[T, E]) IsOk() bool { return !r.failed }

// Value returns the success value, or the zero T for a failure.
func (r Result[T, E]) Value() T { return r.value }

// Err returns the failure, or the zero E for a success.
func (r Result[T, E]) Err() E { return r.err }

// Get returns the success value and whether r is a success.
func (r Result[T, E]) Get() (T, bool) { return r.value, !r.failed }

// Map transforms the success value and leaves failures untouched.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.failed {
		return Fail[U](r.err)
	}
	return Ok[U, E](fn(r.value))
}

// MapErr transforms the failure and returns successes as they are.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if !r.failed {
		return Ok[T, F](r.value)
	}
	return Fail[T](fn(r.err))
}

// Chain feeds the success value into fn; failures short-circuit.
func Chain[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.failed {
		return Fail[U](r.err)
	}
	return fn(r.value)
}

// Fold collapses r into a single value.
func Fold[T, E, R any](r Result[T, E], onErr func(E) R, onOk func(T) R) R {
	if r.failed {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// Validation is the result of validating an input against a codec.
type Validation[T any] = Result[T, Failures]

// Valid builds a successful Validation.
func Valid[T any](v T) Validation[T] { return Ok[T, Failures](v) }

// Invalid builds a failed Validation.
func Invalid[T any](fs Failures) Validation[T] { return Fail[T](fs) }

// Unwrap bridges a Validation into Go's (value, error) convention. The error
// is a Failures on failure and nil otherwise.
func Unwrap[T any](v Validation[T]) (T, error) {
	if v.failed {
		var zero T
		return zero, v.err
	}
	return v.value, nil
}
