package skemata

import (
	"context"
)

// Codec pairs validation of an unknown input into A with encoding of A into
// the output representation O. Implementations hold no mutable state.
type Codec[A, O any] interface {
	// Name identifies the codec in failure paths and reports.
	Name() string
	// Is reports whether v already is a valid A, without conversion.
	Is(v any) bool
	// Validate interprets in as an A. p locates in relative to the decoded
	// root and is recorded in every failure produced at this level.
	Validate(ctx context.Context, in any, p Path) Validation[A]
	// Encode serializes a back to its output representation.
	Encode(a A) O
}

// Mixed is a codec with erased type parameters, used by containers that hold
// heterogeneous members.
type Mixed = Codec[any, any]

// Decode validates in against c starting from the root path.
func Decode[A, O any](ctx context.Context, c Codec[A, O], in any) Validation[A] {
	return c.Validate(ctx, in, RootPath(c.Name(), in))
}

// Parse is Decode bridged into Go's (value, error) convention.
func Parse[A, O any](ctx context.Context, c Codec[A, O], in any) (A, error) {
	return Unwrap(Decode(ctx, c, in))
}

// SafeParse decodes in, returning (zero, false) on validation failure.
func SafeParse[A, O any](ctx context.Context, c Codec[A, O], in any) (A, bool) {
	return Decode(ctx, c, in).Get()
}

// Encode is a convenience wrapper over Codec.Encode.
func Encode[A, O any](c Codec[A, O], a A) O { return c.Encode(a) }

// Is reports whether v already is a valid value of c.
func Is[A, O any](c Codec[A, O], v any) bool { return c.Is(v) }
