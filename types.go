package skemata

import (
	"context"
)

// ValidateFunc is the validation half of a codec.
type ValidateFunc[A any] func(ctx context.Context, in any, p Path) Validation[A]

// New builds a codec from its parts. A nil is falls back to a type assertion
// on A.
func New[A, O any](name string, is func(v any) bool, validate ValidateFunc[A], encode func(a A) O) Codec[A, O] {
	if is == nil {
		is = func(v any) bool {
			_, ok := v.(A)
			return ok
		}
	}
	return &funcCodec[A, O]{name: name, is: is, validate: validate, encode: encode}
}

type funcCodec[A, O any] struct {
	name     string
	is       func(v any) bool
	validate ValidateFunc[A]
	encode   func(a A) O
}

func (c *funcCodec[A, O]) Name() string  { return c.name }
func (c *funcCodec[A, O]) Is(v any) bool { return c.is(v) }
func (c *funcCodec[A, O]) Encode(a A) O  { return c.encode(a) }

func (c *funcCodec[A, O]) Validate(ctx context.Context, in any, p Path) Validation[A] {
	return c.validate(ctx, in, p)
}

// Erase returns a type-erased view of c. Validation passes through unchanged;
// Encode of a value that is not an A returns it as is.
func Erase[A, O any](c Codec[A, O]) Mixed {
	if m, ok := any(c).(Mixed); ok {
		return m
	}
	return erased[A, O]{inner: c}
}

type erased[A, O any] struct{ inner Codec[A, O] }

func (e erased[A, O]) Name() string  { return e.inner.Name() }
func (e erased[A, O]) Is(v any) bool { return e.inner.Is(v) }

func (e erased[A, O]) Validate(ctx context.Context, in any, p Path) Validation[any] {
	return Map(e.inner.Validate(ctx, in, p), func(a A) any { return a })
}

func (e erased[A, O]) Encode(a any) any {
	if v, ok := a.(A); ok {
		return e.inner.Encode(v)
	}
	return a
}
