package dsl

import (
	"context"

	"github.com/reoring/skemata"
)

// WithValidate returns a clone of c whose validation is replaced by fn.
// Name, Is and Encode are delegated to c unchanged.
func WithValidate[A, O any](c skemata.Codec[A, O], fn skemata.ValidateFunc[A]) skemata.Codec[A, O] {
	return &wrapped[A, O]{inner: c, name: c.Name(), validate: fn}
}

// Named returns a clone of c reported under name.
func Named[A, O any](c skemata.Codec[A, O], name string) skemata.Codec[A, O] {
	return &wrapped[A, O]{inner: c, name: name, validate: c.Validate}
}

// MapOutput returns a clone of c whose Encode output is passed through fn.
// Validation is unchanged. The clone keeps c's name unless one is given.
func MapOutput[A, O, P any](c skemata.Codec[A, O], fn func(O) P, name ...string) skemata.Codec[A, P] {
	n := c.Name()
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	return skemata.New[A, P](n, c.Is, c.Validate, func(a A) P { return fn(c.Encode(a)) })
}

// wrapped shares c's Is and Encode and swaps the name and validation.
type wrapped[A, O any] struct {
	inner    skemata.Codec[A, O]
	name     string
	validate skemata.ValidateFunc[A]
}

func (w *wrapped[A, O]) Name() string  { return w.name }
func (w *wrapped[A, O]) Is(v any) bool { return w.inner.Is(v) }
func (w *wrapped[A, O]) Encode(a A) O  { return w.inner.Encode(a) }

func (w *wrapped[A, O]) Validate(ctx context.Context, in any, p skemata.Path) skemata.Validation[A] {
	return w.validate(ctx, in, p)
}
