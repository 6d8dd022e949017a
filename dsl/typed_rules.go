package dsl

import (
	"context"
	"sync"

	"github.com/reoring/skemata"
)

// Refine narrows c with pred. Values rejected by pred fail with the
// refinement code; pred only runs when c succeeds.
func Refine[A, O any](c skemata.Codec[A, O], pred func(A) bool, name string) skemata.Codec[A, O] {
	is := func(v any) bool {
		if !c.Is(v) {
			return false
		}
		a, ok := v.(A)
		return ok && pred(a)
	}
	return skemata.New[A, O](name, is, func(ctx context.Context, in any, p skemata.Path) skemata.Validation[A] {
		return skemata.Chain(c.Validate(ctx, in, p), func(a A) skemata.Validation[A] {
			if pred(a) {
				return skemata.Valid(a)
			}
			return skemata.InvalidAt[A](in, p, skemata.CodeRefinement, "")
		})
	}, c.Encode)
}

// Lazy defers building a codec until first use, which allows recursive
// definitions. fn runs at most once.
func Lazy[A, O any](name string, fn func() skemata.Codec[A, O]) skemata.Codec[A, O] {
	return &lazyCodec[A, O]{name: name, get: sync.OnceValue(fn)}
}

type lazyCodec[A, O any] struct {
	name string
	get  func() skemata.Codec[A, O]
}

func (l *lazyCodec[A, O]) Name() string  { return l.name }
func (l *lazyCodec[A, O]) Is(v any) bool { return l.get().Is(v) }
func (l *lazyCodec[A, O]) Encode(a A) O  { return l.get().Encode(a) }

func (l *lazyCodec[A, O]) Validate(ctx context.Context, in any, p skemata.Path) skemata.Validation[A] {
	return l.get().Validate(ctx, in, p)
}
