package dsl

import (
	"context"

	"github.com/reoring/skemata"
)

// WithMessage returns a clone of c that reports message(in) for every failed
// validation of in.
//
// Successful validations are returned untouched. A failure, however many
// entries it carried, is replaced by exactly one entry whose Value and Actual
// are the input handed to this level and whose Context is the path supplied by
// the caller. message is only called on failure, with the raw input. Encode is
// delegated to c.
func WithMessage[A, O any](c skemata.Codec[A, O], message func(in any) string) skemata.Codec[A, O] {
	return WithValidate(c, func(ctx context.Context, in any, p skemata.Path) skemata.Validation[A] {
		return skemata.MapErr(c.Validate(ctx, in, p), func(skemata.Failures) skemata.Failures {
			return skemata.Failures{{
				Value:   in,
				Context: p,
				Message: message(in),
				Actual:  in,
				Code:    skemata.CodeCustom,
			}}
		})
	})
}
