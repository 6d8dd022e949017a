// Package skemata provides:
//
//   - A small, immutable Codec abstraction (Validate/Encode) over values of unknown shape
//   - A two-variant Result type and Validation[T] = Result[T, Failures]
//   - A failure model (value, path context, optional message, actual input)
//
// Design policy:
//   - Keep only public API in the root package; builders live under dsl/, concrete
//     conversions under codec/, rendering under report/, input decoding under source/.
//   - Codecs hold no mutable state and may be shared across goroutines.
//   - Failures are returned as values, never raised.
//
// Typical usage:
//
//	num := dsl.WithMessage(dsl.Number(), func(any) string { return "Invalid number" })
//	v := skemata.Decode(ctx, num, input)
//	lines := report.Paths(v)
package skemata
