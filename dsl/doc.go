// Package dsl provides codec builders for skemata.
//
// Overview
//   - Primitives: String(), Number(), Int(), Bool(), Unknown(), Nil(), Literal(v).
//   - Containers: Array(elem), Record(value), Object(props), Partial(props), Union(members...),
//     Nullable(c).
//   - Refinement and recursion: Refine(c, pred, name), Lazy(name, fn).
//   - Wrappers: WithValidate(c, fn), WithMessage(c, fn), MapOutput(c, fn), Named(c, name).
//
// File layout (roles)
//   - primitives.go: scalar codecs.
//   - array.go: Array and Record.
//   - object_core.go: Object/Partial over map[string]any and the Props/Field helpers.
//   - union.go: Union and Nullable.
//   - typed_rules.go: Refine and Lazy.
//   - codec_wrap.go: WithValidate, Named, MapOutput.
//   - with_message.go: WithMessage.
//
// # Failure model
//
// Containers accumulate failures from every member in input order and extend
// the Path with the member key, so reporters can render "key: Type" steps or a
// JSON Pointer. Scalars leave Message empty; reporters derive a default from
// Code. WithMessage collapses whatever the wrapped codec produced into one
// entry carrying the caller's message:
//
//	age := dsl.WithMessage(dsl.Int(), func(in any) string {
//	    return fmt.Sprintf("age must be a whole number, got %v", in)
//	})
//	user := dsl.Object(dsl.Props{
//	    "name": dsl.Field(dsl.String()),
//	    "age":  dsl.Field(age),
//	})
//	v := skemata.Decode(ctx, user, map[string]any{"name": "Reo", "age": "x"})
//	// report.Paths(v) == []string{"age must be a whole number, got x"}
package dsl
