package dsl_test

import (
	"context"
	"testing"

	"github.com/reoring/skemata"
	g "github.com/reoring/skemata/dsl"
)

func benchmarkUser() skemata.Codec[map[string]any, map[string]any] {
	return g.Object(g.Props{
		"name": g.Field(g.String()),
		"tags": g.Field(g.Array(g.String())),
		"age":  g.Field(g.Int()),
	})
}

func BenchmarkWithMessage_Success(b *testing.B) {
	ctx := context.Background()
	c := g.WithMessage(benchmarkUser(), func(any) string { return "bad user" })
	in := map[string]any{"name": "Reo", "tags": []any{"a", "b", "c"}, "age": 30}
	b.ReportAllocs()
	for b.Loop() {
		if !skemata.Decode(ctx, c, in).IsOk() {
			b.Fatal("expected success")
		}
	}
}

func BenchmarkWithMessage_Failure(b *testing.B) {
	ctx := context.Background()
	plain := benchmarkUser()
	wrapped := g.WithMessage(plain, func(any) string { return "bad user" })
	in := map[string]any{"name": 1, "tags": []any{1, 2, 3}, "age": "x"}

	b.Run("plain", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			skemata.Decode(ctx, plain, in)
		}
	})
	b.Run("with_message", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			skemata.Decode(ctx, wrapped, in)
		}
	})
}
