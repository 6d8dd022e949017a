package dsl_test

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/reoring/skemata"
	g "github.com/reoring/skemata/dsl"
)

// TestPrimitives_Scalars covers success and failure for each scalar codec.
func TestPrimitives_Scalars(t *testing.T) {
	ctx := context.Background()

	if v, err := skemata.Parse(ctx, g.String(), "hello"); err != nil || v != "hello" {
		t.Fatalf("string parse ok expected, got v=%v err=%v", v, err)
	}
	if _, err := skemata.Parse(ctx, g.String(), 1); err == nil {
		t.Fatalf("expected invalid_type for non-string")
	}

	if v, err := skemata.Parse(ctx, g.Bool(), true); err != nil || v != true {
		t.Fatalf("bool parse ok expected, got v=%v err=%v", v, err)
	}
	if _, err := skemata.Parse(ctx, g.Bool(), "nope"); err == nil {
		t.Fatalf("expected invalid_type for non-bool")
	}

	if _, err := skemata.Parse(ctx, g.Nil(), nil); err != nil {
		t.Fatalf("nil expected ok, err=%v", err)
	}
	if _, err := skemata.Parse(ctx, g.Nil(), 0); err == nil {
		t.Fatalf("expected failure for non-nil")
	}
}

func TestPrimitives_NumberAcceptsNumericKinds(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		in   any
		want float64
	}{
		{1, 1},
		{int8(-3), -3},
		{uint16(7), 7},
		{float32(1.5), 1.5},
		{2.25, 2.25},
		{json.Number("4.5"), 4.5},
	}
	for _, tc := range cases {
		v, err := skemata.Parse(ctx, g.Number(), tc.in)
		if err != nil || v != tc.want {
			t.Fatalf("number(%#v): got %v err=%v", tc.in, v, err)
		}
	}
	for _, in := range []any{"1.0", true, nil, []any{1}} {
		if _, err := skemata.Parse(ctx, g.Number(), in); err == nil {
			t.Fatalf("expected failure for %#v", in)
		}
	}
}

func TestPrimitives_Int(t *testing.T) {
	ctx := context.Background()
	for _, in := range []any{3, int64(-9), uint8(4), 10.0, json.Number("12")} {
		if _, err := skemata.Parse(ctx, g.Int(), in); err != nil {
			t.Fatalf("int(%#v) expected ok, err=%v", in, err)
		}
	}
	for _, in := range []any{1.5, math.NaN(), math.Inf(1), uint64(math.MaxUint64), "3"} {
		if _, err := skemata.Parse(ctx, g.Int(), in); err == nil {
			t.Fatalf("expected failure for %#v", in)
		}
	}
}

func TestPrimitives_FailureShape(t *testing.T) {
	ctx := context.Background()
	v := skemata.Decode(ctx, g.Number(), "x")
	fs := v.Err()
	if len(fs) != 1 {
		t.Fatalf("expected one failure, got %v", fs)
	}
	f := fs[0]
	if f.Code != skemata.CodeInvalidType || f.Value != "x" || f.Actual != "x" || f.Message != "" {
		t.Fatalf("unexpected failure: %#v", f)
	}
	if f.Context.String() != ": number" || f.Context.Pointer() != "/" {
		t.Fatalf("unexpected context: %q %q", f.Context.String(), f.Context.Pointer())
	}
}

func TestPrimitives_Literal(t *testing.T) {
	ctx := context.Background()
	admin := g.Literal("admin")
	if admin.Name() != `"admin"` {
		t.Fatalf("unexpected name %q", admin.Name())
	}
	if _, err := skemata.Parse(ctx, admin, "admin"); err != nil {
		t.Fatalf("expected ok, err=%v", err)
	}
	if _, err := skemata.Parse(ctx, admin, "user"); err == nil {
		t.Fatalf("expected failure")
	}
	if g.Literal(3).Name() != "3" || !g.Literal(3).Is(3) || g.Literal(3).Is(4) {
		t.Fatalf("numeric literal mismatch")
	}
}
