package codec_test

import (
	"context"
	"testing"
	"time"

	"github.com/reoring/skemata"
	"github.com/reoring/skemata/codec"
	g "github.com/reoring/skemata/dsl"
	"github.com/reoring/skemata/report"
)

func TestTimeRFC3339_DecodeEncode(t *testing.T) {
	ctx := context.Background()
	c := codec.TimeRFC3339()

	tm, err := skemata.Parse(ctx, c, "2025-01-02T03:04:05.120+09:00")
	if err != nil {
		t.Fatalf("decode err=%v", err)
	}
	want := time.Date(2025, 1, 1, 18, 4, 5, 120000000, time.UTC)
	if !tm.Equal(want) {
		t.Fatalf("got %v want %v", tm, want)
	}
	if s := c.Encode(tm); s != "2025-01-01T18:04:05.12Z" {
		t.Fatalf("canonical encode mismatch: %q", s)
	}
}

func TestTimeRFC3339_Failures(t *testing.T) {
	ctx := context.Background()
	c := codec.TimeRFC3339()

	fs := skemata.Decode(ctx, c, "yesterday").Err()
	if len(fs) != 1 || fs[0].Code != skemata.CodeInvalidFormat {
		t.Fatalf("unexpected failures: %v", fs)
	}
	fs = skemata.Decode(ctx, c, 42).Err()
	if len(fs) != 1 || fs[0].Code != skemata.CodeInvalidType {
		t.Fatalf("unexpected failures: %v", fs)
	}
}

func TestTimeRFC3339_WithMessageInsideObject(t *testing.T) {
	ctx := context.Background()
	event := g.Object(g.Props{
		"at": g.Field(g.WithMessage(codec.TimeRFC3339(), func(in any) string {
			return "at: expected an RFC3339 timestamp"
		})),
	})
	lines := report.Paths(skemata.Decode(ctx, event, map[string]any{"at": "soon"}))
	if len(lines) != 1 || lines[0] != "at: expected an RFC3339 timestamp" {
		t.Fatalf("unexpected report: %#v", lines)
	}
}

func TestTimeUnix(t *testing.T) {
	ctx := context.Background()
	c := codec.TimeUnix()
	tm, err := skemata.Parse(ctx, c, 1700000000)
	if err != nil || tm.Unix() != 1700000000 {
		t.Fatalf("unexpected tm=%v err=%v", tm, err)
	}
	if c.Encode(tm) != 1700000000 {
		t.Fatalf("unexpected encode")
	}
	if _, err := skemata.Parse(ctx, c, "1700000000"); err == nil {
		t.Fatalf("expected failure for string input")
	}
}
