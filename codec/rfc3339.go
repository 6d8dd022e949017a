package codec

import (
	"context"
	"time"

	"github.com/reoring/skemata"
)

// TimeRFC3339 returns a codec that converts between RFC3339 strings and
// time.Time. Encoding is canonical UTC RFC3339Nano.
func TimeRFC3339() skemata.Codec[time.Time, string] {
	return skemata.New[time.Time, string]("DateFromISOString", isTime, func(_ context.Context, in any, p skemata.Path) skemata.Validation[time.Time] {
		s, ok := in.(string)
		if !ok {
			return skemata.InvalidAt[time.Time](in, p, skemata.CodeInvalidType, "")
		}
		t, err := parseRFC3339(s)
		if err != nil {
			return skemata.InvalidAt[time.Time](in, p, skemata.CodeInvalidFormat, "")
		}
		return skemata.Valid(t)
	}, formatRFC3339Canonical)
}

// TimeUnix returns a codec that converts between Unix seconds and time.Time.
func TimeUnix() skemata.Codec[time.Time, int64] {
	return skemata.New[time.Time, int64]("DateFromUnixTime", isTime, func(_ context.Context, in any, p skemata.Path) skemata.Validation[time.Time] {
		n, ok := asInt64(in)
		if !ok {
			return skemata.InvalidAt[time.Time](in, p, skemata.CodeInvalidType, "")
		}
		return skemata.Valid(time.Unix(n, 0).UTC())
	}, func(t time.Time) int64 { return t.Unix() })
}

func isTime(v any) bool {
	_, ok := v.(time.Time)
	return ok
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
