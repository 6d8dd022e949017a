package codec

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/reoring/skemata"
	"github.com/reoring/skemata/dsl"
)

// NumberFromString parses decimal strings into float64.
func NumberFromString() skemata.Codec[float64, string] {
	return fromString("NumberFromString", func(s string) (float64, bool) {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil && !math.IsNaN(f)
	}, func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) })
}

// IntFromString parses base-10 integer strings into int64.
func IntFromString() skemata.Codec[int64, string] {
	return fromString("IntFromString", func(s string) (int64, bool) {
		n, err := strconv.ParseInt(s, 10, 64)
		return n, err == nil
	}, func(n int64) string { return strconv.FormatInt(n, 10) })
}

// BoolFromString accepts exactly "true" and "false".
func BoolFromString() skemata.Codec[bool, string] {
	return fromString("BooleanFromString", func(s string) (bool, bool) {
		switch s {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		return false, false
	}, strconv.FormatBool)
}

// NonEmptyString accepts strings with at least one byte.
func NonEmptyString() skemata.Codec[string, string] {
	return dsl.Refine(dsl.String(), func(s string) bool { return s != "" }, "NonEmptyString")
}

// fromString builds a codec that validates a string wire value and converts
// it with parse; a non-string input fails with invalid_type, an unparsable
// string with invalid_format.
func fromString[A any](name string, parse func(string) (A, bool), format func(A) string) skemata.Codec[A, string] {
	is := func(v any) bool {
		_, ok := v.(A)
		return ok
	}
	return skemata.New[A, string](name, is, func(ctx context.Context, in any, p skemata.Path) skemata.Validation[A] {
		return skemata.Chain(dsl.String().Validate(ctx, in, p), func(s string) skemata.Validation[A] {
			a, ok := parse(s)
			if !ok {
				return skemata.InvalidAt[A](in, p, skemata.CodeInvalidFormat, "")
			}
			return skemata.Valid(a)
		})
	}, format)
}

func asInt64(v any) (int64, bool) {
	r := dsl.Int().Validate(context.Background(), v, nil)
	return r.Get()
}
