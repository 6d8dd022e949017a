package dsl

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/reoring/skemata"
)

// String accepts Go strings.
func String() skemata.Codec[string, string] { return stringCodec }

// Number accepts every Go numeric kind and json.Number, producing float64.
// Numeric strings are rejected; see codec.NumberFromString.
func Number() skemata.Codec[float64, float64] { return numberCodec }

// Int accepts integral numbers, producing int64.
func Int() skemata.Codec[int64, int64] { return intCodec }

// Bool accepts Go bools.
func Bool() skemata.Codec[bool, bool] { return boolCodec }

// Unknown accepts any input unchanged.
func Unknown() skemata.Mixed { return unknownCodec }

// Nil accepts only nil.
func Nil() skemata.Mixed { return nilCodec }

var (
	stringCodec = skemata.New[string, string]("string", nil, func(_ context.Context, in any, p skemata.Path) skemata.Validation[string] {
		if s, ok := in.(string); ok {
			return skemata.Valid(s)
		}
		return skemata.InvalidAt[string](in, p, skemata.CodeInvalidType, "")
	}, identity[string])

	numberCodec = skemata.New[float64, float64]("number", isFloat64, func(_ context.Context, in any, p skemata.Path) skemata.Validation[float64] {
		if f, ok := toFloat64(in); ok {
			return skemata.Valid(f)
		}
		return skemata.InvalidAt[float64](in, p, skemata.CodeInvalidType, "")
	}, identity[float64])

	intCodec = skemata.New[int64, int64]("Int", nil, func(_ context.Context, in any, p skemata.Path) skemata.Validation[int64] {
		if n, ok := toInt64(in); ok {
			return skemata.Valid(n)
		}
		return skemata.InvalidAt[int64](in, p, skemata.CodeInvalidType, "")
	}, identity[int64])

	boolCodec = skemata.New[bool, bool]("boolean", nil, func(_ context.Context, in any, p skemata.Path) skemata.Validation[bool] {
		if b, ok := in.(bool); ok {
			return skemata.Valid(b)
		}
		return skemata.InvalidAt[bool](in, p, skemata.CodeInvalidType, "")
	}, identity[bool])

	unknownCodec = skemata.New[any, any]("unknown", func(any) bool { return true }, func(_ context.Context, in any, _ skemata.Path) skemata.Validation[any] {
		return skemata.Valid(in)
	}, identity[any])

	nilCodec = skemata.New[any, any]("null", func(v any) bool { return v == nil }, func(_ context.Context, in any, p skemata.Path) skemata.Validation[any] {
		if in == nil {
			return skemata.Valid[any](nil)
		}
		return skemata.InvalidAt[any](in, p, skemata.CodeInvalidType, "")
	}, identity[any])
)

// Literal accepts only values equal to v.
func Literal[T comparable](v T) skemata.Codec[T, T] {
	name := fmt.Sprint(v)
	if s, ok := any(v).(string); ok {
		name = strconv.Quote(s)
	}
	return skemata.New[T, T](name, func(x any) bool {
		t, ok := x.(T)
		return ok && t == v
	}, func(_ context.Context, in any, p skemata.Path) skemata.Validation[T] {
		if t, ok := in.(T); ok && t == v {
			return skemata.Valid(t)
		}
		return skemata.InvalidAt[T](in, p, skemata.CodeInvalidType, "")
	}, identity[T])
}

func identity[T any](v T) T { return v }

func isFloat64(v any) bool {
	_, ok := v.(float64)
	return ok
}

// toFloat64 widens any Go numeric kind. Booleans and strings are rejected.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// toInt64 accepts integers that fit in int64 and floats with no fraction.
func toInt64(v any) (int64, bool) {
	if num, ok := v.(json.Number); ok {
		if n, err := num.Int64(); err == nil {
			return n, true
		}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	f, ok := toFloat64(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
