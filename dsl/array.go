package dsl

import (
	"context"
	"reflect"
	"strconv"

	"github.com/reoring/skemata"
)

// Array validates every element of a slice with elem. Element failures are
// accumulated in index order, each located under its index.
func Array[A, O any](elem skemata.Codec[A, O]) skemata.Codec[[]A, []O] {
	return &arrayCodec[A, O]{elem: elem, name: "Array<" + elem.Name() + ">"}
}

type arrayCodec[A, O any] struct {
	elem skemata.Codec[A, O]
	name string
}

func (a *arrayCodec[A, O]) Name() string { return a.name }

func (a *arrayCodec[A, O]) Is(v any) bool {
	xs, ok := v.([]A)
	if !ok {
		return false
	}
	for _, x := range xs {
		if !a.elem.Is(x) {
			return false
		}
	}
	return true
}

func (a *arrayCodec[A, O]) Validate(ctx context.Context, in any, p skemata.Path) skemata.Validation[[]A] {
	items, ok := asSlice(in)
	if !ok {
		return skemata.InvalidAt[[]A](in, p, skemata.CodeInvalidType, "")
	}
	out := make([]A, len(items))
	var fs skemata.Failures
	for i, item := range items {
		r := a.elem.Validate(ctx, item, p.Append(strconv.Itoa(i), a.elem.Name(), item))
		if !r.IsOk() {
			fs = append(fs, r.Err()...)
			continue
		}
		out[i] = r.Value()
	}
	if len(fs) > 0 {
		return skemata.Invalid[[]A](fs)
	}
	return skemata.Valid(out)
}

func (a *arrayCodec[A, O]) Encode(xs []A) []O {
	if xs == nil {
		return nil
	}
	out := make([]O, len(xs))
	for i, x := range xs {
		out[i] = a.elem.Encode(x)
	}
	return out
}

// Record validates every value of a map[string]any with value. Keys are
// visited in sorted order so failures are reported deterministically.
func Record[A, O any](value skemata.Codec[A, O]) skemata.Codec[map[string]A, map[string]O] {
	return &recordCodec[A, O]{value: value, name: "Record<string, " + value.Name() + ">"}
}

type recordCodec[A, O any] struct {
	value skemata.Codec[A, O]
	name  string
}

func (r *recordCodec[A, O]) Name() string { return r.name }

func (r *recordCodec[A, O]) Is(v any) bool {
	m, ok := v.(map[string]A)
	if !ok {
		return false
	}
	for _, x := range m {
		if !r.value.Is(x) {
			return false
		}
	}
	return true
}

func (r *recordCodec[A, O]) Validate(ctx context.Context, in any, p skemata.Path) skemata.Validation[map[string]A] {
	m, ok := in.(map[string]any)
	if !ok {
		return skemata.InvalidAt[map[string]A](in, p, skemata.CodeInvalidType, "")
	}
	out := make(map[string]A, len(m))
	var fs skemata.Failures
	for _, k := range sortedKeys(m) {
		v := m[k]
		res := r.value.Validate(ctx, v, p.Append(k, r.value.Name(), v))
		if !res.IsOk() {
			fs = append(fs, res.Err()...)
			continue
		}
		out[k] = res.Value()
	}
	if len(fs) > 0 {
		return skemata.Invalid[map[string]A](fs)
	}
	return skemata.Valid(out)
}

func (r *recordCodec[A, O]) Encode(m map[string]A) map[string]O {
	if m == nil {
		return nil
	}
	out := make(map[string]O, len(m))
	for k, v := range m {
		out[k] = r.value.Encode(v)
	}
	return out
}

// asSlice accepts []any directly and any other slice or array kind through
// reflection.
func asSlice(v any) ([]any, bool) {
	if xs, ok := v.([]any); ok {
		return xs, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
