package dsl

import (
	"context"
	"strconv"
	"strings"

	"github.com/reoring/skemata"
)

// Union accepts the first member that validates in. When none does, the
// failures of every member are returned, each located under the member index.
// A union without members fails with a single union_no_match entry.
func Union(members ...skemata.Mixed) skemata.Mixed {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name()
	}
	return &unionCodec{members: members, name: "(" + strings.Join(names, " | ") + ")"}
}

type unionCodec struct {
	members []skemata.Mixed
	name    string
}

func (u *unionCodec) Name() string { return u.name }

func (u *unionCodec) Is(v any) bool {
	for _, m := range u.members {
		if m.Is(v) {
			return true
		}
	}
	return false
}

func (u *unionCodec) Validate(ctx context.Context, in any, p skemata.Path) skemata.Validation[any] {
	if len(u.members) == 0 {
		return skemata.InvalidAt[any](in, p, skemata.CodeUnionNoMatch, "")
	}
	var fs skemata.Failures
	for i, m := range u.members {
		r := m.Validate(ctx, in, p.Append(strconv.Itoa(i), m.Name(), in))
		if r.IsOk() {
			return r
		}
		fs = append(fs, r.Err()...)
	}
	return skemata.Invalid[any](fs)
}

// Encode delegates to the first member that recognizes a, and returns a as is
// otherwise.
func (u *unionCodec) Encode(a any) any {
	for _, m := range u.members {
		if m.Is(a) {
			return m.Encode(a)
		}
	}
	return a
}

// Nullable accepts nil in addition to whatever c accepts.
func Nullable[A, O any](c skemata.Codec[A, O]) skemata.Codec[*A, *O] {
	return &nullableCodec[A, O]{inner: c, name: "(" + c.Name() + " | null)"}
}

type nullableCodec[A, O any] struct {
	inner skemata.Codec[A, O]
	name  string
}

func (n *nullableCodec[A, O]) Name() string { return n.name }

func (n *nullableCodec[A, O]) Is(v any) bool {
	if v == nil {
		return true
	}
	pa, ok := v.(*A)
	return ok && (pa == nil || n.inner.Is(*pa))
}

func (n *nullableCodec[A, O]) Validate(ctx context.Context, in any, p skemata.Path) skemata.Validation[*A] {
	if in == nil {
		return skemata.Valid[*A](nil)
	}
	return skemata.Map(n.inner.Validate(ctx, in, p), func(a A) *A { return &a })
}

func (n *nullableCodec[A, O]) Encode(a *A) *O {
	if a == nil {
		return nil
	}
	o := n.inner.Encode(*a)
	return &o
}
