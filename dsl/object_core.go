package dsl

import (
	"context"
	"slices"
	"strings"

	"github.com/reoring/skemata"
)

// Props maps property names to their codecs.
type Props map[string]skemata.Mixed

// Field erases a codec's type parameters so it can be placed in Props.
func Field[A, O any](c skemata.Codec[A, O]) skemata.Mixed { return skemata.Erase(c) }

// Object validates a map[string]any against props. Every prop is validated;
// a missing key is validated as nil. Keys not named in props are passed
// through unchanged.
func Object(props Props) skemata.Codec[map[string]any, map[string]any] {
	return &objectCodec{props: props, keys: sortedKeys(props), name: propsName(props)}
}

// Partial is Object where absent keys are skipped. Present keys, nil values
// included, are validated.
func Partial(props Props) skemata.Codec[map[string]any, map[string]any] {
	return &objectCodec{props: props, keys: sortedKeys(props), name: "Partial<" + propsName(props) + ">", partial: true}
}

type objectCodec struct {
	props   Props
	keys    []string
	name    string
	partial bool
}

func (o *objectCodec) Name() string { return o.name }

func (o *objectCodec) Is(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, k := range o.keys {
		x, present := m[k]
		if !present && o.partial {
			continue
		}
		if !o.props[k].Is(x) {
			return false
		}
	}
	return true
}

func (o *objectCodec) Validate(ctx context.Context, in any, p skemata.Path) skemata.Validation[map[string]any] {
	m, ok := in.(map[string]any)
	if !ok {
		return skemata.InvalidAt[map[string]any](in, p, skemata.CodeInvalidType, "")
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	var fs skemata.Failures
	for _, k := range o.keys {
		v, present := m[k]
		if !present && o.partial {
			continue
		}
		c := o.props[k]
		r := c.Validate(ctx, v, p.Append(k, c.Name(), v))
		if !r.IsOk() {
			fs = append(fs, r.Err()...)
			continue
		}
		if present {
			out[k] = r.Value()
		}
	}
	if len(fs) > 0 {
		return skemata.Invalid[map[string]any](fs)
	}
	return skemata.Valid(out)
}

func (o *objectCodec) Encode(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if c, ok := o.props[k]; ok {
			out[k] = c.Encode(v)
			continue
		}
		out[k] = v
	}
	return out
}

// propsName renders "{ a: string, b: number }".
func propsName(props Props) string {
	keys := sortedKeys(props)
	if len(keys) == 0 {
		return "{}"
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + props[k].Name()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
