// Package source turns raw bytes in a wire format into the generic Go values
// codecs validate (map[string]any, []any, string, bool, numbers, nil).
package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/skemata"
)

// Format names a wire format.
type Format int

const (
	JSON Format = iota
	YAML
	MsgPack
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case MsgPack:
		return "msgpack"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ErrEmptyInput is returned when there are no bytes to decode.
var ErrEmptyInput = errors.New("source: empty input")

// ParseFormat maps a format name or media type to a Format.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	switch s {
	case "json", "application/json":
		return JSON, nil
	case "yaml", "yml", "application/yaml", "application/x-yaml", "text/yaml":
		return YAML, nil
	case "msgpack", "application/msgpack", "application/x-msgpack", "application/vnd.msgpack":
		return MsgPack, nil
	}
	return 0, fmt.Errorf("source: unknown format %q", s)
}

// Unmarshal decodes data in the given format. Maps are normalized to
// map[string]any at every depth.
func Unmarshal(f Format, data []byte) (any, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	switch f {
	case JSON:
		return unmarshalJSON(data)
	case YAML:
		return unmarshalYAML(data)
	case MsgPack:
		return unmarshalMsgPack(data)
	}
	return nil, fmt.Errorf("source: unsupported format %s", f)
}

// Options configures DecodeWith.
type Options struct {
	Format Format
	// RejectDuplicateKeys fails JSON documents that repeat a key within one
	// object. Other formats ignore it.
	RejectDuplicateKeys bool
}

// Decode unmarshals data and validates the result against c. An unmarshal
// error becomes a single parse_error failure at the root path.
func Decode[A, O any](ctx context.Context, c skemata.Codec[A, O], f Format, data []byte) skemata.Validation[A] {
	return DecodeWith(ctx, c, data, Options{Format: f})
}

// DecodeWith is Decode with options. Duplicate keys are reported as one
// duplicate_key failure per repeated key, before any validation runs.
func DecodeWith[A, O any](ctx context.Context, c skemata.Codec[A, O], data []byte, opt Options) skemata.Validation[A] {
	root := skemata.RootPath(c.Name(), nil)
	v, err := Unmarshal(opt.Format, data)
	if err != nil {
		return skemata.InvalidAt[A](nil, root, skemata.CodeParseError, err.Error())
	}
	if opt.RejectDuplicateKeys && opt.Format == JSON {
		dups, err := DuplicateKeys(data, root)
		if err != nil {
			return skemata.InvalidAt[A](nil, root, skemata.CodeParseError, err.Error())
		}
		if len(dups) > 0 {
			fs := make(skemata.Failures, len(dups))
			for i, p := range dups {
				key := p[len(p)-1].Key
				fs[i] = skemata.Failure{Value: key, Context: p, Actual: key, Code: skemata.CodeDuplicateKey}
			}
			return skemata.Invalid[A](fs)
		}
	}
	return skemata.Decode(ctx, c, v)
}

// normalize converts decoder-specific maps into map[string]any recursively.
// Non-string keys are rendered with fmt.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			out[ks] = normalize(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalize(t[i])
		}
		return arr
	default:
		return v
	}
}
