package codec

import (
	json "github.com/goccy/go-json"

	"github.com/reoring/skemata"
)

// JSONFromString parses a string holding a JSON document into the generic
// Go representation (map[string]any, []any, float64, string, bool, nil).
// Encode marshals back to compact JSON; values that cannot be marshaled
// encode as "null".
func JSONFromString() skemata.Codec[any, string] {
	return fromString("JSONFromString", func(s string) (any, bool) {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return nil, false
		}
		return v, true
	}, func(v any) string {
		b, err := json.Marshal(v)
		if err != nil {
			return "null"
		}
		return string(b)
	})
}
