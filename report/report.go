// Package report renders skemata failures into strings, issue records and
// JSON payloads.
package report

import (
	"fmt"
	"reflect"
	"runtime"

	json "github.com/goccy/go-json"

	"github.com/reoring/skemata"
)

// NoErrors is the single line Paths reports for a successful validation.
const NoErrors = "No errors!"

// Paths renders a validation result, one line per failure. A failure with a
// message renders as the message alone; otherwise the offending value and
// its path are described.
func Paths[A any](v skemata.Validation[A]) []string {
	if v.IsOk() {
		return []string{NoErrors}
	}
	return Messages(v.Err())
}

// Messages renders each failure in order.
func Messages(fs skemata.Failures) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = Message(f)
	}
	return out
}

// Message renders a single failure.
func Message(f skemata.Failure) string {
	if f.Message != "" {
		return f.Message
	}
	return fmt.Sprintf("Invalid value %s supplied to %s", Stringify(f.Value), f.Context.String())
}

// Stringify renders v as JSON, falling back to fmt for values JSON cannot
// represent. Functions render as their symbol name.
func Stringify(v any) string {
	if v != nil {
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Func {
			if !rv.IsNil() {
				if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
					return fn.Name()
				}
			}
			return "<function>"
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
