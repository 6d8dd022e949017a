package report

import (
	json "github.com/goccy/go-json"

	"github.com/reoring/skemata"
	"github.com/reoring/skemata/i18n"
)

// Issue is a flattened failure suited for API responses.
type Issue struct {
	Path    string `json:"path"` // JSON Pointer (for example: /items/2/price).
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Issues flattens failures in order. Empty messages are filled from the
// current i18n translator, naming the expected codec.
func Issues(fs skemata.Failures) []Issue {
	out := make([]Issue, len(fs))
	for i, f := range fs {
		msg := f.Message
		if msg == "" {
			var data map[string]string
			if n := len(f.Context); n > 0 {
				data = map[string]string{"expected": f.Context[n-1].Type}
			}
			msg = i18n.T(f.Code, data)
		}
		out[i] = Issue{Path: f.Context.Pointer(), Code: f.Code, Message: msg, Value: f.Value}
	}
	return out
}

// Payload shapes failures for JSON responses.
type Payload struct {
	Issues []Issue `json:"issues"`
}

// JSON renders {"issues":[...]}.
func JSON(fs skemata.Failures) ([]byte, error) {
	return json.Marshal(Payload{Issues: Issues(fs)})
}
