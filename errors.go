package skemata

import (
	"errors"
	"fmt"
	"strings"
)

// Failure codes.
const (
	CodeInvalidType   = "invalid_type"
	CodeInvalidFormat = "invalid_format"
	CodeRefinement    = "refinement"
	CodeUnionNoMatch  = "union_no_match"
	CodeParseError    = "parse_error"
	CodeDuplicateKey  = "duplicate_key"
	// CodeCustom marks entries whose message was supplied by the caller.
	CodeCustom = "custom"
)

// Failure represents a single validation entry.
type Failure struct {
	Value   any  // The offending (sub-)input.
	Context Path // Where the failure happened.
	// Message is optional. Reporters fall back to a generic description when
	// it is empty.
	Message string
	Actual  any    // The raw offending value, for reporting tools.
	Code    string // One of the codes listed above.
}

// Failures is an ordered list of validation entries that implements error.
type Failures []Failure

// Error summarizes the first few failures.
func (fs Failures) Error() string {
	if len(fs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(fs)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		f := fs[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", f.Code, f.Context.Pointer())
		if f.Message != "" {
			fmt.Fprintf(b, ": %s", f.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsFailures extracts Failures from an error using errors.As internally.
func AsFailures(err error) (Failures, bool) {
	if err == nil {
		return nil, false
	}
	var fs Failures
	if errors.As(err, &fs) {
		return fs, true
	}
	return nil, false
}
