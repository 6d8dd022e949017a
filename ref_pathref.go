package skemata

import (
	"strings"
)

// PathEntry is one step of the location descriptor threaded through nested
// Validate calls.
type PathEntry struct {
	Key    string // Property name or array index; empty at the root.
	Type   string // Name of the codec validating at this step.
	Actual any    // Raw value seen at this step.
}

// Path describes where a value sits relative to the decoded root.
type Path []PathEntry

// RootPath is the path supplied by Decode for the top-level input.
func RootPath(name string, in any) Path {
	return Path{{Key: "", Type: name, Actual: in}}
}

// Append returns a new Path with one more step. The receiver is never aliased,
// so sibling branches can extend the same parent safely.
func (p Path) Append(key, typ string, actual any) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, PathEntry{Key: key, Type: typ, Actual: actual})
}

// Pointer renders the keys as an RFC 6901 JSON Pointer.
func (p Path) Pointer() string {
	parts := make([]string, 0, len(p))
	for _, e := range p {
		if e.Key == "" {
			continue
		}
		// escape '~' -> '~0', '/' -> '~1' per RFC6901
		parts = append(parts, strings.ReplaceAll(strings.ReplaceAll(e.Key, "~", "~0"), "/", "~1"))
	}
	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}

// String renders the path as "key: Type" steps joined by '/'.
func (p Path) String() string {
	b := &strings.Builder{}
	for i, e := range p {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(e.Key)
		b.WriteString(": ")
		b.WriteString(e.Type)
	}
	return b.String()
}
