package source

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/reoring/skemata"
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	key          string // last key read in an object
	index        int    // index of the current element in an array
	expectingKey bool
}

func (f *dupFrame) segment() string {
	if f.kind == kindArray {
		return strconv.Itoa(f.index)
	}
	return f.key
}

// valueDone advances the frame past one complete value.
func (f *dupFrame) valueDone() {
	if f.kind == kindObject {
		f.expectingKey = true
		return
	}
	f.index++
}

// DuplicateKeys scans a JSON document and returns a path for every object
// key that repeats within the same object, in document order. Paths are
// relative to root.
func DuplicateKeys(data []byte, root skemata.Path) ([]skemata.Path, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var stack []*dupFrame
	var dups []skemata.Path

	done := func() {
		if n := len(stack); n > 0 {
			stack[n-1].valueDone()
		}
	}
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, &dupFrame{kind: kindObject, keys: map[string]struct{}{}, expectingKey: true})
			case '[':
				stack = append(stack, &dupFrame{kind: kindArray})
			case '}', ']':
				if n := len(stack); n > 0 {
					stack = stack[:n-1]
				}
				done()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].kind == kindObject && stack[n-1].expectingKey {
				top := stack[n-1]
				if _, seen := top.keys[v]; seen {
					p := root
					for _, f := range stack[:n-1] {
						p = p.Append(f.segment(), "", nil)
					}
					dups = append(dups, p.Append(v, "", nil))
				}
				top.keys[v] = struct{}{}
				top.key = v
				top.expectingKey = false
				continue
			}
			done()
		default:
			done()
		}
	}
	if len(stack) > 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return dups, nil
}
