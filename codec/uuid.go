package codec

import (
	"github.com/google/uuid"

	"github.com/reoring/skemata"
)

// UUID parses RFC 4122 strings (any of the forms uuid.Parse accepts) and
// encodes the canonical lower-case hyphenated form.
func UUID() skemata.Codec[uuid.UUID, string] {
	return fromString("UUID", func(s string) (uuid.UUID, bool) {
		u, err := uuid.Parse(s)
		return u, err == nil
	}, uuid.UUID.String)
}
