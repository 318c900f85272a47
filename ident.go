package sx

import (
	"encoding/binary"
	"strconv"

	"github.com/google/uuid"
)

// DefaultPrefix is the prefix of generated class names.
const DefaultPrefix = "sx-"

const idFragmentLength = 8

// newID creates a class name from prefix and a random base-36 fragment.
// Collisions are not checked for.
func newID(prefix string) string {
	u := uuid.New()
	n := binary.BigEndian.Uint64(u[8:])
	frag := strconv.FormatUint(n, 36)
	if len(frag) > idFragmentLength {
		frag = frag[len(frag)-idFragmentLength:]
	}
	return prefix + frag
}
