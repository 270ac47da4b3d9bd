package list

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDSource hands out item ids. Implementations need not be safe for
// concurrent use; the controller is single-writer.
type IDSource func() string

// ULIDSource returns an IDSource producing lexically increasing ULIDs,
// even for ids minted within the same millisecond.
func ULIDSource() IDSource {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulidSource(time.Now, entropy)
}

func ulidSource(now func() time.Time, entropy io.Reader) IDSource {
	return func() string {
		return ulid.MustNew(ulid.Timestamp(now()), entropy).String()
	}
}
