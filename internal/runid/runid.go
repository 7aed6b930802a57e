// Package runid generates time-sortable identifiers for optimisation runs.
//
// Ids are ULIDs: a millisecond timestamp followed by entropy. Two runs
// started in the same millisecond, for example by a sweep, still get ids
// that sort in the order they were issued.
package runid

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrOutOfRange is returned by At for times a ULID cannot encode.
var ErrOutOfRange = errors.New("time outside ULID range")

// earliest and latest bound the 48-bit millisecond timestamp of a ULID.
var (
	earliest = time.UnixMilli(0)
	latest   = ulid.Time(ulid.MaxTime())
)

var (
	mu      sync.Mutex
	entropy io.Reader
)

func init() {
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	entropy = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a run id stamped with the current time.
func New() string {
	id, err := At(time.Now())
	if err != nil {
		// The wall clock is inside the ULID range until year 10889; an error
		// here means the monotonic entropy overflowed within one millisecond.
		panic(err)
	}
	return id
}

// At returns a run id stamped with t. Times before the Unix epoch or past
// the 48-bit millisecond range yield ErrOutOfRange.
func At(t time.Time) (string, error) {
	if t.Before(earliest) || t.After(latest) {
		return "", fmt.Errorf("%w: %s", ErrOutOfRange, t.UTC().Format(time.RFC3339))
	}

	mu.Lock()
	defer mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return "", fmt.Errorf("new run id: %w", err)
	}
	return id.String(), nil
}

// Time returns the timestamp encoded in a run id.
func Time(id string) (time.Time, error) {
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse run id %q: %w", id, err)
	}
	return ulid.Time(parsed.Time()), nil
}
