package service

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// newID returns a random UUIDv4 rendered as 32 lowercase hex characters.
func newID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// timePrecision is the finest timestamp resolution every store keeps.
const timePrecision = time.Millisecond

// now returns the current UTC time at timePrecision.
func now() time.Time {
	return time.Now().UTC().Truncate(timePrecision)
}
