package signing

import (
	"encoding/base64"
	"time"

	"github.com/google/uuid"
)

// TimestampFormat is the 14-digit yyyyMMddHHmmss layout the gateway expects.
// Requests stamped more than a day away from server time are rejected.
const TimestampFormat = "20060102150405"

// GenerateTimestamp formats now (in UTC) as a gateway timestamp.
func GenerateTimestamp(now time.Time) string {
	return now.UTC().Format(TimestampFormat)
}

// GenerateOrderID returns a fresh 22-character order id: a random 128-bit
// UUID encoded as unpadded URL-safe base64. Order ids must be unique per
// merchant across all sub-accounts; follow-on requests (settle, void,
// rebate) reuse the order id of the initial transaction instead.
//
// Panics if the entropy source fails; there is no safe fallback for a
// possibly non-unique identifier.
func GenerateOrderID() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}
