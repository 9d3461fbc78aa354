package usecase

import (
	"log"
	"strings"
	"time"
)

// isoLayout accepts RFC 3339 with optional fractional seconds. The "Z"
// suffix is rewritten to an explicit offset before parsing, matching
// the upstream contract.
const isoLayout = "2006-01-02T15:04:05.999999999-07:00"

// TimestampToUnix converts an ISO-8601 string to Unix seconds,
// truncating any fractional part. Parse failures fall back to the
// current time: one bad timestamp must not fail a whole listing.
func TimestampToUnix(iso string) int64 {
	normalized := iso
	if strings.HasSuffix(normalized, "Z") {
		normalized = strings.TrimSuffix(normalized, "Z") + "+00:00"
	}

	t, err := time.Parse(isoLayout, normalized)
	if err != nil {
		log.Printf("Error converting datetime %q: %v", iso, err)
		return time.Now().UTC().Unix()
	}
	return t.Unix()
}
