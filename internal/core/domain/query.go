package domain

import (
	"time"

	"github.com/cespare/xxhash/v2"
)

// PendingQuery is the transient context of one resolution request. It exists
// from the moment a request is accepted until the request completes or fails,
// and its ID is what supersession checks compare before committing results.
type PendingQuery struct {
	Raw       string
	Key       string
	ID        uint64
	StartedAt time.Time
}

// NewPendingQuery builds the pending context for a raw query string.
// The ID is a stable hash of the normalized key, so re-submissions of the
// same query carry the same identity.
func NewPendingQuery(raw string) PendingQuery {
	key := NormalizeKey(raw)
	return PendingQuery{
		Raw:       raw,
		Key:       key,
		ID:        xxhash.Sum64String(key),
		StartedAt: time.Now(),
	}
}
