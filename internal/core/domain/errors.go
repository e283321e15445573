package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidQuery is returned when a resolution is requested with an empty query.
	ErrInvalidQuery = zerr.New("empty query")

	// ErrSearchInFlight is returned when a resolution is requested while another is running.
	ErrSearchInFlight = zerr.New("a search is already in progress")

	// ErrCooldownActive is returned when a resolution is requested too soon after the previous one.
	ErrCooldownActive = zerr.New("please wait before searching again")

	// ErrRemoteUnreachable is returned when the remote database cannot be reached
	// and no cached record matches the query.
	ErrRemoteUnreachable = zerr.New("remote database unreachable and no cached record found")

	// ErrCompoundNotFound is returned when the primary identity lookup fails.
	ErrCompoundNotFound = zerr.New("compound not found")

	// ErrCacheIntegrity is returned when the persisted cache fails its signature check.
	// It never escapes the cache boundary: the store recovers by starting empty.
	ErrCacheIntegrity = zerr.New("cache integrity check failed")

	// ErrCacheReadFailed is returned when the persisted cache cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache")

	// ErrCacheWriteFailed is returned when the persisted cache cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache")

	// ErrRecordNotCached is returned when a backfill targets a key with no cache entry.
	ErrRecordNotCached = zerr.New("record not found in cache")

	// ErrFetchFailed is returned when a remote fetch fails.
	ErrFetchFailed = zerr.New("remote fetch failed")

	// ErrFetchParseFailed is returned when a remote response cannot be decoded.
	ErrFetchParseFailed = zerr.New("failed to parse remote response")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrTaskSlotBusy is returned when a background task is submitted while one is active.
	ErrTaskSlotBusy = zerr.New("a background task is already running")
)
