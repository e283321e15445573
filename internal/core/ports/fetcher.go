// Package ports defines the interfaces between the core and its adapters.
package ports

import (
	"context"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
)

// RecordFetcher performs the remote chemical database calls. The core depends
// only on these shapes, never on a specific transport or endpoint.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type RecordFetcher interface {
	// LookupByName resolves a chemical name to its compound identity.
	// This is the only fetch whose failure is fatal to a resolution.
	LookupByName(ctx context.Context, name string) (*domain.Compound, error)

	// Properties fetches the named computed properties for a compound.
	Properties(ctx context.Context, cid int64, properties []string) (map[string]string, error)

	// Synonyms fetches the synonym list for a compound.
	Synonyms(ctx context.Context, cid int64) ([]string, error)

	// FullRecord fetches the nested property document consumed by the extractor.
	FullRecord(ctx context.Context, cid int64) (*domain.RecordDocument, error)

	// StructureImage fetches the 2D structure image bytes for a compound.
	StructureImage(ctx context.Context, cid int64) ([]byte, error)

	// StructureImageURL returns the canonical structure image URL without fetching it.
	StructureImageURL(cid int64) string

	// Autocomplete fetches name completions for a prefix, capped upstream.
	Autocomplete(ctx context.Context, prefix string) ([]string, error)
}

// Probe reports whether the remote database looks reachable. Probe failures
// are reported as offline, never as errors.
type Probe interface {
	Online(ctx context.Context) bool
}
