package ports

import "github.com/MdAbusufiyan/lab-buddy/internal/core/domain"

// IndexKind selects one of the derived lookup indices.
type IndexKind string

const (
	// IndexCAS maps lowercased CAS numbers to primary keys.
	IndexCAS IndexKind = "cas"
	// IndexIUPAC maps normalized IUPAC names to primary keys.
	IndexIUPAC IndexKind = "iupac"
	// IndexSMILES maps exact SMILES strings to primary keys.
	IndexSMILES IndexKind = "smiles"
)

// RecordStore is the persistent, integrity-verified cache of chemical records
// together with its derived multi-key index.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get retrieves a record by its primary key.
	Get(key string) (*domain.ChemicalRecord, bool)

	// Upsert inserts the record under its primary key if absent and reports
	// whether it was inserted. An existing record is never replaced.
	Upsert(rec *domain.ChemicalRecord) bool

	// Backfill fills only missing or sentinel fields of an existing record
	// and reports whether anything changed. Populated fields are never
	// overwritten.
	Backfill(key string, fill *domain.ChemicalRecord) (bool, error)

	// Resolve maps an alternate identifier to a primary key.
	Resolve(kind IndexKind, value string) (string, bool)

	// Keys returns all primary keys in deterministic (sorted) order.
	Keys() []string

	// Len reports the number of cached records.
	Len() int

	// Save persists the store and its detached signature. Failures are
	// reported but callers treat persistence as best-effort.
	Save() error
}
