// Package domain contains core domain types for chemical record resolution.
package domain

import (
	"regexp"
	"strings"
)

// NotAvailable is the sentinel stored for optional fields that could not be
// found in the source document. It is displayed as-is and is never indexed.
const NotAvailable = "Not available"

// ChemicalRecord is the canonical unit of knowledge about one compound.
// The JSON field names form the persisted cache contract and must not change.
type ChemicalRecord struct {
	CID                 int64    `json:"cid"`
	Name                string   `json:"name"`
	CAS                 string   `json:"cas"`
	Formula             string   `json:"formula"`
	MolecularWeight     *float64 `json:"mw"`
	MolecularWeightUnit string   `json:"mw_u"`
	Density             *float64 `json:"dens"`
	DensityUnit         string   `json:"dens_u"`
	IUPACName           string   `json:"iupac"`
	SMILES              string   `json:"smiles"`
	Hazards             []string `json:"ghs"`
	ImageURL            string   `json:"img"`
	CachedAt            int64    `json:"ts"`
}

// Key returns the primary cache key for the record: the normalized common name.
func (r *ChemicalRecord) Key() string {
	return NormalizeKey(r.Name)
}

// HasDensity reports whether a density value was resolved.
func (r *ChemicalRecord) HasDensity() bool {
	return r.Density != nil
}

// fieldPresent reports whether an optional string field holds real data
// rather than the empty string or the not-available sentinel.
func fieldPresent(s string) bool {
	return s != "" && s != NotAvailable
}

// HasCAS reports whether a CAS number was resolved.
func (r *ChemicalRecord) HasCAS() bool { return fieldPresent(r.CAS) }

// HasIUPAC reports whether an IUPAC name was resolved.
func (r *ChemicalRecord) HasIUPAC() bool { return fieldPresent(r.IUPACName) }

// HasSMILES reports whether a SMILES string was resolved.
func (r *ChemicalRecord) HasSMILES() bool { return fieldPresent(r.SMILES) }

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeKey folds a chemical name into its cache key form: lowercase,
// leading/trailing whitespace trimmed, internal whitespace runs collapsed
// to single spaces. The function is idempotent.
func NormalizeKey(name string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(strings.ToLower(name)), " ")
}

// Compound is the result of the primary identity lookup: the upstream
// numeric identifier plus the properties carried on the compound document.
type Compound struct {
	CID     int64
	Formula string
}
