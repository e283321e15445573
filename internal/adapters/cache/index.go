package cache

import (
	"strings"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
)

// MultiIndex holds the three derived lookup maps: lowercased CAS, normalized
// IUPAC name, and exact SMILES, each pointing at a primary key. Indices are
// derived state, rebuilt from the store on load and updated on every write;
// they are never persisted. Sentinel values are never indexed. Callers hold
// the store lock; the index itself is not synchronized.
type MultiIndex struct {
	cas    map[string]string
	iupac  map[string]string
	smiles map[string]string
}

// NewMultiIndex creates an empty index.
func NewMultiIndex() *MultiIndex {
	m := &MultiIndex{}
	m.reset()
	return m
}

func (m *MultiIndex) reset() {
	m.cas = make(map[string]string)
	m.iupac = make(map[string]string)
	m.smiles = make(map[string]string)
}

// Rebuild repopulates all three maps from a full record scan.
func (m *MultiIndex) Rebuild(records map[string]*domain.ChemicalRecord) {
	m.reset()
	for key, rec := range records {
		m.Register(key, rec)
	}
}

// Register adds one record's derivable identifiers without a full rebuild.
func (m *MultiIndex) Register(key string, rec *domain.ChemicalRecord) {
	if rec.HasCAS() {
		m.cas[strings.ToLower(rec.CAS)] = key
	}
	if rec.HasIUPAC() {
		m.iupac[domain.NormalizeKey(rec.IUPACName)] = key
	}
	if rec.HasSMILES() {
		// SMILES strings are compared exactly; structurally distinct
		// strings may name the same molecule.
		m.smiles[rec.SMILES] = key
	}
}

// Resolve maps an identifier to a primary key. CAS and IUPAC lookups are
// case/whitespace normalized, SMILES lookups are exact.
func (m *MultiIndex) Resolve(kind ports.IndexKind, value string) (string, bool) {
	switch kind {
	case ports.IndexCAS:
		key, ok := m.cas[strings.ToLower(value)]
		return key, ok
	case ports.IndexIUPAC:
		key, ok := m.iupac[domain.NormalizeKey(value)]
		return key, ok
	case ports.IndexSMILES:
		key, ok := m.smiles[value]
		return key, ok
	}
	return "", false
}
