// Package cache implements the signed on-disk record store and its derived
// lookup indices. The data document is a JSON mapping from normalized name to
// record; a detached signature file holds the hex SHA-256 digest of the exact
// data bytes. The store is only trusted after the digest is recomputed and
// matches; otherwise it starts empty.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync"

	"go.trai.ch/zerr"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
)

// Store implements ports.RecordStore with a single JSON document plus a
// detached signature. Mutations are serialized by an internal mutex; the
// resolution engine is the only writer.
type Store struct {
	dir string
	log ports.Logger

	mu      sync.RWMutex
	records map[string]*domain.ChemicalRecord
	index   *MultiIndex
}

// Open loads the store from dir, verifying the detached signature over the
// exact persisted bytes. Any read failure, parse failure, or signature
// mismatch yields an empty store with a warning log; the cache is an
// optimization, never a source of truth.
func Open(dir string, log ports.Logger) *Store {
	s := &Store{
		dir:     dir,
		log:     log,
		records: make(map[string]*domain.ChemicalRecord),
		index:   NewMultiIndex(),
	}

	if err := s.load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn(fmt.Sprintf("cache discarded: %v", err))
		}
		s.records = make(map[string]*domain.ChemicalRecord)
	}
	s.index.Rebuild(s.records)
	return s
}

func (s *Store) load() error {
	data, err := os.ReadFile(domain.CacheDataPath(s.dir))
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	sig, err := os.ReadFile(domain.CacheSigPath(s.dir))
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheIntegrity.Error())
	}

	sum := sha256.Sum256(data)
	if hex.EncodeToString(sum[:]) != string(sig) {
		return zerr.With(zerr.Wrap(domain.ErrCacheIntegrity, ""), "path", domain.CacheDataPath(s.dir))
	}

	if err := json.Unmarshal(data, &s.records); err != nil {
		return zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}
	return nil
}

// Get retrieves a record by its primary key.
func (s *Store) Get(key string) (*domain.ChemicalRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[key]
	return rec, ok
}

// Upsert inserts the record under its primary key if absent. An existing
// record is never replaced; later discoveries go through Backfill.
func (s *Store) Upsert(rec *domain.ChemicalRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := rec.Key()
	if _, exists := s.records[key]; exists {
		return false
	}
	s.records[key] = rec
	s.index.Register(key, rec)
	return true
}

// Backfill fills only missing or sentinel fields of the record under key
// from fill, reporting whether anything changed. Populated fields are never
// overwritten.
func (s *Store) Backfill(key string, fill *domain.ChemicalRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok {
		return false, zerr.With(zerr.Wrap(domain.ErrRecordNotCached, ""), "key", key)
	}

	changed := false
	if !rec.HasCAS() && fill.HasCAS() {
		rec.CAS = fill.CAS
		changed = true
	}
	if !rec.HasIUPAC() && fill.HasIUPAC() {
		rec.IUPACName = fill.IUPACName
		changed = true
	}
	if !rec.HasSMILES() && fill.HasSMILES() {
		rec.SMILES = fill.SMILES
		changed = true
	}
	if !rec.HasDensity() && fill.HasDensity() {
		rec.Density = fill.Density
		rec.DensityUnit = fill.DensityUnit
		changed = true
	}
	if rec.MolecularWeight == nil && fill.MolecularWeight != nil {
		rec.MolecularWeight = fill.MolecularWeight
		rec.MolecularWeightUnit = fill.MolecularWeightUnit
		changed = true
	}
	if len(rec.Hazards) == 0 && len(fill.Hazards) > 0 {
		rec.Hazards = fill.Hazards
		changed = true
	}
	if rec.ImageURL == "" && fill.ImageURL != "" {
		rec.ImageURL = fill.ImageURL
		changed = true
	}

	if changed {
		s.index.Register(key, rec)
	}
	return changed, nil
}

// Resolve maps an alternate identifier to a primary key via the indices.
func (s *Store) Resolve(kind ports.IndexKind, value string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.index.Resolve(kind, value)
}

// Keys returns all primary keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.records))
	for key := range s.records {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of cached records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

// Save persists the data document atomically (temp file + rename), then the
// signature. Writing data first means a torn write manifests as a signature
// mismatch on the next load and reads as "no cache".
func (s *Store) Save() error {
	s.mu.RLock()
	data, err := json.Marshal(s.records)
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	dataPath := domain.CacheDataPath(s.dir)
	tmp, err := os.CreateTemp(s.dir, domain.CacheFileName+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := os.Rename(tmpPath, dataPath); err != nil {
		os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	sum := sha256.Sum256(data)
	sig := []byte(hex.EncodeToString(sum[:]))
	if err := os.WriteFile(domain.CacheSigPath(s.dir), sig, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}

// Reload re-reads and re-verifies the persisted documents, replacing the
// in-memory state. Used when an external writer touches the cache files.
// On failure the previous state is kept.
func (s *Store) Reload() error {
	fresh := make(map[string]*domain.ChemicalRecord)

	s.mu.Lock()
	old := s.records
	s.records = fresh
	err := s.load()
	if err != nil {
		s.records = old
	}
	s.index.Rebuild(s.records)
	s.mu.Unlock()

	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Warn(fmt.Sprintf("cache reload discarded: %v", err))
		return err
	}
	return nil
}

// Verify recomputes the signature over the persisted data bytes and reports
// whether it matches the detached signature file.
func (s *Store) Verify() error {
	data, err := os.ReadFile(domain.CacheDataPath(s.dir))
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}
	sig, err := os.ReadFile(domain.CacheSigPath(s.dir))
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheIntegrity.Error())
	}
	sum := sha256.Sum256(data)
	if hex.EncodeToString(sum[:]) != string(sig) {
		return zerr.With(zerr.Wrap(domain.ErrCacheIntegrity, ""), "path", domain.CacheDataPath(s.dir))
	}
	return nil
}

// Clear removes both persisted documents and resets the in-memory state.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.records = make(map[string]*domain.ChemicalRecord)
	s.index.Rebuild(s.records)
	s.mu.Unlock()

	var errs []error
	for _, path := range []string{domain.CacheDataPath(s.dir), domain.CacheSigPath(s.dir)} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return zerr.Wrap(errors.Join(errs...), domain.ErrCacheWriteFailed.Error())
	}
	return nil
}

// Dir returns the directory holding the persisted documents.
func (s *Store) Dir() string {
	return s.dir
}
