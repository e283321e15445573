// Package resolve orchestrates chemical record resolution: entry guards,
// cache lookup through the derived indices, the offline fallback, and the
// online fetch path with per-field degradation.
package resolve

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
	"github.com/MdAbusufiyan/lab-buddy/internal/engine/extract"
)

// Result is a served resolution: the canonical record plus presentation
// extras that are never persisted.
type Result struct {
	Record     *domain.ChemicalRecord
	Pictograms []domain.Pictogram
	Image      []byte
	FromCache  bool
}

// Engine resolves raw queries into chemical records. It is the single writer
// of the store; commits are serialized by its mutex.
type Engine struct {
	store   ports.RecordStore
	fetcher ports.RecordFetcher
	probe   ports.Probe
	log     ports.Logger
	tracer  ports.Tracer

	cooldown time.Duration

	mu            sync.Mutex
	inFlight      bool
	lastServedKey string
	lastServed    *Result
	lastCompleted time.Time
}

// NewEngine creates a resolution engine.
func NewEngine(
	store ports.RecordStore,
	fetcher ports.RecordFetcher,
	probe ports.Probe,
	log ports.Logger,
	tracer ports.Tracer,
	cooldown time.Duration,
) *Engine {
	return &Engine{
		store:    store,
		fetcher:  fetcher,
		probe:    probe,
		log:      log,
		tracer:   tracer,
		cooldown: cooldown,
	}
}

// Resolve answers a raw query from cache or the remote database.
//
// Guards run in a fixed order: an empty query is rejected, an in-flight
// resolution rejects new requests, a repeat of the last served query is
// re-served without I/O or cooldown, and a request inside the cooldown
// window is rejected as retryable.
func (e *Engine) Resolve(ctx context.Context, raw string) (*Result, error) {
	key := domain.NormalizeKey(raw)
	if key == "" {
		return nil, domain.ErrInvalidQuery
	}

	e.mu.Lock()
	if e.inFlight {
		e.mu.Unlock()
		return nil, domain.ErrSearchInFlight
	}
	if key == e.lastServedKey && e.lastServed != nil {
		served := e.lastServed
		e.mu.Unlock()
		e.log.Info("same compound already loaded")
		return served, nil
	}
	if !e.lastCompleted.IsZero() && time.Since(e.lastCompleted) < e.cooldown {
		e.mu.Unlock()
		return nil, domain.ErrCooldownActive
	}
	e.inFlight = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.inFlight = false
		e.lastCompleted = time.Now()
		e.mu.Unlock()
	}()

	ctx, span := e.tracer.Start(ctx, "resolve")
	defer span.End()
	span.SetAttribute("query", key)

	online := e.probe.Online(ctx)
	span.SetAttribute("online", online)

	if cacheKey, ok := e.lookupCached(raw, key); ok && !online {
		return e.serveCached(ctx, key, cacheKey, span), nil
	}

	if !online {
		err := zerr.With(zerr.Wrap(domain.ErrRemoteUnreachable, ""), "query", key)
		span.RecordError(err)
		return nil, err
	}

	result, err := e.fetchRecord(ctx, raw)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	e.commit(key, result)
	return result, nil
}

// lookupCached walks the lookup chain: primary key, CAS index on the
// lowercased raw query, IUPAC index on the normalized key, SMILES index on
// the raw query (exact).
func (e *Engine) lookupCached(raw, key string) (string, bool) {
	if _, ok := e.store.Get(key); ok {
		return key, true
	}
	if cacheKey, ok := e.store.Resolve(ports.IndexCAS, strings.ToLower(strings.TrimSpace(raw))); ok {
		return cacheKey, true
	}
	if cacheKey, ok := e.store.Resolve(ports.IndexIUPAC, key); ok {
		return cacheKey, true
	}
	if cacheKey, ok := e.store.Resolve(ports.IndexSMILES, strings.TrimSpace(raw)); ok {
		return cacheKey, true
	}
	return "", false
}

// serveCached serves a cached record offline, re-fetching only the structure
// image best-effort.
func (e *Engine) serveCached(ctx context.Context, queryKey, cacheKey string, span ports.Span) *Result {
	rec, _ := e.store.Get(cacheKey)
	result := &Result{Record: rec, FromCache: true}

	if rec.CID != 0 {
		if image, err := e.fetcher.StructureImage(ctx, rec.CID); err == nil {
			result.Image = image
		}
	}

	span.SetAttribute("cache_hit", true)
	e.log.Info("loaded from local cache")

	e.mu.Lock()
	e.lastServedKey = queryKey
	e.lastServed = result
	e.mu.Unlock()
	return result
}

// fetchRecord runs the online path: the fatal identity lookup, then the
// independent sub-fetches. Each sub-fetch failure degrades its own field.
func (e *Engine) fetchRecord(ctx context.Context, raw string) (*Result, error) {
	query := strings.TrimSpace(raw)

	compound, err := e.fetcher.LookupByName(ctx, strings.ToLower(query))
	if err != nil {
		return nil, err
	}
	e.log.Info(fmt.Sprintf("compound found (cid %d)", compound.CID))

	var (
		weight     *float64
		weightUnit string
		cas        = domain.NotAvailable
		doc        *domain.RecordDocument
		image      []byte
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		props, err := e.fetcher.Properties(gctx, compound.CID, []string{"MolecularWeight"})
		if err != nil {
			e.log.Warn(fmt.Sprintf("molecular weight unavailable: %v", err))
			return nil
		}
		if mw, err := strconv.ParseFloat(props["MolecularWeight"], 64); err == nil {
			weight = &mw
			weightUnit = "g/mol"
		}
		return nil
	})
	g.Go(func() error {
		synonyms, err := e.fetcher.Synonyms(gctx, compound.CID)
		if err != nil {
			e.log.Warn(fmt.Sprintf("synonyms unavailable: %v", err))
			return nil
		}
		cas = domain.FindCASNumber(synonyms)
		return nil
	})
	g.Go(func() error {
		fetched, err := e.fetcher.FullRecord(gctx, compound.CID)
		if err != nil {
			e.log.Warn(fmt.Sprintf("property record unavailable: %v", err))
			return nil
		}
		doc = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := e.fetcher.StructureImage(gctx, compound.CID)
		if err != nil {
			return nil
		}
		image = fetched
		return nil
	})
	// Sub-fetch goroutines absorb their own failures.
	_ = g.Wait()

	rec := &domain.ChemicalRecord{
		CID:                 compound.CID,
		Name:                query,
		CAS:                 cas,
		Formula:             compound.Formula,
		MolecularWeight:     weight,
		MolecularWeightUnit: weightUnit,
		IUPACName:           domain.NotAvailable,
		SMILES:              domain.NotAvailable,
		ImageURL:            e.fetcher.StructureImageURL(compound.CID),
		CachedAt:            time.Now().Unix(),
	}

	var pictograms []domain.Pictogram
	if doc != nil {
		if doc.Title != "" {
			rec.Name = doc.Title
		}
		rec.IUPACName = extract.IUPACName(doc.Sections)
		rec.SMILES = extract.SMILES(doc.Sections)
		if value, unit, ok := extract.Density(doc.Sections); ok {
			rec.Density = &value
			rec.DensityUnit = unit
		}
		pictograms, rec.Hazards = extract.GHS(doc.Sections)
	}

	if e.store.Upsert(rec) {
		if err := e.store.Save(); err != nil {
			e.log.Warn(fmt.Sprintf("failed to save cache: %v", err))
		} else {
			e.log.Info("cached locally")
		}
	}

	return &Result{Record: rec, Pictograms: pictograms, Image: image}, nil
}

func (e *Engine) commit(queryKey string, result *Result) {
	e.mu.Lock()
	e.lastServedKey = queryKey
	e.lastServed = result
	e.mu.Unlock()
}

// SilentRefresh backfills missing fields of an existing cache entry from the
// remote database. It runs in the background after a cached serve; every
// failure is absorbed.
func (e *Engine) SilentRefresh(ctx context.Context, key string) error {
	rec, ok := e.store.Get(key)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrRecordNotCached, ""), "key", key)
	}
	if rec.CID == 0 {
		return nil
	}
	if !e.probe.Online(ctx) {
		return nil
	}

	fill := &domain.ChemicalRecord{}
	needsDoc := !rec.HasIUPAC() || !rec.HasSMILES() || !rec.HasDensity() || len(rec.Hazards) == 0

	if needsDoc {
		doc, err := e.fetcher.FullRecord(ctx, rec.CID)
		if err != nil {
			return nil
		}
		fill.IUPACName = extract.IUPACName(doc.Sections)
		fill.SMILES = extract.SMILES(doc.Sections)
		if value, unit, ok := extract.Density(doc.Sections); ok {
			fill.Density = &value
			fill.DensityUnit = unit
		}
		_, fill.Hazards = extract.GHS(doc.Sections)
	}

	if !rec.HasCAS() {
		if synonyms, err := e.fetcher.Synonyms(ctx, rec.CID); err == nil {
			fill.CAS = domain.FindCASNumber(synonyms)
		}
	}

	changed, err := e.store.Backfill(key, fill)
	if err != nil || !changed {
		return err
	}
	if err := e.store.Save(); err != nil {
		e.log.Warn(fmt.Sprintf("failed to save cache: %v", err))
	}
	return nil
}
