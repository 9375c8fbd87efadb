package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tienda/internal/catalog"
	"tienda/internal/observability"
	"tienda/internal/vendorapi"
)

// ErrRunning is returned when a run is refused because another
// invocation holds the lock.
var ErrRunning = errors.New("catalog sync already running")

// Fetcher is the vendor API surface the pipeline needs.
type Fetcher interface {
	FetchBySourceCode(ctx context.Context, sourceCode string) ([]vendorapi.Item, error)
}

// Store is the catalog persistence contract. FindBySKU returns nil
// (no error) when the SKU has never been synced.
type Store interface {
	FindBySKU(ctx context.Context, sku string) (*catalog.Product, error)
	Create(ctx context.Context, p *catalog.Product) error
	UpdatePrice(ctx context.Context, sku string, price decimal.Decimal) error
}

// RunRecorder persists the audit row for a finished run. Optional.
type RunRecorder interface {
	RecordRun(ctx context.Context, run RunRecord) error
}

// Summary is what a run reports back to its trigger.
type Summary struct {
	Created       int      `json:"created"`
	Updated       int      `json:"updated"`
	UniqueSKUs    int      `json:"uniqueSkus"`
	FailedSKUs    []string `json:"failedSkus,omitempty"`
	FailedSources []string `json:"failedSources,omitempty"`
}

// RunRecord is the audit-log entry for one invocation.
type RunRecord struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Summary    Summary
}

// Pipeline wires the whole sync: fan-out fetch per source code, join,
// classify, dedupe, then reconcile sequentially against the store.
type Pipeline struct {
	Config  *catalog.Config
	Fetcher Fetcher
	Store   Store
	Lock    RunLock
	Runs    RunRecorder
	Log     *zap.Logger
}

type fetchJob struct {
	category   catalog.Category
	sourceCode string
}

type fetchResult struct {
	items []vendorapi.Item
	err   error
}

// Run executes one full sync. It refuses to start while another run
// holds the lock, and always runs to completion once started; there
// is no partial-progress reporting.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	ok, err := p.Lock.TryLock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	if !ok {
		return nil, ErrRunning
	}
	defer p.Lock.Unlock(ctx)

	started := time.Now().UTC()
	summary := &Summary{}

	// Build the job list in declared category order. Dedup keeps the
	// first occurrence of a SKU, so this order must be stable.
	var jobs []fetchJob
	for _, cat := range catalog.Categories() {
		for _, code := range p.Config.SourceCodes[cat] {
			jobs = append(jobs, fetchJob{category: cat, sourceCode: code})
		}
	}

	// Fan out one request per source code and join before any
	// downstream work. A failed source degrades to zero items; the
	// run itself keeps going.
	results := make([]fetchResult, len(jobs))
	var g errgroup.Group
	for i, j := range jobs {
		g.Go(func() error {
			items, err := p.Fetcher.FetchBySourceCode(ctx, j.sourceCode)
			results[i] = fetchResult{items: items, err: err}
			return nil
		})
	}
	g.Wait()

	classifier := NewClassifier(p.Config)
	var merged []Item
	for i, res := range results {
		if res.err != nil {
			p.Log.Warn("source fetch failed",
				zap.String("sourceCode", jobs[i].sourceCode),
				zap.Error(res.err))
			observability.SourceFetchErrors.Inc()
			summary.FailedSources = append(summary.FailedSources, jobs[i].sourceCode)
			continue
		}
		observability.ItemsFetched.Add(float64(len(res.items)))
		for _, raw := range res.items {
			if it, ok := classifier.Classify(raw, jobs[i].category); ok {
				merged = append(merged, it)
			}
		}
	}

	unique := Dedupe(merged)
	summary.UniqueSKUs = len(unique)

	p.reconcile(ctx, unique, summary)

	p.Log.Info("catalog sync finished",
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("uniqueSkus", summary.UniqueSKUs),
		zap.Int("failedSkus", len(summary.FailedSKUs)),
		zap.Strings("failedSources", summary.FailedSources),
		zap.Duration("elapsed", time.Since(started)))

	if p.Runs != nil {
		rec := RunRecord{StartedAt: started, FinishedAt: time.Now().UTC(), Summary: *summary}
		if err := p.Runs.RecordRun(ctx, rec); err != nil {
			p.Log.Warn("failed to record sync run", zap.Error(err))
		}
	}

	return summary, nil
}

// reconcile applies each unique item against the store, one at a
// time. Sequential on purpose: two writes for the same SKU in one run
// are impossible this way. A store failure costs only that SKU.
func (p *Pipeline) reconcile(ctx context.Context, items []Item, summary *Summary) {
	normalizer := NewNormalizer(p.Config)

	for _, it := range items {
		existing, err := p.Store.FindBySKU(ctx, it.SKU)
		if err != nil {
			p.fail(summary, it.SKU, "lookup", err)
			continue
		}

		if existing != nil {
			// Existing records keep every operator-curated field;
			// only the price is refreshed.
			if err := p.Store.UpdatePrice(ctx, it.SKU, it.Price); err != nil {
				p.fail(summary, it.SKU, "update", err)
				continue
			}
			summary.Updated++
			observability.ProductsUpdated.Inc()
			continue
		}

		product := &catalog.Product{
			ID:       uuid.New(),
			SKU:      it.SKU,
			Name:     normalizer.CleanName(it.Title),
			Brand:    normalizer.Brand(it.BrandHint),
			Category: it.Category,
			PriceUSD: it.Price,
			Specs:    normalizer.Specs(it.Title, it.Category),
			ImageURL: p.Config.ImageFor(it.Category),
			Active:   true,
		}
		if err := p.Store.Create(ctx, product); err != nil {
			p.fail(summary, it.SKU, "create", err)
			continue
		}
		summary.Created++
		observability.ProductsCreated.Inc()
	}
}

func (p *Pipeline) fail(summary *Summary, sku, op string, err error) {
	p.Log.Error("reconciliation failed for SKU",
		zap.String("sku", sku),
		zap.String("op", op),
		zap.Error(err))
	observability.ReconcileFailures.Inc()
	summary.FailedSKUs = append(summary.FailedSKUs, sku)
}
