package enrich

import (
    "context"
    "time"

    "golang.org/x/sync/errgroup"

    "stockresolver/internal/backend"
    "stockresolver/internal/search"
)

// StockFetcher is the backend lookup used for website enrichment.
type StockFetcher interface {
    Stock(ctx context.Context, symbol string) (*backend.Snapshot, error)
}

// Coordinator attaches a company website to the leading suggestions.
// Failures are isolated per entry: a timed-out or failed lookup leaves
// that one suggestion untouched and never aborts the batch.
type Coordinator struct {
    Backend StockFetcher
    // Top bounds how many leading suggestions are enriched.
    Top int
    // Timeout bounds each lookup independently.
    Timeout time.Duration
}

func New(b StockFetcher, top int, timeout time.Duration) *Coordinator {
    if top <= 0 { top = 7 }
    if timeout <= 0 { timeout = 1200 * time.Millisecond }
    return &Coordinator{Backend: b, Top: top, Timeout: timeout}
}

// Enrich populates Website on suggestions[0:min(Top,len)) where the backend
// knows one. The slice is returned with order and length unchanged; entries
// past the prefix are never touched. All lookups run concurrently and the
// call returns only once every one of them has settled.
func (c *Coordinator) Enrich(ctx context.Context, suggestions []search.Suggestion) []search.Suggestion {
    if c.Backend == nil || len(suggestions) == 0 { return suggestions }
    n := c.Top
    if n > len(suggestions) { n = len(suggestions) }

    var g errgroup.Group
    for i := 0; i < n; i++ {
        i := i
        g.Go(func() error {
            callCtx, cancel := context.WithTimeout(ctx, c.Timeout)
            defer cancel()
            snap, err := c.Backend.Stock(callCtx, suggestions[i].Symbol)
            // Per-entry fail-open: the worker never reports an error, so the
            // group join waits on all outcomes instead of cancelling siblings.
            if err != nil || snap == nil || snap.Website == "" { return nil }
            suggestions[i].Website = snap.Website
            return nil
        })
    }
    _ = g.Wait()
    return suggestions
}
