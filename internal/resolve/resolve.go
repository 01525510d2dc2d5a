package resolve

import (
    "context"
    "fmt"

    "stockresolver/internal/backend"
    "stockresolver/internal/query"
    "stockresolver/internal/search"
)

// State is the lifecycle of one user-initiated resolution.
type State int

const (
    Idle State = iota
    Loading
    Success
    Error
)

func (s State) String() string {
    switch s {
    case Idle:
        return "idle"
    case Loading:
        return "loading"
    case Success:
        return "success"
    case Error:
        return "error"
    }
    return "unknown"
}

// QuoteFetcher is the backend quote lookup.
type QuoteFetcher interface {
    Stock(ctx context.Context, symbol string) (*backend.Snapshot, error)
}

// SuggestionSearcher is the fuzzy fallback lookup.
type SuggestionSearcher interface {
    Search(ctx context.Context, term string) []search.Suggestion
}

// Outcome is the terminal state of a resolution plus its payload.
// Symbol is the symbol that actually resolved, which differs from the
// typed input when the search fallback supplied a better candidate.
type Outcome struct {
    State    State
    Symbol   string
    Snapshot *backend.Snapshot
    Message  string
}

// Orchestrator runs the resolution cascade: direct symbol fetch first,
// then a single search-based retry. It makes no distinction between
// transient and permanent fetch failures and never retries beyond the
// one fallback hop.
type Orchestrator struct {
    Quotes QuoteFetcher
    Search SuggestionSearcher
    // OnTransition, when set, observes state changes as they happen.
    OnTransition func(State)
}

func (o *Orchestrator) transition(s State) {
    if o.OnTransition != nil { o.OnTransition(s) }
}

// ResolveAndFetch resolves raw user input to a quote snapshot.
func (o *Orchestrator) ResolveAndFetch(ctx context.Context, raw string) Outcome {
    q := query.Normalize(raw)
    if q.Empty() {
        out := Outcome{State: Error, Message: "empty query"}
        o.transition(Error)
        return out
    }
    o.transition(Loading)

    if snap, err := o.Quotes.Stock(ctx, q.Symbol); err == nil && snap != nil {
        o.transition(Success)
        return Outcome{State: Success, Symbol: q.Symbol, Snapshot: snap}
    }

    // Direct lookup failed; one search-based retry with the raw-cased term.
    if o.Search != nil {
        if candidates := o.Search.Search(ctx, q.Term); len(candidates) > 0 {
            sym := candidates[0].Symbol
            if snap, err := o.Quotes.Stock(ctx, sym); err == nil && snap != nil {
                o.transition(Success)
                return Outcome{State: Success, Symbol: sym, Snapshot: snap}
            }
        }
    }

    o.transition(Error)
    return Outcome{State: Error, Message: fmt.Sprintf("no result for %q", q.Term)}
}
