package search

import (
    "context"
    "log"
    "strings"

    "stockresolver/internal/search/yahoo"
)

// Suggestion is the compact shape served to the UI layer.
// Order always matches upstream order; there is no re-ranking.
type Suggestion struct {
    Symbol   string `json:"symbol"`
    Name     string `json:"name"`
    Exchange string `json:"exchange"`
    Website  string `json:"website,omitempty"`
}

// Searcher is the upstream search call used by Service.
type Searcher interface {
    Search(ctx context.Context, term string, quotesCount int, opts ...yahoo.ClientOption) ([]yahoo.Quote, error)
}

// Service filters upstream search results to equities and maps them to
// suggestions. It is fail-open: any upstream failure yields an empty list,
// never an error, so search-as-you-type cannot surface a hard failure.
type Service struct {
    Client      Searcher
    QuotesCount int
}

func NewService(client Searcher, quotesCount int) *Service {
    if quotesCount <= 0 { quotesCount = 10 }
    return &Service{Client: client, QuotesCount: quotesCount}
}

func (s *Service) Search(ctx context.Context, term string) []Suggestion {
    if strings.TrimSpace(term) == "" { return nil }
    quotes, err := s.Client.Search(ctx, term, s.QuotesCount)
    if err != nil {
        log.Printf("search: upstream failed for %q: %v", term, err)
        return nil
    }
    out := make([]Suggestion, 0, len(quotes))
    for _, q := range quotes {
        if !isEquity(q) { continue }
        out = append(out, Suggestion{
            Symbol:   q.Symbol,
            Name:     coalesce(q.LongName, q.ShortName, q.Symbol),
            Exchange: coalesce(q.ExchDisp, q.Exch),
        })
    }
    return out
}

// isEquity keeps common-stock instruments only. ETFs, indices and
// currencies carry other type strings and are excluded entirely.
func isEquity(q yahoo.Quote) bool {
    typ := q.QuoteType
    if typ == "" { typ = q.TypeDisp }
    return strings.Contains(strings.ToLower(typ), "equity")
}

func coalesce(vals ...string) string {
    for _, v := range vals {
        if v != "" { return v }
    }
    return ""
}

// Defaults is the suggestion set shown before the user has typed enough
// to search on.
func Defaults() []Suggestion {
    return []Suggestion{
        {Symbol: "AAPL", Name: "Apple Inc.", Exchange: "NASDAQ", Website: "apple.com"},
        {Symbol: "MSFT", Name: "Microsoft Corporation", Exchange: "NASDAQ", Website: "microsoft.com"},
        {Symbol: "GOOGL", Name: "Alphabet Inc. (Class A)", Exchange: "NASDAQ", Website: "abc.xyz"},
        {Symbol: "AMZN", Name: "Amazon.com, Inc.", Exchange: "NASDAQ", Website: "amazon.com"},
        {Symbol: "META", Name: "Meta Platforms, Inc.", Exchange: "NASDAQ", Website: "meta.com"},
        {Symbol: "NVDA", Name: "NVIDIA Corporation", Exchange: "NASDAQ", Website: "nvidia.com"},
        {Symbol: "TSLA", Name: "Tesla, Inc.", Exchange: "NASDAQ", Website: "tesla.com"},
    }
}
