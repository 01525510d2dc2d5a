package search

import (
    "context"
    "fmt"
    "testing"

    "stockresolver/internal/search/yahoo"
)

type fakeSearcher struct {
    calls  int
    quotes []yahoo.Quote
    err    error
}

func (f *fakeSearcher) Search(_ context.Context, term string, quotesCount int, _ ...yahoo.ClientOption) ([]yahoo.Quote, error) {
    f.calls++
    return f.quotes, f.err
}

func TestSearch_EmptyTermIssuesNoCall(t *testing.T) {
    f := &fakeSearcher{}
    s := NewService(f, 10)
    for _, term := range []string{"", "   ", "\t"} {
        if got := s.Search(context.Background(), term); got != nil {
            t.Fatalf("term %q: want nil, got %+v", term, got)
        }
    }
    if f.calls != 0 { t.Fatalf("upstream called %d times for empty terms", f.calls) }
}

func TestSearch_FiltersToEquities(t *testing.T) {
    f := &fakeSearcher{quotes: []yahoo.Quote{
        {Symbol: "AAPL", LongName: "Apple Inc.", ExchDisp: "NASDAQ", QuoteType: "EQUITY"},
        {Symbol: "SPY", ShortName: "SPDR S&P 500", QuoteType: "ETF"},
        {Symbol: "^GSPC", ShortName: "S&P 500", QuoteType: "INDEX"},
        {Symbol: "EURUSD=X", ShortName: "EUR/USD", QuoteType: "CURRENCY"},
        {Symbol: "TSM", LongName: "Taiwan Semiconductor", ExchDisp: "NYSE", QuoteType: "", TypeDisp: "Equity"},
    }}
    s := NewService(f, 10)
    got := s.Search(context.Background(), "anything")
    if len(got) != 2 { t.Fatalf("want 2 equities, got %d: %+v", len(got), got) }
    if got[0].Symbol != "AAPL" || got[1].Symbol != "TSM" {
        t.Fatalf("order not preserved: %+v", got)
    }
}

func TestSearch_NameAndExchangeCoalescing(t *testing.T) {
    f := &fakeSearcher{quotes: []yahoo.Quote{
        {Symbol: "A", LongName: "Long A", ShortName: "Short A", ExchDisp: "NYSE", Exch: "NYQ", QuoteType: "EQUITY"},
        {Symbol: "B", ShortName: "Short B", Exch: "NYQ", QuoteType: "EQUITY"},
        {Symbol: "C", QuoteType: "EQUITY"},
    }}
    s := NewService(f, 10)
    got := s.Search(context.Background(), "x")
    if len(got) != 3 { t.Fatalf("want 3, got %d", len(got)) }
    if got[0].Name != "Long A" || got[0].Exchange != "NYSE" { t.Fatalf("long name should win: %+v", got[0]) }
    if got[1].Name != "Short B" || got[1].Exchange != "NYQ" { t.Fatalf("short name fallback: %+v", got[1]) }
    if got[2].Name != "C" || got[2].Exchange != "" { t.Fatalf("symbol fallback, empty exchange: %+v", got[2]) }
}

func TestSearch_FailOpenOnUpstreamError(t *testing.T) {
    f := &fakeSearcher{err: fmt.Errorf("upstream down")}
    s := NewService(f, 10)
    if got := s.Search(context.Background(), "apple"); len(got) != 0 {
        t.Fatalf("want empty on error, got %+v", got)
    }
    if f.calls != 1 { t.Fatalf("want exactly one upstream call, got %d", f.calls) }
}

func TestDefaults_SevenKnownTickers(t *testing.T) {
    d := Defaults()
    if len(d) != 7 { t.Fatalf("want 7 defaults, got %d", len(d)) }
    for _, s := range d {
        if s.Symbol == "" || s.Name == "" || s.Website == "" {
            t.Fatalf("incomplete default: %+v", s)
        }
    }
}
