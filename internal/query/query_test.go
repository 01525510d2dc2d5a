package query

import "testing"

func TestNormalize_TrimsAndUppercases(t *testing.T) {
    q := Normalize("  aapl ")
    if q.Symbol != "AAPL" { t.Fatalf("symbol: %q", q.Symbol) }
    if q.Term != "aapl" { t.Fatalf("term keeps casing: %q", q.Term) }
    if q.Raw != "  aapl " { t.Fatalf("raw preserved: %q", q.Raw) }
    if q.Empty() { t.Fatalf("non-empty input reported empty") }
}

func TestNormalize_MixedCaseCompanyName(t *testing.T) {
    q := Normalize("Apple Inc")
    if q.Symbol != "APPLE INC" { t.Fatalf("symbol: %q", q.Symbol) }
    if q.Term != "Apple Inc" { t.Fatalf("term: %q", q.Term) }
}

func TestNormalize_EmptyAndWhitespace(t *testing.T) {
    for _, in := range []string{"", " ", "\t", "  \n "} {
        q := Normalize(in)
        if !q.Empty() { t.Fatalf("input %q should be empty", in) }
        if q.Symbol != "" || q.Term != "" { t.Fatalf("input %q: %+v", in, q) }
    }
}
