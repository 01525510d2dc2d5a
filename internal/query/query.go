package query

import "strings"

// Query is the normalized form of one piece of raw user input.
// Symbol is the uppercased direct-lookup candidate; Term keeps the
// original casing for fuzzy search. Both are trimmed.
type Query struct {
    Raw    string
    Symbol string
    Term   string
}

// Normalize is pure: no validation errors, no I/O. Callers check Empty()
// before issuing any network call.
func Normalize(raw string) Query {
    t := strings.TrimSpace(raw)
    return Query{Raw: raw, Symbol: strings.ToUpper(t), Term: t}
}

func (q Query) Empty() bool { return q.Term == "" }
