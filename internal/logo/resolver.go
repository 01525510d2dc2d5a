package logo

import (
    "context"
    "net/url"
    "strings"
)

// Resolver tries an ordered list of providers and returns the first hit.
// Stages run strictly in sequence: a fallback is attempted only after the
// stage before it has definitively failed. The resolver holds no state
// across calls.
type Resolver struct {
    Providers []Provider
}

// Resolve fetches a logo for symbol, passing the domain extracted from
// website to domain-keyed providers. Exhausting the chain yields
// ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, symbol, website string) (Asset, error) {
    domain := ExtractDomain(website)
    for _, p := range r.Providers {
        a, err := p.Fetch(ctx, symbol, domain)
        if err == nil { return a, nil }
    }
    return Asset{}, ErrNotFound
}

// ExtractDomain pulls the hostname out of a website value. Both bare
// domains ("apple.com") and full URLs are accepted; anything unparsable
// yields "" rather than an error.
func ExtractDomain(website string) string {
    w := strings.TrimSpace(website)
    if w == "" { return "" }
    if !strings.HasPrefix(w, "http://") && !strings.HasPrefix(w, "https://") {
        w = "https://" + w
    }
    u, err := url.Parse(w)
    if err != nil { return "" }
    return u.Hostname()
}
