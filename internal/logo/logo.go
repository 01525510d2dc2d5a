package logo

import (
    "context"
    "errors"
)

// Asset is raw image bytes plus the provider's content type.
type Asset struct {
    Bytes       []byte
    ContentType string
}

// Provider fetches a logo for a symbol. domain is an optional hint derived
// from the company website; providers that do not key by domain ignore it.
type Provider interface {
    Name() string
    Fetch(ctx context.Context, symbol, domain string) (Asset, error)
}

// ErrNotFound is returned once every provider in a chain has failed.
var ErrNotFound = errors.New("logo not found")

// ErrSkipped marks a provider that cannot run for this request (for
// example a domain-keyed provider with no domain hint). The chain treats
// it like any other failure and moves on.
var ErrSkipped = errors.New("provider skipped")
