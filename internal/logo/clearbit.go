package logo

import (
    "context"
    "fmt"
    "io"
    "net/url"

    "stockresolver/internal/httpx"
)

// ClearbitConfig controls the domain-keyed fallback provider.
type ClearbitConfig struct {
    Name string
    Base string
}

// Clearbit resolves logos by company domain. It can only run when a
// domain hint was derivable from the website field.
type Clearbit struct {
    cfg    ClearbitConfig
    client *httpx.Client
}

func NewClearbit(cfg ClearbitConfig, hc *httpx.Client) *Clearbit {
    if cfg.Name == "" { cfg.Name = "Clearbit" }
    if cfg.Base == "" { cfg.Base = "https://logo.clearbit.com" }
    return &Clearbit{cfg: cfg, client: hc}
}

func (p *Clearbit) Name() string { return p.cfg.Name }

func (p *Clearbit) Fetch(ctx context.Context, _, domain string) (Asset, error) {
    if domain == "" { return Asset{}, ErrSkipped }
    u := fmt.Sprintf("%s/%s", p.cfg.Base, url.PathEscape(domain))
    resp, err := p.client.Get(ctx, u, nil)
    if err != nil { return Asset{}, err }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        return Asset{}, fmt.Errorf("GET %s -> %d", u, resp.StatusCode)
    }
    b, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
    if err != nil { return Asset{}, fmt.Errorf("read body: %w", err) }
    return Asset{Bytes: b, ContentType: contentTypeOr(resp.Header.Get("Content-Type"))}, nil
}
