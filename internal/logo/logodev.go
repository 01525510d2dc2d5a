package logo

import (
    "context"
    "fmt"
    "io"
    "net/url"

    "stockresolver/internal/httpx"
)

// LogoDevConfig controls the symbol-keyed primary provider.
type LogoDevConfig struct {
    Name   string
    Base   string
    APIKey string // optional; when empty no Authorization header is sent
}

// LogoDev resolves logos by ticker symbol. Requests always go to the
// origin; response caching is the transport layer's concern.
type LogoDev struct {
    cfg    LogoDevConfig
    client *httpx.Client
}

func NewLogoDev(cfg LogoDevConfig, hc *httpx.Client) *LogoDev {
    if cfg.Name == "" { cfg.Name = "logo.dev" }
    if cfg.Base == "" { cfg.Base = "https://logo.dev/api/stock" }
    return &LogoDev{cfg: cfg, client: hc}
}

func (p *LogoDev) Name() string { return p.cfg.Name }

func (p *LogoDev) Fetch(ctx context.Context, symbol, _ string) (Asset, error) {
    u := fmt.Sprintf("%s/%s", p.cfg.Base, url.PathEscape(symbol))
    headers := map[string]string{}
    if p.cfg.APIKey != "" { headers["Authorization"] = "Bearer " + p.cfg.APIKey }
    resp, err := p.client.Get(ctx, u, headers)
    if err != nil { return Asset{}, err }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        return Asset{}, fmt.Errorf("GET %s -> %d", u, resp.StatusCode)
    }
    b, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
    if err != nil { return Asset{}, fmt.Errorf("read body: %w", err) }
    return Asset{Bytes: b, ContentType: contentTypeOr(resp.Header.Get("Content-Type"))}, nil
}

const maxLogoBytes = 5 << 20

func contentTypeOr(ct string) string {
    if ct == "" { return "image/png" }
    return ct
}
