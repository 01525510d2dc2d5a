package logo

import "net/url"

// Stage is one step of the client-side logo loading chain.
type Stage int

const (
    // StagePrimary loads through the server-side resolver.
    StagePrimary Stage = iota
    // StageFallback loads straight from the domain-keyed provider.
    StageFallback
    // StagePlaceholder renders the first character of the symbol.
    StagePlaceholder
)

func (s Stage) String() string {
    switch s {
    case StagePrimary:
        return "primary"
    case StageFallback:
        return "fallback"
    case StagePlaceholder:
        return "placeholder"
    }
    return "unknown"
}

// SourceChain is the three-state image source machine
// Primary -> Fallback -> Placeholder. Transitions are one-directional:
// a stage that failed is never retried and there is no cycle back.
type SourceChain struct {
    symbol   string
    domain   string
    logoPath string // server resolver mount, e.g. "/logo"
    fallback string // direct domain-keyed provider base
    stage    Stage
}

// NewSourceChain builds the chain for one rendered symbol. website may be
// a bare domain, a full URL, or empty; when no domain is derivable the
// fallback stage is skipped entirely.
func NewSourceChain(symbol, website, logoPath, fallbackBase string) *SourceChain {
    return &SourceChain{
        symbol:   symbol,
        domain:   ExtractDomain(website),
        logoPath: logoPath,
        fallback: fallbackBase,
        stage:    StagePrimary,
    }
}

func (c *SourceChain) Stage() Stage { return c.stage }

// URL is the image source for the current stage, or "" at the
// placeholder stage.
func (c *SourceChain) URL() string {
    switch c.stage {
    case StagePrimary:
        u := c.logoPath + "/" + url.PathEscape(c.symbol)
        if c.domain != "" {
            u += "?website=" + url.QueryEscape(c.domain)
        }
        return u
    case StageFallback:
        return c.fallback + "/" + url.PathEscape(c.domain)
    }
    return ""
}

// Advance moves to the next stage after a load failure and reports
// whether another loadable URL exists. A missing domain collapses the
// fallback stage; at the placeholder stage Advance is a no-op.
func (c *SourceChain) Advance() bool {
    switch c.stage {
    case StagePrimary:
        if c.domain != "" {
            c.stage = StageFallback
            return true
        }
        c.stage = StagePlaceholder
    case StageFallback:
        c.stage = StagePlaceholder
    }
    return false
}

// Placeholder is the text rendered once every image source has failed.
func (c *SourceChain) Placeholder() string {
    for _, r := range c.symbol {
        return string(r)
    }
    return "?"
}
