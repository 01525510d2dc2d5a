package backend

import (
    "context"
    "encoding/json"
    "fmt"
    "net/url"
    "time"

    "github.com/go-resty/resty/v2"
    "github.com/tidwall/gjson"
)

// Snapshot is one resolved symbol's quote record. The body is opaque
// pass-through data; only Website is lifted out, for logo fallback.
type Snapshot struct {
    Symbol  string
    Website string
    Raw     json.RawMessage
}

// Client talks to the quote backend (GET {base}/stock/{symbol}).
type Client struct {
    rc *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
    rc := resty.New().
        SetBaseURL(baseURL).
        SetTimeout(timeout).
        SetHeader("Accept", "application/json")
    return &Client{rc: rc}
}

// Stock fetches the quote snapshot for symbol. Responses are never cached;
// every call goes to the origin.
func (c *Client) Stock(ctx context.Context, symbol string) (*Snapshot, error) {
    if c.rc.BaseURL == "" {
        return nil, fmt.Errorf("backend: base URL not configured")
    }
    resp, err := c.rc.R().
        SetContext(ctx).
        Get("/stock/" + url.PathEscape(symbol))
    if err != nil {
        return nil, fmt.Errorf("backend: fetch %s: %w", symbol, err)
    }
    if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
        return nil, fmt.Errorf("backend: fetch %s: status %d", symbol, resp.StatusCode())
    }
    body := resp.Body()
    if !gjson.ValidBytes(body) {
        return nil, fmt.Errorf("backend: fetch %s: invalid JSON body", symbol)
    }
    return &Snapshot{
        Symbol:  symbol,
        Website: gjson.GetBytes(body, "website").String(),
        Raw:     json.RawMessage(append([]byte(nil), body...)),
    }, nil
}
