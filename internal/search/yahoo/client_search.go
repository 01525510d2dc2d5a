package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"strconv"
)

// Quote is one raw entry from the search response. Field coalescing and
// instrument filtering are left to the caller.
type Quote struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	ExchDisp  string `json:"exchDisp"`
	Exch      string `json:"exch"`
	QuoteType string `json:"quoteType"`
	TypeDisp  string `json:"typeDisp"`
}

type searchResponse struct {
	Quotes []Quote `json:"quotes"`
}

// Search queries the search endpoint for term and returns the raw quote list.
// quotesCount bounds the upstream result count; news and list results are
// always suppressed.
func (c *Client) Search(ctx context.Context, term string, quotesCount int, opts ...ClientOption) ([]Quote, error) {
	var override = &Client{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		header:     c.header.Clone(),
		query:      c.query,
	}
	for _, opt := range opts {
		opt(override)
	}

	query := maps.Clone(override.query)
	query.Set("q", term)
	query.Set("quotesCount", strconv.Itoa(quotesCount))
	query.Set("newsCount", "0")
	query.Set("listsCount", "0")

	url := fmt.Sprintf("%s?%s", override.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = override.header

	res, err := override.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break

	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("rate limited")

	default:
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return body.Quotes, nil
}
