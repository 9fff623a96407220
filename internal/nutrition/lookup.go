// Package nutrition is the adapter for the external food database. The
// remote service is treated as a black box that may be slow, unavailable or
// simply have no match; all of that is reported to the caller as a plain
// result and never as a failure that could interrupt a session or leave a
// half-written record behind.
package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"
)

// Facts is the macro snapshot returned by a successful lookup. Values are
// per 100g as reported by the food database; absent fields are zero.
type Facts struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// ErrNotFound is returned when the food database has no match for the query.
var ErrNotFound = errors.New("food not found")

// ErrLookupUnavailable is returned when the food database cannot be reached,
// times out or answers with an unexpected status. It is a plain negative
// result for the caller, not a fatal condition.
var ErrLookupUnavailable = errors.New("lookup unavailable")

// Lookuper is the collaborator boundary the rest of the application depends
// on. Handlers accept this interface so tests can substitute a fake.
type Lookuper interface {
	Lookup(ctx context.Context, name string) (Facts, error)
}

// Client queries an OpenFoodFacts-compatible search endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the given base URL with a bounded request
// timeout. The timeout caps every lookup regardless of the caller's context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// searchResponse mirrors the fields of the search payload we care about.
// Nutriment values are decoded loosely because the remote service mixes
// numbers and numeric strings.
type searchResponse struct {
	Products []struct {
		ProductName string                     `json:"product_name"`
		Nutriments  map[string]json.RawMessage `json:"nutriments"`
	} `json:"products"`
}

// Lookup searches the food database by free-text name and maps the first
// product to Facts. An empty products list yields ErrNotFound; transport
// errors, timeouts and non-200 answers yield ErrLookupUnavailable.
func (c *Client) Lookup(ctx context.Context, name string) (Facts, error) {
	q := url.Values{}
	q.Set("search_terms", name)
	q.Set("search_simple", "1")
	q.Set("action", "process")
	q.Set("json", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/cgi/search.pl?"+q.Encode(), nil)
	if err != nil {
		return Facts{}, ErrLookupUnavailable
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Facts{}, ErrLookupUnavailable
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Facts{}, ErrLookupUnavailable
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Facts{}, ErrLookupUnavailable
	}
	if len(body.Products) == 0 {
		return Facts{}, ErrNotFound
	}

	p := body.Products[0]
	return Facts{
		Name:     p.ProductName,
		Calories: nutriment(p.Nutriments, "energy-kcal_100g"),
		Protein:  nutriment(p.Nutriments, "proteins_100g"),
		Carbs:    nutriment(p.Nutriments, "carbohydrates_100g"),
		Fats:     nutriment(p.Nutriments, "fat_100g"),
	}, nil
}

// nutriment extracts a numeric field from the nutriments map. The service
// serves some values as numbers and some as quoted strings; anything that
// cannot be read as a number defaults to zero.
func nutriment(m map[string]json.RawMessage, key string) float64 {
	raw, ok := m[key]
	if !ok {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		var f2 float64
		if err := json.Unmarshal([]byte(s), &f2); err == nil {
			return f2
		}
	}
	return 0
}
