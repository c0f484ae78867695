// Package catalog reads the product list from the external catalog API and
// holds it in memory. The catalog is a one-shot, read-only data source: the
// service must serve (an empty list) before the fetch resolves and must
// never crash because the source is unreachable.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Luchito30/ShopCart/internal/domain"
	"github.com/sony/gobreaker/v2"
)

// DefaultURL is the public demo catalog.
const DefaultURL = "https://fakestoreapi.com/products"

// Fetcher is anything that can produce the product list.
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.Product, error)
}

// Client fetches products over HTTP. Calls run through a circuit breaker so
// a flapping upstream fails fast instead of tying up requests.
type Client struct {
	url string
	hc  *http.Client
	cb  *gobreaker.CircuitBreaker[[]domain.Product]
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		hc:  &http.Client{Timeout: timeout},
		cb: gobreaker.NewCircuitBreaker[[]domain.Product](gobreaker.Settings{
			Name:    "catalog",
			Timeout: 15 * time.Second,
		}),
	}
}

// Fetch GETs the catalog URL and decodes the product list.
func (c *Client) Fetch(ctx context.Context) ([]domain.Product, error) {
	return c.cb.Execute(func() ([]domain.Product, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
		if err != nil {
			return nil, fmt.Errorf("build catalog request: %w", err)
		}

		resp, err := c.hc.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch catalog: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
		}

		var products []domain.Product
		if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
		return products, nil
	})
}
