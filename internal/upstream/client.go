package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrBadFormat marks a payload that decoded fine but is not shaped like the
// provider contract (non-array brand directory, non-product object, ...).
// Handlers map it to the same 502 as a transport failure but with the
// format-specific message.
var ErrBadFormat = errors.New("upstream returned unexpected format")

// Client fetches the two read-only provider endpoints. Every call is bounded
// by the configured timeout; there are no retries.
type Client struct {
	ProductsURL string
	BrandsURL   string
	HTTP        *http.Client
}

func NewClient(productsURL, brandsURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		ProductsURL: productsURL,
		BrandsURL:   brandsURL,
		HTTP:        &http.Client{Timeout: timeout},
	}
}

// FetchProducts returns the raw product payload as a sequence. A single
// product-like object is coerced into a one-element sequence; anything else
// that is not an array is ErrBadFormat.
func (c *Client) FetchProducts(ctx context.Context) ([]any, error) {
	body, err := c.doGET(ctx, c.ProductsURL)
	if err != nil {
		return nil, err
	}
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	switch t := payload.(type) {
	case []any:
		return t, nil
	case map[string]any:
		if _, ok := t["productId"]; ok {
			return []any{t}, nil
		}
		if _, ok := t["productName"]; ok {
			return []any{t}, nil
		}
	}
	return nil, ErrBadFormat
}

// FetchBrands returns the brand directory. The directory must be an array;
// there is no single-object fallback on this endpoint.
func (c *Client) FetchBrands(ctx context.Context) ([]any, error) {
	body, err := c.doGET(ctx, c.BrandsURL)
	if err != nil {
		return nil, err
	}
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	arr, ok := payload.([]any)
	if !ok {
		return nil, ErrBadFormat
	}
	return arr, nil
}

// FetchBoth issues both fetches concurrently and fails as a whole if either
// leg fails. There is no partial-result fallback.
func (c *Client) FetchBoth(ctx context.Context) (products, brands []any, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = c.FetchProducts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		brands, err = c.FetchBrands(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return products, brands, nil
}

func (c *Client) doGET(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upstream status %d from %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}
