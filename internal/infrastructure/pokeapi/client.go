package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/infrastructure/config"
)

// maxResponseBytes caps how much of an upstream response we are willing to
// decode. Listing and detail documents are far below this.
const maxResponseBytes = 4 << 20

// Client talks to the PokeAPI-shaped catalog source over HTTP. It implements
// catalog.Source.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new catalog source client
func NewClient(cfg *config.CatalogConfig) *Client {
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
	}
}

// listingResponse mirrors the upstream listing document
type listingResponse struct {
	Next    *string `json:"next"`
	Results []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"results"`
}

// detailResponse mirrors the upstream detail document
type detailResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
	} `json:"sprites"`
}

// ListPage fetches one page of the catalog listing. An empty url fetches the
// configured first page.
func (c *Client) ListPage(ctx context.Context, url string) (*catalog.ListingPage, error) {
	if url == "" {
		url = c.baseURL
	}

	var body listingResponse
	if err := c.getJSON(ctx, url, &body); err != nil {
		return nil, fmt.Errorf("listing page %s: %w", url, err)
	}

	page := &catalog.ListingPage{
		Results: make([]catalog.EntryRef, 0, len(body.Results)),
	}
	if body.Next != nil {
		page.Next = *body.Next
	}
	for _, r := range body.Results {
		page.Results = append(page.Results, catalog.EntryRef{Name: r.Name, URL: r.URL})
	}
	return page, nil
}

// FetchDetail fetches the detail document behind one listing reference
func (c *Client) FetchDetail(ctx context.Context, ref catalog.EntryRef) (*catalog.CatalogEntry, error) {
	var body detailResponse
	if err := c.getJSON(ctx, ref.URL, &body); err != nil {
		return nil, fmt.Errorf("detail %s: %w", ref.Name, err)
	}

	entry := &catalog.CatalogEntry{
		ID:   body.ID,
		Name: body.Name,
	}
	if body.Sprites.FrontDefault != nil {
		entry.ImageURL = *body.Sprites.FrontDefault
	}
	return entry, nil
}

// getJSON performs a GET request and decodes the JSON response into out
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
