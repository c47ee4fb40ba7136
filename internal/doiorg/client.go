// Package doiorg fetches reference metadata from doi.org via content
// negotiation.
package doiorg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mhoffert/refstyle/internal/export"
	"github.com/mhoffert/refstyle/internal/reference"
)

const (
	// BaseURL is the DOI resolver base URL.
	BaseURL = "https://doi.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit keeps us well inside Crossref's polite-pool guidance.
	RateLimit = 5.0
)

// Client is a rate-limited HTTP client for DOI content negotiation.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailTo     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithMailTo sets the contact address sent in the User-Agent, which
// enrolls requests in Crossref's polite pool.
func WithMailTo(addr string) ClientOption {
	return func(c *Client) {
		c.mailTo = addr
	}
}

// NewClient creates a new DOI resolver client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	if addr := os.Getenv("REFSTYLE_MAILTO"); addr != "" {
		c.mailTo = addr
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchBibTeX fetches the BibTeX entry for a DOI.
func (c *Client) FetchBibTeX(ctx context.Context, doi string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	doi = strings.TrimPrefix(strings.TrimSpace(doi), "https://doi.org/")
	reqURL := c.baseURL + "/" + url.PathEscape(doi)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/x-bibtex; charset=utf-8")
	ua := "refstyle/1.0"
	if c.mailTo != "" {
		ua = fmt.Sprintf("refstyle/1.0 (mailto:%s)", c.mailTo)
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp, doi); err != nil {
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	return string(body), nil
}

// FetchRecord fetches and parses the reference record for a DOI.
func (c *Client) FetchRecord(ctx context.Context, doi string) (*reference.Record, error) {
	bib, err := c.FetchBibTeX(ctx, doi)
	if err != nil {
		return nil, err
	}

	rec, err := export.ParseEntry(bib)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if rec.DOI == "" {
		rec.DOI = doi
	}
	return rec, nil
}

// checkHTTPErrors returns an error if the HTTP response indicates a problem.
func checkHTTPErrors(resp *http.Response, doi string) error {
	if resp.StatusCode == 404 {
		return fmt.Errorf("%w: %s", ErrNotFound, doi)
	}
	if resp.StatusCode == 406 {
		return fmt.Errorf("%w: no BibTeX available for %s", ErrInvalidResponse, doi)
	}
	if resp.StatusCode == 429 {
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: status %d for %s", ErrAPIError, resp.StatusCode, doi)
	}
	return nil
}
