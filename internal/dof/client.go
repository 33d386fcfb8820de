// Package dof retrieves publications from the Diario Oficial de la
// Federación. It is the retrieval collaborator of the legal core: the
// document and analysis engines never depend on it.
package dof

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/lexmex/lexmex-mcp/internal/logger"
	"github.com/lexmex/lexmex-mcp/pkg/version"
)

var log = logger.ForComponent("dof")

const defaultBaseURL = "https://www.dof.gob.mx"

// Client talks to the DOF website. Transient failures (network errors and
// 5xx responses) are retried with exponential backoff; client errors are
// not.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxRetries uint64
}

// ClientOption is a functional option for Client.
type ClientOption func(*Client)

func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithMaxRetries(n uint64) ClientOption {
	return func(c *Client) {
		c.maxRetries = n
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		userAgent:  "Mozilla/5.0 (compatible; LexMex MCP/" + version.Version + ")",
		maxRetries: 3,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search queries the DOF search form and parses the result rows.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]DocumentSummary, error) {
	form := url.Values{
		"textobusqueda": {query},
		"vienede":       {"header"},
		"s":             {"s"},
	}

	body, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.baseURL+"/busqueda_detalle.php", strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("search dof: %w", err)
	}

	return parseSearchResults(body, c.baseURL, limit)
}

// SearchByType prepends the document type to the query, matching the
// search form's behavior for typed searches.
func (c *Client) SearchByType(ctx context.Context, docType, query string, limit int) ([]DocumentSummary, error) {
	if !ValidDocType(docType) {
		return nil, fmt.Errorf("unknown document type: %s", docType)
	}

	combined := docType
	if query != "" {
		combined = docType + " " + query
	}
	return c.Search(ctx, combined, limit)
}

// LatestPublications lists the newest publications from the front page.
func (c *Client) LatestPublications(ctx context.Context, limit int) ([]DocumentSummary, error) {
	body, err := c.do(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/index.php", nil)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch latest publications: %w", err)
	}

	return parsePublicationList(body, c.baseURL, limit)
}

// FetchDocument retrieves and extracts the text of one publication.
func (c *Client) FetchDocument(ctx context.Context, docURL string) (string, error) {
	body, err := c.do(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, docURL, nil)
	})
	if err != nil {
		return "", fmt.Errorf("fetch document: %w", err)
	}

	return extractContent(body)
}

// do executes the request with retry. The request is rebuilt on every
// attempt so bodies are re-readable. 4xx responses are permanent; network
// errors and 5xx responses are retried up to maxRetries.
func (c *Client) do(ctx context.Context, build func() (*http.Request, error)) (string, error) {
	var body string

	operation := func() error {
		req, err := build()
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode >= 500 {
			return fmt.Errorf("dof returned %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("dof returned %d", resp.StatusCode))
		}

		body = decodeToUTF8(data)
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}
	return body, nil
}
