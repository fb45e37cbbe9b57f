package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	feedTimeout     = 15 * time.Second
	documentTimeout = 20 * time.Second
	// maxDocumentSize limits how much of a fetched document is read
	maxDocumentSize = 10 * 1024 * 1024
	userAgent       = "BenefitNavigator/1.0"
)

// Document is a fetched official document
type Document struct {
	Body        []byte
	ContentType string
}

// LexClient fetches the official legal news feed and documents
type LexClient struct {
	httpClient *http.Client
	rssURL     string
}

// NewLexClient creates a new client for the legal news feed at rssURL
func NewLexClient(rssURL string) *LexClient {
	return &LexClient{
		httpClient: &http.Client{},
		rssURL:     rssURL,
	}
}

// FetchFeed downloads the RSS feed
func (c *LexClient) FetchFeed(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, feedTimeout)
	defer cancel()

	doc, err := c.get(ctx, c.rssURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	return doc.Body, nil
}

// FetchDocument downloads a document by its URL
func (c *LexClient) FetchDocument(ctx context.Context, url string) (*Document, error) {
	ctx, cancel := context.WithTimeout(ctx, documentTimeout)
	defer cancel()

	doc, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	return doc, nil
}

func (c *LexClient) get(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Document{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
