package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/benefitnavigator/backend/internal/clients"
	"github.com/benefitnavigator/backend/internal/models"
	"go.uber.org/zap"
)

const (
	minContextURLLength = 5
	maxSnippetLength    = 4000
	snippetPlaceholder  = "Matn ajratib bo'lmadi. Iltimos, hujjatni Lex.uz orqali tekshiring."
)

// ErrContextUnavailable is returned when the document can not be fetched
var ErrContextUnavailable = errors.New("failed to fetch context")

// DocumentFetcher is the interface that wraps downloading of official documents
type DocumentFetcher interface {
	// Method FetchDocument downloads the document at url.
	//
	// Non-2xx statuses and transport failures are returned as errors together with "nil" value.
	FetchDocument(ctx context.Context, url string) (*clients.Document, error)
}

type contextService struct {
	fetcher      DocumentFetcher
	allowedHosts []string
	logger       *zap.Logger
}

// NewContextService creates a new retrieval context service.
// Only URLs on allowedHosts or their subdomains are fetched; "*" allows any host.
func NewContextService(fetcher DocumentFetcher, allowedHosts []string, logger *zap.Logger) *contextService {
	return &contextService{
		fetcher:      fetcher,
		allowedHosts: allowedHosts,
		logger:       logger,
	}
}

// FetchContext downloads a document and turns it into a single context item.
//
// Text is extracted from HTML and PDF documents. Documents without extractable text get a
// placeholder snippet that points the user to lex.uz.
func (s *contextService) FetchContext(ctx context.Context, rawURL, title, publishedDate string) (*models.ContextPayload, error) {
	rawURL = strings.TrimSpace(rawURL)
	if len(rawURL) < minContextURLLength {
		return nil, fmt.Errorf("%w: url is required", ErrInvalidArgument)
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: url must be an absolute http(s) URL", ErrInvalidArgument)
	}
	if !s.isHostAllowed(parsed.Hostname()) {
		return nil, fmt.Errorf("%w: host %q is not allowed", ErrInvalidArgument, parsed.Hostname())
	}

	doc, err := s.fetcher.FetchDocument(ctx, rawURL)
	if err != nil {
		s.logger.Warn("failed to fetch context document", zap.String("url", rawURL), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrContextUnavailable, err)
	}

	var text, inferredTitle string
	if isPDF(rawURL, doc.ContentType) {
		text, err = pdfText(doc.Body)
		if err != nil {
			s.logger.Warn("failed to extract pdf text", zap.String("url", rawURL), zap.Error(err))
		}
	} else {
		body := string(doc.Body)
		text = stripHTML(body)
		inferredTitle = htmlTitle(body)
	}

	snippet := strings.TrimSpace(text)
	if snippet == "" {
		snippet = snippetPlaceholder
	}

	docTitle := strings.TrimSpace(title)
	if docTitle == "" {
		docTitle = inferredTitle
	}
	if docTitle == "" {
		docTitle = rawURL
	}

	source := "other"
	if strings.Contains(rawURL, "lex.uz") {
		source = "lex.uz"
	}

	item := models.ContextItem{
		ID:              rawURL,
		DocTitle:        docTitle,
		DocType:         "Boshqa",
		Source:          source,
		URL:             rawURL,
		StatusHint:      "unknown",
		PublishedDate:   publishedDate,
		ArticleOrClause: "Band/Bo'lim topilmadi",
		SnippetText:     truncateRunesPlain(snippet, maxSnippetLength),
		SnippetLanguage: "uz",
		Confidence:      0.5,
	}

	return &models.ContextPayload{Items: []models.ContextItem{item}}, nil
}

func (s *contextService) isHostAllowed(host string) bool {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	for _, allowed := range s.allowedHosts {
		if allowed == "*" || host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}

func isPDF(rawURL, contentType string) bool {
	if strings.Contains(strings.ToLower(contentType), "application/pdf") {
		return true
	}
	path := strings.ToLower(strings.SplitN(rawURL, "?", 2)[0])
	return strings.HasSuffix(path, ".pdf")
}
