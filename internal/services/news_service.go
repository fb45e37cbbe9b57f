package services

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/benefitnavigator/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	lexBaseURL       = "https://lex.uz"
	newsSource       = "lex.uz/rss"
	defaultNewsLimit = 20
	maxNewsLimit     = 100
)

// ErrNewsUnavailable is returned when the feed can not be fetched and nothing is cached
var ErrNewsUnavailable = errors.New("failed to fetch lex.uz RSS and no cached data available")

// entrepreneurKeywords select feed entries relevant to entrepreneurs.
// Latin and Cyrillic Uzbek spellings come first, then Russian terms.
var entrepreneurKeywords = []string{
	"tadbirkor", "tadbirkorlik", "biznes", "kichik biznes", "xususiy", "soliq", "imtiyoz",
	"yengillik", "subsid", "subsidiya", "grant", "kredit", "mikrokredit", "litsenziya",
	"ruxsatnoma", "eksport", "import", "invest", "investitsiya", "yatt", "mchj", "tekshiruv",
	"nazorat", "jarima",
	"тадбиркор", "тадбиркорлик", "бизнес", "кичик бизнес", "хусусий", "солиқ", "имтиёз",
	"енгиллик", "субсид", "субсидия", "грант", "кредит", "микрокредит", "лицензия",
	"рухсатнома", "экспорт", "импорт", "инвест", "инвестиция", "ятт", "мчж", "текширув",
	"назорат", "жарима",
	"предприниматель", "предпринимательство", "льгота", "льготы", "налог", "субсидии",
	"разрешение", "инвестиции",
}

// FeedFetcher is the interface that wraps downloading of the news feed
type FeedFetcher interface {
	// Method FetchFeed downloads the raw RSS document.
	//
	// If the feed can not be downloaded, the error will be returned together with "nil" value.
	FetchFeed(ctx context.Context) ([]byte, error)
}

type newsService struct {
	fetcher FeedFetcher
	logger  *zap.Logger
	ttl     time.Duration
	now     func() time.Time

	mu        sync.RWMutex
	items     []models.NewsItem
	fetchedAt time.Time
	group     singleflight.Group
}

// NewNewsService creates a new news service that caches the feed for ttl
func NewNewsService(fetcher FeedFetcher, ttl time.Duration, logger *zap.Logger) *newsService {
	return &newsService{
		fetcher: fetcher,
		logger:  logger,
		ttl:     ttl,
		now:     time.Now,
	}
}

// List returns a page of the feed.
//
// Mode "entrepreneurship" keeps only entries matching the keyword list and then the query;
// mode "all" ignores the query. Total counts the filtered entries before the limit.
func (s *newsService) List(ctx context.Context, limit int, query string, mode models.NewsMode) (*models.NewsResponse, error) {
	if limit == 0 {
		limit = defaultNewsLimit
	}
	if limit < 1 || limit > maxNewsLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidArgument, maxNewsLimit)
	}
	if mode == "" {
		mode = models.NewsModeEntrepreneurship
	}
	if mode != models.NewsModeEntrepreneurship && mode != models.NewsModeAll {
		return nil, fmt.Errorf("%w: mode must be entrepreneurship or all", ErrInvalidArgument)
	}

	items, err := s.cachedItems(ctx)
	if err != nil {
		return nil, err
	}

	filtered := items
	if mode == models.NewsModeEntrepreneurship {
		filtered = filterNews(items, query)
	}

	page := filtered
	if len(page) > limit {
		page = page[:limit]
	}

	return &models.NewsResponse{
		Source:      newsSource,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		Total:       len(filtered),
		Items:       append([]models.NewsItem{}, page...),
	}, nil
}

// Refresh fetches the feed and replaces the cache. It is run by the scheduler.
func (s *newsService) Refresh(ctx context.Context) error {
	_, err := s.fetch(ctx)
	return err
}

// cachedItems returns the cached feed while it is fresh, otherwise fetches it.
// A failed fetch falls back to the stale cache.
func (s *newsService) cachedItems(ctx context.Context) ([]models.NewsItem, error) {
	s.mu.RLock()
	items, fetchedAt := s.items, s.fetchedAt
	s.mu.RUnlock()

	if !fetchedAt.IsZero() && s.now().Sub(fetchedAt) < s.ttl {
		return items, nil
	}

	fresh, err := s.fetch(ctx)
	if err == nil {
		return fresh, nil
	}

	if len(items) == 0 {
		return nil, ErrNewsUnavailable
	}
	s.logger.Warn("serving stale news cache", zap.Time("fetched_at", fetchedAt), zap.Error(err))
	return items, nil
}

// fetch downloads and parses the feed; concurrent callers share one download
func (s *newsService) fetch(ctx context.Context) ([]models.NewsItem, error) {
	result, err, _ := s.group.Do("feed", func() (any, error) {
		// A canceled caller must not fail the download shared by the others
		body, err := s.fetcher.FetchFeed(context.WithoutCancel(ctx))
		if err != nil {
			s.logger.Error("failed to fetch news feed", zap.Error(err))
			return nil, err
		}

		items, err := parseRSS(body)
		if err != nil {
			s.logger.Error("failed to parse news feed", zap.Error(err))
			return nil, err
		}

		s.mu.Lock()
		s.items = items
		s.fetchedAt = s.now()
		s.mu.Unlock()

		s.logger.Info("news feed refreshed", zap.Int("items", len(items)))
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.NewsItem), nil
}

func filterNews(items []models.NewsItem, query string) []models.NewsItem {
	query = strings.ToLower(query)
	var filtered []models.NewsItem
	for _, item := range items {
		text := strings.ToLower(item.Title + " " + item.Description)
		if !matchesEntrepreneurship(text) {
			continue
		}
		if query != "" && !strings.Contains(text, query) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func matchesEntrepreneurship(lowered string) bool {
	for _, keyword := range entrepreneurKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
}

// parseRSS collects every <item> element of the document regardless of namespace
func parseRSS(body []byte) ([]models.NewsItem, error) {
	d := xml.NewDecoder(bytes.NewReader(body))
	d.Strict = false
	d.Entity = xml.HTMLEntity

	items := []models.NewsItem{}
	for {
		tok, err := d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return items, nil
			}
			return nil, fmt.Errorf("failed to parse feed: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "item" {
			continue
		}

		var raw rssItem
		if err := d.DecodeElement(&raw, &start); err != nil {
			return nil, fmt.Errorf("failed to parse feed item: %w", err)
		}

		linkRaw := strings.TrimSpace(raw.Link)
		link := toAbsoluteLexLink(linkRaw)
		guid := strings.TrimSpace(raw.GUID)
		if guid == "" {
			guid = linkRaw
		}
		if guid == "" {
			guid = link
		}

		items = append(items, models.NewsItem{
			Title:       strings.TrimSpace(raw.Title),
			Link:        link,
			PubDate:     strings.TrimSpace(raw.PubDate),
			Description: stripHTML(raw.Description),
			GUID:        guid,
		})
	}
}

// toAbsoluteLexLink resolves a site-relative link against the lex.uz origin
func toAbsoluteLexLink(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	return lexBaseURL + link
}
