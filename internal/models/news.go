package models

// NewsItem is an entry of the official legal news feed
type NewsItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	PubDate     string `json:"pubDate"`
	Description string `json:"description"`
	GUID        string `json:"guid"`
}

// NewsMode selects how the feed is filtered
type NewsMode string

const (
	NewsModeEntrepreneurship NewsMode = "entrepreneurship"
	NewsModeAll              NewsMode = "all"
)

// NewsResponse is a filtered page of the feed
type NewsResponse struct {
	Source      string     `json:"source"`
	GeneratedAt string     `json:"generated_at"`
	Total       int        `json:"total"`
	Items       []NewsItem `json:"items"`
}
