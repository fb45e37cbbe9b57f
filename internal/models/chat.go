package models

// Sender identifies the author of a chat message
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ChatMessage is one entry of a conversation. Conversations are not persisted.
type ChatMessage struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Sender    Sender `json:"sender"`
	Timestamp int64  `json:"timestamp"`
}

// ContextItem is an official document snippet used to ground an answer
type ContextItem struct {
	ID              string  `json:"id"`
	DocTitle        string  `json:"doc_title"`
	DocType         string  `json:"doc_type"`
	Source          string  `json:"source"`
	URL             string  `json:"url"`
	StatusHint      string  `json:"status_hint"`
	PublishedDate   string  `json:"published_date"`
	EffectiveDate   string  `json:"effective_date"`
	LastUpdated     string  `json:"last_updated"`
	ArticleOrClause string  `json:"article_or_clause"`
	SnippetText     string  `json:"snippet_text"`
	SnippetLanguage string  `json:"snippet_language"`
	Confidence      float64 `json:"confidence"`
}

// ContextPayload is a bundle of retrieved snippets
type ContextPayload struct {
	Items []ContextItem `json:"items"`
}

// ChatRequest is the relay input
type ChatRequest struct {
	Message  string          `json:"message"`
	Profile  BusinessProfile `json:"profile"`
	History  []ChatMessage   `json:"history"`
	Context  *ContextPayload `json:"context,omitempty"`
	Language string          `json:"lang,omitempty"`
}

// NewsSummaryRequest is the news summarizer input
type NewsSummaryRequest struct {
	Context  *ContextPayload `json:"context"`
	Language string          `json:"lang,omitempty"`
}

// RelayResponse carries the relay answer
type RelayResponse struct {
	Text string `json:"text"`
}
