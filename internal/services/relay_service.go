package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/benefitnavigator/backend/internal/clients"
	"github.com/benefitnavigator/backend/internal/models"
	"go.uber.org/zap"
)

const (
	historyLimit           = 5
	chatContextLimit       = 12000
	newsSummaryContextSize = 16000
	defaultLanguage        = "uz"
)

// CompletionClient is the interface that wraps the hosted chat-completion API
type CompletionClient interface {
	// Method Complete sends the messages and returns the text of the first choice.
	//
	// An empty text with "nil" error means the API produced no answer.
	// Transport failures and non-2xx statuses are returned as errors together with an empty text.
	Complete(ctx context.Context, messages []clients.ChatMessage) (string, error)
}

type relayService struct {
	client CompletionClient
	logger *zap.Logger
}

// NewRelayService creates a new AI relay service
func NewRelayService(client CompletionClient, logger *zap.Logger) *relayService {
	return &relayService{
		client: client,
		logger: logger,
	}
}

// Ask answers a chat message grounded on the provided context.
//
// Only an empty message is an error. Every failure of the completion API is logged and
// turned into a localized fallback text.
func (s *relayService) Ask(ctx context.Context, req *models.ChatRequest) (string, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	messages, err := buildChatMessages(message, req)
	if err != nil {
		return "", err
	}

	return s.complete(ctx, "chat", ResolveLanguage(req.Language), messages), nil
}

// SummarizeNews turns official document snippets into news cards
func (s *relayService) SummarizeNews(ctx context.Context, req *models.NewsSummaryRequest) (string, error) {
	if req.Context == nil || len(req.Context.Items) == 0 {
		return "", ErrEmptyContext
	}

	contextJSON, err := encodeContext(req.Context, newsSummaryContextSize)
	if err != nil {
		return "", err
	}

	messages := []clients.ChatMessage{
		{Role: "system", Content: newsSummaryPrompt},
		{Role: "system", Content: "CONTEXT_JSON:\n" + contextJSON},
		{Role: "user", Content: newsSummaryUserMessage},
	}

	return s.complete(ctx, "news", ResolveLanguage(req.Language), messages), nil
}

func (s *relayService) complete(ctx context.Context, kind, lang string, messages []clients.ChatMessage) string {
	text, err := s.client.Complete(ctx, messages)
	if err != nil {
		fields := []zap.Field{zap.String("kind", kind), zap.Error(err)}
		var statusErr *clients.StatusError
		if errors.As(err, &statusErr) {
			fields = append(fields, zap.Int("status", statusErr.Code))
		}
		s.logger.Error("completion request failed", fields...)
		return unavailableFallbacks[lang]
	}

	if strings.TrimSpace(text) == "" {
		s.logger.Warn("completion returned no answer", zap.String("kind", kind))
		return noAnswerFallbacks[lang]
	}
	return text
}

// buildChatMessages assembles the system policy, the optional context, the recent history and the message
func buildChatMessages(message string, req *models.ChatRequest) ([]clients.ChatMessage, error) {
	messages := []clients.ChatMessage{
		{Role: "system", Content: fmt.Sprintf(legalAssistantPrompt, orUnknown(req.Profile.Name), orUnknown(req.Profile.Region))},
	}

	if req.Context != nil && len(req.Context.Items) > 0 {
		contextJSON, err := encodeContext(req.Context, chatContextLimit)
		if err != nil {
			return nil, err
		}
		messages = append(messages, clients.ChatMessage{Role: "system", Content: "CONTEXT_JSON:\n" + contextJSON})
	}

	history := req.History
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	for _, msg := range history {
		if strings.TrimSpace(msg.Text) == "" {
			continue
		}
		role := "assistant"
		if msg.Sender == models.SenderUser {
			role = "user"
		}
		messages = append(messages, clients.ChatMessage{Role: role, Content: msg.Text})
	}

	return append(messages, clients.ChatMessage{Role: "user", Content: message}), nil
}

// encodeContext serializes the context and cuts it to limit characters followed by "..."
func encodeContext(payload *models.ContextPayload, limit int) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return "", fmt.Errorf("failed to encode context: %w", err)
	}
	return truncateRunes(strings.TrimSuffix(buf.String(), "\n"), limit), nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func orUnknown(value string) string {
	if strings.TrimSpace(value) == "" {
		return unknownValue
	}
	return value
}

// ResolveLanguage maps a language tag or an Accept-Language value to uz, ru or en
func ResolveLanguage(raw string) string {
	for _, part := range strings.Split(raw, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		base := strings.SplitN(tag, "-", 2)[0]
		switch base {
		case "uz", "ru", "en":
			return base
		}
	}
	return defaultLanguage
}
