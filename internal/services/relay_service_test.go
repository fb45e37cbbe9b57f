package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benefitnavigator/backend/internal/clients"
	"github.com/benefitnavigator/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockCompletionClient is a mock implementation of CompletionClient
type mockCompletionClient struct {
	text     string
	err      error
	messages []clients.ChatMessage
	calls    int
}

func (m *mockCompletionClient) Complete(ctx context.Context, messages []clients.ChatMessage) (string, error) {
	m.calls++
	m.messages = messages
	return m.text, m.err
}

func setupRelayService(t *testing.T, client CompletionClient) *relayService {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	return NewRelayService(client, logger)
}

func TestRelayService_Ask(t *testing.T) {
	tests := []struct {
		name         string
		client       *mockCompletionClient
		lang         string
		expectedText string
	}{
		{
			name:         "answer returned",
			client:       &mockCompletionClient{text: "1) Qisqa javob ..."},
			expectedText: "1) Qisqa javob ...",
		},
		{
			name:         "status error falls back",
			client:       &mockCompletionClient{err: &clients.StatusError{Code: 500, Body: "boom"}},
			expectedText: "Tizimda vaqtincha nosozlik yuz berdi. Iltimos, keyinroq urinib ko'ring.",
		},
		{
			name:         "missing api key falls back",
			client:       &mockCompletionClient{err: clients.ErrMissingAPIKey},
			lang:         "en",
			expectedText: "The system is temporarily unavailable. Please try again later.",
		},
		{
			name:         "transport error falls back in russian",
			client:       &mockCompletionClient{err: errors.New("connection reset")},
			lang:         "ru-RU,ru;q=0.9",
			expectedText: "В системе временный сбой. Пожалуйста, попробуйте позже.",
		},
		{
			name:         "empty answer",
			client:       &mockCompletionClient{text: "  "},
			expectedText: "Javob olinmadi. Iltimos, savolni soddaroq qilib yozing yoki aniqroq hujjat/qaror raqamini kiriting.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := setupRelayService(t, tt.client)

			text, err := svc.Ask(context.Background(), &models.ChatRequest{Message: "Salom", Language: tt.lang})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedText, text)
			assert.Equal(t, 1, tt.client.calls)
		})
	}
}

func TestRelayService_AskEmptyMessage(t *testing.T) {
	client := &mockCompletionClient{text: "never"}
	svc := setupRelayService(t, client)

	_, err := svc.Ask(context.Background(), &models.ChatRequest{Message: " \n\t"})

	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Equal(t, 0, client.calls)
}

func TestRelayService_AskServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := clients.NewCompletionClient(server.URL, "test-key", "test-model", 5*time.Second)
	svc := setupRelayService(t, client)

	text, err := svc.Ask(context.Background(), &models.ChatRequest{Message: "Litsenziya qanday olinadi?"})

	require.NoError(t, err)
	assert.Equal(t, unavailableFallbacks["uz"], text)
}

func TestRelayService_AskPromptAssembly(t *testing.T) {
	client := &mockCompletionClient{text: "ok"}
	svc := setupRelayService(t, client)

	history := make([]models.ChatMessage, 0, 7)
	for i, text := range []string{"h1", "h2", "h3", "", "h5", "h6", "h7"} {
		sender := models.SenderUser
		if i%2 == 1 {
			sender = models.SenderAI
		}
		history = append(history, models.ChatMessage{ID: text, Text: text, Sender: sender})
	}

	req := &models.ChatRequest{
		Message: "  Soliq imtiyozi bormi?  ",
		Profile: models.BusinessProfile{Name: "Aziz", Region: "Namangan"},
		History: history,
		Context: &models.ContextPayload{Items: []models.ContextItem{{ID: "1", DocTitle: "Qaror <PQ-1>", SnippetText: "matn"}}},
	}

	_, err := svc.Ask(context.Background(), req)
	require.NoError(t, err)

	messages := client.messages
	// policy, context, last five history entries without the empty one, message
	require.Len(t, messages, 7)
	assert.Equal(t, "system", messages[0].Role)
	assert.Contains(t, messages[0].Content, "Ism: Aziz")
	assert.Contains(t, messages[0].Content, "Hudud: Namangan")

	assert.Equal(t, "system", messages[1].Role)
	assert.True(t, strings.HasPrefix(messages[1].Content, "CONTEXT_JSON:\n"))
	assert.Contains(t, messages[1].Content, "Qaror <PQ-1>")

	assert.Equal(t, clients.ChatMessage{Role: "user", Content: "h3"}, messages[2])
	assert.Equal(t, clients.ChatMessage{Role: "user", Content: "h5"}, messages[3])
	assert.Equal(t, clients.ChatMessage{Role: "assistant", Content: "h6"}, messages[4])
	assert.Equal(t, clients.ChatMessage{Role: "user", Content: "h7"}, messages[5])
	assert.Equal(t, clients.ChatMessage{Role: "user", Content: "Soliq imtiyozi bormi?"}, messages[6])
}

func TestRelayService_AskUnknownProfile(t *testing.T) {
	client := &mockCompletionClient{text: "ok"}
	svc := setupRelayService(t, client)

	_, err := svc.Ask(context.Background(), &models.ChatRequest{Message: "Salom"})
	require.NoError(t, err)

	require.Len(t, client.messages, 2)
	assert.Contains(t, client.messages[0].Content, "Ism: Noma'lum")
	assert.Contains(t, client.messages[0].Content, "Hudud: Noma'lum")
}

func TestRelayService_SummarizeNews(t *testing.T) {
	client := &mockCompletionClient{text: `[{"title":"Yangi qaror"}]`}
	svc := setupRelayService(t, client)

	text, err := svc.SummarizeNews(context.Background(), &models.NewsSummaryRequest{
		Context: &models.ContextPayload{Items: []models.ContextItem{{ID: "a", SnippetText: "subsidiya"}}},
	})

	require.NoError(t, err)
	assert.Equal(t, `[{"title":"Yangi qaror"}]`, text)
	require.Len(t, client.messages, 3)
	assert.Equal(t, newsSummaryPrompt, client.messages[0].Content)
	assert.Contains(t, client.messages[1].Content, "subsidiya")
	assert.Equal(t, clients.ChatMessage{Role: "user", Content: newsSummaryUserMessage}, client.messages[2])
}

func TestRelayService_SummarizeNewsEmptyContext(t *testing.T) {
	client := &mockCompletionClient{text: "never"}
	svc := setupRelayService(t, client)

	for _, req := range []*models.NewsSummaryRequest{
		{},
		{Context: &models.ContextPayload{}},
	} {
		_, err := svc.SummarizeNews(context.Background(), req)
		assert.ErrorIs(t, err, ErrEmptyContext)
	}
	assert.Equal(t, 0, client.calls)
}

func TestEncodeContext(t *testing.T) {
	payload := &models.ContextPayload{Items: []models.ContextItem{{SnippetText: strings.Repeat("ш", 20000)}}}

	encoded, err := encodeContext(payload, chatContextLimit)
	require.NoError(t, err)
	assert.Equal(t, chatContextLimit+3, len([]rune(encoded)))
	assert.True(t, strings.HasSuffix(encoded, "..."))

	short := &models.ContextPayload{Items: []models.ContextItem{{ID: "x", URL: "https://lex.uz/docs/1?a=1&b=2"}}}
	encoded, err = encodeContext(short, chatContextLimit)
	require.NoError(t, err)
	assert.Contains(t, encoded, "https://lex.uz/docs/1?a=1&b=2")
	assert.False(t, strings.HasSuffix(encoded, "..."))
}

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{raw: "", expected: "uz"},
		{raw: "ru", expected: "ru"},
		{raw: "EN", expected: "en"},
		{raw: "uz-Latn-UZ", expected: "uz"},
		{raw: "de-DE,de;q=0.9,ru;q=0.8", expected: "ru"},
		{raw: "fr", expected: "uz"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveLanguage(tt.raw))
		})
	}
}
