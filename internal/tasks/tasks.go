// Package tasks defines the background notification tasks shared by the API server and the worker
package tasks

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/hibiken/asynq"
)

// Task type names
const (
	TypeSMS   = "notification:sms"
	TypeEmail = "notification:email"
)

// QueueNotifications is the asynq queue of notification tasks
const QueueNotifications = "notifications"

const maxRetry = 5

// SMSPayload is a text message to the phone of a business
type SMSPayload struct {
	To            string `json:"to"`
	Message       string `json:"message"`
	OpportunityID string `json:"opportunity_id,omitempty"`
}

// EmailPayload is an email to a business
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NewSMSTask creates an SMS notification task
func NewSMSTask(p SMSPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sms payload: %w", err)
	}
	return asynq.NewTask(TypeSMS, payload, asynq.Queue(QueueNotifications), asynq.MaxRetry(maxRetry)), nil
}

// NewEmailTask creates an email notification task
func NewEmailTask(p EmailPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode email payload: %w", err)
	}
	return asynq.NewTask(TypeEmail, payload, asynq.Queue(QueueNotifications), asynq.MaxRetry(maxRetry)), nil
}

// ParseSMSPayload decodes the payload of an SMS task
func ParseSMSPayload(t *asynq.Task) (*SMSPayload, error) {
	var p SMSPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return nil, fmt.Errorf("failed to decode sms payload: %w: %w", err, asynq.SkipRetry)
	}
	return &p, nil
}

// ParseEmailPayload decodes the payload of an email task
func ParseEmailPayload(t *asynq.Task) (*EmailPayload, error) {
	var p EmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return nil, fmt.Errorf("failed to decode email payload: %w: %w", err, asynq.SkipRetry)
	}
	return &p, nil
}

// SummaryEmailBody renders the HTML body of the analysis summary email.
// Every line is escaped, so titles and messages are shown as plain text.
func SummaryEmailBody(submitted, pending []string) string {
	var b strings.Builder
	b.WriteString("<p>Yuborilgan arizalar:</p><ul>")
	for _, line := range submitted {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(line))
	}
	b.WriteString("</ul><p>Qo'shimcha ma'lumot kerak:</p><ul>")
	for _, line := range pending {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(line))
	}
	b.WriteString("</ul>")
	return b.String()
}
