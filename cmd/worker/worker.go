package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/benefitnavigator/backend/internal/tasks"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gopkg.in/mail.v2"
)

// MailSender defines the interface for sending emails
type MailSender interface {
	// DialAndSend opens a connection to the SMTP server, sends the messages and closes the connection.
	//
	// If some error occurs during sending, the error will be returned.
	DialAndSend(m ...*mail.Message) error
}

// Worker handles notification task processing
type Worker struct {
	logger        *zap.Logger
	mailer        MailSender
	smtpFrom      string
	smsGatewayURL string
	httpClient    *http.Client
}

// NewWorker creates a new worker instance.
// An empty smsGatewayURL makes the worker log SMS messages instead of sending them.
func NewWorker(logger *zap.Logger, mailer MailSender, smtpFrom, smsGatewayURL string) *Worker {
	return &Worker{
		logger:        logger,
		mailer:        mailer,
		smtpFrom:      smtpFrom,
		smsGatewayURL: smsGatewayURL,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
	}
}

// HandleSMS sends the text message of an SMS task through the gateway
func (w *Worker) HandleSMS(ctx context.Context, t *asynq.Task) error {
	p, err := tasks.ParseSMSPayload(t)
	if err != nil {
		return err
	}
	if p.To == "" {
		return fmt.Errorf("sms recipient is required: %w", asynq.SkipRetry)
	}

	if w.smsGatewayURL == "" {
		w.logger.Info("SMS gateway is not configured, message logged only",
			zap.String("to", p.To),
			zap.String("opportunity_id", p.OpportunityID),
			zap.String("message", p.Message),
		)
		return nil
	}

	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode sms request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.smsGatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create sms request: %w: %w", err, asynq.SkipRetry)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("sms gateway returned status %d: %s", resp.StatusCode, msg)
	}

	w.logger.Info("SMS sent", zap.String("to", p.To), zap.String("opportunity_id", p.OpportunityID))
	return nil
}

// HandleEmail sends the email of an email task
func (w *Worker) HandleEmail(ctx context.Context, t *asynq.Task) error {
	p, err := tasks.ParseEmailPayload(t)
	if err != nil {
		return err
	}
	if p.To == "" {
		return fmt.Errorf("email recipient is required: %w", asynq.SkipRetry)
	}

	m := mail.NewMessage()
	m.SetHeader("From", w.smtpFrom)
	m.SetHeader("To", p.To)
	m.SetHeader("Subject", p.Subject)
	m.SetBody("text/html", p.Body)

	if err := w.mailer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	w.logger.Info("Email sent", zap.String("to", p.To))
	return nil
}
