package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// DefaultConfig returns the default Cloud API client config.
func DefaultConfig() Config {
	return Config{
		BaseURL:    DefaultBaseURL,
		Timeout:    DefaultTimeout,
		RetryCount: DefaultRetryCount,
		RetryDelay: DefaultRetryDelay,
	}
}

func (w *whatsappImpl) messagesURL() string {
	return fmt.Sprintf(graphAPIURLTemplate, w.config.BaseURL, w.phoneNumberID)
}

func (w *whatsappImpl) Close() error {
	if w.client != nil {
		w.client.CloseIdleConnections()
	}
	return nil
}

func (w *whatsappImpl) sendWithRetry(ctx context.Context, payload *messagePayload) error {
	var lastErr error
	for attempt := 0; attempt <= w.config.RetryCount; attempt++ {
		if attempt > 0 {
			if w.l != nil {
				w.l.Infof(ctx, "pkg.whatsapp.sendWithRetry: retrying attempt %d/%d", attempt, w.config.RetryCount)
			}
			time.Sleep(w.config.RetryDelay)
		}
		err := w.sendRequest(ctx, payload)
		if err == nil {
			return nil
		}
		lastErr = err
		if w.l != nil {
			w.l.Warnf(ctx, "pkg.whatsapp.sendWithRetry: attempt %d failed: %v", attempt+1, err)
		}
	}
	return fmt.Errorf("failed after %d attempts, last error: %w", w.config.RetryCount+1, lastErr)
}

func (w *whatsappImpl) sendRequest(ctx context.Context, payload *messagePayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.messagesURL(), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+w.accessToken)
	req.Header.Set("User-Agent", UserAgent)

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("cloud API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (w *whatsappImpl) truncateBody(s string) string {
	if len(s) <= MaxBodyLength {
		return s
	}
	return s[:MaxBodyLength-3] + "..."
}

func (w *whatsappImpl) SendText(ctx context.Context, to, body string) error {
	if to == "" {
		return ErrEmptyRecipient
	}
	payload := &messagePayload{
		MessagingProduct: messagingProduct,
		To:               to,
		Type:             "text",
		Text:             &textBody{Body: w.truncateBody(body)},
	}
	return w.sendWithRetry(ctx, payload)
}

func (w *whatsappImpl) SendTemplate(ctx context.Context, to, name, languageCode string, components []TemplateComponent) error {
	if to == "" {
		return ErrEmptyRecipient
	}
	payload := &messagePayload{
		MessagingProduct: messagingProduct,
		To:               to,
		Type:             "template",
		Template: &templatePayload{
			Name:       name,
			Language:   templateLanguage{Code: languageCode},
			Components: components,
		},
	}
	return w.sendWithRetry(ctx, payload)
}

// ReportBug sends an internal error report to the configured admin number.
func (w *whatsappImpl) ReportBug(ctx context.Context, message string) error {
	if w.reportTo == "" {
		return nil
	}
	return w.SendText(ctx, w.reportTo, "TUBELINE SERVICE ERROR\n"+message)
}
