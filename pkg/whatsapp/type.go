package whatsapp

import (
	"net/http"
	"time"

	"tubeline-api/pkg/log"
)

// Config holds timeout and retry settings for the Cloud API client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
}

// messagePayload is the Cloud API request body for outbound messages.
type messagePayload struct {
	MessagingProduct string           `json:"messaging_product"`
	To               string           `json:"to"`
	Type             string           `json:"type"`
	Text             *textBody        `json:"text,omitempty"`
	Template         *templatePayload `json:"template,omitempty"`
}

type textBody struct {
	Body string `json:"body"`
}

type templatePayload struct {
	Name       string              `json:"name"`
	Language   templateLanguage    `json:"language"`
	Components []TemplateComponent `json:"components,omitempty"`
}

type templateLanguage struct {
	Code string `json:"code"`
}

// TemplateComponent is one component of a pre-approved message template.
type TemplateComponent struct {
	Type       string              `json:"type"`
	Parameters []TemplateParameter `json:"parameters,omitempty"`
}

// TemplateParameter is a single substitution value in a template component.
type TemplateParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// whatsappImpl implements IWhatsApp against the Meta Cloud API.
type whatsappImpl struct {
	l             log.Logger
	phoneNumberID string
	accessToken   string
	reportTo      string // admin number for internal error reports, optional
	config        Config
	client        *http.Client
}
