package whatsapp

import (
	"context"

	"tubeline-api/pkg/log"
)

// IWhatsApp sends outbound WhatsApp messages through the Meta Cloud API.
type IWhatsApp interface {
	SendText(ctx context.Context, to, body string) error
	SendTemplate(ctx context.Context, to, name, languageCode string, components []TemplateComponent) error
	ReportBug(ctx context.Context, message string) error
	Close() error
}

// Credentials identifies the business phone number used as sender.
type Credentials struct {
	PhoneNumberID string
	AccessToken   string
	// ReportTo is the admin number internal error reports are sent to. Optional.
	ReportTo string
}

// New creates a Cloud API client. Logger can be nil, logging is skipped then.
func New(l log.Logger, creds Credentials) (IWhatsApp, error) {
	if creds.PhoneNumberID == "" || creds.AccessToken == "" {
		return nil, errCredentialsRequired
	}
	cfg := DefaultConfig()
	return &whatsappImpl{
		l:             l,
		phoneNumberID: creds.PhoneNumberID,
		accessToken:   creds.AccessToken,
		reportTo:      creds.ReportTo,
		config:        cfg,
		client:        newHTTPClient(cfg.Timeout),
	}, nil
}
