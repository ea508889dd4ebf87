package whatsapp

import "time"

const (
	// graphAPIURLTemplate is the Cloud API messages endpoint: base URL + phone number ID.
	graphAPIURLTemplate = "%s/%s/messages"

	DefaultBaseURL = "https://graph.facebook.com/v19.0"

	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 2 * time.Second

	UserAgent = "Tubeline-Bot/1.0"

	// MaxBodyLength is the Cloud API limit for a text message body.
	MaxBodyLength = 4096
)

const messagingProduct = "whatsapp"
