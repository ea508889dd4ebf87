package whatsapp

import "errors"

var (
	errCredentialsRequired = errors.New("whatsapp: phone number ID and access token are required")

	// ErrEmptyRecipient is returned when a message is sent without a destination number.
	ErrEmptyRecipient = errors.New("whatsapp: recipient number is empty")
)
