package providers

import "context"

// EmailMessage is a transactional email handed to the gateway.
type EmailMessage struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// EmailProvider defines the interface for the transactional email
// gateway. Send returns the gateway-assigned message ID.
type EmailProvider interface {
	Send(ctx context.Context, msg EmailMessage) (string, error)
}
