package services

import (
	"context"
	"fmt"
	"html"

	"github.com/rs/zerolog/log"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
	"github.com/KAMASDM/franchise-sub002/internal/domain/providers"
)

// NotificationService sends transactional email around inquiries: a
// confirmation to the prospect and an alert to the marketplace inbox.
// Delivery failures are logged and swallowed; email never blocks or
// fails the inquiry itself.
type NotificationService struct {
	email      providers.EmailProvider
	adminInbox string
}

// NewNotificationService creates a new notification service
func NewNotificationService(email providers.EmailProvider, adminInbox string) *NotificationService {
	return &NotificationService{email: email, adminInbox: adminInbox}
}

// SendInquiryConfirmation emails the prospect that their inquiry was
// received.
func (s *NotificationService) SendInquiryConfirmation(ctx context.Context, inquiry *entities.Inquiry, brand *entities.Brand) {
	if s.email == nil || inquiry.Email == "" {
		return
	}

	name := html.EscapeString(inquiry.Name)
	brandName := html.EscapeString(brand.BrandName)

	msg := providers.EmailMessage{
		To:      []string{inquiry.Email},
		Subject: fmt.Sprintf("Your inquiry about %s", brand.BrandName),
		HTMLBody: fmt.Sprintf(
			"<p>Hi %s,</p><p>Thanks for your interest in <strong>%s</strong>. "+
				"The franchise team has received your inquiry and will reach out shortly.</p>",
			name, brandName),
		TextBody: fmt.Sprintf(
			"Hi %s,\n\nThanks for your interest in %s. "+
				"The franchise team has received your inquiry and will reach out shortly.\n",
			inquiry.Name, brand.BrandName),
	}

	s.send(ctx, msg, inquiry.BrandID, "inquiry confirmation")
}

// SendInquiryAlert emails the brand contact (falling back to the admin
// inbox) that a new inquiry arrived.
func (s *NotificationService) SendInquiryAlert(ctx context.Context, inquiry *entities.Inquiry, brand *entities.Brand) {
	if s.email == nil {
		return
	}

	to := brand.Contact.Email
	if to == "" {
		to = s.adminInbox
	}
	if to == "" {
		return
	}

	msg := providers.EmailMessage{
		To:      []string{to},
		Subject: fmt.Sprintf("New franchise inquiry for %s", brand.BrandName),
		HTMLBody: fmt.Sprintf(
			"<p>New inquiry for <strong>%s</strong>:</p>"+
				"<ul><li>Name: %s</li><li>Email: %s</li><li>Phone: %s</li></ul><p>%s</p>",
			html.EscapeString(brand.BrandName),
			html.EscapeString(inquiry.Name),
			html.EscapeString(inquiry.Email),
			html.EscapeString(inquiry.Phone),
			html.EscapeString(inquiry.Message)),
		TextBody: fmt.Sprintf(
			"New inquiry for %s:\nName: %s\nEmail: %s\nPhone: %s\n\n%s\n",
			brand.BrandName, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Message),
	}

	s.send(ctx, msg, inquiry.BrandID, "inquiry alert")
}

func (s *NotificationService) send(ctx context.Context, msg providers.EmailMessage, brandID, kind string) {
	messageID, err := s.email.Send(ctx, msg)
	if err != nil {
		log.Warn().Err(err).
			Str("brand_id", brandID).
			Str("kind", kind).
			Msg("failed to send email")
		return
	}
	log.Debug().
		Str("brand_id", brandID).
		Str("kind", kind).
		Str("message_id", messageID).
		Msg("email sent")
}
