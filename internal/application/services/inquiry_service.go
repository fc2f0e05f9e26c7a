package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
	"github.com/KAMASDM/franchise-sub002/internal/domain/providers"
	"github.com/KAMASDM/franchise-sub002/internal/domain/repositories"
	apperrors "github.com/KAMASDM/franchise-sub002/pkg/errors"
)

// InquiryService persists franchise inquiries and triggers the email
// notifications around them.
type InquiryService struct {
	inquiries repositories.InquiryRepository
	brands    repositories.BrandRepository
	notifier  *NotificationService
	eventBus  providers.EventBus
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(
	inquiries repositories.InquiryRepository,
	brands repositories.BrandRepository,
	notifier *NotificationService,
) *InquiryService {
	return &InquiryService{
		inquiries: inquiries,
		brands:    brands,
		notifier:  notifier,
	}
}

// SetEventBus enables interaction event publishing.
func (s *InquiryService) SetEventBus(bus providers.EventBus) {
	s.eventBus = bus
}

// Create validates and stores an inquiry, then fires the confirmation
// and alert emails in the background. The inquiry succeeds even when
// email delivery does not.
func (s *InquiryService) Create(ctx context.Context, inquiry *entities.Inquiry) (*entities.Inquiry, error) {
	if inquiry == nil {
		return nil, apperrors.NewValidationError("inquiry payload is required")
	}
	if strings.TrimSpace(inquiry.Name) == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if !strings.Contains(inquiry.Email, "@") {
		return nil, apperrors.NewValidationError("a valid email is required")
	}

	brand, err := s.brands.GetByID(ctx, inquiry.BrandID)
	if err != nil {
		return nil, err
	}

	inquiry.ID = uuid.New().String()
	inquiry.CreatedAt = time.Now()
	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, inquiry.BrandID, inquiry.SessionID)

	if s.notifier != nil {
		stored := *inquiry
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			s.notifier.SendInquiryConfirmation(ctx, &stored, brand)
			s.notifier.SendInquiryAlert(ctx, &stored, brand)
		}()
	}

	return inquiry, nil
}

// ListBySession retrieves a session's inquiries, newest first.
func (s *InquiryService) ListBySession(ctx context.Context, sessionID string) ([]*entities.Inquiry, error) {
	return s.inquiries.ListBySession(ctx, sessionID)
}

func (s *InquiryService) publishEvent(ctx context.Context, brandID, sessionID string) {
	if s.eventBus == nil {
		return
	}
	event := &entities.BrandEvent{
		ID:        uuid.New().String(),
		Type:      entities.BrandInquired,
		BrandID:   brandID,
		SessionID: sessionID,
		CreatedAt: time.Now(),
	}
	if err := s.eventBus.Publish(ctx, providers.EventChannelBrandUpdates, event); err != nil {
		log.Warn().Err(err).Str("brand_id", brandID).Msg("failed to publish inquiry event")
	}
}
