package repositories

import (
	"context"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
)

// InquiryRepository defines the interface for inquiry persistence
type InquiryRepository interface {
	// Create stores a franchise inquiry
	Create(ctx context.Context, inquiry *entities.Inquiry) error

	// ListBySession retrieves a session's inquiries, newest first
	ListBySession(ctx context.Context, sessionID string) ([]*entities.Inquiry, error)
}
