package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/KAMASDM/franchise-sub002/internal/application/services"
	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
)

// InquiryHandler handles franchise inquiry HTTP requests
type InquiryHandler struct {
	inquiries *services.InquiryService
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiries *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

// SubmitInquiry handles POST /api/inquiries
func (h *InquiryHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		BrandID string `json:"brand_id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inquiry, err := h.inquiries.Create(r.Context(), &entities.Inquiry{
		SessionID: sessionID(r),
		BrandID:   payload.BrandID,
		Name:      payload.Name,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Message:   payload.Message,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, inquiry)
}

// ListInquiries handles GET /api/inquiries
func (h *InquiryHandler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		respondWithError(w, http.StatusBadRequest, "session ID is required")
		return
	}

	inquiries, err := h.inquiries.ListBySession(r.Context(), sid)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"inquiries": inquiries,
		"count":     len(inquiries),
	})
}
