package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KAMASDM/franchise-sub002/internal/api/handlers"
	"github.com/KAMASDM/franchise-sub002/internal/application/services"
	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
)

func newInquiryHandler() (*handlers.InquiryHandler, *memEmail) {
	brands := &memBrandRepo{brands: []*entities.Brand{
		{ID: "b1", BrandName: "Pizza Hut", Category: "Food",
			Contact: entities.Contact{Email: "franchise@pizzahut.example"}, IsActive: true},
	}}
	email := &memEmail{}
	notifier := services.NewNotificationService(email, "admin@marketplace.example")
	svc := services.NewInquiryService(&memInquiryRepo{}, brands, notifier)
	return handlers.NewInquiryHandler(svc), email
}

func TestSubmitInquiry(t *testing.T) {
	handler, _ := newInquiryHandler()

	body := `{"brand_id":"b1","name":"Asha","email":"asha@example.com","message":"Interested"}`
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(body))
	req.Header.Set("X-Session-ID", "s1")
	rec := httptest.NewRecorder()

	handler.SubmitInquiry(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var inquiry entities.Inquiry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inquiry))
	assert.NotEmpty(t, inquiry.ID)
	assert.Equal(t, "s1", inquiry.SessionID)
}

func TestSubmitInquiry_ValidationErrors(t *testing.T) {
	handler, _ := newInquiryHandler()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"invalid json", `{`, http.StatusBadRequest},
		{"missing name", `{"brand_id":"b1","email":"a@b.c"}`, http.StatusBadRequest},
		{"bad email", `{"brand_id":"b1","name":"Asha","email":"nope"}`, http.StatusBadRequest},
		{"unknown brand", `{"brand_id":"nope","name":"Asha","email":"a@b.c"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(tt.body))
			req.Header.Set("X-Session-ID", "s1")
			rec := httptest.NewRecorder()

			handler.SubmitInquiry(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestListInquiries_RequiresSession(t *testing.T) {
	handler, _ := newInquiryHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	rec := httptest.NewRecorder()

	handler.ListInquiries(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
