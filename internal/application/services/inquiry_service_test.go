package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
)

func newInquiryFixture() (*InquiryService, *fakeInquiryRepo, *fakeEmailProvider) {
	brands := newFakeBrandRepo(&entities.Brand{
		ID:        "b1",
		BrandName: "Pizza Hut",
		Contact:   entities.Contact{Email: "franchise@pizzahut.example"},
		IsActive:  true,
	})
	inquiries := &fakeInquiryRepo{}
	email := &fakeEmailProvider{}
	notifier := NewNotificationService(email, "admin@marketplace.example")
	return NewInquiryService(inquiries, brands, notifier), inquiries, email
}

func TestInquiry_CreatePersistsAndNotifies(t *testing.T) {
	svc, repo, email := newInquiryFixture()

	inquiry, err := svc.Create(context.Background(), &entities.Inquiry{
		SessionID: "s1",
		BrandID:   "b1",
		Name:      "Asha",
		Email:     "asha@example.com",
		Message:   "Interested in a Pune location",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, inquiry.ID)
	assert.False(t, inquiry.CreatedAt.IsZero())

	stored, err := repo.ListBySession(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, len(stored))

	// Confirmation to the prospect plus alert to the brand contact.
	assert.Eventually(t, func() bool {
		msgs := email.messages()
		if len(msgs) != 2 {
			return false
		}
		return msgs[0].To[0] == "asha@example.com" &&
			msgs[1].To[0] == "franchise@pizzahut.example"
	}, time.Second, 10*time.Millisecond)
}

func TestInquiry_ValidationRejectsBadInput(t *testing.T) {
	svc, repo, _ := newInquiryFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, nil)
	assert.Error(t, err)

	_, err = svc.Create(ctx, &entities.Inquiry{BrandID: "b1", Email: "a@b.c"})
	assert.Error(t, err) // missing name

	_, err = svc.Create(ctx, &entities.Inquiry{BrandID: "b1", Name: "Asha", Email: "not-an-email"})
	assert.Error(t, err)

	_, err = svc.Create(ctx, &entities.Inquiry{BrandID: "nope", Name: "Asha", Email: "a@b.c"})
	assert.Error(t, err) // unknown brand

	stored, err := repo.ListBySession(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestNotification_AlertFallsBackToAdminInbox(t *testing.T) {
	email := &fakeEmailProvider{}
	notifier := NewNotificationService(email, "admin@marketplace.example")

	notifier.SendInquiryAlert(context.Background(),
		&entities.Inquiry{BrandID: "b1", Name: "Asha", Email: "a@b.c"},
		&entities.Brand{ID: "b1", BrandName: "Pizza Hut"})

	msgs := email.messages()
	require.Equal(t, 1, len(msgs))
	assert.Equal(t, "admin@marketplace.example", msgs[0].To[0])
}

func TestNotification_SkipsWhenNoRecipient(t *testing.T) {
	email := &fakeEmailProvider{}
	notifier := NewNotificationService(email, "")

	notifier.SendInquiryAlert(context.Background(),
		&entities.Inquiry{BrandID: "b1"},
		&entities.Brand{ID: "b1", BrandName: "Pizza Hut"})
	notifier.SendInquiryConfirmation(context.Background(),
		&entities.Inquiry{BrandID: "b1"},
		&entities.Brand{ID: "b1", BrandName: "Pizza Hut"})

	assert.Empty(t, email.messages())
}
