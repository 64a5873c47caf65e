package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hometownheating/internal/config"
	"hometownheating/internal/storage"
	apperrors "hometownheating/pkg/errors"
)

// disabledEmail is an email service with no credentials: notifications
// are skipped, which is the valid default configuration.
func disabledEmail() *EmailService {
	return NewEmailService(&config.EmailConfig{NotifyEmail: "ops@example.com"})
}

func validContact() *ContactSubmission {
	return &ContactSubmission{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "Jane.Doe@Example.com",
		Phone:     "613-555-0100",
		Service:   "Furnaces",
		Message:   "My furnace is making a rattling noise.",
	}
}

func TestContactSubmit(t *testing.T) {
	repo := storage.NewMemoryContactInquiries()
	svc := NewContactService(repo, disabledEmail())

	inquiry, err := svc.Submit(context.Background(), validContact())
	require.NoError(t, err)
	require.NotNil(t, inquiry)

	assert.NotEmpty(t, inquiry.ID)
	assert.False(t, inquiry.CreatedAt.IsZero())
	assert.Equal(t, "jane.doe@example.com", inquiry.Email, "email is normalized to lowercase")
	require.NotNil(t, inquiry.Service)
	assert.Equal(t, "Furnaces", *inquiry.Service)

	// The record is visible on the read path with matching values.
	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inquiry.ID, got[0].ID)
	assert.Equal(t, "Jane", got[0].FirstName)
}

func TestContactSubmitOptionalFieldsNull(t *testing.T) {
	repo := storage.NewMemoryContactInquiries()
	svc := NewContactService(repo, disabledEmail())

	p := validContact()
	p.Service = "  "
	p.Message = ""

	inquiry, err := svc.Submit(context.Background(), p)
	require.NoError(t, err)
	assert.Nil(t, inquiry.Service)
	assert.Nil(t, inquiry.Message)
}

func TestContactSubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ContactSubmission)
		field  string
	}{
		{"missing first name", func(p *ContactSubmission) { p.FirstName = "" }, "firstName"},
		{"missing last name", func(p *ContactSubmission) { p.LastName = "   " }, "lastName"},
		{"missing email", func(p *ContactSubmission) { p.Email = "" }, "email"},
		{"malformed email", func(p *ContactSubmission) { p.Email = "not-an-email" }, "email"},
		{"missing phone", func(p *ContactSubmission) { p.Phone = "" }, "phone"},
		{"malformed phone", func(p *ContactSubmission) { p.Phone = "call me maybe" }, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := storage.NewMemoryContactInquiries()
			svc := NewContactService(repo, disabledEmail())

			p := validContact()
			tt.mutate(p)

			_, err := svc.Submit(context.Background(), p)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))

			fields := apperrors.ValidationFields(err)
			require.NotEmpty(t, fields)
			assert.Equal(t, tt.field, fields[0].Field)

			// Nothing may be stored on validation failure.
			got, err := svc.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestContactSubmitDistinctIDs(t *testing.T) {
	repo := storage.NewMemoryContactInquiries()
	svc := NewContactService(repo, disabledEmail())

	first, err := svc.Submit(context.Background(), validContact())
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), validContact())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
