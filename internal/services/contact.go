package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"hometownheating/internal/domain"
	"hometownheating/internal/metrics"
	"hometownheating/internal/storage"
	apperrors "hometownheating/pkg/errors"
)

// ContactSubmission is the contact form payload
type ContactSubmission struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
}

// ContactService implements the contact inquiry pipeline
type ContactService struct {
	repo         storage.ContactInquiries
	emailService *EmailService
}

// NewContactService creates a new contact service
func NewContactService(repo storage.ContactInquiries, emailService *EmailService) *ContactService {
	return &ContactService{
		repo:         repo,
		emailService: emailService,
	}
}

// Submit validates and stores a contact inquiry, then fires the operator
// notification. The notification is best-effort: its failure is logged and
// never reported to the caller, the record is already stored.
func (s *ContactService) Submit(ctx context.Context, p *ContactSubmission) (*domain.ContactInquiry, error) {
	log.Printf("[CONTACT] Submit request: name=%s %s, email=%s",
		strings.TrimSpace(p.FirstName), strings.TrimSpace(p.LastName), strings.TrimSpace(p.Email))

	// Validate input
	if fields := validateContactSubmission(p); len(fields) > 0 {
		log.Printf("[CONTACT] Submit failed: validation error: %d invalid field(s)", len(fields))
		return nil, apperrors.Validation("Invalid form data", fields)
	}

	// Create contact inquiry
	inquiry := &domain.ContactInquiry{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(p.FirstName),
		LastName:  strings.TrimSpace(p.LastName),
		Email:     strings.ToLower(strings.TrimSpace(p.Email)),
		Phone:     strings.TrimSpace(p.Phone),
		Service:   optionalString(p.Service),
		Message:   optionalString(p.Message),
		CreatedAt: time.Now().UTC(),
	}

	// Save to store
	if err := s.repo.Create(ctx, inquiry); err != nil {
		log.Printf("[CONTACT] Submit failed: storage error: %v", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeInternalError, "failed to save contact inquiry", err)
	}

	log.Printf("[CONTACT] Submit successful: id=%s, email=%s", inquiry.ID, inquiry.Email)
	metrics.RecordContactSubmission()

	// Send email notification to the operator (async, don't fail if email fails)
	go func() {
		if !s.emailService.IsEnabled() {
			log.Printf("[CONTACT] Email not configured, skipping notification for inquiry id=%s", inquiry.ID)
			metrics.RecordEmailNotification("skipped")
			return
		}
		if err := s.emailService.SendContactNotification(inquiry); err != nil {
			log.Printf("[CONTACT] Warning: failed to send notification email: %v", err)
			metrics.RecordEmailNotification("failed")
		} else {
			log.Printf("[CONTACT] Notification email sent for inquiry id=%s", inquiry.ID)
			metrics.RecordEmailNotification("sent")
		}
	}()

	return inquiry, nil
}

// List returns all contact inquiries, newest first
func (s *ContactService) List(ctx context.Context) ([]domain.ContactInquiry, error) {
	inquiries, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("[CONTACT] List failed: storage error: %v", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeInternalError, "failed to fetch contact inquiries", err)
	}
	log.Printf("[CONTACT] List successful: returned %d inquiries", len(inquiries))
	return inquiries, nil
}

// validateContactSubmission validates the contact form input
func validateContactSubmission(p *ContactSubmission) []apperrors.FieldError {
	var fields []apperrors.FieldError
	fields = appendRequiredName(fields, "firstName", p.FirstName)
	fields = appendRequiredName(fields, "lastName", p.LastName)
	fields = appendEmail(fields, p.Email)
	fields = appendPhone(fields, p.Phone)
	if len(strings.TrimSpace(p.Message)) > maxMessageLength {
		fields = append(fields, apperrors.FieldError{Field: "message", Message: "message must not exceed 5000 characters"})
	}
	return fields
}
