package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"hometownheating/internal/domain"
	"hometownheating/internal/metrics"
	"hometownheating/internal/storage"
	apperrors "hometownheating/pkg/errors"
)

// ClubApplicationSubmission is the Comfort Club application payload
type ClubApplicationSubmission struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	SystemCount string `json:"systemCount"`
	SystemTypes string `json:"systemTypes"`
	Message     string `json:"message"`
}

// ComfortClubService implements the membership application pipeline
type ComfortClubService struct {
	repo         storage.Applications
	emailService *EmailService
}

// NewComfortClubService creates a new Comfort Club service
func NewComfortClubService(repo storage.Applications, emailService *EmailService) *ComfortClubService {
	return &ComfortClubService{
		repo:         repo,
		emailService: emailService,
	}
}

// Submit validates and stores a membership application, then fires the
// operator notification without awaiting it.
func (s *ComfortClubService) Submit(ctx context.Context, p *ClubApplicationSubmission) (*domain.ComfortClubApplication, error) {
	log.Printf("[CLUB] Submit request: name=%s %s, email=%s",
		strings.TrimSpace(p.FirstName), strings.TrimSpace(p.LastName), strings.TrimSpace(p.Email))

	// Validate input
	if fields := validateClubSubmission(p); len(fields) > 0 {
		log.Printf("[CLUB] Submit failed: validation error: %d invalid field(s)", len(fields))
		return nil, apperrors.Validation("Invalid application data", fields)
	}

	// Create application
	app := &domain.ComfortClubApplication{
		ID:          uuid.NewString(),
		FirstName:   strings.TrimSpace(p.FirstName),
		LastName:    strings.TrimSpace(p.LastName),
		Email:       strings.ToLower(strings.TrimSpace(p.Email)),
		Phone:       strings.TrimSpace(p.Phone),
		Address:     optionalString(p.Address),
		SystemCount: optionalString(p.SystemCount),
		SystemTypes: optionalString(p.SystemTypes),
		Message:     optionalString(p.Message),
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	// Save to store
	if err := s.repo.Create(ctx, app); err != nil {
		log.Printf("[CLUB] Submit failed: storage error: %v", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeInternalError, "failed to save application", err)
	}

	log.Printf("[CLUB] Submit successful: id=%s, email=%s", app.ID, app.Email)
	metrics.RecordClubApplication()

	// Send email notification to the operator (async, don't fail if email fails)
	go func() {
		if !s.emailService.IsEnabled() {
			log.Printf("[CLUB] Email not configured, skipping notification for application id=%s", app.ID)
			metrics.RecordEmailNotification("skipped")
			return
		}
		if err := s.emailService.SendApplicationNotification(app); err != nil {
			log.Printf("[CLUB] Warning: failed to send notification email: %v", err)
			metrics.RecordEmailNotification("failed")
		} else {
			log.Printf("[CLUB] Notification email sent for application id=%s", app.ID)
			metrics.RecordEmailNotification("sent")
		}
	}()

	return app, nil
}

// List returns all applications, newest first
func (s *ComfortClubService) List(ctx context.Context) ([]domain.ComfortClubApplication, error) {
	apps, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("[CLUB] List failed: storage error: %v", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeInternalError, "failed to fetch applications", err)
	}
	log.Printf("[CLUB] List successful: returned %d applications", len(apps))
	return apps, nil
}

// UpdateStatus replaces the status of an application. Any non-empty string
// is accepted; the status field is free-form operator tagging.
func (s *ComfortClubService) UpdateStatus(ctx context.Context, id, status string) (*domain.ComfortClubApplication, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, apperrors.Validation("Status is required and must be a string", []apperrors.FieldError{
			{Field: "status", Message: "status is required"},
		})
	}

	app, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("[CLUB] UpdateStatus failed: application not found: id=%s", id)
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "Application not found")
		}
		log.Printf("[CLUB] UpdateStatus failed: storage error: %v", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeInternalError, "failed to update application status", err)
	}

	log.Printf("[CLUB] UpdateStatus successful: id=%s, status=%s", id, status)
	metrics.RecordClubStatusUpdate()
	return app, nil
}

// validateClubSubmission validates the membership application input
func validateClubSubmission(p *ClubApplicationSubmission) []apperrors.FieldError {
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
