// Package storage defines the repository interfaces behind which form
// submissions are persisted. The default implementation keeps records in
// process memory; a gorm-backed implementation can be substituted without
// touching the submission pipeline.
package storage

import (
	"context"
	"errors"

	"hometownheating/internal/domain"
)

// ErrNotFound is returned when a record id does not exist in the store.
var ErrNotFound = errors.New("record not found")

// ContactInquiries stores contact form submissions.
type ContactInquiries interface {
	Create(ctx context.Context, inquiry *domain.ContactInquiry) error
	List(ctx context.Context) ([]domain.ContactInquiry, error)
}

// Applications stores Comfort Club membership applications.
type Applications interface {
	Create(ctx context.Context, app *domain.ComfortClubApplication) error
	List(ctx context.Context) ([]domain.ComfortClubApplication, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.ComfortClubApplication, error)
}

// Store bundles the repositories for wiring.
type Store struct {
	ContactInquiries ContactInquiries
	Applications     Applications
}
