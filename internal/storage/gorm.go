package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hometownheating/internal/domain"
)

// GormContactInquiries is a database-backed ContactInquiries repository.
type GormContactInquiries struct {
	db *gorm.DB
}

func (r *GormContactInquiries) Create(ctx context.Context, inquiry *domain.ContactInquiry) error {
	if err := r.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return fmt.Errorf("failed to save contact inquiry: %w", err)
	}
	return nil
}

func (r *GormContactInquiries) List(ctx context.Context) ([]domain.ContactInquiry, error) {
	var inquiries []domain.ContactInquiry
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch contact inquiries: %w", err)
	}
	return inquiries, nil
}

// GormApplications is a database-backed Applications repository.
type GormApplications struct {
	db *gorm.DB
}

func (r *GormApplications) Create(ctx context.Context, app *domain.ComfortClubApplication) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return fmt.Errorf("failed to save application: %w", err)
	}
	return nil
}

func (r *GormApplications) List(ctx context.Context) ([]domain.ComfortClubApplication, error) {
	var apps []domain.ComfortClubApplication
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}
	return apps, nil
}

func (r *GormApplications) UpdateStatus(ctx context.Context, id, status string) (*domain.ComfortClubApplication, error) {
	var app domain.ComfortClubApplication
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&app).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	app.Status = status
	return &app, nil
}

// NewGormStore builds a Store backed by the given database connection.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		ContactInquiries: &GormContactInquiries{db: db},
		Applications:     &GormApplications{db: db},
	}
}
