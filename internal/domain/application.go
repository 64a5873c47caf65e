package domain

import (
	"time"

	"gorm.io/gorm"
)

// StatusPending is the status every new application starts in. Later
// transitions are free-form strings set by the operator.
const StatusPending = "pending"

// ComfortClubApplication represents a Comfort Club membership application
type ComfortClubApplication struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"not null" json:"firstName"`
	LastName    string    `gorm:"not null" json:"lastName"`
	Email       string    `gorm:"not null;index" json:"email"`
	Phone       string    `gorm:"not null" json:"phone"`
	Address     *string   `json:"address"`
	SystemCount *string   `json:"systemCount"`
	SystemTypes *string   `json:"systemTypes"`
	Message     *string   `gorm:"type:text" json:"message"`
	Status      string    `gorm:"default:'pending'" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName specifies the table name for ComfortClubApplication
func (ComfortClubApplication) TableName() string {
	return "comfort_club_applications"
}

// BeforeCreate hook
func (a *ComfortClubApplication) BeforeCreate(tx *gorm.DB) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}
