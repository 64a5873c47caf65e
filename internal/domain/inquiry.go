package domain

import (
	"time"

	"gorm.io/gorm"
)

// ContactInquiry represents a contact form submission
type ContactInquiry struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null" json:"firstName"`
	LastName  string    `gorm:"not null" json:"lastName"`
	Email     string    `gorm:"not null;index" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	Service   *string   `json:"service"`
	Message   *string   `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for ContactInquiry
func (ContactInquiry) TableName() string {
	return "contact_inquiries"
}

// BeforeCreate hook
func (c *ContactInquiry) BeforeCreate(tx *gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return nil
}
