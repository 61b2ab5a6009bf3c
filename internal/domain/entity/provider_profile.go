package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProviderProfile is the public face of a provider account. Each owner has at
// most one profile; the unique index on owner_id enforces it in storage.
type ProviderProfile struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_provider_profiles_owner_id"`
	Category      string          `gorm:"type:varchar(150);not null;index"`
	Bio           string          `gorm:"type:text;not null"`
	Location      Location        `gorm:"embedded;embeddedPrefix:location_"`
	Contact       Contact         `gorm:"embedded;embeddedPrefix:contact_"`
	RatingAverage decimal.Decimal `gorm:"type:decimal(3,2);not null"`
	RatingCount   int             `gorm:"not null"`
	IsVerified    bool            `gorm:"not null"`
	IsActive      bool            `gorm:"not null;index"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime"`

	// Relationships
	Owner     *User           `gorm:"foreignKey:OwnerID"`
	Portfolio []PortfolioItem `gorm:"foreignKey:ProviderProfileID"`
}

func (ProviderProfile) TableName() string {
	return "provider_profiles"
}

func (p *ProviderProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Location is where a provider operates. LGA is the Local Government Area.
type Location struct {
	State string `gorm:"type:varchar(100);not null;index"`
	City  string `gorm:"type:varchar(100);not null"`
	LGA   string `gorm:"column:lga;type:varchar(100);not null;index"`
}

// Contact holds the channels a customer is handed off to.
type Contact struct {
	Phone    string `gorm:"type:varchar(20);not null"`
	WhatsApp string `gorm:"column:whatsapp;type:varchar(20);not null"`
	Email    string `gorm:"type:varchar(255)"`
}
