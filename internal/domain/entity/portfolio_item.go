package entity

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioItem is an append-only showcase entry. The auto-increment ID
// doubles as the append order.
type PortfolioItem struct {
	ID                int64     `gorm:"primaryKey;autoIncrement"`
	ProviderProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL          string    `gorm:"type:text;not null"`
	Description       string    `gorm:"type:varchar(200)"`
	UploadedAt        time.Time `gorm:"not null"`
}

func (PortfolioItem) TableName() string {
	return "portfolio_items"
}
