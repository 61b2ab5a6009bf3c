package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LocationRequest struct {
	State string `json:"state" validate:"required,max=100"`
	City  string `json:"city" validate:"required,max=100"`
	LGA   string `json:"lga" validate:"required,max=100"`
}

type ContactRequest struct {
	Phone    string `json:"phone" validate:"required,ngphone"`
	WhatsApp string `json:"whatsapp" validate:"required,ngphone"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=255"`
}

// ProviderProfileRequest is the body of both profile create and full update
type ProviderProfileRequest struct {
	Category string          `json:"category" validate:"required,max=150"`
	Bio      string          `json:"bio" validate:"required,min=10,max=1000"`
	Location LocationRequest `json:"location"`
	Contact  ContactRequest  `json:"contact"`
}

type PortfolioItemRequest struct {
	ImageURL    string `json:"imageUrl" validate:"required"`
	Description string `json:"description,omitempty" validate:"max=200"`
}

// Query DTOs

type ProviderListQuery struct {
	Page  int
	Limit int
}

type ProviderSearchQuery struct {
	Category string
	State    string
	LGA      string
	Keyword  string
	Page     int
	Limit    int
}

// Response DTOs

type LocationResponse struct {
	State string `json:"state"`
	City  string `json:"city"`
	LGA   string `json:"lga"`
}

type ContactResponse struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email,omitempty"`
}

type RatingResponse struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type PortfolioItemResponse struct {
	ID          int64     `json:"id"`
	ImageURL    string    `json:"imageUrl"`
	Description string    `json:"description"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

type ProviderOwnerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProviderProfileResponse struct {
	ID         uuid.UUID               `json:"id"`
	OwnerID    uuid.UUID               `json:"ownerId"`
	Owner      *ProviderOwnerResponse  `json:"owner,omitempty"`
	Category   string                  `json:"category"`
	Bio        string                  `json:"bio"`
	Location   LocationResponse        `json:"location"`
	Contact    ContactResponse         `json:"contact"`
	Portfolio  []PortfolioItemResponse `json:"portfolio"`
	Rating     RatingResponse          `json:"rating"`
	IsVerified bool                    `json:"isVerified"`
	IsActive   bool                    `json:"isActive"`
	CreatedAt  time.Time               `json:"createdAt"`
	UpdatedAt  time.Time               `json:"updatedAt"`
}

type ContactLinksResponse struct {
	WhatsApp string `json:"whatsapp"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
}

// PublicProviderResponse is the customer-facing detail view
type PublicProviderResponse struct {
	ProviderProfileResponse
	WhatsAppURL  string               `json:"whatsappUrl"`
	ContactLinks ContactLinksResponse `json:"contactLinks"`
}

type PaginationResponse struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

type SearchParamsResponse struct {
	Category string `json:"category,omitempty"`
	State    string `json:"state,omitempty"`
	LGA      string `json:"lga,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
}

type ProviderListResponse struct {
	Providers    []ProviderProfileResponse `json:"providers"`
	Pagination   PaginationResponse        `json:"pagination"`
	SearchParams *SearchParamsResponse     `json:"searchParams,omitempty"`
}
