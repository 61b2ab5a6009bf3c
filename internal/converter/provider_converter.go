package converter

import (
	"local-services-marketplace/internal/delivery/dto"
	"local-services-marketplace/internal/domain/entity"
	"local-services-marketplace/pkg/phone"
)

// ProviderProfileToResponse converts a ProviderProfile entity to ProviderProfileResponse DTO.
// Owner is included only when it was preloaded.
func ProviderProfileToResponse(profile *entity.ProviderProfile) *dto.ProviderProfileResponse {
	if profile == nil {
		return nil
	}

	response := &dto.ProviderProfileResponse{
		ID:       profile.ID,
		OwnerID:  profile.OwnerID,
		Category: profile.Category,
		Bio:      profile.Bio,
		Location: dto.LocationResponse{
			State: profile.Location.State,
			City:  profile.Location.City,
			LGA:   profile.Location.LGA,
		},
		Contact: dto.ContactResponse{
			Phone:    profile.Contact.Phone,
			WhatsApp: profile.Contact.WhatsApp,
			Email:    profile.Contact.Email,
		},
		Portfolio: PortfolioItemsToResponses(profile.Portfolio),
		Rating: dto.RatingResponse{
			Average: profile.RatingAverage.InexactFloat64(),
			Count:   profile.RatingCount,
		},
		IsVerified: profile.IsVerified,
		IsActive:   profile.IsActive,
		CreatedAt:  profile.CreatedAt,
		UpdatedAt:  profile.UpdatedAt,
	}

	if profile.Owner != nil {
		response.Owner = &dto.ProviderOwnerResponse{
			ID:        profile.Owner.ID,
			Name:      profile.Owner.Name,
			Email:     profile.Owner.Email,
			CreatedAt: profile.Owner.CreatedAt,
		}
	}

	return response
}

// ProviderProfilesToResponses converts a slice of ProviderProfile entities to slice of ProviderProfileResponse DTOs
func ProviderProfilesToResponses(profiles []entity.ProviderProfile) []dto.ProviderProfileResponse {
	responses := make([]dto.ProviderProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = *ProviderProfileToResponse(&profiles[i])
	}
	return responses
}

// ProviderProfileToPublicResponse adds the contact hand-off links. message,
// when set, pre-fills the WhatsApp chat.
func ProviderProfileToPublicResponse(profile *entity.ProviderProfile, message string) *dto.PublicProviderResponse {
	if profile == nil {
		return nil
	}

	whatsappURL := phone.WhatsAppURL(profile.Contact.WhatsApp, message)
	return &dto.PublicProviderResponse{
		ProviderProfileResponse: *ProviderProfileToResponse(profile),
		WhatsAppURL:             whatsappURL,
		ContactLinks: dto.ContactLinksResponse{
			WhatsApp: whatsappURL,
			Phone:    phone.TelURL(profile.Contact.Phone),
			Email:    phone.MailtoURL(profile.Contact.Email),
		},
	}
}

func PortfolioItemToResponse(item *entity.PortfolioItem) *dto.PortfolioItemResponse {
	if item == nil {
		return nil
	}
	return &dto.PortfolioItemResponse{
		ID:          item.ID,
		ImageURL:    item.ImageURL,
		Description: item.Description,
		UploadedAt:  item.UploadedAt,
	}
}

func PortfolioItemsToResponses(items []entity.PortfolioItem) []dto.PortfolioItemResponse {
	responses := make([]dto.PortfolioItemResponse, len(items))
	for i := range items {
		responses[i] = *PortfolioItemToResponse(&items[i])
	}
	return responses
}
