package usecase

import (
	"strings"

	"local-services-marketplace/internal/delivery/dto"
	domainerrors "local-services-marketplace/internal/domain/errors"
	"local-services-marketplace/pkg/validator"
)

// validate runs struct validation and turns every failing field into one
// *errors.ValidationError.
func validate(v *validator.CustomValidator, req interface{}) error {
	err := v.Validate(req)
	if err == nil {
		return nil
	}
	fields := v.FormatValidationErrors(err)
	if len(fields) == 0 {
		return err
	}
	return domainerrors.NewValidationError(fields)
}

func trimProfileRequest(req *dto.ProviderProfileRequest) {
	req.Category = strings.TrimSpace(req.Category)
	req.Bio = strings.TrimSpace(req.Bio)
	req.Location.State = strings.TrimSpace(req.Location.State)
	req.Location.City = strings.TrimSpace(req.Location.City)
	req.Location.LGA = strings.TrimSpace(req.Location.LGA)
	req.Contact.Phone = strings.TrimSpace(req.Contact.Phone)
	req.Contact.WhatsApp = strings.TrimSpace(req.Contact.WhatsApp)
	req.Contact.Email = strings.ToLower(strings.TrimSpace(req.Contact.Email))
}

func trimPortfolioRequest(req *dto.PortfolioItemRequest) {
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	req.Description = strings.TrimSpace(req.Description)
}
