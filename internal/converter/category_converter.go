package converter

import (
	"local-services-marketplace/internal/delivery/dto"
	"local-services-marketplace/internal/domain/entity"
)

func CategoriesToResponses(categories []entity.Category) []dto.CategoryResponse {
	responses := make([]dto.CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = dto.CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		}
	}
	return responses
}
