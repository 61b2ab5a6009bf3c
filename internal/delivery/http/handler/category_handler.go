package handler

import (
	"net/http"

	"local-services-marketplace/internal/usecase"
	"local-services-marketplace/pkg/response"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUsecase
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase}
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUsecase.ListActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Error fetching categories")
		return
	}

	response.Success(w, http.StatusOK, "Categories retrieved successfully", categories)
}
