package handler

import (
	"errors"
	"net/http"

	"local-services-marketplace/internal/delivery/dto"
	"local-services-marketplace/internal/delivery/http/middleware"
	domainerrors "local-services-marketplace/internal/domain/errors"
	"local-services-marketplace/internal/usecase"
	"local-services-marketplace/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ProviderHandler struct {
	searchUsecase  usecase.ProviderSearchUsecase
	profileUsecase usecase.ProviderProfileUsecase
	auditUsecase   usecase.AuditLogUsecase
}

func NewProviderHandler(
	searchUsecase usecase.ProviderSearchUsecase,
	profileUsecase usecase.ProviderProfileUsecase,
	auditUsecase usecase.AuditLogUsecase,
) *ProviderHandler {
	return &ProviderHandler{
		searchUsecase:  searchUsecase,
		profileUsecase: profileUsecase,
		auditUsecase:   auditUsecase,
	}
}

// ListProviders handles GET /providers
func (h *ProviderHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.searchUsecase.List(r.Context(), dto.ProviderListQuery{
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	})
	if err != nil {
		response.InternalServerError(w, "Error fetching providers")
		return
	}

	response.Success(w, http.StatusOK, "Providers retrieved successfully", providers)
}

// SearchProviders handles GET /providers/search
func (h *ProviderHandler) SearchProviders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	providers, err := h.searchUsecase.Search(r.Context(), dto.ProviderSearchQuery{
		Category: q.Get("category"),
		State:    q.Get("state"),
		LGA:      q.Get("lga"),
		Keyword:  q.Get("keyword"),
		Page:     queryInt(r, "page"),
		Limit:    queryInt(r, "limit"),
	})
	if err != nil {
		response.InternalServerError(w, "Error searching providers")
		return
	}

	response.Success(w, http.StatusOK, "Providers retrieved successfully", providers)
}

// GetProvider handles GET /providers/{id}
func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	profileID, ok := parseProfileID(w, r)
	if !ok {
		return
	}

	provider, err := h.profileUsecase.GetPublic(r.Context(), profileID, r.URL.Query().Get("message"))
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.NotFound(w, "Provider not found")
		default:
			response.InternalServerError(w, "Error fetching provider profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Provider retrieved successfully", provider)
}

// CreateProfile handles POST /providers/profile
func (h *ProviderHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.ProviderProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.profileUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		switch {
		case errors.Is(err, domainerrors.ErrConflict):
			response.BadRequest(w, "Provider profile already exists")
		default:
			response.InternalServerError(w, "Error creating provider profile")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Provider profile created successfully", profile)
}

// UpdateProfile handles PUT /providers/{id}/profile
func (h *ProviderHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profileID, ok := parseProfileID(w, r)
	if !ok {
		return
	}

	var req dto.ProviderProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.profileUsecase.Update(r.Context(), profileID, userID, &req)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.NotFound(w, "Provider profile not found")
		case errors.Is(err, domainerrors.ErrForbidden):
			response.Forbidden(w, "Access denied. You can only update your own profile.")
		default:
			response.InternalServerError(w, "Error updating provider profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}

// AddPortfolioItem handles POST /providers/{id}/portfolio
func (h *ProviderHandler) AddPortfolioItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profileID, ok := parseProfileID(w, r)
	if !ok {
		return
	}

	var req dto.PortfolioItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.profileUsecase.AddPortfolioItem(r.Context(), profileID, userID, &req)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.NotFound(w, "Provider profile not found")
		case errors.Is(err, domainerrors.ErrForbidden):
			response.Forbidden(w, "Access denied. You can only update your own portfolio.")
		default:
			response.InternalServerError(w, "Error adding portfolio item")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Portfolio item added successfully", item)
}

// GetMyProfile handles GET /providers/me/profile
func (h *ProviderHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profile, err := h.profileUsecase.GetMine(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.NotFound(w, "Provider profile not found")
		default:
			response.InternalServerError(w, "Error fetching provider profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Provider profile retrieved successfully", profile)
}

// GetMyActivity handles GET /providers/me/activity
func (h *ProviderHandler) GetMyActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	logs, err := h.auditUsecase.ListMine(r.Context(), userID, queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		response.InternalServerError(w, "Failed to get activity")
		return
	}

	response.Success(w, http.StatusOK, "Activity retrieved successfully", logs)
}

func parseProfileID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	profileID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid provider ID")
		return uuid.Nil, false
	}
	return profileID, true
}
