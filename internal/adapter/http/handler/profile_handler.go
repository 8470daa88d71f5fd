package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/khatadesk/khata/internal/adapter/http/dto"
	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// ProfileService defines the behavior needed by ProfileHandler.
type ProfileService interface {
	CreateProfile(ctx context.Context, input usecase.CreateProfileInput) (*domain.Profile, error)
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)
	GetActiveProfile(ctx context.Context) (*domain.Profile, error)
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*domain.Profile, error)
	Activate(ctx context.Context, id string) error
	DeleteProfile(ctx context.Context, id string) error
}

// ProfileHandler handles business profile HTTP requests.
type ProfileHandler struct {
	profileUC ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileUC ProfileService) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC}
}

// Create creates a new profile.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	profile, err := h.profileUC.CreateProfile(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create profile", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

// Get retrieves a profile by ID.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	profile, err := h.profileUC.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get profile", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// GetActive returns the currently active profile.
func (h *ProfileHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUC.GetActiveProfile(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get active profile", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// List lists all profiles.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileUC.ListProfiles(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list profiles", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(profiles))
}

// Update updates a profile's details. The active flag is only changed
// through Activate.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	profile, err := h.profileUC.UpdateProfile(r.Context(), usecase.UpdateProfileInput{
		ID:           chi.URLParam(r, "id"),
		BusinessName: req.BusinessName,
		Address:      req.Address,
		Phone:        req.Phone,
		Type:         req.Type,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update profile", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Activate makes the profile the active one.
func (h *ProfileHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.profileUC.Activate(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to activate profile", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a profile.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.profileUC.DeleteProfile(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete profile", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
