package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/freelanceshield/api/internal/api/dto"
	"github.com/freelanceshield/api/internal/api/middleware"
	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/pkg/logger"
	"github.com/freelanceshield/api/internal/pkg/utils"
)

// ProfileHandler handles profile settings requests
type ProfileHandler struct {
	profiles profile.Service
	logger   *logger.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles profile.Service, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		logger:   log,
	}
}

// Get returns the caller's profile
// @Summary Get profile
// @Tags Profile
// @Produce json
// @Success 200 {object} dto.ProfileDTO "Profile"
// @Security BearerAuth
// @Router /profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	p, err := h.profiles.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to load profile")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.NewProfileDTO(p))
}

// Update patches the caller's profile settings
// @Summary Update profile
// @Description Update freelancer type and US state
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.ProfileDTO "Updated profile"
// @Failure 400 {object} utils.ErrorResponse "No valid fields to update"
// @Security BearerAuth
// @Router /profile [patch]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	p, err := h.profiles.Update(r.Context(), userID, profile.UpdateInput{
		FreelancerType: req.FreelancerType,
		USState:        req.USState,
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to update profile")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.NewProfileDTO(p))
}

// Delete removes the caller's account
// @Summary Delete account
// @Description Cancel any subscription and permanently delete the account
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.SuccessResponse "Account deleted"
// @Security BearerAuth
// @Router /profile [delete]
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	if err := h.profiles.Delete(r.Context(), userID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete account")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Account deleted", nil)
}
