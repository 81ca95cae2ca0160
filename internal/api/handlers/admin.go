package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/freelanceshield/api/internal/api/dto"
	"github.com/freelanceshield/api/internal/api/middleware"
	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/domain/review"
	"github.com/freelanceshield/api/internal/domain/template"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/pkg/logger"
	"github.com/freelanceshield/api/internal/pkg/utils"
	"github.com/freelanceshield/api/internal/services"
)

// AdminHandler handles the admin back-office
type AdminHandler struct {
	admin     *services.AdminService
	profiles  profile.Service
	templates template.Service
	logger    *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(admin *services.AdminService, profiles profile.Service, templates template.Service, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		admin:     admin,
		profiles:  profiles,
		templates: templates,
		logger:    log,
	}
}

// requireAdmin loads the caller's profile and rejects non-admins. The
// token carries no role claim, so the role is checked against the
// database on every admin request.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return false
	}

	p, err := h.profiles.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get profile")
		return false
	}
	if !p.IsAdmin() {
		utils.WriteError(w, errors.Forbidden("Admin access required"))
		return false
	}
	return true
}

// ListUsers returns a filtered, paginated user listing
// @Summary List users
// @Tags Admin
// @Produce json
// @Param search query string false "Email substring filter"
// @Param plan query string false "Plan filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.PaginatedResponse "Users"
// @Failure 403 {object} utils.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	pagination := utils.ParsePaginationParams(r)
	users, total, err := h.profiles.List(r.Context(), profile.ListFilter{
		EmailSearch: r.URL.Query().Get("search"),
		Plan:        r.URL.Query().Get("plan"),
		Limit:       pagination.PageSize,
		Offset:      pagination.Offset,
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list users")
		return
	}

	items := make([]*dto.ProfileDTO, 0, len(users))
	for _, u := range users {
		items = append(items, dto.NewProfileDTO(u))
	}

	utils.WriteSuccess(w, http.StatusOK,
		utils.NewPaginatedResponse(items, pagination.Page, pagination.PageSize, total))
}

// UpdateUser changes a user's plan or role
// @Summary Update user
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.AdminUpdateUserRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse "User updated"
// @Failure 400 {object} utils.ErrorResponse "Invalid plan or role"
// @Security BearerAuth
// @Router /admin/users [patch]
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req dto.AdminUpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}
	if req.UserID == 0 {
		utils.WriteError(w, errors.BadRequest("userId is required"))
		return
	}

	if req.Plan != "" {
		if err := h.profiles.SetPlan(r.Context(), req.UserID, req.Plan); err != nil {
			writeServiceError(w, h.logger, err, "Failed to update plan")
			return
		}
	}
	if req.Role != "" {
		if err := h.profiles.SetRole(r.Context(), req.UserID, req.Role); err != nil {
			writeServiceError(w, h.logger, err, "Failed to update role")
			return
		}
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "User updated", nil)
}

// ListReviews returns a filtered, paginated cross-user review listing
// @Summary List all reviews
// @Tags Admin
// @Produce json
// @Param search query string false "File name substring filter"
// @Param status query string false "Status filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.PaginatedResponse "Reviews"
// @Security BearerAuth
// @Router /admin/reviews [get]
func (h *AdminHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	pagination := utils.ParsePaginationParams(r)
	reviews, total, err := h.admin.ListReviews(r.Context(), review.ListFilter{
		FileNameSearch: r.URL.Query().Get("search"),
		Status:         review.Status(r.URL.Query().Get("status")),
		Limit:          pagination.PageSize,
		Offset:         pagination.Offset,
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list reviews")
		return
	}

	items := make([]*dto.ReviewDTO, 0, len(reviews))
	for _, rev := range reviews {
		items = append(items, dto.NewReviewDTO(rev))
	}

	utils.WriteSuccess(w, http.StatusOK,
		utils.NewPaginatedResponse(items, pagination.Page, pagination.PageSize, total))
}

// DeleteReview removes any user's review
// @Summary Delete review
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.AdminDeleteReviewRequest true "Review to delete"
// @Success 200 {object} utils.SuccessResponse "Review deleted"
// @Security BearerAuth
// @Router /admin/reviews [delete]
func (h *AdminHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req dto.AdminDeleteReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}
	if req.ReviewID == 0 {
		utils.WriteError(w, errors.BadRequest("reviewId is required"))
		return
	}

	if err := h.admin.DeleteReview(r.Context(), req.ReviewID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete review")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Review deleted", nil)
}

// ListTemplates returns all templates, active or not
// @Summary List templates
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.TemplateDTO "Templates"
// @Security BearerAuth
// @Router /admin/templates [get]
func (h *AdminHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	templates, err := h.templates.List(r.Context(), false)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list templates")
		return
	}

	items := make([]*dto.TemplateDTO, 0, len(templates))
	for _, t := range templates {
		items = append(items, dto.NewTemplateDTO(t))
	}
	utils.WriteSuccess(w, http.StatusOK, items)
}

// CreateTemplate adds a new contract template
// @Summary Create template
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateTemplateRequest true "Template"
// @Success 201 {object} dto.TemplateDTO "Created template"
// @Failure 400 {object} utils.ErrorResponse "Missing name or content"
// @Security BearerAuth
// @Router /admin/templates [post]
func (h *AdminHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req dto.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	t, err := h.templates.Create(r.Context(), template.CreateInput{
		Name:           req.Name,
		Description:    req.Description,
		FreelancerType: req.FreelancerType,
		USState:        req.USState,
		Content:        req.Content,
		IsActive:       req.IsActive,
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to create template")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, dto.NewTemplateDTO(t))
}

// UpdateTemplate patches a contract template
// @Summary Update template
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param request body dto.UpdateTemplateRequest true "Fields to update"
// @Success 200 {object} dto.TemplateDTO "Updated template"
// @Security BearerAuth
// @Router /admin/templates/{id} [patch]
func (h *AdminHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	templateID, err := idParam(r, "id")
	if err != nil {
		utils.WriteError(w, err.(*errors.AppError))
		return
	}

	var req dto.UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	t, err := h.templates.Update(r.Context(), templateID, template.UpdateInput{
		Name:           req.Name,
		Description:    req.Description,
		FreelancerType: req.FreelancerType,
		USState:        req.USState,
		Content:        req.Content,
		IsActive:       req.IsActive,
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to update template")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.NewTemplateDTO(t))
}

// DeleteTemplate removes a contract template
// @Summary Delete template
// @Tags Admin
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} utils.SuccessResponse "Template deleted"
// @Security BearerAuth
// @Router /admin/templates/{id} [delete]
func (h *AdminHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	templateID, err := idParam(r, "id")
	if err != nil {
		utils.WriteError(w, err.(*errors.AppError))
		return
	}

	if err := h.templates.Delete(r.Context(), templateID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete template")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Template deleted", nil)
}

// GetStats returns the dashboard summary
// @Summary Admin stats
// @Tags Admin
// @Produce json
// @Success 200 {object} services.Stats "Dashboard summary"
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	stats, err := h.admin.GetStats(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get stats")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, stats)
}
