package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/freelanceshield/api/internal/api/dto"
	"github.com/freelanceshield/api/internal/api/middleware"
	"github.com/freelanceshield/api/internal/config"
	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/domain/template"
	"github.com/freelanceshield/api/internal/pdf"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/pkg/logger"
	"github.com/freelanceshield/api/internal/pkg/utils"
)

// TemplateHandler handles the contract template library
type TemplateHandler struct {
	templates template.Service
	profiles  profile.Service
	renderer  *pdf.Renderer
	logger    *logger.Logger
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templates template.Service, profiles profile.Service, renderer *pdf.Renderer, log *logger.Logger) *TemplateHandler {
	return &TemplateHandler{
		templates: templates,
		profiles:  profiles,
		renderer:  renderer,
		logger:    log,
	}
}

// List returns the active template catalog
// @Summary List contract templates
// @Tags Templates
// @Produce json
// @Success 200 {array} dto.TemplateDTO "Active templates"
// @Security BearerAuth
// @Router /templates [get]
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templates.List(r.Context(), true)
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

// Download renders a template as a branded, fillable PDF
// @Summary Download template PDF
// @Description Render the template into a paginated PDF (paid plans only)
// @Tags Templates
// @Produce application/pdf
// @Param id path int true "Template ID"
// @Success 200 {file} binary "Rendered PDF"
// @Failure 403 {object} utils.ErrorResponse "Solo plan required"
// @Failure 404 {object} utils.ErrorResponse "Template not found"
// @Security BearerAuth
// @Router /templates/{id}/download [get]
func (h *TemplateHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	p, err := h.profiles.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get profile")
		return
	}
	if !config.IsPaidPlan(p.Plan) {
		utils.WriteError(w, errors.Forbidden("Solo plan required"))
		return
	}

	templateID, err := idParam(r, "id")
	if err != nil {
		utils.WriteError(w, err.(*errors.AppError))
		return
	}

	t, err := h.templates.GetActive(r.Context(), templateID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get template")
		return
	}

	data, err := h.renderer.RenderTemplate(t.Name, t.Content)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to render template PDF")
		utils.WriteError(w, errors.Internal("Failed to render template", err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", slugify(t.Name)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

var slugInvalidRe = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	slug := slugInvalidRe.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
