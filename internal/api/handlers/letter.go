package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/freelanceshield/api/internal/api/dto"
	"github.com/freelanceshield/api/internal/api/middleware"
	"github.com/freelanceshield/api/internal/llm"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/pkg/logger"
	"github.com/freelanceshield/api/internal/pkg/utils"
	"github.com/freelanceshield/api/internal/services"
)

// LetterHandler handles payment demand letter requests
type LetterHandler struct {
	letters *services.LetterService
	logger  *logger.Logger
}

// NewLetterHandler creates a new letter handler
func NewLetterHandler(letters *services.LetterService, log *logger.Logger) *LetterHandler {
	return &LetterHandler{
		letters: letters,
		logger:  log,
	}
}

// Generate drafts a payment demand letter
// @Summary Generate demand letter
// @Description Draft a firm payment demand letter for an overdue invoice (Pro and Agency)
// @Tags Letters
// @Accept json
// @Produce json
// @Param request body dto.DemandLetterRequest true "Overdue invoice details"
// @Success 200 {object} dto.DemandLetterResponse "Generated letter"
// @Failure 400 {object} utils.ErrorResponse "Missing required fields"
// @Failure 403 {object} utils.ErrorResponse "Plan does not include demand letters"
// @Security BearerAuth
// @Router /demand-letter [post]
func (h *LetterHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	var req dto.DemandLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	letter, err := h.letters.Generate(r.Context(), userID, llm.DemandLetterInput{
		ClientName:         req.ClientName,
		ProjectName:        req.ProjectName,
		ProjectDescription: req.ProjectDescription,
		AmountOwed:         req.AmountOwed,
		PaymentDueDate:     req.PaymentDueDate,
		PastDueDays:        req.PastDueDays,
		FreelancerName:     req.FreelancerName,
		USState:            req.USState,
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to generate letter")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.DemandLetterResponse{Letter: letter})
}
