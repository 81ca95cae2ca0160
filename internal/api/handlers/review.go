package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/freelanceshield/api/internal/api/dto"
	"github.com/freelanceshield/api/internal/api/middleware"
	"github.com/freelanceshield/api/internal/domain/review"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/pkg/logger"
	"github.com/freelanceshield/api/internal/pkg/utils"
)

// ReviewHandler handles contract review requests
type ReviewHandler struct {
	reviews   review.Service
	maxUpload int64
	logger    *logger.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews review.Service, maxUpload int64, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews:   reviews,
		maxUpload: maxUpload,
		logger:    log,
	}
}

// Create uploads a contract PDF and runs the analysis flow
// @Summary Submit a contract for review
// @Description Upload a PDF, extract its text, and run clause-level risk analysis
// @Tags Reviews
// @Accept mpfd
// @Produce json
// @Param file formData file true "Contract PDF"
// @Param freelancer_type formData string false "Freelancer type override"
// @Param us_state formData string false "US state override"
// @Success 200 {object} dto.ReviewDTO "Completed review"
// @Failure 413 {object} utils.ErrorResponse "File too large"
// @Failure 422 {object} utils.ErrorResponse "Unreadable or non-contract document"
// @Failure 429 {object} utils.ErrorResponse "Quota or rate limit reached"
// @Security BearerAuth
// @Router /reviews [post]
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	// Reject oversized bodies before buffering the upload
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+1024)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		utils.WriteError(w, errors.PayloadTooLarge("File too large. Maximum size is 10MB."))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, errors.BadRequest("No file provided"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Failed to read uploaded file"))
		return
	}

	result, err := h.reviews.Create(r.Context(), review.CreateInput{
		UserID:         userID,
		FileName:       header.Filename,
		FileData:       data,
		FreelancerType: r.FormValue("freelancer_type"),
		USState:        r.FormValue("us_state"),
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to create review")
		return
	}

	// 200 rather than 201: the response is the finished analysis, not a
	// pointer to an async job.
	utils.WriteSuccess(w, http.StatusOK, dto.NewReviewDTO(result))
}

// List returns the caller's review history
// @Summary List reviews
// @Tags Reviews
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.PaginatedResponse "Review history"
// @Security BearerAuth
// @Router /reviews [get]
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	pagination := utils.ParsePaginationParams(r)
	reviews, total, err := h.reviews.List(r.Context(), userID, pagination.PageSize, pagination.Offset)
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

// Get returns the plan-gated report for one review
// @Summary Get review report
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} dto.ReportResponse "Report"
// @Failure 404 {object} utils.ErrorResponse "Review not found"
// @Security BearerAuth
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	reviewID, err := idParam(r, "id")
	if err != nil {
		utils.WriteError(w, err.(*errors.AppError))
		return
	}

	report, err := h.reviews.GetReport(r.Context(), userID, reviewID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get report")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.NewReportResponse(report))
}

// Share creates or returns a public share token for a review
// @Summary Share review
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} dto.ShareResponse "Share token"
// @Security BearerAuth
// @Router /reviews/{id}/share [post]
func (h *ReviewHandler) Share(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	reviewID, err := idParam(r, "id")
	if err != nil {
		utils.WriteError(w, err.(*errors.AppError))
		return
	}

	token, err := h.reviews.Share(r.Context(), userID, reviewID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to share review")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.ShareResponse{ShareToken: token})
}

// Negotiate generates coaching for one clause
// @Summary Negotiation coaching
// @Description Generate negotiation guidance for a flagged clause (Pro and Agency)
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param request body dto.NegotiateRequest true "Clause selection"
// @Success 200 {object} review.Coaching "Coaching"
// @Failure 403 {object} utils.ErrorResponse "Plan does not include coaching"
// @Security BearerAuth
// @Router /reviews/{id}/negotiate [post]
func (h *ReviewHandler) Negotiate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	reviewID, err := idParam(r, "id")
	if err != nil {
		utils.WriteError(w, err.(*errors.AppError))
		return
	}

	var req dto.NegotiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}
	if req.ClauseID == 0 {
		utils.WriteError(w, errors.BadRequest("clause_id is required"))
		return
	}

	coaching, err := h.reviews.Negotiate(r.Context(), userID, reviewID, req.ClauseID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to generate coaching")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, coaching)
}

// Delete removes the caller's review
// @Summary Delete review
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} utils.SuccessResponse "Review deleted"
// @Security BearerAuth
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	reviewID, err := idParam(r, "id")
	if err != nil {
		utils.WriteError(w, err.(*errors.AppError))
		return
	}

	if err := h.reviews.Delete(r.Context(), userID, reviewID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete review")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Review deleted", nil)
}

// Shared returns the public limited view of a shared review
// @Summary Get shared review
// @Description Public clause-limited view of a review by its share token
// @Tags Reviews
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} dto.ReportResponse "Shared report"
// @Failure 404 {object} utils.ErrorResponse "Unknown share token"
// @Router /shared/{token} [get]
func (h *ReviewHandler) Shared(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		utils.WriteError(w, errors.BadRequest("Missing share token"))
		return
	}

	report, err := h.reviews.GetSharedReport(r.Context(), token)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get shared report")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.NewReportResponse(report))
}
