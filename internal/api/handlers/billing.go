package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/freelanceshield/api/internal/api/dto"
	"github.com/freelanceshield/api/internal/api/middleware"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/pkg/logger"
	"github.com/freelanceshield/api/internal/pkg/utils"
	"github.com/freelanceshield/api/internal/services"
)

// maxWebhookBody caps the Stripe webhook payload size.
const maxWebhookBody = int64(65536)

// BillingHandler handles subscription and payment requests
type BillingHandler struct {
	billing *services.BillingService
	logger  *logger.Logger
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billing *services.BillingService, log *logger.Logger) *BillingHandler {
	return &BillingHandler{
		billing: billing,
		logger:  log,
	}
}

// ListPlans returns the public plan catalog
// @Summary List subscription plans
// @Tags Billing
// @Produce json
// @Success 200 {array} services.PlanDetail "Plan catalog"
// @Router /billing/plans [get]
func (h *BillingHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, services.PlanCatalog())
}

// CreateCheckout starts a hosted checkout session
// @Summary Create checkout session
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.CheckoutRequest true "Plan selection"
// @Success 200 {object} dto.CheckoutResponse "Checkout URL"
// @Failure 400 {object} utils.ErrorResponse "Invalid plan"
// @Security BearerAuth
// @Router /billing/checkout [post]
func (h *BillingHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	url, err := h.billing.CreateCheckout(r.Context(), userID, req.Plan)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to create checkout session")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.CheckoutResponse{URL: url})
}

// CreatePortal opens the customer billing portal
// @Summary Create billing portal session
// @Tags Billing
// @Produce json
// @Success 200 {object} dto.CheckoutResponse "Portal URL"
// @Failure 400 {object} utils.ErrorResponse "No Stripe customer found"
// @Security BearerAuth
// @Router /billing/portal [post]
func (h *BillingHandler) CreatePortal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	url, err := h.billing.CreatePortal(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to create portal session")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.CheckoutResponse{URL: url})
}

// Webhook processes Stripe events
// @Summary Stripe webhook
// @Description Verify and apply subscription lifecycle events
// @Tags Billing
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse "Event processed"
// @Failure 400 {object} utils.ErrorResponse "Invalid signature or payload"
// @Router /billing/webhook [post]
func (h *BillingHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		utils.WriteError(w, errors.BadRequest("Missing Stripe-Signature header"))
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid payload"))
		return
	}

	if err := h.billing.HandleWebhook(r.Context(), payload, signature); err != nil {
		writeServiceError(w, h.logger, err, "Failed to process webhook")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
