package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/stripe/stripe-go/v79"
	portalsession "github.com/stripe/stripe-go/v79/billingportal/session"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/customer"
	"github.com/stripe/stripe-go/v79/subscription"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/freelanceshield/api/internal/config"
	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/pkg/logger"
	"github.com/freelanceshield/api/internal/pkg/metrics"
)

// PlanDetail is a catalog entry shown on the pricing surface.
type PlanDetail struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PriceMonthly int      `json:"price_monthly"`
	Features     []string `json:"features"`
}

// PlanCatalog returns the public plan catalog.
func PlanCatalog() []PlanDetail {
	return []PlanDetail{
		{
			ID:           config.PlanFree,
			Name:         "Free",
			PriceMonthly: 0,
			Features: []string{
				"1 contract review per month",
				"Top 3 riskiest clauses",
				"Overall risk score",
			},
		},
		{
			ID:           config.PlanSolo,
			Name:         "Solo",
			PriceMonthly: 29,
			Features: []string{
				"Unlimited contract reviews",
				"Full clause-by-clause analysis",
				"Suggested edits for every clause",
				"Contract template library",
			},
		},
		{
			ID:           config.PlanPro,
			Name:         "Pro",
			PriceMonthly: 59,
			Features: []string{
				"Everything in Solo",
				"Negotiation coaching per clause",
				"Payment demand letters",
				"Priority analysis",
			},
		},
		{
			ID:           config.PlanAgency,
			Name:         "Agency",
			PriceMonthly: 149,
			Features: []string{
				"Everything in Pro",
				"Team seats",
				"Shared review history",
				"Dedicated support",
			},
		},
	}
}

// BillingService handles Stripe checkout, portal, and webhook
// reconciliation.
type BillingService struct {
	profiles profile.Repository
	notifier Notifier
	cfg      config.StripeConfig
	appURL   string
	logger   *logger.Logger
}

// NewBillingService creates a billing service and wires the Stripe key
func NewBillingService(profiles profile.Repository, notifier Notifier, cfg config.StripeConfig, appURL string, log *logger.Logger) *BillingService {
	stripe.Key = cfg.SecretKey
	return &BillingService{
		profiles: profiles,
		notifier: notifier,
		cfg:      cfg,
		appURL:   appURL,
		logger:   log,
	}
}

func (s *BillingService) priceIDFor(plan string) string {
	switch plan {
	case config.PlanSolo:
		return s.cfg.SoloPriceID
	case config.PlanPro:
		return s.cfg.ProPriceID
	case config.PlanAgency:
		return s.cfg.AgencyPriceID
	}
	return ""
}

// planForPriceID maps a Stripe price back to a plan tier. Unknown
// prices resolve to solo so a paying customer is never left on free.
func (s *BillingService) planForPriceID(priceID string) string {
	switch priceID {
	case s.cfg.AgencyPriceID:
		return config.PlanAgency
	case s.cfg.ProPriceID:
		return config.PlanPro
	}
	return config.PlanSolo
}

// CreateCheckout starts a subscription checkout session and returns its URL
func (s *BillingService) CreateCheckout(ctx context.Context, userID int64, plan string) (string, error) {
	priceID := s.priceIDFor(plan)
	if priceID == "" {
		return "", errors.BadRequest("Invalid plan")
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	customerID, err := s.ensureCustomer(ctx, p, plan)
	if err != nil {
		return "", errors.Upstream("Failed to prepare billing", err)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer: stripe.String(customerID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.appURL + "/dashboard?upgraded=true"),
		CancelURL:  stripe.String(s.appURL + "/settings?canceled=true"),
		Metadata: map[string]string{
			"user_id": strconv.FormatInt(p.ID, 10),
			"plan":    plan,
		},
	}
	sess, err := session.New(params)
	if err != nil {
		return "", errors.Upstream("Failed to create checkout session", err)
	}
	return sess.URL, nil
}

// ensureCustomer finds or creates the Stripe customer for a profile.
func (s *BillingService) ensureCustomer(ctx context.Context, p *profile.Profile, plan string) (string, error) {
	if p.StripeCustomerID != nil && *p.StripeCustomerID != "" {
		return *p.StripeCustomerID, nil
	}

	cust, err := customer.New(&stripe.CustomerParams{
		Email: stripe.String(p.Email),
		Metadata: map[string]string{
			"user_id": strconv.FormatInt(p.ID, 10),
			"plan":    plan,
		},
	})
	if err != nil {
		return "", err
	}

	p.StripeCustomerID = &cust.ID
	if err := s.profiles.Update(ctx, p); err != nil {
		return "", err
	}
	return cust.ID, nil
}

// CreatePortal opens a customer portal session and returns its URL
func (s *BillingService) CreatePortal(ctx context.Context, userID int64) (string, error) {
	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if p.StripeCustomerID == nil || *p.StripeCustomerID == "" {
		return "", errors.BadRequest("No Stripe customer found")
	}

	sess, err := portalsession.New(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(*p.StripeCustomerID),
		ReturnURL: stripe.String(s.appURL + "/settings"),
	})
	if err != nil {
		return "", errors.Upstream("Failed to create portal session", err)
	}
	return sess.URL, nil
}

// CancelSubscription cancels a Stripe subscription immediately
func (s *BillingService) CancelSubscription(ctx context.Context, subscriptionID string) error {
	_, err := subscription.Cancel(subscriptionID, nil)
	return err
}

// HandleWebhook verifies and processes a Stripe webhook event.
func (s *BillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.cfg.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		metrics.RecordWebhookEvent("unknown", "invalid_signature")
		return errors.BadRequest("Invalid webhook signature")
	}

	eventType := string(event.Type)
	if err := s.processEvent(ctx, event); err != nil {
		metrics.RecordWebhookEvent(eventType, "error")
		return err
	}
	metrics.RecordWebhookEvent(eventType, "ok")
	return nil
}

func (s *BillingService) processEvent(ctx context.Context, event stripe.Event) error {
	switch event.Type {
	case "customer.subscription.created", "customer.subscription.updated":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return errors.BadRequest("Invalid subscription payload")
		}
		return s.reconcileSubscription(ctx, &sub)

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return errors.BadRequest("Invalid subscription payload")
		}
		return s.clearSubscription(ctx, &sub)

	case "invoice.payment_failed":
		var inv stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return errors.BadRequest("Invalid invoice payload")
		}
		return s.notifyPaymentFailed(ctx, &inv)

	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return errors.BadRequest("Invalid session payload")
		}
		return s.applyCheckout(ctx, &sess)
	}

	// Unhandled events are acknowledged without action.
	return nil
}

// reconcileSubscription syncs plan state from a subscription event. A
// non-active subscription drops the profile back to free.
func (s *BillingService) reconcileSubscription(ctx context.Context, sub *stripe.Subscription) error {
	p, ok := s.profileForCustomer(ctx, sub.Customer)
	if !ok {
		return nil
	}

	if sub.Status == stripe.SubscriptionStatusActive {
		priceID := ""
		if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
			priceID = sub.Items.Data[0].Price.ID
		}
		p.Plan = s.planForPriceID(priceID)
		p.StripeSubscriptionID = &sub.ID
	} else {
		p.Plan = config.PlanFree
	}

	if err := s.profiles.Update(ctx, p); err != nil {
		return err
	}
	s.logger.WithFields(map[string]interface{}{
		"user_id": p.ID,
		"plan":    p.Plan,
		"status":  string(sub.Status),
	}).Info("Subscription reconciled")
	return nil
}

func (s *BillingService) clearSubscription(ctx context.Context, sub *stripe.Subscription) error {
	p, ok := s.profileForCustomer(ctx, sub.Customer)
	if !ok {
		return nil
	}

	p.Plan = config.PlanFree
	p.StripeSubscriptionID = nil
	if err := s.profiles.Update(ctx, p); err != nil {
		return err
	}
	s.logger.WithFields(map[string]interface{}{"user_id": p.ID}).Info("Subscription cancelled, downgraded to free")
	return nil
}

// notifyPaymentFailed emails the user. The plan is left untouched; the
// subscription.updated event handles any eventual downgrade.
func (s *BillingService) notifyPaymentFailed(ctx context.Context, inv *stripe.Invoice) error {
	p, ok := s.profileForCustomer(ctx, inv.Customer)
	if !ok {
		return nil
	}
	s.notifier.SendPaymentFailed(p.Email)
	return nil
}

// applyCheckout upgrades the user named in the session metadata.
func (s *BillingService) applyCheckout(ctx context.Context, sess *stripe.CheckoutSession) error {
	userID, err := strconv.ParseInt(sess.Metadata["user_id"], 10, 64)
	if err != nil {
		s.logger.Warn("Checkout session missing user_id metadata")
		return nil
	}

	plan := sess.Metadata["plan"]
	if !config.IsValidPlan(plan) {
		plan = config.PlanSolo
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		s.logger.WithFields(map[string]interface{}{"user_id": userID}).Warn("Checkout completed for unknown user")
		return nil
	}

	p.Plan = plan
	if sess.Customer != nil && sess.Customer.ID != "" {
		p.StripeCustomerID = &sess.Customer.ID
	}
	if err := s.profiles.Update(ctx, p); err != nil {
		return err
	}
	s.logger.WithFields(map[string]interface{}{
		"user_id": p.ID,
		"plan":    plan,
	}).Info("Checkout completed, plan upgraded")
	return nil
}

// profileForCustomer resolves a webhook's customer reference to a
// profile. Unknown customers are a no-op so replayed or test events
// never fail the webhook.
func (s *BillingService) profileForCustomer(ctx context.Context, cust *stripe.Customer) (*profile.Profile, bool) {
	if cust == nil || cust.ID == "" {
		return nil, false
	}
	p, err := s.profiles.GetByStripeCustomerID(ctx, cust.ID)
	if err != nil {
		s.logger.WithFields(map[string]interface{}{"customer_id": cust.ID}).Warn("Webhook for unknown Stripe customer")
		return nil, false
	}
	return p, true
}
