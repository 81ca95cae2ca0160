package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stripe/stripe-go/v79"

	"github.com/freelanceshield/api/internal/config"
	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/testutil"
)

func newBillingFixture() (*BillingService, *testutil.MockProfileRepository, *testutil.FakeNotifier) {
	repo := testutil.NewMockProfileRepository()
	notifier := &testutil.FakeNotifier{}
	svc := NewBillingService(repo, notifier, config.StripeConfig{
		SoloPriceID:   "price_solo",
		ProPriceID:    "price_pro",
		AgencyPriceID: "price_agency",
	}, "http://localhost:3000", testLogger())
	return svc, repo, notifier
}

func addBillingUser(repo *testutil.MockProfileRepository, customerID string) *profile.Profile {
	p := &profile.Profile{
		Email: "billing@example.com",
		Plan:  config.PlanFree,
	}
	if customerID != "" {
		p.StripeCustomerID = &customerID
	}
	_ = repo.Create(context.Background(), p)
	return p
}

func subscriptionEvent(t *testing.T, eventType, customerID, subID, priceID string, status stripe.SubscriptionStatus) stripe.Event {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{
		"id":       subID,
		"status":   status,
		"customer": map[string]string{"id": customerID},
		"items": map[string]interface{}{
			"data": []map[string]interface{}{
				{"price": map[string]string{"id": priceID}},
			},
		},
	})
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	return stripe.Event{
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestPlanForPriceID(t *testing.T) {
	svc, _, _ := newBillingFixture()

	tests := []struct {
		priceID string
		want    string
	}{
		{"price_agency", config.PlanAgency},
		{"price_pro", config.PlanPro},
		{"price_solo", config.PlanSolo},
		{"price_unknown", config.PlanSolo},
	}
	for _, tt := range tests {
		if got := svc.planForPriceID(tt.priceID); got != tt.want {
			t.Errorf("planForPriceID(%q) = %q, want %q", tt.priceID, got, tt.want)
		}
	}
}

func TestWebhookSubscriptionActivated(t *testing.T) {
	svc, repo, _ := newBillingFixture()
	p := addBillingUser(repo, "cus_1")

	event := subscriptionEvent(t, "customer.subscription.created", "cus_1", "sub_1", "price_pro", stripe.SubscriptionStatusActive)
	if err := svc.processEvent(context.Background(), event); err != nil {
		t.Fatalf("processEvent() error = %v", err)
	}

	got := repo.Profiles[p.ID]
	if got.Plan != config.PlanPro {
		t.Errorf("plan = %q, want pro", got.Plan)
	}
	if got.StripeSubscriptionID == nil || *got.StripeSubscriptionID != "sub_1" {
		t.Errorf("subscription id = %v, want sub_1", got.StripeSubscriptionID)
	}
}

func TestWebhookSubscriptionNotActiveDowngrades(t *testing.T) {
	svc, repo, _ := newBillingFixture()
	p := addBillingUser(repo, "cus_1")
	p.Plan = config.PlanPro

	event := subscriptionEvent(t, "customer.subscription.updated", "cus_1", "sub_1", "price_pro", stripe.SubscriptionStatusCanceled)
	if err := svc.processEvent(context.Background(), event); err != nil {
		t.Fatalf("processEvent() error = %v", err)
	}
	if repo.Profiles[p.ID].Plan != config.PlanFree {
		t.Errorf("plan = %q, want free", repo.Profiles[p.ID].Plan)
	}
}

func TestWebhookSubscriptionDeleted(t *testing.T) {
	svc, repo, _ := newBillingFixture()
	p := addBillingUser(repo, "cus_1")
	p.Plan = config.PlanAgency
	subID := "sub_1"
	p.StripeSubscriptionID = &subID

	event := subscriptionEvent(t, "customer.subscription.deleted", "cus_1", "sub_1", "price_agency", stripe.SubscriptionStatusCanceled)
	if err := svc.processEvent(context.Background(), event); err != nil {
		t.Fatalf("processEvent() error = %v", err)
	}

	got := repo.Profiles[p.ID]
	if got.Plan != config.PlanFree {
		t.Errorf("plan = %q, want free", got.Plan)
	}
	if got.StripeSubscriptionID != nil {
		t.Error("subscription id not cleared")
	}
}

func TestWebhookPaymentFailedOnlyNotifies(t *testing.T) {
	svc, repo, notifier := newBillingFixture()
	p := addBillingUser(repo, "cus_1")
	p.Plan = config.PlanPro

	raw, _ := json.Marshal(map[string]interface{}{
		"customer": map[string]string{"id": "cus_1"},
	})
	event := stripe.Event{
		Type: "invoice.payment_failed",
		Data: &stripe.EventData{Raw: raw},
	}
	if err := svc.processEvent(context.Background(), event); err != nil {
		t.Fatalf("processEvent() error = %v", err)
	}

	if len(notifier.PaymentFailed) != 1 {
		t.Errorf("payment failed emails = %d, want 1", len(notifier.PaymentFailed))
	}
	// A failed invoice alone never downgrades
	if repo.Profiles[p.ID].Plan != config.PlanPro {
		t.Errorf("plan = %q, want pro unchanged", repo.Profiles[p.ID].Plan)
	}
}

func TestWebhookCheckoutCompleted(t *testing.T) {
	svc, repo, _ := newBillingFixture()
	p := addBillingUser(repo, "")

	raw, _ := json.Marshal(map[string]interface{}{
		"customer": map[string]string{"id": "cus_new"},
		"metadata": map[string]string{"user_id": "1", "plan": "agency"},
	})
	event := stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}
	if err := svc.processEvent(context.Background(), event); err != nil {
		t.Fatalf("processEvent() error = %v", err)
	}

	got := repo.Profiles[p.ID]
	if got.Plan != config.PlanAgency {
		t.Errorf("plan = %q, want agency", got.Plan)
	}
	if got.StripeCustomerID == nil || *got.StripeCustomerID != "cus_new" {
		t.Errorf("customer id = %v, want cus_new", got.StripeCustomerID)
	}
}

func TestWebhookCheckoutDefaultsToSolo(t *testing.T) {
	svc, repo, _ := newBillingFixture()
	p := addBillingUser(repo, "")

	raw, _ := json.Marshal(map[string]interface{}{
		"metadata": map[string]string{"user_id": "1"},
	})
	event := stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}
	if err := svc.processEvent(context.Background(), event); err != nil {
		t.Fatalf("processEvent() error = %v", err)
	}
	if repo.Profiles[p.ID].Plan != config.PlanSolo {
		t.Errorf("plan = %q, want solo default", repo.Profiles[p.ID].Plan)
	}
}

func TestWebhookUnknownCustomerIsNoOp(t *testing.T) {
	svc, _, notifier := newBillingFixture()

	event := subscriptionEvent(t, "customer.subscription.created", "cus_missing", "sub_1", "price_pro", stripe.SubscriptionStatusActive)
	if err := svc.processEvent(context.Background(), event); err != nil {
		t.Fatalf("processEvent() for unknown customer must be a no-op, error = %v", err)
	}
	if len(notifier.PaymentFailed) != 0 {
		t.Error("no emails expected")
	}
}

func TestWebhookUnhandledEventIgnored(t *testing.T) {
	svc, _, _ := newBillingFixture()

	event := stripe.Event{
		Type: "customer.created",
		Data: &stripe.EventData{Raw: json.RawMessage(`{}`)},
	}
	if err := svc.processEvent(context.Background(), event); err != nil {
		t.Errorf("unhandled event must be acknowledged, error = %v", err)
	}
}

func TestPlanCatalog(t *testing.T) {
	catalog := PlanCatalog()
	if len(catalog) != 4 {
		t.Fatalf("catalog has %d plans, want 4", len(catalog))
	}
	prices := map[string]int{
		config.PlanFree:   0,
		config.PlanSolo:   29,
		config.PlanPro:    59,
		config.PlanAgency: 149,
	}
	for _, plan := range catalog {
		want, ok := prices[plan.ID]
		if !ok {
			t.Errorf("unexpected plan %q", plan.ID)
			continue
		}
		if plan.PriceMonthly != want {
			t.Errorf("%s price = %d, want %d", plan.ID, plan.PriceMonthly, want)
		}
		if len(plan.Features) == 0 {
			t.Errorf("%s has no feature list", plan.ID)
		}
	}
}
