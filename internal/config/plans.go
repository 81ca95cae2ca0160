package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan identifiers. These are stored on profiles and matched against
// Stripe price metadata, so the strings are part of the data contract.
const (
	PlanFree   = "free"
	PlanSolo   = "solo"
	PlanPro    = "pro"
	PlanAgency = "agency"
)

// PlanLimits describes what a subscription tier is allowed to do.
// ReviewsPerMonth of -1 means unlimited.
type PlanLimits struct {
	ReviewsPerMonth int  `yaml:"reviews_per_month"`
	FullClauses     bool `yaml:"full_clauses"`
	SuggestedEdits  bool `yaml:"suggested_edits"`
	Coaching        bool `yaml:"coaching"`
}

// PlanConfig is the immutable plan table injected into services.
type PlanConfig struct {
	Limits map[string]PlanLimits `yaml:"plans"`

	// FreeClauseLimit caps how many clauses a free-plan report shows.
	FreeClauseLimit int `yaml:"free_clause_limit"`

	// ReviewsPerHour is the rolling-hour creation cap applied to every
	// plan, counted from persisted review rows.
	ReviewsPerHour int `yaml:"reviews_per_hour"`
}

// DefaultPlans returns the built-in plan table.
func DefaultPlans() PlanConfig {
	return PlanConfig{
		Limits: map[string]PlanLimits{
			PlanFree:   {ReviewsPerMonth: 1, FullClauses: false, SuggestedEdits: false, Coaching: false},
			PlanSolo:   {ReviewsPerMonth: -1, FullClauses: true, SuggestedEdits: true, Coaching: false},
			PlanPro:    {ReviewsPerMonth: -1, FullClauses: true, SuggestedEdits: true, Coaching: true},
			PlanAgency: {ReviewsPerMonth: -1, FullClauses: true, SuggestedEdits: true, Coaching: true},
		},
		FreeClauseLimit: 3,
		ReviewsPerHour:  10,
	}
}

// LoadPlans returns the default plan table, optionally overridden from a
// yaml file. An empty path means defaults only.
func LoadPlans(path string) (PlanConfig, error) {
	plans := DefaultPlans()
	if path == "" {
		return plans, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return PlanConfig{}, fmt.Errorf("reading plans file: %w", err)
	}
	if err := yaml.Unmarshal(data, &plans); err != nil {
		return PlanConfig{}, fmt.Errorf("parsing plans file: %w", err)
	}

	for _, plan := range []string{PlanFree, PlanSolo, PlanPro, PlanAgency} {
		if _, ok := plans.Limits[plan]; !ok {
			return PlanConfig{}, fmt.Errorf("plans file missing plan %q", plan)
		}
	}
	return plans, nil
}

// LimitsFor returns the limits for a plan, falling back to free for
// unknown values.
func (p PlanConfig) LimitsFor(plan string) PlanLimits {
	if limits, ok := p.Limits[plan]; ok {
		return limits
	}
	return p.Limits[PlanFree]
}

// IsValidPlan reports whether plan names a known tier.
func IsValidPlan(plan string) bool {
	switch plan {
	case PlanFree, PlanSolo, PlanPro, PlanAgency:
		return true
	}
	return false
}

// IsPaidPlan reports whether plan is a paying tier.
func IsPaidPlan(plan string) bool {
	return plan == PlanSolo || plan == PlanPro || plan == PlanAgency
}
