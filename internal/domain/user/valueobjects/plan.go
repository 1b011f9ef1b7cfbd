package valueobjects

import (
	"fmt"
	"strings"
)

// SubscriptionPlan is the billing tier of an account.
type SubscriptionPlan string

const (
	PlanFree       SubscriptionPlan = "free"
	PlanPro        SubscriptionPlan = "pro"
	PlanEnterprise SubscriptionPlan = "enterprise"
)

var validPlans = map[SubscriptionPlan]bool{
	PlanFree:       true,
	PlanPro:        true,
	PlanEnterprise: true,
}

func (p SubscriptionPlan) String() string {
	return string(p)
}

func (p SubscriptionPlan) IsValid() bool {
	return validPlans[p]
}

// NewSubscriptionPlan parses a plan name; an empty value means free.
func NewSubscriptionPlan(s string) (SubscriptionPlan, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PlanFree, nil
	}
	p := SubscriptionPlan(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid subscription plan: %s", s)
	}
	return p, nil
}
