package subscription

import (
	"context"

	"github.com/BruksfildServices01/bizmarket/internal/domain/lifecycle"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type Plan string

const (
	PlanPremium    Plan = "premium"
	PlanEnterprise Plan = "enterprise"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
)

var monthlyPrice = map[Plan]float64{
	PlanPremium:    50,
	PlanEnterprise: 100,
}

// MonthlyPrice returns the recurring amount for a paid plan.
func MonthlyPrice(p Plan) (float64, bool) {
	price, ok := monthlyPrice[p]
	return price, ok
}

var Activate = lifecycle.Rule{
	Name:   "activate_subscription",
	Column: "status",
	From:   []string{string(StatusPending)},
	To:     string(StatusActive),
}

// Fail closes a subscription whose provider authorization could not be
// opened.
var Fail = lifecycle.Rule{
	Name:   "fail_subscription",
	Column: "status",
	From:   []string{string(StatusPending)},
	To:     string(StatusFailed),
}

func ExternalReference(id string) string {
	return "subscription:" + id
}

type Repository interface {
	Create(ctx context.Context, s *models.Subscription) error
	FindByID(ctx context.Context, id string) (*models.Subscription, error)
	FindByProviderRef(ctx context.Context, ref string) (*models.Subscription, error)
	Update(ctx context.Context, id string, cols map[string]any) (*models.Subscription, error)
	Transition(ctx context.Context, id string, rule lifecycle.Rule, extra map[string]any) (bool, error)
}
