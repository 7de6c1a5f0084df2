package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/bizmarket/internal/auth"
	"github.com/BruksfildServices01/bizmarket/internal/domain/subscription"
	"github.com/BruksfildServices01/bizmarket/internal/domain/user"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/metrics"
	"github.com/BruksfildServices01/bizmarket/internal/models"
	"github.com/BruksfildServices01/bizmarket/internal/payment"
)

type CreateSubscription struct {
	subs     subscription.Repository
	gateway  payment.Gateway
	currency string
	timeout  time.Duration
}

func NewCreateSubscription(
	subs subscription.Repository,
	gateway payment.Gateway,
	currency string,
	timeout time.Duration,
) *CreateSubscription {
	return &CreateSubscription{
		subs:     subs,
		gateway:  gateway,
		currency: currency,
		timeout:  timeout,
	}
}

// Execute records a pending subscription and opens the provider's
// recurring authorization for it. It becomes active on the provider's
// webhook.
func (uc *CreateSubscription) Execute(
	ctx context.Context,
	actor *auth.Principal,
	req dto.CreateSubscriptionRequest,
) (*dto.SubscriptionResponse, error) {

	if actor == nil {
		return nil, errAuthRequired
	}

	plan := subscription.Plan(req.PlanID)
	amount, ok := subscription.MonthlyPrice(plan)
	if !ok {
		return nil, httperr.ErrValidation(map[string]string{"plan_id": "unknown plan"})
	}

	sub := &models.Subscription{
		UserID: actor.UserID(),
		Plan:   string(plan),
		Amount: amount,
		Status: string(subscription.StatusPending),
	}
	if err := uc.subs.Create(ctx, sub); err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	co, err := uc.gateway.CreateSubscription(callCtx, payment.SubscriptionRequest{
		Reason:            fmt.Sprintf("BizMarket %s plan", plan),
		PayerEmail:        user.NormalizeEmail(req.CustomerEmail),
		Amount:            amount,
		Currency:          uc.currency,
		ExternalReference: subscription.ExternalReference(sub.ID),
	})
	if err != nil {
		metrics.PaymentEvents.WithLabelValues("subscription", "provider_error").Inc()
		if _, ferr := uc.subs.Transition(ctx, sub.ID, subscription.Fail, nil); ferr != nil {
			return nil, ferr
		}
		return nil, httperr.ErrUpstream("payment_provider_error", err)
	}
	metrics.PaymentEvents.WithLabelValues("subscription", "created").Inc()

	updated, err := uc.subs.Update(ctx, sub.ID, map[string]any{
		"provider_ref": co.ID,
		"checkout_url": co.URL,
	})
	if err != nil {
		return nil, err
	}

	return &dto.SubscriptionResponse{
		SubscriptionID: updated.ID,
		ProviderRef:    co.ID,
		CheckoutURL:    co.URL,
		Plan:           updated.Plan,
		Amount:         updated.Amount,
		Status:         updated.Status,
	}, nil
}
