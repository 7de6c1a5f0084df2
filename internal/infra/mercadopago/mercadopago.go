package mercadopago

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/bizmarket/internal/payment"
)

// Gateway implements payment.Gateway with Checkout Pro
// preferences for one-off payments and preapprovals for subscriptions.
type Gateway struct {
	preferences  preference.Client
	payments     mppayment.Client
	preapprovals preapproval.Client

	notificationURL string
	backURL         string
}

func NewGateway(accessToken, notificationURL, backURL string) (*Gateway, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &Gateway{
		preferences:     preference.NewClient(cfg),
		payments:        mppayment.NewClient(cfg),
		preapprovals:    preapproval.NewClient(cfg),
		notificationURL: notificationURL,
		backURL:         backURL,
	}, nil
}

func (g *Gateway) CreateCheckout(ctx context.Context, req payment.CheckoutRequest) (*payment.Checkout, error) {
	res, err := g.preferences.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      req.Title,
				Quantity:   1,
				UnitPrice:  req.Amount,
				CurrencyID: req.Currency,
			},
		},
		ExternalReference: req.ExternalReference,
		NotificationURL:   g.notificationURL,
		Metadata:          req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &payment.Checkout{ID: res.ID, URL: res.InitPoint}, nil
}

func (g *Gateway) GetPayment(ctx context.Context, id string) (*payment.Status, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil, fmt.Errorf("invalid payment id %q: %w", id, err)
	}

	res, err := g.payments.Get(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	return &payment.Status{
		ID:                strconv.Itoa(res.ID),
		Status:            res.Status,
		ExternalReference: res.ExternalReference,
	}, nil
}

func (g *Gateway) CreateSubscription(ctx context.Context, req payment.SubscriptionRequest) (*payment.Checkout, error) {
	res, err := g.preapprovals.Create(ctx, preapproval.Request{
		Reason:            req.Reason,
		PayerEmail:        req.PayerEmail,
		BackURL:           g.backURL,
		ExternalReference: req.ExternalReference,
		AutoRecurring: &preapproval.AutoRecurringRequest{
			Frequency:         1,
			FrequencyType:     "months",
			TransactionAmount: req.Amount,
			CurrencyID:        req.Currency,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create preapproval: %w", err)
	}

	return &payment.Checkout{ID: res.ID, URL: res.InitPoint}, nil
}

func (g *Gateway) GetSubscription(ctx context.Context, id string) (*payment.Status, error) {
	res, err := g.preapprovals.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get preapproval: %w", err)
	}

	return &payment.Status{
		ID:                res.ID,
		Status:            res.Status,
		ExternalReference: res.ExternalReference,
	}, nil
}

var _ payment.Gateway = (*Gateway)(nil)
