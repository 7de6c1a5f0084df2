// Package paymenttest provides an in-memory payment.Gateway.
package paymenttest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/BruksfildServices01/bizmarket/internal/payment"
)

var ErrUnavailable = errors.New("provider unavailable")

// Gateway records checkouts and serves whatever payment states a test
// seeds with SetPayment and SetSubscription.
type Gateway struct {
	mu sync.Mutex

	Checkouts     []payment.CheckoutRequest
	Subscriptions []payment.SubscriptionRequest

	payments map[string]payment.Status
	preaps   map[string]payment.Status
	seq      int

	// Fail makes every call return ErrUnavailable.
	Fail bool
}

func New() *Gateway {
	return &Gateway{
		payments: map[string]payment.Status{},
		preaps:   map[string]payment.Status{},
	}
}

func (g *Gateway) SetPayment(id, status, externalRef string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.payments[id] = payment.Status{ID: id, Status: status, ExternalReference: externalRef}
}

func (g *Gateway) SetSubscription(id, status, externalRef string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.preaps[id] = payment.Status{ID: id, Status: status, ExternalReference: externalRef}
}

func (g *Gateway) CreateCheckout(ctx context.Context, req payment.CheckoutRequest) (*payment.Checkout, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Fail {
		return nil, ErrUnavailable
	}
	g.seq++
	g.Checkouts = append(g.Checkouts, req)
	id := fmt.Sprintf("pref-%d", g.seq)
	return &payment.Checkout{ID: id, URL: "https://checkout.test/" + id}, nil
}

func (g *Gateway) GetPayment(ctx context.Context, id string) (*payment.Status, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Fail {
		return nil, ErrUnavailable
	}
	st, ok := g.payments[id]
	if !ok {
		return nil, fmt.Errorf("payment %s not found", id)
	}
	return &st, nil
}

func (g *Gateway) CreateSubscription(ctx context.Context, req payment.SubscriptionRequest) (*payment.Checkout, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Fail {
		return nil, ErrUnavailable
	}
	g.seq++
	g.Subscriptions = append(g.Subscriptions, req)
	id := fmt.Sprintf("preap-%d", g.seq)
	return &payment.Checkout{ID: id, URL: "https://checkout.test/" + id}, nil
}

func (g *Gateway) GetSubscription(ctx context.Context, id string) (*payment.Status, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Fail {
		return nil, ErrUnavailable
	}
	st, ok := g.preaps[id]
	if !ok {
		return nil, fmt.Errorf("preapproval %s not found", id)
	}
	return &st, nil
}

var _ payment.Gateway = (*Gateway)(nil)
