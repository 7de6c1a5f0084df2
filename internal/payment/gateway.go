// Package payment defines the provider-neutral payment port and webhook
// verification.
package payment

import (
	"context"
	"strings"
)

const (
	StatusApproved   = "approved"
	StatusAuthorized = "authorized"
)

type CheckoutRequest struct {
	Title             string
	Amount            float64
	Currency          string
	ExternalReference string
	Metadata          map[string]any
}

type SubscriptionRequest struct {
	Reason            string
	PayerEmail        string
	Amount            float64
	Currency          string
	ExternalReference string
}

// Checkout is a provider-hosted page the client is redirected to.
type Checkout struct {
	ID  string
	URL string
}

// Status is the provider's view of a payment or recurring authorization.
type Status struct {
	ID                string
	Status            string
	ExternalReference string
}

type Gateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error)
	GetPayment(ctx context.Context, id string) (*Status, error)
	CreateSubscription(ctx context.Context, req SubscriptionRequest) (*Checkout, error)
	GetSubscription(ctx context.Context, id string) (*Status, error)
}

// SplitReference parses "kind:id" external references.
func SplitReference(ref string) (kind, id string, ok bool) {
	kind, id, ok = strings.Cut(ref, ":")
	if !ok || kind == "" || id == "" {
		return "", "", false
	}
	return kind, id, true
}
