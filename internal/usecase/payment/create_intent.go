package payment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/bizmarket/internal/auth"
	"github.com/BruksfildServices01/bizmarket/internal/domain/advertisement"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/metrics"
	"github.com/BruksfildServices01/bizmarket/internal/payment"
)

var errAuthRequired = httperr.ErrUnauthorized("missing_token", "Authorization required")

type CreatePaymentIntent struct {
	ads      advertisement.Repository
	gateway  payment.Gateway
	currency string
	timeout  time.Duration
}

func NewCreatePaymentIntent(
	ads advertisement.Repository,
	gateway payment.Gateway,
	currency string,
	timeout time.Duration,
) *CreatePaymentIntent {
	return &CreatePaymentIntent{
		ads:      ads,
		gateway:  gateway,
		currency: currency,
		timeout:  timeout,
	}
}

// Execute opens a provider checkout. When the request names an ad, the
// amount is the ad's price and an existing open checkout is reused, so
// retries never create a second one for the same unpaid ad.
func (uc *CreatePaymentIntent) Execute(
	ctx context.Context,
	actor *auth.Principal,
	req dto.PaymentIntentRequest,
) (*dto.PaymentIntentResponse, error) {

	if actor == nil {
		return nil, errAuthRequired
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = uc.currency
	}

	if req.Metadata.AdID == "" {
		if req.Amount <= 0 {
			return nil, httperr.ErrValidation(map[string]string{"amount": "is required"})
		}
		return uc.checkout(ctx, payment.CheckoutRequest{
			Title:             "BizMarket payment",
			Amount:            req.Amount,
			Currency:          currency,
			ExternalReference: "payment:" + uuid.NewString(),
			Metadata:          map[string]any{"user_id": actor.UserID()},
		})
	}

	ad, err := uc.ads.FindByID(ctx, req.Metadata.AdID)
	if err != nil {
		return nil, err
	}
	if actor.UserID() != ad.OwnerID && !actor.IsAdmin() {
		return nil, httperr.ErrForbidden("not_owner", "Only the owner can pay for this advertisement")
	}
	if advertisement.PaymentStatus(ad.PaymentStatus) == advertisement.PaymentPaid {
		return nil, httperr.ErrConflict("already_paid", "Advertisement is already paid")
	}

	if ad.CheckoutRef != nil && ad.CheckoutURL != nil {
		return &dto.PaymentIntentResponse{
			PaymentIntentID: *ad.CheckoutRef,
			CheckoutURL:     *ad.CheckoutURL,
			Amount:          ad.Price,
			Currency:        currency,
			Reused:          true,
		}, nil
	}

	res, err := uc.checkout(ctx, payment.CheckoutRequest{
		Title:             "Advertisement: " + ad.Title,
		Amount:            ad.Price,
		Currency:          currency,
		ExternalReference: advertisement.ExternalReference(ad.ID),
		Metadata:          map[string]any{"ad_id": ad.ID},
	})
	if err != nil {
		return nil, err
	}

	if _, err := uc.ads.Update(ctx, ad.ID, map[string]any{
		"checkout_ref": res.PaymentIntentID,
		"checkout_url": res.CheckoutURL,
	}); err != nil {
		return nil, err
	}

	return res, nil
}

func (uc *CreatePaymentIntent) checkout(ctx context.Context, req payment.CheckoutRequest) (*dto.PaymentIntentResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	co, err := uc.gateway.CreateCheckout(callCtx, req)
	if err != nil {
		metrics.PaymentEvents.WithLabelValues("checkout", "provider_error").Inc()
		return nil, httperr.ErrUpstream("payment_provider_error", err)
	}
	metrics.PaymentEvents.WithLabelValues("checkout", "created").Inc()

	return &dto.PaymentIntentResponse{
		PaymentIntentID: co.ID,
		CheckoutURL:     co.URL,
		Amount:          req.Amount,
		Currency:        req.Currency,
	}, nil
}
