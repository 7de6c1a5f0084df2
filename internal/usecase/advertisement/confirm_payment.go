package advertisement

import (
	"context"
	"time"

	"github.com/BruksfildServices01/bizmarket/internal/auth"
	domain "github.com/BruksfildServices01/bizmarket/internal/domain/advertisement"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/metrics"
	"github.com/BruksfildServices01/bizmarket/internal/payment"
)

// ConfirmPayment handles the client's payment_success callback. The claim
// is only trusted once the provider reports the payment approved for this
// very ad.
type ConfirmPayment struct {
	repo    domain.Repository
	gateway payment.Gateway
	record  *RecordPayment
	timeout time.Duration
}

func NewConfirmPayment(
	repo domain.Repository,
	gateway payment.Gateway,
	record *RecordPayment,
	timeout time.Duration,
) *ConfirmPayment {
	return &ConfirmPayment{
		repo:    repo,
		gateway: gateway,
		record:  record,
		timeout: timeout,
	}
}

func (uc *ConfirmPayment) Execute(
	ctx context.Context,
	actor *auth.Principal,
	req dto.PaymentSuccessRequest,
) (*RecordPaymentResult, error) {

	ad, err := uc.repo.FindByID(ctx, req.AdID)
	if err != nil {
		return nil, err
	}
	if actor.UserID() != ad.OwnerID && !actor.IsAdmin() {
		return nil, errNotOwner
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	st, err := uc.gateway.GetPayment(callCtx, req.PaymentID)
	if err != nil {
		metrics.PaymentEvents.WithLabelValues("confirm", "provider_error").Inc()
		return nil, httperr.ErrUpstream("payment_provider_error", err)
	}

	if st.ExternalReference != domain.ExternalReference(ad.ID) {
		metrics.PaymentEvents.WithLabelValues("confirm", "mismatch").Inc()
		return nil, httperr.ErrBadRequest("payment_mismatch", "Payment does not belong to this advertisement")
	}
	if st.Status != payment.StatusApproved {
		metrics.PaymentEvents.WithLabelValues("confirm", "not_approved").Inc()
		return nil, httperr.ErrConflict("payment_not_approved", "Payment has not been approved")
	}

	res, err := uc.record.Execute(ctx, ad.ID, st.ID)
	if err != nil {
		return nil, err
	}
	metrics.PaymentEvents.WithLabelValues("confirm", "recorded").Inc()
	return res, nil
}
