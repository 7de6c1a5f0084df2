package advertisement

import (
	"context"
	"time"

	"github.com/BruksfildServices01/bizmarket/internal/audit"
	domain "github.com/BruksfildServices01/bizmarket/internal/domain/advertisement"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type RecordPaymentResult struct {
	Advertisement *models.Advertisement
	// Applied is false when the same payment had already been recorded.
	Applied bool
}

// RecordPayment marks an ad paid exactly once. Repeating it with the same
// provider reference is a no-op success; a different reference conflicts.
type RecordPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewRecordPayment(repo domain.Repository, audit *audit.Dispatcher) *RecordPayment {
	return &RecordPayment{repo: repo, audit: audit, now: time.Now}
}

func (uc *RecordPayment) Execute(ctx context.Context, adID, paymentRef string) (*RecordPaymentResult, error) {
	applied, err := uc.repo.Transition(ctx, adID, domain.MarkPaid, map[string]any{
		"payment_ref":  paymentRef,
		"payment_date": uc.now().UTC(),
	})
	if err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrConflict("payment_ref_in_use", "Payment already recorded for another advertisement")
		}
		return nil, err
	}

	ad, err := uc.repo.FindByID(ctx, adID)
	if err != nil {
		return nil, err
	}

	if !applied {
		if ad.PaymentRef != nil && *ad.PaymentRef == paymentRef {
			return &RecordPaymentResult{Advertisement: ad}, nil
		}
		if domain.PaymentStatus(ad.PaymentStatus) == domain.PaymentPaid {
			return nil, httperr.ErrConflict("payment_already_recorded", "Advertisement was paid with a different payment")
		}
		return nil, domain.MarkPaid.Settle(ad.PaymentStatus)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  ad.OwnerID,
		Action:   "payment_recorded",
		Entity:   "advertisement",
		EntityID: ad.ID,
		Metadata: map[string]any{"payment_ref": paymentRef, "amount": ad.Price},
	})

	return &RecordPaymentResult{Advertisement: ad, Applied: true}, nil
}
