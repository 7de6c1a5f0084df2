package advertisement

import (
	"math"

	"github.com/BruksfildServices01/bizmarket/internal/domain/lifecycle"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusRejected Status = "rejected"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

type AdType string

const (
	TypePremium   AdType = "premium"
	TypeFeatured  AdType = "featured"
	TypeSpotlight AdType = "spotlight"
)

const (
	MinDescriptionLength = 50
	MinBudget            = 100
)

var basePrice = map[AdType]float64{
	TypePremium:   99,
	TypeFeatured:  199,
	TypeSpotlight: 299,
}

var durationMultiplier = map[int]float64{
	30: 1,
	60: 1.5,
	90: 2,
}

// Price is the placement price for an ad type over a duration in days.
// ok is false for unknown types or durations.
func Price(t AdType, durationDays int) (price float64, ok bool) {
	base, ok := basePrice[t]
	if !ok {
		return 0, false
	}
	mult, ok := durationMultiplier[durationDays]
	if !ok {
		return 0, false
	}
	return math.Round(base * mult), true
}

var (
	Activate = lifecycle.Rule{
		Name:   "activate_advertisement",
		Column: "status",
		From:   []string{string(StatusPending), string(StatusRejected)},
		To:     string(StatusActive),
	}

	Reject = lifecycle.Rule{
		Name:   "reject_advertisement",
		Column: "status",
		From:   []string{string(StatusPending), string(StatusActive)},
		To:     string(StatusRejected),
	}

	MarkPaid = lifecycle.Rule{
		Name:   "record_payment",
		Column: "payment_status",
		From:   []string{string(PaymentPending)},
		To:     string(PaymentPaid),
	}
)

func IsPublic(status, paymentStatus string) bool {
	return Status(status) == StatusActive && PaymentStatus(paymentStatus) == PaymentPaid
}

// ReferenceKind prefixes provider external references for ad payments.
const ReferenceKind = "advertisement"

// ExternalReference tags a provider checkout with the ad it pays for.
func ExternalReference(id string) string {
	return ReferenceKind + ":" + id
}
