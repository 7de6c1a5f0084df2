package admin

import (
	"context"
	"time"

	"github.com/BruksfildServices01/bizmarket/internal/audit"
	"github.com/BruksfildServices01/bizmarket/internal/auth"
	"github.com/BruksfildServices01/bizmarket/internal/domain/advertisement"
	"github.com/BruksfildServices01/bizmarket/internal/domain/business"
	"github.com/BruksfildServices01/bizmarket/internal/domain/enquiry"
	"github.com/BruksfildServices01/bizmarket/internal/domain/lifecycle"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

// transitioner is the slice of a repository a moderation action needs.
type transitioner[T any] interface {
	FindByID(ctx context.Context, id string) (*T, error)
	Transition(ctx context.Context, id string, rule lifecycle.Rule, extra map[string]any) (bool, error)
}

// Moderate applies one lifecycle rule on behalf of an admin. A repeat of a
// transition that already happened succeeds without a second audit entry.
type Moderate[T any] struct {
	repo   transitioner[T]
	rule   lifecycle.Rule
	entity string
	state  func(*T) string
	extra  func(now time.Time) map[string]any
	audit  *audit.Dispatcher
	now    func() time.Time
}

func (uc *Moderate[T]) Execute(ctx context.Context, actor *auth.Principal, id string) (*T, error) {
	var extra map[string]any
	if uc.extra != nil {
		extra = uc.extra(uc.now().UTC())
	}

	applied, err := uc.repo.Transition(ctx, id, uc.rule, extra)
	if err != nil {
		return nil, err
	}

	rec, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !applied {
		if err := uc.rule.Settle(uc.state(rec)); err != nil {
			return nil, err
		}
		return rec, nil
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actor.UserID(),
		Action:   uc.rule.Name,
		Entity:   uc.entity,
		EntityID: id,
		Metadata: map[string]any{"to": uc.rule.To},
	})

	return rec, nil
}

func NewApproveBusiness(repo business.Repository, audit *audit.Dispatcher) *Moderate[models.Business] {
	return &Moderate[models.Business]{
		repo:   repo,
		rule:   business.Approve,
		entity: "business",
		state:  func(b *models.Business) string { return b.Status },
		audit:  audit,
		now:    time.Now,
	}
}

func NewRejectBusiness(repo business.Repository, audit *audit.Dispatcher) *Moderate[models.Business] {
	return &Moderate[models.Business]{
		repo:   repo,
		rule:   business.Reject,
		entity: "business",
		state:  func(b *models.Business) string { return b.Status },
		audit:  audit,
		now:    time.Now,
	}
}

func NewMarkEnquiryRead(repo enquiry.Repository, audit *audit.Dispatcher) *Moderate[models.Enquiry] {
	return &Moderate[models.Enquiry]{
		repo:   repo,
		rule:   enquiry.MarkRead,
		entity: "enquiry",
		state:  func(e *models.Enquiry) string { return e.Status },
		audit:  audit,
		now:    time.Now,
	}
}

func NewActivateAdvertisement(repo advertisement.Repository, audit *audit.Dispatcher) *Moderate[models.Advertisement] {
	return &Moderate[models.Advertisement]{
		repo:   repo,
		rule:   advertisement.Activate,
		entity: "advertisement",
		state:  func(a *models.Advertisement) string { return a.Status },
		extra: func(now time.Time) map[string]any {
			return map[string]any{"activated_at": now}
		},
		audit: audit,
		now:   time.Now,
	}
}

func NewRejectAdvertisement(repo advertisement.Repository, audit *audit.Dispatcher) *Moderate[models.Advertisement] {
	return &Moderate[models.Advertisement]{
		repo:   repo,
		rule:   advertisement.Reject,
		entity: "advertisement",
		state:  func(a *models.Advertisement) string { return a.Status },
		audit:  audit,
		now:    time.Now,
	}
}
