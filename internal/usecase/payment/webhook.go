package payment

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/bizmarket/internal/domain/advertisement"
	"github.com/BruksfildServices01/bizmarket/internal/domain/subscription"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/metrics"
	"github.com/BruksfildServices01/bizmarket/internal/payment"
	adusecase "github.com/BruksfildServices01/bizmarket/internal/usecase/advertisement"
)

const dedupeTTL = 24 * time.Hour

type WebhookInput struct {
	Signature   string
	RequestID   string
	QueryDataID string
	QueryType   string
	Body        []byte
}

type WebhookResult struct {
	Duplicate bool
}

// HandleWebhook verifies a provider notification and applies what the
// provider reports. The notification body is never trusted beyond the
// resource id it names.
type HandleWebhook struct {
	gateway payment.Gateway
	record  *adusecase.RecordPayment
	subs    subscription.Repository
	rdb     *redis.Client
	secret  string
	timeout time.Duration
	log     *zap.Logger
	now     func() time.Time
}

func NewHandleWebhook(
	gateway payment.Gateway,
	record *adusecase.RecordPayment,
	subs subscription.Repository,
	rdb *redis.Client,
	secret string,
	timeout time.Duration,
	log *zap.Logger,
) *HandleWebhook {
	return &HandleWebhook{
		gateway: gateway,
		record:  record,
		subs:    subs,
		rdb:     rdb,
		secret:  secret,
		timeout: timeout,
		log:     log,
		now:     time.Now,
	}
}

var errBadSignature = httperr.ErrBadRequest("invalid_signature", "Webhook signature verification failed")

func (uc *HandleWebhook) Execute(ctx context.Context, in WebhookInput) (*WebhookResult, error) {
	var n payment.Notification
	if len(in.Body) > 0 {
		// unparsable bodies still go through the signature check below
		_ = json.Unmarshal(in.Body, &n)
	}

	dataID := in.QueryDataID
	if dataID == "" {
		dataID = n.Data.ID
	}
	topic := in.QueryType
	if topic == "" {
		topic = n.Type
	}

	if dataID == "" {
		metrics.PaymentEvents.WithLabelValues("webhook", "invalid_signature").Inc()
		return nil, errBadSignature
	}
	if err := payment.VerifySignature(uc.secret, in.Signature, in.RequestID, dataID, uc.now()); err != nil {
		metrics.PaymentEvents.WithLabelValues("webhook", "invalid_signature").Inc()
		uc.log.Warn("webhook signature rejected", zap.String("data_id", dataID), zap.Error(err))
		return nil, errBadSignature
	}

	log := uc.log.With(zap.String("topic", topic), zap.String("data_id", dataID))

	key := ""
	if in.RequestID != "" && uc.rdb != nil {
		key = "webhook:" + in.RequestID
		fresh, err := uc.rdb.SetNX(ctx, key, dataID, dedupeTTL).Result()
		if err != nil {
			log.Warn("webhook dedupe unavailable", zap.Error(err))
			key = ""
		} else if !fresh {
			metrics.PaymentEvents.WithLabelValues("webhook", "duplicate").Inc()
			return &WebhookResult{Duplicate: true}, nil
		}
	}

	var err error
	switch topic {
	case payment.TopicPayment:
		err = uc.applyPayment(ctx, log, dataID)
	case payment.TopicSubscription:
		err = uc.applySubscription(ctx, log, dataID)
	default:
		log.Info("webhook topic ignored")
	}

	if err != nil {
		// let the provider retry
		if key != "" {
			uc.rdb.Del(context.Background(), key)
		}
		metrics.PaymentEvents.WithLabelValues("webhook", "failed").Inc()
		return nil, err
	}

	metrics.PaymentEvents.WithLabelValues("webhook", "processed").Inc()
	return &WebhookResult{}, nil
}

func (uc *HandleWebhook) applyPayment(ctx context.Context, log *zap.Logger, paymentID string) error {
	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	st, err := uc.gateway.GetPayment(callCtx, paymentID)
	if err != nil {
		return httperr.ErrUpstream("payment_provider_error", err)
	}

	if st.Status != payment.StatusApproved {
		log.Info("payment not approved yet", zap.String("status", st.Status))
		return nil
	}

	kind, adID, ok := payment.SplitReference(st.ExternalReference)
	if !ok || kind != advertisement.ReferenceKind {
		log.Info("payment reference ignored", zap.String("external_reference", st.ExternalReference))
		return nil
	}

	res, err := uc.record.Execute(ctx, adID, st.ID)
	switch {
	case err == nil:
		log.Info("advertisement payment recorded",
			zap.String("ad_id", adID),
			zap.Bool("applied", res.Applied),
		)
		return nil
	case httperr.IsKind(err, httperr.KindNotFound), httperr.IsKind(err, httperr.KindConflict):
		// nothing a retry could fix
		log.Warn("advertisement payment not recorded", zap.String("ad_id", adID), zap.Error(err))
		return nil
	default:
		return err
	}
}

func (uc *HandleWebhook) applySubscription(ctx context.Context, log *zap.Logger, preapprovalID string) error {
	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	st, err := uc.gateway.GetSubscription(callCtx, preapprovalID)
	if err != nil {
		return httperr.ErrUpstream("payment_provider_error", err)
	}

	if st.Status != payment.StatusAuthorized {
		log.Info("subscription not authorized", zap.String("status", st.Status))
		return nil
	}

	sub, err := uc.subs.FindByProviderRef(ctx, st.ID)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			log.Warn("unknown subscription", zap.String("provider_ref", st.ID))
			return nil
		}
		return err
	}

	applied, err := uc.subs.Transition(ctx, sub.ID, subscription.Activate, map[string]any{
		"activated_at": uc.now().UTC(),
	})
	if err != nil {
		return err
	}
	if !applied {
		current, err := uc.subs.FindByID(ctx, sub.ID)
		if err != nil {
			return err
		}
		if err := subscription.Activate.Settle(current.Status); err != nil {
			log.Warn("subscription not activated", zap.String("status", current.Status))
		}
		return nil
	}

	log.Info("subscription activated", zap.String("subscription_id", sub.ID))
	return nil
}
