package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/bizmarket/internal/dispatch"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/httpresp"
	"github.com/BruksfildServices01/bizmarket/internal/logger"
	"github.com/BruksfildServices01/bizmarket/internal/middleware"
	ucPayment "github.com/BruksfildServices01/bizmarket/internal/usecase/payment"
)

const maxWebhookBytes = 1 << 20

type PaymentHandler struct {
	intent       *ucPayment.CreatePaymentIntent
	subscription *ucPayment.CreateSubscription
	webhook      *ucPayment.HandleWebhook
}

func NewPaymentHandler(
	intent *ucPayment.CreatePaymentIntent,
	subscription *ucPayment.CreateSubscription,
	webhook *ucPayment.HandleWebhook,
) *PaymentHandler {
	return &PaymentHandler{
		intent:       intent,
		subscription: subscription,
		webhook:      webhook,
	}
}

func (h *PaymentHandler) Actions() dispatch.Table {
	return dispatch.Table{
		"create_payment_intent": h.CreateIntent,
		"create_subscription":   h.CreateSubscription,
		"webhook":               h.webhookAction,
	}
}

func (h *PaymentHandler) CreateIntent(c *gin.Context, body []byte) {
	req, err := dispatch.Bind[dto.PaymentIntentRequest](body)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := h.intent.Execute(c.Request.Context(), middleware.Principal(c), *req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, res)
}

func (h *PaymentHandler) CreateSubscription(c *gin.Context, body []byte) {
	req, err := dispatch.Bind[dto.CreateSubscriptionRequest](body)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := h.subscription.Execute(c.Request.Context(), middleware.Principal(c), *req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, res)
}

// Webhook serves POST /payments/webhook, where the provider posts its
// notifications without an action field.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		httperr.Respond(c, httperr.ErrBadRequest("invalid_body", "Could not read request body"))
		return
	}
	c.Set(logger.ContextAction, "webhook")
	h.handleWebhook(c, body)
}

func (h *PaymentHandler) webhookAction(c *gin.Context, body []byte) {
	h.handleWebhook(c, body)
}

func (h *PaymentHandler) handleWebhook(c *gin.Context, body []byte) {
	dataID := c.Query("data.id")
	if dataID == "" {
		dataID = c.Query("id")
	}
	topic := c.Query("type")
	if topic == "" {
		topic = c.Query("topic")
	}

	res, err := h.webhook.Execute(c.Request.Context(), ucPayment.WebhookInput{
		Signature:   c.GetHeader("x-signature"),
		RequestID:   c.GetHeader("x-request-id"),
		QueryDataID: dataID,
		QueryType:   topic,
		Body:        body,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.WebhookAck{Received: true, Duplicate: res.Duplicate})
}
