package dto

type PaymentMetadata struct {
	AdID string `json:"ad_id"`
}

type PaymentIntentRequest struct {
	Amount   float64         `json:"amount" binding:"omitempty,gt=0"`
	Currency string          `json:"currency" binding:"omitempty,len=3"`
	Metadata PaymentMetadata `json:"metadata"`
}

type PaymentIntentResponse struct {
	PaymentIntentID string  `json:"payment_intent_id"`
	CheckoutURL     string  `json:"checkout_url"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Reused          bool    `json:"reused"`
}

type CreateSubscriptionRequest struct {
	PlanID        string `json:"plan_id" binding:"required,oneof=premium enterprise"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
}

type SubscriptionResponse struct {
	SubscriptionID string  `json:"subscription_id"`
	ProviderRef    string  `json:"provider_ref"`
	CheckoutURL    string  `json:"checkout_url"`
	Plan           string  `json:"plan"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
}

type WebhookAck struct {
	Received  bool `json:"received"`
	Duplicate bool `json:"duplicate,omitempty"`
}
