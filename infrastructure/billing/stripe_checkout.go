package billing

import (
	"context"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"

	"postpilot/domain/dto"
	"postpilot/domain/model"
	"postpilot/domain/repository"
	"postpilot/infrastructure/logger"
)

// StripeCheckout creates hosted subscription checkout sessions.
type StripeCheckout struct{}

// NewStripeCheckout configures the Stripe SDK with the account secret key.
func NewStripeCheckout(secretKey string) repository.IBilling {
	stripe.Key = secretKey
	return &StripeCheckout{}
}

// CreateCheckoutSession opens a subscription checkout scoped to the given
// price and return URLs. The session URL is handed back to the browser; the
// server never follows it.
func (s *StripeCheckout) CreateCheckoutSession(ctx context.Context, priceID, userID, userEmail, successURL, cancelURL string) (*dto.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(successURL),
		CancelURL:         stripe.String(cancelURL),
		CustomerEmail:     stripe.String(userEmail),
		ClientReferenceID: stripe.String(userID),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("stripe checkout session creation failed")
		return nil, &model.ProviderError{Provider: "stripe", StatusCode: 502, Message: "checkout session creation failed"}
	}
	return &dto.CheckoutSession{SessionID: sess.ID, URL: sess.URL}, nil
}
