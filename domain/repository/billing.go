package repository

import (
	"context"

	"postpilot/domain/dto"
)

// IBilling creates hosted checkout sessions with the payment provider.
type IBilling interface {
	// CreateCheckoutSession opens a hosted session for priceID. successURL
	// and cancelURL are derived from the request origin by the caller.
	CreateCheckoutSession(ctx context.Context, priceID, userID, userEmail, successURL, cancelURL string) (*dto.CheckoutSession, error)
}
