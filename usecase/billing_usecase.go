package usecase

import (
	"context"

	"postpilot/domain/dto"
	"postpilot/domain/model"
	"postpilot/domain/repository"
)

// IBillingUseCase resolves subscription tiers and opens checkout sessions.
type IBillingUseCase interface {
	Checkout(ctx context.Context, req *dto.CheckoutRequest, origin string) (*dto.CheckoutSession, error)
}

// BillingUseCase implements IBillingUseCase over a static (tier, byok) →
// price table and the payment provider adapter.
type BillingUseCase struct {
	billing repository.IBilling
	prices  map[string]string
}

func NewBillingUseCase(billing repository.IBilling, prices map[string]string) IBillingUseCase {
	return &BillingUseCase{billing: billing, prices: prices}
}

func priceKey(tier string, byok bool) string {
	if byok {
		return tier + ":byok"
	}
	return tier
}

// Checkout validates the request, resolves the price, and creates the hosted
// session. Success and cancel URLs derive from the request's own origin so
// the flow stays correct across environments.
func (u *BillingUseCase) Checkout(ctx context.Context, req *dto.CheckoutRequest, origin string) (*dto.CheckoutSession, error) {
	if req == nil || req.Tier == "" {
		return nil, model.NewValidationError("tier", "required")
	}
	if req.UserID == "" {
		return nil, model.NewValidationError("userId", "required")
	}
	if req.UserEmail == "" {
		return nil, model.NewValidationError("userEmail", "required")
	}
	if origin == "" {
		return nil, model.NewValidationError("origin", "required")
	}

	priceID, ok := u.prices[priceKey(req.Tier, req.HasByok)]
	if !ok || priceID == "" {
		return nil, model.NewValidationError("tier", "no price for tier")
	}
	if u.billing == nil {
		return nil, model.ErrNotConfigured
	}

	successURL := origin + "/dashboard?checkout=success"
	cancelURL := origin + "/pricing?checkout=cancelled"
	return u.billing.CreateCheckoutSession(ctx, priceID, req.UserID, req.UserEmail, successURL, cancelURL)
}
