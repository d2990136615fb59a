package dto

// CheckoutRequest represents the body of POST /api/billing/checkout.
// All fields are required; validation happens before any Stripe call.
type CheckoutRequest struct {
	Tier      string `json:"tier"`
	HasByok   bool   `json:"hasByok"`
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
}

// CheckoutSession is the hosted checkout session returned to the browser.
// The browser, not the server, performs the navigation to URL.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
