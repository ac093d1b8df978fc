package checkout

import (
	"context"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"
)

// Session is the provider-agnostic result of creating a payment session.
type Session struct {
	ID  string
	URL string
}

// SessionParams carries everything a payment session needs.
type SessionParams struct {
	TierKey         string
	TierName        string
	TierDescription string
	AmountCents     int64
	SetupAmount     string
	CustomerEmail   string
	CustomerName    string
	Origin          string
}

// SessionCreator abstracts the payment provider so handlers can be tested
// without network access.
type SessionCreator interface {
	CreateSession(ctx context.Context, p SessionParams) (*Session, error)
}

type stripeCreator struct{}

// NewStripeCreator configures the Stripe client and returns a SessionCreator
// backed by Stripe Checkout, or nil when no secret key is configured.
func NewStripeCreator(secretKey string) SessionCreator {
	if secretKey == "" {
		return nil
	}
	stripe.Key = secretKey
	return &stripeCreator{}
}

func (c *stripeCreator) CreateSession(ctx context.Context, p SessionParams) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(p.TierName + " - Setup Fee"),
						Description: stripe.String(p.TierDescription),
					},
					UnitAmount: stripe.Int64(p.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.Origin + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(p.Origin + "/checkout/cancel"),
	}
	params.Context = ctx
	if p.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(p.CustomerEmail)
	}
	params.AddMetadata("tier", p.TierKey)
	params.AddMetadata("customerName", p.CustomerName)
	params.AddMetadata("setupAmount", p.SetupAmount)

	s, err := session.New(params)
	if err != nil {
		return nil, err
	}
	return &Session{ID: s.ID, URL: s.URL}, nil
}
