package stripeclient

import (
	"context"
	"errors"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Client is the slice of Stripe this service needs. Money movement and
// token lifecycle are Stripe's; we hold references and display metadata.
type Client interface {
	// EnsureCustomer creates a processor-side customer and returns its id.
	EnsureCustomer(ctx context.Context, email, name string) (string, error)
	// DetachPaymentMethod invalidates a saved token. Roughly idempotent on
	// Stripe's side; callers treat failure as non-fatal.
	DetachPaymentMethod(ctx context.Context, paymentMethodID string) error
	// CreateCheckoutSession opens a hosted charge flow and returns the
	// session id and redirect URL.
	CreateCheckoutSession(ctx context.Context, p CheckoutParams) (id, url string, err error)
}

type LineItem struct {
	Name            string
	Quantity        int64
	UnitAmountCents int64
	Currency        string
}

type CheckoutParams struct {
	CustomerID string
	// ClientReference ties the session back to our payment row.
	ClientReference string
	SuccessURL      string
	CancelURL       string
	Items           []LineItem
}

type apiClient struct {
	sc *client.API
}

// New builds a Stripe-backed client. An empty key is a configuration
// error: the caller decides whether to run without billing.
func New(secretKey string) (Client, error) {
	if secretKey == "" {
		return nil, errors.New("stripeclient: secret key not configured")
	}
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &apiClient{sc: sc}, nil
}

func (c *apiClient) EnsureCustomer(ctx context.Context, email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	if name != "" {
		params.Name = stripe.String(name)
	}
	params.Context = ctx
	cust, err := c.sc.Customers.New(params)
	if err != nil {
		return "", err
	}
	return cust.ID, nil
}

func (c *apiClient) DetachPaymentMethod(ctx context.Context, paymentMethodID string) error {
	params := &stripe.PaymentMethodDetachParams{}
	params.Context = ctx
	_, err := c.sc.PaymentMethods.Detach(paymentMethodID, params)
	return err
}

func (c *apiClient) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (string, string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(p.SuccessURL),
		CancelURL:         stripe.String(p.CancelURL),
		ClientReferenceID: stripe.String(p.ClientReference),
	}
	if p.CustomerID != "" {
		params.Customer = stripe.String(p.CustomerID)
	}
	for _, item := range p.Items {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(item.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(item.Currency),
				UnitAmount: stripe.Int64(item.UnitAmountCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
			},
		})
	}
	params.Context = ctx
	sess, err := c.sc.CheckoutSessions.New(params)
	if err != nil {
		return "", "", err
	}
	return sess.ID, sess.URL, nil
}
