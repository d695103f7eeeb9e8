package stripeclient

import (
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/refund"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Intent is the slice of a Stripe payment intent the services care about.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	ChargeID     string
}

const IntentSucceeded = string(stripe.PaymentIntentStatusSucceeded)

// Processor is the payment-processor boundary. Amounts are dollars; the
// implementation converts to cents at the wire.
type Processor interface {
	CreateIntent(amount float64, currency string, metadata map[string]string) (*Intent, error)
	RetrieveIntent(id string) (*Intent, error)
	CreateRefund(chargeID string, amount float64) (string, error)
	CreateCustomer(email, name, description string) (string, error)
	CreateCheckoutSession(priceID, customerID, successURL, cancelURL string) (string, error)
}

type Client struct{}

// New configures the global stripe key and returns a processor.
func New(secretKey string) *Client {
	stripe.Key = secretKey
	return &Client{}
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (c *Client) CreateIntent(amount float64, currency string, metadata map[string]string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toCents(amount)),
		Currency: stripe.String(currency),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}, nil
}

func (c *Client) RetrieveIntent(id string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.AddExpand("latest_charge")
	pi, err := paymentintent.Get(id, params)
	if err != nil {
		return nil, err
	}
	intent := &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}
	if pi.LatestCharge != nil {
		intent.ChargeID = pi.LatestCharge.ID
	}
	return intent, nil
}

func (c *Client) CreateRefund(chargeID string, amount float64) (string, error) {
	r, err := refund.New(&stripe.RefundParams{
		Charge: stripe.String(chargeID),
		Amount: stripe.Int64(toCents(amount)),
	})
	if err != nil {
		return "", err
	}
	return r.ID, nil
}

func (c *Client) CreateCustomer(email, name, description string) (string, error) {
	cust, err := customer.New(&stripe.CustomerParams{
		Email:       stripe.String(email),
		Name:        stripe.String(name),
		Description: stripe.String(description),
	})
	if err != nil {
		return "", err
	}
	return cust.ID, nil
}

func (c *Client) CreateCheckoutSession(priceID, customerID, successURL, cancelURL string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer: stripe.String(customerID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	s, err := session.New(params)
	if err != nil {
		return "", err
	}
	return s.URL, nil
}

// ConstructEvent verifies a webhook payload signature.
func ConstructEvent(payload []byte, sigHeader, secret string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, secret)
}
