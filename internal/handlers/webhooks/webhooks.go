package webhooks

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"github.com/otr-legal/otr-backend/internal/stripeclient"
	"github.com/otr-legal/otr-backend/pkg/utils"
)

type PaymentService interface {
	HandleIntentSucceeded(ctx context.Context, intentID, chargeID string) error
}

type BusinessService interface {
	ReconcileSubscription(ctx context.Context, customerID, subscriptionID, status string) error
}

type WebhookHandler struct {
	paymentService  PaymentService
	businessService BusinessService
	webhookSecret   string
}

func New(paymentService PaymentService, businessService BusinessService, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{
		paymentService:  paymentService,
		businessService: businessService,
		webhookSecret:   webhookSecret,
	}
}

// maxBodyBytes caps webhook payloads per Stripe's recommendation.
const maxBodyBytes = 65536

// HandleStripe godoc
//
//	@Summary		Stripe webhook endpoint
//	@Description	Verifies the signature and applies payment and subscription events
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid signature"
//	@Router			/api/webhooks/stripe [post]
func (h *WebhookHandler) HandleStripe(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Can't read payload")
		return
	}
	event, err := stripeclient.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		zap.L().Info("webhook signature verification failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid signature")
		return
	}

	ctx := r.Context()
	switch event.Type {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid event payload")
			return
		}
		chargeID := ""
		if intent.LatestCharge != nil {
			chargeID = intent.LatestCharge.ID
		}
		err = h.paymentService.HandleIntentSucceeded(ctx, intent.ID, chargeID)

	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid event payload")
			return
		}
		subscriptionID := ""
		if session.Subscription != nil {
			subscriptionID = session.Subscription.ID
		}
		customerID := ""
		if session.Customer != nil {
			customerID = session.Customer.ID
		}
		err = h.businessService.ReconcileSubscription(ctx, customerID, subscriptionID, "active")

	case "invoice.payment_succeeded":
		err = h.reconcileInvoice(ctx, event, "active")

	case "invoice.payment_failed":
		err = h.reconcileInvoice(ctx, event, "past_due")

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid event payload")
			return
		}
		customerID := ""
		if sub.Customer != nil {
			customerID = sub.Customer.ID
		}
		err = h.businessService.ReconcileSubscription(ctx, customerID, sub.ID, "cancelled")

	default:
		zap.L().Debug("unhandled webhook event", zap.String("type", string(event.Type)))
	}

	if err != nil {
		zap.L().Error("can't process webhook event",
			zap.String("type", string(event.Type)), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "ok")
}

func (h *WebhookHandler) reconcileInvoice(ctx context.Context, event stripe.Event, status string) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return err
	}
	customerID := ""
	if invoice.Customer != nil {
		customerID = invoice.Customer.ID
	}
	subscriptionID := ""
	if invoice.Subscription != nil {
		subscriptionID = invoice.Subscription.ID
	}
	return h.businessService.ReconcileSubscription(ctx, customerID, subscriptionID, status)
}
