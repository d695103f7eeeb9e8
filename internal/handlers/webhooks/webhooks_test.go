package webhooks

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v76/webhook"
	gomock "go.uber.org/mock/gomock"
)

const testSecret = "whsec_test"

func NewMock(t *testing.T) (*WebhookHandler, *MockPaymentService, *MockBusinessService) {
	ctrl := gomock.NewController(t)
	paymentService := NewMockPaymentService(ctrl)
	businessService := NewMockBusinessService(ctrl)
	handler := New(paymentService, businessService, testSecret)
	defer ctrl.Finish()
	return handler, paymentService, businessService
}

func signedRequest(t *testing.T, payload string) *http.Request {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testSecret,
		Timestamp: time.Now(),
	})
	req := httptest.NewRequest("POST", "/api/webhooks/stripe", bytes.NewReader(signed.Payload))
	req.Header.Set("Stripe-Signature", signed.Header)
	return req
}

func TestHandleStripe_PaymentIntentSucceeded(t *testing.T) {
	handler, paymentService, _ := NewMock(t)

	payload := `{
		"id": "evt_1",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_123", "latest_charge": {"id": "ch_123"}}}
	}`
	paymentService.EXPECT().HandleIntentSucceeded(gomock.Any(), "pi_123", "ch_123").Return(nil)

	rr := httptest.NewRecorder()
	handler.HandleStripe(rr, signedRequest(t, payload))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleStripe_CheckoutCompleted(t *testing.T) {
	handler, _, businessService := NewMock(t)

	payload := `{
		"id": "evt_2",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_1", "customer": {"id": "cus_123"}, "subscription": {"id": "sub_123"}}}
	}`
	businessService.EXPECT().ReconcileSubscription(gomock.Any(), "cus_123", "sub_123", "active").Return(nil)

	rr := httptest.NewRecorder()
	handler.HandleStripe(rr, signedRequest(t, payload))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleStripe_InvoicePaymentFailed(t *testing.T) {
	handler, _, businessService := NewMock(t)

	payload := `{
		"id": "evt_3",
		"type": "invoice.payment_failed",
		"data": {"object": {"id": "in_1", "customer": {"id": "cus_123"}, "subscription": {"id": "sub_123"}}}
	}`
	businessService.EXPECT().ReconcileSubscription(gomock.Any(), "cus_123", "sub_123", "past_due").Return(nil)

	rr := httptest.NewRecorder()
	handler.HandleStripe(rr, signedRequest(t, payload))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleStripe_SubscriptionDeleted(t *testing.T) {
	handler, _, businessService := NewMock(t)

	payload := `{
		"id": "evt_4",
		"type": "customer.subscription.deleted",
		"data": {"object": {"id": "sub_123", "customer": {"id": "cus_123"}}}
	}`
	businessService.EXPECT().ReconcileSubscription(gomock.Any(), "cus_123", "sub_123", "cancelled").Return(nil)

	rr := httptest.NewRecorder()
	handler.HandleStripe(rr, signedRequest(t, payload))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleStripe_UnhandledEvent(t *testing.T) {
	handler, _, _ := NewMock(t)

	payload := `{
		"id": "evt_5",
		"type": "customer.created",
		"data": {"object": {"id": "cus_123"}}
	}`

	rr := httptest.NewRecorder()
	handler.HandleStripe(rr, signedRequest(t, payload))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleStripe_InvalidSignature(t *testing.T) {
	handler, _, _ := NewMock(t)

	req := httptest.NewRequest("POST", "/api/webhooks/stripe",
		bytes.NewReader([]byte(`{"id":"evt_6","type":"payment_intent.succeeded"}`)))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")

	rr := httptest.NewRecorder()
	handler.HandleStripe(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
