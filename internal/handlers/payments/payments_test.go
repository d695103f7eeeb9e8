package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/service/paymentservice"
	pkgauth "github.com/otr-legal/otr-backend/pkg/auth"
	"github.com/otr-legal/otr-backend/pkg/utils"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string, body []byte, userID uuid.UUID, role domain.Role, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, userID)
	ctx = context.WithValue(ctx, pkgauth.RoleKey, role)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

func TestCreateIntent(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()
	caseID := uuid.New()
	paymentID := uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Intent created",
			body: `{"caseId":"` + caseID.String() + `"}`,
			prepareMock: func() {
				service.EXPECT().CreateIntent(gomock.Any(), caseID, userID).
					Return(&domain.Payment{ID: paymentID, Amount: 249}, "pi_123_secret", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Case already paid",
			body: `{"caseId":"` + caseID.String() + `"}`,
			prepareMock: func() {
				service.EXPECT().CreateIntent(gomock.Any(), caseID, userID).
					Return(nil, "", paymentservice.ErrCaseAlreadyPaid)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Case already paid",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/payments/intent", []byte(tt.body), userID, domain.RoleUser, nil)
			rr := httptest.NewRecorder()

			handler.CreateIntent(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()
	paymentID := uuid.New()

	tests := []struct {
		name          string
		paymentParam  string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:         "Payment confirmed",
			paymentParam: paymentID.String(),
			prepareMock: func() {
				service.EXPECT().Confirm(gomock.Any(), paymentID, userID).
					Return(&domain.Payment{ID: paymentID, Status: domain.PaymentCompleted}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Charge still pending",
			paymentParam: paymentID.String(),
			prepareMock: func() {
				service.EXPECT().Confirm(gomock.Any(), paymentID, userID).
					Return(nil, paymentservice.ErrPaymentNotCompleted)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Payment not completed",
		},
		{
			name:          "Malformed payment id",
			paymentParam:  "not-a-uuid",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid payment id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/payments/"+tt.paymentParam+"/confirm", nil,
				userID, domain.RoleUser, map[string]string{"paymentID": tt.paymentParam})
			rr := httptest.NewRecorder()

			handler.Confirm(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestRequestRefund(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()
	paymentID := uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Refund queued",
			body: `{"reason":"case went badly"}`,
			prepareMock: func() {
				service.EXPECT().RequestRefund(gomock.Any(), paymentID, userID, "case went badly").
					Return(&domain.Payment{ID: paymentID, RefundStatus: domain.RefundPending}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Duplicate request",
			body: `{"reason":"again"}`,
			prepareMock: func() {
				service.EXPECT().RequestRefund(gomock.Any(), paymentID, userID, "again").
					Return(nil, paymentservice.ErrAlreadyRefunded)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Refund already requested",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/payments/"+paymentID.String()+"/refund", []byte(tt.body),
				userID, domain.RoleUser, map[string]string{"paymentID": paymentID.String()})
			rr := httptest.NewRecorder()

			handler.RequestRefund(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestProcessRefund(t *testing.T) {
	handler, service := NewMock(t)
	adminID := uuid.New()
	paymentID := uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Refund approved",
			body: `{"approve":true}`,
			prepareMock: func() {
				service.EXPECT().ProcessRefund(gomock.Any(), paymentID, true).
					Return(&domain.Payment{ID: paymentID, Status: domain.PaymentRefunded}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Refund rejected",
			body: `{"approve":false}`,
			prepareMock: func() {
				service.EXPECT().ProcessRefund(gomock.Any(), paymentID, false).
					Return(&domain.Payment{ID: paymentID, RefundStatus: domain.RefundRejected}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Nothing pending",
			body: `{"approve":true}`,
			prepareMock: func() {
				service.EXPECT().ProcessRefund(gomock.Any(), paymentID, true).
					Return(nil, paymentservice.ErrRefundNotPending)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Refund not pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/admin/refunds/"+paymentID.String(), []byte(tt.body),
				adminID, domain.RoleAdmin, map[string]string{"paymentID": paymentID.String()})
			rr := httptest.NewRecorder()

			handler.ProcessRefund(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetHistory(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()
	service.EXPECT().GetHistory(gomock.Any(), userID, domain.RoleUser).
		Return([]domain.Payment{{ID: uuid.New(), UserID: userID}}, nil)

	req := authedRequest("GET", "/api/payments", nil, userID, domain.RoleUser, nil)
	rr := httptest.NewRecorder()
	handler.GetHistory(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListPayments(t *testing.T) {
	handler, service := NewMock(t)
	adminID := uuid.New()
	service.EXPECT().ListPayments(gomock.Any(), 20, 0).
		Return([]domain.Payment{{ID: uuid.New()}}, 1, nil)

	req := authedRequest("GET", "/api/admin/payments", nil, adminID, domain.RoleAdmin, nil)
	rr := httptest.NewRecorder()
	handler.ListPayments(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp utils.Response
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Total)
}

func TestIssueInvoice(t *testing.T) {
	adminID := uuid.New()
	caseID := uuid.New()
	params := map[string]string{"caseID": caseID.String()}

	t.Run("Empty body invoices the representation fee", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().IssueInvoice(gomock.Any(), caseID, gomock.Nil(), 0.0, 0.0).
			Return(&domain.Invoice{InvoiceNumber: "INV-12345678-202609", TotalAmount: 249}, nil)

		req := authedRequest("POST", "/api/payments/invoices/"+caseID.String(), nil, adminID, domain.RoleAdmin, params)
		rr := httptest.NewRecorder()
		handler.IssueInvoice(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Line items, tax and discount pass through", func(t *testing.T) {
		handler, service := NewMock(t)
		body := []byte(`{"lineItems":[{"description":"Court filing fee","quantity":2,"unitPrice":35}],"taxPercentage":10,"discountAmount":20}`)
		service.EXPECT().IssueInvoice(gomock.Any(), caseID,
			[]domain.LineItem{{Description: "Court filing fee", Quantity: 2, UnitPrice: 35}}, 10.0, 20.0).
			Return(&domain.Invoice{TotalAmount: 332.9}, nil)

		req := authedRequest("POST", "/api/payments/invoices/"+caseID.String(), body, adminID, domain.RoleAdmin, params)
		rr := httptest.NewRecorder()
		handler.IssueInvoice(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Malformed body", func(t *testing.T) {
		handler, _ := NewMock(t)

		req := authedRequest("POST", "/api/payments/invoices/"+caseID.String(), []byte(`{bad`), adminID, domain.RoleAdmin, params)
		rr := httptest.NewRecorder()
		handler.IssueInvoice(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Invalid case id", func(t *testing.T) {
		handler, _ := NewMock(t)

		req := authedRequest("POST", "/api/payments/invoices/nope", nil, adminID, domain.RoleAdmin, map[string]string{"caseID": "nope"})
		rr := httptest.NewRecorder()
		handler.IssueInvoice(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
