package business

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
	"github.com/otr-legal/otr-backend/internal/service/businessservice"
	pkgauth "github.com/otr-legal/otr-backend/pkg/auth"
	"github.com/otr-legal/otr-backend/pkg/utils"
)

func NewMock(t *testing.T) (*BusinessHandler, *MockService, *MockUserService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	userService := NewMockUserService(ctrl)
	handler := New(service, userService)
	defer ctrl.Finish()
	return handler, service, userService
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

func TestGetPlans(t *testing.T) {
	handler, service, _ := NewMock(t)
	service.EXPECT().GetPlans(gomock.Any()).Return([]domain.BusinessPlan{
		{ID: uuid.New(), Name: "Starter", MonthlyPrice: 299},
		{ID: uuid.New(), Name: "Fleet", MonthlyPrice: 899},
	}, nil)

	req := httptest.NewRequest("GET", "/api/business/plans", nil)
	rr := httptest.NewRecorder()
	handler.GetPlans(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreateAccount(t *testing.T) {
	handler, service, userService := NewMock(t)
	userID := uuid.New()
	planID := uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Account created",
			body: `{"companyName":"Fast Fleet LLC","contactEmail":"ops@fastfleet.example","planId":"` + planID.String() + `"}`,
			prepareMock: func() {
				userService.EXPECT().GetUser(gomock.Any(), userID).
					Return(&domain.User{ID: userID, Email: "ops@fastfleet.example"}, nil)
				service.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, account *domain.BusinessAccount, creator *domain.User) (*domain.BusinessAccount, error) {
						assert.Equal(t, "Fast Fleet LLC", account.CompanyName)
						assert.Equal(t, planID, account.PlanID)
						account.ID = uuid.New()
						return account, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Unknown plan",
			body: `{"companyName":"Fast Fleet LLC","planId":"` + planID.String() + `"}`,
			prepareMock: func() {
				userService.EXPECT().GetUser(gomock.Any(), userID).
					Return(&domain.User{ID: userID}, nil)
				service.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, businessservice.ErrPlanNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Plan not found",
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

			req := authedRequest("POST", "/api/business/accounts", []byte(tt.body), userID, domain.RoleUser, nil)
			rr := httptest.NewRecorder()

			handler.CreateAccount(rr, req)

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

func TestSubmitFine(t *testing.T) {
	handler, service, _ := NewMock(t)
	userID := uuid.New()
	businessID := uuid.New()
	fineTypeID := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Within the plan limit",
			prepareMock: func() {
				service.EXPECT().
					SubmitFine(gomock.Any(), businessID, userID, domain.RoleUser, fineTypeID).
					Return(&businessservice.FineSubmission{
						Usage: &domain.BusinessUsage{FinesSubmitted: 2},
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Over the limit with surcharge",
			prepareMock: func() {
				service.EXPECT().
					SubmitFine(gomock.Any(), businessID, userID, domain.RoleUser, fineTypeID).
					Return(&businessservice.FineSubmission{
						Usage:     &domain.BusinessUsage{FinesSubmitted: 6},
						ExtraCost: businessservice.ExtraFineCost,
						Warning:   "Plan limit of 5 fines exceeded, surcharge of 50 applied",
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Subscription lapsed",
			prepareMock: func() {
				service.EXPECT().
					SubmitFine(gomock.Any(), businessID, userID, domain.RoleUser, fineTypeID).
					Return(nil, businessservice.ErrSubscriptionExpired)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "Subscription not active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			body := []byte(`{"fineTypeId":"` + fineTypeID.String() + `"}`)
			req := authedRequest("POST", "/api/business/accounts/"+businessID.String()+"/fines", body,
				userID, domain.RoleUser, map[string]string{"businessID": businessID.String()})
			rr := httptest.NewRecorder()

			handler.SubmitFine(rr, req)

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

func TestRemoveEmployee(t *testing.T) {
	handler, service, _ := NewMock(t)
	requesterID := uuid.New()
	businessID := uuid.New()
	employeeUserID := uuid.New()

	t.Run("Removed", func(t *testing.T) {
		service.EXPECT().
			RemoveEmployee(gomock.Any(), businessID, employeeUserID, requesterID, domain.RoleUser).
			Return(nil)

		req := authedRequest("DELETE",
			"/api/business/accounts/"+businessID.String()+"/employees/"+employeeUserID.String(), nil,
			requesterID, domain.RoleUser,
			map[string]string{"businessID": businessID.String(), "userID": employeeUserID.String()})
		rr := httptest.NewRecorder()

		handler.RemoveEmployee(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Unknown employee", func(t *testing.T) {
		service.EXPECT().
			RemoveEmployee(gomock.Any(), businessID, employeeUserID, requesterID, domain.RoleUser).
			Return(businessservice.ErrEmployeeNotFound)

		req := authedRequest("DELETE",
			"/api/business/accounts/"+businessID.String()+"/employees/"+employeeUserID.String(), nil,
			requesterID, domain.RoleUser,
			map[string]string{"businessID": businessID.String(), "userID": employeeUserID.String()})
		rr := httptest.NewRecorder()

		handler.RemoveEmployee(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestIssueInvoice(t *testing.T) {
	handler, service, _ := NewMock(t)
	adminID := uuid.New()
	businessID := uuid.New()

	t.Run("Invoice issued", func(t *testing.T) {
		service.EXPECT().IssueMonthlyInvoice(gomock.Any(), businessID, 2026, 8).
			Return(&domain.BusinessInvoice{ID: uuid.New(), Total: 688}, nil)

		req := authedRequest("POST", "/api/admin/business/"+businessID.String()+"/invoices",
			[]byte(`{"year":2026,"month":8}`), adminID, domain.RoleAdmin,
			map[string]string{"businessID": businessID.String()})
		rr := httptest.NewRecorder()

		handler.IssueInvoice(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Month out of range", func(t *testing.T) {
		req := authedRequest("POST", "/api/admin/business/"+businessID.String()+"/invoices",
			[]byte(`{"year":2026,"month":13}`), adminID, domain.RoleAdmin,
			map[string]string{"businessID": businessID.String()})
		rr := httptest.NewRecorder()

		handler.IssueInvoice(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestStartCheckout(t *testing.T) {
	handler, service, _ := NewMock(t)
	userID := uuid.New()
	businessID := uuid.New()

	service.EXPECT().
		StartCheckout(gomock.Any(), businessID, userID, domain.RoleUser,
			"https://app.example/ok", "https://app.example/cancel").
		Return("https://checkout.stripe.com/c/pay/cs_123", nil)

	body := []byte(`{"successUrl":"https://app.example/ok","cancelUrl":"https://app.example/cancel"}`)
	req := authedRequest("POST", "/api/business/accounts/"+businessID.String()+"/checkout", body,
		userID, domain.RoleUser, map[string]string{"businessID": businessID.String()})
	rr := httptest.NewRecorder()

	handler.StartCheckout(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
