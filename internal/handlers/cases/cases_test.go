package cases

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
	"github.com/otr-legal/otr-backend/internal/service/caseservice"
	"github.com/otr-legal/otr-backend/internal/service/matchservice"
	pkgauth "github.com/otr-legal/otr-backend/pkg/auth"
	"github.com/otr-legal/otr-backend/pkg/utils"
)

func NewMock(t *testing.T) (*CaseHandler, *MockService) {
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

func TestCreateCase(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Case created",
			body: `{"violationType":"speeding","ticketNumber":"TK-100","state":"CA","fineAmount":300}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), userID, gomock.Any()).DoAndReturn(
					func(ctx context.Context, uid uuid.UUID, c *domain.Case) (*domain.Case, error) {
						assert.Equal(t, domain.ViolationSpeeding, c.ViolationType)
						assert.Equal(t, "TK-100", c.TicketNumber)
						c.ID = uuid.New()
						c.Status = domain.CaseAssigned
						return c, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Quota exceeded",
			body: `{"violationType":"speeding","state":"CA"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), userID, gomock.Any()).
					Return(nil, caseservice.ErrQuotaExceeded)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "Monthly case quota exceeded",
		},
		{
			name: "Unknown violation type",
			body: `{"violationType":"jaywalking","state":"CA"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), userID, gomock.Any()).
					Return(nil, caseservice.ErrInvalidViolationType)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid violation type",
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

			req := authedRequest("POST", "/api/cases", []byte(tt.body), userID, domain.RoleUser, nil)
			rr := httptest.NewRecorder()

			handler.CreateCase(rr, req)

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

func TestGetCase(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()
	caseID := uuid.New()

	tests := []struct {
		name          string
		caseParam     string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Owner fetches the case",
			caseParam: caseID.String(),
			prepareMock: func() {
				service.EXPECT().GetCase(gomock.Any(), caseID, userID, domain.RoleUser).
					Return(&domain.Case{ID: caseID, UserID: userID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Case not found",
			caseParam: caseID.String(),
			prepareMock: func() {
				service.EXPECT().GetCase(gomock.Any(), caseID, userID, domain.RoleUser).
					Return(nil, caseservice.ErrCaseNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Case not found",
		},
		{
			name:      "Stranger denied",
			caseParam: caseID.String(),
			prepareMock: func() {
				service.EXPECT().GetCase(gomock.Any(), caseID, userID, domain.RoleUser).
					Return(nil, caseservice.ErrNotAllowed)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Forbidden",
		},
		{
			name:          "Malformed case id",
			caseParam:     "not-a-uuid",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid case id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("GET", "/api/cases/"+tt.caseParam, nil, userID, domain.RoleUser,
				map[string]string{"caseID": tt.caseParam})
			rr := httptest.NewRecorder()

			handler.GetCase(rr, req)

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

func TestGetMyCases(t *testing.T) {
	userID := uuid.New()

	t.Run("Client sees own cases", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetUserCases(gomock.Any(), userID).
			Return([]domain.Case{{ID: uuid.New(), UserID: userID}}, nil)

		req := authedRequest("GET", "/api/cases", nil, userID, domain.RoleUser, nil)
		rr := httptest.NewRecorder()
		handler.GetMyCases(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Lawyer sees assigned cases", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetLawyerCases(gomock.Any(), userID).
			Return([]domain.Case{{ID: uuid.New()}}, nil)

		req := authedRequest("GET", "/api/cases", nil, userID, domain.RoleLawyer, nil)
		rr := httptest.NewRecorder()
		handler.GetMyCases(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestUpdateStatus(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()
	caseID := uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Status advanced",
			body: `{"status":"in_progress","note":"retained"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateStatus(gomock.Any(), caseID, domain.CaseInProgress, "retained", userID, domain.RoleLawyer).
					Return(&domain.Case{ID: caseID, Status: domain.CaseInProgress}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Backwards transition rejected",
			body: `{"status":"pending"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateStatus(gomock.Any(), caseID, domain.CasePending, "", userID, domain.RoleLawyer).
					Return(nil, caseservice.ErrInvalidTransition)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Invalid status transition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("PATCH", "/api/cases/"+caseID.String()+"/status", []byte(tt.body),
				userID, domain.RoleLawyer, map[string]string{"caseID": caseID.String()})
			rr := httptest.NewRecorder()

			handler.UpdateStatus(rr, req)

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

func TestRateLawyer(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()
	caseID := uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Rating recorded",
			body: `{"rating":5,"review":"got it dismissed"}`,
			prepareMock: func() {
				service.EXPECT().RateLawyer(gomock.Any(), caseID, userID, 5, "got it dismissed").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already rated",
			body: `{"rating":4}`,
			prepareMock: func() {
				service.EXPECT().RateLawyer(gomock.Any(), caseID, userID, 4, "").
					Return(caseservice.ErrAlreadyRated)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Case already rated",
		},
		{
			name: "Out of range",
			body: `{"rating":9}`,
			prepareMock: func() {
				service.EXPECT().RateLawyer(gomock.Any(), caseID, userID, 9, "").
					Return(caseservice.ErrInvalidRating)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Rating must be between 1 and 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/cases/"+caseID.String()+"/rating", []byte(tt.body),
				userID, domain.RoleUser, map[string]string{"caseID": caseID.String()})
			rr := httptest.NewRecorder()

			handler.RateLawyer(rr, req)

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

func TestReassign(t *testing.T) {
	handler, service := NewMock(t)
	adminID := uuid.New()
	caseID := uuid.New()
	lawyerID := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Reassigned",
			prepareMock: func() {
				service.EXPECT().Reassign(gomock.Any(), caseID, lawyerID, adminID).
					Return(&domain.Case{ID: caseID, LawyerID: &lawyerID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Target lawyer at capacity",
			prepareMock: func() {
				service.EXPECT().Reassign(gomock.Any(), caseID, lawyerID, adminID).
					Return(nil, matchservice.ErrNoLawyerAvailable)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "No lawyer available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			body, _ := json.Marshal(map[string]string{"lawyerId": lawyerID.String()})
			req := authedRequest("POST", "/api/admin/cases/"+caseID.String()+"/reassign", body,
				adminID, domain.RoleAdmin, map[string]string{"caseID": caseID.String()})
			rr := httptest.NewRecorder()

			handler.Reassign(rr, req)

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
