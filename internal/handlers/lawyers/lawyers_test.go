package lawyers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/service/lawyerservice"
	pkgauth "github.com/otr-legal/otr-backend/pkg/auth"
)

func NewMock(t *testing.T) (*LawyerHandler, *MockService) {
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

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Profile created",
			body: `{"licenseNumber":"CA-12345","barAssociation":"CA Bar","yearsOfExperience":8,"specializations":["speeding"],"jurisdictions":[{"state":"CA"}],"maxCases":10}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), userID, gomock.Any()).DoAndReturn(
					func(ctx context.Context, uid uuid.UUID, lawyer *domain.Lawyer) (*domain.Lawyer, error) {
						assert.Equal(t, "CA-12345", lawyer.LicenseNumber)
						assert.Equal(t, 8, lawyer.YearsOfExperience)
						lawyer.ID = uuid.New()
						return lawyer, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "License already registered",
			body: `{"licenseNumber":"CA-12345"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), userID, gomock.Any()).
					Return(nil, lawyerservice.ErrLicenseTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Profile already exists",
			body: `{"licenseNumber":"CA-12345"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), userID, gomock.Any()).
					Return(nil, lawyerservice.ErrAlreadyRegistered)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Missing license number",
			body:         `{"barAssociation":"CA Bar"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest(http.MethodPost, "/api/lawyers/register", []byte(tt.body), userID, domain.RoleUser, nil)
			rec := httptest.NewRecorder()

			handler.Register(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestGetLawyerHandler(t *testing.T) {
	handler, service := NewMock(t)
	lawyerID := uuid.New()

	tests := []struct {
		name         string
		lawyerID     string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Lawyer found",
			lawyerID: lawyerID.String(),
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), lawyerID).
					Return(&domain.Lawyer{ID: lawyerID, LicenseNumber: "CA-12345"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "Lawyer not found",
			lawyerID: lawyerID.String(),
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), lawyerID).
					Return(nil, lawyerservice.ErrLawyerNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Malformed lawyer id",
			lawyerID:     "not-a-uuid",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest(http.MethodGet, "/api/lawyers/"+tt.lawyerID, nil,
				uuid.New(), domain.RoleUser, map[string]string{"lawyerID": tt.lawyerID})
			rec := httptest.NewRecorder()

			handler.GetLawyer(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestUpdateProfileHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Profile updated with bank details",
			body: `{"bio":"Traffic defense","bankAccountNumber":"000123","bankRoutingNumber":"110000000","bankAccountHolder":"Jane Roe"}`,
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).DoAndReturn(
					func(ctx context.Context, uid uuid.UUID, update *domain.Lawyer) (*domain.Lawyer, error) {
						assert.Equal(t, "000123", update.BankAccountNumber)
						assert.Equal(t, "Traffic defense", update.Bio)
						return update, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No lawyer profile",
			body: `{"bio":"x"}`,
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).
					Return(nil, lawyerservice.ErrLawyerNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest(http.MethodPut, "/api/lawyers/me", []byte(tt.body), userID, domain.RoleLawyer, nil)
			rec := httptest.NewRecorder()

			handler.UpdateProfile(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestSetAvailabilityHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Availability turned off",
			body: `{"isAvailable":false}`,
			prepareMock: func() {
				service.EXPECT().SetAvailability(gomock.Any(), userID, false).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No lawyer profile",
			body: `{"isAvailable":true}`,
			prepareMock: func() {
				service.EXPECT().SetAvailability(gomock.Any(), userID, true).
					Return(lawyerservice.ErrLawyerNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest(http.MethodPatch, "/api/lawyers/me/availability", []byte(tt.body), userID, domain.RoleLawyer, nil)
			rec := httptest.NewRecorder()

			handler.SetAvailability(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestSearchHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Search with filters",
			target: "/api/lawyers?state=CA&specialization=speeding&minRating=4.5&sort=rating&limit=10",
			prepareMock: func() {
				service.EXPECT().Search(gomock.Any(), "CA", "speeding", 4.5, "rating", 10).
					Return([]domain.Lawyer{{ID: uuid.New()}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Search without filters",
			target: "/api/lawyers",
			prepareMock: func() {
				service.EXPECT().Search(gomock.Any(), "", "", 0.0, "", 0).
					Return([]domain.Lawyer{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Search fails",
			target: "/api/lawyers",
			prepareMock: func() {
				service.EXPECT().Search(gomock.Any(), "", "", 0.0, "", 0).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			handler.Search(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestApproveHandler(t *testing.T) {
	handler, service := NewMock(t)
	adminID := uuid.New()
	lawyerID := uuid.New()

	tests := []struct {
		name         string
		lawyerID     string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Lawyer approved",
			lawyerID: lawyerID.String(),
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), lawyerID, adminID).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "Lawyer not found",
			lawyerID: lawyerID.String(),
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), lawyerID, adminID).
					Return(lawyerservice.ErrLawyerNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Malformed lawyer id",
			lawyerID:     "nope",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest(http.MethodPost, "/api/admin/lawyers/"+tt.lawyerID+"/approve", nil,
				adminID, domain.RoleAdmin, map[string]string{"lawyerID": tt.lawyerID})
			rec := httptest.NewRecorder()

			handler.Approve(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestRejectHandler(t *testing.T) {
	handler, service := NewMock(t)
	adminID := uuid.New()
	lawyerID := uuid.New()

	service.EXPECT().Reject(gomock.Any(), lawyerID, "unverifiable license").Return(nil)

	req := authedRequest(http.MethodPost, "/api/admin/lawyers/"+lawyerID.String()+"/reject",
		[]byte(`{"reason":"unverifiable license"}`),
		adminID, domain.RoleAdmin, map[string]string{"lawyerID": lawyerID.String()})
	rec := httptest.NewRecorder()

	handler.Reject(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetPendingHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetPending(gomock.Any()).
		Return([]domain.Lawyer{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	req := authedRequest(http.MethodGet, "/api/admin/lawyers/pending", nil,
		uuid.New(), domain.RoleAdmin, nil)
	rec := httptest.NewRecorder()

	handler.GetPending(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
