package business

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/dto"
	"github.com/otr-legal/otr-backend/internal/service/businessservice"
	pkgauth "github.com/otr-legal/otr-backend/pkg/auth"
	"github.com/otr-legal/otr-backend/pkg/utils"
)

type Service interface {
	CreateAccount(ctx context.Context, account *domain.BusinessAccount, creator *domain.User) (*domain.BusinessAccount, error)
	GetPlans(ctx context.Context) ([]domain.BusinessPlan, error)
	GetAccount(ctx context.Context, businessID, requesterID uuid.UUID, role domain.Role) (*domain.BusinessAccount, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.BusinessAccount, int, error)
	AddEmployee(ctx context.Context, businessID, requesterID uuid.UUID, role domain.Role, employee *domain.BusinessEmployee) (*domain.BusinessEmployee, error)
	ListEmployees(ctx context.Context, businessID, requesterID uuid.UUID, role domain.Role) ([]domain.BusinessEmployee, error)
	RemoveEmployee(ctx context.Context, businessID, userID, requesterID uuid.UUID, role domain.Role) error
	SubmitFine(ctx context.Context, businessID, requesterID uuid.UUID, role domain.Role, fineTypeID uuid.UUID) (*businessservice.FineSubmission, error)
	GetUsage(ctx context.Context, businessID, requesterID uuid.UUID, role domain.Role) (*domain.BusinessUsage, error)
	IssueMonthlyInvoice(ctx context.Context, businessID uuid.UUID, year, month int) (*domain.BusinessInvoice, error)
	GetInvoices(ctx context.Context, businessID, requesterID uuid.UUID, role domain.Role) ([]domain.BusinessInvoice, error)
	StartCheckout(ctx context.Context, businessID, requesterID uuid.UUID, role domain.Role, successURL, cancelURL string) (string, error)
	ReconcileSubscription(ctx context.Context, customerID, subscriptionID, status string) error
}

type UserService interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type BusinessHandler struct {
	businessService Service
	userService     UserService
}

func New(businessService Service, userService UserService) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
		userService:     userService,
	}
}

func respondBusinessError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, businessservice.ErrPlanNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Plan not found")
	case errors.Is(err, businessservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Business account not found")
	case errors.Is(err, businessservice.ErrEmployeeExists):
		utils.RespondWithError(w, http.StatusConflict, "Employee already added")
	case errors.Is(err, businessservice.ErrEmployeeNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Employee not found")
	case errors.Is(err, businessservice.ErrSubscriptionExpired):
		utils.RespondWithError(w, http.StatusPaymentRequired, "Subscription not active")
	case errors.Is(err, businessservice.ErrFineTypeNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Fine type not found")
	case errors.Is(err, businessservice.ErrNotAllowed):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func businessIDFromURL(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "businessID"))
}

// GetPlans godoc
//
//	@Summary	List available subscription plans
//	@Tags		Business
//	@Produce	json
//	@Success	200	{object}	utils.Response{data=[]domain.BusinessPlan}
//	@Router		/api/business/plans [get]
func (h *BusinessHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.businessService.GetPlans(r.Context())
	if err != nil {
		respondBusinessError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, plans)
}

// CreateAccount godoc
//
//	@Summary	Register a business account on a plan
//	@Tags		Business
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateBusinessAccountRequestDTO	true	"Business details"
//	@Success	201		{object}	utils.Response{data=domain.BusinessAccount}
//	@Router		/api/business/accounts [post]
func (h *BusinessHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBusinessAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx := r.Context()
	creator, err := h.userService.GetUser(ctx, pkgauth.UserIDFromContext(ctx))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	account := &domain.BusinessAccount{
		CompanyName:         req.CompanyName,
		CompanyRegistration: req.CompanyRegistration,
		BusinessType:        req.BusinessType,
		ContactEmail:        req.ContactEmail,
		ContactPhone:        req.ContactPhone,
		ContactPerson:       req.ContactPerson,
		City:                req.City,
		Region:              req.Region,
		PlanID:              req.PlanID,
	}
	created, err := h.businessService.CreateAccount(ctx, account, creator)
	if err != nil {
		respondBusinessError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// GetAccount godoc
//
//	@Summary	Get a business account
//	@Tags		Business
//	@Produce	json
//	@Security	BearerAuth
//	@Param		businessID	path		string	true	"Business ID"
//	@Success	200			{object}	utils.Response{data=domain.BusinessAccount}
//	@Router		/api/business/accounts/{businessID} [get]
func (h *BusinessHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	businessID, err := businessIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid business id")
		return
	}
	ctx := r.Context()
	account, err := h.businessService.GetAccount(ctx, businessID, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx))
	if err != nil {
		respondBusinessError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, account)
}

// ListAccounts godoc
//
//	@Summary	List business accounts (admin)
//	@Tags		Business
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query		int	false	"Page"
//	@Param		limit	query		int	false	"Page size"
//	@Success	200		{object}	utils.Response{data=[]domain.BusinessAccount}
//	@Router		/api/admin/business [get]
func (h *BusinessHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	page, limit := utils.ParsePagination(r)
	accounts, total, err := h.businessService.ListAccounts(r.Context(), limit, (page-1)*limit)
	if err != nil {
		respondBusinessError(w, err)
		return
	}
	utils.RespondWithPage(w, http.StatusOK, accounts, utils.NewPageMeta(page, limit, total))
}

// AddEmployee godoc
//
//	@Summary	Add an employee to the business
//	@Tags		Business
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		businessID	path		string					true	"Business ID"
//	@Param		request		body		dto.AddEmployeeRequestDTO	true	"Employee"
//	@Success	201			{object}	utils.Response{data=domain.BusinessEmployee}
//	@Failure	409			{object}	utils.Response	"Employee already added"
//	@Router		/api/business/accounts/{businessID}/employees [post]
func (h *BusinessHandler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	businessID, err := businessIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid business id")
		return
	}
	var req dto.AddEmployeeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	employee := &domain.BusinessEmployee{
		UserID:   req.UserID,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		IDNumber: req.IDNumber,
		Role:     req.Role,
	}
	ctx := r.Context()
	created, err := h.businessService.AddEmployee(ctx, businessID, pkgauth.UserIDFromContext(ctx),
		pkgauth.RoleFromContext(ctx), employee)
	if err != nil {
		respondBusinessError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// ListEmployees godoc
//
//	@Summary	List the business employees
//	@Tags		Business
//	@Produce	json
//	@Security	BearerAuth
//	@Param		businessID	path		string	true	"Business ID"
//	@Success	200			{object}	utils.Response{data=[]domain.BusinessEmployee}
//	@Router		/api/business/accounts/{businessID}/employees [get]
func (h *BusinessHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	businessID, err := businessIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid business id")
		return
	}
	ctx := r.Context()
	employees, err := h.businessService.ListEmployees(ctx, businessID, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx))
	if err != nil {
		respondBusinessError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, employees)
}

// RemoveEmployee godoc
//
//	@Summary	Remove an employee from the business
//	@Tags		Business
//	@Produce	json
//	@Security	BearerAuth
//	@Param		businessID	path		string	true	"Business ID"
//	@Param		userID		path		string	true	"User ID"
//	@Success	200			{object}	utils.Response
//	@Router		/api/business/accounts/{businessID}/employees/{userID} [delete]
func (h *BusinessHandler) RemoveEmployee(w http.ResponseWriter, r *http.Request) {
	businessID, err := businessIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid business id")
		return
	}
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	ctx := r.Context()
	if err := h.businessService.RemoveEmployee(ctx, businessID, userID,
		pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx)); err != nil {
		respondBusinessError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Employee removed")
}

// SubmitFine godoc
//
//	@Summary	Submit a fine against the plan's monthly allowance
//	@Tags		Business
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		businessID	path		string					true	"Business ID"
//	@Param		request		body		dto.SubmitFineRequestDTO	true	"Fine"
//	@Success	201			{object}	utils.Response{data=dto.SubmitFineResponseDTO}
//	@Failure	402			{object}	utils.Response	"Subscription not active"
//	@Router		/api/business/accounts/{businessID}/fines [post]
func (h *BusinessHandler) SubmitFine(w http.ResponseWriter, r *http.Request) {
	businessID, err := businessIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid business id")
		return
	}
	var req dto.SubmitFineRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx := r.Context()
	result, err := h.businessService.SubmitFine(ctx, businessID, pkgauth.UserIDFromContext(ctx),
		pkgauth.RoleFromContext(ctx), req.FineTypeID)
	if err != nil {
		respondBusinessError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.SubmitFineResponseDTO{
		FinesSubmitted: result.Usage.FinesSubmitted,
		ExtraCost:      result.ExtraCost,
		Warning:        result.Warning,
	})
}

// GetUsage godoc
//
//	@Summary	Get the current month's plan usage
//	@Tags		Business
//	@Produce	json
//	@Security	BearerAuth
//	@Param		businessID	path		string	true	"Business ID"
//	@Success	200			{object}	utils.Response{data=domain.BusinessUsage}
//	@Router		/api/business/accounts/{businessID}/usage [get]
func (h *BusinessHandler) GetUsage(w http.ResponseWriter, r *http.Request) {
	businessID, err := businessIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid business id")
		return
	}
	ctx := r.Context()
	usage, err := h.businessService.GetUsage(ctx, businessID, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx))
	if err != nil {
		respondBusinessError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, usage)
}

// IssueInvoice godoc
//
//	@Summary	Issue the monthly invoice for a business (admin)
//	@Tags		Business
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		businessID	path		string						true	"Business ID"
//	@Param		request		body		dto.IssueInvoiceRequestDTO	true	"Billing period"
//	@Success	201			{object}	utils.Response{data=domain.BusinessInvoice}
//	@Router		/api/admin/business/{businessID}/invoices [post]
func (h *BusinessHandler) IssueInvoice(w http.ResponseWriter, r *http.Request) {
	businessID, err := businessIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid business id")
		return
	}
	var req dto.IssueInvoiceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Month < 1 || req.Month > 12 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid billing month")
		return
	}
	inv, err := h.businessService.IssueMonthlyInvoice(r.Context(), businessID, req.Year, req.Month)
	if err != nil {
		respondBusinessError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, inv)
}

// GetInvoices godoc
//
//	@Summary	List the business invoices
//	@Tags		Business
//	@Produce	json
//	@Security	BearerAuth
//	@Param		businessID	path		string	true	"Business ID"
//	@Success	200			{object}	utils.Response{data=[]domain.BusinessInvoice}
//	@Router		/api/business/accounts/{businessID}/invoices [get]
func (h *BusinessHandler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	businessID, err := businessIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid business id")
		return
	}
	ctx := r.Context()
	invoices, err := h.businessService.GetInvoices(ctx, businessID, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx))
	if err != nil {
		respondBusinessError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, invoices)
}

// StartCheckout godoc
//
//	@Summary	Open a Stripe checkout session for the plan subscription
//	@Tags		Business
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		businessID	path		string				true	"Business ID"
//	@Param		request		body		dto.CheckoutRequestDTO	true	"Redirect URLs"
//	@Success	200			{object}	utils.Response{data=dto.CheckoutResponseDTO}
//	@Router		/api/business/accounts/{businessID}/checkout [post]
func (h *BusinessHandler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	businessID, err := businessIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid business id")
		return
	}
	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx := r.Context()
	url, err := h.businessService.StartCheckout(ctx, businessID, pkgauth.UserIDFromContext(ctx),
		pkgauth.RoleFromContext(ctx), req.SuccessURL, req.CancelURL)
	if err != nil {
		respondBusinessError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CheckoutResponseDTO{URL: url})
}
