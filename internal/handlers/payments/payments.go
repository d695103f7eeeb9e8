package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/dto"
	"github.com/otr-legal/otr-backend/internal/service/paymentservice"
	pkgauth "github.com/otr-legal/otr-backend/pkg/auth"
	"github.com/otr-legal/otr-backend/pkg/utils"
)

type Service interface {
	CreateIntent(ctx context.Context, caseID, userID uuid.UUID) (*domain.Payment, string, error)
	Confirm(ctx context.Context, paymentID, userID uuid.UUID) (*domain.Payment, error)
	RequestRefund(ctx context.Context, paymentID, userID uuid.UUID, reason string) (*domain.Payment, error)
	ProcessRefund(ctx context.Context, paymentID uuid.UUID, approve bool) (*domain.Payment, error)
	GetPayment(ctx context.Context, paymentID, requesterID uuid.UUID, role domain.Role) (*domain.Payment, error)
	GetHistory(ctx context.Context, requesterID uuid.UUID, role domain.Role) ([]domain.Payment, error)
	ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, int, error)
	GetPendingRefunds(ctx context.Context) ([]domain.Payment, error)
	IssueInvoice(ctx context.Context, caseID uuid.UUID, extra []domain.LineItem, taxPercent, discount float64) (*domain.Invoice, error)
	GetInvoices(ctx context.Context, userID uuid.UUID) ([]domain.Invoice, error)
	HandleIntentSucceeded(ctx context.Context, intentID, chargeID string) error
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func respondPaymentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, paymentservice.ErrPaymentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Payment not found")
	case errors.Is(err, paymentservice.ErrCaseNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Case not found")
	case errors.Is(err, paymentservice.ErrNotAllowed):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, paymentservice.ErrCaseAlreadyPaid):
		utils.RespondWithError(w, http.StatusConflict, "Case already paid")
	case errors.Is(err, paymentservice.ErrPaymentNotCompleted):
		utils.RespondWithError(w, http.StatusConflict, "Payment not completed")
	case errors.Is(err, paymentservice.ErrRefundNotPending):
		utils.RespondWithError(w, http.StatusConflict, "Refund not pending")
	case errors.Is(err, paymentservice.ErrAlreadyRefunded):
		utils.RespondWithError(w, http.StatusConflict, "Refund already requested")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func paymentIDFromURL(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "paymentID"))
}

// CreateIntent godoc
//
//	@Summary		Open a payment intent for a case
//	@Description	Returns the Stripe client secret for the quoted flat fee
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateIntentRequestDTO	true	"Case"
//	@Success		201		{object}	utils.Response{data=dto.CreateIntentResponseDTO}
//	@Failure		409		{object}	utils.Response	"Case already paid"
//	@Router			/api/payments/intent [post]
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateIntentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payment, clientSecret, err := h.paymentService.CreateIntent(r.Context(), req.CaseID, pkgauth.UserIDFromContext(r.Context()))
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateIntentResponseDTO{
		PaymentID:    payment.ID,
		ClientSecret: clientSecret,
		Amount:       payment.Amount,
	})
}

// Confirm godoc
//
//	@Summary	Confirm a payment after the client completed the charge
//	@Tags		Payments
//	@Produce	json
//	@Security	BearerAuth
//	@Param		paymentID	path		string	true	"Payment ID"
//	@Success	200			{object}	utils.Response{data=domain.Payment}
//	@Failure	409			{object}	utils.Response	"Payment not completed"
//	@Router		/api/payments/{paymentID}/confirm [post]
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	paymentID, err := paymentIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}
	payment, err := h.paymentService.Confirm(r.Context(), paymentID, pkgauth.UserIDFromContext(r.Context()))
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payment)
}

// RequestRefund godoc
//
//	@Summary	Request a refund for a completed payment
//	@Tags		Payments
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		paymentID	path		string				true	"Payment ID"
//	@Param		request		body		dto.RefundRequestDTO	true	"Reason"
//	@Success	200			{object}	utils.Response{data=domain.Payment}
//	@Router		/api/payments/{paymentID}/refund [post]
func (h *PaymentHandler) RequestRefund(w http.ResponseWriter, r *http.Request) {
	paymentID, err := paymentIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}
	var req dto.RefundRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payment, err := h.paymentService.RequestRefund(r.Context(), paymentID, pkgauth.UserIDFromContext(r.Context()), req.Reason)
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payment)
}

// ProcessRefund godoc
//
//	@Summary	Approve or reject a pending refund (admin)
//	@Tags		Payments
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		paymentID	path		string						true	"Payment ID"
//	@Param		request		body		dto.ProcessRefundRequestDTO	true	"Decision"
//	@Success	200			{object}	utils.Response{data=domain.Payment}
//	@Router		/api/admin/refunds/{paymentID} [post]
func (h *PaymentHandler) ProcessRefund(w http.ResponseWriter, r *http.Request) {
	paymentID, err := paymentIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}
	var req dto.ProcessRefundRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payment, err := h.paymentService.ProcessRefund(r.Context(), paymentID, req.Approve)
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payment)
}

// GetPayment godoc
//
//	@Summary	Get a payment by id
//	@Tags		Payments
//	@Produce	json
//	@Security	BearerAuth
//	@Param		paymentID	path		string	true	"Payment ID"
//	@Success	200			{object}	utils.Response{data=domain.Payment}
//	@Router		/api/payments/{paymentID} [get]
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := paymentIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}
	ctx := r.Context()
	payment, err := h.paymentService.GetPayment(ctx, paymentID, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx))
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payment)
}

// GetHistory godoc
//
//	@Summary	List the requester's payments
//	@Tags		Payments
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response{data=[]domain.Payment}
//	@Router		/api/payments [get]
func (h *PaymentHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payments, err := h.paymentService.GetHistory(ctx, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx))
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payments)
}

// ListPayments godoc
//
//	@Summary	List all payments (admin)
//	@Tags		Payments
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query		int	false	"Page"
//	@Param		limit	query		int	false	"Page size"
//	@Success	200		{object}	utils.Response{data=[]domain.Payment}
//	@Router		/api/admin/payments [get]
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	page, limit := utils.ParsePagination(r)
	payments, total, err := h.paymentService.ListPayments(r.Context(), limit, (page-1)*limit)
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithPage(w, http.StatusOK, payments, utils.NewPageMeta(page, limit, total))
}

// GetPendingRefunds godoc
//
//	@Summary	List refunds awaiting review (admin)
//	@Tags		Payments
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response{data=[]domain.Payment}
//	@Router		/api/admin/refunds [get]
func (h *PaymentHandler) GetPendingRefunds(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.GetPendingRefunds(r.Context())
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payments)
}

// IssueInvoice godoc
//
//	@Summary	Issue an invoice for a paid case
//	@Tags		Payments
//	@Produce	json
//	@Security	BearerAuth
//	@Param		caseID	path		string						true	"Case ID"
//	@Param		request	body		dto.CaseInvoiceRequestDTO	false	"Extra line items, tax and discount"
//	@Success	201		{object}	utils.Response{data=domain.Invoice}
//	@Router		/api/payments/invoices/{caseID} [post]
func (h *PaymentHandler) IssueInvoice(w http.ResponseWriter, r *http.Request) {
	caseID, err := uuid.Parse(chi.URLParam(r, "caseID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid case id")
		return
	}
	// The body is optional: a bare request invoices the representation fee.
	var req dto.CaseInvoiceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	inv, err := h.paymentService.IssueInvoice(r.Context(), caseID, req.LineItems, req.TaxPercentage, req.DiscountAmount)
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, inv)
}

// GetInvoices godoc
//
//	@Summary	List the requester's invoices
//	@Tags		Payments
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response{data=[]domain.Invoice}
//	@Router		/api/payments/invoices [get]
func (h *PaymentHandler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.paymentService.GetInvoices(r.Context(), pkgauth.UserIDFromContext(r.Context()))
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, invoices)
}
