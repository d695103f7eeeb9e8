package lawyers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/dto"
	"github.com/otr-legal/otr-backend/internal/service/lawyerservice"
	pkgauth "github.com/otr-legal/otr-backend/pkg/auth"
	"github.com/otr-legal/otr-backend/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, userID uuid.UUID, lawyer *domain.Lawyer) (*domain.Lawyer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lawyer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Lawyer, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update *domain.Lawyer) (*domain.Lawyer, error)
	SetAvailability(ctx context.Context, userID uuid.UUID, isAvailable bool) error
	Search(ctx context.Context, state, specialization string, minRating float64, sortBy string, limit int) ([]domain.Lawyer, error)
	Approve(ctx context.Context, lawyerID, approvedBy uuid.UUID) error
	Reject(ctx context.Context, lawyerID uuid.UUID, reason string) error
	GetPending(ctx context.Context) ([]domain.Lawyer, error)
}

type LawyerHandler struct {
	lawyerService Service
}

func New(lawyerService Service) *LawyerHandler {
	return &LawyerHandler{
		lawyerService: lawyerService,
	}
}

func respondLawyerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lawyerservice.ErrLawyerNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Lawyer not found")
	case errors.Is(err, lawyerservice.ErrLicenseTaken):
		utils.RespondWithError(w, http.StatusConflict, "License number already registered")
	case errors.Is(err, lawyerservice.ErrAlreadyRegistered):
		utils.RespondWithError(w, http.StatusConflict, "Lawyer profile already exists")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Register godoc
//
//	@Summary		Register as a lawyer
//	@Description	Create a lawyer profile pending admin approval
//	@Tags			Lawyers
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.RegisterLawyerRequestDTO	true	"Lawyer profile"
//	@Success		201		{object}	utils.Response{data=domain.Lawyer}
//	@Failure		409		{object}	utils.Response	"License already registered"
//	@Router			/api/lawyers/register [post]
func (h *LawyerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterLawyerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.LicenseNumber == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "License number is required")
		return
	}
	lawyer := &domain.Lawyer{
		LicenseNumber:     req.LicenseNumber,
		BarAssociation:    req.BarAssociation,
		YearsOfExperience: req.YearsOfExperience,
		Specializations:   req.Specializations,
		Jurisdictions:     req.Jurisdictions,
		Bio:               req.Bio,
		MaxCases:          req.MaxCases,
	}
	created, err := h.lawyerService.Register(r.Context(), pkgauth.UserIDFromContext(r.Context()), lawyer)
	if err != nil {
		respondLawyerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// GetProfile godoc
//
//	@Summary	Get the requester's lawyer profile
//	@Tags		Lawyers
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response{data=domain.Lawyer}
//	@Failure	404	{object}	utils.Response	"Lawyer not found"
//	@Router		/api/lawyers/me [get]
func (h *LawyerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	lawyer, err := h.lawyerService.GetByUserID(r.Context(), pkgauth.UserIDFromContext(r.Context()))
	if err != nil {
		respondLawyerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, lawyer)
}

// GetLawyer godoc
//
//	@Summary	Get a lawyer's public profile
//	@Tags		Lawyers
//	@Produce	json
//	@Param		lawyerID	path		string	true	"Lawyer ID"
//	@Success	200			{object}	utils.Response{data=domain.Lawyer}
//	@Failure	404			{object}	utils.Response	"Lawyer not found"
//	@Router		/api/lawyers/{lawyerID} [get]
func (h *LawyerHandler) GetLawyer(w http.ResponseWriter, r *http.Request) {
	lawyerID, err := uuid.Parse(chi.URLParam(r, "lawyerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid lawyer id")
		return
	}
	lawyer, err := h.lawyerService.GetByID(r.Context(), lawyerID)
	if err != nil {
		respondLawyerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, lawyer)
}

// UpdateProfile godoc
//
//	@Summary	Update the lawyer profile
//	@Tags		Lawyers
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.UpdateLawyerRequestDTO	true	"Profile update"
//	@Success	200		{object}	utils.Response{data=domain.Lawyer}
//	@Router		/api/lawyers/me [put]
func (h *LawyerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateLawyerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	update := &domain.Lawyer{
		BarAssociation:    req.BarAssociation,
		YearsOfExperience: req.YearsOfExperience,
		Specializations:   req.Specializations,
		Jurisdictions:     req.Jurisdictions,
		Bio:               req.Bio,
		MaxCases:          req.MaxCases,
		BankAccountNumber: req.BankAccountNumber,
		BankRoutingNumber: req.BankRoutingNumber,
		BankAccountHolder: req.BankAccountHolder,
	}
	lawyer, err := h.lawyerService.UpdateProfile(r.Context(), pkgauth.UserIDFromContext(r.Context()), update)
	if err != nil {
		respondLawyerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, lawyer)
}

// SetAvailability godoc
//
//	@Summary	Toggle the lawyer's availability for new cases
//	@Tags		Lawyers
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.SetAvailabilityRequestDTO	true	"Availability"
//	@Success	200		{object}	utils.Response
//	@Router		/api/lawyers/me/availability [patch]
func (h *LawyerHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	var req dto.SetAvailabilityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.lawyerService.SetAvailability(r.Context(), pkgauth.UserIDFromContext(r.Context()), req.IsAvailable); err != nil {
		respondLawyerError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Availability updated")
}

// Search godoc
//
//	@Summary	Search approved lawyers
//	@Tags		Lawyers
//	@Produce	json
//	@Param		state			query		string	false	"State"
//	@Param		specialization	query		string	false	"Violation type"
//	@Param		minRating		query		number	false	"Minimum rating"
//	@Param		sort			query		string	false	"rating, experience or success"
//	@Param		limit			query		int		false	"Result limit"
//	@Success	200				{object}	utils.Response{data=[]domain.Lawyer}
//	@Router		/api/lawyers [get]
func (h *LawyerHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	minRating, _ := strconv.ParseFloat(q.Get("minRating"), 64)
	limit, _ := strconv.Atoi(q.Get("limit"))
	lawyers, err := h.lawyerService.Search(r.Context(), q.Get("state"), q.Get("specialization"),
		minRating, q.Get("sort"), limit)
	if err != nil {
		respondLawyerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, lawyers)
}

// Approve godoc
//
//	@Summary	Approve a pending lawyer (admin)
//	@Tags		Lawyers
//	@Produce	json
//	@Security	BearerAuth
//	@Param		lawyerID	path		string	true	"Lawyer ID"
//	@Success	200			{object}	utils.Response
//	@Router		/api/admin/lawyers/{lawyerID}/approve [post]
func (h *LawyerHandler) Approve(w http.ResponseWriter, r *http.Request) {
	lawyerID, err := uuid.Parse(chi.URLParam(r, "lawyerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid lawyer id")
		return
	}
	if err := h.lawyerService.Approve(r.Context(), lawyerID, pkgauth.UserIDFromContext(r.Context())); err != nil {
		respondLawyerError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Lawyer approved")
}

// Reject godoc
//
//	@Summary	Reject a pending lawyer (admin)
//	@Tags		Lawyers
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		lawyerID	path		string					true	"Lawyer ID"
//	@Param		request		body		dto.RejectLawyerRequestDTO	true	"Reason"
//	@Success	200			{object}	utils.Response
//	@Router		/api/admin/lawyers/{lawyerID}/reject [post]
func (h *LawyerHandler) Reject(w http.ResponseWriter, r *http.Request) {
	lawyerID, err := uuid.Parse(chi.URLParam(r, "lawyerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid lawyer id")
		return
	}
	var req dto.RejectLawyerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.lawyerService.Reject(r.Context(), lawyerID, req.Reason); err != nil {
		respondLawyerError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Lawyer rejected")
}

// GetPending godoc
//
//	@Summary	List lawyers awaiting approval (admin)
//	@Tags		Lawyers
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response{data=[]domain.Lawyer}
//	@Router		/api/admin/lawyers/pending [get]
func (h *LawyerHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	lawyers, err := h.lawyerService.GetPending(r.Context())
	if err != nil {
		respondLawyerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, lawyers)
}
