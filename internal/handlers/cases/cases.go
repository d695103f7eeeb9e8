package cases

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/dto"
	"github.com/otr-legal/otr-backend/internal/service/caseservice"
	"github.com/otr-legal/otr-backend/internal/service/matchservice"
	pkgauth "github.com/otr-legal/otr-backend/pkg/auth"
	"github.com/otr-legal/otr-backend/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, c *domain.Case) (*domain.Case, error)
	GetCase(ctx context.Context, caseID, requesterID uuid.UUID, role domain.Role) (*domain.Case, error)
	GetUserCases(ctx context.Context, userID uuid.UUID) ([]domain.Case, error)
	GetLawyerCases(ctx context.Context, lawyerUserID uuid.UUID) ([]domain.Case, error)
	ListCases(ctx context.Context, limit, offset int) ([]domain.Case, int, error)
	UpdateStatus(ctx context.Context, caseID uuid.UUID, status domain.CaseStatus, note string, requesterID uuid.UUID, role domain.Role) (*domain.Case, error)
	ScheduleCourtDate(ctx context.Context, caseID uuid.UUID, courtDate time.Time, requesterID uuid.UUID, role domain.Role) (*domain.Case, error)
	RecordOutcome(ctx context.Context, caseID uuid.UUID, outcome domain.OutcomeType, finalFine *float64, finalPoints *int, notes string, requesterID uuid.UUID, role domain.Role) (*domain.Case, error)
	CloseCase(ctx context.Context, caseID, requesterID uuid.UUID, role domain.Role) (*domain.Case, error)
	RateLawyer(ctx context.Context, caseID, userID uuid.UUID, rating int, review string) error
	Reassign(ctx context.Context, caseID, lawyerID, actorID uuid.UUID) (*domain.Case, error)
	GetTimeline(ctx context.Context, caseID, requesterID uuid.UUID, role domain.Role) ([]domain.TimelineEntry, error)
	AddDocument(ctx context.Context, caseID, requesterID uuid.UUID, role domain.Role, name, docType, url string) (*domain.CaseDocument, error)
	GetDocuments(ctx context.Context, caseID, requesterID uuid.UUID, role domain.Role) ([]domain.CaseDocument, error)
}

type CaseHandler struct {
	caseService Service
}

func New(caseService Service) *CaseHandler {
	return &CaseHandler{
		caseService: caseService,
	}
}

func caseIDFromURL(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "caseID"))
}

func respondCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, caseservice.ErrCaseNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Case not found")
	case errors.Is(err, caseservice.ErrNotAllowed):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, caseservice.ErrQuotaExceeded):
		utils.RespondWithError(w, http.StatusPaymentRequired, "Monthly case quota exceeded")
	case errors.Is(err, caseservice.ErrInvalidViolationType):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid violation type")
	case errors.Is(err, caseservice.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusConflict, "Invalid status transition")
	case errors.Is(err, caseservice.ErrAlreadyRated):
		utils.RespondWithError(w, http.StatusConflict, "Case already rated")
	case errors.Is(err, caseservice.ErrCaseNotFinished):
		utils.RespondWithError(w, http.StatusConflict, "Case not finished")
	case errors.Is(err, caseservice.ErrInvalidRating):
		utils.RespondWithError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
	case errors.Is(err, matchservice.ErrNoLawyerAvailable):
		utils.RespondWithError(w, http.StatusConflict, "No lawyer available")
	case errors.Is(err, matchservice.ErrLawyerNotEligible):
		utils.RespondWithError(w, http.StatusConflict, "Lawyer not eligible for this case")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateCase godoc
//
//	@Summary		Submit a new traffic ticket case
//	@Description	Quote the flat fee, store the case and match a lawyer
//	@Tags			Cases
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateCaseRequestDTO	true	"Case details"
//	@Success		201		{object}	utils.Response{data=domain.Case}
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Quota exceeded"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cases [post]
func (h *CaseHandler) CreateCase(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	c := &domain.Case{
		ViolationType: domain.ViolationType(req.ViolationType),
		TicketNumber:  req.TicketNumber,
		IssueDate:     req.IssueDate,
		Street:        req.Street,
		City:          req.City,
		State:         req.State,
		County:        req.County,
		CourtName:     req.CourtName,
		CourtAddress:  req.CourtAddress,
		FineAmount:    req.FineAmount,
		Points:        req.Points,
		TicketImage:   req.TicketImage,
		IsCDLDriver:   req.IsCDLDriver,
		LicenseNumber: req.LicenseNumber,
		LicenseState:  req.LicenseState,
	}
	created, err := h.caseService.Create(r.Context(), pkgauth.UserIDFromContext(r.Context()), c)
	if err != nil {
		respondCaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// GetCase godoc
//
//	@Summary	Get a case by id
//	@Tags		Cases
//	@Produce	json
//	@Security	BearerAuth
//	@Param		caseID	path		string	true	"Case ID"
//	@Success	200		{object}	utils.Response{data=domain.Case}
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	404		{object}	utils.Response	"Case not found"
//	@Router		/api/cases/{caseID} [get]
func (h *CaseHandler) GetCase(w http.ResponseWriter, r *http.Request) {
	caseID, err := caseIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid case id")
		return
	}
	ctx := r.Context()
	c, err := h.caseService.GetCase(ctx, caseID, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx))
	if err != nil {
		respondCaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, c)
}

// GetMyCases godoc
//
//	@Summary	List the requester's cases
//	@Tags		Cases
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response{data=[]domain.Case}
//	@Router		/api/cases [get]
func (h *CaseHandler) GetMyCases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := pkgauth.UserIDFromContext(ctx)

	var (
		cases []domain.Case
		err   error
	)
	if pkgauth.RoleFromContext(ctx) == domain.RoleLawyer {
		cases, err = h.caseService.GetLawyerCases(ctx, userID)
	} else {
		cases, err = h.caseService.GetUserCases(ctx, userID)
	}
	if err != nil {
		respondCaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cases)
}

// ListCases godoc
//
//	@Summary	List all cases (admin)
//	@Tags		Cases
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query		int	false	"Page"
//	@Param		limit	query		int	false	"Page size"
//	@Success	200		{object}	utils.Response{data=[]domain.Case}
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Router		/api/admin/cases [get]
func (h *CaseHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	page, limit := utils.ParsePagination(r)
	cases, total, err := h.caseService.ListCases(r.Context(), limit, (page-1)*limit)
	if err != nil {
		respondCaseError(w, err)
		return
	}
	utils.RespondWithPage(w, http.StatusOK, cases, utils.NewPageMeta(page, limit, total))
}

// UpdateStatus godoc
//
//	@Summary	Move a case along its lifecycle
//	@Tags		Cases
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		caseID	path		string							true	"Case ID"
//	@Param		request	body		dto.UpdateCaseStatusRequestDTO	true	"New status"
//	@Success	200		{object}	utils.Response{data=domain.Case}
//	@Failure	409		{object}	utils.Response	"Invalid status transition"
//	@Router		/api/cases/{caseID}/status [patch]
func (h *CaseHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	caseID, err := caseIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid case id")
		return
	}
	var req dto.UpdateCaseStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx := r.Context()
	c, err := h.caseService.UpdateStatus(ctx, caseID, domain.CaseStatus(req.Status), req.Note,
		pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx))
	if err != nil {
		respondCaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, c)
}

// ScheduleCourtDate godoc
//
//	@Summary	Schedule the court hearing for a case
//	@Tags		Cases
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		caseID	path		string							true	"Case ID"
//	@Param		request	body		dto.ScheduleCourtDateRequestDTO	true	"Court date"
//	@Success	200		{object}	utils.Response{data=domain.Case}
//	@Router		/api/cases/{caseID}/court-date [post]
func (h *CaseHandler) ScheduleCourtDate(w http.ResponseWriter, r *http.Request) {
	caseID, err := caseIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid case id")
		return
	}
	var req dto.ScheduleCourtDateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx := r.Context()
	c, err := h.caseService.ScheduleCourtDate(ctx, caseID, req.CourtDate,
		pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx))
	if err != nil {
		respondCaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, c)
}

// RecordOutcome godoc
//
//	@Summary	Record the case outcome
//	@Tags		Cases
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		caseID	path		string						true	"Case ID"
//	@Param		request	body		dto.RecordOutcomeRequestDTO	true	"Outcome"
//	@Success	200		{object}	utils.Response{data=domain.Case}
//	@Router		/api/cases/{caseID}/outcome [post]
func (h *CaseHandler) RecordOutcome(w http.ResponseWriter, r *http.Request) {
	caseID, err := caseIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid case id")
		return
	}
	var req dto.RecordOutcomeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx := r.Context()
	c, err := h.caseService.RecordOutcome(ctx, caseID, domain.OutcomeType(req.Outcome),
		req.FinalFine, req.FinalPoints, req.Notes,
		pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx))
	if err != nil {
		respondCaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, c)
}

// CloseCase godoc
//
//	@Summary	Close a resolved case
//	@Tags		Cases
//	@Produce	json
//	@Security	BearerAuth
//	@Param		caseID	path		string	true	"Case ID"
//	@Success	200		{object}	utils.Response{data=domain.Case}
//	@Router		/api/cases/{caseID}/close [post]
func (h *CaseHandler) CloseCase(w http.ResponseWriter, r *http.Request) {
	caseID, err := caseIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid case id")
		return
	}
	ctx := r.Context()
	c, err := h.caseService.CloseCase(ctx, caseID, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx))
	if err != nil {
		respondCaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, c)
}

// RateLawyer godoc
//
//	@Summary	Rate the lawyer after the case finished
//	@Tags		Cases
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		caseID	path		string					true	"Case ID"
//	@Param		request	body		dto.RateLawyerRequestDTO	true	"Rating"
//	@Success	200		{object}	utils.Response
//	@Failure	409		{object}	utils.Response	"Case already rated"
//	@Router		/api/cases/{caseID}/rating [post]
func (h *CaseHandler) RateLawyer(w http.ResponseWriter, r *http.Request) {
	caseID, err := caseIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid case id")
		return
	}
	var req dto.RateLawyerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx := r.Context()
	if err := h.caseService.RateLawyer(ctx, caseID, pkgauth.UserIDFromContext(ctx), req.Rating, req.Review); err != nil {
		respondCaseError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Rating recorded")
}

// Reassign godoc
//
//	@Summary	Reassign a case to a different lawyer (admin)
//	@Tags		Cases
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		caseID	path		string						true	"Case ID"
//	@Param		request	body		dto.ReassignCaseRequestDTO	true	"Lawyer"
//	@Success	200		{object}	utils.Response{data=domain.Case}
//	@Router		/api/admin/cases/{caseID}/reassign [post]
func (h *CaseHandler) Reassign(w http.ResponseWriter, r *http.Request) {
	caseID, err := caseIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid case id")
		return
	}
	var req dto.ReassignCaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx := r.Context()
	c, err := h.caseService.Reassign(ctx, caseID, req.LawyerID, pkgauth.UserIDFromContext(ctx))
	if err != nil {
		respondCaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, c)
}

// GetTimeline godoc
//
//	@Summary	Get the case status timeline
//	@Tags		Cases
//	@Produce	json
//	@Security	BearerAuth
//	@Param		caseID	path		string	true	"Case ID"
//	@Success	200		{object}	utils.Response{data=[]domain.TimelineEntry}
//	@Router		/api/cases/{caseID}/timeline [get]
func (h *CaseHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	caseID, err := caseIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid case id")
		return
	}
	ctx := r.Context()
	entries, err := h.caseService.GetTimeline(ctx, caseID, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx))
	if err != nil {
		respondCaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, entries)
}

// AddDocument godoc
//
//	@Summary	Attach a document to the case
//	@Tags		Cases
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		caseID	path		string						true	"Case ID"
//	@Param		request	body		dto.AddDocumentRequestDTO	true	"Document"
//	@Success	201		{object}	utils.Response{data=domain.CaseDocument}
//	@Router		/api/cases/{caseID}/documents [post]
func (h *CaseHandler) AddDocument(w http.ResponseWriter, r *http.Request) {
	caseID, err := caseIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid case id")
		return
	}
	var req dto.AddDocumentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx := r.Context()
	doc, err := h.caseService.AddDocument(ctx, caseID, pkgauth.UserIDFromContext(ctx),
		pkgauth.RoleFromContext(ctx), req.Name, req.Type, req.URL)
	if err != nil {
		respondCaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, doc)
}

// GetDocuments godoc
//
//	@Summary	List the case documents
//	@Tags		Cases
//	@Produce	json
//	@Security	BearerAuth
//	@Param		caseID	path		string	true	"Case ID"
//	@Success	200		{object}	utils.Response{data=[]domain.CaseDocument}
//	@Router		/api/cases/{caseID}/documents [get]
func (h *CaseHandler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	caseID, err := caseIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid case id")
		return
	}
	ctx := r.Context()
	docs, err := h.caseService.GetDocuments(ctx, caseID, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx))
	if err != nil {
		respondCaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, docs)
}
