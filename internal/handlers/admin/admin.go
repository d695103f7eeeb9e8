package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/dto"
	"github.com/otr-legal/otr-backend/internal/service/adminservice"
	"github.com/otr-legal/otr-backend/pkg/utils"
)

type Service interface {
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	SetUserRole(ctx context.Context, userID uuid.UUID, role domain.Role) error
	SetUserQuota(ctx context.Context, userID uuid.UUID, casesPerMonth int) error
	CreateFineType(ctx context.Context, f *domain.FineType) (*domain.FineType, error)
	SearchFineTypes(ctx context.Context, category, name string) ([]domain.FineType, error)
	UpdateFineType(ctx context.Context, f *domain.FineType) (*domain.FineType, error)
	DeactivateFineType(ctx context.Context, id uuid.UUID) error
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func respondAdminError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, adminservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, adminservice.ErrFineTypeNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Fine type not found")
	case errors.Is(err, adminservice.ErrUnknownRole):
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown role")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ListUsers godoc
//
//	@Summary	List users (admin)
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query		int	false	"Page"
//	@Param		limit	query		int	false	"Page size"
//	@Success	200		{object}	utils.Response{data=[]dto.UserDTO}
//	@Router		/api/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := utils.ParsePagination(r)
	users, total, err := h.adminService.ListUsers(r.Context(), limit, (page-1)*limit)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserDTO(&users[i]))
	}
	utils.RespondWithPage(w, http.StatusOK, out, utils.NewPageMeta(page, limit, total))
}

// GetUser godoc
//
//	@Summary	Get a user (admin)
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		userID	path		string	true	"User ID"
//	@Success	200		{object}	utils.Response{data=dto.UserDTO}
//	@Router		/api/admin/users/{userID} [get]
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	user, err := h.adminService.GetUser(r.Context(), userID)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserDTO(user))
}

// SetUserRole godoc
//
//	@Summary	Change a user's role (admin)
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		userID	path		string				true	"User ID"
//	@Param		request	body		dto.SetRoleRequestDTO	true	"Role"
//	@Success	200		{object}	utils.Response
//	@Router		/api/admin/users/{userID}/role [patch]
func (h *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	var req dto.SetRoleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.adminService.SetUserRole(r.Context(), userID, domain.Role(req.Role)); err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Role updated")
}

// SetUserQuota godoc
//
//	@Summary	Change a user's monthly case quota (admin)
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		userID	path		string					true	"User ID"
//	@Param		request	body		dto.SetQuotaRequestDTO	true	"Quota"
//	@Success	200		{object}	utils.Response
//	@Router		/api/admin/users/{userID}/quota [patch]
func (h *AdminHandler) SetUserQuota(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	var req dto.SetQuotaRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CasesPerMonth < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Quota cannot be negative")
		return
	}
	if err := h.adminService.SetUserQuota(r.Context(), userID, req.CasesPerMonth); err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Quota updated")
}

// CreateFineType godoc
//
//	@Summary	Create a fine type (admin)
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.FineTypeRequestDTO	true	"Fine type"
//	@Success	201		{object}	utils.Response{data=domain.FineType}
//	@Router		/api/admin/fine-types [post]
func (h *AdminHandler) CreateFineType(w http.ResponseWriter, r *http.Request) {
	var req dto.FineTypeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Category == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and category are required")
		return
	}
	fineType := &domain.FineType{
		Category:    req.Category,
		Name:        req.Name,
		Description: req.Description,
		Amount:      req.Amount,
		Points:      req.Points,
	}
	created, err := h.adminService.CreateFineType(r.Context(), fineType)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// SearchFineTypes godoc
//
//	@Summary	Search fine types
//	@Tags		Admin
//	@Produce	json
//	@Param		category	query		string	false	"Category"
//	@Param		name		query		string	false	"Name fragment"
//	@Success	200			{object}	utils.Response{data=[]domain.FineType}
//	@Router		/api/fine-types [get]
func (h *AdminHandler) SearchFineTypes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fines, err := h.adminService.SearchFineTypes(r.Context(), q.Get("category"), q.Get("name"))
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, fines)
}

// UpdateFineType godoc
//
//	@Summary	Update a fine type (admin)
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		fineTypeID	path		string					true	"Fine type ID"
//	@Param		request		body		dto.FineTypeRequestDTO	true	"Fine type"
//	@Success	200			{object}	utils.Response{data=domain.FineType}
//	@Router		/api/admin/fine-types/{fineTypeID} [put]
func (h *AdminHandler) UpdateFineType(w http.ResponseWriter, r *http.Request) {
	fineTypeID, err := uuid.Parse(chi.URLParam(r, "fineTypeID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid fine type id")
		return
	}
	var req dto.FineTypeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	fineType := &domain.FineType{
		ID:          fineTypeID,
		Category:    req.Category,
		Name:        req.Name,
		Description: req.Description,
		Amount:      req.Amount,
		Points:      req.Points,
		IsActive:    isActive,
	}
	updated, err := h.adminService.UpdateFineType(r.Context(), fineType)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DeactivateFineType godoc
//
//	@Summary	Deactivate a fine type (admin)
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		fineTypeID	path		string	true	"Fine type ID"
//	@Success	200			{object}	utils.Response
//	@Router		/api/admin/fine-types/{fineTypeID} [delete]
func (h *AdminHandler) DeactivateFineType(w http.ResponseWriter, r *http.Request) {
	fineTypeID, err := uuid.Parse(chi.URLParam(r, "fineTypeID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid fine type id")
		return
	}
	if err := h.adminService.DeactivateFineType(r.Context(), fineTypeID); err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Fine type deactivated")
}
