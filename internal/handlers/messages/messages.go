package messages

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/otr-legal/otr-backend/internal/domain"
	"github.com/otr-legal/otr-backend/internal/dto"
	"github.com/otr-legal/otr-backend/internal/service/messageservice"
	pkgauth "github.com/otr-legal/otr-backend/pkg/auth"
	"github.com/otr-legal/otr-backend/pkg/utils"
)

type Service interface {
	Send(ctx context.Context, caseID, senderID uuid.UUID, content string) (*domain.Message, error)
	GetThread(ctx context.Context, caseID, readerID uuid.UUID, role domain.Role) ([]domain.Message, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
}

type MessageHandler struct {
	messageService Service
}

func New(messageService Service) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

func respondMessageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, messageservice.ErrCaseNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Case not found")
	case errors.Is(err, messageservice.ErrNotParticipant):
		utils.RespondWithError(w, http.StatusForbidden, "Not a case participant")
	case errors.Is(err, messageservice.ErrNoRecipient):
		utils.RespondWithError(w, http.StatusConflict, "Case has no assigned lawyer")
	case errors.Is(err, messageservice.ErrEmptyContent):
		utils.RespondWithError(w, http.StatusBadRequest, "Message content is empty")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Send godoc
//
//	@Summary	Send a message within a case
//	@Tags		Messages
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		caseID	path		string						true	"Case ID"
//	@Param		request	body		dto.SendMessageRequestDTO	true	"Message"
//	@Success	201		{object}	utils.Response{data=domain.Message}
//	@Failure	403		{object}	utils.Response	"Not a case participant"
//	@Router		/api/cases/{caseID}/messages [post]
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	caseID, err := uuid.Parse(chi.URLParam(r, "caseID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid case id")
		return
	}
	var req dto.SendMessageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	m, err := h.messageService.Send(r.Context(), caseID, pkgauth.UserIDFromContext(r.Context()), req.Content)
	if err != nil {
		respondMessageError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, m)
}

// GetThread godoc
//
//	@Summary	Read the case conversation
//	@Tags		Messages
//	@Produce	json
//	@Security	BearerAuth
//	@Param		caseID	path		string	true	"Case ID"
//	@Success	200		{object}	utils.Response{data=[]domain.Message}
//	@Router		/api/cases/{caseID}/messages [get]
func (h *MessageHandler) GetThread(w http.ResponseWriter, r *http.Request) {
	caseID, err := uuid.Parse(chi.URLParam(r, "caseID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid case id")
		return
	}
	ctx := r.Context()
	messages, err := h.messageService.GetThread(ctx, caseID, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx))
	if err != nil {
		respondMessageError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, messages)
}

// UnreadCount godoc
//
//	@Summary	Count the requester's unread messages
//	@Tags		Messages
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response{data=int}
//	@Router		/api/messages/unread [get]
func (h *MessageHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.messageService.UnreadCount(r.Context(), pkgauth.UserIDFromContext(r.Context()))
	if err != nil {
		respondMessageError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, count)
}
