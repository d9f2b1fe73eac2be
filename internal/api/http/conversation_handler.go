package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"
)

type ConversationHandler struct {
	chatSvc  service.GroupChatService
	validate *validator.Validate
}

func NewConversationHandler(chatSvc service.GroupChatService) *ConversationHandler {
	return &ConversationHandler{
		chatSvc:  chatSvc,
		validate: validator.New(),
	}
}

type createConversationRequest struct {
	OpportunityID int32  `json:"opportunity_id" validate:"required,gt=0"`
	Name          string `json:"name"`
}

// Create serves POST /conversations. Each opportunity carries at most one
// group conversation; a second create returns a conflict.
func (h *ConversationHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	var req createConversationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, domain.InvalidArgumentError(err.Error()))
		return
	}

	conv, err := h.chatSvc.CreateOpportunityChat(r.Context(), claims.AccountID, claims.IsAdmin(), req.OpportunityID, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"conversation": conv})
}
