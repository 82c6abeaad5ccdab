package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shoply-app/shoply-backend/internal/delivery/httpapi/middleware"
	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/usecase"
	invitedto "github.com/shoply-app/shoply-backend/internal/usecase/dto/invite"
)

type InviteHandler struct {
	invites usecase.InviteUsecase
	log     *zap.Logger
}

func NewInviteHandler(invites usecase.InviteUsecase, log *zap.Logger) *InviteHandler {
	return &InviteHandler{invites: invites, log: log}
}

func (h *InviteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email   string `json:"email"`
		Role    string `json:"role"`
		StoreID string `json:"storeId"`
	}
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	actor := middleware.ClientFromContext(r.Context())
	invite, err := h.invites.CreateInvite(&invitedto.CreateInviteInput{
		Email:   req.Email,
		Role:    domain.TeamRole(req.Role),
		StoreID: req.StoreID,
	}, actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("invite created",
		zap.String("invite_id", invite.ID),
		zap.String("store_id", invite.StoreID),
		zap.String("role", string(invite.Role)),
	)
	writeJSON(w, http.StatusCreated, toInviteView(invite))
}

// Get is public: the invite landing page resolves the token before the
// visitor has an account.
func (h *InviteHandler) Get(w http.ResponseWriter, r *http.Request) {
	invite, err := h.invites.GetInvite(chi.URLParam(r, "token"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInviteView(invite))
}

func (h *InviteHandler) StoreInvites(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ClientFromContext(r.Context())

	invites, err := h.invites.GetStoreInvites(chi.URLParam(r, "storeID"), actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInviteViews(invites))
}

func (h *InviteHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	actor := middleware.ClientFromContext(r.Context())
	client, err := h.invites.AcceptInvite(req.Token, actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("invite accepted", zap.String("client_id", client.ID))
	writeJSON(w, http.StatusOK, toClientView(client))
}

func (h *InviteHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ClientFromContext(r.Context())

	invite, err := h.invites.RevokeInvite(chi.URLParam(r, "inviteID"), actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("invite revoked", zap.String("invite_id", invite.ID))
	writeJSON(w, http.StatusOK, toInviteView(invite))
}

func (h *InviteHandler) RemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ClientFromContext(r.Context())
	storeID := chi.URLParam(r, "storeID")
	clientID := chi.URLParam(r, "userID")

	removed, err := h.invites.RemoveTeamMember(storeID, clientID, actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("team member removed",
		zap.String("store_id", storeID),
		zap.String("client_id", clientID),
	)
	writeJSON(w, http.StatusOK, toClientView(removed))
}
