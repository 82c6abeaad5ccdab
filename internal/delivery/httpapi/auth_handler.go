package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/shoply-app/shoply-backend/internal/delivery/httpapi/middleware"
	"github.com/shoply-app/shoply-backend/internal/usecase"
	authdto "github.com/shoply-app/shoply-backend/internal/usecase/dto/auth"
)

type AuthHandler struct {
	auth usecase.AuthUsecase
	log  *zap.Logger
}

func NewAuthHandler(auth usecase.AuthUsecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

type authResponse struct {
	Token  string      `json:"token"`
	Client *clientView `json:"client"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	payload, err := h.auth.Register(&authdto.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("client registered", zap.String("client_id", payload.Client.ID))
	writeJSON(w, http.StatusCreated, authResponse{
		Token:  payload.Token,
		Client: toClientView(payload.Client),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	payload, err := h.auth.Login(&authdto.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Token:  payload.Token,
		Client: toClientView(payload.Client),
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ClientFromContext(r.Context())

	client, err := h.auth.GetProfile(actor.ID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientView(client))
}

func (h *AuthHandler) UpdateSubscription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SubscriptionType string `json:"subscriptionType"`
	}
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	actor := middleware.ClientFromContext(r.Context())
	client, err := h.auth.UpdateSubscription(actor, &authdto.UpdateSubscriptionInput{
		SubscriptionType: req.SubscriptionType,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientView(client))
}

func (h *AuthHandler) UpdatePaymentCard(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CardNumber  string `json:"cardNumber"`
		CardHolder  string `json:"cardHolder"`
		ExpiryMonth int    `json:"expiryMonth"`
		ExpiryYear  int    `json:"expiryYear"`
		Cvv         string `json:"cvv"`
	}
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	actor := middleware.ClientFromContext(r.Context())
	client, err := h.auth.UpdatePaymentCard(actor, &authdto.UpdatePaymentCardInput{
		CardNumber:  req.CardNumber,
		CardHolder:  req.CardHolder,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Cvv:         req.Cvv,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientView(client))
}

func (h *AuthHandler) RemovePaymentCard(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ClientFromContext(r.Context())

	client, err := h.auth.RemovePaymentCard(actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientView(client))
}
