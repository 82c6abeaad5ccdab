package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shoply-app/shoply-backend/internal/delivery/httpapi/middleware"
)

type Handlers struct {
	Auth        *AuthHandler
	Store       *StoreHandler
	Product     *ProductHandler
	Invite      *InviteHandler
	Transaction *TransactionHandler
}

func NewRouter(log *zap.Logger, auth *middleware.Authenticator, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
		r.Get("/invites/{token}", h.Invite.Get)

		r.Group(func(r chi.Router) {
			r.Use(auth.Require)

			r.Get("/me", h.Auth.Me)
			r.Put("/me/subscription", h.Auth.UpdateSubscription)
			r.Put("/me/payment-card", h.Auth.UpdatePaymentCard)
			r.Delete("/me/payment-card", h.Auth.RemovePaymentCard)

			r.Get("/stores", h.Store.MyStores)
			r.Post("/stores", h.Store.Create)
			r.Get("/stores/{storeID}", h.Store.Get)
			r.Patch("/stores/{storeID}", h.Store.Update)
			r.Post("/apps", h.Store.CreateApp)

			r.Get("/stores/{storeID}/products", h.Product.StoreProducts)
			r.Post("/products", h.Product.Create)
			r.Get("/products/{productID}", h.Product.Get)
			r.Patch("/products/{productID}", h.Product.Update)
			r.Delete("/products/{productID}", h.Product.Delete)
			r.Put("/products/{productID}/stock", h.Product.UpdateStock)

			r.Post("/invites", h.Invite.Create)
			r.Get("/stores/{storeID}/invites", h.Invite.StoreInvites)
			r.Post("/invites/accept", h.Invite.Accept)
			r.Post("/invites/{inviteID}/revoke", h.Invite.Revoke)
			r.Delete("/stores/{storeID}/team/{userID}", h.Invite.RemoveTeamMember)

			r.Get("/stores/{storeID}/bank-account", h.Transaction.GetBankAccount)
			r.Put("/stores/{storeID}/bank-account", h.Transaction.UpdateBankAccount)

			r.Post("/transactions", h.Transaction.Create)
			r.Get("/transactions/{transactionID}", h.Transaction.Get)
			r.Patch("/transactions/{transactionID}/status", h.Transaction.UpdateStatus)
			r.Get("/stores/{storeID}/transactions", h.Transaction.StoreTransactions)
		})
	})

	return r
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			)
		})
	}
}
