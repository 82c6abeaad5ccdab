package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/shoply-app/shoply-backend/internal/domain"
)

type ctxKey int

const clientKey ctxKey = iota

// TokenParser verifies a bearer token and returns the client ID it carries.
type TokenParser interface {
	Parse(token string) (string, error)
}

type Authenticator struct {
	tokens  TokenParser
	clients domain.ClientRepository
	log     *zap.Logger
}

func NewAuthenticator(tokens TokenParser, clients domain.ClientRepository, log *zap.Logger) *Authenticator {
	return &Authenticator{
		tokens:  tokens,
		clients: clients,
		log:     log,
	}
}

// Require resolves the bearer token to a client row and stores it in the
// request context. Requests without a valid token get 401.
func (a *Authenticator) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			unauthorized(w)
			return
		}

		clientID, err := a.tokens.Parse(strings.TrimPrefix(header, prefix))
		if err != nil {
			unauthorized(w)
			return
		}

		client, err := a.clients.GetClientByID(clientID)
		if err != nil {
			a.log.Debug("token subject not found", zap.String("client_id", clientID))
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), clientKey, client)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientFromContext returns the authenticated client or nil on public routes.
func ClientFromContext(ctx context.Context) *domain.Client {
	client, _ := ctx.Value(clientKey).(*domain.Client)
	return client
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": domain.ErrUnauthenticated.Error()})
}
