package authdto

import "github.com/shoply-app/shoply-backend/internal/domain"

type AuthPayload struct {
	Token  string
	Client *domain.Client
}
