package invitedto

import "github.com/shoply-app/shoply-backend/internal/domain"

type CreateInviteInput struct {
	Email   string // optional: empty means an open invite
	Role    domain.TeamRole
	StoreID string
}
