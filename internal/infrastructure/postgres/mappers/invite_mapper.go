package mappers

import (
	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/models"
)

func ToGORMInvite(invite *domain.Invite) *models.InviteModel {
	model := &models.InviteModel{
		ID:        invite.ID,
		Token:     invite.Token,
		Email:     invite.Email,
		Role:      string(invite.Role),
		StoreID:   invite.StoreID,
		ExpiresAt: invite.ExpiresAt,
		IsUsed:    invite.IsUsed,
		UsedAt:    invite.UsedAt,
		Revoked:   invite.Revoked,
		RevokedAt: invite.RevokedAt,
		CreatedAt: invite.CreatedAt,
		UpdatedAt: invite.UpdatedAt,
	}
	if invite.UsedByID != "" {
		usedBy := invite.UsedByID
		model.UsedByID = &usedBy
	}
	return model
}

func ToDomainInvite(model *models.InviteModel, rel domain.InviteRelations) *domain.Invite {
	invite := &domain.Invite{
		ID:        model.ID,
		Token:     model.Token,
		Email:     model.Email,
		Role:      domain.TeamRole(model.Role),
		StoreID:   model.StoreID,
		ExpiresAt: model.ExpiresAt,
		IsUsed:    model.IsUsed,
		UsedAt:    model.UsedAt,
		Revoked:   model.Revoked,
		RevokedAt: model.RevokedAt,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	if model.UsedByID != nil {
		invite.UsedByID = *model.UsedByID
	}
	if rel.Store || rel.StoreTeam {
		invite.Store = ToDomainStore(&model.Store, domain.StoreRelations{
			Owner:    rel.StoreTeam,
			Managers: rel.StoreTeam,
			Couriers: rel.StoreTeam,
		})
	}
	if rel.UsedBy && model.UsedBy != nil {
		invite.UsedBy = ToDomainClient(model.UsedBy)
	}
	return invite
}
