package repository

import (
	"errors"
	"time"

	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/mappers"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultInviteRepository struct {
	DB *gorm.DB
}

func NewDefaultInviteRepository(db *gorm.DB) *DefaultInviteRepository {
	return &DefaultInviteRepository{
		DB: db,
	}
}

func (r *DefaultInviteRepository) CreateInvite(invite *domain.Invite) error {
	model := mappers.ToGORMInvite(invite)
	return r.DB.Create(model).Error
}

func (r *DefaultInviteRepository) GetInviteByID(id string, rel domain.InviteRelations) (*domain.Invite, error) {
	return r.getInvite("id = ?", id, rel)
}

func (r *DefaultInviteRepository) GetInviteByToken(token string, rel domain.InviteRelations) (*domain.Invite, error) {
	return r.getInvite("token = ?", token, rel)
}

func (r *DefaultInviteRepository) getInvite(cond string, arg string, rel domain.InviteRelations) (*domain.Invite, error) {
	query := r.DB
	if rel.Store || rel.StoreTeam {
		query = query.Preload("Store")
	}
	if rel.StoreTeam {
		query = query.
			Preload("Store.Owner").
			Preload("Store.Managers").
			Preload("Store.Couriers")
	}
	if rel.UsedBy {
		query = query.Preload("UsedBy")
	}

	var model models.InviteModel
	if err := query.First(&model, cond, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInviteNotFound
		}
		return nil, err
	}
	return mappers.ToDomainInvite(&model, rel), nil
}

func (r *DefaultInviteRepository) GetInvitesByStoreID(storeID string) ([]*domain.Invite, error) {
	var inviteModels []models.InviteModel
	if err := r.DB.
		Preload("UsedBy").
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&inviteModels).Error; err != nil {
		return nil, err
	}

	invites := make([]*domain.Invite, len(inviteModels))
	for i := range inviteModels {
		invites[i] = mappers.ToDomainInvite(&inviteModels[i], domain.InviteRelations{UsedBy: true})
	}
	return invites, nil
}

func (r *DefaultInviteRepository) FindActiveInvite(storeID, email string, now time.Time) (*domain.Invite, error) {
	var model models.InviteModel
	err := r.DB.
		Where("store_id = ? AND email = ? AND is_used = ? AND expires_at > ?", storeID, email, false, now).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainInvite(&model, domain.InviteRelations{}), nil
}

// AcceptInvite flips the used flag and grants membership in one
// transaction. The guarded update makes the token single-use: once a
// concurrent acceptor commits, the second update matches zero rows.
func (r *DefaultInviteRepository) AcceptInvite(inviteID, clientID string, role domain.TeamRole, usedAt time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.InviteModel{}).
			Where("id = ? AND is_used = ? AND revoked = ?", inviteID, false, false).
			Updates(map[string]interface{}{
				"is_used":    true,
				"used_at":    usedAt,
				"used_by_id": clientID,
				"updated_at": usedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrInviteUsed
		}

		var invite models.InviteModel
		if err := tx.Select("store_id").First(&invite, "id = ?", inviteID).Error; err != nil {
			return err
		}

		assoc := "Couriers"
		if role == domain.TeamRoleManager {
			assoc = "Managers"
		}
		store := models.StoreModel{ID: invite.StoreID}
		return tx.Model(&store).Association(assoc).Append(&models.ClientModel{ID: clientID})
	})
}

func (r *DefaultInviteRepository) RevokeInvite(inviteID string, revokedAt time.Time) error {
	result := r.DB.Model(&models.InviteModel{}).
		Where("id = ?", inviteID).
		Updates(map[string]interface{}{
			"revoked":    true,
			"revoked_at": revokedAt,
			"updated_at": revokedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrInviteNotFound
	}
	return nil
}
