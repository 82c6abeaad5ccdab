package repository

import (
	"errors"
	"time"

	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/mappers"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultStoreRepository struct {
	DB *gorm.DB
}

func NewDefaultStoreRepository(db *gorm.DB) *DefaultStoreRepository {
	return &DefaultStoreRepository{
		DB: db,
	}
}

func (r *DefaultStoreRepository) CreateStore(store *domain.Store) error {
	model := mappers.ToGORMStore(store)
	return r.DB.Create(model).Error
}

func (r *DefaultStoreRepository) UpdateStore(store *domain.Store) error {
	return r.DB.Model(&models.StoreModel{}).
		Where("id = ?", store.ID).
		Updates(map[string]interface{}{
			"name":            store.Name,
			"description":     store.Description,
			"contact_email":   store.ContactEmail,
			"contact_phone":   store.ContactPhone,
			"contact_address": store.ContactAddress,
			"contact_city":    store.ContactCity,
			"website":         store.Website,
			"is_active":       store.IsActive,
			"updated_at":      time.Now(),
		}).Error
}

func (r *DefaultStoreRepository) UpdateBankAccount(storeID string, account domain.BankAccount) error {
	result := r.DB.Model(&models.StoreModel{}).
		Where("id = ?", storeID).
		Updates(map[string]interface{}{
			"bank_account_number": account.AccountNumber,
			"bank_account_holder": account.AccountHolder,
			"bank_name":           account.BankName,
			"bank_iban":           account.Iban,
			"bank_swift_code":     account.SwiftCode,
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrStoreNotFound
	}
	return nil
}

// GetStoreByID loads exactly the associations requested in rel so access
// checks never pull member lists they do not need.
func (r *DefaultStoreRepository) GetStoreByID(id string, rel domain.StoreRelations) (*domain.Store, error) {
	query := r.DB
	if rel.Owner {
		query = query.Preload("Owner")
	}
	if rel.Managers {
		query = query.Preload("Managers")
	}
	if rel.Couriers {
		query = query.Preload("Couriers")
	}

	var model models.StoreModel
	if err := query.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}

	store := mappers.ToDomainStore(&model, rel)

	if rel.App && model.AppID != "" {
		var appModel models.AppModel
		if err := r.DB.First(&appModel, "id = ?", model.AppID).Error; err == nil {
			store.App = mappers.ToDomainApp(&appModel)
		}
	}

	return store, nil
}

func (r *DefaultStoreRepository) GetStoresByOwnerID(ownerID string) ([]*domain.Store, error) {
	var storeModels []models.StoreModel
	if err := r.DB.Where("owner_id = ?", ownerID).Find(&storeModels).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(storeModels), nil
}

func (r *DefaultStoreRepository) GetStoresByManagerID(clientID string) ([]*domain.Store, error) {
	var storeModels []models.StoreModel
	if err := r.DB.
		Joins("JOIN store_managers sm ON sm.store_id = stores.id").
		Where("sm.client_id = ?", clientID).
		Find(&storeModels).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(storeModels), nil
}

func (r *DefaultStoreRepository) GetStoresByCourierID(clientID string) ([]*domain.Store, error) {
	var storeModels []models.StoreModel
	if err := r.DB.
		Joins("JOIN store_couriers sc ON sc.store_id = stores.id").
		Where("sc.client_id = ?", clientID).
		Find(&storeModels).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(storeModels), nil
}

func (r *DefaultStoreRepository) RemoveTeamMember(storeID, clientID string, role domain.TeamRole) error {
	store := models.StoreModel{ID: storeID}
	client := models.ClientModel{ID: clientID}

	assoc := "Couriers"
	if role == domain.TeamRoleManager {
		assoc = "Managers"
	}
	return r.DB.Model(&store).Association(assoc).Delete(&client)
}

// CreateApp writes the app row and links it to its store atomically.
func (r *DefaultStoreRepository) CreateApp(app *domain.App) error {
	model := mappers.ToGORMApp(app)
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		return tx.Model(&models.StoreModel{}).
			Where("id = ?", app.StoreID).
			Updates(map[string]interface{}{
				"app_id":     app.ID,
				"updated_at": time.Now(),
			}).Error
	})
}

func (r *DefaultStoreRepository) GetAppBySlug(slug string) (*domain.App, error) {
	var model models.AppModel
	if err := r.DB.First(&model, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainApp(&model), nil
}

func (r *DefaultStoreRepository) toDomainList(storeModels []models.StoreModel) []*domain.Store {
	stores := make([]*domain.Store, len(storeModels))
	for i := range storeModels {
		stores[i] = mappers.ToDomainStore(&storeModels[i], domain.StoreRelations{})
	}
	return stores
}
