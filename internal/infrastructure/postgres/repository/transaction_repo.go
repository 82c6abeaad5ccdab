package repository

import (
	"errors"
	"time"

	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/mappers"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{
		DB: db,
	}
}

func (r *DefaultTransactionRepository) CreateTransaction(tx *domain.Transaction) error {
	model := mappers.ToGORMTransaction(tx)
	return r.DB.Create(model).Error
}

func (r *DefaultTransactionRepository) GetTransactionByID(id string, rel domain.TransactionRelations) (*domain.Transaction, error) {
	query := r.DB
	if rel.Store || rel.StoreTeam {
		query = query.Preload("Store")
	}
	if rel.StoreTeam {
		query = query.
			Preload("Store.Managers").
			Preload("Store.Couriers")
	}

	var model models.TransactionModel
	if err := query.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTransaction(&model, rel), nil
}

func (r *DefaultTransactionRepository) GetTransactionsByStoreID(storeID string) ([]*domain.Transaction, error) {
	var txModels []models.TransactionModel
	if err := r.DB.
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&txModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, len(txModels))
	for i := range txModels {
		transactions[i] = mappers.ToDomainTransaction(&txModels[i], domain.TransactionRelations{})
	}
	return transactions, nil
}

func (r *DefaultTransactionRepository) UpdateTransactionStatus(id string, status domain.TransactionStatus, processedAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if processedAt != nil {
		updates["processed_at"] = *processedAt
	}

	result := r.DB.Model(&models.TransactionModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}
