package mappers

import (
	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/models"
)

func ToGORMTransaction(tx *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:               tx.ID,
		StoreID:          tx.StoreID,
		Amount:           tx.Amount,
		Type:             string(tx.Type),
		Status:           string(tx.Status),
		Description:      tx.Description,
		ExternalID:       tx.ExternalID,
		PaymentMethod:    tx.PaymentMethod,
		Currency:         tx.Currency,
		ProcessingFee:    tx.ProcessingFee,
		NetAmount:        tx.NetAmount,
		ReferenceOrderID: tx.ReferenceOrderID,
		Metadata:         tx.Metadata,
		CreatedAt:        tx.CreatedAt,
		UpdatedAt:        tx.UpdatedAt,
		ProcessedAt:      tx.ProcessedAt,
	}
}

func ToDomainTransaction(model *models.TransactionModel, rel domain.TransactionRelations) *domain.Transaction {
	tx := &domain.Transaction{
		ID:               model.ID,
		StoreID:          model.StoreID,
		Amount:           model.Amount,
		Type:             domain.TransactionType(model.Type),
		Status:           domain.TransactionStatus(model.Status),
		Description:      model.Description,
		ExternalID:       model.ExternalID,
		PaymentMethod:    model.PaymentMethod,
		Currency:         model.Currency,
		ProcessingFee:    model.ProcessingFee,
		NetAmount:        model.NetAmount,
		ReferenceOrderID: model.ReferenceOrderID,
		Metadata:         model.Metadata,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
		ProcessedAt:      model.ProcessedAt,
	}
	if rel.Store || rel.StoreTeam {
		tx.Store = ToDomainStore(&model.Store, domain.StoreRelations{
			Managers: rel.StoreTeam,
			Couriers: rel.StoreTeam,
		})
	}
	return tx
}
