package mappers

import (
	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/models"
)

func ToGORMStore(store *domain.Store) *models.StoreModel {
	return &models.StoreModel{
		ID:                store.ID,
		Name:              store.Name,
		Description:       store.Description,
		ContactEmail:      store.ContactEmail,
		ContactPhone:      store.ContactPhone,
		ContactAddress:    store.ContactAddress,
		ContactCity:       store.ContactCity,
		Website:           store.Website,
		IsActive:          store.IsActive,
		OwnerID:           store.OwnerID,
		AppID:             store.AppID,
		BankAccountNumber: store.BankAccount.AccountNumber,
		BankAccountHolder: store.BankAccount.AccountHolder,
		BankName:          store.BankAccount.BankName,
		BankIban:          store.BankAccount.Iban,
		BankSwiftCode:     store.BankAccount.SwiftCode,
		CreatedAt:         store.CreatedAt,
		UpdatedAt:         store.UpdatedAt,
	}
}

// ToDomainStore keeps the member sets nil unless the relation was loaded,
// so the access evaluator can tell a skipped load from an empty team.
func ToDomainStore(model *models.StoreModel, rel domain.StoreRelations) *domain.Store {
	store := &domain.Store{
		ID:             model.ID,
		Name:           model.Name,
		Description:    model.Description,
		ContactEmail:   model.ContactEmail,
		ContactPhone:   model.ContactPhone,
		ContactAddress: model.ContactAddress,
		ContactCity:    model.ContactCity,
		Website:        model.Website,
		IsActive:       model.IsActive,
		OwnerID:        model.OwnerID,
		AppID:          model.AppID,
		BankAccount: domain.BankAccount{
			AccountNumber: model.BankAccountNumber,
			AccountHolder: model.BankAccountHolder,
			BankName:      model.BankName,
			Iban:          model.BankIban,
			SwiftCode:     model.BankSwiftCode,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	if rel.Owner {
		store.Owner = ToDomainClient(&model.Owner)
	}
	if rel.Managers {
		store.Managers = ToDomainClientList(model.Managers)
		if store.Managers == nil {
			store.Managers = []*domain.Client{}
		}
	}
	if rel.Couriers {
		store.Couriers = ToDomainClientList(model.Couriers)
		if store.Couriers == nil {
			store.Couriers = []*domain.Client{}
		}
	}

	return store
}
