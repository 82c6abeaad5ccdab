package usecase

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/kafka"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/metrics"
	transactiondto "github.com/shoply-app/shoply-backend/internal/usecase/dto/transaction"
)

const defaultCurrency = "UAH"

type TransactionUsecase interface {
	CreateTransaction(input *transactiondto.CreateTransactionInput, actor *domain.Client) (*domain.Transaction, error)
	UpdateTransactionStatus(id string, status domain.TransactionStatus, actor *domain.Client) (*domain.Transaction, error)
	GetTransaction(id string, actor *domain.Client) (*domain.Transaction, error)
	GetStoreTransactions(storeID string, actor *domain.Client) ([]*domain.Transaction, error)
	UpdateBankAccount(storeID string, input *transactiondto.UpdateBankAccountInput, actor *domain.Client) (*domain.Store, error)
	GetStoreBankAccount(storeID string, actor *domain.Client) (*domain.Store, error)
}

type DefaultTransactionUsecase struct {
	txRepo    domain.TransactionRepository
	storeRepo domain.StoreRepository
	access    *StoreAccessPolicy
	publisher domain.EventPublisher
	metrics   *metrics.StoreMetrics
}

func NewDefaultTransactionUsecase(
	txRepo domain.TransactionRepository,
	storeRepo domain.StoreRepository,
	access *StoreAccessPolicy,
	publisher domain.EventPublisher,
	storeMetrics *metrics.StoreMetrics,
) *DefaultTransactionUsecase {
	return &DefaultTransactionUsecase{
		txRepo:    txRepo,
		storeRepo: storeRepo,
		access:    access,
		publisher: publisher,
		metrics:   storeMetrics,
	}
}

func (uc *DefaultTransactionUsecase) CreateTransaction(input *transactiondto.CreateTransactionInput, actor *domain.Client) (*domain.Transaction, error) {
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidTransactionType
	}

	if _, err := uc.access.RequireStoreAccess(input.StoreID, actor, domain.StoreRoleOwner, domain.StoreRoleManager); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	// netAmount = amount - processingFee; without a fee both are equal.
	netAmount := input.Amount
	if input.ProcessingFee != nil {
		netAmount = input.Amount - *input.ProcessingFee
	}

	now := time.Now()
	tx := &domain.Transaction{
		ID:               uuid.New().String(),
		StoreID:          input.StoreID,
		Amount:           input.Amount,
		Type:             input.Type,
		Status:           domain.TransactionPending,
		Description:      input.Description,
		ExternalID:       input.ExternalID,
		PaymentMethod:    input.PaymentMethod,
		Currency:         currency,
		ProcessingFee:    input.ProcessingFee,
		NetAmount:        netAmount,
		ReferenceOrderID: input.ReferenceOrderID,
		Metadata:         input.Metadata,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.txRepo.CreateTransaction(tx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordTransactionCreated(tx.StoreID, string(tx.Type), tx.Currency, tx.Amount)
	}
	uc.publishTransactionEvent(tx)

	return tx, nil
}

func (uc *DefaultTransactionUsecase) UpdateTransactionStatus(id string, status domain.TransactionStatus, actor *domain.Client) (*domain.Transaction, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidTransactionStatus
	}

	tx, err := uc.txRepo.GetTransactionByID(id, domain.TransactionRelations{StoreTeam: true})
	if err != nil {
		return nil, err
	}
	if !HasStoreAccess(tx.Store, actor, domain.StoreRoleOwner, domain.StoreRoleManager) {
		return nil, domain.ErrAccessDenied
	}

	now := time.Now()
	var processedAt *time.Time
	if status.Processed() {
		processedAt = &now
	}

	if err := uc.txRepo.UpdateTransactionStatus(id, status, processedAt); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordTransactionStatus(tx.StoreID, string(status))
	}

	tx.Status = status
	if processedAt != nil {
		tx.ProcessedAt = processedAt
	}
	tx.UpdatedAt = now

	uc.publishTransactionEvent(tx)
	return tx, nil
}

func (uc *DefaultTransactionUsecase) GetTransaction(id string, actor *domain.Client) (*domain.Transaction, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	tx, err := uc.txRepo.GetTransactionByID(id, domain.TransactionRelations{StoreTeam: true})
	if err != nil {
		return nil, err
	}
	if !HasStoreAccess(tx.Store, actor, domain.StoreRoleOwner, domain.StoreRoleManager) {
		return nil, domain.ErrAccessDenied
	}
	return tx, nil
}

func (uc *DefaultTransactionUsecase) GetStoreTransactions(storeID string, actor *domain.Client) ([]*domain.Transaction, error) {
	if _, err := uc.access.RequireStoreAccess(storeID, actor, domain.StoreRoleOwner, domain.StoreRoleManager); err != nil {
		return nil, err
	}
	return uc.txRepo.GetTransactionsByStoreID(storeID)
}

// UpdateBankAccount is owner-only: payout details never change through a
// manager account.
func (uc *DefaultTransactionUsecase) UpdateBankAccount(storeID string, input *transactiondto.UpdateBankAccountInput, actor *domain.Client) (*domain.Store, error) {
	store, err := uc.access.RequireStoreAccess(storeID, actor, domain.StoreRoleOwner)
	if err != nil {
		return nil, err
	}

	account := domain.BankAccount{
		AccountNumber: input.AccountNumber,
		AccountHolder: input.AccountHolder,
		BankName:      input.BankName,
		Iban:          input.Iban,
		SwiftCode:     input.SwiftCode,
	}
	if err := uc.storeRepo.UpdateBankAccount(storeID, account); err != nil {
		return nil, err
	}

	store.BankAccount = account
	store.UpdatedAt = time.Now()
	return store, nil
}

func (uc *DefaultTransactionUsecase) GetStoreBankAccount(storeID string, actor *domain.Client) (*domain.Store, error) {
	return uc.access.RequireStoreAccess(storeID, actor, domain.StoreRoleOwner, domain.StoreRoleManager)
}

func (uc *DefaultTransactionUsecase) publishTransactionEvent(tx *domain.Transaction) {
	if uc.publisher == nil {
		return
	}
	event := kafka.TransactionEvent{
		TransactionID: tx.ID,
		StoreID:       tx.StoreID,
		Type:          string(tx.Type),
		Status:        string(tx.Status),
		Amount:        tx.Amount,
		NetAmount:     tx.NetAmount,
		Currency:      tx.Currency,
	}
	if err := kafka.PublishTransactionEvent(uc.publisher, event); err != nil {
		log.Printf("failed to publish transaction event: %v", err)
	}
}
