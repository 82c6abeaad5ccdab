package domain

import "time"

type TransactionType string

const (
	TransactionSale       TransactionType = "SALE"
	TransactionPayout     TransactionType = "PAYOUT"
	TransactionRefund     TransactionType = "REFUND"
	TransactionFee        TransactionType = "FEE"
	TransactionChargeback TransactionType = "CHARGEBACK"
	TransactionAdjustment TransactionType = "ADJUSTMENT"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionSale, TransactionPayout, TransactionRefund,
		TransactionFee, TransactionChargeback, TransactionAdjustment:
		return true
	}
	return false
}

type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "PENDING"
	TransactionProcessing TransactionStatus = "PROCESSING"
	TransactionCompleted  TransactionStatus = "COMPLETED"
	TransactionFailed     TransactionStatus = "FAILED"
	TransactionCancelled  TransactionStatus = "CANCELLED"
	TransactionDisputed   TransactionStatus = "DISPUTED"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionPending, TransactionProcessing, TransactionCompleted,
		TransactionFailed, TransactionCancelled, TransactionDisputed:
		return true
	}
	return false
}

// Processed reports whether the status carries a processedAt timestamp.
func (s TransactionStatus) Processed() bool {
	return s == TransactionCompleted || s == TransactionFailed
}

type Transaction struct {
	ID               string
	StoreID          string
	Store            *Store
	Amount           float64
	Type             TransactionType
	Status           TransactionStatus
	Description      string
	ExternalID       string
	PaymentMethod    string
	Currency         string
	ProcessingFee    *float64
	NetAmount        float64
	ReferenceOrderID string
	Metadata         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ProcessedAt      *time.Time
}

type TransactionRelations struct {
	Store     bool
	StoreTeam bool
}

type TransactionRepository interface {
	CreateTransaction(tx *Transaction) error
	GetTransactionByID(id string, rel TransactionRelations) (*Transaction, error)
	GetTransactionsByStoreID(storeID string) ([]*Transaction, error)
	UpdateTransactionStatus(id string, status TransactionStatus, processedAt *time.Time) error
}
