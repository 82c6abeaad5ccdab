package transactiondto

import "github.com/shoply-app/shoply-backend/internal/domain"

type CreateTransactionInput struct {
	StoreID          string
	Amount           float64
	Type             domain.TransactionType
	Description      string
	ExternalID       string
	PaymentMethod    string
	Currency         string // defaults to UAH when empty
	ProcessingFee    *float64
	ReferenceOrderID string
	Metadata         string
}

type UpdateBankAccountInput struct {
	AccountNumber string
	AccountHolder string
	BankName      string
	Iban          string
	SwiftCode     string
}
