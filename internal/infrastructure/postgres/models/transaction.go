package models

import "time"

type TransactionModel struct {
	ID      string     `gorm:"primaryKey;type:uuid"`
	StoreID string     `gorm:"type:uuid;index:idx_transaction_store;not null"`
	Store   StoreModel `gorm:"foreignKey:StoreID;references:ID"`

	Amount           float64 `gorm:"not null"`
	Type             string  `gorm:"not null"`
	Status           string  `gorm:"not null;index:idx_transaction_status"`
	Description      string
	ExternalID       string
	PaymentMethod    string
	Currency         string `gorm:"default:'UAH'"`
	ProcessingFee    *float64
	NetAmount        float64 `gorm:"not null"`
	ReferenceOrderID string
	Metadata         string `gorm:"type:jsonb"`

	CreatedAt   time.Time `gorm:"index:idx_transaction_created_at"`
	UpdatedAt   time.Time
	ProcessedAt *time.Time
}

func (TransactionModel) TableName() string {
	return "transactions"
}
