package models

import "time"

type StoreModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	Name           string `gorm:"not null"`
	Description    string
	ContactEmail   string
	ContactPhone   string
	ContactAddress string
	ContactCity    string
	Website        string
	IsActive       bool `gorm:"default:true"`

	OwnerID  string        `gorm:"type:uuid;index:idx_store_owner;not null"`
	Owner    ClientModel   `gorm:"foreignKey:OwnerID;references:ID"`
	Managers []ClientModel `gorm:"many2many:store_managers;joinForeignKey:StoreID;joinReferences:ClientID"`
	Couriers []ClientModel `gorm:"many2many:store_couriers;joinForeignKey:StoreID;joinReferences:ClientID"`

	AppID string `gorm:"type:uuid"`

	BankAccountNumber string
	BankAccountHolder string
	BankName          string
	BankIban          string
	BankSwiftCode     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StoreModel) TableName() string {
	return "stores"
}
