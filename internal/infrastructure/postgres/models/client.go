package models

import "time"

type ClientModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	Name          string
	Phone         string
	EmailVerified bool   `gorm:"default:false"`
	PhoneVerified bool   `gorm:"default:false"`
	Role          string `gorm:"default:'USER'"`

	SubscriptionType      string `gorm:"default:'BASIC'"`
	SubscriptionActive    bool   `gorm:"default:false"`
	SubscriptionStartDate *time.Time
	SubscriptionEndDate   *time.Time

	PaymentCardNumber      string
	PaymentCardHolder      string
	PaymentCardExpiryMonth int
	PaymentCardExpiryYear  int
	PaymentCardCvv         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ClientModel) TableName() string {
	return "clients"
}
