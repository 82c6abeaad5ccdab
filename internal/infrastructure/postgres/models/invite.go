package models

import "time"

type InviteModel struct {
	ID      string `gorm:"primaryKey;type:uuid"`
	Token   string `gorm:"uniqueIndex;not null"`
	Email   string `gorm:"index:idx_invite_email"`
	Role    string `gorm:"not null"`
	StoreID string `gorm:"type:uuid;index:idx_invite_store;not null"`
	Store   StoreModel `gorm:"foreignKey:StoreID;references:ID"`

	ExpiresAt time.Time `gorm:"not null"`
	IsUsed    bool      `gorm:"default:false"`
	UsedAt    *time.Time
	UsedByID  *string      `gorm:"type:uuid"`
	UsedBy    *ClientModel `gorm:"foreignKey:UsedByID;references:ID"`
	Revoked   bool         `gorm:"default:false"`
	RevokedAt *time.Time

	CreatedAt time.Time `gorm:"index:idx_invite_created_at"`
	UpdatedAt time.Time
}

func (InviteModel) TableName() string {
	return "invites"
}
