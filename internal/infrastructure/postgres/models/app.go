package models

import "time"

type AppModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	Name            string `gorm:"not null"`
	Description     string
	Slug            string `gorm:"uniqueIndex;not null"`
	Version         string `gorm:"default:'1.0.0'"`
	IconURL         string
	SplashScreenURL string
	PrimaryColor    string
	SecondaryColor  string
	TargetPlatforms string `gorm:"type:jsonb"`
	DefaultLanguage string
	Currency        string
	Keywords        string `gorm:"type:jsonb"`
	Screenshots     string `gorm:"type:jsonb"`
	StoreID         string `gorm:"type:uuid;index"`
	AppURL          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (AppModel) TableName() string {
	return "apps"
}
