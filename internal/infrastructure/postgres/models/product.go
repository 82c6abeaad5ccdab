package models

import "time"

type ProductModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	Name            string `gorm:"not null"`
	Description     string
	Price           float64 `gorm:"not null"`
	Category        string
	Amount          int `gorm:"not null;default:0"`
	IsPreOrder      bool
	IsDiscount      bool
	DiscountPercent int
	ImgUrls         string `gorm:"type:jsonb"`
	OrderCount      int    `gorm:"not null;default:0"`
	IsActive        bool   `gorm:"default:true"`

	StoreID string     `gorm:"type:uuid;index:idx_product_store;not null"`
	Store   StoreModel `gorm:"foreignKey:StoreID;references:ID"`

	SizeInventory []ProductSizeModel `gorm:"foreignKey:ProductID"`

	CreatedAt time.Time `gorm:"index:idx_product_created_at"`
	UpdatedAt time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

type ProductSizeModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Size      string `gorm:"not null"`
	Quantity  int    `gorm:"not null"`
	ProductID string `gorm:"type:uuid;index:idx_size_product;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProductSizeModel) TableName() string {
	return "product_sizes"
}
