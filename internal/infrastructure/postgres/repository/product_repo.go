package repository

import (
	"errors"
	"time"

	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/mappers"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	DB *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{
		DB: db,
	}
}

// CreateProduct writes the product row and its size rows together;
// neither is visible unless both commit.
func (r *DefaultProductRepository) CreateProduct(product *domain.Product) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mappers.ToGORMProduct(product)).Error; err != nil {
			return err
		}
		for i := range product.SizeInventory {
			if err := tx.Create(mappers.ToGORMProductSize(&product.SizeInventory[i])).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DefaultProductRepository) GetProductByID(id string, rel domain.ProductRelations) (*domain.Product, error) {
	query := r.DB
	if rel.Sizes {
		query = query.Preload("SizeInventory")
	}
	if rel.Store || rel.StoreTeam {
		query = query.Preload("Store")
	}
	if rel.StoreTeam {
		query = query.
			Preload("Store.Managers").
			Preload("Store.Couriers")
	}

	var model models.ProductModel
	if err := query.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProduct(&model, rel), nil
}

func (r *DefaultProductRepository) GetProductsByStoreID(storeID string) ([]*domain.Product, error) {
	var productModels []models.ProductModel
	if err := r.DB.
		Preload("SizeInventory").
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(productModels))
	for i := range productModels {
		products[i] = mappers.ToDomainProduct(&productModels[i], domain.ProductRelations{Sizes: true})
	}
	return products, nil
}

func (r *DefaultProductRepository) SaveProduct(product *domain.Product, replaceSizes bool) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.ProductModel{}).
			Where("id = ?", product.ID).
			Updates(map[string]interface{}{
				"name":             product.Name,
				"description":      product.Description,
				"price":            product.Price,
				"category":         product.Category,
				"is_pre_order":     product.IsPreOrder,
				"is_discount":      product.IsDiscount,
				"discount_percent": product.DiscountPercent,
				"img_urls":         mappers.ToGORMProduct(product).ImgUrls,
				"amount":           product.Amount,
				"updated_at":       time.Now(),
			}).Error
		if err != nil {
			return err
		}

		if !replaceSizes {
			return nil
		}

		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductSizeModel{}).Error; err != nil {
			return err
		}
		for i := range product.SizeInventory {
			if err := tx.Create(mappers.ToGORMProductSize(&product.SizeInventory[i])).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceSizeInventory is the full-replace stock write: the old size set
// is dropped even when the new one overlaps it.
func (r *DefaultProductRepository) ReplaceSizeInventory(productID string, sizes []domain.ProductSize, amount int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&models.ProductSizeModel{}).Error; err != nil {
			return err
		}
		for i := range sizes {
			if err := tx.Create(mappers.ToGORMProductSize(&sizes[i])).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.ProductModel{}).
			Where("id = ?", productID).
			Updates(map[string]interface{}{
				"amount":     amount,
				"updated_at": time.Now(),
			}).Error
	})
}

func (r *DefaultProductRepository) DeleteProduct(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductSizeModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ProductModel{}, "id = ?", id).Error
	})
}
