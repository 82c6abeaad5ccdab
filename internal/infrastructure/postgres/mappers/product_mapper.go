package mappers

import (
	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/models"
)

func ToGORMProduct(product *domain.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:              product.ID,
		Name:            product.Name,
		Description:     product.Description,
		Price:           product.Price,
		Category:        product.Category,
		Amount:          product.Amount,
		IsPreOrder:      product.IsPreOrder,
		IsDiscount:      product.IsDiscount,
		DiscountPercent: product.DiscountPercent,
		ImgUrls:         encodeStringList(product.ImgUrls),
		OrderCount:      product.OrderCount,
		IsActive:        product.IsActive,
		StoreID:         product.StoreID,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}
}

func ToGORMProductSize(size *domain.ProductSize) *models.ProductSizeModel {
	return &models.ProductSizeModel{
		ID:        size.ID,
		Size:      size.Size,
		Quantity:  size.Quantity,
		ProductID: size.ProductID,
		CreatedAt: size.CreatedAt,
		UpdatedAt: size.UpdatedAt,
	}
}

func ToDomainProduct(model *models.ProductModel, rel domain.ProductRelations) *domain.Product {
	product := &domain.Product{
		ID:              model.ID,
		Name:            model.Name,
		Description:     model.Description,
		Price:           model.Price,
		Category:        model.Category,
		Amount:          model.Amount,
		IsPreOrder:      model.IsPreOrder,
		IsDiscount:      model.IsDiscount,
		DiscountPercent: model.DiscountPercent,
		ImgUrls:         decodeStringList(model.ImgUrls),
		OrderCount:      model.OrderCount,
		IsActive:        model.IsActive,
		StoreID:         model.StoreID,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}

	if rel.Sizes {
		product.SizeInventory = make([]domain.ProductSize, len(model.SizeInventory))
		for i, size := range model.SizeInventory {
			product.SizeInventory[i] = domain.ProductSize{
				ID:        size.ID,
				Size:      size.Size,
				Quantity:  size.Quantity,
				ProductID: size.ProductID,
				CreatedAt: size.CreatedAt,
				UpdatedAt: size.UpdatedAt,
			}
		}
	}
	if rel.Store || rel.StoreTeam {
		product.Store = ToDomainStore(&model.Store, domain.StoreRelations{
			Managers: rel.StoreTeam,
			Couriers: rel.StoreTeam,
		})
	}

	return product
}
