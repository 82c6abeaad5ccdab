package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/metrics"
	productdto "github.com/shoply-app/shoply-backend/internal/usecase/dto/product"
)

type ProductUsecase interface {
	CreateProduct(input *productdto.CreateProductInput, actor *domain.Client) (*domain.Product, error)
	UpdateProduct(productID string, input *productdto.UpdateProductInput, actor *domain.Client) (*domain.Product, error)
	DeleteProduct(productID string, actor *domain.Client) (*domain.Product, error)
	UpdateProductStock(productID string, sizes []productdto.ProductSizeInput, actor *domain.Client) (*domain.Product, error)
	GetProduct(productID string, actor *domain.Client) (*domain.Product, error)
	GetStoreProducts(storeID string, actor *domain.Client) ([]*domain.Product, error)
}

type DefaultProductUsecase struct {
	productRepo domain.ProductRepository
	access      *StoreAccessPolicy
	metrics     *metrics.StoreMetrics
}

func NewDefaultProductUsecase(
	productRepo domain.ProductRepository,
	access *StoreAccessPolicy,
	storeMetrics *metrics.StoreMetrics,
) *DefaultProductUsecase {
	return &DefaultProductUsecase{
		productRepo: productRepo,
		access:      access,
		metrics:     storeMetrics,
	}
}

func (uc *DefaultProductUsecase) CreateProduct(input *productdto.CreateProductInput, actor *domain.Client) (*domain.Product, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", domain.ErrInvalidInput)
	}

	if _, err := uc.access.RequireStoreAccess(input.StoreID, actor, domain.StoreRoleOwner, domain.StoreRoleManager); err != nil {
		return nil, err
	}

	now := time.Now()
	productID := uuid.New().String()
	sizes := buildSizes(productID, input.SizeInventory, now)

	product := &domain.Product{
		ID:              productID,
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		Category:        input.Category,
		Amount:          domain.TotalQuantity(sizes),
		SizeInventory:   sizes,
		IsPreOrder:      input.IsPreOrder,
		IsDiscount:      input.IsDiscount,
		DiscountPercent: input.DiscountPercent,
		ImgUrls:         input.ImgUrls,
		StoreID:         input.StoreID,
		OrderCount:      0,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.productRepo.CreateProduct(product); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordProductCreated(product.StoreID)
	}
	return product, nil
}

func (uc *DefaultProductUsecase) UpdateProduct(productID string, input *productdto.UpdateProductInput, actor *domain.Client) (*domain.Product, error) {
	product, err := uc.requireProductAccess(productID, actor, domain.ProductRelations{Sizes: true, StoreTeam: true})
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.IsPreOrder != nil {
		product.IsPreOrder = *input.IsPreOrder
	}
	if input.IsDiscount != nil {
		product.IsDiscount = *input.IsDiscount
	}
	if input.DiscountPercent != nil {
		product.DiscountPercent = *input.DiscountPercent
	}
	if input.ImgUrls != nil {
		product.ImgUrls = *input.ImgUrls
	}

	now := time.Now()
	// A nil SizeInventory leaves stock untouched; a non-nil one, empty
	// included, replaces the whole size set and re-derives the amount.
	replaceSizes := false
	if input.SizeInventory != nil {
		sizes := buildSizes(product.ID, *input.SizeInventory, now)
		product.SizeInventory = sizes
		product.Amount = domain.TotalQuantity(sizes)
		replaceSizes = true
	}
	product.UpdatedAt = now

	if err := uc.productRepo.SaveProduct(product, replaceSizes); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *DefaultProductUsecase) DeleteProduct(productID string, actor *domain.Client) (*domain.Product, error) {
	product, err := uc.requireProductAccess(productID, actor, domain.ProductRelations{Sizes: true, StoreTeam: true})
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.DeleteProduct(productID); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordProductDeleted(product.StoreID)
	}
	return product, nil
}

// UpdateProductStock always replaces the full size set, so sending an empty
// list zeroes the inventory.
func (uc *DefaultProductUsecase) UpdateProductStock(productID string, sizeInputs []productdto.ProductSizeInput, actor *domain.Client) (*domain.Product, error) {
	product, err := uc.requireProductAccess(productID, actor, domain.ProductRelations{StoreTeam: true})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sizes := buildSizes(product.ID, sizeInputs, now)
	amount := domain.TotalQuantity(sizes)

	if err := uc.productRepo.ReplaceSizeInventory(product.ID, sizes, amount); err != nil {
		return nil, err
	}

	product.SizeInventory = sizes
	product.Amount = amount
	product.UpdatedAt = now
	return product, nil
}

func (uc *DefaultProductUsecase) GetProduct(productID string, actor *domain.Client) (*domain.Product, error) {
	return uc.requireProductAccess(productID, actor, domain.ProductRelations{Sizes: true, Store: true, StoreTeam: true})
}

func (uc *DefaultProductUsecase) GetStoreProducts(storeID string, actor *domain.Client) ([]*domain.Product, error) {
	if _, err := uc.access.RequireStoreAccess(storeID, actor, domain.StoreRoleOwner, domain.StoreRoleManager); err != nil {
		return nil, err
	}
	return uc.productRepo.GetProductsByStoreID(storeID)
}

func (uc *DefaultProductUsecase) requireProductAccess(productID string, actor *domain.Client, rel domain.ProductRelations) (*domain.Product, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	product, err := uc.productRepo.GetProductByID(productID, rel)
	if err != nil {
		return nil, err
	}
	if !HasStoreAccess(product.Store, actor, domain.StoreRoleOwner, domain.StoreRoleManager) {
		return nil, domain.ErrAccessDenied
	}
	return product, nil
}

func buildSizes(productID string, inputs []productdto.ProductSizeInput, now time.Time) []domain.ProductSize {
	sizes := make([]domain.ProductSize, 0, len(inputs))
	for _, in := range inputs {
		sizes = append(sizes, domain.ProductSize{
			ID:        uuid.New().String(),
			Size:      in.Size,
			Quantity:  in.Quantity,
			ProductID: productID,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return sizes
}
