package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoply-app/shoply-backend/internal/domain"
	productdto "github.com/shoply-app/shoply-backend/internal/usecase/dto/product"
)

func productWorld(t *testing.T) (*testWorld, *DefaultProductUsecase, *domain.Client, *domain.Client) {
	t.Helper()
	w := newTestWorld()
	owner := w.addClient("owner-1", "owner@shoply.app")
	courier := w.addClient("courier-1", "courier@shoply.app")
	w.addStore("store-1", owner, nil, []*domain.Client{courier})
	return w, w.productUsecase(), owner, courier
}

func TestCreateProduct(t *testing.T) {
	_, uc, owner, courier := productWorld(t)

	t.Run("amount is the sum of size quantities", func(t *testing.T) {
		product, err := uc.CreateProduct(&productdto.CreateProductInput{
			Name:    "Hoodie",
			Price:   1200,
			StoreID: "store-1",
			SizeInventory: []productdto.ProductSizeInput{
				{Size: "M", Quantity: 5},
				{Size: "L", Quantity: 3},
			},
		}, owner)
		require.NoError(t, err)
		assert.Equal(t, 8, product.Amount)
		assert.Equal(t, 0, product.OrderCount)
		assert.True(t, product.IsActive)
		for _, s := range product.SizeInventory {
			assert.Equal(t, product.ID, s.ProductID)
		}
	})

	t.Run("no sizes means zero stock", func(t *testing.T) {
		product, err := uc.CreateProduct(&productdto.CreateProductInput{
			Name:    "Cap",
			StoreID: "store-1",
		}, owner)
		require.NoError(t, err)
		assert.Equal(t, 0, product.Amount)
	})

	t.Run("courier denied", func(t *testing.T) {
		_, err := uc.CreateProduct(&productdto.CreateProductInput{
			Name:    "Hoodie",
			StoreID: "store-1",
		}, courier)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("name required", func(t *testing.T) {
		_, err := uc.CreateProduct(&productdto.CreateProductInput{StoreID: "store-1"}, owner)
		assert.Error(t, err)
	})
}

func TestUpdateProduct(t *testing.T) {
	w, uc, owner, courier := productWorld(t)

	product, err := uc.CreateProduct(&productdto.CreateProductInput{
		Name:    "Hoodie",
		Price:   1200,
		StoreID: "store-1",
		SizeInventory: []productdto.ProductSizeInput{
			{Size: "M", Quantity: 5},
			{Size: "L", Quantity: 3},
		},
	}, owner)
	require.NoError(t, err)

	t.Run("field patch leaves the inventory alone", func(t *testing.T) {
		price := 999.0
		updated, err := uc.UpdateProduct(product.ID, &productdto.UpdateProductInput{
			Price: &price,
		}, owner)
		require.NoError(t, err)
		assert.Equal(t, 999.0, updated.Price)
		assert.Equal(t, 8, updated.Amount)
		assert.Len(t, w.products.products[product.ID].SizeInventory, 2)
	})

	t.Run("non-nil inventory replaces the size set", func(t *testing.T) {
		sizes := []productdto.ProductSizeInput{{Size: "S", Quantity: 10}}
		updated, err := uc.UpdateProduct(product.ID, &productdto.UpdateProductInput{
			SizeInventory: &sizes,
		}, owner)
		require.NoError(t, err)
		assert.Equal(t, 10, updated.Amount)
		require.Len(t, updated.SizeInventory, 1)
		assert.Equal(t, "S", updated.SizeInventory[0].Size)
	})

	t.Run("empty non-nil inventory wipes the stock", func(t *testing.T) {
		empty := []productdto.ProductSizeInput{}
		updated, err := uc.UpdateProduct(product.ID, &productdto.UpdateProductInput{
			SizeInventory: &empty,
		}, owner)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Amount)
		assert.Empty(t, updated.SizeInventory)
	})

	t.Run("courier denied", func(t *testing.T) {
		_, err := uc.UpdateProduct(product.ID, &productdto.UpdateProductInput{}, courier)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := uc.UpdateProduct("no-such-product", &productdto.UpdateProductInput{}, owner)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestUpdateProductStock(t *testing.T) {
	w, uc, owner, _ := productWorld(t)

	product, err := uc.CreateProduct(&productdto.CreateProductInput{
		Name:    "Hoodie",
		StoreID: "store-1",
		SizeInventory: []productdto.ProductSizeInput{
			{Size: "M", Quantity: 5},
		},
	}, owner)
	require.NoError(t, err)

	t.Run("stock write replaces the full set", func(t *testing.T) {
		updated, err := uc.UpdateProductStock(product.ID, []productdto.ProductSizeInput{
			{Size: "M", Quantity: 2},
			{Size: "XL", Quantity: 4},
		}, owner)
		require.NoError(t, err)
		assert.Equal(t, 6, updated.Amount)
		assert.Len(t, w.products.products[product.ID].SizeInventory, 2)
	})

	t.Run("empty list zeroes the inventory", func(t *testing.T) {
		updated, err := uc.UpdateProductStock(product.ID, nil, owner)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Amount)
		assert.Empty(t, w.products.products[product.ID].SizeInventory)
	})
}

func TestDeleteProduct(t *testing.T) {
	w, uc, owner, courier := productWorld(t)

	product, err := uc.CreateProduct(&productdto.CreateProductInput{
		Name:    "Hoodie",
		StoreID: "store-1",
	}, owner)
	require.NoError(t, err)

	t.Run("courier denied", func(t *testing.T) {
		_, err := uc.DeleteProduct(product.ID, courier)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("owner deletes", func(t *testing.T) {
		deleted, err := uc.DeleteProduct(product.ID, owner)
		require.NoError(t, err)
		assert.Equal(t, product.ID, deleted.ID)
		assert.NotContains(t, w.products.products, product.ID)
	})

	t.Run("deleting twice reports missing", func(t *testing.T) {
		_, err := uc.DeleteProduct(product.ID, owner)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
