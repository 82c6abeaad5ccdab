package domain

import "time"

// Product.Amount is derived: it always equals the sum of size quantities.
type Product struct {
	ID              string
	Name            string
	Description     string
	Price           float64
	Category        string
	Amount          int
	SizeInventory   []ProductSize
	IsPreOrder      bool
	IsDiscount      bool
	DiscountPercent int
	ImgUrls         []string
	StoreID         string
	Store           *Store
	OrderCount      int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ProductSize struct {
	ID        string
	Size      string
	Quantity  int
	ProductID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalQuantity sums the size inventory; the product amount is kept equal
// to this value on every inventory write.
func TotalQuantity(sizes []ProductSize) int {
	total := 0
	for _, s := range sizes {
		total += s.Quantity
	}
	return total
}

type ProductRelations struct {
	Sizes     bool
	Store     bool
	StoreTeam bool // store with owner, managers and couriers
}

type ProductRepository interface {
	// CreateProduct writes the product row and its size rows transactionally.
	CreateProduct(product *Product) error
	GetProductByID(id string, rel ProductRelations) (*Product, error)
	GetProductsByStoreID(storeID string) ([]*Product, error)
	// SaveProduct persists the product fields; when replaceSizes is set the
	// whole size set is deleted and recreated from product.SizeInventory.
	SaveProduct(product *Product, replaceSizes bool) error
	// ReplaceSizeInventory swaps the full size set and writes the new amount.
	ReplaceSizeInventory(productID string, sizes []ProductSize, amount int) error
	DeleteProduct(id string) error
}
