package productdto

type ProductSizeInput struct {
	Size     string
	Quantity int
}

type CreateProductInput struct {
	Name            string
	Description     string
	Price           float64
	Category        string
	IsPreOrder      bool
	IsDiscount      bool
	DiscountPercent int
	ImgUrls         []string
	SizeInventory   []ProductSizeInput
	StoreID         string
}

// UpdateProductInput uses pointers to distinguish absent fields from zero
// values. SizeInventory is a pointer to a slice on purpose: nil means the
// inventory is untouched, an empty non-nil slice wipes it.
type UpdateProductInput struct {
	Name            *string
	Description     *string
	Price           *float64
	Category        *string
	IsPreOrder      *bool
	IsDiscount      *bool
	DiscountPercent *int
	ImgUrls         *[]string
	SizeInventory   *[]ProductSizeInput
}
