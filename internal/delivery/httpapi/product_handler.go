package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shoply-app/shoply-backend/internal/delivery/httpapi/middleware"
	"github.com/shoply-app/shoply-backend/internal/usecase"
	productdto "github.com/shoply-app/shoply-backend/internal/usecase/dto/product"
)

type ProductHandler struct {
	products usecase.ProductUsecase
	log      *zap.Logger
}

func NewProductHandler(products usecase.ProductUsecase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, log: log}
}

type sizeInputReq struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

func toSizeInputs(reqs []sizeInputReq) []productdto.ProductSizeInput {
	out := make([]productdto.ProductSizeInput, 0, len(reqs))
	for _, s := range reqs {
		out = append(out, productdto.ProductSizeInput{Size: s.Size, Quantity: s.Quantity})
	}
	return out
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name            string         `json:"name"`
		Description     string         `json:"description"`
		Price           float64        `json:"price"`
		Category        string         `json:"category"`
		IsPreOrder      bool           `json:"isPreOrder"`
		IsDiscount      bool           `json:"isDiscount"`
		DiscountPercent int            `json:"discountPercent"`
		ImgUrls         []string       `json:"imgUrls"`
		SizeInventory   []sizeInputReq `json:"sizeInventory"`
		StoreID         string         `json:"storeId"`
	}
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	actor := middleware.ClientFromContext(r.Context())
	product, err := h.products.CreateProduct(&productdto.CreateProductInput{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Category:        req.Category,
		IsPreOrder:      req.IsPreOrder,
		IsDiscount:      req.IsDiscount,
		DiscountPercent: req.DiscountPercent,
		ImgUrls:         req.ImgUrls,
		SizeInventory:   toSizeInputs(req.SizeInventory),
		StoreID:         req.StoreID,
	}, actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("product created",
		zap.String("product_id", product.ID),
		zap.String("store_id", product.StoreID),
	)
	writeJSON(w, http.StatusCreated, toProductView(product))
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name            *string         `json:"name"`
		Description     *string         `json:"description"`
		Price           *float64        `json:"price"`
		Category        *string         `json:"category"`
		IsPreOrder      *bool           `json:"isPreOrder"`
		IsDiscount      *bool           `json:"isDiscount"`
		DiscountPercent *int            `json:"discountPercent"`
		ImgUrls         *[]string       `json:"imgUrls"`
		SizeInventory   *[]sizeInputReq `json:"sizeInventory"`
	}
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	input := &productdto.UpdateProductInput{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Category:        req.Category,
		IsPreOrder:      req.IsPreOrder,
		IsDiscount:      req.IsDiscount,
		DiscountPercent: req.DiscountPercent,
		ImgUrls:         req.ImgUrls,
	}
	if req.SizeInventory != nil {
		sizes := toSizeInputs(*req.SizeInventory)
		input.SizeInventory = &sizes
	}

	actor := middleware.ClientFromContext(r.Context())
	product, err := h.products.UpdateProduct(chi.URLParam(r, "productID"), input, actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductView(product))
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ClientFromContext(r.Context())

	product, err := h.products.DeleteProduct(chi.URLParam(r, "productID"), actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("product deleted", zap.String("product_id", product.ID))
	writeJSON(w, http.StatusOK, toProductView(product))
}

func (h *ProductHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SizeInventory []sizeInputReq `json:"sizeInventory"`
	}
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	actor := middleware.ClientFromContext(r.Context())
	product, err := h.products.UpdateProductStock(chi.URLParam(r, "productID"), toSizeInputs(req.SizeInventory), actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductView(product))
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ClientFromContext(r.Context())

	product, err := h.products.GetProduct(chi.URLParam(r, "productID"), actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductView(product))
}

func (h *ProductHandler) StoreProducts(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ClientFromContext(r.Context())

	products, err := h.products.GetStoreProducts(chi.URLParam(r, "storeID"), actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductViews(products))
}
