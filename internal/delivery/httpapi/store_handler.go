package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shoply-app/shoply-backend/internal/delivery/httpapi/middleware"
	"github.com/shoply-app/shoply-backend/internal/usecase"
	storedto "github.com/shoply-app/shoply-backend/internal/usecase/dto/store"
)

type StoreHandler struct {
	stores usecase.StoreUsecase
	log    *zap.Logger
}

func NewStoreHandler(stores usecase.StoreUsecase, log *zap.Logger) *StoreHandler {
	return &StoreHandler{stores: stores, log: log}
}

func (h *StoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           string `json:"name"`
		Description    string `json:"description"`
		ContactEmail   string `json:"contactEmail"`
		ContactPhone   string `json:"contactPhone"`
		ContactAddress string `json:"contactAddress"`
		ContactCity    string `json:"contactCity"`
		Website        string `json:"website"`
	}
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	actor := middleware.ClientFromContext(r.Context())
	store, err := h.stores.CreateStore(&storedto.CreateStoreInput{
		Name:           req.Name,
		Description:    req.Description,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		ContactAddress: req.ContactAddress,
		ContactCity:    req.ContactCity,
		Website:        req.Website,
	}, actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("store created",
		zap.String("store_id", store.ID),
		zap.String("owner_id", store.OwnerID),
	)
	writeJSON(w, http.StatusCreated, toStoreView(store))
}

func (h *StoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           *string `json:"name"`
		Description    *string `json:"description"`
		ContactEmail   *string `json:"contactEmail"`
		ContactPhone   *string `json:"contactPhone"`
		ContactAddress *string `json:"contactAddress"`
		ContactCity    *string `json:"contactCity"`
		Website        *string `json:"website"`
		IsActive       *bool   `json:"isActive"`
	}
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	actor := middleware.ClientFromContext(r.Context())
	store, err := h.stores.UpdateStore(chi.URLParam(r, "storeID"), &storedto.UpdateStoreInput{
		Name:           req.Name,
		Description:    req.Description,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		ContactAddress: req.ContactAddress,
		ContactCity:    req.ContactCity,
		Website:        req.Website,
		IsActive:       req.IsActive,
	}, actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStoreView(store))
}

func (h *StoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ClientFromContext(r.Context())

	store, err := h.stores.GetStore(chi.URLParam(r, "storeID"), actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStoreView(store))
}

func (h *StoreHandler) MyStores(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ClientFromContext(r.Context())

	stores, err := h.stores.MyStores(actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStoreViews(stores))
}

func (h *StoreHandler) CreateApp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name            string   `json:"name"`
		Description     string   `json:"description"`
		Slug            string   `json:"slug"`
		IconURL         string   `json:"iconUrl"`
		SplashScreenURL string   `json:"splashScreenUrl"`
		PrimaryColor    string   `json:"primaryColor"`
		SecondaryColor  string   `json:"secondaryColor"`
		TargetPlatforms []string `json:"targetPlatforms"`
		DefaultLanguage string   `json:"defaultLanguage"`
		Currency        string   `json:"currency"`
		Keywords        []string `json:"keywords"`
		Screenshots     []string `json:"screenshots"`
		StoreID         string   `json:"storeId"`
	}
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	actor := middleware.ClientFromContext(r.Context())
	app, err := h.stores.CreateApp(&storedto.CreateAppInput{
		Name:            req.Name,
		Description:     req.Description,
		Slug:            req.Slug,
		IconURL:         req.IconURL,
		SplashScreenURL: req.SplashScreenURL,
		PrimaryColor:    req.PrimaryColor,
		SecondaryColor:  req.SecondaryColor,
		TargetPlatforms: req.TargetPlatforms,
		DefaultLanguage: req.DefaultLanguage,
		Currency:        req.Currency,
		Keywords:        req.Keywords,
		Screenshots:     req.Screenshots,
		StoreID:         req.StoreID,
	}, actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("store app created",
		zap.String("app_id", app.ID),
		zap.String("store_id", app.StoreID),
		zap.String("slug", app.Slug),
	)
	writeJSON(w, http.StatusCreated, toAppView(app))
}
