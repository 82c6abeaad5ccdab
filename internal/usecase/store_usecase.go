package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shoply-app/shoply-backend/internal/domain"
	storedto "github.com/shoply-app/shoply-backend/internal/usecase/dto/store"
)

const initialAppVersion = "1.0.0"

type StoreUsecase interface {
	CreateStore(input *storedto.CreateStoreInput, actor *domain.Client) (*domain.Store, error)
	UpdateStore(storeID string, input *storedto.UpdateStoreInput, actor *domain.Client) (*domain.Store, error)
	GetStore(storeID string, actor *domain.Client) (*domain.Store, error)
	MyStores(actor *domain.Client) ([]*domain.Store, error)
	CreateApp(input *storedto.CreateAppInput, actor *domain.Client) (*domain.App, error)
}

type DefaultStoreUsecase struct {
	storeRepo domain.StoreRepository
	access    *StoreAccessPolicy
}

func NewDefaultStoreUsecase(storeRepo domain.StoreRepository, access *StoreAccessPolicy) *DefaultStoreUsecase {
	return &DefaultStoreUsecase{
		storeRepo: storeRepo,
		access:    access,
	}
}

func (uc *DefaultStoreUsecase) CreateStore(input *storedto.CreateStoreInput, actor *domain.Client) (*domain.Store, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: store name is required", domain.ErrInvalidInput)
	}

	now := time.Now()
	store := &domain.Store{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Description:    input.Description,
		ContactEmail:   input.ContactEmail,
		ContactPhone:   input.ContactPhone,
		ContactAddress: input.ContactAddress,
		ContactCity:    input.ContactCity,
		Website:        input.Website,
		IsActive:       true,
		OwnerID:        actor.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.storeRepo.CreateStore(store); err != nil {
		return nil, err
	}
	return store, nil
}

// UpdateStore is owner-only: managers can run the store but not redefine it.
func (uc *DefaultStoreUsecase) UpdateStore(storeID string, input *storedto.UpdateStoreInput, actor *domain.Client) (*domain.Store, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	store, err := uc.storeRepo.GetStoreByID(storeID, domain.StoreRelations{})
	if err != nil {
		return nil, err
	}
	if store.OwnerID != actor.ID {
		return nil, domain.ErrAccessDenied
	}

	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
	if input.ContactEmail != nil {
		store.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		store.ContactPhone = *input.ContactPhone
	}
	if input.ContactAddress != nil {
		store.ContactAddress = *input.ContactAddress
	}
	if input.ContactCity != nil {
		store.ContactCity = *input.ContactCity
	}
	if input.Website != nil {
		store.Website = *input.Website
	}
	if input.IsActive != nil {
		store.IsActive = *input.IsActive
	}
	store.UpdatedAt = time.Now()

	if err := uc.storeRepo.UpdateStore(store); err != nil {
		return nil, err
	}
	return store, nil
}

func (uc *DefaultStoreUsecase) GetStore(storeID string, actor *domain.Client) (*domain.Store, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	store, err := uc.storeRepo.GetStoreByID(storeID, domain.StoreRelations{
		Owner:    true,
		Managers: true,
		Couriers: true,
		App:      true,
	})
	if err != nil {
		return nil, err
	}

	if !HasStoreAccess(store, actor, domain.StoreRoleOwner, domain.StoreRoleManager, domain.StoreRoleCourier) {
		return nil, domain.ErrAccessDenied
	}
	return store, nil
}

// MyStores returns every store the actor belongs to in any role, owned
// first, without duplicates.
func (uc *DefaultStoreUsecase) MyStores(actor *domain.Client) ([]*domain.Store, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	owned, err := uc.storeRepo.GetStoresByOwnerID(actor.ID)
	if err != nil {
		return nil, err
	}
	managed, err := uc.storeRepo.GetStoresByManagerID(actor.ID)
	if err != nil {
		return nil, err
	}
	delivering, err := uc.storeRepo.GetStoresByCourierID(actor.ID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	stores := make([]*domain.Store, 0, len(owned)+len(managed)+len(delivering))
	for _, group := range [][]*domain.Store{owned, managed, delivering} {
		for _, s := range group {
			if seen[s.ID] {
				continue
			}
			seen[s.ID] = true
			stores = append(stores, s)
		}
	}
	return stores, nil
}

func (uc *DefaultStoreUsecase) CreateApp(input *storedto.CreateAppInput, actor *domain.Client) (*domain.App, error) {
	store, err := uc.access.RequireStoreAccess(input.StoreID, actor, domain.StoreRoleOwner)
	if err != nil {
		return nil, err
	}

	if store.AppID != "" {
		return nil, domain.ErrStoreHasApp
	}

	existing, err := uc.storeRepo.GetAppBySlug(input.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSlugTaken
	}

	now := time.Now()
	app := &domain.App{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Description:     input.Description,
		Slug:            input.Slug,
		Version:         initialAppVersion,
		IconURL:         input.IconURL,
		SplashScreenURL: input.SplashScreenURL,
		PrimaryColor:    input.PrimaryColor,
		SecondaryColor:  input.SecondaryColor,
		TargetPlatforms: input.TargetPlatforms,
		DefaultLanguage: input.DefaultLanguage,
		Currency:        input.Currency,
		Keywords:        input.Keywords,
		Screenshots:     input.Screenshots,
		StoreID:         store.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.storeRepo.CreateApp(app); err != nil {
		return nil, err
	}
	return app, nil
}
