package usecase

import (
	"github.com/shoply-app/shoply-backend/internal/domain"
)

// HasStoreAccess reports whether the actor holds one of the allowed roles
// on the store. Only the requested roles are evaluated, and a member set
// that was never loaded can not grant access.
func HasStoreAccess(store *domain.Store, actor *domain.Client, allowedRoles ...domain.StoreRole) bool {
	if store == nil || actor == nil {
		return false
	}

	for _, role := range allowedRoles {
		switch role {
		case domain.StoreRoleOwner:
			if store.OwnerID == actor.ID {
				return true
			}
		case domain.StoreRoleManager:
			if store.Managers != nil && containsClient(store.Managers, actor.ID) {
				return true
			}
		case domain.StoreRoleCourier:
			if store.Couriers != nil && containsClient(store.Couriers, actor.ID) {
				return true
			}
		}
	}
	return false
}

func containsClient(clients []*domain.Client, id string) bool {
	for _, c := range clients {
		if c != nil && c.ID == id {
			return true
		}
	}
	return false
}

// StoreAccessPolicy is the single access-control entry point: it loads the
// store with exactly the role relations the check needs and evaluates the
// actor against them.
type StoreAccessPolicy struct {
	storeRepo domain.StoreRepository
}

func NewStoreAccessPolicy(storeRepo domain.StoreRepository) *StoreAccessPolicy {
	return &StoreAccessPolicy{
		storeRepo: storeRepo,
	}
}

func (p *StoreAccessPolicy) RequireStoreAccess(storeID string, actor *domain.Client, allowedRoles ...domain.StoreRole) (*domain.Store, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	rel := domain.StoreRelations{}
	for _, role := range allowedRoles {
		switch role {
		case domain.StoreRoleManager:
			rel.Managers = true
		case domain.StoreRoleCourier:
			rel.Couriers = true
		}
	}

	store, err := p.storeRepo.GetStoreByID(storeID, rel)
	if err != nil {
		return nil, err
	}

	if !HasStoreAccess(store, actor, allowedRoles...) {
		return nil, domain.ErrAccessDenied
	}

	return store, nil
}
