package usecase

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	nanoid "github.com/jaevor/go-nanoid"

	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/kafka"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/metrics"
	invitedto "github.com/shoply-app/shoply-backend/internal/usecase/dto/invite"
)

const inviteTokenLength = 32

type InviteUsecase interface {
	CreateInvite(input *invitedto.CreateInviteInput, actor *domain.Client) (*domain.Invite, error)
	GetInvite(token string) (*domain.Invite, error)
	GetStoreInvites(storeID string, actor *domain.Client) ([]*domain.Invite, error)
	AcceptInvite(token string, actor *domain.Client) (*domain.Client, error)
	RevokeInvite(inviteID string, actor *domain.Client) (*domain.Invite, error)
	RemoveTeamMember(storeID, clientID string, actor *domain.Client) (*domain.Client, error)
}

type DefaultInviteUsecase struct {
	inviteRepo domain.InviteRepository
	storeRepo  domain.StoreRepository
	clientRepo domain.ClientRepository
	access     *StoreAccessPolicy
	publisher  domain.EventPublisher
	metrics    *metrics.StoreMetrics
	newToken   func() string
}

func NewDefaultInviteUsecase(
	inviteRepo domain.InviteRepository,
	storeRepo domain.StoreRepository,
	clientRepo domain.ClientRepository,
	access *StoreAccessPolicy,
	publisher domain.EventPublisher,
	storeMetrics *metrics.StoreMetrics,
) *DefaultInviteUsecase {
	newToken, err := nanoid.Standard(inviteTokenLength)
	if err != nil {
		panic(err)
	}
	return &DefaultInviteUsecase{
		inviteRepo: inviteRepo,
		storeRepo:  storeRepo,
		clientRepo: clientRepo,
		access:     access,
		publisher:  publisher,
		metrics:    storeMetrics,
		newToken:   newToken,
	}
}

func (uc *DefaultInviteUsecase) CreateInvite(input *invitedto.CreateInviteInput, actor *domain.Client) (*domain.Invite, error) {
	if input.Role != domain.TeamRoleManager && input.Role != domain.TeamRoleCourier {
		return nil, fmt.Errorf("%w: unknown invite role %q", domain.ErrInvalidInput, input.Role)
	}

	if _, err := uc.access.RequireStoreAccess(input.StoreID, actor, domain.StoreRoleOwner, domain.StoreRoleManager); err != nil {
		return nil, err
	}

	now := time.Now()

	// Duplicate and membership checks apply to addressed invites only; an
	// open invite has no email to collide on.
	if input.Email != "" {
		active, err := uc.inviteRepo.FindActiveInvite(input.StoreID, input.Email, now)
		if err != nil {
			return nil, err
		}
		if active != nil {
			return nil, domain.ErrActiveInviteExists
		}

		team, err := uc.storeRepo.GetStoreByID(input.StoreID, domain.StoreRelations{
			Owner:    true,
			Managers: true,
			Couriers: true,
		})
		if err != nil {
			return nil, err
		}
		if memberEmail(team, input.Email) {
			return nil, domain.ErrAlreadyMember
		}
	}

	invite := &domain.Invite{
		ID:        uuid.New().String(),
		Token:     uc.newToken(),
		Email:     input.Email,
		Role:      input.Role,
		StoreID:   input.StoreID,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.InviteTTL),
		UpdatedAt: now,
	}

	if err := uc.inviteRepo.CreateInvite(invite); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordInviteCreated(invite.StoreID, string(invite.Role))
	}
	return invite, nil
}

func memberEmail(store *domain.Store, email string) bool {
	if store.Owner != nil && store.Owner.Email == email {
		return true
	}
	for _, m := range store.Managers {
		if m != nil && m.Email == email {
			return true
		}
	}
	for _, c := range store.Couriers {
		if c != nil && c.Email == email {
			return true
		}
	}
	return false
}

// GetInvite is the public token lookup used by the invite landing page. It
// rejects expired and used invites but intentionally resolves revoked ones.
func (uc *DefaultInviteUsecase) GetInvite(token string) (*domain.Invite, error) {
	invite, err := uc.inviteRepo.GetInviteByToken(token, domain.InviteRelations{Store: true, UsedBy: true})
	if err != nil {
		return nil, err
	}

	if invite.Expired(time.Now()) {
		return nil, domain.ErrInviteExpired
	}
	if invite.IsUsed {
		return nil, domain.ErrInviteUsed
	}
	return invite, nil
}

func (uc *DefaultInviteUsecase) GetStoreInvites(storeID string, actor *domain.Client) ([]*domain.Invite, error) {
	if _, err := uc.access.RequireStoreAccess(storeID, actor, domain.StoreRoleOwner, domain.StoreRoleManager); err != nil {
		return nil, err
	}
	return uc.inviteRepo.GetInvitesByStoreID(storeID)
}

func (uc *DefaultInviteUsecase) AcceptInvite(token string, actor *domain.Client) (*domain.Client, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	invite, err := uc.inviteRepo.GetInviteByToken(token, domain.InviteRelations{StoreTeam: true})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	// Expiry first: a lapsed invite reports expired regardless of its flags.
	if invite.Expired(now) {
		return nil, domain.ErrInviteExpired
	}
	if invite.IsUsed {
		return nil, domain.ErrInviteUsed
	}
	if invite.Revoked {
		return nil, domain.ErrInviteRevoked
	}
	if HasStoreAccess(invite.Store, actor, domain.StoreRoleOwner, domain.StoreRoleManager, domain.StoreRoleCourier) {
		return nil, domain.ErrAlreadyMember
	}

	if err := uc.inviteRepo.AcceptInvite(invite.ID, actor.ID, invite.Role, now); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordInviteAccepted(invite.StoreID, string(invite.Role))
	}
	uc.publishTeamEvent(kafka.TeamEvent{
		StoreID:  invite.StoreID,
		ClientID: actor.ID,
		Role:     string(invite.Role),
		Action:   kafka.TeamActionJoined,
		InviteID: invite.ID,
	})

	return uc.clientRepo.GetClientByID(actor.ID)
}

func (uc *DefaultInviteUsecase) RevokeInvite(inviteID string, actor *domain.Client) (*domain.Invite, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	invite, err := uc.inviteRepo.GetInviteByID(inviteID, domain.InviteRelations{StoreTeam: true})
	if err != nil {
		return nil, err
	}

	if !HasStoreAccess(invite.Store, actor, domain.StoreRoleOwner, domain.StoreRoleManager) {
		return nil, domain.ErrAccessDenied
	}
	if invite.IsUsed {
		return nil, domain.ErrInviteUsed
	}
	if invite.Revoked {
		return nil, domain.ErrInviteRevoked
	}

	now := time.Now()
	if err := uc.inviteRepo.RevokeInvite(inviteID, now); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordInviteRevoked(invite.StoreID)
	}

	invite.Revoked = true
	invite.RevokedAt = &now
	invite.UpdatedAt = now
	return invite, nil
}

func (uc *DefaultInviteUsecase) RemoveTeamMember(storeID, clientID string, actor *domain.Client) (*domain.Client, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	// Both member sets are loaded so a courier is as removable as a manager.
	store, err := uc.storeRepo.GetStoreByID(storeID, domain.StoreRelations{
		Managers: true,
		Couriers: true,
	})
	if err != nil {
		return nil, err
	}
	if !HasStoreAccess(store, actor, domain.StoreRoleOwner, domain.StoreRoleManager) {
		return nil, domain.ErrAccessDenied
	}

	if store.OwnerID == clientID {
		return nil, domain.ErrOwnerRemoval
	}

	target, err := uc.clientRepo.GetClientByID(clientID)
	if err != nil {
		return nil, err
	}

	isManager := containsClient(store.Managers, clientID)
	isCourier := containsClient(store.Couriers, clientID)
	if !isManager && !isCourier {
		return nil, domain.ErrNotTeamMember
	}

	if isManager {
		if err := uc.storeRepo.RemoveTeamMember(storeID, clientID, domain.TeamRoleManager); err != nil {
			return nil, err
		}
		uc.recordRemoval(storeID, clientID, domain.TeamRoleManager)
	}
	if isCourier {
		if err := uc.storeRepo.RemoveTeamMember(storeID, clientID, domain.TeamRoleCourier); err != nil {
			return nil, err
		}
		uc.recordRemoval(storeID, clientID, domain.TeamRoleCourier)
	}

	return target, nil
}

func (uc *DefaultInviteUsecase) recordRemoval(storeID, clientID string, role domain.TeamRole) {
	if uc.metrics != nil {
		uc.metrics.RecordTeamMemberRemoved(storeID, string(role))
	}
	uc.publishTeamEvent(kafka.TeamEvent{
		StoreID:  storeID,
		ClientID: clientID,
		Role:     string(role),
		Action:   kafka.TeamActionRemoved,
	})
}

func (uc *DefaultInviteUsecase) publishTeamEvent(event kafka.TeamEvent) {
	if uc.publisher == nil {
		return
	}
	if err := kafka.PublishTeamEvent(uc.publisher, event); err != nil {
		log.Printf("failed to publish team event: %v", err)
	}
}
