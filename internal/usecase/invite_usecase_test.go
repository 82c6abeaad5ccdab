package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/kafka"
	invitedto "github.com/shoply-app/shoply-backend/internal/usecase/dto/invite"
)

func TestCreateInvite(t *testing.T) {
	w := newTestWorld()
	owner := w.addClient("owner-1", "owner@shoply.app")
	manager := w.addClient("manager-1", "manager@shoply.app")
	courier := w.addClient("courier-1", "courier@shoply.app")
	w.addStore("store-1", owner, []*domain.Client{manager}, []*domain.Client{courier})
	uc := w.inviteUsecase()

	t.Run("owner creates an addressed invite", func(t *testing.T) {
		invite, err := uc.CreateInvite(&invitedto.CreateInviteInput{
			Email:   "new@shoply.app",
			Role:    domain.TeamRoleCourier,
			StoreID: "store-1",
		}, owner)
		require.NoError(t, err)
		assert.NotEmpty(t, invite.ID)
		assert.NotEmpty(t, invite.Token)
		assert.False(t, invite.IsUsed)
		assert.False(t, invite.Revoked)
		assert.Equal(t, invite.CreatedAt.Add(domain.InviteTTL), invite.ExpiresAt)
	})

	t.Run("second active invite for the same email conflicts", func(t *testing.T) {
		_, err := uc.CreateInvite(&invitedto.CreateInviteInput{
			Email:   "new@shoply.app",
			Role:    domain.TeamRoleManager,
			StoreID: "store-1",
		}, owner)
		assert.ErrorIs(t, err, domain.ErrActiveInviteExists)
	})

	t.Run("open invites never collide", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			_, err := uc.CreateInvite(&invitedto.CreateInviteInput{
				Role:    domain.TeamRoleCourier,
				StoreID: "store-1",
			}, manager)
			require.NoError(t, err)
		}
	})

	t.Run("inviting an existing member conflicts", func(t *testing.T) {
		for _, email := range []string{"owner@shoply.app", "manager@shoply.app", "courier@shoply.app"} {
			_, err := uc.CreateInvite(&invitedto.CreateInviteInput{
				Email:   email,
				Role:    domain.TeamRoleManager,
				StoreID: "store-1",
			}, owner)
			assert.ErrorIs(t, err, domain.ErrAlreadyMember, email)
		}
	})

	t.Run("courier can not invite", func(t *testing.T) {
		_, err := uc.CreateInvite(&invitedto.CreateInviteInput{
			Email:   "someone@shoply.app",
			Role:    domain.TeamRoleCourier,
			StoreID: "store-1",
		}, courier)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := uc.CreateInvite(&invitedto.CreateInviteInput{
			Role:    domain.TeamRole("OWNER"),
			StoreID: "store-1",
		}, owner)
		assert.Error(t, err)
	})
}

func TestAcceptInvite(t *testing.T) {
	w := newTestWorld()
	owner := w.addClient("owner-1", "owner@shoply.app")
	manager := w.addClient("manager-1", "manager@shoply.app")
	joiner := w.addClient("joiner-1", "joiner@shoply.app")
	w.addStore("store-1", owner, []*domain.Client{manager}, nil)
	uc := w.inviteUsecase()

	invite, err := uc.CreateInvite(&invitedto.CreateInviteInput{
		Email:   "joiner@shoply.app",
		Role:    domain.TeamRoleCourier,
		StoreID: "store-1",
	}, owner)
	require.NoError(t, err)

	t.Run("join adds the courier and publishes the event", func(t *testing.T) {
		client, err := uc.AcceptInvite(invite.Token, joiner)
		require.NoError(t, err)
		assert.Equal(t, joiner.ID, client.ID)

		store := w.stores.stores["store-1"]
		assert.True(t, containsClient(store.Couriers, joiner.ID))

		require.Len(t, w.publisher.events, 1)
		assert.Equal(t, kafka.TeamEventsTopic, w.publisher.events[0].topic)
	})

	t.Run("second accept reports used", func(t *testing.T) {
		other := w.addClient("other-1", "other@shoply.app")
		_, err := uc.AcceptInvite(invite.Token, other)
		assert.ErrorIs(t, err, domain.ErrInviteUsed)
	})

	t.Run("existing member can not join again", func(t *testing.T) {
		open, err := uc.CreateInvite(&invitedto.CreateInviteInput{
			Role:    domain.TeamRoleManager,
			StoreID: "store-1",
		}, owner)
		require.NoError(t, err)

		for _, member := range []*domain.Client{owner, manager, joiner} {
			_, err := uc.AcceptInvite(open.Token, member)
			assert.ErrorIs(t, err, domain.ErrAlreadyMember, member.ID)
		}
	})

	t.Run("revoked invite rejected", func(t *testing.T) {
		revoked, err := uc.CreateInvite(&invitedto.CreateInviteInput{
			Role:    domain.TeamRoleCourier,
			StoreID: "store-1",
		}, owner)
		require.NoError(t, err)
		_, err = uc.RevokeInvite(revoked.ID, owner)
		require.NoError(t, err)

		outsider := w.addClient("outsider-1", "outsider@shoply.app")
		_, err = uc.AcceptInvite(revoked.Token, outsider)
		assert.ErrorIs(t, err, domain.ErrInviteRevoked)
	})

	t.Run("expiry wins over the used and revoked flags", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		usedAt := past.Add(-time.Hour)
		w.invites.invites["stale"] = &domain.Invite{
			ID:        "stale",
			Token:     "stale-token",
			Role:      domain.TeamRoleCourier,
			StoreID:   "store-1",
			ExpiresAt: past,
			IsUsed:    true,
			UsedAt:    &usedAt,
			Revoked:   true,
			RevokedAt: &usedAt,
		}

		outsider := w.addClient("outsider-2", "outsider2@shoply.app")
		_, err := uc.AcceptInvite("stale-token", outsider)
		assert.ErrorIs(t, err, domain.ErrInviteExpired)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := uc.AcceptInvite("missing-token", joiner)
		assert.ErrorIs(t, err, domain.ErrInviteNotFound)
	})

	t.Run("anonymous accept", func(t *testing.T) {
		_, err := uc.AcceptInvite(invite.Token, nil)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestRevokeInvite(t *testing.T) {
	w := newTestWorld()
	owner := w.addClient("owner-1", "owner@shoply.app")
	manager := w.addClient("manager-1", "manager@shoply.app")
	courier := w.addClient("courier-1", "courier@shoply.app")
	w.addStore("store-1", owner, []*domain.Client{manager}, []*domain.Client{courier})
	uc := w.inviteUsecase()

	newInvite := func(t *testing.T) *domain.Invite {
		t.Helper()
		inv, err := uc.CreateInvite(&invitedto.CreateInviteInput{
			Role:    domain.TeamRoleCourier,
			StoreID: "store-1",
		}, owner)
		require.NoError(t, err)
		return inv
	}

	t.Run("manager revokes", func(t *testing.T) {
		inv := newInvite(t)
		revoked, err := uc.RevokeInvite(inv.ID, manager)
		require.NoError(t, err)
		assert.True(t, revoked.Revoked)
		require.NotNil(t, revoked.RevokedAt)
	})

	t.Run("courier denied", func(t *testing.T) {
		inv := newInvite(t)
		_, err := uc.RevokeInvite(inv.ID, courier)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("revoking twice conflicts", func(t *testing.T) {
		inv := newInvite(t)
		_, err := uc.RevokeInvite(inv.ID, owner)
		require.NoError(t, err)
		_, err = uc.RevokeInvite(inv.ID, owner)
		assert.ErrorIs(t, err, domain.ErrInviteRevoked)
	})

	t.Run("used invite can not be revoked", func(t *testing.T) {
		inv := newInvite(t)
		joiner := w.addClient("joiner-2", "joiner2@shoply.app")
		_, err := uc.AcceptInvite(inv.Token, joiner)
		require.NoError(t, err)

		_, err = uc.RevokeInvite(inv.ID, owner)
		assert.ErrorIs(t, err, domain.ErrInviteUsed)
	})
}

func TestGetInvite(t *testing.T) {
	w := newTestWorld()
	owner := w.addClient("owner-1", "owner@shoply.app")
	w.addStore("store-1", owner, nil, nil)
	uc := w.inviteUsecase()

	invite, err := uc.CreateInvite(&invitedto.CreateInviteInput{
		Role:    domain.TeamRoleManager,
		StoreID: "store-1",
	}, owner)
	require.NoError(t, err)

	t.Run("pending invite resolves with its store", func(t *testing.T) {
		got, err := uc.GetInvite(invite.Token)
		require.NoError(t, err)
		require.NotNil(t, got.Store)
		assert.Equal(t, "store-1", got.Store.ID)
	})

	t.Run("revoked invite still resolves", func(t *testing.T) {
		_, err := uc.RevokeInvite(invite.ID, owner)
		require.NoError(t, err)

		got, err := uc.GetInvite(invite.Token)
		require.NoError(t, err)
		assert.True(t, got.Revoked)
	})

	t.Run("used invite reports used", func(t *testing.T) {
		used, err := uc.CreateInvite(&invitedto.CreateInviteInput{
			Role:    domain.TeamRoleManager,
			StoreID: "store-1",
		}, owner)
		require.NoError(t, err)
		joiner := w.addClient("joiner-3", "joiner3@shoply.app")
		_, err = uc.AcceptInvite(used.Token, joiner)
		require.NoError(t, err)

		_, err = uc.GetInvite(used.Token)
		assert.ErrorIs(t, err, domain.ErrInviteUsed)
	})

	t.Run("expired invite reports expired", func(t *testing.T) {
		w.invites.invites["old"] = &domain.Invite{
			ID:        "old",
			Token:     "old-token",
			Role:      domain.TeamRoleManager,
			StoreID:   "store-1",
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		_, err := uc.GetInvite("old-token")
		assert.ErrorIs(t, err, domain.ErrInviteExpired)
	})
}

func TestRemoveTeamMember(t *testing.T) {
	w := newTestWorld()
	owner := w.addClient("owner-1", "owner@shoply.app")
	manager := w.addClient("manager-1", "manager@shoply.app")
	courier := w.addClient("courier-1", "courier@shoply.app")
	w.addStore("store-1", owner, []*domain.Client{manager}, []*domain.Client{courier})
	uc := w.inviteUsecase()

	t.Run("manager removes a courier", func(t *testing.T) {
		removed, err := uc.RemoveTeamMember("store-1", courier.ID, manager)
		require.NoError(t, err)
		assert.Equal(t, courier.ID, removed.ID)
		assert.False(t, containsClient(w.stores.stores["store-1"].Couriers, courier.ID))

		require.Len(t, w.publisher.events, 1)
		assert.Equal(t, kafka.TeamEventsTopic, w.publisher.events[0].topic)
	})

	t.Run("owner can not be removed", func(t *testing.T) {
		_, err := uc.RemoveTeamMember("store-1", owner.ID, manager)
		assert.ErrorIs(t, err, domain.ErrOwnerRemoval)
	})

	t.Run("non-member reported as such", func(t *testing.T) {
		stranger := w.addClient("stranger-1", "stranger@shoply.app")
		_, err := uc.RemoveTeamMember("store-1", stranger.ID, owner)
		assert.ErrorIs(t, err, domain.ErrNotTeamMember)
	})

	t.Run("courier can not remove members", func(t *testing.T) {
		other := w.addClient("courier-2", "courier2@shoply.app")
		w.stores.stores["store-1"].Couriers = append(w.stores.stores["store-1"].Couriers, other)

		_, err := uc.RemoveTeamMember("store-1", manager.ID, other)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("member in both sets leaves both", func(t *testing.T) {
		dual := w.addClient("dual-1", "dual@shoply.app")
		store := w.stores.stores["store-1"]
		store.Managers = append(store.Managers, dual)
		store.Couriers = append(store.Couriers, dual)

		_, err := uc.RemoveTeamMember("store-1", dual.ID, owner)
		require.NoError(t, err)
		assert.False(t, containsClient(store.Managers, dual.ID))
		assert.False(t, containsClient(store.Couriers, dual.ID))
	})
}
