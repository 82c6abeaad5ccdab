package domain

import "time"

// TeamRole is the membership an invite grants once accepted.
type TeamRole string

const (
	TeamRoleManager TeamRole = "MANAGER"
	TeamRoleCourier TeamRole = "COURIER"
)

// InviteTTL is the fixed validity window of every invite.
const InviteTTL = 7 * 24 * time.Hour

// Invite moves PENDING -> USED or PENDING -> REVOKED; both are terminal.
// Expiry is never stored: it is derived from ExpiresAt at read time.
type Invite struct {
	ID        string
	Token     string
	Email     string // empty for open invites
	Role      TeamRole
	StoreID   string
	Store     *Store
	CreatedAt time.Time
	ExpiresAt time.Time
	IsUsed    bool
	UsedAt    *time.Time
	UsedByID  string
	UsedBy    *Client
	Revoked   bool
	RevokedAt *time.Time
	UpdatedAt time.Time
}

// Expired reports whether the invite is past its validity window.
func (i *Invite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

type InviteRelations struct {
	Store     bool
	StoreTeam bool // store with owner, managers and couriers
	UsedBy    bool
}

type InviteRepository interface {
	CreateInvite(invite *Invite) error
	GetInviteByID(id string, rel InviteRelations) (*Invite, error)
	GetInviteByToken(token string, rel InviteRelations) (*Invite, error)
	GetInvitesByStoreID(storeID string) ([]*Invite, error)
	// FindActiveInvite returns an unused, unexpired invite for the
	// (email, store) pair, or nil when there is none.
	FindActiveInvite(storeID, email string, now time.Time) (*Invite, error)
	// AcceptInvite marks the invite used and adds the client to the
	// store's manager or courier set in a single transaction. It fails
	// with ErrInviteUsed when a concurrent acceptor already committed.
	AcceptInvite(inviteID, clientID string, role TeamRole, usedAt time.Time) error
	RevokeInvite(inviteID string, revokedAt time.Time) error
}
