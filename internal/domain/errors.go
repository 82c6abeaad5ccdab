package domain

import "errors"

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrAccessDenied    = errors.New("access denied to this store")
	ErrInvalidInput    = errors.New("invalid input")

	ErrClientNotFound      = errors.New("client not found")
	ErrStoreNotFound       = errors.New("store not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrInviteNotFound      = errors.New("invite not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInviteExpired      = errors.New("invite has expired")
	ErrInviteUsed         = errors.New("invite has already been used")
	ErrInviteRevoked      = errors.New("invite has been revoked")
	ErrActiveInviteExists = errors.New("active invite already exists for this email")
	ErrAlreadyMember      = errors.New("user is already a member of this store")
	ErrNotTeamMember      = errors.New("user is not a member of this store")
	ErrOwnerRemoval       = errors.New("cannot remove the store owner")

	ErrStoreHasApp = errors.New("store already has an app")
	ErrSlugTaken   = errors.New("app with this slug already exists")

	ErrInvalidTransactionStatus = errors.New("unknown transaction status")
	ErrInvalidTransactionType   = errors.New("unknown transaction type")
)
