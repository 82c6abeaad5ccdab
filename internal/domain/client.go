package domain

import "time"

type ClientRole string

const (
	RoleAdmin ClientRole = "ADMIN"
	RoleUser  ClientRole = "USER"
)

type SubscriptionType string

const (
	SubscriptionBasic     SubscriptionType = "BASIC"
	SubscriptionAdvanced  SubscriptionType = "ADVANCED"
	SubscriptionPro       SubscriptionType = "PRO"
	SubscriptionUnlimited SubscriptionType = "UNLIMITED"
)

type Client struct {
	ID            string
	Email         string
	Password      string // bcrypt hash, never exposed outside the auth flow
	Name          string
	Phone         string
	EmailVerified bool
	PhoneVerified bool
	Role          ClientRole

	SubscriptionType      SubscriptionType
	SubscriptionActive    bool
	SubscriptionStartDate *time.Time
	SubscriptionEndDate   *time.Time

	PaymentCardNumber      string
	PaymentCardHolder      string
	PaymentCardExpiryMonth int
	PaymentCardExpiryYear  int
	PaymentCardCvv         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ClientRepository interface {
	CreateClient(client *Client) error
	GetClientByID(id string) (*Client, error)
	GetClientByEmail(email string) (*Client, error)
	UpdateClient(client *Client) error
}
