package domain

import "time"

// StoreRole is a membership level granting operation rights on a store.
// Owner access is implicit via Store.OwnerID and supersedes the member sets.
type StoreRole string

const (
	StoreRoleOwner   StoreRole = "owner"
	StoreRoleManager StoreRole = "manager"
	StoreRoleCourier StoreRole = "courier"
)

type Store struct {
	ID             string
	Name           string
	Description    string
	ContactEmail   string
	ContactPhone   string
	ContactAddress string
	ContactCity    string
	Website        string
	IsActive       bool

	OwnerID string
	Owner   *Client
	// Managers and Couriers are nil when the relation was not loaded.
	Managers []*Client
	Couriers []*Client

	AppID string
	App   *App

	BankAccount BankAccount

	CreatedAt time.Time
	UpdatedAt time.Time
}

type BankAccount struct {
	AccountNumber string
	AccountHolder string
	BankName      string
	Iban          string
	SwiftCode     string
}

type App struct {
	ID              string
	Name            string
	Description     string
	Slug            string
	Version         string
	IconURL         string
	SplashScreenURL string
	PrimaryColor    string
	SecondaryColor  string
	TargetPlatforms []string
	DefaultLanguage string
	Currency        string
	Keywords        []string
	Screenshots     []string
	StoreID         string
	AppURL          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StoreRelations tells the repository which associations to materialize.
type StoreRelations struct {
	Owner    bool
	Managers bool
	Couriers bool
	App      bool
}

type StoreRepository interface {
	CreateStore(store *Store) error
	UpdateStore(store *Store) error
	UpdateBankAccount(storeID string, account BankAccount) error
	GetStoreByID(id string, rel StoreRelations) (*Store, error)
	GetStoresByOwnerID(ownerID string) ([]*Store, error)
	GetStoresByManagerID(clientID string) ([]*Store, error)
	GetStoresByCourierID(clientID string) ([]*Store, error)
	RemoveTeamMember(storeID, clientID string, role TeamRole) error
	CreateApp(app *App) error
	GetAppBySlug(slug string) (*App, error)
}
