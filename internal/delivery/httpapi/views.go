package httpapi

import (
	"time"

	"github.com/shoply-app/shoply-backend/internal/domain"
)

type clientView struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	Name                  string     `json:"name,omitempty"`
	Phone                 string     `json:"phone,omitempty"`
	Role                  string     `json:"role"`
	SubscriptionType      string     `json:"subscriptionType"`
	SubscriptionActive    bool       `json:"subscriptionActive"`
	SubscriptionStartDate *time.Time `json:"subscriptionStartDate,omitempty"`
	SubscriptionEndDate   *time.Time `json:"subscriptionEndDate,omitempty"`
	PaymentCardNumber     string     `json:"paymentCardNumber,omitempty"`
	PaymentCardHolder     string     `json:"paymentCardHolder,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
}

func toClientView(c *domain.Client) *clientView {
	if c == nil {
		return nil
	}
	return &clientView{
		ID:                    c.ID,
		Email:                 c.Email,
		Name:                  c.Name,
		Phone:                 c.Phone,
		Role:                  string(c.Role),
		SubscriptionType:      string(c.SubscriptionType),
		SubscriptionActive:    c.SubscriptionActive,
		SubscriptionStartDate: c.SubscriptionStartDate,
		SubscriptionEndDate:   c.SubscriptionEndDate,
		PaymentCardNumber:     maskCardNumber(c.PaymentCardNumber),
		PaymentCardHolder:     c.PaymentCardHolder,
		CreatedAt:             c.CreatedAt,
	}
}

// maskCardNumber keeps the last four digits; the full PAN never leaves the
// backend.
func maskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "**** " + number[len(number)-4:]
}

func toClientViews(clients []*domain.Client) []*clientView {
	if clients == nil {
		return nil
	}
	out := make([]*clientView, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientView(c))
	}
	return out
}

type storeView struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description,omitempty"`
	ContactEmail   string        `json:"contactEmail,omitempty"`
	ContactPhone   string        `json:"contactPhone,omitempty"`
	ContactAddress string        `json:"contactAddress,omitempty"`
	ContactCity    string        `json:"contactCity,omitempty"`
	Website        string        `json:"website,omitempty"`
	IsActive       bool          `json:"isActive"`
	OwnerID        string        `json:"ownerId"`
	Owner          *clientView   `json:"owner,omitempty"`
	Managers       []*clientView `json:"managers,omitempty"`
	Couriers       []*clientView `json:"couriers,omitempty"`
	AppID          string        `json:"appId,omitempty"`
	App            *appView      `json:"app,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

func toStoreView(s *domain.Store) *storeView {
	if s == nil {
		return nil
	}
	return &storeView{
		ID:             s.ID,
		Name:           s.Name,
		Description:    s.Description,
		ContactEmail:   s.ContactEmail,
		ContactPhone:   s.ContactPhone,
		ContactAddress: s.ContactAddress,
		ContactCity:    s.ContactCity,
		Website:        s.Website,
		IsActive:       s.IsActive,
		OwnerID:        s.OwnerID,
		Owner:          toClientView(s.Owner),
		Managers:       toClientViews(s.Managers),
		Couriers:       toClientViews(s.Couriers),
		AppID:          s.AppID,
		App:            toAppView(s.App),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toStoreViews(stores []*domain.Store) []*storeView {
	out := make([]*storeView, 0, len(stores))
	for _, s := range stores {
		out = append(out, toStoreView(s))
	}
	return out
}

type appView struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Slug            string    `json:"slug"`
	Version         string    `json:"version"`
	IconURL         string    `json:"iconUrl,omitempty"`
	SplashScreenURL string    `json:"splashScreenUrl,omitempty"`
	PrimaryColor    string    `json:"primaryColor,omitempty"`
	SecondaryColor  string    `json:"secondaryColor,omitempty"`
	TargetPlatforms []string  `json:"targetPlatforms,omitempty"`
	DefaultLanguage string    `json:"defaultLanguage,omitempty"`
	Currency        string    `json:"currency,omitempty"`
	Keywords        []string  `json:"keywords,omitempty"`
	Screenshots     []string  `json:"screenshots,omitempty"`
	StoreID         string    `json:"storeId"`
	AppURL          string    `json:"appUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toAppView(a *domain.App) *appView {
	if a == nil {
		return nil
	}
	return &appView{
		ID:              a.ID,
		Name:            a.Name,
		Description:     a.Description,
		Slug:            a.Slug,
		Version:         a.Version,
		IconURL:         a.IconURL,
		SplashScreenURL: a.SplashScreenURL,
		PrimaryColor:    a.PrimaryColor,
		SecondaryColor:  a.SecondaryColor,
		TargetPlatforms: a.TargetPlatforms,
		DefaultLanguage: a.DefaultLanguage,
		Currency:        a.Currency,
		Keywords:        a.Keywords,
		Screenshots:     a.Screenshots,
		StoreID:         a.StoreID,
		AppURL:          a.AppURL,
		CreatedAt:       a.CreatedAt,
	}
}

type bankAccountView struct {
	AccountNumber string `json:"accountNumber,omitempty"`
	AccountHolder string `json:"accountHolder,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	Iban          string `json:"iban,omitempty"`
	SwiftCode     string `json:"swiftCode,omitempty"`
}

func toBankAccountView(b domain.BankAccount) *bankAccountView {
	return &bankAccountView{
		AccountNumber: b.AccountNumber,
		AccountHolder: b.AccountHolder,
		BankName:      b.BankName,
		Iban:          b.Iban,
		SwiftCode:     b.SwiftCode,
	}
}

type inviteView struct {
	ID        string      `json:"id"`
	Token     string      `json:"token"`
	Email     string      `json:"email,omitempty"`
	Role      string      `json:"role"`
	Status    string      `json:"status"`
	StoreID   string      `json:"storeId"`
	Store     *storeView  `json:"store,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
	UsedAt    *time.Time  `json:"usedAt,omitempty"`
	UsedBy    *clientView `json:"usedBy,omitempty"`
	RevokedAt *time.Time  `json:"revokedAt,omitempty"`
}

func toInviteView(inv *domain.Invite) *inviteView {
	if inv == nil {
		return nil
	}
	return &inviteView{
		ID:        inv.ID,
		Token:     inv.Token,
		Email:     inv.Email,
		Role:      string(inv.Role),
		Status:    inviteStatus(inv, time.Now()),
		StoreID:   inv.StoreID,
		Store:     toStoreView(inv.Store),
		CreatedAt: inv.CreatedAt,
		ExpiresAt: inv.ExpiresAt,
		UsedAt:    inv.UsedAt,
		UsedBy:    toClientView(inv.UsedBy),
		RevokedAt: inv.RevokedAt,
	}
}

// inviteStatus derives the reported state: USED and REVOKED are terminal,
// EXPIRED only applies to pending invites past their window.
func inviteStatus(inv *domain.Invite, now time.Time) string {
	switch {
	case inv.IsUsed:
		return "USED"
	case inv.Revoked:
		return "REVOKED"
	case inv.Expired(now):
		return "EXPIRED"
	}
	return "PENDING"
}

func toInviteViews(invites []*domain.Invite) []*inviteView {
	out := make([]*inviteView, 0, len(invites))
	for _, inv := range invites {
		out = append(out, toInviteView(inv))
	}
	return out
}

type productSizeView struct {
	ID       string `json:"id"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

type productView struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	Price           float64           `json:"price"`
	Category        string            `json:"category,omitempty"`
	Amount          int               `json:"amount"`
	SizeInventory   []productSizeView `json:"sizeInventory"`
	IsPreOrder      bool              `json:"isPreOrder"`
	IsDiscount      bool              `json:"isDiscount"`
	DiscountPercent int               `json:"discountPercent,omitempty"`
	ImgUrls         []string          `json:"imgUrls,omitempty"`
	StoreID         string            `json:"storeId"`
	OrderCount      int               `json:"orderCount"`
	IsActive        bool              `json:"isActive"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func toProductView(p *domain.Product) *productView {
	if p == nil {
		return nil
	}
	sizes := make([]productSizeView, 0, len(p.SizeInventory))
	for _, s := range p.SizeInventory {
		sizes = append(sizes, productSizeView{ID: s.ID, Size: s.Size, Quantity: s.Quantity})
	}
	return &productView{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Category:        p.Category,
		Amount:          p.Amount,
		SizeInventory:   sizes,
		IsPreOrder:      p.IsPreOrder,
		IsDiscount:      p.IsDiscount,
		DiscountPercent: p.DiscountPercent,
		ImgUrls:         p.ImgUrls,
		StoreID:         p.StoreID,
		OrderCount:      p.OrderCount,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toProductViews(products []*domain.Product) []*productView {
	out := make([]*productView, 0, len(products))
	for _, p := range products {
		out = append(out, toProductView(p))
	}
	return out
}

type transactionView struct {
	ID               string     `json:"id"`
	StoreID          string     `json:"storeId"`
	Amount           float64    `json:"amount"`
	Type             string     `json:"type"`
	Status           string     `json:"status"`
	Description      string     `json:"description,omitempty"`
	ExternalID       string     `json:"externalId,omitempty"`
	PaymentMethod    string     `json:"paymentMethod,omitempty"`
	Currency         string     `json:"currency"`
	ProcessingFee    *float64   `json:"processingFee,omitempty"`
	NetAmount        float64    `json:"netAmount"`
	ReferenceOrderID string     `json:"referenceOrderId,omitempty"`
	Metadata         string     `json:"metadata,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	ProcessedAt      *time.Time `json:"processedAt,omitempty"`
}

func toTransactionView(tx *domain.Transaction) *transactionView {
	if tx == nil {
		return nil
	}
	return &transactionView{
		ID:               tx.ID,
		StoreID:          tx.StoreID,
		Amount:           tx.Amount,
		Type:             string(tx.Type),
		Status:           string(tx.Status),
		Description:      tx.Description,
		ExternalID:       tx.ExternalID,
		PaymentMethod:    tx.PaymentMethod,
		Currency:         tx.Currency,
		ProcessingFee:    tx.ProcessingFee,
		NetAmount:        tx.NetAmount,
		ReferenceOrderID: tx.ReferenceOrderID,
		Metadata:         tx.Metadata,
		CreatedAt:        tx.CreatedAt,
		UpdatedAt:        tx.UpdatedAt,
		ProcessedAt:      tx.ProcessedAt,
	}
}

func toTransactionViews(txs []*domain.Transaction) []*transactionView {
	out := make([]*transactionView, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionView(tx))
	}
	return out
}
