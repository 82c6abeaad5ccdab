package usecase

import (
	"time"

	"github.com/shoply-app/shoply-backend/internal/domain"
)

type fakeClientRepo struct {
	clients map[string]*domain.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*domain.Client{}}
}

func (r *fakeClientRepo) CreateClient(c *domain.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetClientByID(id string) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return c, nil
}

func (r *fakeClientRepo) GetClientByEmail(email string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *fakeClientRepo) UpdateClient(c *domain.Client) error {
	r.clients[c.ID] = c
	return nil
}

type fakeStoreRepo struct {
	stores map[string]*domain.Store
	apps   map[string]*domain.App
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{
		stores: map[string]*domain.Store{},
		apps:   map[string]*domain.App{},
	}
}

func (r *fakeStoreRepo) CreateStore(s *domain.Store) error {
	if s.Managers == nil {
		s.Managers = []*domain.Client{}
	}
	if s.Couriers == nil {
		s.Couriers = []*domain.Client{}
	}
	r.stores[s.ID] = s
	return nil
}

func (r *fakeStoreRepo) UpdateStore(s *domain.Store) error {
	stored, ok := r.stores[s.ID]
	if !ok {
		return domain.ErrStoreNotFound
	}
	next := *s
	next.Managers = stored.Managers
	next.Couriers = stored.Couriers
	next.Owner = stored.Owner
	r.stores[s.ID] = &next
	return nil
}

func (r *fakeStoreRepo) UpdateBankAccount(storeID string, account domain.BankAccount) error {
	s, ok := r.stores[storeID]
	if !ok {
		return domain.ErrStoreNotFound
	}
	s.BankAccount = account
	return nil
}

// GetStoreByID mirrors the real repository: member sets stay nil unless the
// relation was requested.
func (r *fakeStoreRepo) GetStoreByID(id string, rel domain.StoreRelations) (*domain.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	view := *s
	view.Owner = nil
	view.Managers = nil
	view.Couriers = nil
	view.App = nil
	if rel.Owner {
		view.Owner = s.Owner
	}
	if rel.Managers {
		view.Managers = append([]*domain.Client{}, s.Managers...)
	}
	if rel.Couriers {
		view.Couriers = append([]*domain.Client{}, s.Couriers...)
	}
	if rel.App {
		view.App = s.App
	}
	return &view, nil
}

func (r *fakeStoreRepo) GetStoresByOwnerID(ownerID string) ([]*domain.Store, error) {
	out := []*domain.Store{}
	for _, s := range r.stores {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStoreRepo) GetStoresByManagerID(clientID string) ([]*domain.Store, error) {
	out := []*domain.Store{}
	for _, s := range r.stores {
		for _, m := range s.Managers {
			if m.ID == clientID {
				out = append(out, s)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeStoreRepo) GetStoresByCourierID(clientID string) ([]*domain.Store, error) {
	out := []*domain.Store{}
	for _, s := range r.stores {
		for _, c := range s.Couriers {
			if c.ID == clientID {
				out = append(out, s)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeStoreRepo) RemoveTeamMember(storeID, clientID string, role domain.TeamRole) error {
	s, ok := r.stores[storeID]
	if !ok {
		return domain.ErrStoreNotFound
	}
	if role == domain.TeamRoleManager {
		s.Managers = withoutClient(s.Managers, clientID)
	} else {
		s.Couriers = withoutClient(s.Couriers, clientID)
	}
	return nil
}

func withoutClient(clients []*domain.Client, id string) []*domain.Client {
	out := []*domain.Client{}
	for _, c := range clients {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

func (r *fakeStoreRepo) CreateApp(app *domain.App) error {
	r.apps[app.ID] = app
	if s, ok := r.stores[app.StoreID]; ok {
		s.AppID = app.ID
		s.App = app
	}
	return nil
}

func (r *fakeStoreRepo) GetAppBySlug(slug string) (*domain.App, error) {
	for _, app := range r.apps {
		if app.Slug == slug {
			return app, nil
		}
	}
	return nil, nil
}

type fakeInviteRepo struct {
	invites map[string]*domain.Invite
	stores  *fakeStoreRepo
}

func newFakeInviteRepo(stores *fakeStoreRepo) *fakeInviteRepo {
	return &fakeInviteRepo{
		invites: map[string]*domain.Invite{},
		stores:  stores,
	}
}

func (r *fakeInviteRepo) CreateInvite(inv *domain.Invite) error {
	r.invites[inv.ID] = inv
	return nil
}

func (r *fakeInviteRepo) view(inv *domain.Invite, rel domain.InviteRelations) *domain.Invite {
	out := *inv
	out.Store = nil
	out.UsedBy = nil
	if rel.Store {
		out.Store, _ = r.stores.GetStoreByID(inv.StoreID, domain.StoreRelations{Owner: true})
	}
	if rel.StoreTeam {
		out.Store, _ = r.stores.GetStoreByID(inv.StoreID, domain.StoreRelations{
			Owner:    true,
			Managers: true,
			Couriers: true,
		})
	}
	return &out
}

func (r *fakeInviteRepo) GetInviteByID(id string, rel domain.InviteRelations) (*domain.Invite, error) {
	inv, ok := r.invites[id]
	if !ok {
		return nil, domain.ErrInviteNotFound
	}
	return r.view(inv, rel), nil
}

func (r *fakeInviteRepo) GetInviteByToken(token string, rel domain.InviteRelations) (*domain.Invite, error) {
	for _, inv := range r.invites {
		if inv.Token == token {
			return r.view(inv, rel), nil
		}
	}
	return nil, domain.ErrInviteNotFound
}

func (r *fakeInviteRepo) GetInvitesByStoreID(storeID string) ([]*domain.Invite, error) {
	out := []*domain.Invite{}
	for _, inv := range r.invites {
		if inv.StoreID == storeID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInviteRepo) FindActiveInvite(storeID, email string, now time.Time) (*domain.Invite, error) {
	for _, inv := range r.invites {
		if inv.StoreID == storeID && inv.Email == email && !inv.IsUsed && inv.ExpiresAt.After(now) {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInviteRepo) AcceptInvite(inviteID, clientID string, role domain.TeamRole, usedAt time.Time) error {
	inv, ok := r.invites[inviteID]
	if !ok {
		return domain.ErrInviteNotFound
	}
	if inv.IsUsed {
		return domain.ErrInviteUsed
	}
	inv.IsUsed = true
	inv.UsedAt = &usedAt
	inv.UsedByID = clientID
	inv.UpdatedAt = usedAt

	s := r.stores.stores[inv.StoreID]
	member := &domain.Client{ID: clientID}
	if role == domain.TeamRoleManager {
		s.Managers = append(s.Managers, member)
	} else {
		s.Couriers = append(s.Couriers, member)
	}
	return nil
}

func (r *fakeInviteRepo) RevokeInvite(inviteID string, revokedAt time.Time) error {
	inv, ok := r.invites[inviteID]
	if !ok {
		return domain.ErrInviteNotFound
	}
	inv.Revoked = true
	inv.RevokedAt = &revokedAt
	inv.UpdatedAt = revokedAt
	return nil
}

type fakeTransactionRepo struct {
	txs    map[string]*domain.Transaction
	stores *fakeStoreRepo
}

func newFakeTransactionRepo(stores *fakeStoreRepo) *fakeTransactionRepo {
	return &fakeTransactionRepo{
		txs:    map[string]*domain.Transaction{},
		stores: stores,
	}
}

func (r *fakeTransactionRepo) CreateTransaction(tx *domain.Transaction) error {
	r.txs[tx.ID] = tx
	return nil
}

func (r *fakeTransactionRepo) GetTransactionByID(id string, rel domain.TransactionRelations) (*domain.Transaction, error) {
	tx, ok := r.txs[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	out := *tx
	out.Store = nil
	if rel.Store {
		out.Store, _ = r.stores.GetStoreByID(tx.StoreID, domain.StoreRelations{Owner: true})
	}
	if rel.StoreTeam {
		out.Store, _ = r.stores.GetStoreByID(tx.StoreID, domain.StoreRelations{
			Owner:    true,
			Managers: true,
			Couriers: true,
		})
	}
	return &out, nil
}

func (r *fakeTransactionRepo) GetTransactionsByStoreID(storeID string) ([]*domain.Transaction, error) {
	out := []*domain.Transaction{}
	for _, tx := range r.txs {
		if tx.StoreID == storeID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) UpdateTransactionStatus(id string, status domain.TransactionStatus, processedAt *time.Time) error {
	tx, ok := r.txs[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	tx.Status = status
	if processedAt != nil {
		tx.ProcessedAt = processedAt
	}
	return nil
}

type fakeProductRepo struct {
	products map[string]*domain.Product
	stores   *fakeStoreRepo
}

func newFakeProductRepo(stores *fakeStoreRepo) *fakeProductRepo {
	return &fakeProductRepo{
		products: map[string]*domain.Product{},
		stores:   stores,
	}
}

func (r *fakeProductRepo) CreateProduct(p *domain.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetProductByID(id string, rel domain.ProductRelations) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	out := *p
	out.Store = nil
	if !rel.Sizes {
		out.SizeInventory = nil
	}
	if rel.Store {
		out.Store, _ = r.stores.GetStoreByID(p.StoreID, domain.StoreRelations{Owner: true})
	}
	if rel.StoreTeam {
		out.Store, _ = r.stores.GetStoreByID(p.StoreID, domain.StoreRelations{
			Owner:    true,
			Managers: true,
			Couriers: true,
		})
	}
	return &out, nil
}

func (r *fakeProductRepo) GetProductsByStoreID(storeID string) ([]*domain.Product, error) {
	out := []*domain.Product{}
	for _, p := range r.products {
		if p.StoreID == storeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) SaveProduct(p *domain.Product, replaceSizes bool) error {
	stored, ok := r.products[p.ID]
	if !ok {
		return domain.ErrProductNotFound
	}
	next := *p
	next.Store = nil
	if !replaceSizes {
		next.SizeInventory = stored.SizeInventory
	}
	r.products[p.ID] = &next
	return nil
}

func (r *fakeProductRepo) ReplaceSizeInventory(productID string, sizes []domain.ProductSize, amount int) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.SizeInventory = sizes
	p.Amount = amount
	return nil
}

func (r *fakeProductRepo) DeleteProduct(id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

type capturedEvent struct {
	topic string
	msg   domain.Message
}

type capturePublisher struct {
	events []capturedEvent
}

func (p *capturePublisher) Publish(topic string, msgs ...domain.Message) error {
	for _, m := range msgs {
		p.events = append(p.events, capturedEvent{topic: topic, msg: m})
	}
	return nil
}

// testWorld wires the fakes together the way main wires the real stack.
type testWorld struct {
	clients   *fakeClientRepo
	stores    *fakeStoreRepo
	invites   *fakeInviteRepo
	txs       *fakeTransactionRepo
	products  *fakeProductRepo
	access    *StoreAccessPolicy
	publisher *capturePublisher
}

func newTestWorld() *testWorld {
	stores := newFakeStoreRepo()
	return &testWorld{
		clients:   newFakeClientRepo(),
		stores:    stores,
		invites:   newFakeInviteRepo(stores),
		txs:       newFakeTransactionRepo(stores),
		products:  newFakeProductRepo(stores),
		access:    NewStoreAccessPolicy(stores),
		publisher: &capturePublisher{},
	}
}

func (w *testWorld) addClient(id, email string) *domain.Client {
	c := &domain.Client{ID: id, Email: email, Name: id, Role: domain.RoleUser}
	w.clients.clients[id] = c
	return c
}

func (w *testWorld) addStore(id string, owner *domain.Client, managers, couriers []*domain.Client) *domain.Store {
	if managers == nil {
		managers = []*domain.Client{}
	}
	if couriers == nil {
		couriers = []*domain.Client{}
	}
	s := &domain.Store{
		ID:       id,
		Name:     id,
		IsActive: true,
		OwnerID:  owner.ID,
		Owner:    owner,
		Managers: managers,
		Couriers: couriers,
	}
	w.stores.stores[id] = s
	return s
}

func (w *testWorld) inviteUsecase() *DefaultInviteUsecase {
	return NewDefaultInviteUsecase(w.invites, w.stores, w.clients, w.access, w.publisher, nil)
}

func (w *testWorld) transactionUsecase() *DefaultTransactionUsecase {
	return NewDefaultTransactionUsecase(w.txs, w.stores, w.access, w.publisher, nil)
}

func (w *testWorld) productUsecase() *DefaultProductUsecase {
	return NewDefaultProductUsecase(w.products, w.access, nil)
}

func (w *testWorld) storeUsecase() *DefaultStoreUsecase {
	return NewDefaultStoreUsecase(w.stores, w.access)
}
