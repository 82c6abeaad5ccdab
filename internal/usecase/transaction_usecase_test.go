package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/kafka"
	transactiondto "github.com/shoply-app/shoply-backend/internal/usecase/dto/transaction"
)

func TestCreateTransaction(t *testing.T) {
	w := newTestWorld()
	owner := w.addClient("owner-1", "owner@shoply.app")
	manager := w.addClient("manager-1", "manager@shoply.app")
	courier := w.addClient("courier-1", "courier@shoply.app")
	w.addStore("store-1", owner, []*domain.Client{manager}, []*domain.Client{courier})
	uc := w.transactionUsecase()

	t.Run("fee is deducted from the net amount", func(t *testing.T) {
		fee := 12.5
		tx, err := uc.CreateTransaction(&transactiondto.CreateTransactionInput{
			StoreID:       "store-1",
			Amount:        100,
			Type:          domain.TransactionSale,
			ProcessingFee: &fee,
			Currency:      "EUR",
		}, manager)
		require.NoError(t, err)
		assert.Equal(t, 87.5, tx.NetAmount)
		assert.Equal(t, "EUR", tx.Currency)
		assert.Equal(t, domain.TransactionPending, tx.Status)
		assert.Nil(t, tx.ProcessedAt)

		require.Len(t, w.publisher.events, 1)
		assert.Equal(t, kafka.TransactionEventsTopic, w.publisher.events[0].topic)
	})

	t.Run("no fee means net equals gross", func(t *testing.T) {
		tx, err := uc.CreateTransaction(&transactiondto.CreateTransactionInput{
			StoreID: "store-1",
			Amount:  250,
			Type:    domain.TransactionPayout,
		}, owner)
		require.NoError(t, err)
		assert.Equal(t, 250.0, tx.NetAmount)
		assert.Equal(t, "UAH", tx.Currency)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := uc.CreateTransaction(&transactiondto.CreateTransactionInput{
			StoreID: "store-1",
			Amount:  10,
			Type:    domain.TransactionType("TRANSFER"),
		}, owner)
		assert.ErrorIs(t, err, domain.ErrInvalidTransactionType)
	})

	t.Run("courier denied", func(t *testing.T) {
		_, err := uc.CreateTransaction(&transactiondto.CreateTransactionInput{
			StoreID: "store-1",
			Amount:  10,
			Type:    domain.TransactionSale,
		}, courier)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})
}

func TestUpdateTransactionStatus(t *testing.T) {
	w := newTestWorld()
	owner := w.addClient("owner-1", "owner@shoply.app")
	courier := w.addClient("courier-1", "courier@shoply.app")
	w.addStore("store-1", owner, nil, []*domain.Client{courier})
	uc := w.transactionUsecase()

	create := func(t *testing.T) *domain.Transaction {
		t.Helper()
		tx, err := uc.CreateTransaction(&transactiondto.CreateTransactionInput{
			StoreID: "store-1",
			Amount:  100,
			Type:    domain.TransactionSale,
		}, owner)
		require.NoError(t, err)
		return tx
	}

	t.Run("completed stamps processedAt", func(t *testing.T) {
		tx := create(t)
		updated, err := uc.UpdateTransactionStatus(tx.ID, domain.TransactionCompleted, owner)
		require.NoError(t, err)
		assert.Equal(t, domain.TransactionCompleted, updated.Status)
		require.NotNil(t, updated.ProcessedAt)
		assert.NotNil(t, w.txs.txs[tx.ID].ProcessedAt)
	})

	t.Run("failed stamps processedAt", func(t *testing.T) {
		tx := create(t)
		updated, err := uc.UpdateTransactionStatus(tx.ID, domain.TransactionFailed, owner)
		require.NoError(t, err)
		require.NotNil(t, updated.ProcessedAt)
	})

	t.Run("processing leaves processedAt empty", func(t *testing.T) {
		tx := create(t)
		updated, err := uc.UpdateTransactionStatus(tx.ID, domain.TransactionProcessing, owner)
		require.NoError(t, err)
		assert.Nil(t, updated.ProcessedAt)
	})

	t.Run("any valid transition is allowed", func(t *testing.T) {
		tx := create(t)
		_, err := uc.UpdateTransactionStatus(tx.ID, domain.TransactionCompleted, owner)
		require.NoError(t, err)

		updated, err := uc.UpdateTransactionStatus(tx.ID, domain.TransactionDisputed, owner)
		require.NoError(t, err)
		assert.Equal(t, domain.TransactionDisputed, updated.Status)
		// The earlier processing timestamp survives non-processed statuses.
		assert.NotNil(t, w.txs.txs[tx.ID].ProcessedAt)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		tx := create(t)
		_, err := uc.UpdateTransactionStatus(tx.ID, domain.TransactionStatus("DONE"), owner)
		assert.ErrorIs(t, err, domain.ErrInvalidTransactionStatus)
	})

	t.Run("courier denied", func(t *testing.T) {
		tx := create(t)
		_, err := uc.UpdateTransactionStatus(tx.ID, domain.TransactionCompleted, courier)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("missing transaction", func(t *testing.T) {
		_, err := uc.UpdateTransactionStatus("no-such-tx", domain.TransactionCompleted, owner)
		assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
	})
}

func TestBankAccount(t *testing.T) {
	w := newTestWorld()
	owner := w.addClient("owner-1", "owner@shoply.app")
	manager := w.addClient("manager-1", "manager@shoply.app")
	w.addStore("store-1", owner, []*domain.Client{manager}, nil)
	uc := w.transactionUsecase()

	t.Run("owner updates payout details", func(t *testing.T) {
		store, err := uc.UpdateBankAccount("store-1", &transactiondto.UpdateBankAccountInput{
			AccountNumber: "26001234567890",
			AccountHolder: "Shoply LLC",
			BankName:      "PrivatBank",
			Iban:          "UA903052992990004149123456789",
			SwiftCode:     "PBANUA2X",
		}, owner)
		require.NoError(t, err)
		assert.Equal(t, "PrivatBank", store.BankAccount.BankName)
		assert.Equal(t, "PrivatBank", w.stores.stores["store-1"].BankAccount.BankName)
	})

	t.Run("manager can not update payout details", func(t *testing.T) {
		_, err := uc.UpdateBankAccount("store-1", &transactiondto.UpdateBankAccountInput{}, manager)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("manager can read payout details", func(t *testing.T) {
		store, err := uc.GetStoreBankAccount("store-1", manager)
		require.NoError(t, err)
		assert.Equal(t, "PBANUA2X", store.BankAccount.SwiftCode)
	})
}
