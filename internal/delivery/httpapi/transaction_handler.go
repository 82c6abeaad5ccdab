package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shoply-app/shoply-backend/internal/delivery/httpapi/middleware"
	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/usecase"
	transactiondto "github.com/shoply-app/shoply-backend/internal/usecase/dto/transaction"
)

type TransactionHandler struct {
	transactions usecase.TransactionUsecase
	log          *zap.Logger
}

func NewTransactionHandler(transactions usecase.TransactionUsecase, log *zap.Logger) *TransactionHandler {
	return &TransactionHandler{transactions: transactions, log: log}
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StoreID          string   `json:"storeId"`
		Amount           float64  `json:"amount"`
		Type             string   `json:"type"`
		Description      string   `json:"description"`
		ExternalID       string   `json:"externalId"`
		PaymentMethod    string   `json:"paymentMethod"`
		Currency         string   `json:"currency"`
		ProcessingFee    *float64 `json:"processingFee"`
		ReferenceOrderID string   `json:"referenceOrderId"`
		Metadata         string   `json:"metadata"`
	}
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	actor := middleware.ClientFromContext(r.Context())
	tx, err := h.transactions.CreateTransaction(&transactiondto.CreateTransactionInput{
		StoreID:          req.StoreID,
		Amount:           req.Amount,
		Type:             domain.TransactionType(req.Type),
		Description:      req.Description,
		ExternalID:       req.ExternalID,
		PaymentMethod:    req.PaymentMethod,
		Currency:         req.Currency,
		ProcessingFee:    req.ProcessingFee,
		ReferenceOrderID: req.ReferenceOrderID,
		Metadata:         req.Metadata,
	}, actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("transaction created",
		zap.String("transaction_id", tx.ID),
		zap.String("store_id", tx.StoreID),
		zap.String("type", string(tx.Type)),
	)
	writeJSON(w, http.StatusCreated, toTransactionView(tx))
}

func (h *TransactionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	actor := middleware.ClientFromContext(r.Context())
	tx, err := h.transactions.UpdateTransactionStatus(
		chi.URLParam(r, "transactionID"),
		domain.TransactionStatus(req.Status),
		actor,
	)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("transaction status updated",
		zap.String("transaction_id", tx.ID),
		zap.String("status", string(tx.Status)),
	)
	writeJSON(w, http.StatusOK, toTransactionView(tx))
}

func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ClientFromContext(r.Context())

	tx, err := h.transactions.GetTransaction(chi.URLParam(r, "transactionID"), actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionView(tx))
}

func (h *TransactionHandler) StoreTransactions(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ClientFromContext(r.Context())

	txs, err := h.transactions.GetStoreTransactions(chi.URLParam(r, "storeID"), actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionViews(txs))
}

func (h *TransactionHandler) UpdateBankAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccountNumber string `json:"accountNumber"`
		AccountHolder string `json:"accountHolder"`
		BankName      string `json:"bankName"`
		Iban          string `json:"iban"`
		SwiftCode     string `json:"swiftCode"`
	}
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	actor := middleware.ClientFromContext(r.Context())
	store, err := h.transactions.UpdateBankAccount(chi.URLParam(r, "storeID"), &transactiondto.UpdateBankAccountInput{
		AccountNumber: req.AccountNumber,
		AccountHolder: req.AccountHolder,
		BankName:      req.BankName,
		Iban:          req.Iban,
		SwiftCode:     req.SwiftCode,
	}, actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("bank account updated", zap.String("store_id", store.ID))
	writeJSON(w, http.StatusOK, toBankAccountView(store.BankAccount))
}

func (h *TransactionHandler) GetBankAccount(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ClientFromContext(r.Context())

	store, err := h.transactions.GetStoreBankAccount(chi.URLParam(r, "storeID"), actor)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBankAccountView(store.BankAccount))
}
