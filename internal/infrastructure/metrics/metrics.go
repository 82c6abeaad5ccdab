package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StoreMetrics holds the counters for store-scoped activity.
type StoreMetrics struct {
	InvitesCreatedTotal     prometheus.CounterVec
	InvitesAcceptedTotal    prometheus.CounterVec
	InvitesRevokedTotal     prometheus.CounterVec
	TeamMembersRemovedTotal prometheus.CounterVec

	TransactionsCreatedTotal      prometheus.CounterVec
	TransactionAmountTotal        prometheus.CounterVec
	TransactionStatusChangesTotal prometheus.CounterVec

	ProductsCreatedTotal prometheus.CounterVec
	ProductsDeletedTotal prometheus.CounterVec
}

func NewStoreMetrics() *StoreMetrics {
	return &StoreMetrics{
		InvitesCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "invites_created_total",
				Help: "Total invites created",
			},
			[]string{"store_id", "role"},
		),

		InvitesAcceptedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "invites_accepted_total",
				Help: "Total invites accepted",
			},
			[]string{"store_id", "role"},
		),

		InvitesRevokedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "invites_revoked_total",
				Help: "Total invites revoked",
			},
			[]string{"store_id"},
		),

		TeamMembersRemovedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "team_members_removed_total",
				Help: "Total team members removed from stores",
			},
			[]string{"store_id", "role"},
		),

		TransactionsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total transactions created",
			},
			[]string{"store_id", "type", "currency"},
		),

		TransactionAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_amount_total",
				Help: "Total transaction amount created",
			},
			[]string{"store_id", "currency"},
		),

		TransactionStatusChangesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_status_changes_total",
				Help: "Total transaction status updates",
			},
			[]string{"store_id", "status"},
		),

		ProductsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "products_created_total",
				Help: "Total products created",
			},
			[]string{"store_id"},
		),

		ProductsDeletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "products_deleted_total",
				Help: "Total products deleted",
			},
			[]string{"store_id"},
		),
	}
}

func (m *StoreMetrics) RecordInviteCreated(storeID, role string) {
	m.InvitesCreatedTotal.WithLabelValues(storeID, role).Inc()
}

func (m *StoreMetrics) RecordInviteAccepted(storeID, role string) {
	m.InvitesAcceptedTotal.WithLabelValues(storeID, role).Inc()
}

func (m *StoreMetrics) RecordInviteRevoked(storeID string) {
	m.InvitesRevokedTotal.WithLabelValues(storeID).Inc()
}

func (m *StoreMetrics) RecordTeamMemberRemoved(storeID, role string) {
	m.TeamMembersRemovedTotal.WithLabelValues(storeID, role).Inc()
}

func (m *StoreMetrics) RecordTransactionCreated(storeID, txType, currency string, amount float64) {
	m.TransactionsCreatedTotal.WithLabelValues(storeID, txType, currency).Inc()
	m.TransactionAmountTotal.WithLabelValues(storeID, currency).Add(amount)
}

func (m *StoreMetrics) RecordTransactionStatus(storeID, status string) {
	m.TransactionStatusChangesTotal.WithLabelValues(storeID, status).Inc()
}

func (m *StoreMetrics) RecordProductCreated(storeID string) {
	m.ProductsCreatedTotal.WithLabelValues(storeID).Inc()
}

func (m *StoreMetrics) RecordProductDeleted(storeID string) {
	m.ProductsDeletedTotal.WithLabelValues(storeID).Inc()
}
