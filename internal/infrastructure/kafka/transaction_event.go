package kafka

import (
	"encoding/json"

	"github.com/shoply-app/shoply-backend/internal/domain"
)

const TransactionEventsTopic = "transaction-events"

type TransactionEvent struct {
	TransactionID string  `json:"transaction_id"`
	StoreID       string  `json:"store_id"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	NetAmount     float64 `json:"net_amount"`
	Currency      string  `json:"currency"`
}

func PublishTransactionEvent(pub domain.EventPublisher, event TransactionEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return pub.Publish(TransactionEventsTopic, domain.Message{Key: []byte(event.StoreID), Value: v})
}
