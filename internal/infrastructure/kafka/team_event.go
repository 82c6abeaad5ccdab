package kafka

import (
	"encoding/json"

	"github.com/shoply-app/shoply-backend/internal/domain"
)

const TeamEventsTopic = "team-events"

const (
	TeamActionJoined  = "JOINED"
	TeamActionRemoved = "REMOVED"
)

type TeamEvent struct {
	StoreID  string `json:"store_id"`
	ClientID string `json:"client_id"`
	Role     string `json:"role"`
	Action   string `json:"action"`
	InviteID string `json:"invite_id,omitempty"`
}

func PublishTeamEvent(pub domain.EventPublisher, event TeamEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return pub.Publish(TeamEventsTopic, domain.Message{Key: []byte(event.StoreID), Value: v})
}
