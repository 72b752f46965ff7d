package ws

import (
	"encoding/json"
	"time"

	"skill-trade/internal/domain/message"
)

type MessageReceivedEvent struct {
	Type         string `json:"type"`
	MessageID    int64  `json:"message_id"`
	FromUsername string `json:"from_username"`
	CreatedAt    string `json:"created_at"`
}

// Notifier adapts the hub to the message send path. A nil hub means events
// go nowhere, which is fine: polling stays the delivery contract.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyMessageReceived(toUserID int64, fromUsername string, msg message.Message) {
	if n == nil || n.hub == nil {
		return
	}

	evt := MessageReceivedEvent{
		Type:         "message_received",
		MessageID:    msg.ID,
		FromUsername: fromUsername,
		CreatedAt:    msg.CreatedAt.UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Deliver(toUserID, b)
}
