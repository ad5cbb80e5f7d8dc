package events

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
)

// TransactionChangedMessage is the JSON body published for every transaction change.
// Consumers fetch the current row by id, so only identifiers travel on the wire.
type TransactionChangedMessage struct {
	Event         string    `json:"event"`
	TransactionID string    `json:"transactionId"`
	UserID        string    `json:"userId"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewTransactionChangedMessage builds the message for event.
func NewTransactionChangedMessage(event domain.TransactionEvent) *TransactionChangedMessage {
	ts := event.OccurredAt
	if ts.IsZero() {
		ts = time.Now()
	}
	return &TransactionChangedMessage{
		Event:         string(event.Kind),
		TransactionID: event.TransactionID,
		UserID:        event.UserID,
		Timestamp:     ts.UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionChangedMessageFromJSON creates a message from JSON bytes
func TransactionChangedMessageFromJSON(data []byte) (*TransactionChangedMessage, error) {
	var msg TransactionChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
