package domain

import "time"

// TransactionEventKind names what happened to a transaction.
type TransactionEventKind string

const (
	TransactionCreated TransactionEventKind = "created"
	TransactionUpdated TransactionEventKind = "updated"
	TransactionDeleted TransactionEventKind = "deleted"
)

// TransactionEvent announces a committed change to a transaction.
type TransactionEvent struct {
	Kind          TransactionEventKind
	TransactionID string
	UserID        string
	OccurredAt    time.Time
}
