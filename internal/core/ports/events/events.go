package events

import (
	"context"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
)

// TransactionEventPublisher announces transaction changes to interested consumers.
type TransactionEventPublisher interface {
	PublishTransactionEvent(ctx context.Context, event domain.TransactionEvent) error
}
