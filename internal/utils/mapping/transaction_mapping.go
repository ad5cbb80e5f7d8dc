package mapping

import (
	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	"github.com/SscSPs/money_tracker_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:            d.ID,
		Title:         d.Title,
		Value:         d.Value,
		Day:           d.Day,
		Type:          int16(d.Type),
		CategoryID:    d.CategoryID,
		CategoryTitle: d.CategoryTitle,
		UserID:        d.UserID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:            m.ID,
		Title:         m.Title,
		Value:         m.Value,
		Day:           m.Day,
		Type:          domain.TransactionType(m.Type),
		CategoryID:    m.CategoryID,
		CategoryTitle: m.CategoryTitle,
		UserID:        m.UserID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
