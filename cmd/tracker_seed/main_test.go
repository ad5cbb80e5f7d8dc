package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadSeedDocument(t *testing.T) {
	path := writeSeed(t, `{
		"categories": [{"id": 1, "title": "Food"}, {"id": 2, "title": "Salary"}],
		"transactions": [
			{"title": "Lunch", "value": 12.5, "day": "2024-06-10", "type": 0, "userId": "u1", "category": 1},
			{"title": "Pay", "value": "3000", "type": 1, "userId": "u1", "category": null}
		]
	}`)

	doc, err := readSeedDocument(path)

	require.NoError(t, err)
	require.Len(t, doc.Categories, 2)
	assert.Equal(t, "Salary", doc.Categories[1].Title)
	require.Len(t, doc.Transactions, 2)
	assert.True(t, decimal.RequireFromString("12.5").Equal(doc.Transactions[0].Value))
	require.NotNil(t, doc.Transactions[0].Day)
	assert.Equal(t, "2024-06-10", *doc.Transactions[0].Day)
	assert.Equal(t, int64(1), *doc.Transactions[0].Category)
	assert.Nil(t, doc.Transactions[1].Day)
	assert.Nil(t, doc.Transactions[1].Category)
}

func TestReadSeedDocument_Errors(t *testing.T) {
	_, err := readSeedDocument(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "open seed file")

	_, err = readSeedDocument(writeSeed(t, `{"categories": [`))
	assert.ErrorContains(t, err, "decode seed file")

	_, err = readSeedDocument(writeSeed(t, `{"accounts": []}`))
	assert.ErrorContains(t, err, "unknown field")
}
