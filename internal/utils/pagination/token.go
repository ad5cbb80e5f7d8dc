package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates an opaque, URL-safe token for the row a page ended on.
func EncodeToken(cursor domain.Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s", cursor.Day.UTC().Format(timeFormat), cursor.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (domain.Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return domain.Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return domain.Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	day, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return domain.Cursor{}, fmt.Errorf("invalid pagination token format (day parse): %w", err)
	}

	return domain.Cursor{Day: day, ID: parts[1]}, nil
}

// NextToken returns the token for the page after transactions, or nil when the
// page was not full and there is nothing more to fetch.
func NextToken(transactions []domain.Transaction, limit int) *string {
	if limit <= 0 || len(transactions) < limit {
		return nil
	}
	last := transactions[len(transactions)-1]
	token := EncodeToken(domain.Cursor{Day: last.Day, ID: last.ID})
	return &token
}
