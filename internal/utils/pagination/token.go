package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// Cursor is the sort key of the last journal entry on a page. JournalID breaks
// ties between entries sharing a date and creation time.
type Cursor struct {
	EntryDate time.Time
	CreatedAt time.Time
	JournalID string
}

// After reports whether an entry with the given key sorts after c in
// (entry_date, created_at, journal_id) descending order.
func (c Cursor) After(entryDate, createdAt time.Time, journalID string) bool {
	if !entryDate.Equal(c.EntryDate) {
		return entryDate.Before(c.EntryDate)
	}
	if !createdAt.Equal(c.CreatedAt) {
		return createdAt.Before(c.CreatedAt)
	}
	return journalID < c.JournalID
}

// EncodeToken creates an opaque cursor from the sort key of the last journal
// entry on a page. The URL-safe alphabet lets it travel in a query string.
func EncodeToken(c Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s|%s", c.EntryDate.UTC().Format(timeFormat), c.CreatedAt.UTC().Format(timeFormat), c.JournalID)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token back into its cursor.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	entryDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (entry date parse): %w", err)
	}

	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return Cursor{EntryDate: entryDate, CreatedAt: createdAt, JournalID: parts[2]}, nil
}
