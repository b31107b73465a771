package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// Compile-time interface check.
var _ types.StoreTx = (*storeTx)(nil)

// storeTx wraps one SQL transaction with the typed store accessors.
// Per-entity methods live in series.go, tokens.go, policy.go, state.go
// and receipts.go.
type storeTx struct {
	tx *sql.Tx
}

// timeFormat is the column encoding for timestamps.
const timeFormat = time.RFC3339Nano

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// limitClause renders offset/limit pagination. SQLite requires a LIMIT
// when OFFSET is present; -1 means unlimited.
func limitClause(offset, limit int) string {
	if limit <= 0 {
		limit = -1
	}
	if offset < 0 {
		offset = 0
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)
}
