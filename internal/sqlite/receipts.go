// Receipt journal accessors for the SQLite backend.
package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// AppendReceipt appends a call receipt to the journal.
func (s *storeTx) AppendReceipt(r *types.Receipt) error {
	_, err := s.tx.Exec(
		"INSERT INTO receipts (receipt_id, op, caller, subject, created_at) VALUES (?, ?, ?, ?, ?)",
		r.ReceiptID, r.Op, string(r.Caller), r.Subject, encodeTime(r.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("appending receipt: %w", err)
	}
	return nil
}

// Receipts returns up to limit receipts, newest first. UUID v7 receipt
// ids sort chronologically, so ordering by id is ordering by time.
func (s *storeTx) Receipts(limit int) ([]*types.Receipt, error) {
	rows, err := s.tx.Query(
		"SELECT receipt_id, op, caller, subject, created_at FROM receipts ORDER BY receipt_id DESC" +
			limitClause(0, limit),
	)
	if err != nil {
		return nil, fmt.Errorf("listing receipts: %w", err)
	}
	defer rows.Close()

	var out []*types.Receipt
	for rows.Next() {
		var (
			r       types.Receipt
			caller  string
			created string
		)
		if err := rows.Scan(&r.ReceiptID, &r.Op, &caller, &r.Subject, &created); err != nil {
			return nil, fmt.Errorf("listing receipts: %w", err)
		}
		if r.CreatedAt, err = decodeTime(created); err != nil {
			return nil, err
		}
		r.Caller = types.AccountID(caller)
		out = append(out, &r)
	}
	return out, rows.Err()
}
