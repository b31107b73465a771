// Allowed-address table accessors for the SQLite backend. The set is
// replaced wholesale; there is no per-entry lifecycle.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// AllowedAddresses returns the current allow-list.
func (s *storeTx) AllowedAddresses() ([]types.AccountID, error) {
	rows, err := s.tx.Query("SELECT account_id FROM allowed_addresses ORDER BY account_id")
	if err != nil {
		return nil, fmt.Errorf("listing allowed addresses: %w", err)
	}
	defer rows.Close()

	var out []types.AccountID
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("listing allowed addresses: %w", err)
		}
		out = append(out, types.AccountID(a))
	}
	return out, rows.Err()
}

// IsAllowedAddress reports whether the account is on the allow-list.
func (s *storeTx) IsAllowedAddress(a types.AccountID) (bool, error) {
	var one int
	err := s.tx.QueryRow(
		"SELECT 1 FROM allowed_addresses WHERE account_id = ?", string(a),
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking allowed address: %w", err)
	}
	return true, nil
}

// ReplaceAllowedAddresses replaces the entire allow-list.
func (s *storeTx) ReplaceAllowedAddresses(addrs []types.AccountID) error {
	if _, err := s.tx.Exec("DELETE FROM allowed_addresses"); err != nil {
		return fmt.Errorf("clearing allowed addresses: %w", err)
	}
	for _, a := range addrs {
		_, err := s.tx.Exec(
			"INSERT OR IGNORE INTO allowed_addresses (account_id) VALUES (?)", string(a),
		)
		if err != nil {
			return fmt.Errorf("inserting allowed address %s: %w", a, err)
		}
	}
	return nil
}
