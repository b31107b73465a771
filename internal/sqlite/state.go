// Contract-state singleton accessors for the SQLite backend.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// ContractState returns the singleton state record, or ErrNotFound
// before the contract is initialized.
func (s *storeTx) ContractState() (*types.ContractState, error) {
	var (
		owner, meta, upd string
	)
	err := s.tx.QueryRow(
		"SELECT owner_id, metadata, updated_at FROM contract_state WHERE singleton = 1",
	).Scan(&owner, &meta, &upd)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting contract state: %w", err)
	}

	st := &types.ContractState{OwnerID: types.AccountID(owner)}
	if err := json.Unmarshal([]byte(meta), &st.Metadata); err != nil {
		return nil, fmt.Errorf("decoding contract metadata: %w", err)
	}
	if st.UpdatedAt, err = decodeTime(upd); err != nil {
		return nil, err
	}
	return st, nil
}

// PutContractState creates or replaces the singleton state record.
func (s *storeTx) PutContractState(st *types.ContractState) error {
	meta, err := json.Marshal(st.Metadata)
	if err != nil {
		return fmt.Errorf("encoding contract metadata: %w", err)
	}
	_, err = s.tx.Exec(
		`INSERT INTO contract_state (singleton, owner_id, metadata, updated_at)
		 VALUES (1, ?, ?, ?)
		 ON CONFLICT(singleton) DO UPDATE SET
		   owner_id = excluded.owner_id,
		   metadata = excluded.metadata,
		   updated_at = excluded.updated_at`,
		string(st.OwnerID), string(meta), encodeTime(st.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("persisting contract state: %w", err)
	}
	return nil
}
