// Series table accessors for the SQLite backend.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// GetSeries returns the series with the given id, or ErrNotFound.
func (s *storeTx) GetSeries(id uint64) (*types.Series, error) {
	row := s.tx.QueryRow(
		"SELECT series_id, owner_id, metadata, non_transferable, mint_count, created_at, updated_at FROM series WHERE series_id = ?",
		id,
	)
	sr, err := hydrateSeries(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting series %d: %w", id, err)
	}
	return sr, nil
}

// ListSeries returns up to limit series ordered by id.
func (s *storeTx) ListSeries(limit int) ([]*types.Series, error) {
	rows, err := s.tx.Query(
		"SELECT series_id, owner_id, metadata, non_transferable, mint_count, created_at, updated_at FROM series ORDER BY series_id" +
			limitClause(0, limit),
	)
	if err != nil {
		return nil, fmt.Errorf("listing series: %w", err)
	}
	defer rows.Close()

	var out []*types.Series
	for rows.Next() {
		sr, err := hydrateSeries(rows)
		if err != nil {
			return nil, fmt.Errorf("listing series: %w", err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

// PutSeries creates or replaces a series record.
func (s *storeTx) PutSeries(sr *types.Series) error {
	meta, err := json.Marshal(sr.Metadata)
	if err != nil {
		return fmt.Errorf("encoding series metadata: %w", err)
	}
	_, err = s.tx.Exec(
		`INSERT INTO series (series_id, owner_id, metadata, non_transferable, mint_count, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(series_id) DO UPDATE SET
		   owner_id = excluded.owner_id,
		   metadata = excluded.metadata,
		   non_transferable = excluded.non_transferable,
		   mint_count = excluded.mint_count,
		   updated_at = excluded.updated_at`,
		sr.ID, string(sr.OwnerID), string(meta), boolToInt(sr.NonTransferable),
		sr.MintCount, encodeTime(sr.CreatedAt), encodeTime(sr.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("persisting series %d: %w", sr.ID, err)
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func hydrateSeries(row scanner) (*types.Series, error) {
	var (
		sr              types.Series
		owner, meta     string
		nonTransferable int
		created, upd    string
	)
	if err := row.Scan(&sr.ID, &owner, &meta, &nonTransferable, &sr.MintCount, &created, &upd); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(meta), &sr.Metadata); err != nil {
		return nil, fmt.Errorf("decoding series metadata: %w", err)
	}
	var err error
	if sr.CreatedAt, err = decodeTime(created); err != nil {
		return nil, err
	}
	if sr.UpdatedAt, err = decodeTime(upd); err != nil {
		return nil, err
	}
	sr.OwnerID = types.AccountID(owner)
	sr.NonTransferable = nonTransferable != 0
	return &sr, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
