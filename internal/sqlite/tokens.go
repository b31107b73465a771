// Token table accessors for the SQLite backend.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

const tokenColumns = "token_id, series_id, seq, owner_id, minted_at"

// GetToken returns the token with the given id, or ErrNotFound.
func (s *storeTx) GetToken(id string) (*types.Token, error) {
	row := s.tx.QueryRow(
		"SELECT "+tokenColumns+" FROM tokens WHERE token_id = ?", id,
	)
	tok, err := hydrateToken(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting token %s: %w", id, err)
	}
	return tok, nil
}

// TokensForOwner returns tokens held by owner ordered by token id.
func (s *storeTx) TokensForOwner(owner types.AccountID, offset, limit int) ([]*types.Token, error) {
	return s.queryTokens(
		"SELECT "+tokenColumns+" FROM tokens WHERE owner_id = ? ORDER BY token_id"+limitClause(offset, limit),
		string(owner),
	)
}

// TokensForSeries returns tokens of a series ordered by sequence number.
func (s *storeTx) TokensForSeries(seriesID uint64, offset, limit int) ([]*types.Token, error) {
	return s.queryTokens(
		"SELECT "+tokenColumns+" FROM tokens WHERE series_id = ? ORDER BY seq"+limitClause(offset, limit),
		seriesID,
	)
}

// PutToken creates or replaces a token record.
func (s *storeTx) PutToken(t *types.Token) error {
	_, err := s.tx.Exec(
		`INSERT INTO tokens (token_id, series_id, seq, owner_id, minted_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(token_id) DO UPDATE SET owner_id = excluded.owner_id`,
		t.TokenID, t.SeriesID, t.Seq, string(t.OwnerID), encodeTime(t.MintedAt),
	)
	if err != nil {
		return fmt.Errorf("persisting token %s: %w", t.TokenID, err)
	}
	return nil
}

// CountTokens returns the total number of minted tokens.
func (s *storeTx) CountTokens() (uint64, error) {
	return s.countRow("SELECT COUNT(*) FROM tokens")
}

// CountTokensForSeries returns the number of tokens minted from the series.
func (s *storeTx) CountTokensForSeries(seriesID uint64) (uint64, error) {
	return s.countRow("SELECT COUNT(*) FROM tokens WHERE series_id = ?", seriesID)
}

// CountTokensForOwner returns the number of tokens held by owner.
func (s *storeTx) CountTokensForOwner(owner types.AccountID) (uint64, error) {
	return s.countRow("SELECT COUNT(*) FROM tokens WHERE owner_id = ?", string(owner))
}

func (s *storeTx) queryTokens(query string, args ...any) ([]*types.Token, error) {
	rows, err := s.tx.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tokens: %w", err)
	}
	defer rows.Close()

	var out []*types.Token
	for rows.Next() {
		tok, err := hydrateToken(rows)
		if err != nil {
			return nil, fmt.Errorf("querying tokens: %w", err)
		}
		out = append(out, tok)
	}
	return out, rows.Err()
}

func (s *storeTx) countRow(query string, args ...any) (uint64, error) {
	var n uint64
	if err := s.tx.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting rows: %w", err)
	}
	return n, nil
}

func hydrateToken(row scanner) (*types.Token, error) {
	var (
		tok    types.Token
		owner  string
		minted string
	)
	if err := row.Scan(&tok.TokenID, &tok.SeriesID, &tok.Seq, &owner, &minted); err != nil {
		return nil, err
	}
	var err error
	if tok.MintedAt, err = decodeTime(minted); err != nil {
		return nil, err
	}
	tok.OwnerID = types.AccountID(owner)
	return &tok, nil
}
