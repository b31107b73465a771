package types

import "time"

// Token is an individually owned unit minted from exactly one series.
// SeriesID is a lookup-only back-reference: the token does not own the
// series, and the series always outlives the token's bookkeeping.
type Token struct {
	TokenID  string    `json:"token_id" yaml:"token_id"`   // "<series id>:<seq>", immutable
	SeriesID uint64    `json:"series_id" yaml:"series_id"` // originating series
	Seq      uint64    `json:"seq" yaml:"seq"`             // 1-based mint sequence within the series
	OwnerID  AccountID `json:"owner_id" yaml:"owner_id"`   // mutable only via a successful transfer
	MintedAt time.Time `json:"minted_at" yaml:"minted_at"`
}

// tokenBaseBytes covers the fixed-width token columns.
const tokenBaseBytes = 48

// StorageBytes returns the persisted size of the token record.
func (t *Token) StorageBytes() uint64 {
	return tokenBaseBytes + uint64(len(t.TokenID)+len(t.OwnerID))
}
