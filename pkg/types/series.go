package types

import (
	"fmt"
	"time"
)

// Series is a named group of tokens sharing metadata and a minting owner.
// A series is never deleted and its id is never reassigned.
type Series struct {
	ID              uint64        `json:"series_id" yaml:"series_id"` // caller-assigned, positive, immutable
	OwnerID         AccountID     `json:"owner_id" yaml:"owner_id"`   // creator; sole minter and metadata editor
	Metadata        TokenMetadata `json:"metadata" yaml:"metadata"`   // replaced wholesale by updates
	NonTransferable bool          `json:"non_transferable" yaml:"non_transferable"`
	MintCount       uint64        `json:"mint_count" yaml:"mint_count"` // +1 per mint, never decremented
	CreatedAt       time.Time     `json:"created_at" yaml:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" yaml:"updated_at"`
}

// NextTokenID derives the id the next mint from this series will use.
// Ids render 1-based: the first token of series 7 is "7:1". Sequence
// numbers are never reused, so the derivation is collision-free for the
// lifetime of the contract.
func (s *Series) NextTokenID() string {
	return fmt.Sprintf("%d:%d", s.ID, s.MintCount+1)
}

// seriesBaseBytes covers the fixed-width series columns (id, counter,
// flags, timestamps) in storage-deposit accounting.
const seriesBaseBytes = 64

// StorageBytes returns the persisted size of the series record.
func (s *Series) StorageBytes() uint64 {
	return seriesBaseBytes + uint64(len(s.OwnerID)) + s.Metadata.StorageBytes()
}
