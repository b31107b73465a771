package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Receipt records one successful mutating call. Receipts are appended in
// the same transaction as the call's writes, giving an auditable journal
// that mirrors the host's call ordering.
type Receipt struct {
	ReceiptID string    `json:"receipt_id" yaml:"receipt_id"` // UUID v7, generated on append
	Op        string    `json:"op" yaml:"op"`                 // operation name, e.g. "nft_mint"
	Caller    AccountID `json:"caller" yaml:"caller"`         // authenticated caller
	Subject   string    `json:"subject,omitempty" yaml:"subject,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// NewReceipt builds a receipt with a fresh UUID v7 id.
func NewReceipt(op string, caller AccountID, subject string) (*Receipt, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating receipt id: %w", err)
	}
	return &Receipt{
		ReceiptID: id.String(),
		Op:        op,
		Caller:    caller,
		Subject:   subject,
		CreatedAt: time.Now().UTC(),
	}, nil
}
