// Token ledger mint path.
package contract

import (
	"time"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// NFTMint mints the next token of a series to the receiver. Only the
// series owner may mint. The token id derives from the series id and the
// mint sequence number, which is never reused even across owner changes,
// so two mints can never collide. Returns the new token id and the
// refundable deposit excess.
//
// All checks happen before any write: a failed mint leaves the registry
// and ledger unchanged.
func (c *Contract) NFTMint(call Call, seriesID uint64, receiverID types.AccountID) (string, *uint256.Int, error) {
	if err := call.Caller.Validate(); err != nil {
		return "", nil, err
	}
	if err := receiverID.Validate(); err != nil {
		return "", nil, err
	}

	var (
		tokenID string
		refund  *uint256.Int
	)
	err := c.store.Update(func(tx types.StoreTx) error {
		series, err := tx.GetSeries(seriesID)
		if err != nil {
			return err
		}
		if series.OwnerID != call.Caller {
			return types.ErrUnauthorized
		}

		tokenID = series.NextTokenID()
		token := &types.Token{
			TokenID:  tokenID,
			SeriesID: seriesID,
			Seq:      series.MintCount + 1,
			OwnerID:  receiverID,
			MintedAt: time.Now().UTC(),
		}
		if refund, err = c.chargeStorage(call, token.StorageBytes()); err != nil {
			return err
		}

		series.MintCount++
		series.UpdatedAt = token.MintedAt
		if err := tx.PutSeries(series); err != nil {
			return err
		}
		if err := tx.PutToken(token); err != nil {
			return err
		}
		return appendReceipt(tx, "nft_mint", call.Caller, tokenID)
	})
	if err != nil {
		return "", nil, err
	}

	c.emit(EventNFTMint, MintData{OwnerID: receiverID, TokenIDs: []string{tokenID}})
	c.log.Info("token minted",
		zap.String("token_id", tokenID),
		zap.String("receiver", string(receiverID)),
	)
	return tokenID, refund, nil
}
