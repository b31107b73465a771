// Token ledger transfer path.
package contract

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// NFTTransfer moves a token to a new owner. Only the current owner may
// transfer, the receiver must differ from the current owner, and a token
// of a non-transferable series may only go to an allow-listed
// destination.
func (c *Contract) NFTTransfer(call Call, tokenID string, receiverID types.AccountID) error {
	if err := call.Caller.Validate(); err != nil {
		return err
	}
	if err := receiverID.Validate(); err != nil {
		return err
	}

	var oldOwner types.AccountID
	err := c.store.Update(func(tx types.StoreTx) error {
		token, err := tx.GetToken(tokenID)
		if err != nil {
			return err
		}
		if token.OwnerID != call.Caller {
			return types.ErrUnauthorized
		}
		if token.OwnerID == receiverID {
			return types.ErrSelfTransfer
		}
		if err := checkTransferPolicy(tx, token, receiverID); err != nil {
			return err
		}

		oldOwner = token.OwnerID
		token.OwnerID = receiverID
		if err := tx.PutToken(token); err != nil {
			return err
		}
		return appendReceipt(tx, "nft_transfer", call.Caller, tokenID)
	})
	if err != nil {
		return err
	}

	c.emit(EventNFTTransfer, TransferData{
		OldOwnerID: oldOwner,
		NewOwnerID: receiverID,
		TokenIDs:   []string{tokenID},
	})
	c.log.Info("token transferred",
		zap.String("token_id", tokenID),
		zap.String("old_owner", string(oldOwner)),
		zap.String("new_owner", string(receiverID)),
	)
	return nil
}

// checkTransferPolicy enforces the allow-list for non-transferable
// series. Pure read: it never mutates state.
func checkTransferPolicy(v types.StoreView, token *types.Token, destination types.AccountID) error {
	series, err := v.GetSeries(token.SeriesID)
	if err != nil {
		return err
	}
	if !series.NonTransferable {
		return nil
	}
	allowed, err := v.IsAllowedAddress(destination)
	if err != nil {
		return err
	}
	if !allowed {
		return types.ErrTransferForbidden
	}
	return nil
}
