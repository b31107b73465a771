// Transfer policy guard: the contract-wide allow-list and the transfer
// predicate.
package contract

import (
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// SetAllowedAddresses replaces the entire allow-list. Contract
// administrator only; there are no incremental add/remove semantics.
// Returns the refundable deposit excess.
func (c *Contract) SetAllowedAddresses(call Call, addresses []types.AccountID) (*uint256.Int, error) {
	if err := call.Caller.Validate(); err != nil {
		return nil, err
	}
	for _, a := range addresses {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	var refund *uint256.Int
	err := c.store.Update(func(tx types.StoreTx) error {
		st, err := contractState(tx)
		if err != nil {
			return err
		}
		if st.OwnerID != call.Caller {
			return types.ErrUnauthorized
		}

		if refund, err = c.chargeStorage(call, allowListBytes(addresses)); err != nil {
			return err
		}
		if err := tx.ReplaceAllowedAddresses(addresses); err != nil {
			return err
		}
		return appendReceipt(tx, "set_allowed_addresses", call.Caller, "")
	})
	if err != nil {
		return nil, err
	}

	c.log.Info("allow-list replaced", zap.Int("entries", len(addresses)))
	return refund, nil
}

// IsTransferAllowed reports whether the token could currently be
// transferred to destination: true if the token's series is
// transferable, or if destination is on the allow-list. Pure predicate
// with no side effects, usable for dry-run checks.
func (c *Contract) IsTransferAllowed(tokenID string, destination types.AccountID) (bool, error) {
	if err := destination.Validate(); err != nil {
		return false, err
	}

	allowed := false
	err := c.store.View(func(v types.StoreView) error {
		token, err := v.GetToken(tokenID)
		if err != nil {
			return err
		}
		switch err := checkTransferPolicy(v, token, destination); err {
		case nil:
			allowed = true
			return nil
		case types.ErrTransferForbidden:
			allowed = false
			return nil
		default:
			return err
		}
	})
	return allowed, err
}

// AllowedAddresses returns the current allow-list.
func (c *Contract) AllowedAddresses() ([]types.AccountID, error) {
	var out []types.AccountID
	err := c.store.View(func(v types.StoreView) error {
		var err error
		out, err = v.AllowedAddresses()
		return err
	})
	return out, err
}
