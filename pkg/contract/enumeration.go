// Read-only enumeration surface over the token ledger.
package contract

import "github.com/mesh-intelligence/seriesmint/pkg/types"

// NFTToken returns the token with the given id.
func (c *Contract) NFTToken(tokenID string) (*types.Token, error) {
	var out *types.Token
	err := c.store.View(func(v types.StoreView) error {
		var err error
		out, err = v.GetToken(tokenID)
		return err
	})
	return out, err
}

// NFTTotalSupply returns the total number of minted tokens.
func (c *Contract) NFTTotalSupply() (uint64, error) {
	var n uint64
	err := c.store.View(func(v types.StoreView) error {
		var err error
		n, err = v.CountTokens()
		return err
	})
	return n, err
}

// NFTSupplyForOwner returns the number of tokens held by owner.
func (c *Contract) NFTSupplyForOwner(owner types.AccountID) (uint64, error) {
	var n uint64
	err := c.store.View(func(v types.StoreView) error {
		var err error
		n, err = v.CountTokensForOwner(owner)
		return err
	})
	return n, err
}

// NFTSupplyForSeries returns the number of tokens minted from the series.
// Fails with ErrNotFound for an unknown series.
func (c *Contract) NFTSupplyForSeries(seriesID uint64) (uint64, error) {
	var n uint64
	err := c.store.View(func(v types.StoreView) error {
		if _, err := v.GetSeries(seriesID); err != nil {
			return err
		}
		var err error
		n, err = v.CountTokensForSeries(seriesID)
		return err
	})
	return n, err
}

// NFTTokensForOwner pages through the tokens held by owner.
func (c *Contract) NFTTokensForOwner(owner types.AccountID, offset, limit int) ([]*types.Token, error) {
	var out []*types.Token
	err := c.store.View(func(v types.StoreView) error {
		var err error
		out, err = v.TokensForOwner(owner, offset, limit)
		return err
	})
	return out, err
}

// NFTTokensForSeries pages through the tokens of a series in mint order.
// Fails with ErrNotFound for an unknown series.
func (c *Contract) NFTTokensForSeries(seriesID uint64, offset, limit int) ([]*types.Token, error) {
	var out []*types.Token
	err := c.store.View(func(v types.StoreView) error {
		if _, err := v.GetSeries(seriesID); err != nil {
			return err
		}
		var err error
		out, err = v.TokensForSeries(seriesID, offset, limit)
		return err
	})
	return out, err
}
