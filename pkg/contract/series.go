// Series registry operations: creation, metadata updates, ownership, and
// read-only lookups.
package contract

import (
	"strconv"
	"time"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// CreateSeries registers a new series owned by the caller. The series id
// is caller-assigned and must be unused; the attached deposit must cover
// the storage of the new record. Returns the refundable deposit excess.
func (c *Contract) CreateSeries(call Call, id uint64, metadata types.TokenMetadata, nonTransferable bool) (*uint256.Int, error) {
	if err := call.Caller.Validate(); err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, types.ErrInvalidSeriesID
	}
	if err := metadata.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	series := &types.Series{
		ID:              id,
		OwnerID:         call.Caller,
		Metadata:        metadata.Clone(),
		NonTransferable: nonTransferable,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var refund *uint256.Int
	err := c.store.Update(func(tx types.StoreTx) error {
		if _, err := contractState(tx); err != nil {
			return err
		}
		if _, err := tx.GetSeries(id); err == nil {
			return types.ErrDuplicateSeries
		} else if err != types.ErrNotFound {
			return err
		}

		var err error
		if refund, err = c.chargeStorage(call, series.StorageBytes()); err != nil {
			return err
		}
		if err := tx.PutSeries(series); err != nil {
			return err
		}
		return appendReceipt(tx, "create_series", call.Caller, formatSeriesID(id))
	})
	if err != nil {
		return nil, err
	}

	c.emit(EventCreateSeries, SeriesData{SeriesID: id, OwnerID: call.Caller})
	c.log.Info("series created",
		zap.Uint64("series_id", id),
		zap.String("owner", string(call.Caller)),
	)
	return refund, nil
}

// UpdateSeriesMetadata replaces the series metadata wholesale. Series
// owner only. Existing tokens observe the new metadata immediately
// through their back-reference.
func (c *Contract) UpdateSeriesMetadata(call Call, id uint64, metadata types.TokenMetadata) error {
	if err := call.Caller.Validate(); err != nil {
		return err
	}
	if err := metadata.Validate(); err != nil {
		return err
	}

	err := c.store.Update(func(tx types.StoreTx) error {
		series, err := tx.GetSeries(id)
		if err != nil {
			return err
		}
		if series.OwnerID != call.Caller {
			return types.ErrUnauthorized
		}
		series.Metadata = metadata.Clone()
		series.UpdatedAt = time.Now().UTC()
		if err := tx.PutSeries(series); err != nil {
			return err
		}
		return appendReceipt(tx, "update_series_metadata", call.Caller, formatSeriesID(id))
	})
	if err != nil {
		return err
	}

	c.emit(EventNFTMetadataUpdate, SeriesData{SeriesID: id, OwnerID: call.Caller})
	return nil
}

// UpdateSeriesOwner hands the series to a new owning account, which
// becomes the sole minter and metadata editor. Current owner only.
func (c *Contract) UpdateSeriesOwner(call Call, id uint64, newOwner types.AccountID) error {
	if err := call.Caller.Validate(); err != nil {
		return err
	}
	if err := newOwner.Validate(); err != nil {
		return err
	}

	return c.store.Update(func(tx types.StoreTx) error {
		series, err := tx.GetSeries(id)
		if err != nil {
			return err
		}
		if series.OwnerID != call.Caller {
			return types.ErrUnauthorized
		}
		series.OwnerID = newOwner
		series.UpdatedAt = time.Now().UTC()
		if err := tx.PutSeries(series); err != nil {
			return err
		}
		return appendReceipt(tx, "update_series_owner", call.Caller, formatSeriesID(id))
	})
}

// GetSeries returns the series with the given id.
func (c *Contract) GetSeries(id uint64) (*types.Series, error) {
	var out *types.Series
	err := c.store.View(func(v types.StoreView) error {
		var err error
		out, err = v.GetSeries(id)
		return err
	})
	return out, err
}

// ListSeries returns up to limit series ordered by id.
func (c *Contract) ListSeries(limit int) ([]*types.Series, error) {
	var out []*types.Series
	err := c.store.View(func(v types.StoreView) error {
		var err error
		out, err = v.ListSeries(limit)
		return err
	})
	return out, err
}

func formatSeriesID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
