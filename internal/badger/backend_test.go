package badger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	err := b.Attach(types.Config{Backend: types.BackendBadger, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Detach() })
	return b
}

func TestBackendAttachDetach(t *testing.T) {
	b := NewBackend()
	cfg := types.Config{Backend: types.BackendBadger, DataDir: t.TempDir()}

	require.NoError(t, b.Attach(cfg))
	assert.ErrorIs(t, b.Attach(cfg), types.ErrAlreadyAttached)
	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach())

	err := b.Update(func(types.StoreTx) error { return nil })
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}

func TestSeriesAndStateRoundtrip(t *testing.T) {
	b := newTestBackend(t)
	now := time.Now().UTC()

	err := b.Update(func(tx types.StoreTx) error {
		if err := tx.PutContractState(&types.ContractState{
			OwnerID:   "admin",
			Metadata:  types.ContractMetadata{Spec: "nft-1.0.0", Name: "Badges", Symbol: "BDG"},
			UpdatedAt: now,
		}); err != nil {
			return err
		}
		return tx.PutSeries(&types.Series{
			ID:        2,
			OwnerID:   "alice",
			Metadata:  types.TokenMetadata{Title: "Badge"},
			CreatedAt: now,
			UpdatedAt: now,
		})
	})
	require.NoError(t, err)

	err = b.View(func(v types.StoreView) error {
		st, err := v.ContractState()
		require.NoError(t, err)
		assert.Equal(t, types.AccountID("admin"), st.OwnerID)
		assert.Equal(t, "BDG", st.Metadata.Symbol)

		s, err := v.GetSeries(2)
		require.NoError(t, err)
		assert.Equal(t, "Badge", s.Metadata.Title)

		_, err = v.GetSeries(3)
		assert.ErrorIs(t, err, types.ErrNotFound)

		all, err := v.ListSeries(0)
		require.NoError(t, err)
		assert.Len(t, all, 1)
		return nil
	})
	require.NoError(t, err)
}

func TestTokenIndexesFollowOwnerChange(t *testing.T) {
	b := newTestBackend(t)
	now := time.Now().UTC()

	mint := &types.Token{TokenID: "1:1", SeriesID: 1, Seq: 1, OwnerID: "alice", MintedAt: now}
	require.NoError(t, b.Update(func(tx types.StoreTx) error {
		return tx.PutToken(mint)
	}))

	// Transfer: same token id, new owner.
	require.NoError(t, b.Update(func(tx types.StoreTx) error {
		tok, err := tx.GetToken("1:1")
		if err != nil {
			return err
		}
		tok.OwnerID = "bob"
		return tx.PutToken(tok)
	}))

	err := b.View(func(v types.StoreView) error {
		was, err := v.TokensForOwner("alice", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, was, "stale owner index must be dropped on transfer")

		got, err := v.TokensForOwner("bob", 0, 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "1:1", got[0].TokenID)

		n, err := v.CountTokensForOwner("bob")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), n)

		bySeries, err := v.TokensForSeries(1, 0, 0)
		require.NoError(t, err)
		assert.Len(t, bySeries, 1)
		return nil
	})
	require.NoError(t, err)
}

func TestTokenSeriesOrderingAndPagination(t *testing.T) {
	b := newTestBackend(t)
	now := time.Now().UTC()

	require.NoError(t, b.Update(func(tx types.StoreTx) error {
		for seq := uint64(1); seq <= 5; seq++ {
			tok := &types.Token{
				TokenID:  (&types.Series{ID: 9, MintCount: seq - 1}).NextTokenID(),
				SeriesID: 9,
				Seq:      seq,
				OwnerID:  "alice",
				MintedAt: now,
			}
			if err := tx.PutToken(tok); err != nil {
				return err
			}
		}
		return nil
	}))

	err := b.View(func(v types.StoreView) error {
		page, err := v.TokensForSeries(9, 2, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "9:3", page[0].TokenID)
		assert.Equal(t, "9:4", page[1].TokenID)

		total, err := v.CountTokens()
		require.NoError(t, err)
		assert.Equal(t, uint64(5), total)
		return nil
	})
	require.NoError(t, err)
}

func TestAllowedAddressesReplacement(t *testing.T) {
	b := newTestBackend(t)

	require.NoError(t, b.Update(func(tx types.StoreTx) error {
		return tx.ReplaceAllowedAddresses([]types.AccountID{"aa", "bb", "cc"})
	}))
	require.NoError(t, b.Update(func(tx types.StoreTx) error {
		return tx.ReplaceAllowedAddresses([]types.AccountID{"dd"})
	}))

	err := b.View(func(v types.StoreView) error {
		all, err := v.AllowedAddresses()
		require.NoError(t, err)
		assert.Equal(t, []types.AccountID{"dd"}, all)

		ok, err := v.IsAllowedAddress("aa")
		require.NoError(t, err)
		assert.False(t, ok)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdateRollsBackOnError(t *testing.T) {
	b := newTestBackend(t)
	boom := errors.New("boom")

	err := b.Update(func(tx types.StoreTx) error {
		if err := tx.PutSeries(&types.Series{ID: 1, OwnerID: "alice"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = b.View(func(v types.StoreView) error {
		_, err := v.GetSeries(1)
		assert.ErrorIs(t, err, types.ErrNotFound)
		return nil
	})
	require.NoError(t, err)
}

func TestReceiptsNewestFirst(t *testing.T) {
	b := newTestBackend(t)

	for _, op := range []string{"create_series", "nft_mint", "nft_transfer"} {
		require.NoError(t, b.Update(func(tx types.StoreTx) error {
			r, err := types.NewReceipt(op, "alice", "1")
			if err != nil {
				return err
			}
			return tx.AppendReceipt(r)
		}))
	}

	err := b.View(func(v types.StoreView) error {
		rs, err := v.Receipts(2)
		require.NoError(t, err)
		require.Len(t, rs, 2)
		assert.Equal(t, "nft_transfer", rs[0].Op)
		assert.Equal(t, "nft_mint", rs[1].Op)
		return nil
	})
	require.NoError(t, err)
}
