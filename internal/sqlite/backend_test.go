package sqlite

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
	err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Detach() })
	return b
}

func testSeries(id uint64, owner types.AccountID) *types.Series {
	now := time.Now().UTC()
	return &types.Series{
		ID:        id,
		OwnerID:   owner,
		Metadata:  types.TokenMetadata{Title: "Badge", Extra: map[string]string{"tier": "gold"}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestBackendAttachDetach(t *testing.T) {
	b := NewBackend()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}

	require.NoError(t, b.Attach(cfg))
	assert.ErrorIs(t, b.Attach(cfg), types.ErrAlreadyAttached)
	require.NoError(t, b.Detach())
	// Detach is idempotent.
	require.NoError(t, b.Detach())

	err := b.View(func(types.StoreView) error { return nil })
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	err = b.Update(func(types.StoreTx) error { return nil })
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}

func TestBackendAttachRejectsBadConfig(t *testing.T) {
	b := NewBackend()
	err := b.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestBackendPersistsAcrossReattach(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	b := NewBackend()
	require.NoError(t, b.Attach(cfg))
	require.NoError(t, b.Update(func(tx types.StoreTx) error {
		return tx.PutSeries(testSeries(1, "alice"))
	}))
	require.NoError(t, b.Detach())

	b2 := NewBackend()
	require.NoError(t, b2.Attach(cfg))
	defer b2.Detach()

	err := b2.View(func(v types.StoreView) error {
		s, err := v.GetSeries(1)
		require.NoError(t, err)
		assert.Equal(t, types.AccountID("alice"), s.OwnerID)
		assert.Equal(t, "gold", s.Metadata.Extra["tier"])
		return nil
	})
	require.NoError(t, err)
}

func TestSeriesRoundtrip(t *testing.T) {
	b := newTestBackend(t)

	err := b.Update(func(tx types.StoreTx) error {
		if err := tx.PutSeries(testSeries(7, "alice")); err != nil {
			return err
		}
		s, err := tx.GetSeries(7)
		if err != nil {
			return err
		}
		assert.Equal(t, uint64(0), s.MintCount)
		assert.Equal(t, "Badge", s.Metadata.Title)

		// Update in place: counter bump and metadata replacement.
		s.MintCount = 3
		s.Metadata = types.TokenMetadata{Title: "New Badge"}
		return tx.PutSeries(s)
	})
	require.NoError(t, err)

	err = b.View(func(v types.StoreView) error {
		s, err := v.GetSeries(7)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), s.MintCount)
		assert.Equal(t, "New Badge", s.Metadata.Title)
		assert.Nil(t, s.Metadata.Extra, "metadata is replaced wholesale, not merged")

		_, err = v.GetSeries(99)
		assert.ErrorIs(t, err, types.ErrNotFound)

		all, err := v.ListSeries(0)
		require.NoError(t, err)
		assert.Len(t, all, 1)
		return nil
	})
	require.NoError(t, err)
}

func TestTokenQueriesAndCounters(t *testing.T) {
	b := newTestBackend(t)
	now := time.Now().UTC()

	err := b.Update(func(tx types.StoreTx) error {
		if err := tx.PutSeries(testSeries(1, "alice")); err != nil {
			return err
		}
		for i, owner := range []types.AccountID{"alice", "bob", "alice"} {
			tok := &types.Token{
				TokenID:  (&types.Series{ID: 1, MintCount: uint64(i)}).NextTokenID(),
				SeriesID: 1,
				Seq:      uint64(i + 1),
				OwnerID:  owner,
				MintedAt: now,
			}
			if err := tx.PutToken(tok); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	err = b.View(func(v types.StoreView) error {
		tok, err := v.GetToken("1:2")
		require.NoError(t, err)
		assert.Equal(t, types.AccountID("bob"), tok.OwnerID)
		assert.Equal(t, uint64(1), tok.SeriesID)
		assert.Equal(t, uint64(2), tok.Seq)

		_, err = v.GetToken("9:9")
		assert.ErrorIs(t, err, types.ErrNotFound)

		mine, err := v.TokensForOwner("alice", 0, 0)
		require.NoError(t, err)
		assert.Len(t, mine, 2)

		bySeries, err := v.TokensForSeries(1, 1, 1)
		require.NoError(t, err)
		require.Len(t, bySeries, 1)
		assert.Equal(t, "1:2", bySeries[0].TokenID)

		total, err := v.CountTokens()
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)

		inSeries, err := v.CountTokensForSeries(1)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), inSeries)

		owned, err := v.CountTokensForOwner("bob")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), owned)
		return nil
	})
	require.NoError(t, err)
}

func TestAllowedAddressesReplacement(t *testing.T) {
	b := newTestBackend(t)

	set := func(addrs ...types.AccountID) {
		t.Helper()
		require.NoError(t, b.Update(func(tx types.StoreTx) error {
			return tx.ReplaceAllowedAddresses(addrs)
		}))
	}

	set("aa", "bb", "cc")
	set("dd") // full replacement, not merge

	err := b.View(func(v types.StoreView) error {
		for _, a := range []types.AccountID{"aa", "bb", "cc"} {
			ok, err := v.IsAllowedAddress(a)
			require.NoError(t, err)
			assert.False(t, ok, "stale entry %s survived replacement", a)
		}
		ok, err := v.IsAllowedAddress("dd")
		require.NoError(t, err)
		assert.True(t, ok)

		all, err := v.AllowedAddresses()
		require.NoError(t, err)
		assert.Equal(t, []types.AccountID{"dd"}, all)
		return nil
	})
	require.NoError(t, err)

	// Clearing to the empty set is a valid replacement.
	set()
	err = b.View(func(v types.StoreView) error {
		all, err := v.AllowedAddresses()
		require.NoError(t, err)
		assert.Empty(t, all)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdateRollsBackOnError(t *testing.T) {
	b := newTestBackend(t)
	boom := errors.New("boom")

	err := b.Update(func(tx types.StoreTx) error {
		if err := tx.PutSeries(testSeries(1, "alice")); err != nil {
			return err
		}
		if err := tx.ReplaceAllowedAddresses([]types.AccountID{"xx"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = b.View(func(v types.StoreView) error {
		_, err := v.GetSeries(1)
		assert.ErrorIs(t, err, types.ErrNotFound, "failed call must leave no writes")
		ok, err := v.IsAllowedAddress("xx")
		require.NoError(t, err)
		assert.False(t, ok)
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
