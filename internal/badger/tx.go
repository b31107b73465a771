package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// Compile-time interface check.
var _ types.StoreTx = (*storeTx)(nil)

// storeTx wraps one badger transaction with the typed store accessors.
type storeTx struct {
	txn *badger.Txn
}

// get decodes the msgpack value at key into out. Returns false when the
// key does not exist.
func (s *storeTx) get(key []byte, out any) (bool, error) {
	item, err := s.txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return false, err
	}
	return true, msgpack.Unmarshal(val, out)
}

// set encodes v with msgpack and writes it at key.
func (s *storeTx) set(key []byte, v any) error {
	val, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.txn.Set(key, val)
}

// ContractState returns the singleton state record, or ErrNotFound.
func (s *storeTx) ContractState() (*types.ContractState, error) {
	var st types.ContractState
	found, err := s.get([]byte(keyContractState), &st)
	if err != nil {
		return nil, fmt.Errorf("getting contract state: %w", err)
	}
	if !found {
		return nil, types.ErrNotFound
	}
	return &st, nil
}

// PutContractState creates or replaces the singleton state record.
func (s *storeTx) PutContractState(st *types.ContractState) error {
	return s.set([]byte(keyContractState), st)
}

// GetSeries returns the series with the given id, or ErrNotFound.
func (s *storeTx) GetSeries(id uint64) (*types.Series, error) {
	var sr types.Series
	found, err := s.get(seriesKey(id), &sr)
	if err != nil {
		return nil, fmt.Errorf("getting series %d: %w", id, err)
	}
	if !found {
		return nil, types.ErrNotFound
	}
	return &sr, nil
}

// ListSeries returns up to limit series ordered by id.
func (s *storeTx) ListSeries(limit int) ([]*types.Series, error) {
	var out []*types.Series
	err := s.iteratePrefix([]byte(prefixSeriesPayload), false, func(item *badger.Item) (bool, error) {
		val, err := item.ValueCopy(nil)
		if err != nil {
			return false, err
		}
		var sr types.Series
		if err := msgpack.Unmarshal(val, &sr); err != nil {
			return false, err
		}
		out = append(out, &sr)
		return limit > 0 && len(out) == limit, nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing series: %w", err)
	}
	return out, nil
}

// PutSeries creates or replaces a series record.
func (s *storeTx) PutSeries(sr *types.Series) error {
	return s.set(seriesKey(sr.ID), sr)
}

// GetToken returns the token with the given id, or ErrNotFound.
func (s *storeTx) GetToken(id string) (*types.Token, error) {
	var tok types.Token
	found, err := s.get(tokenKey(id), &tok)
	if err != nil {
		return nil, fmt.Errorf("getting token %s: %w", id, err)
	}
	if !found {
		return nil, types.ErrNotFound
	}
	return &tok, nil
}

// PutToken creates or replaces a token record and maintains the owner
// and series index keys. An owner change drops the stale owner index
// entry inside the same transaction.
func (s *storeTx) PutToken(t *types.Token) error {
	old, err := s.GetToken(t.TokenID)
	if err != nil && err != types.ErrNotFound {
		return err
	}
	if old != nil && old.OwnerID != t.OwnerID {
		if err := s.txn.Delete(tokenOwnerKey(string(old.OwnerID), t.TokenID)); err != nil {
			return fmt.Errorf("dropping stale owner index for %s: %w", t.TokenID, err)
		}
	}

	if err := s.set(tokenKey(t.TokenID), t); err != nil {
		return err
	}
	if err := s.txn.Set(tokenOwnerKey(string(t.OwnerID), t.TokenID), []byte(t.TokenID)); err != nil {
		return err
	}
	return s.txn.Set(tokenSeriesKey(t.SeriesID, t.Seq), []byte(t.TokenID))
}

// TokensForOwner returns tokens held by owner ordered by token id.
func (s *storeTx) TokensForOwner(owner types.AccountID, offset, limit int) ([]*types.Token, error) {
	ids, err := s.collectIndex([]byte(prefixTokenOwner+string(owner)+":"), offset, limit)
	if err != nil {
		return nil, fmt.Errorf("listing tokens for owner %s: %w", owner, err)
	}
	return s.fetchTokens(ids)
}

// TokensForSeries returns tokens of a series ordered by sequence number.
func (s *storeTx) TokensForSeries(seriesID uint64, offset, limit int) ([]*types.Token, error) {
	prefix := []byte(fmt.Sprintf("%s%020d:", prefixTokenSeries, seriesID))
	ids, err := s.collectIndex(prefix, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("listing tokens for series %d: %w", seriesID, err)
	}
	return s.fetchTokens(ids)
}

// CountTokens returns the total number of minted tokens.
func (s *storeTx) CountTokens() (uint64, error) {
	return s.countPrefix([]byte(prefixTokenPayload))
}

// CountTokensForSeries returns the number of tokens minted from the series.
func (s *storeTx) CountTokensForSeries(seriesID uint64) (uint64, error) {
	return s.countPrefix([]byte(fmt.Sprintf("%s%020d:", prefixTokenSeries, seriesID)))
}

// CountTokensForOwner returns the number of tokens held by owner.
func (s *storeTx) CountTokensForOwner(owner types.AccountID) (uint64, error) {
	return s.countPrefix([]byte(prefixTokenOwner + string(owner) + ":"))
}

// AllowedAddresses returns the current allow-list.
func (s *storeTx) AllowedAddresses() ([]types.AccountID, error) {
	var out []types.AccountID
	prefix := []byte(prefixAllowed)
	err := s.iteratePrefix(prefix, false, func(item *badger.Item) (bool, error) {
		out = append(out, types.AccountID(item.Key()[len(prefix):]))
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing allowed addresses: %w", err)
	}
	return out, nil
}

// IsAllowedAddress reports whether the account is on the allow-list.
func (s *storeTx) IsAllowedAddress(a types.AccountID) (bool, error) {
	_, err := s.txn.Get(allowedKey(string(a)))
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking allowed address: %w", err)
	}
	return true, nil
}

// ReplaceAllowedAddresses replaces the entire allow-list.
func (s *storeTx) ReplaceAllowedAddresses(addrs []types.AccountID) error {
	// Collect stale keys first: deleting while iterating invalidates
	// the iterator.
	var stale [][]byte
	prefix := []byte(prefixAllowed)
	err := s.iteratePrefix(prefix, false, func(item *badger.Item) (bool, error) {
		stale = append(stale, item.KeyCopy(nil))
		return false, nil
	})
	if err != nil {
		return fmt.Errorf("clearing allowed addresses: %w", err)
	}
	for _, key := range stale {
		if err := s.txn.Delete(key); err != nil {
			return fmt.Errorf("clearing allowed addresses: %w", err)
		}
	}
	for _, a := range addrs {
		if err := s.txn.Set(allowedKey(string(a)), []byte{1}); err != nil {
			return fmt.Errorf("inserting allowed address %s: %w", a, err)
		}
	}
	return nil
}

// AppendReceipt appends a call receipt to the journal.
func (s *storeTx) AppendReceipt(r *types.Receipt) error {
	if err := s.set(receiptKey(r.ReceiptID), r); err != nil {
		return fmt.Errorf("appending receipt: %w", err)
	}
	return nil
}

// Receipts returns up to limit receipts, newest first. UUID v7 ids are
// time-ordered, so a reverse prefix scan yields newest first.
func (s *storeTx) Receipts(limit int) ([]*types.Receipt, error) {
	var out []*types.Receipt
	err := s.iteratePrefix([]byte(prefixReceipt), true, func(item *badger.Item) (bool, error) {
		val, err := item.ValueCopy(nil)
		if err != nil {
			return false, err
		}
		var r types.Receipt
		if err := msgpack.Unmarshal(val, &r); err != nil {
			return false, err
		}
		out = append(out, &r)
		return limit > 0 && len(out) == limit, nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing receipts: %w", err)
	}
	return out, nil
}

// iteratePrefix walks all keys under prefix, newest-last unless reverse.
// fn returns true to stop early.
func (s *storeTx) iteratePrefix(prefix []byte, reverse bool, fn func(*badger.Item) (bool, error)) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.Reverse = reverse

	it := s.txn.NewIterator(opts)
	defer it.Close()

	seek := prefix
	if reverse {
		// Seek past the last key of the prefix range.
		seek = append(append([]byte{}, prefix...), 0xff)
	}
	for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
		stop, err := fn(it.Item())
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return nil
}

// collectIndex gathers index values (token ids) under prefix with
// offset/limit pagination.
func (s *storeTx) collectIndex(prefix []byte, offset, limit int) ([]string, error) {
	var ids []string
	skipped := 0
	err := s.iteratePrefix(prefix, false, func(item *badger.Item) (bool, error) {
		if skipped < offset {
			skipped++
			return false, nil
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return false, err
		}
		ids = append(ids, string(val))
		return limit > 0 && len(ids) == limit, nil
	})
	return ids, err
}

func (s *storeTx) fetchTokens(ids []string) ([]*types.Token, error) {
	out := make([]*types.Token, 0, len(ids))
	for _, id := range ids {
		tok, err := s.GetToken(id)
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
	return out, nil
}

func (s *storeTx) countPrefix(prefix []byte) (uint64, error) {
	var n uint64
	err := s.iteratePrefix(prefix, false, func(*badger.Item) (bool, error) {
		n++
		return false, nil
	})
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", prefix, err)
	}
	return n, nil
}
