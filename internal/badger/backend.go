// Package badger implements the Badger storage backend for the
// seriesmint ledger. Keys are namespaced with string prefixes and values
// are msgpack-encoded; every Update maps to one badger transaction.
package badger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// Compile-time interface check.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface on a Badger database.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *badger.DB
}

// NewBackend creates a detached backend; call Attach to open storage.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens (or creates) the Badger database under config.DataDir.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Join(config.DataDir, "ledger")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("open badger: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database. Detaching a detached backend is a no-op.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	b.attached = false
	return err
}

// View runs fn inside a read-only transaction.
func (b *Backend) View(fn func(types.StoreView) error) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	return b.db.View(func(txn *badger.Txn) error {
		return fn(&storeTx{txn: txn})
	})
}

// Update runs fn inside a write transaction. Badger commits only when
// fn returns nil, giving the contract its all-or-nothing call semantics.
func (b *Backend) Update(fn func(types.StoreTx) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return fn(&storeTx{txn: txn})
	})
}
