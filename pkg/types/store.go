package types

// Store is the persistent state of one deployed contract. It is an
// explicit object passed into every operation (no ambient singleton), so
// tests run against isolated instances.
//
// Update runs fn inside a single write transaction: if fn returns an
// error nothing is persisted, otherwise every write becomes visible
// atomically. This is the contract's all-or-nothing call semantics; the
// host serializes calls, so backends need no finer lock discipline.
type Store interface {
	// Attach opens the backing storage described by the Config.
	// Returns ErrAlreadyAttached if already attached.
	Attach(cfg Config) error

	// Detach releases all resources. Detach on a detached store is a
	// no-op.
	Detach() error

	// View runs fn inside a read-only transaction.
	View(fn func(StoreView) error) error

	// Update runs fn inside a write transaction, committing only when
	// fn returns nil.
	Update(fn func(StoreTx) error) error
}

// StoreView is the read surface available inside View and Update.
type StoreView interface {
	// ContractState returns the singleton state record, or ErrNotFound
	// before Init.
	ContractState() (*ContractState, error)

	// GetSeries returns the series with the given id, or ErrNotFound.
	GetSeries(id uint64) (*Series, error)

	// ListSeries returns up to limit series ordered by id. limit <= 0
	// means no limit.
	ListSeries(limit int) ([]*Series, error)

	// GetToken returns the token with the given id, or ErrNotFound.
	GetToken(id string) (*Token, error)

	// TokensForOwner returns tokens held by owner ordered by token id,
	// skipping offset rows. limit <= 0 means no limit.
	TokensForOwner(owner AccountID, offset, limit int) ([]*Token, error)

	// TokensForSeries returns tokens of a series ordered by sequence
	// number, skipping offset rows. limit <= 0 means no limit.
	TokensForSeries(seriesID uint64, offset, limit int) ([]*Token, error)

	// CountTokens returns the total number of minted tokens.
	CountTokens() (uint64, error)

	// CountTokensForSeries returns the number of tokens minted from the
	// series.
	CountTokensForSeries(seriesID uint64) (uint64, error)

	// CountTokensForOwner returns the number of tokens held by owner.
	CountTokensForOwner(owner AccountID) (uint64, error)

	// AllowedAddresses returns the current allow-list. Order is not
	// significant; membership is the only observable semantic.
	AllowedAddresses() ([]AccountID, error)

	// IsAllowedAddress reports whether the account is on the allow-list.
	IsAllowedAddress(a AccountID) (bool, error)

	// Receipts returns up to limit receipts, newest first. limit <= 0
	// means no limit.
	Receipts(limit int) ([]*Receipt, error)
}

// StoreTx is the write surface available inside Update. Writes are
// upserts; the contract layer owns existence and authorization checks.
type StoreTx interface {
	StoreView

	// PutContractState creates or replaces the singleton state record.
	PutContractState(s *ContractState) error

	// PutSeries creates or replaces a series record.
	PutSeries(s *Series) error

	// PutToken creates or replaces a token record.
	PutToken(t *Token) error

	// ReplaceAllowedAddresses replaces the entire allow-list.
	ReplaceAllowedAddresses(addrs []AccountID) error

	// AppendReceipt appends a call receipt to the journal.
	AppendReceipt(r *Receipt) error
}
