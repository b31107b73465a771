package contract

import (
	"time"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// Contract is the facade over the series registry, token ledger, and
// transfer-policy guard. It validates argument shape and deposits, then
// delegates to the store inside one transaction per call.
type Contract struct {
	store       types.Store
	log         *zap.Logger
	events      EventSink
	costPerByte *uint256.Int
}

// Option configures a Contract.
type Option func(*Contract)

// WithLogger sets the contract logger. The default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Contract) { c.log = log }
}

// WithEventSink sets the event sink. The default discards events.
func WithEventSink(sink EventSink) Option {
	return func(c *Contract) { c.events = sink }
}

// WithCostPerByte overrides the storage price per byte.
func WithCostPerByte(cost *uint256.Int) Option {
	return func(c *Contract) { c.costPerByte = cost.Clone() }
}

// New wires a contract to its store. The store must already be attached.
func New(store types.Store, opts ...Option) *Contract {
	c := &Contract{
		store:       store,
		log:         zap.NewNop(),
		events:      nopSink{},
		costPerByte: DefaultCostPerByte,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call carries the host-authenticated caller and the attached storage
// deposit into a mutating operation.
type Call struct {
	Caller  types.AccountID
	Deposit *uint256.Int
}

// attached returns the deposit, treating nil as zero.
func (c Call) attached() *uint256.Int {
	if c.Deposit == nil {
		return uint256.NewInt(0)
	}
	return c.Deposit
}

// Init initializes the contract exactly once, recording the caller as
// the contract administrator. Fails with ErrAlreadyInitialized on any
// later call.
func (c *Contract) Init(call Call, metadata types.ContractMetadata) error {
	if err := call.Caller.Validate(); err != nil {
		return err
	}
	if err := metadata.Validate(); err != nil {
		return err
	}

	err := c.store.Update(func(tx types.StoreTx) error {
		if _, err := tx.ContractState(); err == nil {
			return types.ErrAlreadyInitialized
		} else if err != types.ErrNotFound {
			return err
		}
		st := &types.ContractState{
			OwnerID:   call.Caller,
			Metadata:  metadata,
			UpdatedAt: time.Now().UTC(),
		}
		if err := tx.PutContractState(st); err != nil {
			return err
		}
		return appendReceipt(tx, "init", call.Caller, "")
	})
	if err != nil {
		return err
	}

	c.emit(EventContractMetadataUpdate, metadata)
	c.log.Info("contract initialized", zap.String("owner", string(call.Caller)))
	return nil
}

// Metadata returns the contract-level metadata.
func (c *Contract) Metadata() (types.ContractMetadata, error) {
	var md types.ContractMetadata
	err := c.store.View(func(v types.StoreView) error {
		st, err := contractState(v)
		if err != nil {
			return err
		}
		md = st.Metadata
		return nil
	})
	return md, err
}

// UpdateContractMetadata replaces the contract metadata. Administrator
// only.
func (c *Contract) UpdateContractMetadata(call Call, metadata types.ContractMetadata) error {
	if err := call.Caller.Validate(); err != nil {
		return err
	}
	if err := metadata.Validate(); err != nil {
		return err
	}

	err := c.store.Update(func(tx types.StoreTx) error {
		st, err := contractState(tx)
		if err != nil {
			return err
		}
		if st.OwnerID != call.Caller {
			return types.ErrUnauthorized
		}
		st.Metadata = metadata
		st.UpdatedAt = time.Now().UTC()
		if err := tx.PutContractState(st); err != nil {
			return err
		}
		return appendReceipt(tx, "update_contract_metadata", call.Caller, "")
	})
	if err != nil {
		return err
	}

	c.emit(EventContractMetadataUpdate, metadata)
	return nil
}

// Receipts returns the newest limit call receipts.
func (c *Contract) Receipts(limit int) ([]*types.Receipt, error) {
	var out []*types.Receipt
	err := c.store.View(func(v types.StoreView) error {
		var err error
		out, err = v.Receipts(limit)
		return err
	})
	return out, err
}

// contractState loads the singleton state, mapping a missing record to
// ErrNotInitialized.
func contractState(v types.StoreView) (*types.ContractState, error) {
	st, err := v.ContractState()
	if err == types.ErrNotFound {
		return nil, types.ErrNotInitialized
	}
	return st, err
}

func appendReceipt(tx types.StoreTx, op string, caller types.AccountID, subject string) error {
	r, err := types.NewReceipt(op, caller, subject)
	if err != nil {
		return err
	}
	return tx.AppendReceipt(r)
}
